package mqtt

import (
	"context"
	"encoding/json"
	"sync"

	mqttv2 "github.com/mochi-mqtt/server/v2"
	"github.com/mochi-mqtt/server/v2/hooks/auth"
	"github.com/mochi-mqtt/server/v2/listeners"
	"github.com/sirupsen/logrus"
	"github.com/sustain-se/simulator/pkg/state"
)

const (
	metricsTopicPrefix = "sustain/metrics/"
	statusTopic        = "sustain/status/pipe"
)

// Start runs an embedded broker so dashboards can subscribe straight
// to the simulator without external infrastructure.
func Start(ctx context.Context, wg *sync.WaitGroup, address string) (*mqttv2.Server, error) {
	server := mqttv2.New(&mqttv2.Options{
		InlineClient: true,
	})

	// Allow all connections.
	_ = server.AddHook(new(auth.AllowHook), nil)

	tcp := listeners.NewTCP(listeners.Config{ID: "t1", Address: address})
	err := server.AddListener(tcp)
	if err != nil {
		return server, err
	}

	err = server.Serve()
	if err != nil {
		return server, err
	}

	wg.Add(1)
	go func() {
		<-ctx.Done()
		server.Close()
		wg.Done()
	}()
	return server, nil
}

// Publish pushes every snapshot value to its own retained topic plus
// the operator facing status text.
func Publish(server *mqttv2.Server, snapshot *state.Snapshot) {
	for key, value := range snapshot.Map() {
		payload, err := json.Marshal(value)
		if err != nil {
			logrus.Errorf("mqtt: marshal %s: %v", key, err)
			continue
		}
		err = server.Publish(metricsTopicPrefix+key, payload, true, 0)
		if err != nil {
			logrus.Errorf("mqtt: publish %s: %v", key, err)
		}
	}

	if snapshot.PipeStatus != nil {
		err := server.Publish(statusTopic, []byte(*snapshot.PipeStatus), true, 0)
		if err != nil {
			logrus.Errorf("mqtt: publish status: %v", err)
		}
	}
}
