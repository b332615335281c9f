package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/goburrow/modbus"
	mqttv2 "github.com/mochi-mqtt/server/v2"
	"github.com/sirupsen/logrus"
	"github.com/sustain-se/simulator/pkg/alarm"
	"github.com/sustain-se/simulator/pkg/api/v1/config"
	"github.com/sustain-se/simulator/pkg/mbus"
	"github.com/sustain-se/simulator/pkg/modbusclient"
	"github.com/sustain-se/simulator/pkg/mqtt"
	"github.com/sustain-se/simulator/pkg/simulation"
	"github.com/sustain-se/simulator/pkg/source"
	"github.com/sustain-se/simulator/pkg/source/manual"
	"github.com/sustain-se/simulator/pkg/source/metered"
	"github.com/sustain-se/simulator/pkg/source/modbussensor"
	"github.com/sustain-se/simulator/pkg/state"
)

var httpClient = &http.Client{
	Timeout: time.Second * 30,
}

type App struct {
	wg     *sync.WaitGroup
	config *config.CliConfig

	coefficients simulation.Coefficients
	alarms       *alarm.ActiveAlarms

	// manual is non-nil when the inputs are driven over the HTTP API.
	manual *manual.Manual
	source source.Source

	mqttServer *mqttv2.Server
	listener   net.Listener

	mu     sync.RWMutex
	latest *simulation.Result
}

func New(config *config.CliConfig) *App {
	return &App{
		wg:           &sync.WaitGroup{},
		config:       config,
		coefficients: simulation.DefaultCoefficients(),
		alarms:       &alarm.ActiveAlarms{},
	}
}

func (a *App) Start(ctx context.Context) error {
	err := a.setupSource()
	if err != nil {
		return err
	}

	if a.config.MQTTEnabled {
		a.mqttServer, err = mqtt.Start(ctx, a.wg, a.config.MQTTAddress)
		if err != nil {
			return fmt.Errorf("error starting mqtt broker: %w", err)
		}
	}

	a.listener, err = net.Listen("tcp", a.config.ListenAddr)
	if err != nil {
		return fmt.Errorf("error listening on %s: %w", a.config.ListenAddr, err)
	}
	srv := &http.Server{Handler: a.Handler()}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		err := srv.Serve(a.listener)
		if err != nil && err != http.ErrServerClosed {
			logrus.Error(err)
		}
	}()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logrus.Error(err)
		}
	}()

	a.wg.Add(1)
	go a.evaluationLoop(ctx)
	return nil
}

func (a *App) Wait() {
	a.wg.Wait()
}

// ListenAddr is the bound address of the HTTP API.
func (a *App) ListenAddr() string {
	return a.listener.Addr().String()
}

func (a *App) setupSource() error {
	if a.config.SensorAddress != "" {
		handler := modbus.NewTCPClientHandler(a.config.SensorAddress)
		client := modbusclient.New(modbus.NewClient(handler), handler.Close)
		a.source = modbussensor.New(client)
		logrus.Infof("reading inputs from modbus sensor bank at %s", a.config.SensorAddress)
	} else {
		a.manual = manual.New()
		a.source = a.manual
	}

	if a.config.MeterDevice != "" {
		reader := mbus.New(a.config.MeterDevice)
		a.source = metered.New(a.source, reader, a.config.MeterModel, a.config.MeterPrimaryID)
		logrus.Infof("wasted energy input from %s meter %s on %s", a.config.MeterModel, a.config.MeterPrimaryID, a.config.MeterDevice)
	}
	return nil
}

func (a *App) evaluationLoop(ctx context.Context) {
	defer a.wg.Done()
	interval := time.Duration(a.config.Interval) * time.Second
	timer := time.NewTimer(0) // first evaluation right away
	defer timer.Stop()
	for {
		select {
		case <-timer.C:
			a.evaluate()
			timer.Reset(interval)
		case <-ctx.Done():
			return
		}
	}
}

// evaluate runs one pass: poll the source, run the model, keep the
// result, reconcile alarms and publish.
func (a *App) evaluate() {
	in, err := a.source.Inputs()
	if err != nil {
		logrus.Errorf("error reading inputs: %v", err)
		return
	}

	res := a.coefficients.Evaluate(in.Clamp())
	a.mu.Lock()
	a.latest = &res
	a.mu.Unlock()

	a.reconcileAlarms(res)
	a.publish(res)
}

func (a *App) reconcileAlarms(res simulation.Result) {
	if res.PipeStatus == simulation.PipeWarning {
		if a.alarms.Add(res.PipeStatusMsg) {
			logrus.WithFields(logrus.Fields{
				"pipeHealth": res.Inputs.PipeHealth,
				"efficiency": res.PipeEfficiency,
			}).Warn(res.PipeStatusMsg)
		}
		return
	}
	if a.alarms.Clear() {
		logrus.Infof("pipe alarm cleared, health %.1f%%", res.Inputs.PipeHealth)
	}
}

func (a *App) publish(res simulation.Result) {
	snapshot := state.FromResult(res)
	if a.mqttServer != nil {
		mqtt.Publish(a.mqttServer, snapshot)
	}
	if a.config.Server != "" {
		err := a.report(snapshot)
		if err != nil {
			logrus.Errorf("error reporting metrics: %v", err)
		}
	}
}

// report posts the snapshot to the cloud metrics sink.
func (a *App) report(snapshot *state.Snapshot) error {
	body, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}

	u := fmt.Sprintf("%s/api/dashboard/metrics-v1", a.config.Server)
	req, err := http.NewRequest("POST", u, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Add("Authorization", a.config.Token())

	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return fmt.Errorf("error posting metrics StatusCode: %d", resp.StatusCode)
	}
	return nil
}

func (a *App) result() *simulation.Result {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.latest
}
