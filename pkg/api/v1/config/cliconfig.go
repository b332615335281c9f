package config

import (
	"strings"
	"sync"
)

// CliConfig is loaded by multiconfig from flags, environment and the
// struct defaults below.
type CliConfig struct {
	// ListenAddr is where the dashboard HTTP API is served.
	ListenAddr string `default:":8080"`

	// Interval between evaluations in seconds.
	Interval int `default:"15"`

	// Server and APIToken point at an optional cloud metrics sink.
	// When Server is empty nothing is reported.
	Server   string
	APIToken string

	// SensorAddress is an optional modbus TCP endpoint serving the six
	// simulation inputs as input registers. When empty the inputs are
	// driven manually over the HTTP API.
	SensorAddress string

	// MeterDevice is an optional M-Bus serial device carrying a heat
	// meter that overrides the wasted energy input.
	MeterDevice    string
	MeterModel     string `default:"garo-GNM3D-MBUS"`
	MeterPrimaryID string `default:"1"`

	// MQTTAddress is the TCP listen address of the embedded broker.
	MQTTAddress string `default:":1883"`
	MQTTEnabled bool

	LogLevel string `default:"info"`

	mutex sync.RWMutex
}

func (c *CliConfig) Token() string {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.APIToken
}

func (c *CliConfig) SetToken(t string) {
	c.mutex.Lock()
	c.APIToken = strings.TrimSpace(t)
	c.mutex.Unlock()
}
