package controller

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"

	fx "github.com/robotalks/audio.go/pkg/framework"
	"github.com/robotalks/audio.go/pkg/l1"
	"github.com/robotalks/audio.go/pkg/l1/comm"
	"github.com/robotalks/audio.go/pkg/l1/comm/mqtt"
	"github.com/robotalks/audio.go/pkg/l1/env"
)

// Config provides common options to setup an env for L1 controllers.
type Config struct {
	Info l1.ControllerInfo `yaml:"-"`

	// ID overrides the controller ID derived from the machine ID.
	ID string `yaml:"id,omitempty"`

	// MQTTBrokerURL specifies the MQTT broker to use, e.g.
	// mqtt://host:port/topic-prefix. Empty runs without a registry.
	MQTTBrokerURL string `yaml:"mqtt,omitempty"`
}

var defaultConfig = Config{
	MQTTBrokerURL: "mqtt://localhost:1883/robo/",
}

func init() {
	if val, ok := os.LookupEnv("AUDIO_MQTT_URL"); ok {
		defaultConfig.MQTTBrokerURL = val
	}
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.ID, "id", defaultConfig.ID, "Controller ID, defaults to one derived from the machine ID")
	flag.StringVar(&defaultConfig.MQTTBrokerURL, "mqtt", defaultConfig.MQTTBrokerURL, "MQTT broker URL, empty to disable")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// SetControllerType should be called in init with basic info about the controller.
func SetControllerType(typ string, meta l1.ControllerMeta) {
	defaultConfig.Info.Ref.Type = typ
	defaultConfig.Info.Meta = meta
}

// Env is the env for L1 controllers.
type Env struct {
	Config    *Config
	Registrar *comm.RegistrarMux
}

// NewConfig creates a Config with default configurations.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// NewEnv creates Env from config.
func (c *Config) NewEnv() (*Env, error) {
	if c.Info.Ref.ID = c.ID; c.Info.Ref.ID == "" {
		c.Info.Ref.ID = env.MachineID(c.Info.Ref.Type)
	}
	if !c.Info.Ref.IsValid() {
		return nil, fmt.Errorf("controller type and id must be specified")
	}
	e := &Env{
		Config:    c,
		Registrar: &comm.RegistrarMux{},
	}
	if c.MQTTBrokerURL != "" {
		reg, err := mqtt.NewRegistrar(c.MQTTBrokerURL, c.Info)
		if err != nil {
			return nil, fmt.Errorf("create MQTT registrar: %w", err)
		}
		e.Registrar.Add(reg)
		glog.Infof("registering %s at %s", c.Info.Ref.Name(), c.MQTTBrokerURL)
	} else {
		glog.Warning("no registry configured, remote commands are disabled")
	}
	return e, nil
}

// MustNewEnv creates Env and fails on error.
func (c *Config) MustNewEnv() *Env {
	e, err := c.NewEnv()
	if err != nil {
		glog.Exit(err)
	}
	return e
}

// AddToLoop adds controllers/runners to loop.
func (e *Env) AddToLoop(loop *fx.Loop) {
	loop.Add(e.Registrar)
	loop.Add(&comm.UnsupportedCommands{})
}
