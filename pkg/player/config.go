package player

import (
	"flag"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/robotalks/audio.go/pkg/audio"
	"github.com/robotalks/audio.go/pkg/l1/env/controller"
	"github.com/robotalks/audio.go/pkg/transport"
)

// Config defines the configurations for the controller.
type Config struct {
	// Port is the link to the module, see transport.Open.
	Port         string        `yaml:"port,omitempty"`
	ReplyTimeout time.Duration `yaml:"reply-timeout,omitempty"`
	ResetTimeout time.Duration `yaml:"reset-timeout,omitempty"`
	// Volume is applied once the module is ready, -1 keeps the module's.
	Volume int `yaml:"volume"`
	// Equalizer is applied once the module is ready, empty keeps the module's.
	Equalizer   string `yaml:"eq,omitempty"`
	MetricsAddr string `yaml:"metrics-addr,omitempty"`
}

var defaultConfig = Config{
	Port:         "/dev/ttyUSB0",
	ReplyTimeout: audio.DefaultReplyTimeout,
	ResetTimeout: audio.DefaultResetTimeout,
	Volume:       -1,
}

var configFile string

func init() {
	if val := os.Getenv("AUDIO_PORT"); val != "" {
		defaultConfig.Port = val
	}
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.StringVar(&configFile, "config", configFile, "YAML config file, command line flags take precedence")
	flag.StringVar(&defaultConfig.Port, "port", defaultConfig.Port, "Audio module link: serial device, serial://, tcp:// or ws:// URL")
	flag.DurationVar(&defaultConfig.ReplyTimeout, "reply-timeout", defaultConfig.ReplyTimeout, "Reply timeout of commands and queries")
	flag.DurationVar(&defaultConfig.ResetTimeout, "reset-timeout", defaultConfig.ResetTimeout, "Reply timeout of reset")
	flag.IntVar(&defaultConfig.Volume, "volume", defaultConfig.Volume, "Volume (0-30) set once ready, -1 to keep")
	flag.StringVar(&defaultConfig.Equalizer, "eq", defaultConfig.Equalizer, "Equalizer preset set once ready")
	flag.StringVar(&defaultConfig.MetricsAddr, "metrics-addr", defaultConfig.MetricsAddr, "Serve Prometheus metrics on this address")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a config with defaults.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// File is the layout of the YAML config file.
type File struct {
	Controller *controller.Config `yaml:"controller,omitempty"`
	Player     *Config            `yaml:"player,omitempty"`
}

// LoadFile applies a YAML config file over ctl and conf.
func LoadFile(path string, ctl *controller.Config, conf *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, &File{Controller: ctl, Player: conf}); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// ParseFlags parses the command line and applies the config file given by
// -config. Flags set on the command line override the file.
func ParseFlags() error {
	flag.Parse()
	if configFile == "" {
		return nil
	}
	explicit := make(map[string]string)
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = f.Value.String() })
	if err := LoadFile(configFile, controller.Default(), &defaultConfig); err != nil {
		return err
	}
	for name, val := range explicit {
		if err := flag.Set(name, val); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks the config.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port must be specified")
	}
	if c.Volume > audio.MaxVolume {
		return fmt.Errorf("volume %d exceeds %d", c.Volume, audio.MaxVolume)
	}
	if c.Equalizer != "" {
		if _, err := audio.ParseEqualizer(c.Equalizer); err != nil {
			return err
		}
	}
	return nil
}

// NewController opens the link and creates the controller.
func (c *Config) NewController(e *controller.Env) (*Controller, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	conn, err := transport.Open(c.Port)
	if err != nil {
		return nil, err
	}
	pump := transport.NewPump(conn)
	ctl := NewController(e.Registrar, pump)
	ctl.Module.ReplyTimeout = c.ReplyTimeout
	ctl.Module.ResetTimeout = c.ResetTimeout
	ctl.Volume = c.Volume
	if c.Equalizer != "" {
		eq, _ := audio.ParseEqualizer(c.Equalizer)
		ctl.Equalizer = &eq
	}
	return ctl, nil
}
