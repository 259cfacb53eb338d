package player

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/audio.go/pkg/audio"
	"github.com/robotalks/audio.go/pkg/l1/env/controller"
)

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audio.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
controller:
  id: kitchen
  mqtt: mqtt://broker:1883/home/
player:
  port: tcp://bridge:4000
  reply-timeout: 350ms
  volume: 12
  eq: jazz
`), 0644))

	ctl := controller.NewConfig()
	conf := NewConfig()
	require.NoError(t, LoadFile(path, ctl, conf))
	require.Equal(t, "kitchen", ctl.ID)
	require.Equal(t, "mqtt://broker:1883/home/", ctl.MQTTBrokerURL)
	require.Equal(t, "tcp://bridge:4000", conf.Port)
	require.Equal(t, 350*time.Millisecond, conf.ReplyTimeout)
	require.Equal(t, audio.DefaultResetTimeout, conf.ResetTimeout, "unset keys keep defaults")
	require.Equal(t, 12, conf.Volume)
	require.Equal(t, "jazz", conf.Equalizer)
	require.NoError(t, conf.Validate())
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()
	require.Error(t, LoadFile(filepath.Join(dir, "missing.yaml"), controller.NewConfig(), NewConfig()))

	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("player:\n  volume: loud\n"), 0644))
	require.Error(t, LoadFile(path, controller.NewConfig(), NewConfig()))
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name string
		conf Config
		err  bool
	}{
		{"defaults", Config{Port: "/dev/ttyUSB0", Volume: -1}, false},
		{"volume", Config{Port: "/dev/ttyUSB0", Volume: audio.MaxVolume, Equalizer: "bass"}, false},
		{"no port", Config{Volume: -1}, true},
		{"volume too high", Config{Port: "/dev/ttyUSB0", Volume: audio.MaxVolume + 1}, true},
		{"unknown eq", Config{Port: "/dev/ttyUSB0", Volume: -1, Equalizer: "loud"}, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.conf.Validate()
			if tc.err {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestConfigNewControllerOpenError(t *testing.T) {
	conf := NewConfig()
	conf.Port = "udp://localhost:1"
	_, err := conf.NewController(&controller.Env{})
	require.Error(t, err)
}
