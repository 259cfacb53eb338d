package metrics

import (
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/robotalks/audio.go/pkg/audio"
	"github.com/robotalks/audio.go/pkg/audio/wire"
)

func TestListener(t *testing.T) {
	reg := NewRegistry()
	l := NewListener(reg)
	var _ audio.Listener = l

	l.OnFrameSent(wire.NewFrame(wire.KindReset, 0, false))
	l.OnFrameSent(wire.NewFrame(wire.KindPlayFile, 3, true))
	l.OnFrameSent(wire.NewFrame(wire.KindPlayFile, 4, true))
	l.OnInitComplete(audio.NewDeviceSet(audio.DeviceSD))
	l.OnAck()
	l.OnError(audio.ErrTimedOut)
	l.OnError(audio.ErrTimedOut)
	l.OnInvalidFrame([]byte{0x7E, 0x00})
	l.OnReady(audio.Session{Device: audio.DeviceSD, Files: 9, Folders: 2})

	require.Equal(t, 1.0, testutil.ToFloat64(l.FramesSent.WithLabelValues(wire.KindReset.String())))
	require.Equal(t, 2.0, testutil.ToFloat64(l.FramesSent.WithLabelValues(wire.KindPlayFile.String())))
	require.Equal(t, 1.0, testutil.ToFloat64(l.Notifications.WithLabelValues("ack")))
	require.Equal(t, 2.0, testutil.ToFloat64(l.Errors.WithLabelValues("timed out")))
	require.Equal(t, 1.0, testutil.ToFloat64(l.InvalidFrames))
	require.Equal(t, 1.0, testutil.ToFloat64(l.Ready))
	require.Equal(t, 9.0, testutil.ToFloat64(l.Files))
	require.Equal(t, 2.0, testutil.ToFloat64(l.Folders))

	l.OnBringUpFailed(errors.New("no playable files"))
	require.Equal(t, 0.0, testutil.ToFloat64(l.Ready))
	require.Equal(t, 1.0, testutil.ToFloat64(l.BringUps.WithLabelValues("ready")))
	require.Equal(t, 1.0, testutil.ToFloat64(l.BringUps.WithLabelValues("failed")))
}

func TestHandler(t *testing.T) {
	reg := NewRegistry()
	l := NewListener(reg)
	dropped := uint64(5)
	RegisterDroppedBytes(reg, func() uint64 { return dropped })
	l.OnFolderCount(3)

	srv := httptest.NewServer(Handler(reg))
	defer srv.Close()
	resp, err := srv.Client().Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	text := string(body)
	require.True(t, strings.Contains(text, `audio_notifications_total{kind="folders"} 1`), text)
	require.True(t, strings.Contains(text, "audio_dropped_bytes_total 5"), text)
	require.True(t, strings.Contains(text, "go_goroutines"), text)
}
