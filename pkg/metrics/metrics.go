// Package metrics exports audio module activity to Prometheus.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/robotalks/audio.go/pkg/audio"
	"github.com/robotalks/audio.go/pkg/audio/wire"
)

// NewRegistry creates a registry with the Go and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// Handler serves the metrics of reg.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
}

// Listener counts module traffic. It implements audio.Listener.
type Listener struct {
	FramesSent    *prometheus.CounterVec // labels: kind
	Notifications *prometheus.CounterVec // labels: kind
	Errors        *prometheus.CounterVec // labels: code
	InvalidFrames prometheus.Counter
	Ready         prometheus.Gauge
	BringUps      *prometheus.CounterVec // labels: result=ready|failed
	Files         prometheus.Gauge
	Folders       prometheus.Gauge
}

// NewListener registers and returns the module metrics.
func NewListener(reg prometheus.Registerer) *Listener {
	l := &Listener{
		FramesSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "audio_frames_sent_total",
			Help: "Frames sent to the audio module by kind.",
		}, []string{"kind"}),
		Notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "audio_notifications_total",
			Help: "Notifications and replies received from the audio module by kind.",
		}, []string{"kind"}),
		Errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "audio_errors_total",
			Help: "Errors reported by the audio module, including reply timeouts.",
		}, []string{"code"}),
		InvalidFrames: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "audio_invalid_frames_total",
			Help: "Received frames failing verification.",
		}),
		Ready: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "audio_ready",
			Help: "1 when the audio module completed bring-up.",
		}),
		BringUps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "audio_bring_ups_total",
			Help: "Completed bring-ups by result.",
		}, []string{"result"}),
		Files: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "audio_files",
			Help: "Files on the selected device.",
		}),
		Folders: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "audio_folders",
			Help: "Folders on the selected device.",
		}),
	}
	reg.MustRegister(l.FramesSent, l.Notifications, l.Errors, l.InvalidFrames,
		l.Ready, l.BringUps, l.Files, l.Folders)
	return l
}

// RegisterDroppedBytes exports the count of received bytes dropped by the
// transport.
func RegisterDroppedBytes(reg prometheus.Registerer, dropped func() uint64) {
	reg.MustRegister(prometheus.NewCounterFunc(prometheus.CounterOpts{
		Name: "audio_dropped_bytes_total",
		Help: "Received bytes dropped because the receive buffer was full.",
	}, func() float64 { return float64(dropped()) }))
}

func (l *Listener) notified(kind string) {
	l.Notifications.WithLabelValues(kind).Inc()
}

func (l *Listener) OnAck()                                 { l.notified("ack") }
func (l *Listener) OnDeviceInserted(audio.Device)          { l.notified("inserted") }
func (l *Listener) OnDeviceRemoved(audio.Device)           { l.notified("removed") }
func (l *Listener) OnFileFinished(audio.Device, uint16)    { l.notified("finished") }
func (l *Listener) OnStatus(audio.Device, audio.PlayState) { l.notified("status") }
func (l *Listener) OnVolume(uint8)                         { l.notified("volume") }
func (l *Listener) OnEqualizer(audio.Equalizer)            { l.notified("eq") }
func (l *Listener) OnPlaybackSequence(audio.Sequence)      { l.notified("sequence") }
func (l *Listener) OnFirmwareVersion(uint16)               { l.notified("version") }
func (l *Listener) OnFileCount(audio.Device, uint16)       { l.notified("files") }
func (l *Listener) OnCurrentFile(audio.Device, uint16)     { l.notified("current") }
func (l *Listener) OnFolderTrackCount(uint16)              { l.notified("folder-tracks") }
func (l *Listener) OnFolderCount(uint16)                   { l.notified("folders") }

// OnInitComplete implements audio.Listener. A module reset also drops
// readiness.
func (l *Listener) OnInitComplete(audio.DeviceSet) {
	l.notified("init-complete")
	l.Ready.Set(0)
}

// OnError implements audio.Listener.
func (l *Listener) OnError(code audio.ErrorCode) {
	l.Errors.WithLabelValues(code.Error()).Inc()
}

// OnInvalidFrame implements audio.Listener.
func (l *Listener) OnInvalidFrame([]byte) {
	l.InvalidFrames.Inc()
}

// OnFrameSent implements audio.Listener.
func (l *Listener) OnFrameSent(f wire.Frame) {
	l.FramesSent.WithLabelValues(f.Kind.String()).Inc()
}

// OnReady implements audio.Listener.
func (l *Listener) OnReady(s audio.Session) {
	l.Ready.Set(1)
	l.Files.Set(float64(s.Files))
	l.Folders.Set(float64(s.Folders))
	l.BringUps.WithLabelValues("ready").Inc()
}

// OnBringUpFailed implements audio.Listener.
func (l *Listener) OnBringUpFailed(error) {
	l.Ready.Set(0)
	l.BringUps.WithLabelValues("failed").Inc()
}
