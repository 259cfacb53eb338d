package player

import (
	"encoding/hex"

	"github.com/robotalks/audio.go/pkg/audio"
	"github.com/robotalks/audio.go/pkg/audio/wire"
	"github.com/robotalks/audio.go/pkg/player/msgs"
)

// OnAck implements audio.Listener.
func (c *Controller) OnAck() {
	c.emit(&msgs.PlayerEvent{Event: msgs.EventAck})
}

// OnDeviceInserted implements audio.Listener.
func (c *Controller) OnDeviceInserted(d audio.Device) {
	c.emit(&msgs.PlayerEvent{Event: msgs.EventInserted, Device: d.String()})
}

// OnDeviceRemoved implements audio.Listener.
func (c *Controller) OnDeviceRemoved(d audio.Device) {
	c.emit(&msgs.PlayerEvent{Event: msgs.EventRemoved, Device: d.String()})
}

// OnFileFinished implements audio.Listener.
func (c *Controller) OnFileFinished(d audio.Device, file uint16) {
	c.status.Playback = audio.Stopped.String()
	c.emit(&msgs.PlayerEvent{Event: msgs.EventFinished, Device: d.String(), Value: uint32(file)})
}

// OnInitComplete implements audio.Listener.
func (c *Controller) OnInitComplete(s audio.DeviceSet) {
	c.emit(&msgs.PlayerEvent{Event: msgs.EventInitComplete, Detail: s.String()})
}

// OnError implements audio.Listener.
func (c *Controller) OnError(code audio.ErrorCode) {
	c.emit(&msgs.PlayerEvent{Event: msgs.EventError, Value: uint32(code), Detail: code.Error()})
}

// OnStatus implements audio.Listener. The reported device is best-effort,
// module firmware differs on which device code is reported.
func (c *Controller) OnStatus(d audio.Device, state audio.PlayState) {
	c.status.Playback = state.String()
	c.emit(&msgs.PlayerEvent{Event: msgs.EventStatus, Device: d.String(), Detail: state.String()})
}

// OnVolume implements audio.Listener.
func (c *Controller) OnVolume(v uint8) {
	c.status.Volume = int32(v)
	c.emit(&msgs.PlayerEvent{Event: msgs.EventVolume, Value: uint32(v)})
}

// OnEqualizer implements audio.Listener.
func (c *Controller) OnEqualizer(eq audio.Equalizer) {
	c.emit(&msgs.PlayerEvent{Event: msgs.EventEqualizer, Value: uint32(eq), Detail: eq.String()})
}

// OnPlaybackSequence implements audio.Listener.
func (c *Controller) OnPlaybackSequence(s audio.Sequence) {
	c.emit(&msgs.PlayerEvent{Event: msgs.EventSequence, Value: uint32(s), Detail: s.String()})
}

// OnFirmwareVersion implements audio.Listener.
func (c *Controller) OnFirmwareVersion(v uint16) {
	c.emit(&msgs.PlayerEvent{Event: msgs.EventVersion, Value: uint32(v)})
}

// OnFileCount implements audio.Listener.
func (c *Controller) OnFileCount(d audio.Device, n uint16) {
	c.emit(&msgs.PlayerEvent{Event: msgs.EventFileCount, Device: d.String(), Value: uint32(n)})
}

// OnCurrentFile implements audio.Listener.
func (c *Controller) OnCurrentFile(d audio.Device, file uint16) {
	c.emit(&msgs.PlayerEvent{Event: msgs.EventCurrentFile, Device: d.String(), Value: uint32(file)})
}

// OnFolderTrackCount implements audio.Listener.
func (c *Controller) OnFolderTrackCount(n uint16) {
	c.emit(&msgs.PlayerEvent{Event: msgs.EventFolderTracks, Value: uint32(n)})
}

// OnFolderCount implements audio.Listener.
func (c *Controller) OnFolderCount(n uint16) {
	c.emit(&msgs.PlayerEvent{Event: msgs.EventFolderCount, Value: uint32(n)})
}

// OnInvalidFrame implements audio.Listener.
func (c *Controller) OnInvalidFrame(raw []byte) {
	c.emit(&msgs.PlayerEvent{Event: msgs.EventInvalidFrame, Detail: hex.EncodeToString(raw)})
}

// OnFrameSent implements audio.Listener.
func (c *Controller) OnFrameSent(wire.Frame) {}

// OnReady implements audio.Listener.
func (c *Controller) OnReady(s audio.Session) {
	c.status.Error = ""
	c.emit(&msgs.PlayerEvent{Event: msgs.EventReady, Device: s.Device.String(), Value: uint32(s.Files), Detail: s.String()})
}

// OnBringUpFailed implements audio.Listener.
func (c *Controller) OnBringUpFailed(err error) {
	c.status.Error = err.Error()
	c.emit(&msgs.PlayerEvent{Event: msgs.EventBringUpFailed, Detail: err.Error()})
}
