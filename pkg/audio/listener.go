package audio

import "github.com/robotalks/audio.go/pkg/audio/wire"

// Listener receives decoded notifications from the module.
type Listener interface {
	OnAck()
	OnDeviceInserted(Device)
	OnDeviceRemoved(Device)
	OnFileFinished(dev Device, file uint16)
	OnInitComplete(DeviceSet)
	OnError(ErrorCode)
	// OnStatus reports the status query result. Some module variants always
	// report the SD card, so dev is best-effort.
	OnStatus(dev Device, state PlayState)
	OnVolume(uint8)
	OnEqualizer(Equalizer)
	OnPlaybackSequence(Sequence)
	OnFirmwareVersion(uint16)
	OnFileCount(dev Device, count uint16)
	OnCurrentFile(dev Device, file uint16)
	OnFolderTrackCount(uint16)
	OnFolderCount(uint16)

	// OnInvalidFrame receives the raw bytes of a frame failing verification.
	OnInvalidFrame(raw []byte)
	// OnFrameSent is called for every frame written to the module.
	OnFrameSent(wire.Frame)
	// OnReady is called when bring-up completes.
	OnReady(Session)
	// OnBringUpFailed is called when bring-up stops without completing.
	OnBringUpFailed(error)
}

// NopListener implements Listener and ignores everything.
// Embed it to implement only the callbacks of interest.
type NopListener struct{}

func (NopListener) OnAck()                        {}
func (NopListener) OnDeviceInserted(Device)       {}
func (NopListener) OnDeviceRemoved(Device)        {}
func (NopListener) OnFileFinished(Device, uint16) {}
func (NopListener) OnInitComplete(DeviceSet)      {}
func (NopListener) OnError(ErrorCode)             {}
func (NopListener) OnStatus(Device, PlayState)    {}
func (NopListener) OnVolume(uint8)                {}
func (NopListener) OnEqualizer(Equalizer)         {}
func (NopListener) OnPlaybackSequence(Sequence)   {}
func (NopListener) OnFirmwareVersion(uint16)      {}
func (NopListener) OnFileCount(Device, uint16)    {}
func (NopListener) OnCurrentFile(Device, uint16)  {}
func (NopListener) OnFolderTrackCount(uint16)     {}
func (NopListener) OnFolderCount(uint16)          {}
func (NopListener) OnInvalidFrame([]byte)         {}
func (NopListener) OnFrameSent(wire.Frame)        {}
func (NopListener) OnReady(Session)               {}
func (NopListener) OnBringUpFailed(error)         {}

// Listeners fans out notifications in order.
type Listeners []Listener

func (ls Listeners) OnAck() {
	for _, l := range ls {
		l.OnAck()
	}
}

func (ls Listeners) OnDeviceInserted(d Device) {
	for _, l := range ls {
		l.OnDeviceInserted(d)
	}
}

func (ls Listeners) OnDeviceRemoved(d Device) {
	for _, l := range ls {
		l.OnDeviceRemoved(d)
	}
}

func (ls Listeners) OnFileFinished(d Device, file uint16) {
	for _, l := range ls {
		l.OnFileFinished(d, file)
	}
}

func (ls Listeners) OnInitComplete(s DeviceSet) {
	for _, l := range ls {
		l.OnInitComplete(s)
	}
}

func (ls Listeners) OnError(c ErrorCode) {
	for _, l := range ls {
		l.OnError(c)
	}
}

func (ls Listeners) OnStatus(d Device, s PlayState) {
	for _, l := range ls {
		l.OnStatus(d, s)
	}
}

func (ls Listeners) OnVolume(v uint8) {
	for _, l := range ls {
		l.OnVolume(v)
	}
}

func (ls Listeners) OnEqualizer(eq Equalizer) {
	for _, l := range ls {
		l.OnEqualizer(eq)
	}
}

func (ls Listeners) OnPlaybackSequence(s Sequence) {
	for _, l := range ls {
		l.OnPlaybackSequence(s)
	}
}

func (ls Listeners) OnFirmwareVersion(v uint16) {
	for _, l := range ls {
		l.OnFirmwareVersion(v)
	}
}

func (ls Listeners) OnFileCount(d Device, n uint16) {
	for _, l := range ls {
		l.OnFileCount(d, n)
	}
}

func (ls Listeners) OnCurrentFile(d Device, file uint16) {
	for _, l := range ls {
		l.OnCurrentFile(d, file)
	}
}

func (ls Listeners) OnFolderTrackCount(n uint16) {
	for _, l := range ls {
		l.OnFolderTrackCount(n)
	}
}

func (ls Listeners) OnFolderCount(n uint16) {
	for _, l := range ls {
		l.OnFolderCount(n)
	}
}

func (ls Listeners) OnInvalidFrame(raw []byte) {
	for _, l := range ls {
		l.OnInvalidFrame(raw)
	}
}

func (ls Listeners) OnFrameSent(f wire.Frame) {
	for _, l := range ls {
		l.OnFrameSent(f)
	}
}

func (ls Listeners) OnReady(s Session) {
	for _, l := range ls {
		l.OnReady(s)
	}
}

func (ls Listeners) OnBringUpFailed(err error) {
	for _, l := range ls {
		l.OnBringUpFailed(err)
	}
}
