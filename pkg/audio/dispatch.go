package audio

import "github.com/robotalks/audio.go/pkg/audio/wire"

// Bits of the init-complete device mask.
const (
	initMaskUSB   = 0x01
	initMaskSD    = 0x02
	initMaskAux   = 0x04
	initMaskFlash = 0x10
)

// Dispatch decodes a verified frame and invokes the matching callback.
// Unknown kinds and outgoing command kinds are ignored.
func Dispatch(l Listener, f wire.Frame) {
	lo := f.ParamLo()
	switch f.Kind {
	case wire.KindDeviceInserted:
		for _, d := range insertionMask(lo).Devices() {
			l.OnDeviceInserted(d)
		}
	case wire.KindDeviceRemoved:
		for _, d := range insertionMask(lo).Devices() {
			l.OnDeviceRemoved(d)
		}
	case wire.KindFinishedUSBFile:
		l.OnFileFinished(DeviceUSB, f.Param)
	case wire.KindFinishedSDFile:
		l.OnFileFinished(DeviceSD, f.Param)
	case wire.KindFinishedFlashFile:
		l.OnFileFinished(DeviceFlash, f.Param)
	case wire.KindInitComplete:
		var s DeviceSet
		if lo&initMaskUSB != 0 {
			s |= NewDeviceSet(DeviceUSB)
		}
		if lo&initMaskSD != 0 {
			s |= NewDeviceSet(DeviceSD)
		}
		if lo&initMaskAux != 0 {
			s |= NewDeviceSet(DeviceAux)
		}
		if lo&initMaskFlash != 0 {
			s |= NewDeviceSet(DeviceFlash)
		}
		l.OnInitComplete(s)
	case wire.KindError:
		l.OnError(ErrorCode(lo))
	case wire.KindAck:
		l.OnAck()
	case wire.KindStatus:
		l.OnStatus(statusDevice(f.ParamHi()), statusState(lo))
	case wire.KindVolume:
		l.OnVolume(lo)
	case wire.KindEQ:
		l.OnEqualizer(Equalizer(lo))
	case wire.KindPlaybackSequence:
		l.OnPlaybackSequence(Sequence(lo))
	case wire.KindFirmwareVersion:
		l.OnFirmwareVersion(f.Param)
	case wire.KindUSBFileCount:
		l.OnFileCount(DeviceUSB, f.Param)
	case wire.KindSDFileCount:
		l.OnFileCount(DeviceSD, f.Param)
	case wire.KindFlashFileCount:
		l.OnFileCount(DeviceFlash, f.Param)
	case wire.KindCurrentUSBFile:
		l.OnCurrentFile(DeviceUSB, f.Param)
	case wire.KindCurrentSDFile:
		l.OnCurrentFile(DeviceSD, f.Param)
	case wire.KindCurrentFlashFile:
		l.OnCurrentFile(DeviceFlash, f.Param)
	case wire.KindFolderTrackCount:
		l.OnFolderTrackCount(f.Param)
	case wire.KindFolderCount:
		l.OnFolderCount(f.Param)
	}
}

// insertionMask maps bit0 USB, bit1 SD, bit2 AUX.
func insertionMask(lo byte) DeviceSet {
	return DeviceSet(lo & 0x07)
}

func statusDevice(hi byte) Device {
	switch hi {
	case 1:
		return DeviceUSB
	case 2:
		return DeviceSD
	}
	return DeviceSleep
}

func statusState(lo byte) PlayState {
	if lo <= byte(Paused) {
		return PlayState(lo)
	}
	return Asleep
}
