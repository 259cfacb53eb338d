package audio

import (
	"github.com/golang/glog"

	"github.com/robotalks/audio.go/pkg/audio/wire"
)

// Volume range accepted by all module variants.
const (
	MinVolume = 0
	MaxVolume = 30
)

// Folder addressing limits.
const (
	maxSmallFolderTrack = 255
	maxBigFolder        = 15
	maxBigFolderTrack   = 3000
)

// SelectSource selects the playback device.
func (m *Module) SelectSource(dev Device) error {
	var param uint16
	switch dev {
	case DeviceUSB:
		param = 1
	case DeviceSD:
		param = 2
	case DeviceFlash:
		param = 5
	default:
		return ErrUnsupportedDevice
	}
	return m.send(wire.KindSelectSource, param, true)
}

// PlayFile plays a file by its index on the selected device.
func (m *Module) PlayFile(index uint16) error {
	return m.send(wire.KindPlayFile, index, true)
}

// PlayNextFile plays the next file.
func (m *Module) PlayNextFile() error {
	return m.send(wire.KindPlayNext, 0, true)
}

// PlayPreviousFile plays the previous file.
func (m *Module) PlayPreviousFile() error {
	return m.send(wire.KindPlayPrevious, 0, true)
}

// LoopFile repeats a single file.
func (m *Module) LoopFile(index uint16) error {
	return m.send(wire.KindLoopFile, index, true)
}

// LoopAllFiles repeats all files on the selected device.
func (m *Module) LoopAllFiles() error {
	return m.send(wire.KindLoopAll, 1, true)
}

// LoopFolder repeats all files in a folder.
func (m *Module) LoopFolder(folder uint16) error {
	return m.send(wire.KindLoopFolder, folder, true)
}

// PlayFilesInRandomOrder plays all files shuffled.
func (m *Module) PlayFilesInRandomOrder() error {
	return m.send(wire.KindRandomPlay, 0, true)
}

// PlayTrack plays a track from a numbered folder.
//
// Tracks below 256 use the folder/track encoding. Larger tracks use the
// big folder encoding, which only addresses folders below 16 and tracks up
// to 3000. Anything else returns ErrTrackNotAddressable without sending.
func (m *Module) PlayTrack(folder, track uint16) error {
	switch {
	case track <= maxSmallFolderTrack:
		return m.send(wire.KindPlayFromFolder, folder<<8|track, true)
	case folder <= maxBigFolder && track <= maxBigFolderTrack:
		return m.send(wire.KindPlayFromBigFolder, folder<<12|track, true)
	}
	glog.V(1).Infof("folder %d track %d not addressable", folder, track)
	return ErrTrackNotAddressable
}

// PlayMP3Track plays a track from the "mp3" folder.
func (m *Module) PlayMP3Track(track uint16) error {
	return m.send(wire.KindPlayFromMP3, track, true)
}

// InsertAdvert interrupts playback with a track from the "advert" folder.
func (m *Module) InsertAdvert(track uint16) error {
	return m.send(wire.KindInsertAdvert, track, true)
}

// StopAdvert resumes the interrupted playback.
func (m *Module) StopAdvert() error {
	return m.send(wire.KindStopAdvert, 0, true)
}

// Stop stops playback.
func (m *Module) Stop() error {
	return m.send(wire.KindStop, 0, true)
}

// Pause pauses playback.
func (m *Module) Pause() error {
	return m.send(wire.KindPause, 0, true)
}

// Unpause resumes paused playback.
func (m *Module) Unpause() error {
	return m.send(wire.KindResume, 0, true)
}

// VolumeUp increments the volume.
func (m *Module) VolumeUp() error {
	return m.send(wire.KindVolumeUp, 0, true)
}

// VolumeDown decrements the volume.
func (m *Module) VolumeDown() error {
	return m.send(wire.KindVolumeDown, 0, true)
}

// SetVolume sets the volume, clamped to [MinVolume, MaxVolume].
func (m *Module) SetVolume(volume int) error {
	if volume < MinVolume {
		volume = MinVolume
	} else if volume > MaxVolume {
		volume = MaxVolume
	}
	return m.send(wire.KindSetVolume, uint16(volume), true)
}

// SelectEQ selects the equalizer preset.
func (m *Module) SelectEQ(eq Equalizer) error {
	return m.send(wire.KindSelectEQ, uint16(eq), true)
}

// Sleep puts the module into low power mode.
func (m *Module) Sleep() error {
	return m.send(wire.KindSleep, 0, true)
}

// Wake wakes the module up.
func (m *Module) Wake() error {
	return m.send(wire.KindWake, 0, true)
}

// DisableDACs turns off the audio outputs.
func (m *Module) DisableDACs() error {
	return m.send(wire.KindDisableDAC, 1, true)
}

// EnableDACs turns on the audio outputs.
func (m *Module) EnableDACs() error {
	return m.send(wire.KindDisableDAC, 0, true)
}

// QueryFileCount asks for the number of files on a device.
func (m *Module) QueryFileCount(dev Device) error {
	kind, err := perDevice(dev, wire.KindUSBFileCount, wire.KindSDFileCount, wire.KindFlashFileCount)
	if err != nil {
		return err
	}
	return m.send(kind, 0, false)
}

// QueryCurrentFile asks for the file being played on a device.
func (m *Module) QueryCurrentFile(dev Device) error {
	kind, err := perDevice(dev, wire.KindCurrentUSBFile, wire.KindCurrentSDFile, wire.KindCurrentFlashFile)
	if err != nil {
		return err
	}
	return m.send(kind, 0, false)
}

// QueryFolderTrackCount asks for the number of tracks in a folder.
func (m *Module) QueryFolderTrackCount(folder uint16) error {
	return m.send(wire.KindFolderTrackCount, folder, false)
}

// QueryFolderCount asks for the number of folders on the selected device.
func (m *Module) QueryFolderCount() error {
	return m.send(wire.KindFolderCount, 0, false)
}

// QueryStatus asks for the playback status.
func (m *Module) QueryStatus() error {
	return m.send(wire.KindStatus, 0, false)
}

// QueryVolume asks for the volume.
func (m *Module) QueryVolume() error {
	return m.send(wire.KindVolume, 0, false)
}

// QueryEQ asks for the equalizer preset.
func (m *Module) QueryEQ() error {
	return m.send(wire.KindEQ, 0, false)
}

// QueryPlaybackSequence asks for the playback sequence mode.
func (m *Module) QueryPlaybackSequence() error {
	return m.send(wire.KindPlaybackSequence, 0, false)
}

// QueryFirmwareVersion asks for the firmware version.
func (m *Module) QueryFirmwareVersion() error {
	return m.send(wire.KindFirmwareVersion, 0, false)
}

func perDevice(dev Device, usb, sd, flash wire.Kind) (wire.Kind, error) {
	switch dev {
	case DeviceUSB:
		return usb, nil
	case DeviceSD:
		return sd, nil
	case DeviceFlash:
		return flash, nil
	}
	return 0, ErrUnsupportedDevice
}
