package audio

import (
	"fmt"
	"strings"
)

// Device is a playback source.
type Device byte

// Devices.
const (
	DeviceUSB   Device = 0
	DeviceSD    Device = 1
	DeviceAux   Device = 2
	DeviceSleep Device = 3
	DeviceFlash Device = 4
)

// Aliases used by module datasheets.
const (
	DeviceTF  = DeviceSD
	DevicePC  = DeviceAux
	DeviceSPI = DeviceFlash
)

var deviceNames = [...]string{"usb", "sd", "aux", "sleep", "flash"}

// String implements fmt.Stringer.
func (d Device) String() string {
	if int(d) < len(deviceNames) {
		return deviceNames[d]
	}
	return fmt.Sprintf("device(%d)", byte(d))
}

// ParseDevice parses a device name, including the datasheet aliases.
func ParseDevice(s string) (Device, error) {
	switch strings.ToLower(s) {
	case "usb":
		return DeviceUSB, nil
	case "sd", "sdcard", "tf":
		return DeviceSD, nil
	case "aux", "pc":
		return DeviceAux, nil
	case "sleep":
		return DeviceSleep, nil
	case "flash", "spi":
		return DeviceFlash, nil
	}
	return DeviceSleep, fmt.Errorf("unknown device %q", s)
}

// DeviceSet is a set of devices, bit n representing Device(n).
type DeviceSet byte

// NewDeviceSet creates a set of devices.
func NewDeviceSet(devs ...Device) (s DeviceSet) {
	for _, d := range devs {
		s |= 1 << d
	}
	return
}

// Has indicates d is present in the set.
func (s DeviceSet) Has(d Device) bool {
	return s&(1<<d) != 0
}

// Devices lists the devices in the set.
func (s DeviceSet) Devices() (devs []Device) {
	for d := DeviceUSB; d <= DeviceFlash; d++ {
		if s.Has(d) {
			devs = append(devs, d)
		}
	}
	return
}

// String implements fmt.Stringer.
func (s DeviceSet) String() string {
	names := make([]string, 0, 5)
	for _, d := range s.Devices() {
		names = append(names, d.String())
	}
	return "[" + strings.Join(names, ",") + "]"
}

// Equalizer is an equalizer preset.
type Equalizer byte

// Equalizer presets.
const (
	EQNormal Equalizer = iota
	EQPop
	EQRock
	EQJazz
	EQClassical
	EQBass
)

var eqNames = [...]string{"normal", "pop", "rock", "jazz", "classical", "bass"}

// String implements fmt.Stringer.
func (e Equalizer) String() string {
	if int(e) < len(eqNames) {
		return eqNames[e]
	}
	return fmt.Sprintf("eq(%d)", byte(e))
}

// ParseEqualizer parses a preset name.
func ParseEqualizer(s string) (Equalizer, error) {
	for n, name := range eqNames {
		if strings.EqualFold(s, name) {
			return Equalizer(n), nil
		}
	}
	return EQNormal, fmt.Errorf("unknown equalizer %q", s)
}

// PlayState is the playback state reported by the status query.
type PlayState byte

// Play states.
const (
	Stopped PlayState = iota
	Playing
	Paused
	Asleep
)

// String implements fmt.Stringer.
func (s PlayState) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	}
	return "asleep"
}

// Sequence is the playback sequence mode.
type Sequence byte

// Sequence modes.
const (
	SeqLoopAll Sequence = iota
	SeqLoopFolder
	SeqLoopTrack
	SeqRandom
	SeqSingle
)

var seqNames = [...]string{"loop-all", "loop-folder", "loop-track", "random", "single"}

// String implements fmt.Stringer.
func (s Sequence) String() string {
	if int(s) < len(seqNames) {
		return seqNames[s]
	}
	return fmt.Sprintf("sequence(%d)", byte(s))
}

// Session holds what bring-up learned about the module.
type Session struct {
	// Device is the selected source, DeviceSleep until one is selected.
	Device          Device
	Files           uint16
	Folders         uint16
	FirmwareVersion uint16
}

// String implements fmt.Stringer.
func (s Session) String() string {
	return fmt.Sprintf("device=%s files=%d folders=%d version=%d",
		s.Device, s.Files, s.Folders, s.FirmwareVersion)
}
