package wire

import "fmt"

// Kind identifies the command, query, reply or notification carried by a frame.
type Kind byte

// Commands.
const (
	KindPlayNext          Kind = 0x01
	KindPlayPrevious      Kind = 0x02
	KindPlayFile          Kind = 0x03
	KindVolumeUp          Kind = 0x04
	KindVolumeDown        Kind = 0x05
	KindSetVolume         Kind = 0x06
	KindSelectEQ          Kind = 0x07
	KindLoopFile          Kind = 0x08
	KindSelectSource      Kind = 0x09
	KindSleep             Kind = 0x0A
	KindWake              Kind = 0x0B
	KindReset             Kind = 0x0C
	KindResume            Kind = 0x0D
	KindPause             Kind = 0x0E
	KindPlayFromFolder    Kind = 0x0F
	KindVolumeAdjust      Kind = 0x10
	KindLoopAll           Kind = 0x11
	KindPlayFromMP3       Kind = 0x12
	KindInsertAdvert      Kind = 0x13
	KindPlayFromBigFolder Kind = 0x14
	KindStopAdvert        Kind = 0x15
	KindStop              Kind = 0x16
	KindLoopFolder        Kind = 0x17
	KindRandomPlay        Kind = 0x18
	KindLoopCurrentFile   Kind = 0x19
	KindDisableDAC        Kind = 0x1A
	KindPlaylist          Kind = 0x1B
	KindPlayWithVolume    Kind = 0x1C
)

// Asynchronous notifications.
const (
	KindDeviceInserted    Kind = 0x3A
	KindDeviceRemoved     Kind = 0x3B
	KindFinishedUSBFile   Kind = 0x3C
	KindFinishedSDFile    Kind = 0x3D
	KindFinishedFlashFile Kind = 0x3E
	KindInitComplete      Kind = 0x3F
)

// Replies.
const (
	KindError Kind = 0x40
	KindAck   Kind = 0x41
)

// Queries. The module answers with a frame of the same kind.
const (
	KindStatus           Kind = 0x42
	KindVolume           Kind = 0x43
	KindEQ               Kind = 0x44
	KindPlaybackSequence Kind = 0x45
	KindFirmwareVersion  Kind = 0x46
	KindUSBFileCount     Kind = 0x47
	KindSDFileCount      Kind = 0x48
	KindFlashFileCount   Kind = 0x49
	KindCurrentUSBFile   Kind = 0x4B
	KindCurrentSDFile    Kind = 0x4C
	KindCurrentFlashFile Kind = 0x4D
	KindFolderTrackCount Kind = 0x4E
	KindFolderCount      Kind = 0x4F
)

var kindNames = map[Kind]string{
	KindPlayNext:          "play-next",
	KindPlayPrevious:      "play-previous",
	KindPlayFile:          "play-file",
	KindVolumeUp:          "volume-up",
	KindVolumeDown:        "volume-down",
	KindSetVolume:         "set-volume",
	KindSelectEQ:          "select-eq",
	KindLoopFile:          "loop-file",
	KindSelectSource:      "select-source",
	KindSleep:             "sleep",
	KindWake:              "wake",
	KindReset:             "reset",
	KindResume:            "resume",
	KindPause:             "pause",
	KindPlayFromFolder:    "play-from-folder",
	KindVolumeAdjust:      "volume-adjust",
	KindLoopAll:           "loop-all",
	KindPlayFromMP3:       "play-from-mp3",
	KindInsertAdvert:      "insert-advert",
	KindPlayFromBigFolder: "play-from-big-folder",
	KindStopAdvert:        "stop-advert",
	KindStop:              "stop",
	KindLoopFolder:        "loop-folder",
	KindRandomPlay:        "random-play",
	KindLoopCurrentFile:   "loop-current-file",
	KindDisableDAC:        "disable-dac",
	KindPlaylist:          "playlist",
	KindPlayWithVolume:    "play-with-volume",
	KindDeviceInserted:    "device-inserted",
	KindDeviceRemoved:     "device-removed",
	KindFinishedUSBFile:   "finished-usb-file",
	KindFinishedSDFile:    "finished-sd-file",
	KindFinishedFlashFile: "finished-flash-file",
	KindInitComplete:      "init-complete",
	KindError:             "error",
	KindAck:               "ack",
	KindStatus:            "status",
	KindVolume:            "volume",
	KindEQ:                "eq",
	KindPlaybackSequence:  "playback-sequence",
	KindFirmwareVersion:   "firmware-version",
	KindUSBFileCount:      "usb-file-count",
	KindSDFileCount:       "sd-file-count",
	KindFlashFileCount:    "flash-file-count",
	KindCurrentUSBFile:    "current-usb-file",
	KindCurrentSDFile:     "current-sd-file",
	KindCurrentFlashFile:  "current-flash-file",
	KindFolderTrackCount:  "folder-track-count",
	KindFolderCount:       "folder-count",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(0x%02x)", byte(k))
}

// IsKnown reports whether k is a kind the module defines.
func (k Kind) IsKnown() bool {
	_, ok := kindNames[k]
	return ok
}

// IsNotification indicates frames sent by the module on its own.
func (k Kind) IsNotification() bool {
	return k >= KindDeviceInserted && k <= KindInitComplete
}

// IsReply indicates frames answering a command or a query.
func (k Kind) IsReply() bool {
	return k >= KindError && k <= KindFolderCount
}

// IsQuery indicates the kind requests data from the module.
func (k Kind) IsQuery() bool {
	return k >= KindStatus && k <= KindFolderCount
}
