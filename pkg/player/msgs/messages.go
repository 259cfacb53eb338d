// Package msgs defines the L1 messages of the audio player controller.
package msgs

import (
	"github.com/golang/protobuf/proto"

	fx "github.com/robotalks/audio.go/pkg/framework"
	"github.com/robotalks/audio.go/pkg/l1/msgs"
)

// Operations of PlayerCommand. Arguments:
//
//	play-file, play-mp3, advert, loop-file  Track
//	play-track                              Folder, Track
//	loop-folder                             Folder
//	set-volume                              Value
//	dac                                     Value, 0 disables
//	eq                                      Device holds the preset name
//	select-source                           Device
//	query                                   Query, Device or Folder
const (
	OpPlayNext     = "play-next"
	OpPlayPrevious = "play-previous"
	OpPlayFile     = "play-file"
	OpPlayTrack    = "play-track"
	OpPlayMP3      = "play-mp3"
	OpAdvert       = "advert"
	OpStopAdvert   = "stop-advert"
	OpLoopFile     = "loop-file"
	OpLoopFolder   = "loop-folder"
	OpLoopAll      = "loop-all"
	OpRandom       = "random"
	OpStop         = "stop"
	OpPause        = "pause"
	OpResume       = "resume"
	OpSetVolume    = "set-volume"
	OpVolumeUp     = "volume-up"
	OpVolumeDown   = "volume-down"
	OpEqualizer    = "eq"
	OpSelectSource = "select-source"
	OpSleep        = "sleep"
	OpWake         = "wake"
	OpDAC          = "dac"
	OpReset        = "reset"
	OpQuery        = "query"
)

// Query names of OpQuery. The files and current queries take Device, the
// folder-tracks query takes Folder.
const (
	QueryStatus       = "status"
	QueryVolume       = "volume"
	QueryEqualizer    = "eq"
	QuerySequence     = "sequence"
	QueryVersion      = "version"
	QueryFiles        = "files"
	QueryCurrentFile  = "current"
	QueryFolderTracks = "folder-tracks"
	QueryFolders      = "folders"
)

// PlayerCommand requests an operation of the audio module. The reply is
// CommandOK once the request is sent; the module answers with events.
type PlayerCommand struct {
	Op     string `protobuf:"bytes,1,opt,name=op,proto3" json:"op,omitempty"`
	Device string `protobuf:"bytes,2,opt,name=device,proto3" json:"device,omitempty"`
	Folder uint32 `protobuf:"varint,3,opt,name=folder,proto3" json:"folder,omitempty"`
	Track  uint32 `protobuf:"varint,4,opt,name=track,proto3" json:"track,omitempty"`
	Value  int32  `protobuf:"varint,5,opt,name=value,proto3" json:"value,omitempty"`
	Query  string `protobuf:"bytes,6,opt,name=query,proto3" json:"query,omitempty"`
}

// NewMessage implements Message.
func (m *PlayerCommand) NewMessage() fx.Message { return &PlayerCommand{} }

// TypeID implements SerializableMessage.
func (m *PlayerCommand) TypeID() uint32 { return PlayerCommandTypeID }

// Serializable implements SerializableMessage.
func (m *PlayerCommand) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *PlayerCommand) ProtoMessage() {}

// Reset implements proto.Message.
func (m *PlayerCommand) Reset() { *m = PlayerCommand{} }

// String implements proto.Message.
func (m *PlayerCommand) String() string { return proto.CompactTextString(m) }

// PlayerStatusQuery queries the status.
type PlayerStatusQuery struct {
}

// NewMessage implements Message.
func (m *PlayerStatusQuery) NewMessage() fx.Message { return &PlayerStatusQuery{} }

// TypeID implements SerializableMessage.
func (m *PlayerStatusQuery) TypeID() uint32 { return PlayerStatusQueryTypeID }

// Serializable implements SerializableMessage.
func (m *PlayerStatusQuery) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *PlayerStatusQuery) ProtoMessage() {}

// Reset implements proto.Message.
func (m *PlayerStatusQuery) Reset() { *m = PlayerStatusQuery{} }

// String implements proto.Message.
func (m *PlayerStatusQuery) String() string { return proto.CompactTextString(m) }

// PlayerStatusReply is the response for PlayerStatusQuery.
type PlayerStatusReply struct {
	Status *PlayerStatus `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
}

// NewMessage implements Message.
func (m *PlayerStatusReply) NewMessage() fx.Message { return &PlayerStatusReply{} }

// TypeID implements SerializableMessage.
func (m *PlayerStatusReply) TypeID() uint32 { return PlayerStatusReplyTypeID }

// Serializable implements SerializableMessage.
func (m *PlayerStatusReply) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *PlayerStatusReply) ProtoMessage() {}

// Reset implements proto.Message.
func (m *PlayerStatusReply) Reset() { *m = PlayerStatusReply{} }

// String implements proto.Message.
func (m *PlayerStatusReply) String() string { return proto.CompactTextString(m) }

// PlayerStatus is an Event message reflecting the player status. It is
// published whenever it changes.
type PlayerStatus struct {
	State           string `protobuf:"bytes,1,opt,name=state,proto3" json:"state,omitempty"`
	Ready           bool   `protobuf:"varint,2,opt,name=ready,proto3" json:"ready,omitempty"`
	Device          string `protobuf:"bytes,3,opt,name=device,proto3" json:"device,omitempty"`
	Files           uint32 `protobuf:"varint,4,opt,name=files,proto3" json:"files,omitempty"`
	Folders         uint32 `protobuf:"varint,5,opt,name=folders,proto3" json:"folders,omitempty"`
	FirmwareVersion uint32 `protobuf:"varint,6,opt,name=firmware_version,json=firmwareVersion,proto3" json:"firmware_version,omitempty"`
	Playback        string `protobuf:"bytes,7,opt,name=playback,proto3" json:"playback,omitempty"`
	Volume          int32  `protobuf:"varint,8,opt,name=volume,proto3" json:"volume,omitempty"`
	Error           string `protobuf:"bytes,9,opt,name=error,proto3" json:"error,omitempty"`
}

// NewMessage implements Message.
func (m *PlayerStatus) NewMessage() fx.Message { return &PlayerStatus{} }

// TypeID implements SerializableMessage.
func (m *PlayerStatus) TypeID() uint32 { return PlayerStatusEventTypeID }

// Serializable implements SerializableMessage.
func (m *PlayerStatus) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *PlayerStatus) ProtoMessage() {}

// Reset implements proto.Message.
func (m *PlayerStatus) Reset() { *m = PlayerStatus{} }

// String implements proto.Message.
func (m *PlayerStatus) String() string { return proto.CompactTextString(m) }

// PlayerEvent carries a notification or reply decoded from the module.
type PlayerEvent struct {
	Event  string `protobuf:"bytes,1,opt,name=event,proto3" json:"event,omitempty"`
	Device string `protobuf:"bytes,2,opt,name=device,proto3" json:"device,omitempty"`
	Value  uint32 `protobuf:"varint,3,opt,name=value,proto3" json:"value,omitempty"`
	Detail string `protobuf:"bytes,4,opt,name=detail,proto3" json:"detail,omitempty"`
}

// NewMessage implements Message.
func (m *PlayerEvent) NewMessage() fx.Message { return &PlayerEvent{} }

// TypeID implements SerializableMessage.
func (m *PlayerEvent) TypeID() uint32 { return PlayerEventTypeID }

// Serializable implements SerializableMessage.
func (m *PlayerEvent) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *PlayerEvent) ProtoMessage() {}

// Reset implements proto.Message.
func (m *PlayerEvent) Reset() { *m = PlayerEvent{} }

// String implements proto.Message.
func (m *PlayerEvent) String() string { return proto.CompactTextString(m) }

// Event names of PlayerEvent. Value carries the number or error code of
// the event; Detail carries the device list of init-complete, the play
// state, preset or mode names, the raw invalid frame or the bring-up
// failure.
const (
	EventAck           = "ack"
	EventInserted      = "inserted"
	EventRemoved       = "removed"
	EventFinished      = "finished"
	EventInitComplete  = "init-complete"
	EventError         = "error"
	EventStatus        = "status"
	EventVolume        = "volume"
	EventEqualizer     = "eq"
	EventSequence      = "sequence"
	EventVersion       = "version"
	EventFileCount     = "files"
	EventCurrentFile   = "current"
	EventFolderTracks  = "folder-tracks"
	EventFolderCount   = "folders"
	EventInvalidFrame  = "invalid-frame"
	EventReady         = "ready"
	EventBringUpFailed = "bring-up-failed"
)

// GroupAudio defines the custom group.
const GroupAudio = msgs.GroupCustom | 0x00010000

// TypeIDs
const (
	PlayerCommandTypeID     uint32 = GroupAudio | 0x0000
	PlayerStatusQueryTypeID uint32 = GroupAudio | 0x0001
	PlayerStatusReplyTypeID uint32 = GroupAudio | msgs.TypeIDMaskReply | 0x0001
	PlayerStatusEventTypeID uint32 = GroupAudio | msgs.TypeIDKindEvent | 0x0000
	PlayerEventTypeID       uint32 = GroupAudio | msgs.TypeIDKindEvent | 0x0001
)

func init() {
	msgs.MessageTypes[PlayerCommandTypeID] = (*PlayerCommand)(nil)
	msgs.MessageTypes[PlayerStatusQueryTypeID] = (*PlayerStatusQuery)(nil)
	msgs.MessageTypes[PlayerStatusReplyTypeID] = (*PlayerStatusReply)(nil)
	msgs.MessageTypes[PlayerStatusEventTypeID] = (*PlayerStatus)(nil)
	msgs.MessageTypes[PlayerEventTypeID] = (*PlayerEvent)(nil)
}
