package l1

import (
	"context"

	fx "github.com/robotalks/audio.go/pkg/framework"
)

// Registrar registers an L1 controller to a registry and publishes its
// events.
type Registrar interface {
	// SendEvent sends an event to L2.
	SendEvent(context.Context, fx.Message) error
}

// Command represents a received command to be processed.
type Command interface {
	Msg() fx.Message
	// Done replies the command. It must be called exactly once.
	Done(fx.Message) error
}

// CommandMsg wraps a Command as a loop Message.
type CommandMsg struct {
	Command Command
}

// NewMessage implements Message.
func (m *CommandMsg) NewMessage() fx.Message { return &CommandMsg{} }

// ControllerRef is a reference to an L1 controller.
type ControllerRef struct {
	// Type is the controller type, e.g. "audio-player".
	Type string
	// ID is unique ID of the device.
	ID string
}

// Name retrieves the name from ref, which is also the topic prefix.
func (r ControllerRef) Name() string {
	return r.Type + "/" + r.ID
}

// IsValid indicates ControllerRef is valid.
func (r ControllerRef) IsValid() bool {
	return r.Type != "" && r.ID != ""
}

// ControllerMeta provides metadata for L1 controller.
type ControllerMeta struct {
	Description string            `json:"description,omitempty"`
	Labels      map[string]string `json:"labels,omitempty"`
}

// ControllerInfo provides information of an L1 controller.
type ControllerInfo struct {
	Ref  ControllerRef
	Meta ControllerMeta
}
