package audio

import (
	"errors"
	"fmt"
)

// ErrorCode is a fault reported by the module in an error reply.
type ErrorCode uint16

// Error codes.
const (
	ErrUnsupported    ErrorCode = 0x00
	ErrNoSources      ErrorCode = 0x01
	ErrSleeping       ErrorCode = 0x02
	ErrSerial         ErrorCode = 0x03
	ErrBadChecksum    ErrorCode = 0x04
	ErrFileOutOfRange ErrorCode = 0x05
	ErrTrackNotFound  ErrorCode = 0x06
	ErrInsertion      ErrorCode = 0x07
	ErrSDCard         ErrorCode = 0x08
	ErrEnteredSleep   ErrorCode = 0x0A

	// ErrTimedOut is never sent by the module. It is reported when no reply
	// arrived in time.
	ErrTimedOut ErrorCode = 0x0100
)

var errorMessages = map[ErrorCode]string{
	ErrUnsupported:    "unsupported command",
	ErrNoSources:      "module busy or no sources available",
	ErrSleeping:       "module sleeping",
	ErrSerial:         "serial communication error",
	ErrBadChecksum:    "bad checksum",
	ErrFileOutOfRange: "file index out of range",
	ErrTrackNotFound:  "track not found",
	ErrInsertion:      "insertion error",
	ErrSDCard:         "SD card error",
	ErrEnteredSleep:   "entered sleep mode",
	ErrTimedOut:       "timed out",
}

// Error implements error.
func (c ErrorCode) Error() string {
	if msg, ok := errorMessages[c]; ok {
		return msg
	}
	return fmt.Sprintf("module error 0x%02x", uint16(c))
}

var (
	// ErrUnsupportedDevice indicates the operation can't address the device.
	ErrUnsupportedDevice = errors.New("unsupported device")
	// ErrTrackNotAddressable indicates neither folder encoding can carry the
	// folder/track pair. Nothing is sent to the module.
	ErrTrackNotAddressable = errors.New("folder/track not addressable")
	// ErrNoPlayableFiles indicates bring-up found no files on USB or SD.
	ErrNoPlayableFiles = errors.New("no playable files")
)
