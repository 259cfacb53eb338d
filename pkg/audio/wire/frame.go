package wire

import (
	"fmt"
	"io"
)

// Fixed frame bytes.
const (
	StartByte   byte = 0x7E
	VersionByte byte = 0xFF
	LengthByte  byte = 0x06
	EndByte     byte = 0xEF
)

const (
	// FrameSize is the size of a complete checksummed frame.
	FrameSize = 10
	// ShortFrameSize is the size of a frame terminated without checksum.
	ShortFrameSize = 8
)

// Frame is a decoded frame.
type Frame struct {
	Kind     Kind
	Feedback bool
	Param    uint16
}

// NewFrame creates a Frame.
func NewFrame(kind Kind, param uint16, feedback bool) Frame {
	return Frame{Kind: kind, Param: param, Feedback: feedback}
}

// ParamHi returns the high byte of the parameter.
func (f Frame) ParamHi() byte {
	return byte(f.Param >> 8)
}

// ParamLo returns the low byte of the parameter.
func (f Frame) ParamLo() byte {
	return byte(f.Param)
}

// Bytes returns encoded bytes for sending.
func (f Frame) Bytes() []byte {
	b := make([]byte, FrameSize)
	b[0], b[1], b[2] = StartByte, VersionByte, LengthByte
	b[3] = byte(f.Kind)
	if f.Feedback {
		b[4] = 1
	}
	b[5], b[6] = f.ParamHi(), f.ParamLo()
	chk := Checksum(b)
	b[7], b[8] = byte(chk>>8), byte(chk)
	b[9] = EndByte
	return b
}

// WriteTo writes encoded bytes.
func (f Frame) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(f.Bytes())
	return int64(n), err
}

// String implements fmt.Stringer.
func (f Frame) String() string {
	fb := 0
	if f.Feedback {
		fb = 1
	}
	return fmt.Sprintf("%s(0x%04x) fb=%d", f.Kind, f.Param, fb)
}

// Encode builds the 10-byte frame for a kind and parameter.
func Encode(kind Kind, param uint16, feedback bool) []byte {
	return NewFrame(kind, param, feedback).Bytes()
}

// Checksum computes the checksum over the frame body at offsets 1..6.
// b must hold at least 7 bytes.
func Checksum(b []byte) uint16 {
	return -bodySum(b)
}

// Verify checks the checksum of a complete frame.
func Verify(b []byte) bool {
	if len(b) < FrameSize-1 {
		return false
	}
	chk := uint16(b[7])<<8 | uint16(b[8])
	return bodySum(b)+chk == 0
}

func bodySum(b []byte) (sum uint16) {
	for _, v := range b[1:7] {
		sum += uint16(v)
	}
	return
}
