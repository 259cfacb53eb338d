package wire

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

type feedResult struct {
	completed []int
	frames    []Frame
	valid     []bool
}

func feedAll(d *Decoder, data []byte) (r feedResult) {
	for i, b := range data {
		if d.Feed(b) {
			r.completed = append(r.completed, i)
			r.frames = append(r.frames, d.Frame())
			r.valid = append(r.valid, d.Valid())
		}
	}
	return
}

func concat(parts ...[]byte) (out []byte) {
	for _, p := range parts {
		out = append(out, p...)
	}
	return
}

func TestDecoder(t *testing.T) {
	ack := Encode(KindAck, 0, false)
	count := Encode(KindUSBFileCount, 12, false)
	testCases := []struct {
		name      string
		in        []byte
		completed []int
		frames    []Frame
		valid     []bool
	}{
		{
			name:      "single frame",
			in:        ack,
			completed: []int{9},
			frames:    []Frame{NewFrame(KindAck, 0, false)},
			valid:     []bool{true},
		},
		{
			name:      "back to back frames",
			in:        concat(ack, count),
			completed: []int{9, 19},
			frames:    []Frame{NewFrame(KindAck, 0, false), NewFrame(KindUSBFileCount, 12, false)},
			valid:     []bool{true, true},
		},
		{
			name:      "short frame",
			in:        []byte{0x7E, 0xFF, 0x06, 0x3F, 0x00, 0x00, 0x03, 0xEF},
			completed: []int{7},
			frames:    []Frame{NewFrame(KindInitComplete, 3, false)},
			valid:     []bool{true},
		},
		{
			name:      "short frame followed by full frame",
			in:        concat([]byte{0x7E, 0xFF, 0x06, 0x41, 0x00, 0x00, 0x00, 0xEF}, count),
			completed: []int{7, 17},
			frames:    []Frame{NewFrame(KindAck, 0, false), NewFrame(KindUSBFileCount, 12, false)},
			valid:     []bool{true, true},
		},
		{
			name:      "repeated start bytes",
			in:        concat([]byte{0x7E, 0x7E, 0x7E}, ack),
			completed: []int{12},
			frames:    []Frame{NewFrame(KindAck, 0, false)},
			valid:     []bool{true},
		},
		{
			name:      "truncated frame swallows the overlapping frame",
			in:        concat(ack[:5], count, count),
			completed: []int{24},
			frames:    []Frame{NewFrame(KindUSBFileCount, 12, false)},
			valid:     []bool{true},
		},
		{
			name:      "missing end byte",
			in:        concat(ack[:9], []byte{0x00}, count),
			completed: []int{19},
			frames:    []Frame{NewFrame(KindUSBFileCount, 12, false)},
			valid:     []bool{true},
		},
		{
			name:      "start byte in place of end byte",
			in:        concat(ack[:9], count),
			completed: []int{18},
			frames:    []Frame{NewFrame(KindUSBFileCount, 12, false)},
			valid:     []bool{true},
		},
		{
			name:      "bad checksum is delivered",
			in:        []byte{0x7E, 0xFF, 0x06, 0x41, 0x00, 0x00, 0x00, 0x00, 0x00, 0xEF},
			completed: []int{9},
			frames:    []Frame{NewFrame(KindAck, 0, false)},
			valid:     []bool{false},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var d Decoder
			r := feedAll(&d, tc.in)
			require.Equal(t, tc.completed, r.completed)
			require.Equal(t, tc.frames, r.frames)
			require.Equal(t, tc.valid, r.valid)
		})
	}
}

func TestDecoderResyncAfterNoise(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	frame := Encode(KindFolderCount, 5, false)
	for n := 0; n < 64; n++ {
		noise := make([]byte, n)
		for i := range noise {
			b := byte(rnd.Intn(256))
			// keep the noise from spelling a frame header.
			if i > 0 && noise[i-1] == StartByte && b == VersionByte {
				b = 0
			}
			noise[i] = b
		}
		var d Decoder
		r := feedAll(&d, concat(noise, frame))
		require.Equal(t, []int{n + FrameSize - 1}, r.completed, "noise %x", noise)
		require.Equal(t, []bool{true}, r.valid)
		require.Equal(t, NewFrame(KindFolderCount, 5, false), r.frames[0])
	}
}

func TestDecoderReset(t *testing.T) {
	var d Decoder
	ack := Encode(KindAck, 0, false)
	for _, b := range ack[:6] {
		require.False(t, d.Feed(b))
	}
	require.Equal(t, 6, d.Len())
	d.Reset()
	require.Equal(t, 0, d.Len())
	require.False(t, d.Valid())
	r := feedAll(&d, ack)
	require.Equal(t, []int{9}, r.completed)
	require.Equal(t, ack, d.Bytes())
}
