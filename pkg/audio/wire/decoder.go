package wire

// Decoder accumulates received bytes into frames.
//
// Bytes that don't fit the frame template are dropped and the decoder
// resynchronizes on the next start byte.
type Decoder struct {
	buf [FrameSize]byte
	n   int
	// done is set once a frame is available. The next Feed starts over.
	done bool
}

// Reset discards any partially received frame.
func (d *Decoder) Reset() {
	d.n, d.done = 0, false
}

// Len returns the number of bytes accumulated.
func (d *Decoder) Len() int {
	return d.n
}

// Feed consumes one byte and returns true when a terminated frame is
// available. The frame stays available until the next call to Feed.
func (d *Decoder) Feed(b byte) bool {
	if d.done {
		d.Reset()
	}
	switch d.n {
	case 0, 1, 2:
		if b != template[d.n] {
			d.resync(b)
			return false
		}
	case 7:
		if b == EndByte {
			d.buf[d.n] = b
			d.n, d.done = ShortFrameSize, true
			return true
		}
	case FrameSize - 1:
		if b != EndByte {
			d.resync(b)
			return false
		}
		d.buf[d.n] = b
		d.n, d.done = FrameSize, true
		return true
	}
	d.buf[d.n] = b
	d.n++
	return false
}

// Valid reports whether the available frame passes verification.
// A short frame is valid by construction.
func (d *Decoder) Valid() bool {
	switch {
	case !d.done:
		return false
	case d.n == ShortFrameSize:
		return true
	default:
		return Verify(d.buf[:d.n])
	}
}

// Frame returns the available frame.
func (d *Decoder) Frame() Frame {
	return Frame{
		Kind:     Kind(d.buf[3]),
		Feedback: d.buf[4] != 0,
		Param:    uint16(d.buf[5])<<8 | uint16(d.buf[6]),
	}
}

// Bytes returns a copy of the accumulated bytes.
func (d *Decoder) Bytes() []byte {
	return append([]byte(nil), d.buf[:d.n]...)
}

func (d *Decoder) resync(b byte) {
	if b == StartByte {
		d.buf[0], d.n = b, 1
		return
	}
	d.n = 0
}

var template = [3]byte{StartByte, VersionByte, LengthByte}
