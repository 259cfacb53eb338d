// Package transport connects an audio module over serial, TCP or WebSocket
// links and adapts blocking reads to the polled byte source of the engine.
package transport

import (
	"context"
	"errors"
	"io"
	"sync/atomic"

	"github.com/golang/glog"

	fx "github.com/robotalks/audio.go/pkg/framework"
)

// DefaultBufferSize is the number of received bytes a Pump holds until
// they are polled.
const DefaultBufferSize = 1024

// Pump reads the link in the background. Received bytes are polled with
// TryReadByte from the control loop.
type Pump struct {
	conn    io.ReadWriteCloser
	byteCh  chan byte
	dropped atomic.Uint64
}

// NewPump creates a Pump over conn.
func NewPump(conn io.ReadWriteCloser) *Pump {
	return NewPumpSize(conn, DefaultBufferSize)
}

// NewPumpSize creates a Pump holding up to size received bytes.
func NewPumpSize(conn io.ReadWriteCloser, size int) *Pump {
	return &Pump{conn: conn, byteCh: make(chan byte, size)}
}

// Write writes to the link.
func (p *Pump) Write(b []byte) (int, error) {
	return p.conn.Write(b)
}

// TryReadByte implements audio.Stream. It never blocks.
func (p *Pump) TryReadByte() (byte, bool) {
	select {
	case b := <-p.byteCh:
		return b, true
	default:
		return 0, false
	}
}

// Dropped is the number of bytes discarded because the buffer was full.
func (p *Pump) Dropped() uint64 {
	return p.dropped.Load()
}

// Close closes the link.
func (p *Pump) Close() error {
	return p.conn.Close()
}

// Run implements Runnable. When running in a Loop, the next iteration is
// triggered as soon as bytes arrive.
func (p *Pump) Run(ctx context.Context) error {
	ctl := fx.LoopCtlFrom(ctx)
	err := fx.RunWithContextCloser(ctx, p.conn, func() error {
		return p.readLoop(ctl)
	})
	if errors.Is(err, io.EOF) {
		glog.Warning("audio module link closed")
	}
	return err
}

func (p *Pump) readLoop(ctl fx.LoopControl) error {
	buf := make([]byte, 64)
	for {
		n, err := p.conn.Read(buf)
		for _, b := range buf[:n] {
			select {
			case p.byteCh <- b:
			default:
				// the receiver resyncs on the next start byte.
				p.dropped.Add(1)
			}
		}
		if n > 0 && ctl != nil {
			ctl.TriggerNext()
		}
		if err != nil {
			return err
		}
	}
}

// AddToLoop implements LoopAdder.
func (p *Pump) AddToLoop(loop *fx.Loop) {
	loop.AddRunnable(fx.NamedRun("pump", p))
}
