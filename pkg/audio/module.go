package audio

import (
	"fmt"
	"io"
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/audio.go/pkg/audio/wire"
	"github.com/robotalks/audio.go/pkg/timeout"
)

// Stream is the byte transport connected to the module.
type Stream interface {
	io.Writer
	// TryReadByte returns a byte already received, without blocking.
	TryReadByte() (byte, bool)
}

// Default reply deadlines.
const (
	DefaultReplyTimeout = 200 * time.Millisecond
	DefaultResetTimeout = 10 * time.Second
)

// Module drives an audio module over a Stream.
//
// Module is not safe for concurrent use. Update and all commands are
// expected to be called from the same control loop.
type Module struct {
	Stream       Stream
	Listener     Listener
	ReplyTimeout time.Duration
	ResetTimeout time.Duration

	guard   *timeout.Guard
	decoder wire.Decoder
	state   State
	session Session
	ready   bool
	sendErr error
	// gen changes on every Reset.
	gen     uint32
	outcome func(Listener)
}

// NewModule creates a Module. A nil clock uses the system clock.
func NewModule(s Stream, clock timeout.Clock) *Module {
	if clock == nil {
		clock = timeout.SystemClock()
	}
	return &Module{
		Stream:       s,
		ReplyTimeout: DefaultReplyTimeout,
		ResetTimeout: DefaultResetTimeout,
		guard:        timeout.New(clock),
		session:      Session{Device: DeviceSleep},
	}
}

// State returns the current bring-up state, StateNone once bring-up is over.
func (m *Module) State() State {
	return m.state
}

// Ready indicates bring-up completed.
func (m *Module) Ready() bool {
	return m.ready
}

// Session returns the information collected during bring-up.
func (m *Module) Session() Session {
	return m.session
}

// Busy indicates a request is waiting for its reply.
func (m *Module) Busy() bool {
	return m.guard.Armed()
}

// Update processes all received bytes and then checks the reply deadline.
func (m *Module) Update() {
	for {
		b, ok := m.Stream.TryReadByte()
		if !ok {
			break
		}
		if m.decoder.Feed(b) {
			m.receive()
		}
	}
	if m.guard.Expired() {
		m.guard.Cancel()
		glog.V(1).Infof("reply timed out in %s", m.state)
		m.handle(timeoutEvent)
	}
}

// Reset restarts bring-up from the hardware reset, regardless of the
// current state. Any pending reply is abandoned.
func (m *Module) Reset() error {
	m.gen++
	m.guard.Cancel()
	m.decoder.Reset()
	m.state, m.ready = StateNone, false
	m.outcome = nil
	m.session = Session{Device: DeviceSleep}
	m.sendErr = nil
	m.setState(StateResetting)
	return m.sendErr
}

func (m *Module) receive() {
	if !m.decoder.Valid() {
		raw := m.decoder.Bytes()
		glog.Warningf("invalid frame: % x", raw)
		m.listener().OnInvalidFrame(raw)
		return
	}
	f := m.decoder.Frame()
	glog.V(2).Infof("RCV %s", f)
	// During bring-up every step re-arms the deadline on entry.
	if m.state == StateNone && (f.Kind.IsReply() || f.Kind == wire.KindInitComplete) {
		m.guard.Cancel()
	}
	m.handle(frameEvent(f))
}

// handle routes a received frame or a missed reply to the listener and
// then to the active bring-up state, unless the listener reset the module.
func (m *Module) handle(ev event) {
	gen := m.gen
	if ev.typ == eventTimeout {
		m.listener().OnError(ErrTimedOut)
	} else {
		Dispatch(m.listener(), ev.frame)
	}
	if m.gen != gen || m.state == StateNone {
		return
	}
	next := m.transition(m.state, ev)
	if m.gen == gen {
		m.setState(next)
	}
}

func (m *Module) listener() Listener {
	if l := m.Listener; l != nil {
		return l
	}
	return NopListener{}
}

func (m *Module) send(kind wire.Kind, param uint16, feedback bool) error {
	return m.sendWithTimeout(kind, param, feedback, m.ReplyTimeout)
}

func (m *Module) sendWithTimeout(kind wire.Kind, param uint16, feedback bool, d time.Duration) error {
	f := wire.NewFrame(kind, param, feedback)
	m.guard.Arm(d)
	glog.V(2).Infof("SND %s", f)
	_, err := f.WriteTo(m.Stream)
	m.listener().OnFrameSent(f)
	if err != nil {
		return fmt.Errorf("send %s: %w", kind, err)
	}
	return nil
}
