// Package timeout provides the single in-flight deadline used while waiting
// for a reply from the audio module.
package timeout

import (
	"time"
)

// Clock is a monotonic millisecond time source. The value may wrap around.
type Clock interface {
	Millis() uint32
}

// ClockFunc is the func form of Clock.
type ClockFunc func() uint32

// Millis implements Clock.
func (f ClockFunc) Millis() uint32 {
	return f()
}

type systemClock struct {
	epoch time.Time
}

func (c systemClock) Millis() uint32 {
	return uint32(time.Since(c.epoch) / time.Millisecond)
}

// SystemClock returns a Clock counting from the time it is created.
func SystemClock() Clock {
	return systemClock{epoch: time.Now()}
}

// Guard tracks one deadline.
type Guard struct {
	Clock Clock

	deadline uint32
	armed    bool
}

// New creates a Guard using the specified clock.
func New(clock Clock) *Guard {
	return &Guard{Clock: clock}
}

// Arm starts a countdown of d from now, replacing any previous deadline.
func (g *Guard) Arm(d time.Duration) {
	g.deadline = g.Clock.Millis() + uint32(d/time.Millisecond)
	g.armed = true
}

// Cancel disarms the guard.
func (g *Guard) Cancel() {
	g.armed = false
}

// Armed indicates a deadline is pending.
func (g *Guard) Armed() bool {
	return g.armed
}

// Expired is true while the guard is armed and the deadline has passed.
func (g *Guard) Expired() bool {
	if !g.armed {
		return false
	}
	return int32(g.Clock.Millis()-g.deadline) >= 0
}

// Remaining returns the time left before expiry, or 0 when not armed or expired.
func (g *Guard) Remaining() time.Duration {
	if !g.armed {
		return 0
	}
	left := int32(g.deadline - g.Clock.Millis())
	if left <= 0 {
		return 0
	}
	return time.Duration(left) * time.Millisecond
}
