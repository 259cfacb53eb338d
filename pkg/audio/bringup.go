package audio

import (
	"github.com/golang/glog"

	"github.com/robotalks/audio.go/pkg/audio/wire"
)

// State is a bring-up step.
type State int

// Bring-up states in the order they are normally visited.
const (
	// StateNone means no bring-up is active: either it's over or never started.
	StateNone State = iota
	StateResetting
	StateGettingVersion
	StateCheckingUSB
	StateCheckingSD
	StateSelectingUSB
	StateSelectingSD
	StateCheckingFolders
)

var stateNames = [...]string{
	"none",
	"resetting",
	"getting-version",
	"checking-usb-file-count",
	"checking-sd-file-count",
	"selecting-usb",
	"selecting-sd",
	"checking-folder-count",
}

// String implements fmt.Stringer.
func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

type eventType int

const (
	eventEnter eventType = iota
	eventFrame
	eventTimeout
)

// event is what a state reacts to.
type event struct {
	typ   eventType
	frame wire.Frame
}

var (
	enterEvent   = event{typ: eventEnter}
	timeoutEvent = event{typ: eventTimeout}
)

func frameEvent(f wire.Frame) event {
	return event{typ: eventFrame, frame: f}
}

func (e event) is(kind wire.Kind) bool {
	return e.typ == eventFrame && e.frame.Kind == kind
}

// failed matches error frames and missed replies.
func (e event) failed() bool {
	return e.typ == eventTimeout || e.is(wire.KindError)
}

func (e event) errorCode() ErrorCode {
	if e.typ == eventTimeout {
		return ErrTimedOut
	}
	return ErrorCode(e.frame.ParamLo())
}

// setState enters next and keeps entering states for as long as entry
// actions request a different one. A state visited twice in one chain
// stops it, and so does a Reset from a listener callback. The outcome of
// bring-up is reported once the chain rests in StateNone.
func (m *Module) setState(next State) {
	gen := m.gen
	var visited uint32
	for next != m.state {
		if visited&(1<<uint(next)) != 0 {
			glog.Warningf("bring-up loops back to %s", next)
			break
		}
		visited |= 1 << uint(next)
		glog.V(1).Infof("bring-up %s -> %s", m.state, next)
		m.state = next
		if next == StateNone {
			m.guard.Cancel()
			if notify := m.outcome; notify != nil {
				m.outcome = nil
				notify(m.listener())
			}
			break
		}
		next = m.transition(next, enterEvent)
		if m.gen != gen {
			break
		}
	}
}

// transition returns the state following s after ev. Entry actions send
// the request of each step.
func (m *Module) transition(s State, ev event) State {
	switch s {
	case StateResetting:
		switch {
		case ev.typ == eventEnter:
			m.entry(m.sendWithTimeout(wire.KindReset, 0, false, m.ResetTimeout))
		case ev.is(wire.KindInitComplete):
			return StateGettingVersion
		case ev.failed():
			code := ev.errorCode()
			if code == ErrTimedOut {
				glog.Error("no response from audio module")
			} else {
				glog.Errorf("audio module reset failed: %v", code)
			}
			return m.fail(code)
		}
	case StateGettingVersion:
		switch {
		case ev.typ == eventEnter:
			m.entry(m.QueryFirmwareVersion())
		case ev.is(wire.KindFirmwareVersion):
			m.session.FirmwareVersion = ev.frame.Param
			return StateCheckingUSB
		case ev.typ == eventTimeout:
			// Not all modules report a version.
			return StateCheckingUSB
		}
	case StateCheckingUSB:
		switch {
		case ev.typ == eventEnter:
			m.entry(m.QueryFileCount(DeviceUSB))
		case ev.is(wire.KindUSBFileCount):
			if m.session.Files = ev.frame.Param; m.session.Files > 0 {
				return StateSelectingUSB
			}
			return StateCheckingSD
		case ev.failed():
			return StateCheckingSD
		}
	case StateCheckingSD:
		switch {
		case ev.typ == eventEnter:
			m.entry(m.QueryFileCount(DeviceSD))
		case ev.is(wire.KindSDFileCount):
			if m.session.Files = ev.frame.Param; m.session.Files > 0 {
				return StateSelectingSD
			}
			return m.noFiles()
		case ev.failed():
			return m.noFiles()
		}
	case StateSelectingUSB, StateSelectingSD:
		dev := DeviceUSB
		if s == StateSelectingSD {
			dev = DeviceSD
		}
		switch {
		case ev.typ == eventEnter:
			m.entry(m.SelectSource(dev))
		case ev.is(wire.KindAck):
			m.session.Device = dev
			return StateCheckingFolders
		}
	case StateCheckingFolders:
		switch {
		case ev.typ == eventEnter:
			m.entry(m.QueryFolderCount())
		case ev.is(wire.KindFolderCount):
			m.session.Folders = ev.frame.Param
			m.ready = true
			glog.Infof("audio module initialized: %s", m.session)
			session := m.session
			m.outcome = func(l Listener) { l.OnReady(session) }
			return StateNone
		}
	}
	return s
}

func (m *Module) noFiles() State {
	glog.Warning("audio module has no playable files")
	return m.fail(ErrNoPlayableFiles)
}

func (m *Module) fail(err error) State {
	m.outcome = func(l Listener) { l.OnBringUpFailed(err) }
	return StateNone
}

// entry records the first send error of a chain. The deadline is armed
// before writing, so a failed write still ends in a timeout.
func (m *Module) entry(err error) {
	if err != nil {
		glog.Errorf("bring-up %s: %v", m.state, err)
		if m.sendErr == nil {
			m.sendErr = err
		}
	}
}
