package player

import (
	"errors"
	"fmt"
	"math"

	"github.com/golang/glog"

	"github.com/robotalks/audio.go/pkg/audio"
	fx "github.com/robotalks/audio.go/pkg/framework"
	"github.com/robotalks/audio.go/pkg/l1"
	l1msgs "github.com/robotalks/audio.go/pkg/l1/msgs"
	"github.com/robotalks/audio.go/pkg/player/msgs"
)

var (
	// ErrBusy indicates a request to the module is waiting for its reply.
	ErrBusy = errors.New("audio module busy")
	// ErrNotReady indicates the module has not completed bring-up.
	ErrNotReady = errors.New("audio module not ready")
	// ErrUnknownOp indicates the operation of a PlayerCommand is unknown.
	ErrUnknownOp = errors.New("unknown operation")
)

// Controller is an L1 controller running an audio module in the loop.
// It executes PlayerCommands and publishes module notifications as
// PlayerEvents.
type Controller struct {
	Module    *audio.Module
	Registrar l1.Registrar

	// Volume is set once bring-up completes, unless negative.
	Volume int
	// Equalizer is set once bring-up completes, unless nil.
	Equalizer *audio.Equalizer

	stream     audio.Stream
	started    bool
	configured bool
	status     msgs.PlayerStatus
	published  msgs.PlayerStatus
	announced  bool
	events     []*msgs.PlayerEvent
}

// NewController creates a Controller driving the module on stream.
func NewController(reg l1.Registrar, stream audio.Stream) *Controller {
	c := &Controller{
		Module:    audio.NewModule(stream, nil),
		Registrar: reg,
		Volume:    -1,
		stream:    stream,
	}
	c.Module.Listener = c
	return c
}

// Stream returns the stream connected to the module.
func (c *Controller) Stream() audio.Stream {
	return c.stream
}

// AddListener adds listeners of the module besides the controller.
func (c *Controller) AddListener(ls ...audio.Listener) {
	c.Module.Listener = append(audio.Listeners{c}, ls...)
}

// AddToLoop implements LoopAdder.
func (c *Controller) AddToLoop(loop *fx.Loop) {
	if adder, ok := c.stream.(fx.LoopAdder); ok {
		loop.Add(adder)
	} else if runnable, ok := c.stream.(fx.Runnable); ok {
		loop.AddRunnable(runnable)
	}
	loop.AddController(fx.PrLvSense, fx.ControlFunc(c.update))
	loop.AddController(fx.PrLvControl, c)
	loop.AddController(fx.PrLvPostProc, fx.ControlFunc(c.publish))
}

// update starts bring-up on the first iteration and then polls the module.
func (c *Controller) update(cc fx.ControlContext) error {
	if !c.started {
		c.started = true
		glog.Info("resetting audio module")
		if err := c.Module.Reset(); err != nil {
			glog.Errorf("reset audio module: %v", err)
		}
	}
	c.Module.Update()
	c.configure()
	return nil
}

// configure applies the configured settings once the module is ready, one
// request per iteration.
func (c *Controller) configure() {
	if c.configured || !c.Module.Ready() || c.Module.Busy() {
		return
	}
	var err error
	switch {
	case c.Volume >= 0:
		err = c.Module.SetVolume(c.Volume)
		c.Volume = -1
	case c.Equalizer != nil:
		err = c.Module.SelectEQ(*c.Equalizer)
		c.Equalizer = nil
	default:
		c.configured = true
	}
	if err != nil {
		glog.Errorf("configure audio module: %v", err)
	}
}

// Control implements Controller.
func (c *Controller) Control(cc fx.ControlContext) error {
	cc.Messages().ProcessMessages(fx.ProcessMessageFunc(func(mctx fx.MessageProcessingContext) {
		cmdMsg, ok := mctx.CurrentMessage().(*l1.CommandMsg)
		if !ok {
			return
		}
		var reply fx.Message
		switch m := cmdMsg.Command.Msg().(type) {
		case *msgs.PlayerStatusQuery:
			status := c.currentStatus()
			reply = &msgs.PlayerStatusReply{Status: &status}
		case *msgs.PlayerCommand:
			if err := c.Do(m); err != nil {
				glog.Warningf("command %s: %v", m.Op, err)
				reply = l1msgs.NewCommandErr(err)
			} else {
				reply = l1msgs.NewCommandOK()
			}
		default:
			return
		}
		mctx.MessageTaken()
		if err := cmdMsg.Command.Done(reply); err != nil {
			glog.Errorf("reply command: %v", err)
		}
	}))
	return nil
}

// Do executes a PlayerCommand. Only reset is accepted while the module is
// busy or not ready.
func (c *Controller) Do(cmd *msgs.PlayerCommand) error {
	if cmd.Op == msgs.OpReset {
		c.configured = false
		return c.Module.Reset()
	}
	if c.Module.Busy() {
		return ErrBusy
	}
	if !c.Module.Ready() {
		return ErrNotReady
	}
	m := c.Module
	switch cmd.Op {
	case msgs.OpPlayNext:
		return m.PlayNextFile()
	case msgs.OpPlayPrevious:
		return m.PlayPreviousFile()
	case msgs.OpPlayFile:
		return withU16(cmd.Track, m.PlayFile)
	case msgs.OpPlayTrack:
		folder, err := toU16(cmd.Folder)
		if err != nil {
			return err
		}
		return withU16(cmd.Track, func(track uint16) error { return m.PlayTrack(folder, track) })
	case msgs.OpPlayMP3:
		return withU16(cmd.Track, m.PlayMP3Track)
	case msgs.OpAdvert:
		return withU16(cmd.Track, m.InsertAdvert)
	case msgs.OpStopAdvert:
		return m.StopAdvert()
	case msgs.OpLoopFile:
		return withU16(cmd.Track, m.LoopFile)
	case msgs.OpLoopFolder:
		return withU16(cmd.Folder, m.LoopFolder)
	case msgs.OpLoopAll:
		return m.LoopAllFiles()
	case msgs.OpRandom:
		return m.PlayFilesInRandomOrder()
	case msgs.OpStop:
		return m.Stop()
	case msgs.OpPause:
		return m.Pause()
	case msgs.OpResume:
		return m.Unpause()
	case msgs.OpSetVolume:
		return m.SetVolume(int(cmd.Value))
	case msgs.OpVolumeUp:
		return m.VolumeUp()
	case msgs.OpVolumeDown:
		return m.VolumeDown()
	case msgs.OpEqualizer:
		eq, err := audio.ParseEqualizer(cmd.Device)
		if err != nil {
			return err
		}
		return m.SelectEQ(eq)
	case msgs.OpSelectSource:
		dev, err := audio.ParseDevice(cmd.Device)
		if err != nil {
			return err
		}
		return m.SelectSource(dev)
	case msgs.OpSleep:
		return m.Sleep()
	case msgs.OpWake:
		return m.Wake()
	case msgs.OpDAC:
		if cmd.Value == 0 {
			return m.DisableDACs()
		}
		return m.EnableDACs()
	case msgs.OpQuery:
		return c.query(cmd)
	}
	return fmt.Errorf("%w %q", ErrUnknownOp, cmd.Op)
}

func (c *Controller) query(cmd *msgs.PlayerCommand) error {
	m := c.Module
	switch cmd.Query {
	case msgs.QueryStatus:
		return m.QueryStatus()
	case msgs.QueryVolume:
		return m.QueryVolume()
	case msgs.QueryEqualizer:
		return m.QueryEQ()
	case msgs.QuerySequence:
		return m.QueryPlaybackSequence()
	case msgs.QueryVersion:
		return m.QueryFirmwareVersion()
	case msgs.QueryFolders:
		return m.QueryFolderCount()
	case msgs.QueryFolderTracks:
		return withU16(cmd.Folder, m.QueryFolderTrackCount)
	case msgs.QueryFiles, msgs.QueryCurrentFile:
		dev, err := audio.ParseDevice(cmd.Device)
		if err != nil {
			return err
		}
		if cmd.Query == msgs.QueryFiles {
			return m.QueryFileCount(dev)
		}
		return m.QueryCurrentFile(dev)
	}
	return fmt.Errorf("%w: query %q", ErrUnknownOp, cmd.Query)
}

func toU16(v uint32) (uint16, error) {
	if v > math.MaxUint16 {
		return 0, fmt.Errorf("%d out of range", v)
	}
	return uint16(v), nil
}

func withU16(v uint32, fn func(uint16) error) error {
	n, err := toU16(v)
	if err != nil {
		return err
	}
	return fn(n)
}

func (c *Controller) currentStatus() msgs.PlayerStatus {
	s := c.status
	session := c.Module.Session()
	s.State = c.Module.State().String()
	s.Ready = c.Module.Ready()
	s.Device = session.Device.String()
	s.Files = uint32(session.Files)
	s.Folders = uint32(session.Folders)
	s.FirmwareVersion = uint32(session.FirmwareVersion)
	return s
}

// publish sends the events of this iteration and the status when changed.
func (c *Controller) publish(cc fx.ControlContext) error {
	var errs fx.AggregatedError
	events := c.events
	c.events = nil
	if c.Registrar == nil {
		return nil
	}
	for _, ev := range events {
		errs.Add(c.Registrar.SendEvent(cc.Context(), ev))
	}
	if status := c.currentStatus(); !c.announced || status != c.published {
		if err := c.Registrar.SendEvent(cc.Context(), &status); err != nil {
			errs.Add(err)
		} else {
			c.published, c.announced = status, true
		}
	}
	return errs.Aggregate()
}

func (c *Controller) emit(ev *msgs.PlayerEvent) {
	c.events = append(c.events, ev)
}
