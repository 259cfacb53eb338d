package player

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/audio.go/pkg/audio"
	"github.com/robotalks/audio.go/pkg/audio/wire"
	fx "github.com/robotalks/audio.go/pkg/framework"
	"github.com/robotalks/audio.go/pkg/l1"
	l1msgs "github.com/robotalks/audio.go/pkg/l1/msgs"
	"github.com/robotalks/audio.go/pkg/player/msgs"
)

type testStream struct {
	in  []byte
	out bytes.Buffer
}

func (s *testStream) TryReadByte() (byte, bool) {
	if len(s.in) == 0 {
		return 0, false
	}
	b := s.in[0]
	s.in = s.in[1:]
	return b, true
}

func (s *testStream) Write(p []byte) (int, error) {
	return s.out.Write(p)
}

func (s *testStream) reply(kind wire.Kind, param uint16) {
	s.in = append(s.in, wire.NewFrame(kind, param, false).Bytes()...)
}

func (s *testStream) sent(t *testing.T) (frames []wire.Frame) {
	var d wire.Decoder
	for _, b := range s.out.Bytes() {
		if d.Feed(b) {
			require.True(t, d.Valid())
			frames = append(frames, d.Frame())
		}
	}
	s.out.Reset()
	return
}

type testRegistrar struct {
	events []fx.Message
}

func (r *testRegistrar) SendEvent(_ context.Context, msg fx.Message) error {
	r.events = append(r.events, msg)
	return nil
}

func (r *testRegistrar) playerEvents() (evs []string) {
	for _, msg := range r.events {
		if ev, ok := msg.(*msgs.PlayerEvent); ok {
			evs = append(evs, ev.Event)
		}
	}
	return
}

func (r *testRegistrar) lastStatus() *msgs.PlayerStatus {
	for n := len(r.events) - 1; n >= 0; n-- {
		if s, ok := r.events[n].(*msgs.PlayerStatus); ok {
			return s
		}
	}
	return nil
}

type testCommand struct {
	msg   fx.Message
	reply fx.Message
}

func (c *testCommand) Msg() fx.Message { return c.msg }

func (c *testCommand) Done(reply fx.Message) error {
	c.reply = reply
	return nil
}

type testMessageContext struct {
	msg   fx.Message
	taken bool
}

func (c *testMessageContext) CurrentMessage() fx.Message { return c.msg }
func (c *testMessageContext) MessageTaken()              { c.taken = true }
func (c *testMessageContext) StopProcessing()            {}

// testContext is a single iteration carrying msgs.
type testContext struct {
	msgs []fx.Message
}

func (c *testContext) Context() context.Context   { return context.Background() }
func (c *testContext) Time() time.Time            { return time.Now() }
func (c *testContext) PriorityLevel() int         { return fx.PrLvControl }
func (c *testContext) Messages() fx.MessageStore  { return c }
func (c *testContext) PostMessage(msg fx.Message) {}
func (c *testContext) TriggerNext()               {}

func (c *testContext) ProcessMessages(proc fx.MessageProcessor) {
	remains := c.msgs[:0]
	for _, msg := range c.msgs {
		mctx := &testMessageContext{msg: msg}
		proc.ProcessMessage(mctx)
		if !mctx.taken {
			remains = append(remains, msg)
		}
	}
	c.msgs = remains
}

func newTestController() (*Controller, *testStream, *testRegistrar) {
	s, r := &testStream{}, &testRegistrar{}
	return NewController(r, s), s, r
}

// bringUp runs bring-up through USB with 12 files in 4 folders.
func bringUp(t *testing.T, c *Controller, s *testStream) {
	cc := &testContext{}
	require.NoError(t, c.update(cc))
	require.Equal(t, []wire.Frame{wire.NewFrame(wire.KindReset, 0, false)}, s.sent(t))
	replies := []struct {
		kind  wire.Kind
		param uint16
	}{
		{wire.KindInitComplete, 0x03},
		{wire.KindFirmwareVersion, 8},
		{wire.KindUSBFileCount, 12},
		{wire.KindAck, 0},
		{wire.KindFolderCount, 4},
	}
	for _, r := range replies {
		s.reply(r.kind, r.param)
		require.NoError(t, c.update(cc))
	}
	require.True(t, c.Module.Ready())
	s.sent(t)
}

func newReadyController(t *testing.T) (*Controller, *testStream, *testRegistrar) {
	c, s, r := newTestController()
	bringUp(t, c, s)
	return c, s, r
}

func TestDo(t *testing.T) {
	testCases := []struct {
		name   string
		cmd    msgs.PlayerCommand
		expect wire.Frame
	}{
		{"next", msgs.PlayerCommand{Op: msgs.OpPlayNext}, wire.NewFrame(wire.KindPlayNext, 0, true)},
		{"previous", msgs.PlayerCommand{Op: msgs.OpPlayPrevious}, wire.NewFrame(wire.KindPlayPrevious, 0, true)},
		{"file", msgs.PlayerCommand{Op: msgs.OpPlayFile, Track: 42}, wire.NewFrame(wire.KindPlayFile, 42, true)},
		{"track", msgs.PlayerCommand{Op: msgs.OpPlayTrack, Folder: 2, Track: 3}, wire.NewFrame(wire.KindPlayFromFolder, 0x0203, true)},
		{"big track", msgs.PlayerCommand{Op: msgs.OpPlayTrack, Folder: 1, Track: 256}, wire.NewFrame(wire.KindPlayFromBigFolder, 0x1100, true)},
		{"mp3", msgs.PlayerCommand{Op: msgs.OpPlayMP3, Track: 7}, wire.NewFrame(wire.KindPlayFromMP3, 7, true)},
		{"advert", msgs.PlayerCommand{Op: msgs.OpAdvert, Track: 5}, wire.NewFrame(wire.KindInsertAdvert, 5, true)},
		{"stop advert", msgs.PlayerCommand{Op: msgs.OpStopAdvert}, wire.NewFrame(wire.KindStopAdvert, 0, true)},
		{"loop file", msgs.PlayerCommand{Op: msgs.OpLoopFile, Track: 9}, wire.NewFrame(wire.KindLoopFile, 9, true)},
		{"loop folder", msgs.PlayerCommand{Op: msgs.OpLoopFolder, Folder: 3}, wire.NewFrame(wire.KindLoopFolder, 3, true)},
		{"loop all", msgs.PlayerCommand{Op: msgs.OpLoopAll}, wire.NewFrame(wire.KindLoopAll, 1, true)},
		{"random", msgs.PlayerCommand{Op: msgs.OpRandom}, wire.NewFrame(wire.KindRandomPlay, 0, true)},
		{"stop", msgs.PlayerCommand{Op: msgs.OpStop}, wire.NewFrame(wire.KindStop, 0, true)},
		{"pause", msgs.PlayerCommand{Op: msgs.OpPause}, wire.NewFrame(wire.KindPause, 0, true)},
		{"resume", msgs.PlayerCommand{Op: msgs.OpResume}, wire.NewFrame(wire.KindResume, 0, true)},
		{"volume", msgs.PlayerCommand{Op: msgs.OpSetVolume, Value: 20}, wire.NewFrame(wire.KindSetVolume, 20, true)},
		{"volume clamped", msgs.PlayerCommand{Op: msgs.OpSetVolume, Value: 100}, wire.NewFrame(wire.KindSetVolume, 30, true)},
		{"volume up", msgs.PlayerCommand{Op: msgs.OpVolumeUp}, wire.NewFrame(wire.KindVolumeUp, 0, true)},
		{"volume down", msgs.PlayerCommand{Op: msgs.OpVolumeDown}, wire.NewFrame(wire.KindVolumeDown, 0, true)},
		{"eq", msgs.PlayerCommand{Op: msgs.OpEqualizer, Device: "rock"}, wire.NewFrame(wire.KindSelectEQ, 2, true)},
		{"source", msgs.PlayerCommand{Op: msgs.OpSelectSource, Device: "sd"}, wire.NewFrame(wire.KindSelectSource, 2, true)},
		{"sleep", msgs.PlayerCommand{Op: msgs.OpSleep}, wire.NewFrame(wire.KindSleep, 0, true)},
		{"wake", msgs.PlayerCommand{Op: msgs.OpWake}, wire.NewFrame(wire.KindWake, 0, true)},
		{"dac off", msgs.PlayerCommand{Op: msgs.OpDAC}, wire.NewFrame(wire.KindDisableDAC, 1, true)},
		{"dac on", msgs.PlayerCommand{Op: msgs.OpDAC, Value: 1}, wire.NewFrame(wire.KindDisableDAC, 0, true)},
		{"query status", msgs.PlayerCommand{Op: msgs.OpQuery, Query: msgs.QueryStatus}, wire.NewFrame(wire.KindStatus, 0, false)},
		{"query volume", msgs.PlayerCommand{Op: msgs.OpQuery, Query: msgs.QueryVolume}, wire.NewFrame(wire.KindVolume, 0, false)},
		{"query eq", msgs.PlayerCommand{Op: msgs.OpQuery, Query: msgs.QueryEqualizer}, wire.NewFrame(wire.KindEQ, 0, false)},
		{"query sequence", msgs.PlayerCommand{Op: msgs.OpQuery, Query: msgs.QuerySequence}, wire.NewFrame(wire.KindPlaybackSequence, 0, false)},
		{"query version", msgs.PlayerCommand{Op: msgs.OpQuery, Query: msgs.QueryVersion}, wire.NewFrame(wire.KindFirmwareVersion, 0, false)},
		{"query files", msgs.PlayerCommand{Op: msgs.OpQuery, Query: msgs.QueryFiles, Device: "usb"}, wire.NewFrame(wire.KindUSBFileCount, 0, false)},
		{"query current", msgs.PlayerCommand{Op: msgs.OpQuery, Query: msgs.QueryCurrentFile, Device: "tf"}, wire.NewFrame(wire.KindCurrentSDFile, 0, false)},
		{"query folder tracks", msgs.PlayerCommand{Op: msgs.OpQuery, Query: msgs.QueryFolderTracks, Folder: 6}, wire.NewFrame(wire.KindFolderTrackCount, 6, false)},
		{"query folders", msgs.PlayerCommand{Op: msgs.OpQuery, Query: msgs.QueryFolders}, wire.NewFrame(wire.KindFolderCount, 0, false)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, s, _ := newReadyController(t)
			require.NoError(t, c.Do(&tc.cmd))
			require.Equal(t, []wire.Frame{tc.expect}, s.sent(t))
			require.True(t, c.Module.Busy())
		})
	}
}

func TestDoRejected(t *testing.T) {
	testCases := []struct {
		name string
		cmd  msgs.PlayerCommand
		err  error
	}{
		{"unknown op", msgs.PlayerCommand{Op: "rewind"}, ErrUnknownOp},
		{"unknown query", msgs.PlayerCommand{Op: msgs.OpQuery, Query: "lyrics"}, ErrUnknownOp},
		{"unaddressable track", msgs.PlayerCommand{Op: msgs.OpPlayTrack, Folder: 16, Track: 256}, audio.ErrTrackNotAddressable},
		{"unsupported source", msgs.PlayerCommand{Op: msgs.OpSelectSource, Device: "aux"}, audio.ErrUnsupportedDevice},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, s, _ := newReadyController(t)
			require.ErrorIs(t, c.Do(&tc.cmd), tc.err)
			require.Empty(t, s.sent(t))
		})
	}
	t.Run("out of range", func(t *testing.T) {
		c, s, _ := newReadyController(t)
		require.Error(t, c.Do(&msgs.PlayerCommand{Op: msgs.OpPlayFile, Track: 70000}))
		require.Error(t, c.Do(&msgs.PlayerCommand{Op: msgs.OpEqualizer, Device: "loud"}))
		require.Empty(t, s.sent(t))
	})
}

func TestDoNotReadyOrBusy(t *testing.T) {
	c, s, _ := newTestController()
	stop := &msgs.PlayerCommand{Op: msgs.OpStop}
	require.ErrorIs(t, c.Do(stop), ErrNotReady)

	require.NoError(t, c.update(&testContext{}))
	require.True(t, c.Module.Busy())
	require.ErrorIs(t, c.Do(stop), ErrBusy)
	s.sent(t)

	require.NoError(t, c.Do(&msgs.PlayerCommand{Op: msgs.OpReset}))
	require.Equal(t, []wire.Frame{wire.NewFrame(wire.KindReset, 0, false)}, s.sent(t))
	require.Equal(t, audio.StateResetting, c.Module.State())
}

func TestConfigure(t *testing.T) {
	c, s, _ := newTestController()
	eq := audio.EQJazz
	c.Volume, c.Equalizer = 18, &eq
	cc := &testContext{}
	require.NoError(t, c.update(cc))
	for _, r := range []wire.Kind{wire.KindInitComplete, wire.KindFirmwareVersion, wire.KindUSBFileCount, wire.KindAck} {
		s.reply(r, 3)
		require.NoError(t, c.update(cc))
	}
	s.sent(t)
	s.reply(wire.KindFolderCount, 1)
	require.NoError(t, c.update(cc))
	require.Equal(t, []wire.Frame{wire.NewFrame(wire.KindSetVolume, 18, true)}, s.sent(t))

	require.NoError(t, c.update(cc))
	require.Empty(t, s.sent(t), "waits for the reply")

	s.reply(wire.KindAck, 0)
	require.NoError(t, c.update(cc))
	require.Equal(t, []wire.Frame{wire.NewFrame(wire.KindSelectEQ, 3, true)}, s.sent(t))

	s.reply(wire.KindAck, 0)
	require.NoError(t, c.update(cc))
	require.NoError(t, c.update(cc))
	require.Empty(t, s.sent(t))
	require.True(t, c.configured)
}

func TestControl(t *testing.T) {
	c, s, _ := newReadyController(t)
	other := &l1msgs.CommandErr{}
	query := &testCommand{msg: &msgs.PlayerStatusQuery{}}
	play := &testCommand{msg: &msgs.PlayerCommand{Op: msgs.OpPlayFile, Track: 1}}
	busy := &testCommand{msg: &msgs.PlayerCommand{Op: msgs.OpStop}}
	unknown := &testCommand{msg: &l1msgs.CommandOK{}}
	cc := &testContext{msgs: []fx.Message{
		&l1.CommandMsg{Command: query},
		&l1.CommandMsg{Command: play},
		&l1.CommandMsg{Command: busy},
		&l1.CommandMsg{Command: unknown},
		other,
	}}
	require.NoError(t, c.Control(cc))

	require.IsType(t, &msgs.PlayerStatusReply{}, query.reply)
	status := query.reply.(*msgs.PlayerStatusReply).Status
	require.True(t, status.Ready)
	require.Equal(t, "usb", status.Device)
	require.EqualValues(t, 12, status.Files)
	require.EqualValues(t, 4, status.Folders)
	require.EqualValues(t, 8, status.FirmwareVersion)

	require.IsType(t, &l1msgs.CommandOK{}, play.reply)
	require.Equal(t, []wire.Frame{wire.NewFrame(wire.KindPlayFile, 1, true)}, s.sent(t))

	require.IsType(t, &l1msgs.CommandErr{}, busy.reply)
	require.Equal(t, ErrBusy.Error(), busy.reply.(*l1msgs.CommandErr).Message)

	require.Nil(t, unknown.reply)
	require.Len(t, cc.msgs, 2, "unhandled messages stay in the store")
}

func TestPublish(t *testing.T) {
	c, s, r := newTestController()
	bringUp(t, c, s)
	cc := &testContext{}
	require.NoError(t, c.publish(cc))
	require.Equal(t, []string{
		msgs.EventInitComplete,
		msgs.EventVersion,
		msgs.EventFileCount,
		msgs.EventAck,
		msgs.EventFolderCount,
		msgs.EventReady,
	}, r.playerEvents())
	status := r.lastStatus()
	require.NotNil(t, status)
	require.True(t, status.Ready)
	require.Equal(t, audio.StateNone.String(), status.State)

	r.events = nil
	require.NoError(t, c.publish(cc))
	require.Empty(t, r.events, "unchanged status is not published again")

	s.reply(wire.KindFinishedUSBFile, 3)
	s.reply(wire.KindVolume, 22)
	require.NoError(t, c.update(cc))
	require.NoError(t, c.publish(cc))
	require.Len(t, r.events, 3)
	finished := r.events[0].(*msgs.PlayerEvent)
	require.Equal(t, msgs.PlayerEvent{Event: msgs.EventFinished, Device: "usb", Value: 3}, *finished)
	require.Equal(t, msgs.EventVolume, r.events[1].(*msgs.PlayerEvent).Event)
	status = r.events[2].(*msgs.PlayerStatus)
	require.EqualValues(t, 22, status.Volume)
	require.Equal(t, "stopped", status.Playback)
}

func TestPublishBringUpFailure(t *testing.T) {
	c, s, r := newTestController()
	cc := &testContext{}
	require.NoError(t, c.update(cc))
	s.reply(wire.KindInitComplete, 0x03)
	require.NoError(t, c.update(cc))
	s.reply(wire.KindFirmwareVersion, 8)
	require.NoError(t, c.update(cc))
	s.reply(wire.KindError, uint16(audio.ErrNoSources))
	require.NoError(t, c.update(cc))
	s.reply(wire.KindSDFileCount, 0)
	require.NoError(t, c.update(cc))
	require.NoError(t, c.publish(cc))

	require.Contains(t, r.playerEvents(), msgs.EventBringUpFailed)
	status := r.lastStatus()
	require.False(t, status.Ready)
	require.Equal(t, audio.ErrNoPlayableFiles.Error(), status.Error)
}
