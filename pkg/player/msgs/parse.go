package msgs

import (
	"fmt"
	"strconv"

	fx "github.com/robotalks/audio.go/pkg/framework"
)

// ParseCommand builds a command from command line words, e.g.
//
//	status
//	play-track 2 5
//	set-volume 20
//	select-source usb
//	query files sd
func ParseCommand(args []string) (fx.Message, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("missing operation")
	}
	op, args := args[0], args[1:]
	if op == "status" {
		if err := expectArgs(op, args, 0); err != nil {
			return nil, err
		}
		return &PlayerStatusQuery{}, nil
	}
	cmd := &PlayerCommand{Op: op}
	var err error
	switch op {
	case OpPlayNext, OpPlayPrevious, OpStopAdvert, OpLoopAll, OpRandom,
		OpStop, OpPause, OpResume, OpVolumeUp, OpVolumeDown, OpSleep, OpWake, OpReset:
		err = expectArgs(op, args, 0)
	case OpPlayFile, OpPlayMP3, OpAdvert, OpLoopFile:
		if err = expectArgs(op, args, 1); err == nil {
			cmd.Track, err = parseUint(args[0])
		}
	case OpPlayTrack:
		if err = expectArgs(op, args, 2); err == nil {
			if cmd.Folder, err = parseUint(args[0]); err == nil {
				cmd.Track, err = parseUint(args[1])
			}
		}
	case OpLoopFolder:
		if err = expectArgs(op, args, 1); err == nil {
			cmd.Folder, err = parseUint(args[0])
		}
	case OpSetVolume, OpDAC:
		if err = expectArgs(op, args, 1); err == nil {
			var v int64
			v, err = strconv.ParseInt(args[0], 10, 32)
			cmd.Value = int32(v)
		}
	case OpEqualizer, OpSelectSource:
		if err = expectArgs(op, args, 1); err == nil {
			cmd.Device = args[0]
		}
	case OpQuery:
		if len(args) == 0 {
			return nil, fmt.Errorf("%s: missing query", op)
		}
		cmd.Query, args = args[0], args[1:]
		switch cmd.Query {
		case QueryFiles, QueryCurrentFile:
			if err = expectArgs(op+" "+cmd.Query, args, 1); err == nil {
				cmd.Device = args[0]
			}
		case QueryFolderTracks:
			if err = expectArgs(op+" "+cmd.Query, args, 1); err == nil {
				cmd.Folder, err = parseUint(args[0])
			}
		default:
			err = expectArgs(op+" "+cmd.Query, args, 0)
		}
	default:
		return nil, fmt.Errorf("unknown operation %q", op)
	}
	if err != nil {
		return nil, err
	}
	return cmd, nil
}

func expectArgs(op string, args []string, n int) error {
	if len(args) != n {
		return fmt.Errorf("%s: expect %d arguments, got %d", op, n, len(args))
	}
	return nil
}

func parseUint(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	return uint32(v), err
}
