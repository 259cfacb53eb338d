package msgs

import (
	"testing"

	"github.com/stretchr/testify/require"

	fx "github.com/robotalks/audio.go/pkg/framework"
)

type notSerializable struct{}

func (m *notSerializable) NewMessage() fx.Message { return &notSerializable{} }

func TestTypedEncodeDecode(t *testing.T) {
	testCases := []struct {
		name  string
		msg   SerializableMessage
		reply bool
	}{
		{"ok", NewCommandOK(), true},
		{"err", NewCommandErrFromMsg("busy"), true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			typed, err := TypedFrom(tc.msg)
			require.NoError(t, err)
			typed.Sequence = 42
			data, err := typed.Encode()
			require.NoError(t, err)

			decoded, err := DecodeTyped(data)
			require.NoError(t, err)
			require.Equal(t, tc.msg.TypeID(), decoded.TypeId)
			require.Equal(t, uint32(42), decoded.Sequence)
			require.True(t, decoded.IsCommand())
			require.False(t, decoded.IsEvent())
			require.Equal(t, tc.reply, decoded.IsReply())

			msg, err := decoded.Decode()
			require.NoError(t, err)
			require.Equal(t, tc.msg, msg)
		})
	}
}

func TestTypedErrors(t *testing.T) {
	_, err := TypedFrom(&notSerializable{})
	require.ErrorIs(t, err, ErrNotSerializable)

	_, err = (&Typed{TypeId: GroupCustom | 0x1234}).Decode()
	var unknown *ErrUnknownType
	require.ErrorAs(t, err, &unknown)
	require.Equal(t, GroupCustom|0x1234, unknown.TypeID)

	_, err = DecodeTyped([]byte{0xff})
	require.Error(t, err)
}

func TestCommandErr(t *testing.T) {
	err := NewCommandErr(ErrUnsupportedCommand)
	require.EqualError(t, err, "unsupported command")
}
