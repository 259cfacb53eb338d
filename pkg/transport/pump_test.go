package transport

import (
	"context"
	"io"
	"net"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/websocket"
)

func readN(t *testing.T, p *Pump, n int) []byte {
	var got []byte
	deadline := time.Now().Add(5 * time.Second)
	for len(got) < n {
		if b, ok := p.TryReadByte(); ok {
			got = append(got, b)
			continue
		}
		if time.Now().After(deadline) {
			t.Fatalf("received %d of %d bytes", len(got), n)
		}
		time.Sleep(time.Millisecond)
	}
	return got
}

func TestPump(t *testing.T) {
	local, remote := net.Pipe()
	p := NewPump(local)
	_, ok := p.TryReadByte()
	require.False(t, ok)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- p.Run(ctx) }()

	frame := []byte{0x7E, 0xFF, 0x06, 0x3F, 0x00, 0x00, 0x02, 0xFE, 0xBA, 0xEF}
	go remote.Write(frame)
	require.Equal(t, frame, readN(t, p, len(frame)))
	_, ok = p.TryReadByte()
	require.False(t, ok)

	go func() {
		buf := make([]byte, 3)
		io.ReadFull(remote, buf)
		remote.Write(buf)
	}()
	n, err := p.Write([]byte{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Equal(t, []byte{1, 2, 3}, readN(t, p, 3))

	cancel()
	require.ErrorIs(t, <-errCh, context.Canceled)
	_, err = remote.Write([]byte{0})
	require.Error(t, err, "link must be closed on cancel")
}

func TestPumpDropsWhenFull(t *testing.T) {
	local, remote := net.Pipe()
	p := NewPumpSize(local, 4)
	errCh := make(chan error, 1)
	go func() { errCh <- p.Run(context.Background()) }()
	remote.Write([]byte{1, 2, 3, 4, 5, 6})
	remote.Close()
	require.ErrorIs(t, <-errCh, io.EOF)
	require.Equal(t, []byte{1, 2, 3, 4}, readN(t, p, 4))
	require.Equal(t, uint64(2), p.Dropped())
}

func TestOpenTCP(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()
	go func() {
		conn, err := ln.Accept()
		if err == nil {
			io.Copy(conn, conn)
			conn.Close()
		}
	}()

	conn, err := Open("tcp://" + ln.Addr().String())
	require.NoError(t, err)
	defer conn.Close()
	p := NewPump(conn)
	go p.Run(context.Background())
	_, err = p.Write([]byte{0x7E, 0xEF})
	require.NoError(t, err)
	require.Equal(t, []byte{0x7E, 0xEF}, readN(t, p, 2))
}

func TestOpenWebSocket(t *testing.T) {
	srv := httptest.NewServer(websocket.Handler(func(ws *websocket.Conn) {
		var data []byte
		for websocket.Message.Receive(ws, &data) == nil {
			websocket.Message.Send(ws, data)
		}
	}))
	defer srv.Close()

	conn, err := Open("ws" + strings.TrimPrefix(srv.URL, "http") + "/serial")
	require.NoError(t, err)
	defer conn.Close()
	p := NewPump(conn)
	go p.Run(context.Background())
	_, err = p.Write([]byte{0x7E, 0xFF, 0x06})
	require.NoError(t, err)
	require.Equal(t, []byte{0x7E, 0xFF, 0x06}, readN(t, p, 3))
}

func TestOpenErrors(t *testing.T) {
	testCases := []struct {
		name string
		link string
	}{
		{"unsupported scheme", "udp://localhost:1"},
		{"bad baud", "serial:///dev/ttyS0?baud=fast"},
		{"zero baud", "serial:///dev/ttyS0?baud=0"},
		{"missing port", "/dev/does-not-exist-audio"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			conn, err := Open(tc.link)
			require.Error(t, err)
			require.Nil(t, conn)
		})
	}
}
