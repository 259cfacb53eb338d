package transport

import (
	"fmt"
	"io"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/golang/glog"
	"go.bug.st/serial"
	"golang.org/x/net/websocket"
)

// DefaultBaudRate is the baud rate of DFPlayer compatible modules.
const DefaultBaudRate = 9600

// DialTimeout bounds connecting to network bridges.
var DialTimeout = 5 * time.Second

// Open opens the link to the audio module. Supported forms:
//
//	/dev/ttyUSB0, COM3                   serial port at 9600 8N1
//	serial:///dev/ttyUSB0?baud=9600      serial port with options
//	tcp://host:port                      raw TCP serial bridge
//	ws://host/path, wss://host/path      WebSocket serial bridge, binary frames
func Open(link string) (io.ReadWriteCloser, error) {
	if !strings.Contains(link, "://") {
		return OpenSerial(link, DefaultBaudRate)
	}
	u, err := url.Parse(link)
	if err != nil {
		return nil, err
	}
	switch u.Scheme {
	case "serial":
		baud := DefaultBaudRate
		if val := u.Query().Get("baud"); val != "" {
			if baud, err = strconv.Atoi(val); err != nil || baud <= 0 {
				return nil, fmt.Errorf("invalid baud rate %q", val)
			}
		}
		return OpenSerial(u.Host+u.Path, baud)
	case "tcp":
		glog.Infof("connecting to serial bridge %s", u.Host)
		return net.DialTimeout("tcp", u.Host, DialTimeout)
	case "ws", "wss":
		return openWebSocket(u)
	}
	return nil, fmt.Errorf("unsupported link %q", link)
}

// OpenSerial opens a serial port with 8N1 framing.
func OpenSerial(path string, baud int) (serial.Port, error) {
	glog.Infof("opening serial port %s at %d", path, baud)
	port, err := serial.Open(path, &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	})
	if err != nil {
		return nil, fmt.Errorf("open serial port %s: %w", path, err)
	}
	return port, nil
}

func openWebSocket(u *url.URL) (io.ReadWriteCloser, error) {
	origin := "http://" + u.Host
	if u.Scheme == "wss" {
		origin = "https://" + u.Host
	}
	conf, err := websocket.NewConfig(u.String(), origin)
	if err != nil {
		return nil, err
	}
	conf.Dialer = &net.Dialer{Timeout: DialTimeout}
	glog.Infof("connecting to serial bridge %s", u)
	conn, err := websocket.DialConfig(conf)
	if err != nil {
		return nil, err
	}
	conn.PayloadType = websocket.BinaryFrame
	return conn, nil
}

// ListPorts lists the serial ports of the system.
func ListPorts() ([]string, error) {
	return serial.GetPortsList()
}
