package mqtt

import (
	"context"
	"errors"
	"sync"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/golang/glog"

	fx "github.com/robotalks/audio.go/pkg/framework"
	"github.com/robotalks/audio.go/pkg/l1"
	"github.com/robotalks/audio.go/pkg/l1/msgs"
)

// ErrClosed indicates the client stopped before the reply arrived.
var ErrClosed = errors.New("client closed")

// Client sends commands to an L1 controller and waits for the replies.
type Client struct {
	Queue *Queue
	Ref   l1.ControllerRef
	// OnEvent receives events from the controller, if set.
	OnEvent func(fx.Message)

	lock    sync.Mutex
	seq     uint32
	pending map[uint32]chan fx.Message
	sub     *Subscription
}

// NewClient creates a client of the controller ref.
func NewClient(q *Queue, ref l1.ControllerRef) *Client {
	return &Client{Queue: q, Ref: ref, pending: make(map[uint32]chan fx.Message)}
}

// Start subscribes the messages of the controller.
func (c *Client) Start() paho.Token {
	c.sub = c.Queue.Sub(c.Ref.Name()+"/msg", Handler(c.handleMsg))
	return c.sub.Token
}

// Stop unsubscribes and fails pending commands.
func (c *Client) Stop() {
	if c.sub != nil {
		c.sub.Close()
	}
	c.lock.Lock()
	for seq, ch := range c.pending {
		close(ch)
		delete(c.pending, seq)
	}
	c.lock.Unlock()
}

// Do sends a command and waits for its reply. A CommandErr reply is
// returned as the error.
func (c *Client) Do(ctx context.Context, cmd fx.Message) (fx.Message, error) {
	typed, err := msgs.TypedFrom(cmd)
	if err != nil {
		return nil, err
	}
	ch := make(chan fx.Message, 1)
	c.lock.Lock()
	c.seq++
	typed.Sequence = c.seq
	c.pending[typed.Sequence] = ch
	c.lock.Unlock()
	defer c.forget(typed.Sequence)

	data, err := typed.Encode()
	if err != nil {
		return nil, err
	}
	token := c.Queue.Pub(c.Ref.Name()+"/cmd", data)
	select {
	case <-token.Done():
		if err := token.Error(); err != nil {
			return nil, err
		}
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	select {
	case reply, ok := <-ch:
		if !ok {
			return nil, ErrClosed
		}
		if e, isErr := reply.(*msgs.CommandErr); isErr {
			return nil, e
		}
		return reply, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (c *Client) forget(seq uint32) {
	c.lock.Lock()
	delete(c.pending, seq)
	c.lock.Unlock()
}

func (c *Client) handleMsg(topic string, payload []byte) {
	typed, err := msgs.DecodeTyped(payload)
	if err != nil {
		glog.Warningf("%s: bad message: %v", topic, err)
		return
	}
	if !typed.IsReply() && !typed.IsEvent() {
		return
	}
	msg, err := typed.Decode()
	if err != nil {
		glog.Warningf("%s: decode type %x: %v", topic, typed.TypeId, err)
		return
	}
	if typed.IsEvent() {
		if fn := c.OnEvent; fn != nil {
			fn(msg)
		}
		return
	}
	c.lock.Lock()
	ch := c.pending[typed.Sequence]
	delete(c.pending, typed.Sequence)
	c.lock.Unlock()
	if ch != nil {
		ch <- msg
	}
}
