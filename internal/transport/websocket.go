// Package transport provides the raw network connections used by the
// higher level packages. It exposes WebSocket traffic as a channel of
// frames and leaves all protocol interpretation to the caller.
package transport

import (
	"context"
	"errors"
	"sync"

	"github.com/lxzan/gws"
)

// FrameType identifies the kind of WebSocket frame received.
type FrameType int

const (
	FrameText FrameType = iota
	FrameBinary
	FramePing
	FramePong
	FrameClose
)

// Frame is one inbound WebSocket frame. Code is set only for close
// frames; Payload holds the message body, ping/pong application data, or
// the close reason.
type Frame struct {
	Type    FrameType
	Code    int
	Payload []byte
}

// WSConn is a WebSocket connection that delivers inbound frames over a
// channel. Control frames are surfaced as-is: the connection never
// replies to pings on its own, so the caller owns the full exchange.
type WSConn struct {
	conn   *gws.Conn
	frames chan Frame

	done       chan struct{}
	closeOnce  sync.Once
	localClose bool

	mu  sync.Mutex
	err error
}

type wsHandler struct {
	c *WSConn
}

func (h *wsHandler) OnOpen(socket *gws.Conn) {}

func (h *wsHandler) OnClose(socket *gws.Conn, err error) {
	var ce *gws.CloseError
	if errors.As(err, &ce) {
		h.c.push(Frame{Type: FrameClose, Code: int(ce.Code), Payload: []byte(ce.Reason)})
	} else if err != nil && !h.c.localClose {
		h.c.setErr(err)
	}
	h.c.shutdown()
}

func (h *wsHandler) OnPing(socket *gws.Conn, payload []byte) {
	h.c.push(Frame{Type: FramePing, Payload: append([]byte(nil), payload...)})
}

func (h *wsHandler) OnPong(socket *gws.Conn, payload []byte) {
	h.c.push(Frame{Type: FramePong, Payload: append([]byte(nil), payload...)})
}

func (h *wsHandler) OnMessage(socket *gws.Conn, message *gws.Message) {
	defer message.Close()
	ft := FrameText
	if message.Opcode == gws.OpcodeBinary {
		ft = FrameBinary
	}
	h.c.push(Frame{Type: ft, Payload: append([]byte(nil), message.Bytes()...)})
}

// Dial opens a WebSocket connection to addr and starts its read loop.
func Dial(ctx context.Context, addr string) (*WSConn, error) {
	c := &WSConn{
		frames: make(chan Frame, 64),
		done:   make(chan struct{}),
	}

	type dialResult struct {
		conn *gws.Conn
		err  error
	}
	ch := make(chan dialResult, 1)
	go func() {
		conn, _, err := gws.NewClient(&wsHandler{c: c}, &gws.ClientOption{Addr: addr})
		ch <- dialResult{conn, err}
	}()

	select {
	case <-ctx.Done():
		go func() {
			if r := <-ch; r.conn != nil {
				r.conn.WriteClose(1000, nil)
			}
		}()
		return nil, ctx.Err()
	case r := <-ch:
		if r.err != nil {
			return nil, r.err
		}
		c.conn = r.conn
		go c.conn.ReadLoop()
		return c, nil
	}
}

func (c *WSConn) push(f Frame) {
	select {
	case c.frames <- f:
	case <-c.done:
	}
}

func (c *WSConn) shutdown() {
	c.closeOnce.Do(func() {
		close(c.done)
		close(c.frames)
	})
}

func (c *WSConn) setErr(err error) {
	c.mu.Lock()
	if c.err == nil {
		c.err = err
	}
	c.mu.Unlock()
}

// Frames returns the inbound frame channel. It is closed when the
// connection terminates for any reason.
func (c *WSConn) Frames() <-chan Frame {
	return c.frames
}

// Err reports the transport error that terminated the connection, if
// any. A locally initiated close and a clean remote close both leave it
// nil.
func (c *WSConn) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// WriteText sends a text frame.
func (c *WSConn) WriteText(p []byte) error {
	return c.conn.WriteMessage(gws.OpcodeText, p)
}

// WritePing sends a ping frame with the given application data.
func (c *WSConn) WritePing(p []byte) error {
	return c.conn.WritePing(p)
}

// WritePong sends a pong frame with the given application data.
func (c *WSConn) WritePong(p []byte) error {
	return c.conn.WritePong(p)
}

// Close sends a close frame with the given code and reason.
func (c *WSConn) Close(code int, reason string) error {
	c.localClose = true
	return c.conn.WriteClose(uint16(code), []byte(reason))
}
