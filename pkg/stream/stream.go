// Package stream implements the WebSocket market data protocol: typed
// channels rendered to topic strings, the JSON control envelope for
// subscribe and unsubscribe, and a read loop that answers ping and pong
// frames while surfacing them as synthetic events.
package stream

import (
	"context"
	"fmt"
	"iter"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog"

	"nakula/internal/transport"
	"nakula/pkg/core"
)

// StreamURL is the production WebSocket endpoint.
const StreamURL = "wss://stream.binance.us:9443"

// Conn is the transport a Stream reads from and writes to.
type Conn interface {
	Frames() <-chan transport.Frame
	WriteText(p []byte) error
	WritePing(p []byte) error
	WritePong(p []byte) error
	Close(code int, reason string) error
	Err() error
}

// controlMessage is the envelope for subscription management requests.
type controlMessage struct {
	Method string `json:"method"`
	Params []any  `json:"params"`
	ID     uint64 `json:"id"`
}

// Stream is a live connection to one or more channels. Messages are
// pulled with Text, JSON, or Messages; nothing is read from the wire
// until the caller asks.
//
// A Stream is not safe for concurrent readers.
type Stream struct {
	conn   Conn
	state  State
	id     uint64
	logger zerolog.Logger
}

// Connect dials url, joins the channel, and enables combined payloads so
// every message carries the stream name it belongs to.
func Connect(ctx context.Context, ch Channel, url string) (*Stream, error) {
	conn, err := transport.Dial(ctx, url+"/ws/"+ch.Topic())
	if err != nil {
		return nil, core.Transport(err)
	}
	return connect(conn, zerolog.Nop())
}

func connect(conn Conn, logger zerolog.Logger) (*Stream, error) {
	s := &Stream{conn: conn, logger: logger}
	s.state.Store(StateConnecting)
	if err := s.send("SET_PROPERTY", []any{"combined", true}); err != nil {
		_ = conn.Close(1002, "")
		s.state.Store(StateClosed)
		return nil, err
	}
	s.state.Store(StateOpen)
	return s, nil
}

// SetLogger attaches a logger for protocol level events.
func (s *Stream) SetLogger(logger zerolog.Logger) {
	s.logger = logger
}

// State returns the current connection state.
func (s *Stream) State() ConnState {
	return s.state.Load()
}

func (s *Stream) send(method string, params []any) error {
	msg := controlMessage{Method: method, Params: params, ID: s.id}
	s.id++
	p, err := sonic.Marshal(msg)
	if err != nil {
		return core.Serialization(err)
	}
	s.logger.Debug().Str("method", method).Uint64("id", msg.ID).Msg("control message")
	if err := s.conn.WriteText(p); err != nil {
		return core.Transport(err)
	}
	return nil
}

func (s *Stream) control(method string, channels []Channel) error {
	if st := s.state.Load(); st != StateOpen {
		return core.Transport(fmt.Errorf("stream is %s", st))
	}
	params := make([]any, len(channels))
	for i, ch := range channels {
		params[i] = ch.Topic()
	}
	return s.send(method, params)
}

// Subscribe joins the given channels on the existing connection. The
// confirmation arrives in-band as a regular message.
func (s *Stream) Subscribe(channels ...Channel) error {
	return s.control("SUBSCRIBE", channels)
}

// Unsubscribe leaves the given channels.
func (s *Stream) Unsubscribe(channels ...Channel) error {
	return s.control("UNSUBSCRIBE", channels)
}

// Text returns the next message as a string. Ping and pong frames are
// answered with their counterpart and reported as synthetic events, so
// the connection stays healthy only while the caller keeps reading.
// When the stream ends without error, ok is false and err is nil.
func (s *Stream) Text(ctx context.Context) (msg string, ok bool, err error) {
	for {
		select {
		case <-ctx.Done():
			return "", false, core.Transport(ctx.Err())
		case f, open := <-s.conn.Frames():
			if !open {
				s.state.Store(StateClosed)
				if err := s.conn.Err(); err != nil {
					return "", false, core.Transport(err)
				}
				return "", false, nil
			}
			switch f.Type {
			case FrameText, FrameBinary:
				return string(f.Payload), true, nil
			case FramePing:
				if err := s.conn.WritePong(f.Payload); err != nil {
					return "", false, core.Transport(err)
				}
				return syntheticEvent("ping", f.Payload)
			case FramePong:
				if err := s.conn.WritePing(f.Payload); err != nil {
					return "", false, core.Transport(err)
				}
				return syntheticEvent("pong", f.Payload)
			case FrameClose:
				s.state.Store(StateClosed)
				if f.Code == 0 && len(f.Payload) == 0 {
					return "", false, &core.CloseError{Code: 1006, Reason: "close message with no frame received"}
				}
				return "", false, &core.CloseError{Code: f.Code, Reason: string(f.Payload)}
			}
		}
	}
}

// syntheticEvent turns a control frame into a message the caller can
// observe alongside regular traffic.
func syntheticEvent(kind string, payload []byte) (string, bool, error) {
	msg, err := sonic.MarshalString(map[string]string{kind: string(payload)})
	if err != nil {
		return "", false, core.Serialization(err)
	}
	return msg, true, nil
}

// Aliases so callers of the stream package do not have to import the
// transport package to switch on frame kinds.
const (
	FrameText   = transport.FrameText
	FrameBinary = transport.FrameBinary
	FramePing   = transport.FramePing
	FramePong   = transport.FramePong
	FrameClose  = transport.FrameClose
)

// JSON reads the next message and unmarshals it into v. ok is false
// with a nil error on a graceful end of stream.
func (s *Stream) JSON(ctx context.Context, v any) (ok bool, err error) {
	msg, ok, err := s.Text(ctx)
	if err != nil || !ok {
		return ok, err
	}
	if err := sonic.UnmarshalString(msg, v); err != nil {
		return false, core.Serialization(err)
	}
	return true, nil
}

// Messages iterates over the stream until it ends or ctx is cancelled.
// Each step yields either a message or the error that stopped the
// stream; iteration always finishes after the first error.
func (s *Stream) Messages(ctx context.Context) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for {
			msg, ok, err := s.Text(ctx)
			if err != nil {
				yield("", err)
				return
			}
			if !ok {
				return
			}
			if !yield(msg, nil) {
				return
			}
		}
	}
}

// Close performs a clean shutdown with the given close code and reason.
func (s *Stream) Close(code int, reason string) error {
	if !s.state.CompareAndSwap(StateOpen, StateClosing) {
		return nil
	}
	err := s.conn.Close(code, reason)
	s.state.Store(StateClosed)
	if err != nil {
		return core.Transport(err)
	}
	return nil
}
