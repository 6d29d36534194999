package stream

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nakula/internal/transport"
	"nakula/pkg/core"
)

type fakeConn struct {
	frames chan transport.Frame

	texts [][]byte
	pings [][]byte
	pongs [][]byte

	closeCode   int
	closeReason string
	closed      bool

	err error
}

func newFakeConn(frames ...transport.Frame) *fakeConn {
	ch := make(chan transport.Frame, len(frames))
	for _, f := range frames {
		ch <- f
	}
	close(ch)
	return &fakeConn{frames: ch}
}

func (c *fakeConn) Frames() <-chan transport.Frame { return c.frames }

func (c *fakeConn) WriteText(p []byte) error {
	c.texts = append(c.texts, append([]byte(nil), p...))
	return nil
}

func (c *fakeConn) WritePing(p []byte) error {
	c.pings = append(c.pings, append([]byte(nil), p...))
	return nil
}

func (c *fakeConn) WritePong(p []byte) error {
	c.pongs = append(c.pongs, append([]byte(nil), p...))
	return nil
}

func (c *fakeConn) Close(code int, reason string) error {
	c.closed = true
	c.closeCode = code
	c.closeReason = reason
	return nil
}

func (c *fakeConn) Err() error { return c.err }

func openStream(t *testing.T, conn *fakeConn) *Stream {
	t.Helper()
	s, err := connect(conn, zerolog.Nop())
	require.NoError(t, err)
	require.Equal(t, StateOpen, s.State())
	return s
}

func decodeControl(t *testing.T, raw []byte) controlMessage {
	t.Helper()
	var msg controlMessage
	require.NoError(t, sonic.Unmarshal(raw, &msg))
	return msg
}

func TestControlMessageSequence(t *testing.T) {
	conn := newFakeConn()
	s := openStream(t, conn)

	require.NoError(t, s.Subscribe(BookTicker("BNBUSDT"), Trade("ETHUSDT")))
	require.NoError(t, s.Unsubscribe(Trade("ETHUSDT")))

	require.Len(t, conn.texts, 3)

	setProp := decodeControl(t, conn.texts[0])
	assert.Equal(t, "SET_PROPERTY", setProp.Method)
	assert.Equal(t, []any{"combined", true}, setProp.Params)
	assert.Equal(t, uint64(0), setProp.ID)

	sub := decodeControl(t, conn.texts[1])
	assert.Equal(t, "SUBSCRIBE", sub.Method)
	assert.Equal(t, []any{"bnbusdt@bookTicker", "ethusdt@trade"}, sub.Params)
	assert.Equal(t, uint64(1), sub.ID)

	unsub := decodeControl(t, conn.texts[2])
	assert.Equal(t, "UNSUBSCRIBE", unsub.Method)
	assert.Equal(t, []any{"ethusdt@trade"}, unsub.Params)
	assert.Equal(t, uint64(2), unsub.ID)
}

func TestControlEnvelopeShape(t *testing.T) {
	conn := newFakeConn()
	s := openStream(t, conn)

	require.NoError(t, s.Subscribe(BookTicker("BNBUSDT")))

	assert.JSONEq(t,
		`{"method":"SUBSCRIBE","params":["bnbusdt@bookTicker"],"id":1}`,
		string(conn.texts[1]))
}

func TestTextDeliversMessages(t *testing.T) {
	conn := newFakeConn(
		transport.Frame{Type: transport.FrameText, Payload: []byte(`{"u":400900217}`)},
		transport.Frame{Type: transport.FrameBinary, Payload: []byte(`{"u":400900218}`)},
	)
	s := openStream(t, conn)
	ctx := context.Background()

	msg, ok, err := s.Text(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"u":400900217}`, msg)

	// Binary frames carry the same JSON and surface identically.
	msg, ok, err = s.Text(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"u":400900218}`, msg)

	// Graceful end of stream.
	_, ok, err = s.Text(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, StateClosed, s.State())
}

func TestPingReciprocation(t *testing.T) {
	conn := newFakeConn(
		transport.Frame{Type: transport.FramePing, Payload: []byte("1700000000000")},
	)
	s := openStream(t, conn)

	msg, ok, err := s.Text(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"ping":"1700000000000"}`, msg)

	require.Len(t, conn.pongs, 1)
	assert.Equal(t, []byte("1700000000000"), conn.pongs[0])
	assert.Empty(t, conn.pings)
}

func TestPongReciprocation(t *testing.T) {
	conn := newFakeConn(
		transport.Frame{Type: transport.FramePong, Payload: []byte("alive")},
	)
	s := openStream(t, conn)

	msg, ok, err := s.Text(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"pong":"alive"}`, msg)

	require.Len(t, conn.pings, 1)
	assert.Equal(t, []byte("alive"), conn.pings[0])
	assert.Empty(t, conn.pongs)
}

func TestCloseFrame(t *testing.T) {
	conn := newFakeConn(
		transport.Frame{Type: transport.FrameClose, Code: 1008, Payload: []byte("policy violation")},
	)
	s := openStream(t, conn)

	_, _, err := s.Text(context.Background())
	require.Error(t, err)

	closeErr, ok := core.IsClosed(err)
	require.True(t, ok)
	assert.Equal(t, 1008, closeErr.Code)
	assert.Equal(t, "policy violation", closeErr.Reason)
	assert.Equal(t, StateClosed, s.State())
}

func TestCloseWithoutFrame(t *testing.T) {
	conn := newFakeConn(transport.Frame{Type: transport.FrameClose})
	s := openStream(t, conn)

	_, _, err := s.Text(context.Background())
	require.Error(t, err)

	closeErr, ok := core.IsClosed(err)
	require.True(t, ok)
	assert.Equal(t, 1006, closeErr.Code)
	assert.Equal(t, "close message with no frame received", closeErr.Reason)
}

func TestTransportFailureSurfaced(t *testing.T) {
	conn := newFakeConn()
	conn.err = errors.New("connection reset by peer")
	s := openStream(t, conn)

	_, ok, err := s.Text(context.Background())
	assert.False(t, ok)
	require.Error(t, err)

	kind, found := core.KindOf(err)
	require.True(t, found)
	assert.Equal(t, core.KindTransport, kind)
}

func TestTextContextCancellation(t *testing.T) {
	conn := &fakeConn{frames: make(chan transport.Frame)}
	s := openStream(t, conn)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, _, err := s.Text(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestJSON(t *testing.T) {
	conn := newFakeConn(
		transport.Frame{Type: transport.FrameText, Payload: []byte(`{"s":"BNBUSDT","b":"25.35"}`)},
		transport.Frame{Type: transport.FrameText, Payload: []byte(`{"s":`)},
	)
	s := openStream(t, conn)
	ctx := context.Background()

	var tick struct {
		Symbol string `json:"s"`
		Bid    string `json:"b"`
	}
	ok, err := s.JSON(ctx, &tick)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "BNBUSDT", tick.Symbol)
	assert.Equal(t, "25.35", tick.Bid)

	_, err = s.JSON(ctx, &tick)
	require.Error(t, err)
	kind, found := core.KindOf(err)
	require.True(t, found)
	assert.Equal(t, core.KindSerialization, kind)
}

func TestMessagesIteration(t *testing.T) {
	conn := newFakeConn(
		transport.Frame{Type: transport.FrameText, Payload: []byte(`one`)},
		transport.Frame{Type: transport.FrameText, Payload: []byte(`two`)},
		transport.Frame{Type: transport.FrameText, Payload: []byte(`three`)},
	)
	s := openStream(t, conn)

	var got []string
	for msg, err := range s.Messages(context.Background()) {
		require.NoError(t, err)
		got = append(got, msg)
	}
	assert.Equal(t, []string{"one", "two", "three"}, got)
}

func TestMessagesStopOnError(t *testing.T) {
	conn := newFakeConn(
		transport.Frame{Type: transport.FrameText, Payload: []byte(`one`)},
		transport.Frame{Type: transport.FrameClose, Code: 1001, Payload: []byte("going away")},
	)
	s := openStream(t, conn)

	var msgs []string
	var lastErr error
	for msg, err := range s.Messages(context.Background()) {
		if err != nil {
			lastErr = err
			continue
		}
		msgs = append(msgs, msg)
	}

	assert.Equal(t, []string{"one"}, msgs)
	closeErr, ok := core.IsClosed(lastErr)
	require.True(t, ok)
	assert.Equal(t, 1001, closeErr.Code)
}

func TestStreamClose(t *testing.T) {
	conn := &fakeConn{frames: make(chan transport.Frame)}
	s := openStream(t, conn)

	require.NoError(t, s.Close(1000, "done"))
	assert.True(t, conn.closed)
	assert.Equal(t, 1000, conn.closeCode)
	assert.Equal(t, "done", conn.closeReason)
	assert.Equal(t, StateClosed, s.State())

	// Idempotent after the first close.
	require.NoError(t, s.Close(1000, "again"))
	assert.Equal(t, "done", conn.closeReason)

	err := s.Subscribe(Trade("BNBUSDT"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "closed")
}
