package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/lxzan/gws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoHandler struct {
	gws.BuiltinEventHandler
}

func (h *echoHandler) OnMessage(socket *gws.Conn, message *gws.Message) {
	defer message.Close()
	_ = socket.WriteMessage(message.Opcode, message.Bytes())
}

func echoServer(t *testing.T) string {
	t.Helper()
	upgrader := gws.NewUpgrader(&echoHandler{}, &gws.ServerOption{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		socket, err := upgrader.Upgrade(w, r)
		if err != nil {
			return
		}
		go socket.ReadLoop()
	}))
	t.Cleanup(srv.Close)
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func readFrame(t *testing.T, c *WSConn) Frame {
	t.Helper()
	select {
	case f, ok := <-c.Frames():
		require.True(t, ok, "frame channel closed")
		return f
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for frame")
		return Frame{}
	}
}

func TestDialAndEcho(t *testing.T) {
	conn, err := Dial(context.Background(), echoServer(t))
	require.NoError(t, err)
	defer conn.Close(1000, "")

	require.NoError(t, conn.WriteText([]byte(`{"method":"SUBSCRIBE"}`)))

	f := readFrame(t, conn)
	assert.Equal(t, FrameText, f.Type)
	assert.Equal(t, `{"method":"SUBSCRIBE"}`, string(f.Payload))
}

func TestDialBadAddress(t *testing.T) {
	_, err := Dial(context.Background(), "ws://127.0.0.1:1")
	assert.Error(t, err)
}

func TestDialCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Dial(ctx, echoServer(t))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPongDelivered(t *testing.T) {
	conn, err := Dial(context.Background(), echoServer(t))
	require.NoError(t, err)
	defer conn.Close(1000, "")

	// The echo server's default ping handling answers with a pong, which
	// must surface as a frame instead of being swallowed.
	require.NoError(t, conn.WritePing([]byte("stayin alive")))

	f := readFrame(t, conn)
	assert.Equal(t, FramePong, f.Type)
}

func TestLocalCloseShutsDownCleanly(t *testing.T) {
	conn, err := Dial(context.Background(), echoServer(t))
	require.NoError(t, err)

	require.NoError(t, conn.Close(1000, "done"))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case _, ok := <-conn.Frames():
			if !ok {
				assert.NoError(t, conn.Err())
				return
			}
		case <-deadline:
			t.Fatal("frame channel never closed")
		}
	}
}
