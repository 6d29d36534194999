package binance

import "net/http"

// StartStream is the request builder for opening a user-data stream.
type StartStream struct {
	*ParamBuilder
}

// StartStream opens a new user-data stream and returns its listen key.
// The stream closes after 60 minutes unless kept alive.
func (c *UserDataClient) StartStream() StartStream {
	return StartStream{c.builder(http.MethodPost, "/api/v3/userDataStream")}
}

// KeepAlive is the request builder for user-data stream keepalives.
type KeepAlive struct {
	*ParamBuilder
}

// KeepAlive extends the validity of a listen key by 60 minutes. Recommended
// roughly every 30 minutes.
func (c *UserDataClient) KeepAlive(listenKey string) KeepAlive {
	b := c.builder(http.MethodPut, "/api/v3/userDataStream")
	b.params.ListenKey = &listenKey
	return KeepAlive{b}
}

// CloseStream is the request builder for closing a user-data stream.
type CloseStream struct {
	*ParamBuilder
}

// CloseStream closes a user-data stream.
func (c *UserDataClient) CloseStream(listenKey string) CloseStream {
	b := c.builder(http.MethodDelete, "/api/v3/userDataStream")
	b.params.ListenKey = &listenKey
	return CloseStream{b}
}
