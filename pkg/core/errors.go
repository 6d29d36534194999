package core

import (
	"errors"
	"fmt"
)

// Kind categorizes errors for programmatic handling.
type Kind int

// Error kind constants cover every failure class the library produces.
const (
	// KindTransport indicates a connection, TLS, or socket failure.
	KindTransport Kind = iota
	// KindSerialization indicates a failure encoding an outbound body or
	// decoding an inbound frame.
	KindSerialization
	// KindSigning indicates unusable key material.
	KindSigning
	// KindRejected indicates a 4xx response from the exchange.
	KindRejected
	// KindChannelClosed indicates the WebSocket peer sent a close frame.
	KindChannelClosed
)

// String returns the string representation of the error kind.
func (k Kind) String() string {
	return [...]string{
		"TRANSPORT",
		"SERIALIZATION",
		"SIGNING",
		"REJECTED",
		"CHANNEL_CLOSED",
	}[k]
}

// ErrInvalidKey is returned when the secret key cannot be used as an HMAC key.
var ErrInvalidKey = errors.New("secret key cannot be empty")

// Error wraps an underlying failure with its Kind. It is the common envelope
// for transport, serialization, and signing failures.
type Error struct {
	Kind Kind
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Transport wraps err as a transport-level failure.
func Transport(err error) *Error {
	return &Error{Kind: KindTransport, Err: err}
}

// Serialization wraps err as an encoding or decoding failure.
func Serialization(err error) *Error {
	return &Error{Kind: KindSerialization, Err: err}
}

// Signing wraps err as a key-material failure.
func Signing(err error) *Error {
	return &Error{Kind: KindSigning, Err: err}
}

// APIError is returned for 4xx responses. It carries the machine-readable
// status code, the HTTP reason phrase, and the raw response body.
type APIError struct {
	StatusCode int    `json:"status_code"`
	Reason     string `json:"reason"`
	Body       string `json:"body"`
}

// Error implements the error interface for APIError.
func (e *APIError) Error() string {
	return fmt.Sprintf("request rejected (%d %s): %s", e.StatusCode, e.Reason, e.Body)
}

// CloseError is returned when the WebSocket peer closes the channel.
// It carries the close code and reason from the close frame.
type CloseError struct {
	Code   int    `json:"code"`
	Reason string `json:"reason"`
}

// Error implements the error interface for CloseError.
func (e *CloseError) Error() string {
	return fmt.Sprintf("channel closed (%d): %s", e.Code, e.Reason)
}

// IsRejected reports whether err is (or wraps) an APIError and returns it.
func IsRejected(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsClosed reports whether err is (or wraps) a CloseError and returns it.
func IsClosed(err error) (*CloseError, bool) {
	var closeErr *CloseError
	if errors.As(err, &closeErr) {
		return closeErr, true
	}
	return nil, false
}

// KindOf returns the Kind classification for err. APIError and CloseError
// map to their dedicated kinds; wrapped Errors report their own kind.
func KindOf(err error) (Kind, bool) {
	if _, ok := IsRejected(err); ok {
		return KindRejected, true
	}
	if _, ok := IsClosed(err); ok {
		return KindChannelClosed, true
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
