package stream

import "sync/atomic"

// ConnState is the lifecycle phase of a stream connection.
type ConnState int32

const (
	StateConnecting ConnState = iota
	StateOpen
	StateClosing
	StateClosed
)

// String returns a readable name for logging.
func (s ConnState) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateOpen:
		return "open"
	case StateClosing:
		return "closing"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// State holds a ConnState with atomic access.
type State struct {
	v atomic.Int32
}

// Load returns the current state.
func (s *State) Load() ConnState {
	return ConnState(s.v.Load())
}

// Store sets the state unconditionally.
func (s *State) Store(st ConnState) {
	s.v.Store(int32(st))
}

// CompareAndSwap transitions from old to new, reporting whether it
// succeeded.
func (s *State) CompareAndSwap(old, new ConnState) bool {
	return s.v.CompareAndSwap(int32(old), int32(new))
}
