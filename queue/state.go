package queue

import "sync/atomic"

// State is the lifecycle state of a queue driver.
type State int32

const (
	// StateOpen means the queue accepts and dispatches work.
	StateOpen State = iota

	// StateClosing means BeginClose was called: new enqueues are rejected
	// but previously queued items, ending with the terminal notification,
	// are still dispatched.
	StateClosing

	// StateClosed means the terminal notification has been dispatched.
	// The queue is permanently inert.
	StateClosed
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
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

// lifecycle is the shared shutdown state machine.
// Transitions are monotonic: Open -> Closing -> Closed, nothing else.
// Callers serialize transitions under the queue mutex; reads are lock-free.
type lifecycle struct {
	v atomic.Int32
}

// state returns the current state.
func (l *lifecycle) state() State {
	return State(l.v.Load())
}

// beginClose transitions Open -> Closing.
// Returns false if the state was not Open.
func (l *lifecycle) beginClose() bool {
	return l.v.CompareAndSwap(int32(StateOpen), int32(StateClosing))
}

// close transitions Closing -> Closed.
// Returns false if the state was not Closing.
func (l *lifecycle) close() bool {
	return l.v.CompareAndSwap(int32(StateClosing), int32(StateClosed))
}
