package dispatch

import "time"

// Result describes one subscriber invocation.
type Result struct {
	// Err is the error returned by the subscriber, if any.
	Err error

	// Panicked is true if the subscriber panicked.
	Panicked bool

	// PanicValue is the value passed to panic(), if Panicked is true.
	PanicValue any

	// PanicStack is the stack trace at the point of panic.
	PanicStack []byte

	// Duration is how long the subscriber took to execute.
	Duration time.Duration
}

// Ok returns true if the subscriber neither errored nor panicked.
func (r Result) Ok() bool {
	return !r.Panicked && r.Err == nil
}
