package dispatch

import (
	"errors"
	"fmt"

	"github.com/dshills/eventq/event/category"
)

// ErrSubscriberPanic is the sentinel matched by errors.Is for PanicError.
var ErrSubscriberPanic = errors.New("subscriber panicked")

// HandlerError wraps an error returned by a subscriber during dispatch.
type HandlerError struct {
	// Category is the concrete category of the event being dispatched.
	Category category.Category

	// Err is the error the subscriber returned.
	Err error
}

// Error implements the error interface.
func (e *HandlerError) Error() string {
	return fmt.Sprintf("subscriber failed for %s: %v", e.Category, e.Err)
}

// Unwrap returns the subscriber's error.
func (e *HandlerError) Unwrap() error {
	return e.Err
}

// PanicError wraps a panic recovered from a subscriber during dispatch.
type PanicError struct {
	// Category is the concrete category of the event being dispatched.
	Category category.Category

	// Value is the value passed to panic().
	Value any

	// Stack is the stack trace at the time of the panic.
	Stack []byte
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("subscriber panicked for %s: %v", e.Category, e.Value)
}

// Is allows errors.Is to match PanicError with ErrSubscriberPanic.
func (e *PanicError) Is(target error) bool {
	return target == ErrSubscriberPanic
}
