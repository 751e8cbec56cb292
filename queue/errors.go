package queue

import "errors"

// Sentinel errors for the queue drivers.
var (
	// ErrQueueClosed is returned when enqueuing, subscribing, or closing
	// after the queue stopped accepting work.
	ErrQueueClosed = errors.New("queue is closed")

	// ErrAlreadyClosing is returned when BeginClose is called twice.
	ErrAlreadyClosing = errors.New("queue is already closing")
)
