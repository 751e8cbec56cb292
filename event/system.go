package event

import "github.com/dshills/eventq/event/category"

// Categories of the events the queue itself emits.
const (
	// CategoryQueueClosed is the category of the terminal QueueClosed event.
	CategoryQueueClosed = category.Category("queue.closed")

	// CategoryDeliveryFailure is the category of DeliveryFailure events.
	CategoryDeliveryFailure = category.Category("queue.delivery.failure")
)

// QueueClosed is the terminal notification. It is appended by BeginClose,
// carries no payload, and is the last event a queue ever dispatches.
type QueueClosed struct{}

// EventCategory implements CategoryProvider.
func (QueueClosed) EventCategory() category.Category {
	return CategoryQueueClosed
}

// DeliveryFailure reports subscriber failures from a fire-and-forget
// dispatch. It is enqueued by the queue when an event without a completion
// handle had failing subscribers, so the failures are observable instead of
// silently dropped.
type DeliveryFailure struct {
	// Event is the event whose dispatch produced the failures.
	Event any

	// Errs are the collected subscriber failures in invocation order.
	Errs []error
}

// EventCategory implements CategoryProvider.
func (DeliveryFailure) EventCategory() category.Category {
	return CategoryDeliveryFailure
}
