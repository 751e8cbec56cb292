package queue

import (
	"github.com/dshills/eventq/event"
	"github.com/dshills/eventq/event/dispatch"
)

// failureRouter builds the engine failure handler for a driver. Failures of
// a fire-and-forget item are re-enqueued as an event.DeliveryFailure so
// subscribers can observe them. The hook catches the two cases where
// re-enqueuing is not possible: the failed event already is a
// DeliveryFailure, or the queue no longer accepts work.
func failureRouter(enqueue func(ev any) error, hook dispatch.FailureHandler) dispatch.FailureHandler {
	return func(ev any, errs []error) {
		if _, ok := ev.(event.DeliveryFailure); ok {
			hook(ev, errs)
			return
		}
		failure := event.DeliveryFailure{Event: ev, Errs: errs}
		if err := enqueue(failure); err != nil {
			hook(failure, errs)
		}
	}
}
