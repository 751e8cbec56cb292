package queue

import (
	"context"

	"github.com/dshills/eventq/event/dispatch"
)

// Option configures a queue driver.
type Option func(*config)

// config contains configuration shared by both drivers.
type config struct {
	// hook receives failures the queue cannot re-enqueue as a
	// DeliveryFailure event.
	hook dispatch.FailureHandler

	// baseCtx is the context passed to subscribers dispatched by the
	// Background worker.
	baseCtx context.Context
}

func defaultConfig() config {
	return config{
		hook:    func(any, []error) {},
		baseCtx: context.Background(),
	}
}

// WithFailureHook sets the last-resort sink for subscriber failures that
// cannot be re-enqueued as a DeliveryFailure event: failures of a
// DeliveryFailure dispatch itself, and failures observed after the queue
// stopped accepting work.
func WithFailureHook(h dispatch.FailureHandler) Option {
	return func(c *config) {
		if h != nil {
			c.hook = h
		}
	}
}

// WithContext sets the context a Background worker passes to subscribers.
// Cancelling it does not stop the worker; subscribers observe it on their
// own. Pump ignores this option, its consumer supplies the context per
// drive call.
func WithContext(ctx context.Context) Option {
	return func(c *config) {
		if ctx != nil {
			c.baseCtx = ctx
		}
	}
}
