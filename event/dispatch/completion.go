package dispatch

import (
	"context"
	"sync"
)

// Completion is the handle a producer holds while its item is in flight.
// It is signaled exactly once, after every matching subscriber has been
// invoked, and then carries the failures collected in invocation order.
type Completion struct {
	once sync.Once
	done chan struct{}
	errs []error
}

func newCompletion() *Completion {
	return &Completion{
		done: make(chan struct{}),
	}
}

// complete records the collected failures and releases all waiters.
// errs may be nil when every subscriber succeeded.
func (c *Completion) complete(errs []error) {
	c.once.Do(func() {
		c.errs = errs
		close(c.done)
	})
}

// Done returns a channel that is closed when dispatch has finished.
func (c *Completion) Done() <-chan struct{} {
	return c.done
}

// IsDone reports whether dispatch has finished without blocking.
func (c *Completion) IsDone() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}

// Wait blocks until dispatch finishes or the context is cancelled.
// On completion it returns the first collected failure, or nil if every
// subscriber succeeded.
func (c *Completion) Wait(ctx context.Context) error {
	select {
	case <-c.done:
		return c.Err()
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Err returns the first collected failure, or nil if dispatch has not
// finished or every subscriber succeeded.
func (c *Completion) Err() error {
	if !c.IsDone() {
		return nil
	}
	if len(c.errs) == 0 {
		return nil
	}
	return c.errs[0]
}

// Errs returns a copy of all collected failures in invocation order.
// Returns nil if dispatch has not finished or no subscriber failed.
func (c *Completion) Errs() []error {
	if !c.IsDone() || len(c.errs) == 0 {
		return nil
	}
	out := make([]error, len(c.errs))
	copy(out, c.errs)
	return out
}
