package invoke

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/dshills/eventq/event"
	"github.com/dshills/eventq/event/category"
	"github.com/dshills/eventq/event/dispatch"
)

// ErrNilFunc is returned when a nil function is posted.
var ErrNilFunc = errors.New("func cannot be nil")

// Queue is the driver surface an Invoker needs.
// Both queue.Pump and queue.Background satisfy it.
type Queue interface {
	Subscribe(cat category.Category, sub event.Subscriber) error
	Enqueue(ev any) error
	EnqueueAndWait(ctx context.Context, ev any) error
}

// call is the one-off event an Invoker enqueues. Each Invoker mints its own
// category, so several invokers can share one queue without seeing each
// other's work.
type call struct {
	cat category.Category
	fn  func() error
}

// EventCategory implements event.CategoryProvider.
func (c call) EventCategory() category.Category { return c.cat }

// Invoker runs functions on the consumer of a designated queue.
type Invoker struct {
	q   Queue
	cat category.Category
}

// New creates an invoker bound to q and registers its runner.
func New(q Queue) (*Invoker, error) {
	inv := &Invoker{
		q:   q,
		cat: category.Join("invoke", uuid.NewString()),
	}
	if err := q.Subscribe(inv.cat, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// Handle implements event.Subscriber: it runs the posted function.
func (inv *Invoker) Handle(ctx context.Context, ev any) error {
	c, ok := ev.(call)
	if !ok {
		return nil
	}
	return c.fn()
}

// Post enqueues fn to run on the queue's consumer and returns immediately.
func (inv *Invoker) Post(fn func()) error {
	if fn == nil {
		return ErrNilFunc
	}
	return inv.q.Enqueue(call{
		cat: inv.cat,
		fn: func() error {
			fn()
			return nil
		},
	})
}

// Call runs fn on the queue's consumer and blocks until it finishes or the
// context is cancelled. Returns fn's error, unwrapped from the dispatch
// failure.
//
// Must not be called from the queue's own consumer: the call cannot finish
// while its caller blocks the consumer.
func (inv *Invoker) Call(ctx context.Context, fn func() error) error {
	if fn == nil {
		return ErrNilFunc
	}
	err := inv.q.EnqueueAndWait(ctx, call{cat: inv.cat, fn: fn})

	var he *dispatch.HandlerError
	if errors.As(err, &he) {
		return he.Err
	}
	return err
}

// Category returns the invoker's private event category.
func (inv *Invoker) Category() category.Category {
	return inv.cat
}
