package queue

import (
	"context"
	"sync"

	"github.com/sourcegraph/conc"

	"github.com/dshills/eventq/event"
	"github.com/dshills/eventq/event/category"
	"github.com/dshills/eventq/event/dispatch"
)

// Background is the continuously driven queue. It has the same semantics as
// Pump but owns a dedicated worker goroutine that drains the queue, so there
// is no HandleOne or HandleAll. The worker exits after dispatching the
// terminal notification; Join waits for that.
type Background struct {
	registry *event.Registry
	engine   *dispatch.Engine
	life     lifecycle
	baseCtx  context.Context

	mu    sync.Mutex
	cond  *sync.Cond
	items []*dispatch.Item

	wg   conc.WaitGroup
	done chan struct{}
}

// NewBackground creates a background queue and starts its worker.
// The worker runs until BeginClose is called and the terminal notification
// has been dispatched.
func NewBackground(opts ...Option) *Background {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	b := &Background{
		registry: event.NewRegistry(),
		baseCtx:  cfg.baseCtx,
		done:     make(chan struct{}),
	}
	b.cond = sync.NewCond(&b.mu)
	b.engine = dispatch.NewEngine(
		dispatch.WithFailureHandler(failureRouter(b.Enqueue, cfg.hook)),
	)

	b.wg.Go(b.run)
	return b
}

// run is the worker loop: wait for an item, dispatch it, repeat until the
// terminal notification has been dispatched.
func (b *Background) run() {
	defer close(b.done)

	for {
		b.mu.Lock()
		for len(b.items) == 0 {
			b.cond.Wait()
		}
		item := b.items[0]
		b.items[0] = nil
		b.items = b.items[1:]
		b.mu.Unlock()

		subs := b.registry.Resolve(item.Event)
		b.engine.Dispatch(b.baseCtx, item, subs)

		if _, terminal := item.Event.(event.QueueClosed); terminal {
			b.life.close()
			return
		}
	}
}

// Subscribe registers a subscriber under a category.
// Returns ErrQueueClosed once the queue is fully closed.
func (b *Background) Subscribe(cat category.Category, sub event.Subscriber) error {
	if b.life.state() == StateClosed {
		return ErrQueueClosed
	}
	return b.registry.Subscribe(cat, sub)
}

// Unsubscribe removes a registration.
// Returns ErrQueueClosed once the queue is fully closed.
func (b *Background) Unsubscribe(cat category.Category, sub event.Subscriber) error {
	if b.life.state() == StateClosed {
		return ErrQueueClosed
	}
	return b.registry.Unsubscribe(cat, sub)
}

// Enqueue appends a fire-and-forget item and wakes the worker.
// Safe to call from any goroutine. Returns ErrQueueClosed after BeginClose.
func (b *Background) Enqueue(ev any) error {
	_, err := b.push(ev, false)
	return err
}

// EnqueueAndWait appends an item and blocks until the worker has dispatched
// it or the context is cancelled. On completion it returns the first
// subscriber failure, or nil if every subscriber succeeded.
// Returns ErrQueueClosed after BeginClose.
//
// Must not be called from a subscriber of this queue: the worker that would
// resolve the wait is the one blocked dispatching the caller.
func (b *Background) EnqueueAndWait(ctx context.Context, ev any) error {
	completion, err := b.push(ev, true)
	if err != nil {
		return err
	}
	return completion.Wait(ctx)
}

// push validates the event, appends an item under the queue lock, and
// signals the worker. The returned completion is nil for untracked items.
func (b *Background) push(ev any, tracked bool) (*dispatch.Completion, error) {
	if len(event.CategoriesOf(ev)) == 0 {
		return nil, event.ErrInvalidEvent
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.life.state() != StateOpen {
		return nil, ErrQueueClosed
	}

	var item *dispatch.Item
	var completion *dispatch.Completion
	if tracked {
		item, completion = dispatch.NewTrackedItem(ev)
	} else {
		item = dispatch.NewItem(ev)
	}
	b.items = append(b.items, item)
	b.cond.Signal()
	return completion, nil
}

// BeginClose transitions the queue from Open to Closing and appends the
// terminal event.QueueClosed notification behind all queued work. Further
// enqueues fail with ErrQueueClosed. The worker drains the remaining items,
// dispatches the terminal notification, transitions to Closed, and exits.
// Returns ErrAlreadyClosing or ErrQueueClosed on repeat calls.
func (b *Background) BeginClose() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.life.state() {
	case StateClosing:
		return ErrAlreadyClosing
	case StateClosed:
		return ErrQueueClosed
	}

	b.life.beginClose()
	b.items = append(b.items, dispatch.NewItem(event.QueueClosed{}))
	b.cond.Signal()
	return nil
}

// Join blocks until the worker has exited or the context is cancelled.
// The worker only exits after BeginClose; call that first.
func (b *Background) Join(ctx context.Context) error {
	select {
	case <-b.done:
		b.wg.Wait()
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// HasEvents reports whether any items are waiting to be dispatched.
func (b *Background) HasEvents() bool {
	return b.Len() > 0
}

// Len returns the number of queued items not yet picked up by the worker.
func (b *Background) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.items)
}

// State returns the lifecycle state.
func (b *Background) State() State {
	return b.life.state()
}

// IsClosed reports whether the terminal notification has been dispatched.
func (b *Background) IsClosed() bool {
	return b.life.state() == StateClosed
}

// Stats returns dispatch engine counters.
func (b *Background) Stats() dispatch.Stats {
	return b.engine.Stats()
}
