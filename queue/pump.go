package queue

import (
	"context"
	"sync"

	"github.com/dshills/eventq/event"
	"github.com/dshills/eventq/event/category"
	"github.com/dshills/eventq/event/dispatch"
)

// Pump is the cooperative, manually driven queue. Producers enqueue from any
// goroutine; nothing is dispatched until a single consumer calls HandleOne
// or HandleAll. The drive calls must not run concurrently with each other.
type Pump struct {
	registry *event.Registry
	engine   *dispatch.Engine
	life     lifecycle

	mu    sync.Mutex
	items []*dispatch.Item
}

// NewPump creates a manually driven queue with its own registry.
func NewPump(opts ...Option) *Pump {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	p := &Pump{
		registry: event.NewRegistry(),
	}
	p.engine = dispatch.NewEngine(
		dispatch.WithFailureHandler(failureRouter(p.Enqueue, cfg.hook)),
	)
	return p
}

// Subscribe registers a subscriber under a category.
// Returns ErrQueueClosed once the queue is fully closed.
func (p *Pump) Subscribe(cat category.Category, sub event.Subscriber) error {
	if p.life.state() == StateClosed {
		return ErrQueueClosed
	}
	return p.registry.Subscribe(cat, sub)
}

// Unsubscribe removes a registration.
// Returns ErrQueueClosed once the queue is fully closed.
func (p *Pump) Unsubscribe(cat category.Category, sub event.Subscriber) error {
	if p.life.state() == StateClosed {
		return ErrQueueClosed
	}
	return p.registry.Unsubscribe(cat, sub)
}

// Enqueue appends a fire-and-forget item. Safe to call from any goroutine.
// Returns ErrQueueClosed after BeginClose.
func (p *Pump) Enqueue(ev any) error {
	_, err := p.push(ev, false)
	return err
}

// EnqueueAndWait appends an item and blocks until it has been dispatched or
// the context is cancelled. On completion it returns the first subscriber
// failure, or nil if every subscriber succeeded.
// Returns ErrQueueClosed after BeginClose.
func (p *Pump) EnqueueAndWait(ctx context.Context, ev any) error {
	completion, err := p.push(ev, true)
	if err != nil {
		return err
	}
	return completion.Wait(ctx)
}

// push validates the event and appends an item under the queue lock.
// The returned completion is nil for untracked items.
func (p *Pump) push(ev any, tracked bool) (*dispatch.Completion, error) {
	if len(event.CategoriesOf(ev)) == 0 {
		return nil, event.ErrInvalidEvent
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.life.state() != StateOpen {
		return nil, ErrQueueClosed
	}

	var item *dispatch.Item
	var completion *dispatch.Completion
	if tracked {
		item, completion = dispatch.NewTrackedItem(ev)
	} else {
		item = dispatch.NewItem(ev)
	}
	p.items = append(p.items, item)
	return completion, nil
}

// HandleOne dequeues and dispatches exactly one item on the calling
// goroutine. Returns false without doing work if the queue is empty or
// closed.
func (p *Pump) HandleOne(ctx context.Context) bool {
	item, ok := p.pop()
	if !ok {
		return false
	}
	p.dispatch(ctx, item)
	return true
}

// HandleAll dispatches queued items until the queue is empty, including
// items enqueued by subscribers during dispatch and the terminal item when
// closing. Returns the number of items dispatched.
func (p *Pump) HandleAll(ctx context.Context) int {
	n := 0
	for p.HandleOne(ctx) {
		n++
	}
	return n
}

// pop removes the head item under the queue lock.
func (p *Pump) pop() (*dispatch.Item, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.life.state() == StateClosed || len(p.items) == 0 {
		return nil, false
	}
	item := p.items[0]
	p.items[0] = nil
	p.items = p.items[1:]
	return item, true
}

// dispatch runs one item outside the queue lock, so subscribers may call
// back into Enqueue and Subscribe.
func (p *Pump) dispatch(ctx context.Context, item *dispatch.Item) {
	subs := p.registry.Resolve(item.Event)
	p.engine.Dispatch(ctx, item, subs)

	if _, terminal := item.Event.(event.QueueClosed); terminal {
		p.life.close()
	}
}

// BeginClose transitions the queue from Open to Closing and appends the
// terminal event.QueueClosed notification behind all queued work. Further
// enqueues fail with ErrQueueClosed; the queue becomes Closed when the
// terminal item is dispatched. Returns ErrAlreadyClosing or ErrQueueClosed
// on repeat calls.
func (p *Pump) BeginClose() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch p.life.state() {
	case StateClosing:
		return ErrAlreadyClosing
	case StateClosed:
		return ErrQueueClosed
	}

	p.life.beginClose()
	p.items = append(p.items, dispatch.NewItem(event.QueueClosed{}))
	return nil
}

// HasEvents reports whether any items are waiting to be dispatched.
func (p *Pump) HasEvents() bool {
	return p.Len() > 0
}

// Len returns the number of queued items.
func (p *Pump) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.items)
}

// State returns the lifecycle state.
func (p *Pump) State() State {
	return p.life.state()
}

// IsClosed reports whether the terminal notification has been dispatched.
func (p *Pump) IsClosed() bool {
	return p.life.state() == StateClosed
}

// Stats returns dispatch engine counters.
func (p *Pump) Stats() dispatch.Stats {
	return p.engine.Stats()
}
