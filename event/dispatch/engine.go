package dispatch

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/sourcegraph/conc/panics"

	"github.com/dshills/eventq/event"
	"github.com/dshills/eventq/event/category"
)

// FailureHandler receives the collected failures of a fire-and-forget item.
// It is the process-wide fallback channel: without it, failures of untracked
// items would be silently dropped.
type FailureHandler func(event any, errs []error)

// Engine invokes each resolved subscriber for a pending item exactly once,
// in order, and signals the item's completion handle.
type Engine struct {
	onFailure FailureHandler

	// Stats
	items       atomic.Uint64
	invoked     atomic.Uint64
	failed      atomic.Uint64
	panicked    atomic.Uint64
	totalTimeNs atomic.Int64
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithFailureHandler sets the fallback channel for fire-and-forget failures.
func WithFailureHandler(h FailureHandler) EngineOption {
	return func(e *Engine) {
		if h != nil {
			e.onFailure = h
		}
	}
}

// NewEngine creates a dispatch engine.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		onFailure: func(any, []error) {},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Dispatch delivers an item to the given subscribers sequentially.
// Every subscriber is invoked; failures are collected, never propagated
// between subscribers. After the last invocation the item's completion
// handle is signaled, or, for untracked items with failures, the failure
// handler is called. Returns the collected failures in invocation order.
func (e *Engine) Dispatch(ctx context.Context, item *Item, subs []event.Subscriber) []error {
	e.items.Add(1)

	cat := concreteCategory(item.Event)

	var errs []error
	for _, sub := range subs {
		res := e.invoke(ctx, item.Event, sub)

		switch {
		case res.Panicked:
			errs = append(errs, &PanicError{
				Category: cat,
				Value:    res.PanicValue,
				Stack:    res.PanicStack,
			})
		case res.Err != nil:
			errs = append(errs, &HandlerError{
				Category: cat,
				Err:      res.Err,
			})
		}
	}

	if item.completion != nil {
		item.completion.complete(errs)
	} else if len(errs) > 0 {
		e.onFailure(item.Event, errs)
	}

	return errs
}

// invoke runs one subscriber with panic isolation and timing.
func (e *Engine) invoke(ctx context.Context, ev any, sub event.Subscriber) Result {
	e.invoked.Add(1)
	start := time.Now()

	var err error
	recovered := panics.Try(func() {
		err = sub.Handle(ctx, ev)
	})

	res := Result{Duration: time.Since(start)}
	e.totalTimeNs.Add(res.Duration.Nanoseconds())

	if recovered != nil {
		res.Panicked = true
		res.PanicValue = recovered.Value
		res.PanicStack = recovered.Stack
		e.panicked.Add(1)
		return res
	}

	if err != nil {
		res.Err = err
		e.failed.Add(1)
	}
	return res
}

// Stats returns a snapshot of engine counters.
// Values may be slightly inconsistent while dispatch is in progress.
func (e *Engine) Stats() Stats {
	invoked := e.invoked.Load()
	totalNs := e.totalTimeNs.Load()

	var avgNs int64
	if invoked > 0 {
		avgNs = totalNs / int64(invoked)
	}

	return Stats{
		Items:         e.items.Load(),
		Invoked:       invoked,
		Failed:        e.failed.Load(),
		Panicked:      e.panicked.Load(),
		TotalDuration: time.Duration(totalNs),
		AvgDuration:   time.Duration(avgNs),
	}
}

// Stats contains dispatch engine counters.
type Stats struct {
	// Items is the number of items dispatched.
	Items uint64

	// Invoked is the number of subscriber invocations.
	Invoked uint64

	// Failed is the number of invocations that returned an error.
	Failed uint64

	// Panicked is the number of invocations that panicked.
	Panicked uint64

	// TotalDuration is the cumulative time spent in subscribers.
	TotalDuration time.Duration

	// AvgDuration is the average subscriber execution time.
	AvgDuration time.Duration
}

func concreteCategory(ev any) category.Category {
	if cp, ok := ev.(event.CategoryProvider); ok {
		return cp.EventCategory()
	}
	return ""
}
