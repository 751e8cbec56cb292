package event

import (
	"context"

	"github.com/dshills/eventq/event/category"
)

// Subscriber is the interface for event handlers.
// The event parameter is type-erased; subscribers should type-assert.
//
// Subscriber values are used as registration keys and must be comparable
// with ==. Pointer receivers satisfy this; bare funcs do not, use
// SubscriberFunc for those.
type Subscriber interface {
	Handle(ctx context.Context, event any) error
}

// funcSubscriber adapts a function to the Subscriber interface.
// It is always used behind a pointer so that each adapted function gets a
// distinct, comparable identity.
type funcSubscriber struct {
	fn func(ctx context.Context, event any) error
}

// Handle implements the Subscriber interface.
func (f *funcSubscriber) Handle(ctx context.Context, event any) error {
	return f.fn(ctx, event)
}

// SubscriberFunc wraps a function as a Subscriber.
// Every call returns a distinct subscriber identity: wrapping the same
// function twice produces two independent registrations.
func SubscriberFunc(fn func(ctx context.Context, event any) error) Subscriber {
	return &funcSubscriber{fn: fn}
}

// CategoryProvider is implemented by every event. It declares the event's
// concrete category, the primary dispatch key.
type CategoryProvider interface {
	EventCategory() category.Category
}

// CapabilityProvider is optionally implemented by events that satisfy
// additional categories beyond their concrete one. The returned slice must
// be stable for a given event type; its order is the resolution order.
type CapabilityProvider interface {
	EventCapabilities() []category.Category
}

// CategoriesOf returns the ordered, de-duplicated categories an event
// matches: its concrete category first, then its declared capabilities in
// declaration order. Returns nil if the event declares no valid category.
func CategoriesOf(event any) []category.Category {
	cp, ok := event.(CategoryProvider)
	if !ok {
		return nil
	}

	set := category.NewSet()
	set.Add(cp.EventCategory())

	if caps, ok := event.(CapabilityProvider); ok {
		for _, c := range caps.EventCapabilities() {
			set.Add(c)
		}
	}

	return set.Values()
}

// TypedSubscriber provides type-safe event handling using generics.
// Events of other types are skipped silently.
func TypedSubscriber[T any](fn func(ctx context.Context, event T) error) Subscriber {
	return SubscriberFunc(func(ctx context.Context, event any) error {
		if e, ok := event.(T); ok {
			return fn(ctx, e)
		}
		return nil
	})
}
