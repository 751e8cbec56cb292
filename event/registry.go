package event

import (
	"reflect"
	"sync"

	"github.com/dshills/eventq/event/category"
)

// Registry maps categories to ordered subscriber lists.
// It is thread-safe for concurrent access. Insertion order within a category
// is preserved and is the dispatch order for that category.
type Registry struct {
	mu   sync.RWMutex
	subs map[category.Category][]Subscriber
}

// NewRegistry creates an empty subscription registry.
func NewRegistry() *Registry {
	return &Registry{
		subs: make(map[category.Category][]Subscriber),
	}
}

// Subscribe registers a subscriber under a category.
// Returns ErrDuplicateSubscription if the subscriber is already registered
// for that exact category.
func (r *Registry) Subscribe(cat category.Category, sub Subscriber) error {
	if sub == nil {
		return ErrNilSubscriber
	}
	if !reflect.TypeOf(sub).Comparable() {
		return ErrInvalidSubscriber
	}
	if !cat.IsValid() {
		return ErrInvalidCategory
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.subs[cat] {
		if existing == sub {
			return ErrDuplicateSubscription
		}
	}
	r.subs[cat] = append(r.subs[cat], sub)
	return nil
}

// Unsubscribe removes a registration.
// Returns ErrNotSubscribed if the subscriber is not registered for that
// category.
func (r *Registry) Unsubscribe(cat category.Category, sub Subscriber) error {
	if sub == nil {
		return ErrNilSubscriber
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	subs := r.subs[cat]
	for i, existing := range subs {
		if existing == sub {
			r.subs[cat] = append(subs[:i], subs[i+1:]...)
			if len(r.subs[cat]) == 0 {
				delete(r.subs, cat)
			}
			return nil
		}
	}
	return ErrNotSubscribed
}

// Resolve computes the ordered, de-duplicated subscriber list for an event:
// subscribers of its concrete category first, then of each capability in
// declaration order, each subscriber at its first-seen position. The result
// is a snapshot; later registry mutations do not affect it.
func (r *Registry) Resolve(event any) []Subscriber {
	cats := CategoriesOf(event)
	if len(cats) == 0 {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Subscriber
	seen := make(map[Subscriber]struct{})
	for _, cat := range cats {
		for _, sub := range r.subs[cat] {
			if _, dup := seen[sub]; dup {
				continue
			}
			seen[sub] = struct{}{}
			out = append(out, sub)
		}
	}
	return out
}

// Count returns the total number of registrations.
// A subscriber registered for two categories counts twice.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, subs := range r.subs {
		n += len(subs)
	}
	return n
}

// CountByCategory returns the number of subscribers for one category.
func (r *Registry) CountByCategory(cat category.Category) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.subs[cat])
}

// Categories returns all categories with at least one subscriber.
func (r *Registry) Categories() []category.Category {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.subs) == 0 {
		return nil
	}
	cats := make([]category.Category, 0, len(r.subs))
	for c := range r.subs {
		cats = append(cats, c)
	}
	return cats
}

// Clear removes all registrations.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.subs = make(map[category.Category][]Subscriber)
}
