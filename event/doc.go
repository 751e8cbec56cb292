// Package event provides the core contracts for the typed event queue:
// the subscriber interface, the category-keyed subscription registry, and
// the system events the queue itself emits.
//
// # Architecture
//
// The event system is split across three packages:
//
//	event           Subscriber contract, Registry, system events
//	event/category  Category dispatch keys
//	event/dispatch  Pending items, completion handles, the dispatch engine
//
// The drivers that tie them together (a manually pumped queue and a
// background-worker queue) live in package queue.
//
// # Categories and Capabilities
//
// Every event declares one concrete category:
//
//	type Saved struct{ Path string }
//
//	func (Saved) EventCategory() category.Category { return "buffer.saved" }
//
// An event may additionally declare capability categories it satisfies, in a
// fixed order:
//
//	func (Saved) EventCapabilities() []category.Category {
//	    return []category.Category{"buffer.changed", "audit.recorded"}
//	}
//
// Subscribers register against a single category and receive every event
// whose concrete category or capability list contains it. An event is
// delivered to each matching subscriber exactly once per dispatch, even when
// the subscriber is registered for several of the event's categories.
//
// # Subscriber identity
//
// Registrations are keyed by the (category, subscriber) pair. Subscriber
// values must be comparable with ==; SubscriberFunc returns a distinct
// pointer value on every call, so function handlers satisfy this naturally.
package event
