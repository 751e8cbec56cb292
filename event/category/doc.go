// Package category provides the dispatch keys used by the event queue.
//
// A Category identifies a class of events. Every event declares exactly one
// concrete category and may additionally declare capability categories that
// it satisfies. Subscribers register against categories; the registry matches
// an event against its concrete category first, then its capabilities in
// declaration order.
//
// # Format
//
// Categories use dot-notation to create hierarchical namespaces:
//
//	queue.closed
//	buffer.saved
//	error.like
//
// There is no pattern matching: a subscription's category must equal one of
// the event's declared categories exactly.
package category
