package event

import "errors"

// Sentinel errors for subscription management.
var (
	// ErrDuplicateSubscription is returned when a subscriber is already
	// registered for the requested category.
	ErrDuplicateSubscription = errors.New("subscriber already registered for category")

	// ErrNotSubscribed is returned when unsubscribing a subscriber that is
	// not registered for the requested category.
	ErrNotSubscribed = errors.New("subscriber not registered for category")

	// ErrNilSubscriber is returned when a nil subscriber is provided.
	ErrNilSubscriber = errors.New("subscriber cannot be nil")

	// ErrInvalidSubscriber is returned when a subscriber value is not
	// comparable and therefore cannot be registered.
	ErrInvalidSubscriber = errors.New("subscriber must be a comparable value")

	// ErrInvalidCategory is returned when a category is empty or malformed.
	ErrInvalidCategory = errors.New("invalid category")

	// ErrInvalidEvent is returned when an event declares no valid category.
	ErrInvalidEvent = errors.New("invalid event")
)
