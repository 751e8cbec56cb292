package dispatch

// Item is a queued unit of work: an event plus an optional completion
// handle. Items without a handle are fire-and-forget.
type Item struct {
	// Event is the event instance to deliver.
	Event any

	completion *Completion
}

// NewItem creates a fire-and-forget item.
func NewItem(event any) *Item {
	return &Item{Event: event}
}

// NewTrackedItem creates an item whose dispatch the producer can wait on.
func NewTrackedItem(event any) (*Item, *Completion) {
	c := newCompletion()
	return &Item{Event: event, completion: c}, c
}

// Tracked reports whether a producer is waiting on this item.
func (i *Item) Tracked() bool {
	return i.completion != nil
}
