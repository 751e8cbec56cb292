// Package dispatch delivers a single pending item to its resolved
// subscribers.
//
// An Item pairs an event with an optional Completion handle. The Engine
// invokes each subscriber sequentially, isolating failures: a subscriber
// error or panic is captured as a *HandlerError or *PanicError and never
// prevents the remaining subscribers from running. When every subscriber has
// been invoked, the Completion (if any) is signaled with the collected
// failures; otherwise failures are routed to the engine's FailureHandler.
package dispatch
