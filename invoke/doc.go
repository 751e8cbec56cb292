// Package invoke marshals arbitrary units of work onto a queue's consumer.
//
// An Invoker wraps a function in a one-off event against a designated queue,
// typically one whose consumer is a UI or otherwise single-threaded loop.
// Post enqueues fire-and-forget; Call blocks until the queue's consumer has
// run the function and returns its error.
package invoke
