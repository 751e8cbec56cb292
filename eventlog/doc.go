// Package eventlog provides a queue-lifecycle-aware structured logger.
//
// The logger is an ordinary subscriber. Attach registers it for the queue's
// terminal notification and for delivery-failure events: when the queue
// closes, the logger disposes itself and every later write fails with
// ErrDisposed; delivery failures are written as error records, which closes
// the loop for fire-and-forget subscriber failures.
package eventlog
