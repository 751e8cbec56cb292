// Package queue provides the two drivers of the event queue: a manually
// pumped queue and a background-worker queue.
//
// Both drivers share the same semantics. Producers enqueue from any
// goroutine; items are dispatched strictly in enqueue order, each to the
// registry snapshot taken when its dispatch begins. The drivers differ only
// in who consumes:
//
//   - Pump performs no work on its own. A single consumer drives it
//     explicitly with HandleOne or HandleAll, on a goroutine of its choice.
//   - Background owns a dedicated worker goroutine that drains the queue
//     continuously. Join waits for the worker to exit after BeginClose.
//
// # Shutdown
//
// Both drivers follow a two-phase protocol: Open -> Closing -> Closed.
// BeginClose appends the terminal event.QueueClosed notification and
// immediately rejects further enqueues with ErrQueueClosed; work already
// queued, including the terminal item, is still dispatched. Once the
// terminal item has been dispatched the state is Closed and the queue is
// permanently inert. Subscribers that need to schedule cleanup work must
// enqueue it before BeginClose is called.
//
// # Failure routing
//
// Subscriber failures never abort dispatch. For items enqueued with
// EnqueueAndWait they surface through the producer's completion handle; for
// fire-and-forget items the queue re-enqueues an event.DeliveryFailure so a
// subscriber (a logger, typically) can observe them. Failures of a
// DeliveryFailure dispatch itself go to the failure hook instead of being
// re-enqueued again.
//
// # Reentrancy
//
// Dispatch runs outside the queue lock, so subscribers may call Enqueue or
// Subscribe on the queue that is delivering to them. Driving a Pump from
// within one of its own subscribers, or from two goroutines at once, is not
// supported. A subscriber must not call EnqueueAndWait on the queue that is
// currently delivering to it: the wait can only be resolved by the dispatch
// it is blocking.
package queue
