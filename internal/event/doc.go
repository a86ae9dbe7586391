// Package event provides a string-keyed publish/subscribe bus for
// decoupled notification between picker components.
//
// A Bus maps event names to ordered handler registrations. Broadcast
// is synchronous: every handler registered for the name runs in
// registration order, in the broadcaster's goroutine. Handler
// failures are isolated: a panic inside one handler is recovered and
// reported through the bus's panic handler, and never prevents later
// handlers from running or reaches the broadcaster.
//
// Registration uses list semantics, not set semantics: subscribing
// the same handler twice yields two registrations, each invoked on
// broadcast, each removed individually through its own Subscription
// token. When the last registration for a name is removed, the name
// is deleted outright and no longer reported by HasEvent.
//
// A Bus is an explicitly owned value, not process-wide state; each
// owner (and each test) creates its own. Broadcast iterates a
// snapshot of the registration list taken when it starts, so a
// handler that subscribes, unsubscribes or clears during delivery
// affects later broadcasts only.
package event
