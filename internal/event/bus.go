package event

import (
	"runtime/debug"
	"sort"
	"sync"
	"sync/atomic"
)

// Bus is a string-keyed publish/subscribe registry.
// It is safe for concurrent use.
type Bus struct {
	mu   sync.RWMutex
	subs map[string][]*Subscription

	panicHandler PanicHandler

	// Stats
	broadcasts    atomic.Uint64
	delivered     atomic.Uint64
	handlerPanics atomic.Uint64
}

// NewBus creates a new event bus with the given options.
func NewBus(opts ...BusOption) *Bus {
	b := &Bus{
		subs:         make(map[string][]*Subscription),
		panicHandler: defaultPanicHandler,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Subscribe appends a handler registration for the event name,
// creating the entry if absent. Subscribing the same handler twice
// registers it twice.
func (b *Bus) Subscribe(event string, handler Handler) (*Subscription, error) {
	if event == "" {
		return nil, ErrInvalidEvent
	}
	if handler == nil {
		return nil, ErrNilHandler
	}

	sub := newSubscription(event, handler)

	b.mu.Lock()
	b.subs[event] = append(b.subs[event], sub)
	b.mu.Unlock()

	return sub, nil
}

// Unsubscribe removes one registration by its token. When the last
// registration for a name is removed, the name is deleted outright.
// Returns false when the token is nil or already removed.
func (b *Bus) Unsubscribe(sub *Subscription) bool {
	if sub == nil {
		return false
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.subs[sub.event]
	for i, s := range subs {
		if s == sub {
			b.subs[sub.event] = append(subs[:i], subs[i+1:]...)
			if len(b.subs[sub.event]) == 0 {
				delete(b.subs, sub.event)
			}
			return true
		}
	}
	return false
}

// Broadcast invokes every handler currently registered for the event
// name, in registration order, passing the name, sender and argument
// list to each. A panic inside one handler is recovered, reported
// through the bus's panic handler, and does not prevent subsequent
// handlers from running or propagate to the caller.
//
// Handlers run against a snapshot of the registration list taken at
// call time: registry mutations from inside a handler take effect on
// later broadcasts. Returns the number of handlers invoked.
func (b *Bus) Broadcast(event string, sender any, args ...any) int {
	b.broadcasts.Add(1)

	b.mu.RLock()
	subs := b.subs[event]
	snapshot := make([]*Subscription, len(subs))
	copy(snapshot, subs)
	b.mu.RUnlock()

	for _, sub := range snapshot {
		b.invoke(sub, event, sender, args)
	}
	return len(snapshot)
}

// invoke runs one handler with panic recovery.
func (b *Bus) invoke(sub *Subscription, event string, sender any, args []any) {
	defer func() {
		if r := recover(); r != nil {
			b.handlerPanics.Add(1)
			stack := debug.Stack()

			// Protect the panic handler call as well.
			func() {
				defer func() { _ = recover() }()
				b.panicHandler(event, r, stack)
			}()
			return
		}
		b.delivered.Add(1)
	}()

	sub.handler(event, sender, args...)
}

// Clear removes every registration for the event name. No-op when
// the name is absent.
func (b *Bus) Clear(event string) {
	b.mu.Lock()
	delete(b.subs, event)
	b.mu.Unlock()
}

// ClearAll removes every registration for every event name.
func (b *Bus) ClearAll() {
	b.mu.Lock()
	b.subs = make(map[string][]*Subscription)
	b.mu.Unlock()
}

// HasEvent reports whether any handler is registered for the name.
func (b *Bus) HasEvent(event string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, exists := b.subs[event]
	return exists
}

// HandlerCount returns the number of registrations for the name,
// 0 when absent.
func (b *Bus) HandlerCount(event string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[event])
}

// Events returns all event names with registrations, sorted.
func (b *Bus) Events() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if len(b.subs) == 0 {
		return nil
	}
	events := make([]string, 0, len(b.subs))
	for name := range b.subs {
		events = append(events, name)
	}
	sort.Strings(events)
	return events
}

// Stats contains bus statistics.
type Stats struct {
	// Broadcasts is the total number of Broadcast calls.
	Broadcasts uint64

	// Delivered is the total number of successful handler invocations.
	Delivered uint64

	// HandlerPanics is the number of handlers that panicked.
	HandlerPanics uint64
}

// Stats returns a snapshot of bus statistics.
func (b *Bus) Stats() Stats {
	return Stats{
		Broadcasts:    b.broadcasts.Load(),
		Delivered:     b.delivered.Load(),
		HandlerPanics: b.handlerPanics.Load(),
	}
}
