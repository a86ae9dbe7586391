// Package singleton provides a single-instance registration slot
// generic over its owning type.
//
// Each owning type declares its own Slot value, so registration is
// per concrete type rather than one global slot shared across types,
// and tests create their own slots for isolation.
package singleton

import "sync"

// Policy decides what happens when an instance is offered to a slot
// that already holds one.
type Policy int

const (
	// KeepExisting rejects the new instance: it is discarded
	// immediately and never becomes the registered instance.
	// This is the default.
	KeepExisting Policy = iota

	// Replace registers the new instance; the previous one is
	// discarded.
	Replace
)

// String returns a human-readable policy name.
func (p Policy) String() string {
	switch p {
	case KeepExisting:
		return "keep-existing"
	case Replace:
		return "replace"
	default:
		return "unknown"
	}
}

// Slot holds at most one live instance of its owning type.
// It is safe for concurrent use.
type Slot[T comparable] struct {
	mu      sync.RWMutex
	current T
	held    bool
	policy  Policy
	discard func(T)
}

// Option configures a Slot.
type Option[T comparable] func(*Slot[T])

// WithPolicy sets the slot's conflict policy.
func WithPolicy[T comparable](p Policy) Option[T] {
	return func(s *Slot[T]) {
		s.policy = p
	}
}

// WithDiscard sets a hook invoked for each instance the slot rejects
// or replaces. The host uses this to destroy the loser.
func WithDiscard[T comparable](fn func(T)) Option[T] {
	return func(s *Slot[T]) {
		s.discard = fn
	}
}

// NewSlot creates an empty slot.
func NewSlot[T comparable](opts ...Option[T]) *Slot[T] {
	s := &Slot[T]{policy: KeepExisting}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Put offers a newly created instance to the slot. The zero value is
// ignored. When the slot is empty the instance is registered. When
// occupied, KeepExisting discards the offered instance immediately
// and Replace discards the previous one; either way the loser is
// passed to the discard hook. Returns true when the offered instance
// became the registered one.
func (s *Slot[T]) Put(instance T) bool {
	var zero T
	if instance == zero {
		return false
	}

	s.mu.Lock()
	if !s.held {
		s.current = instance
		s.held = true
		s.mu.Unlock()
		return true
	}

	var loser T
	registered := false
	switch s.policy {
	case Replace:
		loser = s.current
		s.current = instance
		registered = true
	default:
		loser = instance
	}
	discard := s.discard
	s.mu.Unlock()

	if discard != nil {
		discard(loser)
	}
	return registered
}

// Remove clears the registration if and only if the slot currently
// holds the given instance. A stale instance that lost registration
// earlier cannot clear its successor.
func (s *Slot[T]) Remove(instance T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.held || s.current != instance {
		return false
	}
	var zero T
	s.current = zero
	s.held = false
	return true
}

// Current returns the registered instance, if any.
func (s *Slot[T]) Current() (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current, s.held
}

// Clear unconditionally empties the slot without invoking the
// discard hook.
func (s *Slot[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	s.current = zero
	s.held = false
}
