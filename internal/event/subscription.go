package event

import "github.com/google/uuid"

// Handler processes one broadcast. It receives the event name, the
// broadcasting sender, and the broadcast arguments.
type Handler func(event string, sender any, args ...any)

// Subscription is the token for one handler registration. The same
// handler subscribed twice yields two distinct tokens.
type Subscription struct {
	id      string
	event   string
	handler Handler
}

// ID returns the unique subscription identifier.
func (s *Subscription) ID() string {
	return s.id
}

// Event returns the event name the subscription is registered for.
func (s *Subscription) Event() string {
	return s.event
}

func newSubscription(event string, handler Handler) *Subscription {
	return &Subscription{
		id:      uuid.NewString(),
		event:   event,
		handler: handler,
	}
}
