package event

import "log"

// PanicHandler is called when a broadcast handler panics. The stack
// is captured at the point of recovery.
type PanicHandler func(event string, recovered any, stack []byte)

// BusOption configures a Bus.
type BusOption func(*Bus)

// WithPanicHandler sets the handler invoked when a broadcast handler
// panics. Passing nil restores the default.
func WithPanicHandler(h PanicHandler) BusOption {
	return func(b *Bus) {
		if h == nil {
			h = defaultPanicHandler
		}
		b.panicHandler = h
	}
}

// defaultPanicHandler logs the panic to stderr and carries on.
func defaultPanicHandler(event string, recovered any, stack []byte) {
	log.Printf("event: handler panic during %q: %v\n%s", event, recovered, stack)
}
