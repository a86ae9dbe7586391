package event

import (
	"reflect"
	"testing"
)

func TestNewBus(t *testing.T) {
	b := NewBus()
	if b == nil {
		t.Fatal("NewBus() returned nil")
	}
}

func TestBus_Subscribe(t *testing.T) {
	b := NewBus()

	if _, err := b.Subscribe("", func(string, any, ...any) {}); err != ErrInvalidEvent {
		t.Errorf("Subscribe(empty) = %v, want ErrInvalidEvent", err)
	}
	if _, err := b.Subscribe("item.used", nil); err != ErrNilHandler {
		t.Errorf("Subscribe(nil handler) = %v, want ErrNilHandler", err)
	}

	sub, err := b.Subscribe("item.used", func(string, any, ...any) {})
	if err != nil {
		t.Fatalf("Subscribe() failed: %v", err)
	}
	if sub.Event() != "item.used" {
		t.Errorf("Event() = %q", sub.Event())
	}
	if sub.ID() == "" {
		t.Error("subscription ID is empty")
	}
	if !b.HasEvent("item.used") {
		t.Error("HasEvent() = false after Subscribe")
	}
	if b.HandlerCount("item.used") != 1 {
		t.Errorf("HandlerCount() = %d, want 1", b.HandlerCount("item.used"))
	}
}

func TestBus_SubscribeThenUnsubscribe(t *testing.T) {
	b := NewBus()
	sub, _ := b.Subscribe("item.used", func(string, any, ...any) {})

	if !b.Unsubscribe(sub) {
		t.Fatal("Unsubscribe() = false, want true")
	}
	if b.HasEvent("item.used") {
		t.Error("HasEvent() = true after removing last handler")
	}
	if b.HandlerCount("item.used") != 0 {
		t.Errorf("HandlerCount() = %d, want 0", b.HandlerCount("item.used"))
	}

	// Already removed.
	if b.Unsubscribe(sub) {
		t.Error("second Unsubscribe() = true, want false")
	}
	if b.Unsubscribe(nil) {
		t.Error("Unsubscribe(nil) = true, want false")
	}
}

func TestBus_SameHandlerTwice(t *testing.T) {
	b := NewBus()
	calls := 0
	handler := func(string, any, ...any) { calls++ }

	sub1, _ := b.Subscribe("tick", handler)
	sub2, _ := b.Subscribe("tick", handler)
	if sub1.ID() == sub2.ID() {
		t.Error("distinct registrations share an ID")
	}
	if b.HandlerCount("tick") != 2 {
		t.Fatalf("HandlerCount() = %d, want 2", b.HandlerCount("tick"))
	}

	b.Broadcast("tick", nil)
	if calls != 2 {
		t.Errorf("handler called %d times, want 2", calls)
	}

	// Removing one registration leaves the other.
	b.Unsubscribe(sub1)
	if b.HandlerCount("tick") != 1 {
		t.Errorf("HandlerCount() = %d, want 1", b.HandlerCount("tick"))
	}
}

func TestBus_BroadcastOrderAndArgs(t *testing.T) {
	b := NewBus()
	sender := struct{ name string }{"picker"}

	var order []string
	b.Subscribe("selected", func(event string, s any, args ...any) {
		if event != "selected" {
			t.Errorf("event = %q", event)
		}
		if s != sender {
			t.Errorf("sender = %v", s)
		}
		if want := []any{"Game.Items.Sword", 3}; !reflect.DeepEqual(args, want) {
			t.Errorf("args = %v, want %v", args, want)
		}
		order = append(order, "first")
	})
	b.Subscribe("selected", func(string, any, ...any) {
		order = append(order, "second")
	})

	n := b.Broadcast("selected", sender, "Game.Items.Sword", 3)
	if n != 2 {
		t.Errorf("Broadcast() = %d, want 2", n)
	}
	if want := []string{"first", "second"}; !reflect.DeepEqual(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
}

func TestBus_BroadcastUnknownEvent(t *testing.T) {
	b := NewBus()
	if n := b.Broadcast("nobody.listens", nil); n != 0 {
		t.Errorf("Broadcast() = %d, want 0", n)
	}
}

func TestBus_PanicIsolation(t *testing.T) {
	var panics []any
	b := NewBus(WithPanicHandler(func(event string, recovered any, stack []byte) {
		panics = append(panics, recovered)
		if len(stack) == 0 {
			t.Error("panic handler received empty stack")
		}
	}))

	var order []string
	b.Subscribe("boom", func(string, any, ...any) { order = append(order, "first") })
	b.Subscribe("boom", func(string, any, ...any) { panic("second failed") })
	b.Subscribe("boom", func(string, any, ...any) { order = append(order, "third") })

	// Must not panic the broadcaster.
	b.Broadcast("boom", nil)

	if want := []string{"first", "third"}; !reflect.DeepEqual(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
	if len(panics) != 1 || panics[0] != "second failed" {
		t.Errorf("panics = %v", panics)
	}

	stats := b.Stats()
	if stats.HandlerPanics != 1 {
		t.Errorf("HandlerPanics = %d, want 1", stats.HandlerPanics)
	}
	if stats.Delivered != 2 {
		t.Errorf("Delivered = %d, want 2", stats.Delivered)
	}
}

func TestBus_PanickingPanicHandler(t *testing.T) {
	b := NewBus(WithPanicHandler(func(string, any, []byte) { panic("handler of panics panics") }))

	called := false
	b.Subscribe("boom", func(string, any, ...any) { panic("original") })
	b.Subscribe("boom", func(string, any, ...any) { called = true })

	b.Broadcast("boom", nil)
	if !called {
		t.Error("handler after panic-handler panic was not called")
	}
}

func TestBus_Clear(t *testing.T) {
	b := NewBus()
	b.Subscribe("a", func(string, any, ...any) {})
	b.Subscribe("b", func(string, any, ...any) {})

	b.Clear("a")
	if b.HasEvent("a") {
		t.Error("HasEvent(a) = true after Clear")
	}
	if !b.HasEvent("b") {
		t.Error("Clear removed an unrelated event")
	}

	b.Clear("missing") // no-op
}

func TestBus_ClearAll(t *testing.T) {
	b := NewBus()
	b.Subscribe("a", func(string, any, ...any) {})
	b.Subscribe("b", func(string, any, ...any) {})

	b.ClearAll()
	for _, name := range []string{"a", "b"} {
		if b.HasEvent(name) {
			t.Errorf("HasEvent(%q) = true after ClearAll", name)
		}
		if b.HandlerCount(name) != 0 {
			t.Errorf("HandlerCount(%q) != 0 after ClearAll", name)
		}
	}
	if b.Events() != nil {
		t.Errorf("Events() = %v after ClearAll, want nil", b.Events())
	}
}

func TestBus_Events(t *testing.T) {
	b := NewBus()
	b.Subscribe("b", func(string, any, ...any) {})
	b.Subscribe("a", func(string, any, ...any) {})

	if want := []string{"a", "b"}; !reflect.DeepEqual(b.Events(), want) {
		t.Errorf("Events() = %v, want %v", b.Events(), want)
	}
}

func TestBus_ReentrantMutationAffectsLaterBroadcastsOnly(t *testing.T) {
	b := NewBus()

	lateCalls := 0
	b.Subscribe("go", func(string, any, ...any) {
		// Subscribing during delivery must not grow this broadcast.
		b.Subscribe("go", func(string, any, ...any) { lateCalls++ })
	})

	if n := b.Broadcast("go", nil); n != 1 {
		t.Errorf("first Broadcast() = %d, want 1", n)
	}
	if lateCalls != 0 {
		t.Error("handler added during delivery ran in the same broadcast")
	}

	if n := b.Broadcast("go", nil); n != 2 {
		t.Errorf("second Broadcast() = %d, want 2", n)
	}
	if lateCalls != 1 {
		t.Errorf("lateCalls = %d, want 1", lateCalls)
	}
}
