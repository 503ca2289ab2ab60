package event

import "testing"

type pingEvent struct{ N int }
type otherEvent struct{}

func TestBusDoubleBuffering(t *testing.T) {
	b := NewBus()
	var got []int
	Subscribe(b, func(e pingEvent) { got = append(got, e.N) })

	Emit(b, pingEvent{N: 1})

	// Same tick: nothing delivered yet.
	b.DispatchAll()
	if len(got) != 0 {
		t.Fatalf("Expected no delivery before swap, got %d events", len(got))
	}

	// Next tick: swap then dispatch.
	b.SwapBuffers()
	b.DispatchAll()
	if len(got) != 1 || got[0] != 1 {
		t.Fatalf("Expected [1] after swap, got %v", got)
	}

	// Nothing new emitted: the following tick delivers nothing.
	b.SwapBuffers()
	b.DispatchAll()
	if len(got) != 1 {
		t.Errorf("Expected no redelivery, got %v", got)
	}
}

func TestBusMultipleHandlers(t *testing.T) {
	b := NewBus()
	first, second := 0, 0
	Subscribe(b, func(pingEvent) { first++ })
	Subscribe(b, func(pingEvent) { second++ })
	Subscribe(b, func(otherEvent) { t.Error("Expected no delivery to a different event type") })

	Emit(b, pingEvent{})
	Emit(b, pingEvent{})
	b.SwapBuffers()
	b.DispatchAll()

	if first != 2 || second != 2 {
		t.Errorf("Expected both handlers to see 2 events, got %d and %d", first, second)
	}
}

func TestBusEmitDuringDispatchLandsNextTick(t *testing.T) {
	b := NewBus()
	delivered := 0
	Subscribe(b, func(e pingEvent) {
		delivered++
		if e.N < 2 {
			Emit(b, pingEvent{N: e.N + 1})
		}
	})

	Emit(b, pingEvent{N: 1})
	b.SwapBuffers()
	b.DispatchAll()
	if delivered != 1 {
		t.Fatalf("Expected 1 delivery on first tick, got %d", delivered)
	}
	b.SwapBuffers()
	b.DispatchAll()
	if delivered != 2 {
		t.Errorf("Expected re-emitted event on second tick, got %d deliveries", delivered)
	}
}
