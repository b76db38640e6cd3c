package core

import "testing"

func TestEventKindString(t *testing.T) {
	tests := []struct {
		kind EventKind
		want string
	}{
		{EventNone, "None"},
		{EventPointerDown, "PointerDown"},
		{EventPointerMove, "PointerMove"},
		{EventPointerUp, "PointerUp"},
		{EventQuit, "Quit"},
		{EventKind(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.kind.String(); got != tc.want {
			t.Errorf("EventKind(%d).String() = %q, want %q", tc.kind, got, tc.want)
		}
	}
}

func TestEventConstructors(t *testing.T) {
	if ev := PointerDown(3, 4); ev.Kind != EventPointerDown || ev.Pos != (Point{X: 3, Y: 4}) {
		t.Errorf("PointerDown() = %+v", ev)
	}
	if ev := PointerMove(5, 6); ev.Kind != EventPointerMove || ev.Pos != (Point{X: 5, Y: 6}) {
		t.Errorf("PointerMove() = %+v", ev)
	}
	if ev := PointerUp(7, 8); ev.Kind != EventPointerUp || ev.Pos != (Point{X: 7, Y: 8}) {
		t.Errorf("PointerUp() = %+v", ev)
	}
	if ev := Quit(); ev.Kind != EventQuit {
		t.Errorf("Quit() = %+v", ev)
	}
}

func TestEventQueueDrain(t *testing.T) {
	var q EventQueue

	if got := q.Drain(); got != nil {
		t.Errorf("Drain() on empty queue = %v, want nil", got)
	}

	q.Push(PointerDown(1, 1))
	q.Push(PointerMove(2, 2))
	q.Push(PointerUp(3, 3))

	if q.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", q.Len())
	}

	events := q.Drain()
	if len(events) != 3 {
		t.Fatalf("Drain() returned %d events, want 3", len(events))
	}
	if events[0].Kind != EventPointerDown || events[2].Kind != EventPointerUp {
		t.Errorf("Drain() should preserve arrival order, got %v", events)
	}
	if q.Len() != 0 {
		t.Errorf("queue should be empty after Drain, Len() = %d", q.Len())
	}
}
