package core

// EventKind identifies a platform input event, abstracted from the
// terminal's mouse and keyboard protocol.
type EventKind int

const (
	EventNone        EventKind = iota
	EventPointerDown           // Primary button pressed
	EventPointerMove           // Pointer moved while tracked
	EventPointerUp             // Primary button released
	EventQuit                  // Q, Esc, Ctrl+C - end the session
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventNone:
		return "None"
	case EventPointerDown:
		return "PointerDown"
	case EventPointerMove:
		return "PointerMove"
	case EventPointerUp:
		return "PointerUp"
	case EventQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Event is a single input event. Pos is only meaningful for pointer events.
type Event struct {
	Kind EventKind
	Pos  Point
}

// PointerDown creates a pointer press event at (x, y).
func PointerDown(x, y int) Event {
	return Event{Kind: EventPointerDown, Pos: Point{X: x, Y: y}}
}

// PointerMove creates a pointer motion event at (x, y).
func PointerMove(x, y int) Event {
	return Event{Kind: EventPointerMove, Pos: Point{X: x, Y: y}}
}

// PointerUp creates a pointer release event at (x, y).
func PointerUp(x, y int) Event {
	return Event{Kind: EventPointerUp, Pos: Point{X: x, Y: y}}
}

// Quit creates a quit event.
func Quit() Event {
	return Event{Kind: EventQuit}
}

// EventQueue collects input between frames. The frame loop drains it in
// arrival order.
type EventQueue struct {
	events []Event
}

// Push appends an event to the queue.
func (q *EventQueue) Push(ev Event) {
	q.events = append(q.events, ev)
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	return len(q.events)
}

// Drain returns all pending events and empties the queue.
func (q *EventQueue) Drain() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = nil
	return out
}
