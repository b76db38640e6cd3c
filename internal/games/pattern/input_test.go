package pattern

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-patterns/internal/core"
)

func TestScenarioCompleteWithColorB(t *testing.T) {
	s := newTestState(t)

	out := drag(t, s, 1, slotCenter(s, 6), t0)
	if out.Kind != OutcomePlaced || out.Slot != 6 || out.Color != blue {
		t.Fatalf("blue on slot 6 = %+v, want placed", out)
	}
	if got := s.puzzle.Slots[6]; !got.Filled || got.Color != blue {
		t.Errorf("slot 6 = %+v, want blue", got)
	}
	if s.puzzle.Slots[7].Filled {
		t.Error("slot 7 should still be empty")
	}
	if s.Complete() {
		t.Error("one trailing slot must not complete the level")
	}
	if _, ok := s.ActiveMessage(); ok {
		t.Error("correct partial placement should not show a message")
	}

	out = drag(t, s, 1, slotCenter(s, 7), t0.Add(time.Second))
	if out.Kind != OutcomeCompleted || out.Slot != 7 {
		t.Fatalf("blue on slot 7 = %+v, want completed", out)
	}
	if !s.Complete() {
		t.Error("level should be complete once slots 6 and 7 hold blue")
	}
	msg, ok := s.ActiveMessage()
	if !ok || msg.Text != "Great job!" {
		t.Errorf("ActiveMessage() = %+v, %v; want Great job!", msg, ok)
	}
	if msg.Color != core.RGB("success", 0, 150, 0) {
		t.Errorf("success color = %+v", msg.Color)
	}
}

func TestScenarioColorARejected(t *testing.T) {
	for _, slot := range []int{6, 7} {
		s := newTestState(t)

		out := drag(t, s, 0, slotCenter(s, slot), t0)
		if out.Kind != OutcomeRejected || out.Slot != slot || out.Color != red {
			t.Fatalf("red on slot %d = %+v, want rejected", slot, out)
		}
		if s.puzzle.Slots[slot].Filled {
			t.Errorf("slot %d should be reverted to empty", slot)
		}
		if !s.Failing() {
			t.Error("failure message should be up")
		}
		msg, ok := s.ActiveMessage()
		if !ok || msg.Text != "Try again!" {
			t.Errorf("ActiveMessage() = %+v, %v; want Try again!", msg, ok)
		}
		if p := s.puzzle.Pieces[0]; p.Pos != p.Home {
			t.Errorf("piece should be back home, at %+v", p.Pos)
		}
		if _, dragging := s.Selected(); dragging {
			t.Error("drag should end after drop")
		}
	}
}

func TestDropOnPrefilledSlotIsNoop(t *testing.T) {
	s := newTestState(t)
	before := s.puzzle.Slots

	for _, idx := range []int{0, 1} {
		out := drag(t, s, idx, slotCenter(s, 2), t0)
		if out.Kind != OutcomeReturned || out.Slot != -1 {
			t.Errorf("drop on slot 2 = %+v, want returned", out)
		}
	}

	if s.puzzle.Slots != before {
		t.Error("dropping on a pre-filled slot must not change any slot")
	}
	if s.Failing() {
		t.Error("dropping on a pre-filled slot must not raise a failure")
	}
}

func TestDropOutsideSlots(t *testing.T) {
	s := newTestState(t)
	before := s.puzzle.Slots

	targets := []core.Point{
		{X: 0, Y: 0},
		{X: 79, Y: 20},
		{X: 40, Y: 10},
		// Padding cell between slot 6 and 7
		{X: s.layout.SlotRect(6).Right(), Y: s.layout.SlotRow + 1},
	}
	for _, target := range targets {
		for idx := 0; idx < 2; idx++ {
			out := drag(t, s, idx, target, t0)
			if out.Kind != OutcomeReturned {
				t.Errorf("drop at %+v = %v, want returned", target, out.Kind)
			}
			if p := s.puzzle.Pieces[idx]; p.Pos != p.Home {
				t.Errorf("piece %d should be home after drop at %+v", idx, target)
			}
		}
	}

	if s.puzzle.Slots != before {
		t.Error("drop outside slots must not change any slot")
	}
	if s.Failing() {
		t.Error("drop outside slots must not raise a failure")
	}
}

func TestFilledOpenSlotIsNotATarget(t *testing.T) {
	s := newTestState(t)
	drag(t, s, 1, slotCenter(s, 6), t0)

	out := drag(t, s, 0, slotCenter(s, 6), t0)
	if out.Kind != OutcomeReturned {
		t.Fatalf("drop on filled slot 6 = %v, want returned", out.Kind)
	}
	if got := s.puzzle.Slots[6]; got.Color != blue {
		t.Errorf("slot 6 changed to %+v", got)
	}
	if s.Failing() {
		t.Error("drop on a filled slot must not raise a failure")
	}
}

func TestPiecesAreReusable(t *testing.T) {
	s := newTestState(t)

	// Same piece, rejected many times, still draggable.
	for i := 0; i < 3; i++ {
		if out := drag(t, s, 0, slotCenter(s, 6), t0); out.Kind != OutcomeRejected {
			t.Fatalf("attempt %d = %v, want rejected", i, out.Kind)
		}
	}
	if out := drag(t, s, 1, slotCenter(s, 6), t0); out.Kind != OutcomePlaced {
		t.Fatalf("blue after rejections = %v, want placed", out.Kind)
	}
	if out := drag(t, s, 1, slotCenter(s, 7), t0); out.Kind != OutcomeCompleted {
		t.Fatalf("same blue piece again = %v, want completed", out.Kind)
	}
}

func TestDragOffset(t *testing.T) {
	s := newTestState(t)
	piece := s.puzzle.Pieces[1]
	grab := piece.Pos.Add(core.Point{X: 2, Y: 1})

	if out := s.Handle(core.PointerDown(grab.X, grab.Y), t0); out.Kind != OutcomePickedUp || out.Color != blue {
		t.Fatalf("PointerDown = %+v", out)
	}
	if idx, ok := s.Selected(); !ok || idx != 1 {
		t.Fatalf("Selected() = %d, %v; want 1, true", idx, ok)
	}

	if out := s.Handle(core.PointerMove(50, 20), t0); out.Kind != OutcomeMoved {
		t.Fatalf("PointerMove = %v", out.Kind)
	}
	if got := s.puzzle.Pieces[1].Pos; got != (core.Point{X: 48, Y: 19}) {
		t.Errorf("piece moved to %+v, want (48, 19)", got)
	}
	if s.puzzle.Pieces[1].Home != piece.Home {
		t.Error("moving must not change the home position")
	}
	for i := RevealedSlots; i < SlotCount; i++ {
		if s.puzzle.Slots[i].Filled {
			t.Error("moving must not touch slots")
		}
	}
}

func TestMalformedPointerEventsIgnored(t *testing.T) {
	s := newTestState(t)
	before := s.puzzle

	events := []core.Event{
		core.PointerUp(10, 5),
		core.PointerMove(30, 10),
		core.PointerDown(0, 0), // empty space
		core.PointerUp(0, 0),
		{Kind: core.EventNone},
	}
	for _, ev := range events {
		if out := s.Handle(ev, t0); out.Kind != OutcomeNone {
			t.Errorf("Handle(%v) = %v, want none", ev.Kind, out.Kind)
		}
	}

	if s.puzzle != before {
		t.Error("ignored events must not change the puzzle")
	}
}

func TestSecondPointerDownWhileDragging(t *testing.T) {
	s := newTestState(t)
	a := center(s.puzzle.Pieces[0].Bounds())
	b := center(s.puzzle.Pieces[1].Bounds())

	s.Handle(core.PointerDown(a.X, a.Y), t0)
	if out := s.Handle(core.PointerDown(b.X, b.Y), t0); out.Kind != OutcomeNone {
		t.Errorf("second PointerDown = %v, want none", out.Kind)
	}
	if idx, _ := s.Selected(); idx != 0 {
		t.Errorf("selected = %d, want 0", idx)
	}
}

func TestInputIgnoredWhileComplete(t *testing.T) {
	s := newTestState(t)
	drag(t, s, 1, slotCenter(s, 6), t0)
	drag(t, s, 1, slotCenter(s, 7), t0)

	p := center(s.puzzle.Pieces[0].Bounds())
	if out := s.Handle(core.PointerDown(p.X, p.Y), t0); out.Kind != OutcomeNone {
		t.Errorf("PointerDown while complete = %v, want none", out.Kind)
	}
	if _, ok := s.Selected(); ok {
		t.Error("no drag may start while complete")
	}
	if out := s.Handle(core.PointerMove(1, 1), t0); out.Kind != OutcomeNone {
		t.Errorf("PointerMove while complete = %v, want none", out.Kind)
	}
	if out := s.Handle(core.PointerUp(1, 1), t0); out.Kind != OutcomeNone {
		t.Errorf("PointerUp while complete = %v, want none", out.Kind)
	}
}

func TestQuitDiscardsDrag(t *testing.T) {
	s := newTestState(t)
	p := center(s.puzzle.Pieces[0].Bounds())

	s.Handle(core.PointerDown(p.X, p.Y), t0)
	s.Handle(core.PointerMove(5, 5), t0)

	if out := s.Handle(core.Quit(), t0); out.Kind != OutcomeQuit {
		t.Fatalf("Quit = %v", out.Kind)
	}
	if _, ok := s.Selected(); ok {
		t.Error("quit should discard the drag")
	}
	if piece := s.puzzle.Pieces[0]; piece.Pos != piece.Home {
		t.Error("quit should send the dragged piece home")
	}
}

func TestPointerIgnoredWhenScreenTooSmall(t *testing.T) {
	s := newTestState(t)
	s.Relayout(s.layout.Resized(40, 10))

	p := center(s.puzzle.Pieces[0].Bounds())
	if out := s.Handle(core.PointerDown(p.X, p.Y), t0); out.Kind != OutcomeNone {
		t.Errorf("PointerDown on tiny screen = %v, want none", out.Kind)
	}
	if out := s.Handle(core.Quit(), t0); out.Kind != OutcomeQuit {
		t.Error("quit must still work on a tiny screen")
	}
}

func TestOutcomeKindString(t *testing.T) {
	tests := map[OutcomeKind]string{
		OutcomeNone:      "none",
		OutcomePickedUp:  "picked_up",
		OutcomeMoved:     "moved",
		OutcomeReturned:  "returned",
		OutcomePlaced:    "placed",
		OutcomeRejected:  "rejected",
		OutcomeCompleted: "completed",
		OutcomeQuit:      "quit",
		OutcomeKind(42):  "unknown",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("OutcomeKind(%d).String() = %q, want %q", k, got, want)
		}
	}
}
