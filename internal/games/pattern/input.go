package pattern

import (
	"time"

	"github.com/vovakirdan/tui-patterns/internal/core"
)

// OutcomeKind says what an input event did to the game.
type OutcomeKind int

const (
	OutcomeNone      OutcomeKind = iota // Event ignored
	OutcomePickedUp                     // Drag started
	OutcomeMoved                        // Dragged piece followed the pointer
	OutcomeReturned                     // Dropped outside any open slot
	OutcomePlaced                       // Correct color kept in a slot
	OutcomeRejected                     // Wrong color, slot reverted
	OutcomeCompleted                    // Placement completed the pattern
	OutcomeQuit                         // Session ends
)

// String returns a human-readable name for the outcome.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeNone:
		return "none"
	case OutcomePickedUp:
		return "picked_up"
	case OutcomeMoved:
		return "moved"
	case OutcomeReturned:
		return "returned"
	case OutcomePlaced:
		return "placed"
	case OutcomeRejected:
		return "rejected"
	case OutcomeCompleted:
		return "completed"
	case OutcomeQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Outcome is the result of handling one event. Slot is -1 unless a piece
// was dropped on a slot; Color is the color of the piece involved.
type Outcome struct {
	Kind  OutcomeKind
	Slot  int
	Color core.Color
}

func ignored() Outcome {
	return Outcome{Kind: OutcomeNone, Slot: -1}
}

// Handle applies one input event at time now.
func (s *State) Handle(ev core.Event, now time.Time) Outcome {
	if ev.Kind == core.EventQuit {
		s.cancelDrag()
		return Outcome{Kind: OutcomeQuit, Slot: -1}
	}

	// Pieces and slots may be off screen.
	if !s.layout.Fits() {
		return ignored()
	}

	switch ev.Kind {
	case core.EventPointerDown:
		return s.pointerDown(ev.Pos)
	case core.EventPointerMove:
		return s.pointerMove(ev.Pos)
	case core.EventPointerUp:
		return s.pointerUp(ev.Pos, now)
	}
	return ignored()
}

func (s *State) pointerDown(p core.Point) Outcome {
	if s.complete || s.selected != noPiece {
		return ignored()
	}

	idx := s.pieceAt(p)
	if idx == noPiece {
		return ignored()
	}

	piece := &s.puzzle.Pieces[idx]
	s.selected = idx
	s.offset = piece.Pos.Sub(p)
	return Outcome{Kind: OutcomePickedUp, Slot: -1, Color: piece.Color}
}

func (s *State) pointerMove(p core.Point) Outcome {
	if s.selected == noPiece {
		return ignored()
	}

	piece := &s.puzzle.Pieces[s.selected]
	piece.Pos = p.Add(s.offset)
	return Outcome{Kind: OutcomeMoved, Slot: -1, Color: piece.Color}
}

func (s *State) pointerUp(p core.Point, now time.Time) Outcome {
	if s.selected == noPiece || s.complete {
		return ignored()
	}

	piece := &s.puzzle.Pieces[s.selected]
	color := piece.Color
	out := Outcome{Kind: OutcomeReturned, Slot: -1, Color: color}

	if idx := s.dropTarget(p); idx >= 0 {
		out.Slot = idx
		s.puzzle.Slots[idx] = Slot{Color: color, Filled: true}

		switch {
		case s.puzzle.Slots[idx].Color != s.puzzle.Required(idx):
			s.puzzle.Slots[idx] = Slot{}
			s.failing = true
			s.failureAt = now
			out.Kind = OutcomeRejected
		case s.puzzle.IsComplete():
			s.complete = true
			s.completeAt = now
			out.Kind = OutcomeCompleted
		default:
			out.Kind = OutcomePlaced
		}
	}

	s.cancelDrag()
	return out
}

// cancelDrag sends the dragged piece home and ends the drag.
func (s *State) cancelDrag() {
	if s.selected == noPiece {
		return
	}
	piece := &s.puzzle.Pieces[s.selected]
	piece.Pos = piece.Home
	s.selected = noPiece
}

// pieceAt returns the index of the first piece under p, or noPiece.
func (s *State) pieceAt(p core.Point) int {
	for i, piece := range s.puzzle.Pieces {
		if piece.Bounds().ContainsPoint(p) {
			return i
		}
	}
	return noPiece
}

// dropTarget returns the empty open slot under p, or -1. Pre-filled and
// already filled slots are never targets.
func (s *State) dropTarget(p core.Point) int {
	for i := RevealedSlots; i < SlotCount; i++ {
		if s.puzzle.Slots[i].Filled {
			continue
		}
		if s.layout.SlotRect(i).ContainsPoint(p) {
			return i
		}
	}
	return -1
}
