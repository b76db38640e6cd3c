package pattern

import "github.com/vovakirdan/tui-patterns/internal/core"

// SlotView is a slot together with where it is drawn.
type SlotView struct {
	Slot
	Rect core.Rect
}

// Snapshot is a read-only copy of everything the renderer needs.
type Snapshot struct {
	Title      string
	Layout     Layout
	Slots      [SlotCount]SlotView
	Pieces     [2]Piece
	Selected   int // Dragged piece index, or -1
	Message    Message
	HasMessage bool
	Complete   bool
	Level      int
}

// TooSmall reports whether the screen cannot show the board.
func (v Snapshot) TooSmall() bool {
	return !v.Layout.Fits()
}

// Snapshot copies the current state for rendering.
func (s *State) Snapshot() Snapshot {
	v := Snapshot{
		Title:    s.settings.Title,
		Layout:   s.layout,
		Pieces:   s.puzzle.Pieces,
		Selected: s.selected,
		Complete: s.complete,
		Level:    s.level,
	}
	for i, slot := range s.puzzle.Slots {
		v.Slots[i] = SlotView{Slot: slot, Rect: s.layout.SlotRect(i)}
	}
	v.Message, v.HasMessage = s.ActiveMessage()
	return v
}
