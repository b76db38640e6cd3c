package pattern

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-patterns/internal/config"
	"github.com/vovakirdan/tui-patterns/internal/core"
)

var (
	red  = core.RGB("red", 255, 0, 0)
	blue = core.RGB("blue", 0, 0, 255)

	t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
)

func testLayout() Layout {
	return NewLayout(config.DefaultPatternConfig().Layout, 80, 24)
}

func testSettings() Settings {
	return SettingsFromConfig(config.DefaultPatternConfig())
}

// newTestState creates a state whose current level uses colorA=red, colorB=blue.
func newTestState(t *testing.T) *State {
	t.Helper()
	s := NewState(testSettings(), testLayout(), 1)
	s.puzzle = fixedPuzzle(red, blue, s.layout)
	return s
}

func fixedPuzzle(a, b core.Color, l Layout) Puzzle {
	p := Puzzle{ColorA: a, ColorB: b}
	for i := 0; i < RevealedSlots; i++ {
		p.Slots[i] = Slot{Color: p.Required(i), Filled: true}
	}
	p.Pieces[0].Color = a
	p.Pieces[1].Color = b
	p.placePieces(l)
	return p
}

func center(r core.Rect) core.Point {
	x, y := r.Center()
	return core.Point{X: x, Y: y}
}

// drag picks up piece idx at its center, moves it to target and drops it.
func drag(t *testing.T, s *State, idx int, target core.Point, now time.Time) Outcome {
	t.Helper()
	from := center(s.puzzle.Pieces[idx].Bounds())

	if out := s.Handle(core.PointerDown(from.X, from.Y), now); out.Kind != OutcomePickedUp {
		t.Fatalf("PointerDown on piece %d = %v, want picked_up", idx, out.Kind)
	}
	s.Handle(core.PointerMove(target.X, target.Y), now)
	return s.Handle(core.PointerUp(target.X, target.Y), now)
}

func slotCenter(s *State, i int) core.Point {
	return center(s.layout.SlotRect(i))
}
