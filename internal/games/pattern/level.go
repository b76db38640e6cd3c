// Package pattern implements the AA-BB-AA-BB drag-and-drop puzzle: level
// generation, the drag state machine, the frame loop and rendering into a
// core.Screen. It has no Bubble Tea dependency.
package pattern

import (
	"math/rand"

	"github.com/vovakirdan/tui-patterns/internal/core"
)

const (
	// SlotCount is the length of the pattern row.
	SlotCount = 8
	// RevealedSlots is how many leading slots the generator pre-fills.
	RevealedSlots = 6
)

// Role says which of the level's two colors a slot takes.
type Role int

const (
	RoleA Role = iota
	RoleB
)

// Template is the full AA-BB-AA-BB pattern. The generator reveals the first
// RevealedSlots roles; the player supplies the rest.
var Template = [SlotCount]Role{RoleA, RoleA, RoleB, RoleB, RoleA, RoleA, RoleB, RoleB}

// Slot is one position of the pattern row.
type Slot struct {
	Color  core.Color
	Filled bool
}

// Piece is a draggable color source. It is never consumed: after every drop
// it goes back to Home.
type Piece struct {
	Color core.Color
	Home  core.Point
	Pos   core.Point // Current visual position
	W, H  int
}

// Bounds returns the piece's current hit box.
func (p Piece) Bounds() core.Rect {
	return core.RectAt(p.Pos, p.W, p.H)
}

// Puzzle is one generated level.
type Puzzle struct {
	Slots  [SlotCount]Slot
	ColorA core.Color
	ColorB core.Color
	Pieces [2]Piece
}

// ColorFor returns the color a role stands for in this puzzle.
func (p *Puzzle) ColorFor(r Role) core.Color {
	if r == RoleA {
		return p.ColorA
	}
	return p.ColorB
}

// Required returns the color slot i must hold to complete the pattern.
func (p *Puzzle) Required(i int) core.Color {
	return p.ColorFor(Template[i])
}

// IsOpen reports whether slot i is a player-fillable slot.
func IsOpen(i int) bool {
	return i >= RevealedSlots && i < SlotCount
}

// IsComplete reports whether every open slot holds its required color.
func (p *Puzzle) IsComplete() bool {
	for i := RevealedSlots; i < SlotCount; i++ {
		if !p.Slots[i].Filled || p.Slots[i].Color != p.Required(i) {
			return false
		}
	}
	return true
}

// placePieces puts both pieces at their layout homes.
func (p *Puzzle) placePieces(l Layout) {
	for i := range p.Pieces {
		home := l.PieceHome(i)
		p.Pieces[i].Home = home
		p.Pieces[i].Pos = home
		p.Pieces[i].W = l.BlockW
		p.Pieces[i].H = l.BlockH
	}
}

// Generate creates a new level: two distinct colors picked uniformly from
// the palette, the first six slots filled from Template, and one piece per
// color at its home position. The palette must hold at least two colors.
func Generate(rng *rand.Rand, palette []core.Color, l Layout) Puzzle {
	if len(palette) < 2 {
		panic("pattern: palette needs at least 2 colors")
	}

	i := rng.Intn(len(palette))
	j := rng.Intn(len(palette) - 1)
	if j >= i {
		j++
	}

	p := Puzzle{
		ColorA: palette[i],
		ColorB: palette[j],
	}
	for k := 0; k < RevealedSlots; k++ {
		p.Slots[k] = Slot{Color: p.Required(k), Filled: true}
	}

	p.Pieces[0].Color = p.ColorA
	p.Pieces[1].Color = p.ColorB
	p.placePieces(l)

	return p
}
