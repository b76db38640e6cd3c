package pattern

import (
	"github.com/vovakirdan/tui-patterns/internal/config"
	"github.com/vovakirdan/tui-patterns/internal/core"
)

// Layout is the screen geometry of one puzzle, in terminal cells.
type Layout struct {
	ScreenW int
	ScreenH int

	BlockW   int // Width of a slot and of a piece
	BlockH   int // Height of a slot and of a piece
	Padding  int // Gap between adjacent slots
	SlotRow  int // Y of the slot row
	PieceRow int // Y of the pieces' home positions
	PieceGap int // Gap between the two pieces
}

// NewLayout builds a layout for the given screen size.
func NewLayout(cfg config.LayoutConfig, screenW, screenH int) Layout {
	return Layout{
		ScreenW:  screenW,
		ScreenH:  screenH,
		BlockW:   cfg.BlockWidth,
		BlockH:   cfg.BlockHeight,
		Padding:  cfg.Padding,
		SlotRow:  cfg.SlotRow,
		PieceRow: cfg.PieceRow,
		PieceGap: cfg.PieceGap,
	}
}

// Resized returns a copy of the layout for a new screen size.
func (l Layout) Resized(screenW, screenH int) Layout {
	l.ScreenW = screenW
	l.ScreenH = screenH
	return l
}

// SlotRect returns the bounds of slot i. The row starts half its pitch
// left of the screen center.
func (l Layout) SlotRect(i int) core.Rect {
	pitch := l.BlockW + l.Padding
	startX := l.ScreenW/2 - pitch*SlotCount/2
	return core.NewRect(startX+i*pitch, l.SlotRow, l.BlockW, l.BlockH)
}

// PieceHome returns the home position of piece i (0 = color A, 1 = color B).
func (l Layout) PieceHome(i int) core.Point {
	cx := l.ScreenW / 2
	if i == 0 {
		return core.Point{X: cx - l.PieceGap/2 - l.BlockW, Y: l.PieceRow}
	}
	return core.Point{X: cx + l.PieceGap - l.PieceGap/2, Y: l.PieceRow}
}

// TitleRow is the row of the title line.
func (l Layout) TitleRow() int {
	return max(l.SlotRow-3, 0)
}

// MessageRow is the row of the success/failure message, above the pieces.
func (l Layout) MessageRow() int {
	return l.PieceRow - 2
}

// Fits reports whether the whole board is visible on the screen.
// The last screen row is reserved for the help line.
func (l Layout) Fits() bool {
	if l.SlotRect(0).X < 0 || l.SlotRect(SlotCount-1).Right() > l.ScreenW {
		return false
	}
	if l.PieceHome(0).X < 0 || l.PieceHome(1).X+l.BlockW > l.ScreenW {
		return false
	}
	return l.PieceRow+l.BlockH < l.ScreenH
}
