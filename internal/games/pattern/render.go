package pattern

import (
	"fmt"

	"github.com/vovakirdan/tui-patterns/internal/core"
)

const blockRune = '█'

// ScreenRenderer draws snapshots into a core.Screen.
type ScreenRenderer struct {
	Screen *core.Screen
}

// NewScreenRenderer creates a renderer for the given screen.
func NewScreenRenderer(dst *core.Screen) *ScreenRenderer {
	return &ScreenRenderer{Screen: dst}
}

// Draw clears the screen and paints the snapshot.
func (r *ScreenRenderer) Draw(v Snapshot) {
	dst := r.Screen
	dst.Clear()

	if v.TooSmall() {
		renderTooSmall(dst, v.Layout)
		return
	}

	l := v.Layout
	dst.DrawTextCentered(l.TitleRow(), v.Title, core.ColorDefault)

	for _, s := range v.Slots {
		if s.Filled {
			dst.DrawRect(s.Rect, blockRune, s.Color)
		} else {
			dst.DrawBox(s.Rect, core.ColorGray)
		}
	}

	if v.HasMessage {
		dst.DrawTextCentered(l.MessageRow(), v.Message.Text, v.Message.Color)
	}

	// Dragged piece last so it stays on top.
	for i, p := range v.Pieces {
		if i != v.Selected {
			dst.DrawRect(p.Bounds(), blockRune, p.Color)
		}
	}
	if v.Selected >= 0 && v.Selected < len(v.Pieces) {
		p := v.Pieces[v.Selected]
		dst.DrawRect(p.Bounds(), blockRune, p.Color)
	}
}

func renderTooSmall(dst *core.Screen, l Layout) {
	need := l.SlotRect(SlotCount-1).Right() - l.SlotRect(0).X
	lines := []string{
		"Terminal too small",
		fmt.Sprintf("need about %dx%d", need+2, l.PieceRow+l.BlockH+1),
	}
	y := dst.Height()/2 - 1
	for i, line := range lines {
		dst.DrawTextCentered(y+i, line, core.ColorDefault)
	}
}
