package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-patterns/internal/core"
)

// KeyMap defines the keyboard bindings. The puzzle itself is played with
// the mouse; keys only end the session.
type KeyMap struct {
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Quit}}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// MapKey translates a key message to an input event.
// Returns false for keys the game does not use.
func (k KeyMap) MapKey(msg tea.KeyMsg) (core.Event, bool) {
	if key.Matches(msg, k.Quit) {
		return core.Quit(), true
	}
	return core.Event{}, false
}

// MapMouse translates a mouse message to a pointer event.
// Only the left button drags; wheel and other buttons are ignored.
// Releases are accepted from any button since some terminals do not
// report which button was released.
func MapMouse(msg tea.MouseMsg) (core.Event, bool) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			return core.PointerDown(msg.X, msg.Y), true
		}
	case tea.MouseActionMotion:
		return core.PointerMove(msg.X, msg.Y), true
	case tea.MouseActionRelease:
		return core.PointerUp(msg.X, msg.Y), true
	}
	return core.Event{}, false
}
