package pattern

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-patterns/internal/config"
	"github.com/vovakirdan/tui-patterns/internal/core"
)

// Message is a line of text shown to the player.
type Message struct {
	Text  string
	Color core.Color
}

// Settings holds everything about a game that does not change between levels.
type Settings struct {
	Title   string
	Palette []core.Color
	Window  time.Duration // How long success/failure messages stay up
	Success Message
	Failure Message
}

// SettingsFromConfig builds game settings from a validated configuration.
func SettingsFromConfig(cfg config.PatternConfig) Settings {
	return Settings{
		Title:   cfg.Text.Title,
		Palette: cfg.Colors(),
		Window:  cfg.Timing.Window(),
		Success: Message{Text: cfg.Text.Success, Color: cfg.Text.SuccessColorValue()},
		Failure: Message{Text: cfg.Text.Failure, Color: cfg.Text.FailureColorValue()},
	}
}

// noPiece marks that no piece is being dragged.
const noPiece = -1

// State is the single source of truth for a running game. It is owned by
// one loop and is not safe for concurrent use.
type State struct {
	settings Settings
	rng      *rand.Rand
	layout   Layout
	puzzle   Puzzle
	level    int // Levels generated so far, for logging

	selected int        // Index of the dragged piece, or noPiece
	offset   core.Point // Piece top-left minus pointer at pickup

	failing   bool
	failureAt time.Time

	complete   bool
	completeAt time.Time
}

// NewState creates a game and generates its first level.
func NewState(settings Settings, layout Layout, seed int64) *State {
	s := &State{
		settings: settings,
		rng:      rand.New(rand.NewSource(seed)),
		layout:   layout,
		selected: noPiece,
	}
	s.newLevel()
	return s
}

// newLevel replaces the whole puzzle.
func (s *State) newLevel() {
	s.puzzle = Generate(s.rng, s.settings.Palette, s.layout)
	s.selected = noPiece
	s.level++
}

// Puzzle returns a copy of the current puzzle.
func (s *State) Puzzle() Puzzle {
	return s.puzzle
}

// Layout returns the current layout.
func (s *State) Layout() Layout {
	return s.layout
}

// Settings returns the game settings.
func (s *State) Settings() Settings {
	return s.settings
}

// Level returns the 1-based number of the current level.
func (s *State) Level() int {
	return s.level
}

// Selected returns the index of the dragged piece, if any.
func (s *State) Selected() (int, bool) {
	return s.selected, s.selected != noPiece
}

// Complete reports whether the current level is solved and waiting to advance.
func (s *State) Complete() bool {
	return s.complete
}

// Failing reports whether the failure message is up.
func (s *State) Failing() bool {
	return s.failing
}

// ActiveMessage returns the message to display. The failure message wins
// over the success message.
func (s *State) ActiveMessage() (Message, bool) {
	switch {
	case s.failing:
		return s.settings.Failure, true
	case s.complete:
		return s.settings.Success, true
	default:
		return Message{}, false
	}
}

// Relayout applies a new screen geometry. The puzzle is kept; pieces move
// to their new homes and any drag in progress is dropped.
func (s *State) Relayout(l Layout) {
	s.layout = l
	s.selected = noPiece
	s.puzzle.placePieces(l)
}

// Advance applies the time-driven transitions for a frame at time now.
// It returns true when a new level was generated.
func (s *State) Advance(now time.Time) bool {
	regenerated := false

	if s.complete && s.selected == noPiece && now.Sub(s.completeAt) > s.settings.Window {
		s.newLevel()
		s.complete = false
		s.failing = false
		regenerated = true
	}

	if s.failing && now.Sub(s.failureAt) > s.settings.Window {
		s.failing = false
	}

	return regenerated
}
