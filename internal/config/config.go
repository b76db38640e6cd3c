// Package config provides YAML-based configuration loading for the pattern
// puzzle: palette, screen layout, timers and message text.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-patterns/internal/core"
)

// Validation errors returned (wrapped) by Validate.
var (
	ErrPaletteTooSmall = errors.New("palette needs at least 2 colors")
	ErrDuplicateColor  = errors.New("duplicate palette color")
	ErrBadColor        = errors.New("invalid palette color")
	ErrBadLayout       = errors.New("invalid layout")
	ErrBadTiming       = errors.New("invalid timing")
)

// PatternConfig contains all configuration for the pattern puzzle.
type PatternConfig struct {
	Palette []PaletteColor `yaml:"palette"`
	Layout  LayoutConfig   `yaml:"layout"`
	Timing  TimingConfig   `yaml:"timing"`
	Text    TextConfig     `yaml:"text"`
}

// PaletteColor is one named color the level generator may pick.
type PaletteColor struct {
	Name string `yaml:"name"`
	RGB  []int  `yaml:"rgb"` // [r, g, b], each 0-255
}

// LayoutConfig defines screen geometry in terminal cells.
type LayoutConfig struct {
	BlockWidth  int `yaml:"block_width"`
	BlockHeight int `yaml:"block_height"`
	Padding     int `yaml:"padding"`   // Gap between adjacent slots
	SlotRow     int `yaml:"slot_row"`  // Y of the slot row
	PieceRow    int `yaml:"piece_row"` // Y of the draggable pieces
	PieceGap    int `yaml:"piece_gap"` // Gap between the two pieces
}

// TimingConfig defines the loop rate and the message window.
type TimingConfig struct {
	FPS             int `yaml:"fps"`
	MessageWindowMS int `yaml:"message_window_ms"`
}

// TextConfig defines the strings shown to the player.
type TextConfig struct {
	Title        string `yaml:"title"`
	Success      string `yaml:"success"`
	Failure      string `yaml:"failure"`
	SuccessColor []int  `yaml:"success_color"`
	FailureColor []int  `yaml:"failure_color"`
}

// Window returns the message/level timer duration.
func (t TimingConfig) Window() time.Duration {
	return time.Duration(t.MessageWindowMS) * time.Millisecond
}

// Color converts the palette entry to a core color.
// Call Validate first; malformed entries yield the zero color.
func (p PaletteColor) Color() core.Color {
	c, _ := toColor(p.Name, p.RGB)
	return c
}

// Colors returns the palette as core colors, in file order.
func (c PatternConfig) Colors() []core.Color {
	out := make([]core.Color, len(c.Palette))
	for i, p := range c.Palette {
		out[i] = p.Color()
	}
	return out
}

// SuccessColorValue returns the color of the "level complete" message.
func (t TextConfig) SuccessColorValue() core.Color {
	c, _ := toColor("success", t.SuccessColor)
	return c
}

// FailureColorValue returns the color of the "try again" message.
func (t TextConfig) FailureColorValue() core.Color {
	c, _ := toColor("failure", t.FailureColor)
	return c
}

// Validate checks that the configuration can drive a game.
func (c PatternConfig) Validate() error {
	if len(c.Palette) < 2 {
		return fmt.Errorf("config: %w (got %d)", ErrPaletteTooSmall, len(c.Palette))
	}

	seen := make(map[string]bool, len(c.Palette))
	for i, p := range c.Palette {
		if p.Name == "" {
			return fmt.Errorf("config: palette[%d]: %w: missing name", i, ErrBadColor)
		}
		if _, err := toColor(p.Name, p.RGB); err != nil {
			return fmt.Errorf("config: palette[%d] %q: %w", i, p.Name, err)
		}
		if seen[p.Name] {
			return fmt.Errorf("config: %w %q", ErrDuplicateColor, p.Name)
		}
		seen[p.Name] = true
	}

	l := c.Layout
	if l.BlockWidth < 2 || l.BlockHeight < 1 || l.Padding < 0 || l.SlotRow < 0 || l.PieceGap < 0 {
		return fmt.Errorf("config: %w: %+v", ErrBadLayout, l)
	}
	if l.PieceRow < l.SlotRow+l.BlockHeight {
		return fmt.Errorf("config: %w: piece_row %d overlaps the slot row", ErrBadLayout, l.PieceRow)
	}

	if c.Timing.FPS <= 0 || c.Timing.MessageWindowMS <= 0 {
		return fmt.Errorf("config: %w: %+v", ErrBadTiming, c.Timing)
	}

	if _, err := toColor("success", c.Text.SuccessColor); err != nil {
		return fmt.Errorf("config: success_color: %w", err)
	}
	if _, err := toColor("failure", c.Text.FailureColor); err != nil {
		return fmt.Errorf("config: failure_color: %w", err)
	}

	return nil
}

// toColor converts an [r, g, b] triple into a named color.
func toColor(name string, rgb []int) (core.Color, error) {
	if len(rgb) != 3 {
		return core.Color{}, fmt.Errorf("%w: want 3 components, got %d", ErrBadColor, len(rgb))
	}
	for _, v := range rgb {
		if v < 0 || v > 255 {
			return core.Color{}, fmt.Errorf("%w: component %d out of range", ErrBadColor, v)
		}
	}
	return core.RGB(name, uint8(rgb[0]), uint8(rgb[1]), uint8(rgb[2])), nil
}
