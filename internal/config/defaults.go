package config

import (
	_ "embed"
)

//go:embed defaults/patterns.yaml
var defaultPatternsYAML []byte

// DefaultPatternConfig returns the hardcoded default configuration.
// It mirrors defaults/patterns.yaml and is used when the embedded file
// cannot be parsed.
func DefaultPatternConfig() PatternConfig {
	return PatternConfig{
		Palette: []PaletteColor{
			{Name: "red", RGB: []int{255, 0, 0}},
			{Name: "blue", RGB: []int{0, 0, 255}},
			{Name: "green", RGB: []int{0, 200, 0}},
			{Name: "yellow", RGB: []int{255, 255, 0}},
			{Name: "orange", RGB: []int{255, 165, 0}},
			{Name: "purple", RGB: []int{160, 32, 240}},
			{Name: "cyan", RGB: []int{0, 255, 255}},
			{Name: "pink", RGB: []int{255, 105, 180}},
		},
		Layout: LayoutConfig{
			BlockWidth:  7,
			BlockHeight: 3,
			Padding:     1,
			SlotRow:     4,
			PieceRow:    13,
			PieceGap:    4,
		},
		Timing: TimingConfig{
			FPS:             60,
			MessageWindowMS: 1500,
		},
		Text: TextConfig{
			Title:        "Complete the Pattern: AA-BB-AA-BB",
			Success:      "Great job!",
			Failure:      "Try again!",
			SuccessColor: []int{0, 150, 0},
			FailureColor: []int{255, 0, 0},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultPatternsYAML
}
