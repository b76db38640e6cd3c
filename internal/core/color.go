package core

import "fmt"

// Color is a named RGB color. Two colors are the same color when all
// fields are equal; the zero value means "terminal default".
type Color struct {
	Name    string
	R, G, B uint8
}

// RGB creates a named color.
func RGB(name string, r, g, b uint8) Color {
	return Color{Name: name, R: r, G: g, B: b}
}

// IsZero reports whether c is the terminal default color.
func (c Color) IsZero() bool {
	return c == Color{}
}

// Hex returns the color as #rrggbb.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String returns the color name, or its hex value when unnamed.
func (c Color) String() string {
	if c.Name != "" {
		return c.Name
	}
	if c.IsZero() {
		return "default"
	}
	return c.Hex()
}

// Colors used by the platform for text.
var (
	ColorDefault = Color{}
	ColorBlack   = RGB("black", 0, 0, 0)
	ColorWhite   = RGB("white", 255, 255, 255)
	ColorGray    = RGB("gray", 138, 138, 138)
)
