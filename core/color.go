package core

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Color is a contact color in HSL space. Hue is kept as an integer
// degree so collision checks against in-use colors are exact, decoupled
// from any render backend.
type Color struct {
	Hue        int // 0..359
	Saturation float64
	Lightness  float64
}

// RGB255 converts to 8-bit channels for rendering.
func (c Color) RGB255() (r, g, b uint8) {
	return colorful.Hsl(float64(c.Hue), c.Saturation, c.Lightness).Clamped().RGB255()
}

// Scale returns the color with lightness multiplied by factor, clamped
// to [0, 1]. Used for dimmed variants (background fill, trails).
func (c Color) Scale(factor float64) Color {
	l := c.Lightness * factor
	if l < 0 {
		l = 0
	}
	if l > 1 {
		l = 1
	}
	return Color{Hue: c.Hue, Saturation: c.Saturation, Lightness: l}
}
