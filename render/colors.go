package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/last-touch/core"
)

// RGB color definitions for the surface chrome
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbStatusText = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbWinnerRing = tcell.NewRGBColor(255, 255, 200) // Bright yellow-white ring
)

// toTcell converts a contact color to the render backend color.
func toTcell(c core.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
