package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/last-touch/game"
)

const (
	// Contact marker disc radius in rows. Columns are drawn at twice
	// the radius to compensate for the cell aspect ratio.
	markerRadius = 2

	// Winner ring pulse
	ringMinRadius = 3
	ringMaxRadius = 6
	ringPulseDiv  = 3 // frames per radius step
)

// Status carries the HUD fields that live outside the game snapshot.
type Status struct {
	Armed bool
	Muted bool
}

// Renderer draws the full surface each frame: background, one colored
// disc per contact, a pulsing ring around the winner, and a status
// line. Pure function of the snapshot; no game state is touched.
type Renderer struct {
	screen tcell.Screen
	frame  int
}

// New creates a renderer for the given screen.
func New(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw renders one frame.
func (r *Renderer) Draw(snap game.Snapshot, status Status) {
	r.frame++
	width, height := r.screen.Size()

	bg := RgbBackground
	if snap.HasBackground {
		bg = toTcell(snap.Background)
	}
	r.screen.Fill(' ', tcell.StyleDefault.Background(bg))

	for _, c := range snap.Contacts {
		r.drawContact(c, bg, width, height)
	}

	if snap.HasWinner {
		for _, c := range snap.Contacts {
			if c.ID == snap.WinnerID {
				r.drawWinnerRing(c, bg, width, height)
				break
			}
		}
	}

	r.drawStatus(snap, status, bg, width, height)
	r.screen.Show()
}

// drawContact renders a filled disc in the contact's color.
func (r *Renderer) drawContact(c game.Contact, bg tcell.Color, width, height int) {
	style := tcell.StyleDefault.Foreground(toTcell(c.Color)).Background(bg)
	for dy := -markerRadius; dy <= markerRadius; dy++ {
		for dx := -markerRadius * 2; dx <= markerRadius*2; dx++ {
			if discDistance(dx, dy) > float64(markerRadius)+0.5 {
				continue
			}
			setClipped(r.screen, c.X+dx, c.Y+dy, '█', style, width, height)
		}
	}
}

// drawWinnerRing renders a pulsing ring around the surviving contact.
func (r *Renderer) drawWinnerRing(c game.Contact, bg tcell.Color, width, height int) {
	pulse := (r.frame / ringPulseDiv) % (ringMaxRadius - ringMinRadius + 1)
	radius := float64(ringMinRadius + pulse)

	style := tcell.StyleDefault.Foreground(RgbWinnerRing).Background(bg)
	for dy := -ringMaxRadius; dy <= ringMaxRadius; dy++ {
		for dx := -ringMaxRadius * 2; dx <= ringMaxRadius*2; dx++ {
			d := discDistance(dx, dy)
			if d < radius-0.5 || d > radius+0.5 {
				continue
			}
			setClipped(r.screen, c.X+dx, c.Y+dy, '•', style, width, height)
		}
	}
}

func (r *Renderer) drawStatus(snap game.Snapshot, status Status, bg tcell.Color, width, height int) {
	state := "idle"
	if status.Armed {
		state = "armed"
	}
	if snap.HasWinner {
		state = fmt.Sprintf("winner: contact %d", snap.WinnerID)
	}
	sound := "sound on"
	if status.Muted {
		sound = "muted"
	}

	line := fmt.Sprintf(" contacts %d | %s | %s | digits add, m mute, esc quit ",
		len(snap.Contacts), state, sound)
	style := tcell.StyleDefault.Foreground(RgbStatusText).Background(bg)
	for i, ch := range line {
		setClipped(r.screen, i, height-1, ch, style, width, height)
	}
}

// discDistance measures cell distance with columns halved to
// compensate for the 2:1 terminal cell aspect ratio.
func discDistance(dx, dy int) float64 {
	fx := float64(dx) / 2
	fy := float64(dy)
	return math.Sqrt(fx*fx + fy*fy)
}

func setClipped(s tcell.Screen, x, y int, ch rune, style tcell.Style, width, height int) {
	if x < 0 || y < 0 || x >= width || y >= height {
		return
	}
	s.SetContent(x, y, ch, nil, style)
}
