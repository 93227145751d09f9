package game

import (
	"math/rand"

	"github.com/lixenwraith/last-touch/constants"
	"github.com/lixenwraith/last-touch/core"
)

// Allocator draws contact colors in HSL space, keeping hues distinct
// from colors already in use. Uniqueness is advisory: after a bounded
// number of colliding draws the last draw is kept regardless.
type Allocator struct {
	rng *rand.Rand
}

// NewAllocator creates an allocator backed by the given random source.
// Tests inject a seeded source for reproducible draws.
func NewAllocator(rng *rand.Rand) *Allocator {
	return &Allocator{rng: rng}
}

// Pick draws a color whose hue is not in the used set, retrying up to
// the attempt bound. The saturation/lightness band keeps every draw
// readable against the dark surface.
func (a *Allocator) Pick(used map[int]bool) core.Color {
	var c core.Color
	for i := 0; i < constants.ColorDrawAttempts; i++ {
		c = a.draw()
		if !used[c.Hue] {
			return c
		}
	}
	return c
}

func (a *Allocator) draw() core.Color {
	return core.Color{
		Hue:        a.rng.Intn(constants.HueDegrees),
		Saturation: constants.SaturationMin + a.rng.Float64()*(constants.SaturationMax-constants.SaturationMin),
		Lightness:  constants.LightnessMin + a.rng.Float64()*(constants.LightnessMax-constants.LightnessMin),
	}
}
