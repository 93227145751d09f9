package game

import (
	"math/rand"
	"testing"

	"github.com/lixenwraith/last-touch/constants"
)

func TestAllocatorAvoidsUsedHues(t *testing.T) {
	a := NewAllocator(rand.New(rand.NewSource(42)))

	used := make(map[int]bool)
	for i := 0; i < 20; i++ {
		c := a.Pick(used)
		if used[c.Hue] {
			t.Fatalf("Draw %d collided on hue %d with only %d hues in use", i, c.Hue, len(used))
		}
		used[c.Hue] = true
	}
}

func TestAllocatorBandBounds(t *testing.T) {
	a := NewAllocator(rand.New(rand.NewSource(43)))

	for i := 0; i < 100; i++ {
		c := a.Pick(nil)
		if c.Hue < 0 || c.Hue >= constants.HueDegrees {
			t.Fatalf("Hue %d outside draw space", c.Hue)
		}
		if c.Saturation < constants.SaturationMin || c.Saturation > constants.SaturationMax {
			t.Fatalf("Saturation %v outside band", c.Saturation)
		}
		if c.Lightness < constants.LightnessMin || c.Lightness > constants.LightnessMax {
			t.Fatalf("Lightness %v outside band", c.Lightness)
		}
	}
}

func TestAllocatorFallsBackWhenExhausted(t *testing.T) {
	a := NewAllocator(rand.New(rand.NewSource(44)))

	// Every hue in use: all draws collide, the last one is kept anyway.
	used := make(map[int]bool, constants.HueDegrees)
	for h := 0; h < constants.HueDegrees; h++ {
		used[h] = true
	}

	c := a.Pick(used)
	if c.Hue < 0 || c.Hue >= constants.HueDegrees {
		t.Errorf("Fallback draw outside hue space: %d", c.Hue)
	}
}

func TestAllocatorSeededReproducibility(t *testing.T) {
	a := NewAllocator(rand.New(rand.NewSource(99)))
	b := NewAllocator(rand.New(rand.NewSource(99)))

	for i := 0; i < 10; i++ {
		if ca, cb := a.Pick(nil), b.Pick(nil); ca != cb {
			t.Fatalf("Same seed diverged at draw %d: %v vs %v", i, ca, cb)
		}
	}
}
