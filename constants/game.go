package constants

import "time"

// Elimination timing
const (
	// EliminationInterval is the cadence of the roulette timer.
	// The countdown restarts from zero on every contact add or remove.
	EliminationInterval = 4000 * time.Millisecond

	// MinContactsForElimination is the registry size at which the
	// elimination timer arms. Below this the game sits idle.
	MinContactsForElimination = 2
)

// Color allocation
const (
	// ColorDrawAttempts bounds the retry loop when drawing a hue that
	// does not collide with any in-use contact color. Uniqueness is
	// advisory: on exhaustion the colliding draw is kept.
	ColorDrawAttempts = 10

	// HueDegrees is the size of the hue draw space.
	HueDegrees = 360

	// Saturation/lightness band for contact colors. Narrow enough that
	// hue alone separates contacts visually.
	SaturationMin = 0.65
	SaturationMax = 0.90
	LightnessMin  = 0.50
	LightnessMax  = 0.65
)

// Frame timing
const (
	// DefaultFrameRate drives render and event dispatch.
	DefaultFrameRate = 30
)
