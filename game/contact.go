package game

import (
	"time"

	"github.com/lixenwraith/last-touch/core"
)

// Contact is one active pointer on the surface.
type Contact struct {
	ID   int
	X, Y int

	// Color is assigned at creation and immutable for the contact's
	// lifetime.
	Color core.Color

	// CreatedAt is informational only; elimination ignores it.
	CreatedAt time.Time
}
