package events

import "github.com/lixenwraith/last-touch/core"

// ContactPayload accompanies EventContactAdded and EventContactRemoved.
type ContactPayload struct {
	ID        int
	Color     core.Color
	Survivors int // registry size after the mutation
}

// WinnerPayload accompanies EventWinnerDeclared.
type WinnerPayload struct {
	ID    int
	Color core.Color
}
