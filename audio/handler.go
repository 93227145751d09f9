package audio

import (
	"github.com/lixenwraith/last-touch/core"
	"github.com/lixenwraith/last-touch/events"
)

// Handler routes game transitions to sound effects. One effect per
// qualifying transition: contact added, contact removed with survivors
// remaining, winner declared.
type Handler struct {
	player Player
}

// NewHandler creates an audio event handler for the given player.
func NewHandler(player Player) *Handler {
	return &Handler{player: player}
}

// HandleEvent implements events.Handler.
func (h *Handler) HandleEvent(ev events.GameEvent) {
	if h.player == nil {
		return
	}

	switch ev.Type {
	case events.EventContactAdded:
		h.player.Play(core.SoundJoin)
	case events.EventContactRemoved:
		h.player.Play(core.SoundDrop)
	case events.EventWinnerDeclared:
		h.player.Play(core.SoundWin)
	case events.EventMuteToggle:
		h.player.ToggleMute()
	}
}

// EventTypes implements events.Handler.
func (h *Handler) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventContactAdded,
		events.EventContactRemoved,
		events.EventWinnerDeclared,
		events.EventMuteToggle,
	}
}
