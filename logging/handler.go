package logging

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/last-touch/events"
)

// Handler records game transitions on the diagnostics logger.
type Handler struct {
	log *zap.Logger
}

// NewHandler creates a logging event handler.
func NewHandler(log *zap.Logger) *Handler {
	return &Handler{log: log}
}

// HandleEvent implements events.Handler.
func (h *Handler) HandleEvent(ev events.GameEvent) {
	switch ev.Type {
	case events.EventContactAdded:
		p := ev.Payload.(*events.ContactPayload)
		h.log.Info("contact added",
			zap.Int("id", p.ID),
			zap.Int("hue", p.Color.Hue),
			zap.Int("size", p.Survivors),
		)
	case events.EventContactRemoved:
		p := ev.Payload.(*events.ContactPayload)
		h.log.Info("contact removed",
			zap.Int("id", p.ID),
			zap.Int("survivors", p.Survivors),
		)
	case events.EventWinnerDeclared:
		p := ev.Payload.(*events.WinnerPayload)
		h.log.Info("winner declared", zap.Int("id", p.ID))
	case events.EventGameReset:
		h.log.Info("surface cleared")
	}
}

// EventTypes implements events.Handler.
func (h *Handler) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventContactAdded,
		events.EventContactRemoved,
		events.EventWinnerDeclared,
		events.EventGameReset,
	}
}
