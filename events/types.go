package events

import (
	"time"
)

// EventType represents the type of game event
type EventType int

const (
	// EventPointer carries one raw pointer event from the host input
	// adapter. Trigger: input goroutine
	// Consumer: game.Controller | Payload: input.PointerEvent
	EventPointer EventType = iota

	// EventContactAdded signals a new contact entered the registry
	// Trigger: Controller on first down for an id
	// Consumer: AudioHandler, LogHandler | Payload: *ContactPayload
	EventContactAdded

	// EventContactRemoved signals a contact left with survivors remaining
	// Trigger: Controller on release or elimination tick
	// Consumer: AudioHandler, LogHandler | Payload: *ContactPayload
	// Not emitted for the removal that empties the registry.
	EventContactRemoved

	// EventWinnerDeclared signals the sole survivor of an elimination run
	// Trigger: Controller when an elimination tick leaves exactly one
	// Consumer: AudioHandler, LogHandler | Payload: *WinnerPayload
	EventWinnerDeclared

	// EventGameReset signals the registry emptied and state cleared
	// Trigger: Controller when size reaches 0
	// Consumer: LogHandler | Payload: nil
	EventGameReset

	// EventMuteToggle signals a runtime mute request
	// Trigger: input adapter ('m' key)
	// Consumer: AudioHandler | Payload: nil
	EventMuteToggle

	// EventResize signals a host surface size change
	// Trigger: input adapter
	// Consumer: engine.Loop | Payload: nil
	EventResize

	// EventQuit signals a shutdown request
	// Trigger: input adapter (Esc, Ctrl-C)
	// Consumer: engine.Loop | Payload: nil
	EventQuit
)

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type      EventType
	Payload   any
	Timestamp time.Time
}
