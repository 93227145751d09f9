package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundJoin SoundType = iota // New contact registered
	SoundDrop                  // Contact removed with survivors remaining
	SoundWin                   // Sole survivor declared
	SoundTypeCount
)
