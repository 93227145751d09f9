package audio

import (
	"sync/atomic"

	"github.com/lixenwraith/last-touch/core"
)

// Player defines the minimal audio interface used by game handlers.
type Player interface {
	Play(core.SoundType) bool
	ToggleMute() bool
	IsMuted() bool
}

// Service wraps the SoundManager with graceful degradation: when no
// audio backend is available the service disables itself and every
// Play becomes a silent no-op. A playback failure never reaches game
// state.
type Service struct {
	manager  *SoundManager
	disabled atomic.Bool
	muted    atomic.Bool
}

// NewService creates a new audio service.
func NewService() *Service {
	return &Service{manager: NewSoundManager()}
}

// Init detects the audio backend. Sets the disabled flag on failure;
// no error is returned, the game runs without sound.
func (s *Service) Init(muted bool) {
	s.muted.Store(muted)
	if err := s.manager.Initialize(); err != nil {
		s.disabled.Store(true)
	}
}

// Stop silences and releases the backend.
func (s *Service) Stop() {
	if !s.disabled.Load() {
		s.manager.Cleanup()
	}
}

// Play mixes the effect for the given sound type. Fire-and-forget.
func (s *Service) Play(st core.SoundType) bool {
	if s.disabled.Load() || s.muted.Load() {
		return false
	}
	return s.manager.Play(st)
}

// ToggleMute flips the mute state and returns the new value.
func (s *Service) ToggleMute() bool {
	for {
		old := s.muted.Load()
		if s.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// IsMuted returns the current mute state.
func (s *Service) IsMuted() bool {
	return s.muted.Load()
}

// IsDisabled returns true if audio is unavailable.
func (s *Service) IsDisabled() bool {
	return s.disabled.Load()
}
