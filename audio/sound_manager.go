package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/last-touch/constants"
	"github.com/lixenwraith/last-touch/core"
)

const sampleRate = beep.SampleRate(constants.AudioSampleRate)

// SoundManager owns the speaker and mixes one-shot effects into it.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a new sound manager.
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(constants.AudioBufferDuration))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and silences the mixer.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Play mixes in the one-shot effect for the given sound type.
// Fire-and-forget: an uninitialized manager drops the request.
func (sm *SoundManager) Play(st core.SoundType) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return false
	}

	var streamer beep.Streamer
	switch st {
	case core.SoundJoin:
		streamer = take(constants.JoinSoundDuration, NewBlipGenerator(sampleRate))
	case core.SoundDrop:
		streamer = take(constants.DropSoundDuration, NewBuzzGenerator(sampleRate, 120))
	case core.SoundWin:
		streamer = take(constants.WinSoundDuration, NewFanfareGenerator(sampleRate))
	default:
		return false
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	return true
}

func take(d time.Duration, s beep.Streamer) beep.Streamer {
	return beep.Take(sampleRate.N(d), s)
}
