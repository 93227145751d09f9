package constants

import "time"

// Audio hardware settings
const (
	AudioSampleRate = 48000

	// AudioBufferDuration determines speaker latency. 100ms keeps the
	// one-shot effects responsive without underruns on slow hosts.
	AudioBufferDuration = 100 * time.Millisecond
)

// Effect durations
const (
	JoinSoundDuration = 120 * time.Millisecond
	DropSoundDuration = 150 * time.Millisecond
	WinSoundDuration  = 700 * time.Millisecond
)
