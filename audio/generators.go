package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// BlipGenerator generates a short rising blip for contact arrival.
type BlipGenerator struct {
	sr  beep.SampleRate
	pos int
}

// NewBlipGenerator creates a blip sound generator.
func NewBlipGenerator(sr beep.SampleRate) *BlipGenerator {
	return &BlipGenerator{sr: sr}
}

func (g *BlipGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	dur := float64(g.sr.N(120 * time.Millisecond))
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		progress := math.Min(float64(g.pos)/dur, 1.0)

		// Sweep 440Hz up to 880Hz across the blip
		freq := 440 + 440*progress

		// Quick attack, linear release
		envelope := math.Min(float64(g.pos)/(float64(g.sr)*0.01), 1.0) * (1.0 - progress*0.7)
		sample := 0.25 * envelope * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BlipGenerator) Err() error {
	return nil
}

// BuzzGenerator generates a low-pitch buzz for contact removal.
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBuzzGenerator creates a buzz sound generator.
func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Stacked harmonics for a harsh buzz
		sample := 0.0
		sample += 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)

		// Envelope to fade in
		envelope := math.Min(float64(g.pos)/float64(g.sr)/0.02, 1.0)
		sample *= envelope * 0.2

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}

// FanfareGenerator generates a rising three-note arpeggio for the
// winner declaration.
type FanfareGenerator struct {
	sr  beep.SampleRate
	pos int
}

// NewFanfareGenerator creates a fanfare sound generator.
func NewFanfareGenerator(sr beep.SampleRate) *FanfareGenerator {
	return &FanfareGenerator{sr: sr}
}

// C5, E5, G5, then the full triad held.
var fanfareNotes = []float64{523.25, 659.25, 783.99}

func (g *FanfareGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	noteLen := g.sr.N(150 * time.Millisecond)
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		note := g.pos / noteLen

		var sample float64
		if note < len(fanfareNotes) {
			notePos := float64(g.pos%noteLen) / float64(noteLen)
			envelope := math.Min(notePos/0.05, 1.0) * (1.0 - notePos*0.3)
			sample = 0.3 * envelope * math.Sin(2*math.Pi*fanfareNotes[note]*t)
		} else {
			// Held triad with exponential decay
			held := float64(g.pos-noteLen*len(fanfareNotes)) / float64(g.sr)
			envelope := math.Exp(-held * 4)
			for _, f := range fanfareNotes {
				sample += 0.12 * envelope * math.Sin(2*math.Pi*f*t)
			}
		}

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *FanfareGenerator) Err() error {
	return nil
}
