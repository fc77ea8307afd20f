// Package audio plays short tone cues acknowledging input events.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// Cue identifies a distinct feedback tone.
type Cue int

const (
	// CueToggle acknowledges a play/pause or framing toggle.
	CueToggle Cue = iota
	// CueAdjust acknowledges an accepted value adjustment.
	CueAdjust
	// CueClamp signals an adjustment rejected at a bound.
	CueClamp
)

var cueFreq = [...]float64{
	CueToggle: 660,
	CueAdjust: 880,
	CueClamp:  220,
}

const cueDuration = 50 * time.Millisecond

// Player emits sine cues through the speaker. A muted or failed Player stays
// usable and silent, so callers never branch on audio availability.
type Player struct {
	sampleRate beep.SampleRate
	enabled    bool
}

// NewPlayer initializes the speaker unless muted. An initialization error is
// returned for logging, alongside a usable silent player.
func NewPlayer(muted bool) (*Player, error) {
	p := &Player{sampleRate: beep.SampleRate(44100)}
	if muted {
		return p, nil
	}
	if err := speaker.Init(p.sampleRate, p.sampleRate.N(time.Second/10)); err != nil {
		return p, err
	}
	p.enabled = true
	return p, nil
}

// Play emits the cue without blocking. No-op when disabled.
func (p *Player) Play(c Cue) {
	if p == nil || !p.enabled || c < 0 || int(c) >= len(cueFreq) {
		return
	}
	tone, err := generators.SineTone(p.sampleRate, cueFreq[c])
	if err != nil {
		return
	}
	speaker.Play(beep.Take(p.sampleRate.N(cueDuration), tone))
}

// Close shuts down the speaker.
func (p *Player) Close() {
	if p != nil && p.enabled {
		speaker.Close()
	}
}
