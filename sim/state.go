// Package sim holds the mutable simulation state and its transition rules.
// A single goroutine owns a State and mutates it from the event loop; the
// render pass only reads it.
package sim

import "time"

const (
	// DefaultScale is the world span mapped onto the smaller viewport
	// dimension at startup.
	DefaultScale = 100.0

	// DefaultPeriod is the wall-clock seconds per full orbit at startup.
	DefaultPeriod = 8.0

	// MaxEccentricity keeps the orbit elliptical; at 1.0 the conic law
	// degenerates and Kepler's equation stops converging.
	MaxEccentricity = 0.99

	// EccentricityStep is the per-keypress eccentricity increment.
	EccentricityStep = 0.1

	zoomFactor = 1.1
)

// State is the single mutable simulation object.
type State struct {
	Playing      bool
	Scale        float64
	Phase        float64
	Period       float64
	Eccentricity float64
	CenterMoon   bool

	lastTick time.Time
}

// NewState returns a paused state with default scale and period, a circular
// orbit, and the camera framing the Earth.
func NewState() *State {
	return &State{
		Scale:  DefaultScale,
		Period: DefaultPeriod,
	}
}

// Tick advances the phase by the interval since the previous tick, expressed
// as a fraction of the orbital period. The first tick after a resume only
// records the baseline timestamp. No-op while paused.
//
// Only the upper bound of phase is wrapped. The delta is never negative
// under a monotonic clock, so phase cannot leave [0, 1) from below; reverse
// playback would need a lower-bound wrap added here.
func (s *State) Tick(now time.Time) {
	if !s.Playing {
		return
	}
	if !s.lastTick.IsZero() {
		s.Phase += now.Sub(s.lastTick).Seconds() / s.Period
		for s.Phase > 1.0 {
			s.Phase -= 1.0
		}
	}
	s.lastTick = now
}

// TogglePlay flips between playing and paused. Pausing clears the tick
// baseline so the paused interval is not applied as a phase jump on resume.
func (s *State) TogglePlay() {
	s.Playing = !s.Playing
	if !s.Playing {
		s.lastTick = time.Time{}
	}
}

// AdjustEccentricity shifts the eccentricity by delta, clamping the result
// to [0, MaxEccentricity]. It reports whether the value actually changed.
func (s *State) AdjustEccentricity(delta float64) bool {
	e := s.Eccentricity + delta
	if e > MaxEccentricity {
		e = MaxEccentricity
	}
	if e < 0 {
		e = 0
	}
	changed := e != s.Eccentricity
	s.Eccentricity = e
	return changed
}

// ZoomIn shrinks the world span mapped onto the viewport.
func (s *State) ZoomIn() {
	s.Scale /= zoomFactor
}

// ZoomOut widens the world span mapped onto the viewport. Scale carries no
// clamp in either direction; sustained zooming can reach extreme values.
func (s *State) ZoomOut() {
	s.Scale *= zoomFactor
}

// ToggleCenterMoon flips the camera between framing the Earth and following
// the Moon.
func (s *State) ToggleCenterMoon() {
	s.CenterMoon = !s.CenterMoon
}
