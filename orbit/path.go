package orbit

import "math"

// DefaultPathStep is the angular increment for sampling the orbit ellipse.
const DefaultPathStep = 0.01

// Segment is one straight piece of the sampled orbit polyline.
type Segment struct {
	X1, Y1 float64
	X2, Y2 float64
}

// PathSampler walks the orbit ellipse from φ = 0 to 2π in fixed angular
// steps, yielding consecutive line segments. It holds no precomputed data,
// so recreating one per frame when eccentricity changes costs nothing.
type PathSampler struct {
	ecc  float64
	step float64
	phi  float64
}

// NewPathSampler returns a sampler for the given eccentricity. A step of
// zero or less selects DefaultPathStep.
func NewPathSampler(ecc, step float64) *PathSampler {
	if step <= 0 {
		step = DefaultPathStep
	}
	return &PathSampler{ecc: ecc, step: step}
}

// Next returns the next segment of the sweep. The second result is false
// once the sweep has passed 2π; the final segment may overshoot 2π by less
// than one step, closing the polyline.
func (s *PathSampler) Next() (Segment, bool) {
	if s.phi >= 2*math.Pi {
		return Segment{}, false
	}
	r := Radius(MoonOrbitRadius, s.phi, s.ecc)
	x1, y1 := Project(r, s.phi)
	s.phi += s.step
	r = Radius(MoonOrbitRadius, s.phi, s.ecc)
	x2, y2 := Project(r, s.phi)
	return Segment{X1: x1, Y1: y1, X2: x2, Y2: y2}, true
}

// Reset rewinds the sweep to φ = 0 so the sampler can be reused.
func (s *PathSampler) Reset() {
	s.phi = 0
}
