// Package orbit computes the Moon's position on its Keplerian two-body
// orbit. All functions are pure; the simulation state feeds them a phase and
// an eccentricity each frame.
package orbit

import "math"

// MoonOrbitRadius is the semi-latus rectum of the orbit in world units. It
// fixes the orbit size; eccentricity alone controls its shape.
const MoonOrbitRadius = 40.0

// Radius evaluates the focus-centered conic law r = p / (1 + e*cos(φ)).
// Finite and positive for e in [0, 0.99].
func Radius(p, phi, e float64) float64 {
	return p / (1 + e*math.Cos(phi))
}

// Project converts polar orbit coordinates to drawing-plane Cartesian.
// The negated x puts periapsis on the +x side of the screen.
func Project(r, phi float64) (x, y float64) {
	return -r * math.Cos(phi), r * math.Sin(phi)
}

// Ephemeris is the Moon's state at one instant, derived fresh each frame.
type Ephemeris struct {
	X, Y        float64
	TrueAnomaly float64
	Radius      float64
}

// Position solves the orbit for the given phase and eccentricity: mean
// anomaly, Kepler's equation, true anomaly, conic radius, then Cartesian
// projection.
func Position(phase, e float64) Ephemeris {
	m := MeanAnomaly(phase)
	E := SolveKepler(m, e)
	nu := TrueAnomaly(E, e)
	r := Radius(MoonOrbitRadius, nu, e)
	x, y := Project(r, nu)
	return Ephemeris{X: x, Y: y, TrueAnomaly: nu, Radius: r}
}
