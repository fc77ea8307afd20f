package orbit

import "math"

// Newton-Raphson stopping tolerance on the correction step, and the
// iteration cap. With the eccentricity-dependent starting point below,
// convergence takes a handful of steps anywhere in the supported range; the
// cap is only a backstop against inputs outside [0, 0.99].
const (
	keplerTolerance  = 1e-10
	keplerMaxIterate = 256

	// Above this eccentricity the iteration starts at ±π instead of the
	// mean anomaly. Near e=1 the derivative 1-e*cos(E) is tiny around
	// E=0, and a start near zero can fling the first step far outside
	// (-π, π] and leave the iteration wandering for over a hundred
	// steps. From ±π the residual is convex down to the root, so the
	// iterates descend monotonically.
	highEccentricity = 0.8
)

// MeanAnomaly converts an orbital phase in [0, 1) to a mean anomaly
// normalized into (-π, π].
func MeanAnomaly(phase float64) float64 {
	m := phase * 2 * math.Pi
	if m > math.Pi {
		m -= 2 * math.Pi
	}
	return m
}

// SolveKepler finds the eccentric anomaly E satisfying Kepler's equation
// E - e*sin(E) = m via Newton-Raphson iteration. The iteration starts from
// E = m, or from ±π near the eccentricity ceiling.
func SolveKepler(m, e float64) float64 {
	if e == 0 {
		return m
	}
	E := m
	if e >= highEccentricity {
		E = math.Copysign(math.Pi, m)
	}
	for i := 0; i < keplerMaxIterate; i++ {
		step := (E - e*math.Sin(E) - m) / (1 - e*math.Cos(E))
		E -= step
		if math.Abs(step) <= keplerTolerance {
			break
		}
	}
	return E
}

// TrueAnomaly converts an eccentric anomaly to the true anomaly, the angle
// of the body from periapsis as seen from the focus.
func TrueAnomaly(E, e float64) float64 {
	return math.Atan2(math.Sqrt(1-e*e)*math.Sin(E), math.Cos(E)-e)
}

// MeanFromEccentric recovers the mean anomaly from an eccentric anomaly.
// Inverse of SolveKepler, useful for verifying a solved root.
func MeanFromEccentric(E, e float64) float64 {
	return E - e*math.Sin(E)
}
