package orbit

import (
	"math"
	"testing"
)

func TestMeanAnomalyNormalization(t *testing.T) {
	cases := []struct {
		phase float64
		want  float64
	}{
		{0.0, 0.0},
		{0.25, math.Pi / 2},
		{0.5, math.Pi},
		{0.75, -math.Pi / 2},
		{0.99, -0.02 * math.Pi},
	}
	for _, c := range cases {
		got := MeanAnomaly(c.phase)
		if math.Abs(got-c.want) > 1e-12 {
			t.Errorf("MeanAnomaly(%v) = %v, want %v", c.phase, got, c.want)
		}
		if got > math.Pi || got <= -math.Pi {
			t.Errorf("MeanAnomaly(%v) = %v outside (-π, π]", c.phase, got)
		}
	}
}

func TestCircularOrbitIdentity(t *testing.T) {
	// For e = 0 the three anomalies coincide.
	for phase := 0.0; phase < 1.0; phase += 0.05 {
		m := MeanAnomaly(phase)
		E := SolveKepler(m, 0)
		nu := TrueAnomaly(E, 0)
		if math.Abs(E-m) > 1e-8 {
			t.Errorf("phase %v: eccentric anomaly %v != mean anomaly %v", phase, E, m)
		}
		if math.Abs(nu-m) > 1e-8 {
			t.Errorf("phase %v: true anomaly %v != mean anomaly %v", phase, nu, m)
		}
	}
}

func TestKeplerRoundTrip(t *testing.T) {
	// Recomputing M from the solved E must reproduce the input within the
	// solver's stopping tolerance.
	for _, e := range []float64{0.1, 0.3, 0.5, 0.7, 0.9} {
		for phase := 0.0; phase < 1.0; phase += 0.01 {
			m := MeanAnomaly(phase)
			E := SolveKepler(m, e)
			if back := MeanFromEccentric(E, e); math.Abs(back-m) > 1e-10 {
				t.Errorf("e=%v phase=%v: round-trip mean anomaly %v, want %v", e, phase, back, m)
			}
		}
	}
}

func TestKeplerHighEccentricity(t *testing.T) {
	// Dense sweep of the whole phase domain near the clamp ceiling. The
	// stretch around phase 0.93 at e=0.99 needs well over a hundred
	// iterations when the solver starts at the mean anomaly, so this
	// pins the high-eccentricity starting point.
	for _, e := range []float64{0.9, 0.95, 0.99} {
		for phase := 0.0; phase < 1.0; phase += 0.001 {
			m := MeanAnomaly(phase)
			E := SolveKepler(m, e)
			if back := MeanFromEccentric(E, e); math.Abs(back-m) > 1e-10 {
				t.Errorf("e=%v phase=%v: round-trip mean anomaly %v, want %v", e, phase, back, m)
			}
		}
	}
}

func TestKeplerKnownRoot(t *testing.T) {
	// e = 0.5, phase = 0.25 → M = π/2. No closed form; the root sits near
	// E ≈ 2.0210.
	E := SolveKepler(math.Pi/2, 0.5)
	if math.Abs(E-2.0210) > 1e-3 {
		t.Errorf("eccentric anomaly = %v, want ≈ 2.0210", E)
	}
	if back := MeanFromEccentric(E, 0.5); math.Abs(back-math.Pi/2) > 1e-10 {
		t.Errorf("residual mean anomaly %v, want π/2", back)
	}
}

func TestRadiusPositiveFinite(t *testing.T) {
	for e := 0.0; e <= 0.99; e += 0.09 {
		for phi := 0.0; phi < 2*math.Pi; phi += 0.1 {
			r := Radius(MoonOrbitRadius, phi, e)
			if r <= 0 || math.IsInf(r, 0) || math.IsNaN(r) {
				t.Fatalf("Radius(p, %v, %v) = %v, want positive finite", phi, e, r)
			}
		}
	}
}

func TestPositionCircular(t *testing.T) {
	// e = 0: constant radius, position on the circle of radius p.
	for phase := 0.0; phase < 1.0; phase += 0.1 {
		eph := Position(phase, 0)
		if math.Abs(eph.Radius-MoonOrbitRadius) > 1e-9 {
			t.Errorf("phase %v: radius %v, want %v", phase, eph.Radius, MoonOrbitRadius)
		}
		d := math.Hypot(eph.X, eph.Y)
		if math.Abs(d-MoonOrbitRadius) > 1e-9 {
			t.Errorf("phase %v: |position| = %v, want %v", phase, d, MoonOrbitRadius)
		}
	}
}

func TestPositionSignConvention(t *testing.T) {
	// Periapsis (phase 0) projects to -x; a quarter period later the moon
	// has positive y for any eccentricity.
	eph := Position(0, 0.5)
	if eph.X >= 0 || math.Abs(eph.Y) > 1e-9 {
		t.Errorf("periapsis position = (%v, %v), want on -x axis", eph.X, eph.Y)
	}
	eph = Position(0.25, 0.5)
	if eph.Y <= 0 {
		t.Errorf("quarter-period position = (%v, %v), want y > 0", eph.X, eph.Y)
	}
}
