package input

import (
	"testing"

	"github.com/probelab/depthrun/internal/sensor"
)

func TestMapperTargetEndpoints(t *testing.T) {
	m := NewMapper(1024, 2, 20, 1.0)

	tests := []struct {
		name  string
		depth int
		want  float64
	}{
		{"zero depth maps to bottom", 0, 20},
		{"full depth maps to top", 1024, 2},
		{"midpoint maps to middle", 512, 11},
		{"underflow clamps to bottom", -100, 20},
		{"overflow clamps to top", 5000, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := m.Target(tc.depth); got != tc.want {
				t.Errorf("Target(%d) = %v, expected %v", tc.depth, got, tc.want)
			}
		})
	}
}

func TestMapperStaysInTravelBand(t *testing.T) {
	m := NewMapper(1024, 2, 20, 0.25)

	pos := 11.0
	for depth := 0; depth <= 1024; depth++ {
		pos = m.Map(sensor.Reading(depth), pos)
		if pos < 2 || pos > 20 {
			t.Fatalf("position %v escaped [2, 20] at depth %d", pos, depth)
		}
	}
}

func TestMapperHoldsOnNoReading(t *testing.T) {
	m := NewMapper(1024, 2, 20, 0.25)

	prev := 13.7
	if got := m.Map(sensor.NoReading(), prev); got != prev {
		t.Errorf("Map(no-reading) = %v, expected previous position %v", got, prev)
	}
}

func TestMapperSmoothingConvergence(t *testing.T) {
	m := NewMapper(1024, 0, 100, 0.5)

	// Repeated identical samples converge on the target without overshoot.
	target := m.Target(256)
	pos := 0.0
	prevDist := target - pos
	for i := 0; i < 50; i++ {
		pos = m.Map(sensor.Reading(256), pos)
		dist := target - pos
		if dist < 0 {
			t.Fatalf("overshoot: position %v past target %v on step %d", pos, target, i)
		}
		if dist > prevDist {
			t.Fatalf("diverging: distance %v grew from %v on step %d", dist, prevDist, i)
		}
		prevDist = dist
	}
	if prevDist > 0.01 {
		t.Errorf("did not converge: still %v from target after 50 steps", prevDist)
	}
}

func TestMapperAlphaOneTracksExactly(t *testing.T) {
	m := NewMapper(1024, 2, 20, 1.0)

	pos := 2.0
	pos = m.Map(sensor.Reading(0), pos)
	if pos != 20 {
		t.Errorf("alpha=1 should jump straight to target, got %v", pos)
	}
}

func TestMapperDeterminism(t *testing.T) {
	run := func() []float64 {
		m := NewMapper(1024, 2, 20, 0.25)
		pos := 11.0
		out := make([]float64, 0, 64)
		for i := 0; i < 64; i++ {
			pos = m.Map(sensor.Reading(i*16), pos)
			out = append(out, pos)
		}
		return out
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("trace diverged at step %d: %v != %v", i, a[i], b[i])
		}
	}
}
