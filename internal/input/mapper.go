// Package input converts raw depth samples into the player's vertical
// position. The mapping is a pure function of its inputs, which keeps the
// simulation reproducible under test.
package input

import (
	"github.com/probelab/depthrun/internal/core"
	"github.com/probelab/depthrun/internal/sensor"
)

// Mapper rescales a clamped depth sample from [0, maxDepth] onto the
// player's allowed vertical travel range [minY, maxY], then applies
// exponential smoothing to suppress single-sample jitter:
//
//	out = prev + alpha*(target - prev)
//
// alpha in (0, 1]; alpha == 1 disables smoothing.
type Mapper struct {
	maxDepth   int
	minY, maxY float64
	alpha      float64
}

// NewMapper creates a mapper for the given depth range and travel band.
// Arguments are assumed validated by config.RunnerConfig.Validate.
func NewMapper(maxDepth int, minY, maxY, alpha float64) *Mapper {
	return &Mapper{
		maxDepth: maxDepth,
		minY:     minY,
		maxY:     maxY,
		alpha:    alpha,
	}
}

// Map converts a sample into the next vertical position given the previous
// one. The no-reading marker holds the previous position unchanged.
func (m *Mapper) Map(s sensor.Sample, prev float64) float64 {
	if !s.OK {
		return prev
	}
	target := m.Target(s.Depth)
	return prev + m.alpha*(target-prev)
}

// Target returns the unsmoothed travel position for a depth value.
// Depth 0 maps to maxY (bottom) and maxDepth to minY (top), mirroring the
// device's fully-retracted-to-fully-inserted orientation.
func (m *Mapper) Target(depth int) float64 {
	depth = core.Clamp(depth, 0, m.maxDepth)
	frac := float64(depth) / float64(m.maxDepth)
	return m.maxY - frac*(m.maxY-m.minY)
}

// Travel returns the travel band [minY, maxY].
func (m *Mapper) Travel() (minY, maxY float64) {
	return m.minY, m.maxY
}
