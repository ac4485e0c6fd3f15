package sensor

import (
	"math"
	"time"
)

// DemoDevice is a synthetic device that sweeps a smooth sine wave across
// the full depth range. It allows keyboard-free local play and demos
// without hardware or the simulator.
type DemoDevice struct {
	maxDepth int
	period   time.Duration
	start    time.Time
	now      func() time.Time
}

// NewDemoDevice creates a demo device cycling over the given period.
func NewDemoDevice(maxDepth int, period time.Duration) *DemoDevice {
	return &DemoDevice{
		maxDepth: maxDepth,
		period:   period,
		start:    time.Now(),
		now:      time.Now,
	}
}

// Sample returns the waveform value for the current instant.
func (d *DemoDevice) Sample() Sample {
	elapsed := d.now().Sub(d.start).Seconds()
	phase := 2 * math.Pi * elapsed / d.period.Seconds()
	depth := int(float64(d.maxDepth) / 2 * (1 + math.Sin(phase)))
	return Reading(depth)
}

// Status always reports OK; the waveform never goes away.
func (d *DemoDevice) Status() Status {
	return StatusOK
}

// Close is a no-op.
func (d *DemoDevice) Close() error {
	return nil
}
