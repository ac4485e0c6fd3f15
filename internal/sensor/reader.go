package sensor

import (
	"github.com/probelab/depthrun/internal/core"
)

// Reader wraps a Device with the sampling policy the session depends on:
// clamping to [0, MaxDepth], last-known-good tracking, and promotion of
// sustained silence to StatusUnavailable. It is not safe for concurrent
// use; the session calls it from the tick loop only.
type Reader struct {
	dev           Device
	maxDepth      int
	missThreshold int

	misses   int
	lastGood Sample
}

// NewReader creates a reader over the given device.
// missThreshold is the number of consecutive missed samples after which
// Status reports StatusUnavailable.
func NewReader(dev Device, maxDepth, missThreshold int) *Reader {
	return &Reader{
		dev:           dev,
		maxDepth:      maxDepth,
		missThreshold: missThreshold,
	}
}

// Sample polls the device once. On a miss it returns the no-reading marker
// so the caller holds its previous position; it never blocks and never
// fails the caller.
func (r *Reader) Sample() Sample {
	s := r.dev.Sample()
	if !s.OK {
		r.misses++
		return NoReading()
	}

	r.misses = 0
	s.Depth = core.Clamp(s.Depth, 0, r.maxDepth)
	r.lastGood = s
	return s
}

// Status reports the reader's view of device health. A single good sample
// fully restores StatusOK.
func (r *Reader) Status() Status {
	if r.dev.Status() == StatusUnavailable || r.misses >= r.missThreshold {
		return StatusUnavailable
	}
	if r.misses > 0 {
		return StatusNoData
	}
	return StatusOK
}

// LastGood returns the most recent valid sample, or the no-reading marker
// if none has arrived yet.
func (r *Reader) LastGood() Sample {
	return r.lastGood
}

// Close releases the underlying device.
func (r *Reader) Close() error {
	return r.dev.Close()
}
