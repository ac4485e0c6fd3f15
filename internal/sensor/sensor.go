// Package sensor provides access to the depth-sensing device that drives
// the runner. Devices deliver raw samples through a single-slot,
// last-value-wins buffer; the Reader wraps a device with clamping, miss
// accounting, and the transient-vs-lost distinction the game relies on.
package sensor

// Sample is a single depth reading. A zero Sample is the "no reading"
// marker: OK is false and Depth is meaningless.
type Sample struct {
	Depth int  // Raw depth in [0, MaxDepth] once clamped by the Reader
	OK    bool // False when no reading is available this tick
}

// NoReading returns the explicit "no reading" marker.
func NoReading() Sample {
	return Sample{}
}

// Reading returns a valid sample carrying the given depth.
func Reading(depth int) Sample {
	return Sample{Depth: depth, OK: true}
}

// Status describes the health of a sensor source.
type Status int

const (
	// StatusOK means fresh samples are arriving.
	StatusOK Status = iota
	// StatusNoData means the device is present but briefly silent.
	// Recovered locally by holding the previous position.
	StatusNoData
	// StatusUnavailable means the device is gone or has been silent for
	// too long. Surfaced to the session so it can degrade, not crash.
	StatusUnavailable
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNoData:
		return "no-data"
	case StatusUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// Device is the narrow hardware interface the game consumes.
// Sample must return promptly: implementations buffer asynchronous
// acquisition behind Latest and never block the caller on I/O.
type Device interface {
	// Sample returns the most recent reading, or the no-reading marker
	// when none is fresh enough to use.
	Sample() Sample

	// Status distinguishes transient silence from device loss.
	Status() Status

	// Close releases the device.
	Close() error
}
