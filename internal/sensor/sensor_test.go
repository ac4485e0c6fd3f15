package sensor

import (
	"testing"
	"time"
)

// fakeDevice is a scripted device for exercising the Reader.
type fakeDevice struct {
	samples []Sample
	pos     int
	status  Status
	closed  bool
}

func (f *fakeDevice) Sample() Sample {
	if f.pos >= len(f.samples) {
		return NoReading()
	}
	s := f.samples[f.pos]
	f.pos++
	return s
}

func (f *fakeDevice) Status() Status { return f.status }
func (f *fakeDevice) Close() error   { f.closed = true; return nil }

func TestLatestLastValueWins(t *testing.T) {
	var l Latest

	if _, _, ok := l.Get(); ok {
		t.Error("empty buffer should report not set")
	}

	l.Put(Reading(100))
	l.Put(Reading(200))
	l.Put(Reading(300))

	s, _, ok := l.Get()
	if !ok {
		t.Fatal("buffer should be set after Put")
	}
	if s.Depth != 300 {
		t.Errorf("Get() depth = %d, expected last-written 300", s.Depth)
	}
}

func TestLatestReset(t *testing.T) {
	var l Latest
	l.Put(Reading(42))
	l.Reset()

	if _, _, ok := l.Get(); ok {
		t.Error("Reset() should clear the set flag")
	}
}

func TestLatestTimestamps(t *testing.T) {
	var l Latest
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	l.PutAt(Reading(7), at)

	_, got, ok := l.Get()
	if !ok || !got.Equal(at) {
		t.Errorf("Get() timestamp = %v, expected %v", got, at)
	}
}

func TestReaderClampsToRange(t *testing.T) {
	dev := &fakeDevice{samples: []Sample{
		Reading(-50),
		Reading(2000),
		Reading(512),
	}}
	r := NewReader(dev, 1024, 5)

	if s := r.Sample(); s.Depth != 0 {
		t.Errorf("negative depth clamped to %d, expected 0", s.Depth)
	}
	if s := r.Sample(); s.Depth != 1024 {
		t.Errorf("overrange depth clamped to %d, expected 1024", s.Depth)
	}
	if s := r.Sample(); s.Depth != 512 {
		t.Errorf("in-range depth = %d, expected 512", s.Depth)
	}
}

func TestReaderMissReturnsMarker(t *testing.T) {
	dev := &fakeDevice{samples: []Sample{
		Reading(512),
		NoReading(),
	}}
	r := NewReader(dev, 1024, 5)

	r.Sample()
	s := r.Sample()
	if s.OK {
		t.Error("miss should return the no-reading marker")
	}
	if got := r.LastGood(); !got.OK || got.Depth != 512 {
		t.Errorf("LastGood() = %+v, expected 512", got)
	}
}

func TestReaderStatusTransitions(t *testing.T) {
	samples := []Sample{Reading(100)}
	for i := 0; i < 10; i++ {
		samples = append(samples, NoReading())
	}
	samples = append(samples, Reading(200))

	dev := &fakeDevice{samples: samples}
	r := NewReader(dev, 1024, 3)

	r.Sample()
	if got := r.Status(); got != StatusOK {
		t.Errorf("status after good sample = %v, expected ok", got)
	}

	// First two misses are transient
	r.Sample()
	r.Sample()
	if got := r.Status(); got != StatusNoData {
		t.Errorf("status after 2 misses = %v, expected no-data", got)
	}

	// Third consecutive miss crosses the threshold
	r.Sample()
	if got := r.Status(); got != StatusUnavailable {
		t.Errorf("status after 3 misses = %v, expected unavailable", got)
	}

	// Drain the remaining misses, then one good sample restores OK
	for i := 0; i < 7; i++ {
		r.Sample()
	}
	r.Sample()
	if got := r.Status(); got != StatusOK {
		t.Errorf("status after recovery = %v, expected ok", got)
	}
}

func TestReaderReflectsDeviceUnavailable(t *testing.T) {
	dev := &fakeDevice{status: StatusUnavailable}
	r := NewReader(dev, 1024, 100)

	// Even below the miss threshold, a dead device is reported as such.
	r.Sample()
	if got := r.Status(); got != StatusUnavailable {
		t.Errorf("Status() = %v, expected unavailable from device", got)
	}
}

func TestReaderCloseClosesDevice(t *testing.T) {
	dev := &fakeDevice{}
	r := NewReader(dev, 1024, 3)
	if err := r.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}
	if !dev.closed {
		t.Error("Close() should close the underlying device")
	}
}

func TestParseDepthTakesNewestValue(t *testing.T) {
	tests := []struct {
		name  string
		msg   string
		want  int
		valid bool
	}{
		{"single value", "512", 512, true},
		{"newline separated, last wins", "100\n200\n300", 300, true},
		{"trailing newline", "640\n", 640, true},
		{"garbage", "not-a-number", 0, false},
		{"empty", "", 0, false},
		{"trailing garbage falls back", "256\nxyz", 256, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := parseDepth([]byte(tc.msg))
			if ok != tc.valid {
				t.Fatalf("parseDepth(%q) ok = %v, expected %v", tc.msg, ok, tc.valid)
			}
			if ok && got != tc.want {
				t.Errorf("parseDepth(%q) = %d, expected %d", tc.msg, got, tc.want)
			}
		})
	}
}

func TestDemoDeviceStaysInRange(t *testing.T) {
	d := NewDemoDevice(1024, 8*time.Second)
	base := time.Now()
	for i := 0; i < 1000; i++ {
		offset := time.Duration(i) * 10 * time.Millisecond
		d.now = func() time.Time { return base.Add(offset) }
		s := d.Sample()
		if !s.OK {
			t.Fatal("demo device should always have a reading")
		}
		if s.Depth < 0 || s.Depth > 1024 {
			t.Fatalf("demo depth %d out of [0, 1024]", s.Depth)
		}
	}
}
