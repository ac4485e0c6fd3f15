package runner

import (
	"math/rand"

	"github.com/probelab/depthrun/internal/config"
)

// ObstacleID identifies an obstacle within a session. Identifiers are
// assigned from a monotonic counter and never reused.
type ObstacleID uint64

// Obstacle is a moving hazard the player must dodge.
type Obstacle struct {
	ID     ObstacleID
	X      float64 // Left edge in field units
	Y      float64 // Top edge in field units
	W      float64
	H      float64
	Passed bool // Whether the player has passed this obstacle (for scoring)
}

// Box returns the obstacle's collision box.
func (o Obstacle) Box() Box {
	return Box{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

// Right returns the X coordinate of the obstacle's trailing edge.
func (o Obstacle) Right() float64 { return o.X + o.W }

// Field owns the set of live obstacles: it spawns them at the right edge,
// advances them left, and retires them past the left boundary. Pure
// simulation state; randomness comes only from the injected seed.
type Field struct {
	obstacles []Obstacle
	rng       *rand.Rand
	nextID    ObstacleID
	width     float64
	height    float64 // Playable band height; spawned obstacles fit within it
	cfg       config.ObstacleConfig

	spawnIn float64 // Seconds until the next spawn attempt
}

// NewField creates an empty field of the given dimensions.
func NewField(seed int64, width, height float64, cfg config.ObstacleConfig) *Field {
	f := &Field{
		obstacles: make([]Obstacle, 0, 8),
		width:     width,
		height:    height,
		cfg:       cfg,
	}
	f.Reset(seed)
	return f
}

// Reset clears all obstacles and reseeds the random source. Obstacle
// identifiers keep counting up across resets within a session.
func (f *Field) Reset(seed int64) {
	f.obstacles = f.obstacles[:0]
	f.rng = rand.New(rand.NewSource(seed))
	f.spawnIn = f.cfg.SpawnIntervalMin
}

// Advance shifts every obstacle left by speed*dt and retires those whose
// trailing edge has crossed the field's left boundary.
func (f *Field) Advance(dt, speed float64) {
	dx := speed * dt
	alive := f.obstacles[:0]
	for _, ob := range f.obstacles {
		ob.X -= dx
		if ob.Right() > 0 {
			alive = append(alive, ob)
		}
	}
	f.obstacles = alive
}

// MaybeSpawn counts down the spawn timer and, when it elapses, spawns a
// new obstacle at the right edge with a random size and vertical position
// within the playable band. The timer re-arms with a value drawn uniformly
// from [SpawnIntervalMin, intervalMax]; intervalMax lets the caller tighten
// the cadence as difficulty rises without undercutting the minimum.
func (f *Field) MaybeSpawn(dt, intervalMax float64) {
	f.spawnIn -= dt
	if f.spawnIn > 0 {
		return
	}

	// Never spawn on top of an existing obstacle. The minimum interval
	// already guarantees clearance for valid configurations; this guard
	// covers the timer underflowing on a stalled tick.
	if n := len(f.obstacles); n > 0 && f.obstacles[n-1].Right() >= f.width {
		return
	}

	w := f.randRange(f.cfg.MinWidth, f.cfg.MaxWidth)
	h := f.randRange(f.cfg.MinHeight, f.cfg.MaxHeight)
	maxY := f.height - h
	if maxY < 0 {
		maxY = 0
	}
	y := f.randRange(0, maxY)

	f.nextID++
	f.obstacles = append(f.obstacles, Obstacle{
		ID: f.nextID,
		X:  f.width,
		Y:  y,
		W:  w,
		H:  h,
	})

	if intervalMax < f.cfg.SpawnIntervalMin {
		intervalMax = f.cfg.SpawnIntervalMin
	}
	f.spawnIn = f.randRange(f.cfg.SpawnIntervalMin, intervalMax)
}

// randRange returns a uniform value in [lo, hi].
func (f *Field) randRange(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + f.rng.Float64()*(hi-lo)
}

// Obstacles returns the live obstacles ordered by spawn time. The slice is
// a read-only view; callers must not mutate it.
func (f *Field) Obstacles() []Obstacle {
	return f.obstacles
}

// CrossBehind marks obstacles whose trailing edge has moved past playerLeft
// as passed and returns how many were newly marked this call.
func (f *Field) CrossBehind(playerLeft float64) int {
	passed := 0
	for i := range f.obstacles {
		if !f.obstacles[i].Passed && f.obstacles[i].Right() < playerLeft {
			f.obstacles[i].Passed = true
			passed++
		}
	}
	return passed
}
