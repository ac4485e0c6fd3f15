// Package runner implements the depth-controlled endless runner simulation:
// obstacle field, collision detection, and the per-tick session state
// machine. The package holds pure game state; terminal rendering and the
// tick scheduler live in the platform layer.
package runner

import (
	"errors"
	"fmt"
	"sync"

	"github.com/probelab/depthrun/internal/config"
	"github.com/probelab/depthrun/internal/input"
	"github.com/probelab/depthrun/internal/sensor"
)

// ErrInvariant marks internal invariant violations. These are programming
// defects; a session that returns one refuses to continue.
var ErrInvariant = errors.New("invariant violation")

// Signal is a lifecycle command delivered asynchronously and applied at
// the next tick boundary, never mid-tick.
type Signal int

const (
	SignalStart Signal = iota // READY -> RUNNING
	SignalReset               // any state -> READY
)

// State is the session lifecycle state.
type State int

const (
	StateReady State = iota
	StateRunning
	StateGameOver
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Session is the per-episode state machine. It owns the player, the
// obstacle field, and the score; all mutation happens inside Tick on the
// caller's tick goroutine. Only Signal is safe to call concurrently.
type Session struct {
	cfg        config.RunnerConfig
	width      float64
	height     float64
	seed       int64
	reader     *sensor.Reader
	mapper     *input.Mapper
	field      *Field
	difficulty *config.DifficultyManager

	mu      sync.Mutex
	pending []Signal

	state    State
	degraded bool
	corrupt  bool
	score    int
	tick     uint64
	playerY  float64
}

// NewSession validates the configuration and builds a session around the
// given device. A validation failure is fatal and wraps
// config.ErrInvalidConfig; the session never reaches RUNNING with bad
// parameters.
func NewSession(cfg config.RunnerConfig, width, height float64, seed int64, dev sensor.Device) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: field dimensions must be positive, got %gx%g", config.ErrInvalidConfig, width, height)
	}
	if cfg.Player.X+cfg.Player.Width >= width || cfg.Player.Height >= height {
		return nil, fmt.Errorf("%w: player box does not fit a %gx%g field", config.ErrInvalidConfig, width, height)
	}

	s := &Session{
		cfg:        cfg,
		width:      width,
		height:     height,
		seed:       seed,
		reader:     sensor.NewReader(dev, cfg.Sensor.MaxDepth, cfg.Sensor.MissThreshold),
		mapper:     input.NewMapper(cfg.Sensor.MaxDepth, 0, height-cfg.Player.Height, cfg.Sensor.Alpha),
		field:      NewField(seed, width, height, cfg.Obstacles),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
	s.playerY = s.initialPlayerY()
	return s, nil
}

// Difficulty exposes the session's difficulty manager so callers can apply
// preset overrides before the first start.
func (s *Session) Difficulty() *config.DifficultyManager {
	return s.difficulty
}

// Signal queues a lifecycle command. Safe for concurrent use; the command
// takes effect at the start of the next Tick.
func (s *Session) Signal(sig Signal) {
	s.mu.Lock()
	s.pending = append(s.pending, sig)
	s.mu.Unlock()
}

// Tick advances the simulation by dt seconds. Lifecycle signals queued
// since the previous tick are applied first, then the per-tick pipeline
// runs: sample, map, move player, advance field, score crossings, detect
// collisions. A non-nil error means the session is unusable.
func (s *Session) Tick(dt float64) error {
	if s.corrupt {
		return fmt.Errorf("%w: session halted", ErrInvariant)
	}

	s.applySignals()

	if s.state != StateRunning {
		// READY and GAME_OVER hold a frozen snapshot.
		return nil
	}

	s.tick++

	sample := s.reader.Sample()
	s.degraded = s.reader.Status() == sensor.StatusUnavailable
	if !s.degraded {
		s.playerY = s.mapper.Map(sample, s.playerY)
	}

	speed := s.difficulty.Speed(s.cfg.Obstacles.Speed, s.score, int(s.tick))
	s.field.Advance(dt, speed)

	intervalMax := s.difficulty.SpawnIntervalMax(
		s.cfg.Obstacles.SpawnIntervalMax, s.cfg.Obstacles.SpawnIntervalMin,
		s.score, int(s.tick))
	s.field.MaybeSpawn(dt, intervalMax)

	if err := s.checkObstacleIDs(); err != nil {
		s.corrupt = true
		return err
	}

	player := s.PlayerBox()
	s.score += s.field.CrossBehind(player.X)

	if _, hit := FirstCollision(player, s.field.Obstacles()); hit {
		s.state = StateGameOver
	}
	return nil
}

// applySignals drains the pending queue in arrival order.
func (s *Session) applySignals() {
	s.mu.Lock()
	pending := s.pending
	s.pending = nil
	s.mu.Unlock()

	for _, sig := range pending {
		switch sig {
		case SignalStart:
			if s.state == StateReady {
				s.startEpisode()
			}
		case SignalReset:
			s.state = StateReady
		}
	}
}

// startEpisode resets per-episode state and enters RUNNING.
func (s *Session) startEpisode() {
	s.playerY = s.initialPlayerY()
	s.field.Reset(s.seed)
	s.score = 0
	s.tick = 0
	s.degraded = false
	s.state = StateRunning
}

// initialPlayerY is the mid-travel starting position.
func (s *Session) initialPlayerY() float64 {
	return (s.height - s.cfg.Player.Height) / 2
}

// checkObstacleIDs verifies identifiers are strictly increasing in field
// order, which holds iff no identifier was ever reused.
func (s *Session) checkObstacleIDs() error {
	obstacles := s.field.Obstacles()
	for i := 1; i < len(obstacles); i++ {
		if obstacles[i].ID <= obstacles[i-1].ID {
			return fmt.Errorf("%w: obstacle id %d not after %d", ErrInvariant, obstacles[i].ID, obstacles[i-1].ID)
		}
	}
	return nil
}

// PlayerBox returns the player's current collision box.
func (s *Session) PlayerBox() Box {
	return Box{X: s.cfg.Player.X, Y: s.playerY, W: s.cfg.Player.Width, H: s.cfg.Player.Height}
}

// State returns the current lifecycle state.
func (s *Session) State() State { return s.state }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Degraded reports whether the sensor is unavailable while RUNNING. The
// player holds position in this sub-mode but obstacles keep advancing.
func (s *Session) Degraded() bool { return s.degraded }

// SensorStatus returns the reader's current status for display.
// The session does not own the device; whoever built it closes it.
func (s *Session) SensorStatus() sensor.Status { return s.reader.Status() }
