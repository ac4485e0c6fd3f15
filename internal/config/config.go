// Package config provides YAML-based configuration loading, validation,
// and difficulty management for the depth runner.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig marks configuration errors detected before a session may
// start. Callers can match it with errors.Is.
var ErrInvalidConfig = errors.New("invalid configuration")

// RunnerConfig contains all tunable parameters for the runner game.
// All values are immutable for the lifetime of a session.
type RunnerConfig struct {
	Sensor     SensorConfig     `yaml:"sensor"`
	Player     PlayerConfig     `yaml:"player"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// SensorConfig defines how raw depth samples are interpreted.
type SensorConfig struct {
	// MaxDepth is the upper bound of the device's sample range [0, MaxDepth].
	MaxDepth int `yaml:"max_depth"`
	// Alpha is the exponential smoothing factor in (0, 1]. 1 disables smoothing.
	Alpha float64 `yaml:"alpha"`
	// MissThreshold is the number of consecutive missed samples after which
	// the device is considered unavailable rather than transiently silent.
	MissThreshold int `yaml:"miss_threshold"`
	// StaleAfterMS is how old a buffered sample may be, in milliseconds,
	// before the reader reports a miss instead of reusing it.
	StaleAfterMS int `yaml:"stale_after_ms"`
}

// PlayerConfig defines the player's fixed position and hitbox, in field units.
type PlayerConfig struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ObstacleConfig defines obstacle sizing, speed, and spawn cadence.
type ObstacleConfig struct {
	MinWidth  float64 `yaml:"min_width"`
	MaxWidth  float64 `yaml:"max_width"`
	MinHeight float64 `yaml:"min_height"`
	MaxHeight float64 `yaml:"max_height"`
	// Speed is the leftward obstacle speed in field units per second.
	Speed float64 `yaml:"speed"`
	// Spawn interval bounds in seconds. The field re-arms its spawn timer
	// with a value drawn uniformly from [min, max].
	SpawnIntervalMin float64 `yaml:"spawn_interval_min"`
	SpawnIntervalMax float64 `yaml:"spawn_interval_max"`
}

// Validate checks the configuration for out-of-range or inconsistent values.
// A non-nil result wraps ErrInvalidConfig and is fatal to session start.
func (c RunnerConfig) Validate() error {
	if c.Sensor.MaxDepth <= 0 {
		return fmt.Errorf("%w: sensor.max_depth must be positive, got %d", ErrInvalidConfig, c.Sensor.MaxDepth)
	}
	if c.Sensor.Alpha <= 0 || c.Sensor.Alpha > 1 {
		return fmt.Errorf("%w: sensor.alpha must be in (0, 1], got %g", ErrInvalidConfig, c.Sensor.Alpha)
	}
	if c.Sensor.MissThreshold <= 0 {
		return fmt.Errorf("%w: sensor.miss_threshold must be positive, got %d", ErrInvalidConfig, c.Sensor.MissThreshold)
	}
	if c.Sensor.StaleAfterMS <= 0 {
		return fmt.Errorf("%w: sensor.stale_after_ms must be positive, got %d", ErrInvalidConfig, c.Sensor.StaleAfterMS)
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		return fmt.Errorf("%w: player box must have positive dimensions, got %gx%g", ErrInvalidConfig, c.Player.Width, c.Player.Height)
	}
	if c.Player.X < 0 {
		return fmt.Errorf("%w: player.x must be non-negative, got %g", ErrInvalidConfig, c.Player.X)
	}
	if c.Obstacles.MinWidth <= 0 || c.Obstacles.MinHeight <= 0 {
		return fmt.Errorf("%w: obstacle dimensions must be positive", ErrInvalidConfig)
	}
	if c.Obstacles.MaxWidth < c.Obstacles.MinWidth {
		return fmt.Errorf("%w: obstacles.max_width %g < min_width %g", ErrInvalidConfig, c.Obstacles.MaxWidth, c.Obstacles.MinWidth)
	}
	if c.Obstacles.MaxHeight < c.Obstacles.MinHeight {
		return fmt.Errorf("%w: obstacles.max_height %g < min_height %g", ErrInvalidConfig, c.Obstacles.MaxHeight, c.Obstacles.MinHeight)
	}
	if c.Obstacles.Speed <= 0 {
		return fmt.Errorf("%w: obstacles.speed must be positive, got %g", ErrInvalidConfig, c.Obstacles.Speed)
	}
	if c.Obstacles.SpawnIntervalMin <= 0 {
		return fmt.Errorf("%w: obstacles.spawn_interval_min must be positive, got %g", ErrInvalidConfig, c.Obstacles.SpawnIntervalMin)
	}
	if c.Obstacles.SpawnIntervalMax < c.Obstacles.SpawnIntervalMin {
		return fmt.Errorf("%w: obstacles.spawn_interval_max %g < spawn_interval_min %g", ErrInvalidConfig, c.Obstacles.SpawnIntervalMax, c.Obstacles.SpawnIntervalMin)
	}
	// Two consecutive spawns must never overlap: the previous obstacle has to
	// travel farther than its own maximum width before the next one appears.
	if c.Obstacles.SpawnIntervalMin*c.Obstacles.Speed <= c.Obstacles.MaxWidth {
		return fmt.Errorf("%w: spawn_interval_min %gs at speed %g cannot clear max obstacle width %g",
			ErrInvalidConfig, c.Obstacles.SpawnIntervalMin, c.Obstacles.Speed, c.Obstacles.MaxWidth)
	}
	return nil
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	// SpeedMultiplier is added to the speed factor at max difficulty:
	// effective speed = base * (1 + level*SpeedMultiplier).
	SpeedMultiplier float64 `yaml:"speed_multiplier"`
	// IntervalReduction is the number of seconds shaved off the maximum
	// spawn interval at max difficulty. The minimum interval is never
	// undercut, so the spawn non-overlap invariant holds at every level.
	IntervalReduction float64 `yaml:"interval_reduction"`
}

// DifficultyPreset is a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the starting difficulty level for a preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
