package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the hardcoded default runner configuration.
// Used as the last-resort fallback when the embedded YAML cannot be parsed.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Sensor: SensorConfig{
			MaxDepth:      1024,
			Alpha:         0.25,
			MissThreshold: 30,
			StaleAfterMS:  150,
		},
		Player: PlayerConfig{
			X:      8,
			Width:  3,
			Height: 2,
		},
		Obstacles: ObstacleConfig{
			MinWidth:         2,
			MaxWidth:         4,
			MinHeight:        2,
			MaxHeight:        5,
			Speed:            20.0,
			SpawnIntervalMin: 1.2,
			SpawnIntervalMax: 3.0,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   1.0,
				IntervalReduction: 1.0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultRunnerYAML
}
