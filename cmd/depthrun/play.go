package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/probelab/depthrun/internal/config"
	"github.com/probelab/depthrun/internal/core"
	"github.com/probelab/depthrun/internal/platform/tui"
	"github.com/probelab/depthrun/internal/registry"
	"github.com/probelab/depthrun/internal/runner"
	"github.com/probelab/depthrun/internal/sensor"
	"github.com/probelab/depthrun/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagSensorURL  string
	flagDemo       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a run. The player's vertical position follows the depth sensor;
the keyboard only controls the session.

Controls:
  Space/Enter - Start
  P/Esc       - Pause
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit

Sensor selection, in priority order:
  --demo               built-in demo waveform, no hardware
  --sensor <url>       WebSocket depth source (e.g. ws://localhost:12345/ws)
  DEPTHRUN_SENSOR_ADDR same as --sensor, from the environment or a .env file
  (none)               demo waveform

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  depthrun play --demo
  depthrun play --sensor ws://localhost:12345/ws
  depthrun play --difficulty hard
  depthrun play --config ./my-runner.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagSensorURL, "sensor", "", "WebSocket URL of the depth sensor")
	playCmd.Flags().BoolVar(&flagDemo, "demo", false, "Use the built-in demo waveform instead of a sensor")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	runner.SetConfigPath(flagConfig)
	runner.SetDifficultyPreset(flagDifficulty)

	// The game config drives device construction too (depth range, staleness)
	gameCfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := gameCfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	dev := buildDevice(gameCfg)
	runner.SetDevice(dev)
	defer dev.Close()

	game, err := registry.Create("runner")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg, flagDifficulty)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// buildDevice picks the depth source: demo flag, then --sensor, then the
// environment, then the demo waveform as a fallback.
func buildDevice(gameCfg config.RunnerConfig) sensor.Device {
	url := flagSensorURL
	if url == "" {
		url = os.Getenv(sensorAddrEnv)
	}

	if flagDemo || url == "" {
		return sensor.NewDemoDevice(gameCfg.Sensor.MaxDepth, 8*time.Second)
	}

	staleAfter := time.Duration(gameCfg.Sensor.StaleAfterMS) * time.Millisecond
	return sensor.DialWS(url, staleAfter)
}
