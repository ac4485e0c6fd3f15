// depthrun is a depth-sensor-controlled endless runner for the terminal.
//
// Usage:
//
//	depthrun play            - Play with a sensor, the simulator, or the demo waveform
//	depthrun sim             - Run the depth simulator (WebSocket server + slider UI)
//	depthrun serve           - Start SSH server for remote play
//	depthrun scores          - Show recorded runs
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.depthrun/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/probelab/depthrun/internal/runner"
)

// sensorAddrEnv names the environment variable holding the default sensor
// WebSocket URL, loadable from a .env file.
const sensorAddrEnv = "DEPTHRUN_SENSOR_ADDR"

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	// A missing .env is fine; flags and the environment still apply.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "depthrun",
	Short: "Depth Runner - a depth-sensor-controlled endless runner",
	Long: `Depth Runner is a terminal endless runner where the player's vertical
position is driven by a depth-sensing device instead of the keyboard.

Available commands:
  play     - Play the game
  sim      - Run the depth simulator (no hardware needed)
  serve    - Start SSH server for remote play
  scores   - View recorded runs

Examples:
  depthrun play --demo
  depthrun sim --listen :12345
  depthrun play --sensor ws://localhost:12345/ws
  depthrun serve --ssh :2222
  depthrun scores --board`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.depthrun/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
