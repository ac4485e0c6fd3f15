package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/probelab/depthrun/internal/config"
	"github.com/probelab/depthrun/internal/platform/tui"
	"github.com/probelab/depthrun/internal/runner"
	"github.com/probelab/depthrun/internal/sensor"
)

var (
	flagSSHAddr         string
	flagHostKey         string
	flagSSHDBPath       string
	flagIdleTimeout     int
	flagServeSensor     string
	flagServeDifficulty string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and play remotely.

Every session plays against the host's depth source: pass --sensor to use
real hardware or the simulator, otherwise sessions get the demo waveform.
Runs are stored per-server (all users share the same board).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.depthrun/host_key

Examples:
  depthrun serve                              # Listen on :23234
  depthrun serve --ssh :2222
  depthrun serve --sensor ws://localhost:12345/ws
  depthrun serve --host-key ./my_host_key

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagSSHDBPath, "db", "~/.depthrun/runs.db", "Path to runs database")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagServeSensor, "sensor", "", "WebSocket URL of the depth sensor shared by all sessions")
	serveCmd.Flags().StringVar(&flagServeDifficulty, "difficulty", "", "Difficulty preset for all sessions")
}

func runServe(_ *cobra.Command, _ []string) {
	gameCfg := config.DefaultRunnerConfig()

	url := flagServeSensor
	if url == "" {
		url = os.Getenv(sensorAddrEnv)
	}
	var dev sensor.Device
	if url != "" {
		staleAfter := time.Duration(gameCfg.Sensor.StaleAfterMS) * time.Millisecond
		dev = sensor.DialWS(url, staleAfter)
	} else {
		dev = sensor.NewDemoDevice(gameCfg.Sensor.MaxDepth, 8*time.Second)
	}
	runner.SetDevice(dev)
	runner.SetDifficultyPreset(flagServeDifficulty)
	defer dev.Close()

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagSSHDBPath,
		GameID:      "runner",
		Difficulty:  flagServeDifficulty,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting depthrun SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
