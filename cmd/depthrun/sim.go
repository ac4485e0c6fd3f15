package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/probelab/depthrun/internal/config"
	"github.com/probelab/depthrun/internal/sensor/sim"
)

var (
	flagSimListen   string
	flagSimHeadless bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the depth simulator",
	Long: `Run a depth-sensor simulator for playing without hardware: a WebSocket
server publishing the current depth value, driven by a terminal slider.

Point the game at it from another terminal:
  depthrun play --sensor ws://localhost:12345/ws

Examples:
  depthrun sim
  depthrun sim --listen :9000
  depthrun sim --headless   # Server only, publishes the last set value`,
	Run: runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagSimListen, "listen", ":12345", "Address to serve the WebSocket endpoint on")
	simCmd.Flags().BoolVar(&flagSimHeadless, "headless", false, "Run the server without the slider UI")
}

func runSim(cmd *cobra.Command, args []string) {
	maxDepth := config.DefaultRunnerConfig().Sensor.MaxDepth

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "depthrun-sim",
	})

	server := sim.NewServer(flagSimListen, logger)
	if err := server.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Error starting simulator: %v\n", err)
		os.Exit(1)
	}
	defer server.Stop()

	if flagSimHeadless {
		logger.Info("headless mode, press Ctrl+C to stop")
		select {}
	}

	p := tea.NewProgram(
		sim.NewSliderModel(server, maxDepth),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
