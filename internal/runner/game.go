package runner

import (
	"fmt"
	"time"

	"github.com/probelab/depthrun/internal/config"
	"github.com/probelab/depthrun/internal/core"
	"github.com/probelab/depthrun/internal/registry"
	"github.com/probelab/depthrun/internal/sensor"
)

// Visual characters for rendering
const (
	PlayerChar   = '█'
	ObstacleChar = '▓'
	FrameChar    = '─'
)

// fieldTop is the screen row where the playable field starts; row 0 is the
// HUD and row 1 the frame line.
const fieldTop = 2

// Game adapts a Session to the platform's game interface: it maps lifecycle
// actions to session signals, steps the simulation at the platform's tick
// rate, and draws snapshots into the screen buffer.
type Game struct {
	session *Session
	runtime core.RuntimeConfig
	paused  bool
	failed  error
}

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	device           sensor.Device
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = "" // Use config default
	}
}

// SetDevice sets the depth device new sessions read from. Without one the
// game falls back to the built-in demo waveform.
func SetDevice(dev sensor.Device) {
	device = dev
}

// New creates a new runner game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "runner"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Depth Runner"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.paused = false
	g.failed = nil

	// LoadRunner only fails for an explicit custom path; masking that with
	// the default config would change gameplay silently on a later Reset.
	cfg, err := config.LoadRunner(configPath)
	if err != nil {
		g.failed = err
		g.session = nil
		return
	}
	if difficultyPreset != "" {
		config.ApplyRunnerPreset(&cfg, difficultyPreset)
	}

	dev := device
	if dev == nil {
		dev = sensor.NewDemoDevice(cfg.Sensor.MaxDepth, demoPeriod)
	}

	fieldW := float64(runtime.ScreenW)
	fieldH := float64(runtime.ScreenH - fieldTop)

	session, err := NewSession(cfg, fieldW, fieldH, runtime.Seed, dev)
	if err != nil {
		g.failed = err
		g.session = nil
		return
	}
	if difficultyPreset != "" && difficultyPreset != config.DifficultyFixed {
		session.Difficulty().SetInitialLevel(config.InitialLevelForPreset(difficultyPreset))
	}
	g.session = session
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.failed != nil || g.session == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionStart) && g.session.State() == StateReady {
		g.session.Signal(SignalStart)
	}
	if in.Has(core.ActionRestart) && g.session.State() == StateGameOver {
		g.session.Signal(SignalReset)
		g.session.Signal(SignalStart)
	}

	dt := 1.0 / float64(g.runtime.TickRate)
	if err := g.session.Tick(dt); err != nil {
		g.failed = err
	}
	return core.StepResult{State: g.State()}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.failed != nil {
		g.drawCenteredMessage(dst, "SESSION ERROR", g.failed.Error())
		return
	}

	snap := g.session.Snapshot()

	// Frame line under the HUD
	dst.DrawHLine(0, fieldTop-1, dst.Width(), FrameChar)

	// Obstacles
	for _, ob := range snap.Obstacles {
		rect := core.NewRect(int(ob.X), int(ob.Y)+fieldTop, int(ob.W), int(ob.H))
		dst.DrawRectColored(rect, ObstacleChar, core.ColorGreen)
	}

	// Player
	playerColor := core.ColorBrightCyan
	if snap.Degraded {
		playerColor = core.ColorGray
	}
	p := snap.Player
	dst.DrawRectColored(core.NewRect(int(p.X), int(p.Y)+fieldTop, int(p.W), int(p.H)), PlayerChar, playerColor)

	// HUD
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", snap.Score))
	status := fmt.Sprintf(" Sensor: %s ", g.session.SensorStatus())
	dst.DrawText(dst.Width()-len(status)-2, 0, status)

	if snap.Degraded {
		msg := " SENSOR LOST - position held "
		dst.DrawTextColored((dst.Width()-len(msg))/2, 0, msg, core.ColorYellow)
	}

	switch {
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case snap.State == StateReady:
		g.drawCenteredMessage(dst, "DEPTH RUNNER", "Press SPACE to start")
	case snap.State == StateGameOver:
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", snap.Score))
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.failed != nil || g.session == nil {
		return core.GameState{GameOver: true}
	}
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: g.session.State() == StateGameOver,
		Paused:   g.paused,
		Degraded: g.session.Degraded(),
	}
}

// demoPeriod is the sweep period of the fallback demo waveform.
const demoPeriod = 8 * time.Second

// Register the game with the registry
func init() {
	registry.Register("runner", func() registry.Game {
		return New()
	})
}
