package runner

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/probelab/depthrun/internal/core"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     42,
	}
}

func TestGameStartAndRestart(t *testing.T) {
	SetDevice(&steadyDevice{depth: 512})
	defer SetDevice(nil)

	g := New()
	g.Reset(testRuntime())

	// Sits in READY until a start action arrives
	g.Step(core.NewInputFrame())
	if g.session.State() != StateReady {
		t.Fatalf("state = %v, expected ready before start", g.session.State())
	}

	start := core.NewInputFrame()
	start.Set(core.ActionStart)
	g.Step(start)
	if g.session.State() != StateRunning {
		t.Fatalf("state = %v, expected running after start", g.session.State())
	}

	// Force game over, then restart goes straight back into play
	player := g.session.PlayerBox()
	g.session.field.obstacles = append(g.session.field.obstacles, Obstacle{
		ID: 999, X: player.X, Y: player.Y, W: player.W, H: player.H,
	})
	g.Step(core.NewInputFrame())
	if !g.State().GameOver {
		t.Fatal("expected game over on coincident boxes")
	}

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart)
	if g.session.State() != StateRunning {
		t.Errorf("state = %v, expected running after restart", g.session.State())
	}
	if g.State().Score != 0 {
		t.Errorf("score after restart = %d, expected 0", g.State().Score)
	}
}

func TestGameResetSurfacesConfigError(t *testing.T) {
	SetConfigPath(filepath.Join(t.TempDir(), "missing.yaml"))
	defer SetConfigPath("")

	g := New()
	g.Reset(testRuntime())

	if !g.State().GameOver {
		t.Fatal("a bad config path should leave the game failed, not silently defaulted")
	}

	// A failed game stays inert and reports the error on screen
	g.Step(core.NewInputFrame())
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "SESSION ERROR") {
		t.Error("render should show the session error box")
	}
}

func TestGamePause(t *testing.T) {
	SetDevice(&steadyDevice{depth: 200})
	defer SetDevice(nil)

	g := New()
	g.Reset(testRuntime())

	start := core.NewInputFrame()
	start.Set(core.ActionStart)
	g.Step(start)
	for i := 0; i < 30; i++ {
		g.Step(core.NewInputFrame())
	}

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}

	before := g.session.Snapshot()
	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
	}
	after := g.session.Snapshot()
	if before.Tick != after.Tick {
		t.Errorf("simulation advanced while paused: tick %d -> %d", before.Tick, after.Tick)
	}

	g.Step(pause)
	if g.State().Paused {
		t.Error("game should be unpaused")
	}
}

func TestGameRender(t *testing.T) {
	SetDevice(&steadyDevice{depth: 512})
	defer SetDevice(nil)

	rt := testRuntime()
	g := New()
	g.Reset(rt)

	start := core.NewInputFrame()
	start.Set(core.ActionStart)
	g.Step(start)
	for i := 0; i < 120; i++ {
		g.Step(core.NewInputFrame())
	}

	screen := core.NewScreen(rt.ScreenW, rt.ScreenH)
	g.Render(screen)

	str := screen.String()
	hasContent := false
	for _, ch := range str {
		if ch != ' ' && ch != '\n' {
			hasContent = true
			break
		}
	}
	if !hasContent {
		t.Error("Render should draw something to the screen")
	}

	// The frame line separates the HUD from the field
	if screen.Get(0, fieldTop-1) != FrameChar {
		t.Errorf("frame line missing at row %d, got %q", fieldTop-1, screen.Get(0, fieldTop-1))
	}
}
