package tui

import (
	"strings"
	"testing"

	"github.com/Jamess-Nguyen/ai-flappy-bird/internal/autopilot"
	"github.com/Jamess-Nguyen/ai-flappy-bird/internal/sim"
)

func testWorld(t *testing.T, pipes []sim.Pipe) *sim.World {
	t.Helper()
	w, err := sim.NewWorld(sim.DefaultConfig(), 550, pipes)
	if err != nil {
		t.Fatalf("NewWorld failed: %v", err)
	}
	return w
}

func TestRenderTooSmall(t *testing.T) {
	w := testWorld(t, nil)
	out := renderWorld(w, autopilot.Decision{}, false, false, 5, 3)
	if out != "Terminal too small" {
		t.Errorf("Expected size guard, got %q", out)
	}
}

func TestRenderDimensions(t *testing.T) {
	w := testWorld(t, []sim.Pipe{{X: 400, GapTop: 225, GapBottom: 375}})
	out := renderWorld(w, autopilot.Decision{}, false, false, 80, 24)

	lines := strings.Split(out, "\n")
	if len(lines) != 24 {
		t.Fatalf("Expected 24 rows, got %d", len(lines))
	}
}

func TestRenderShowsHUDAndOverlays(t *testing.T) {
	w := testWorld(t, nil)
	out := renderWorld(w, autopilot.Decision{Rule: autopilot.RuleNoPipe}, true, false, 80, 24)

	if !strings.Contains(out, "Score: 0") {
		t.Error("HUD missing score")
	}
	if !strings.Contains(out, "autopilot [no-pipe]") {
		t.Error("HUD missing autopilot rule")
	}

	paused := renderWorld(w, autopilot.Decision{}, false, true, 80, 24)
	if !strings.Contains(paused, "PAUSED") {
		t.Error("Paused overlay missing")
	}

	for !w.GameOver {
		w.Step(false)
	}
	over := renderWorld(w, autopilot.Decision{}, false, false, 80, 24)
	if !strings.Contains(over, "GAME OVER") || !strings.Contains(over, "Hit floor") {
		t.Error("Game over overlay missing or wrong cause")
	}
}

func TestRenderSkipsOffscreenPipes(t *testing.T) {
	// Pipes beyond the right field edge must not wrap into the canvas.
	w := testWorld(t, []sim.Pipe{{X: 5000, GapTop: 225, GapBottom: 375}})
	out := renderWorld(w, autopilot.Decision{}, false, false, 80, 24)

	if strings.ContainsRune(out, pipeChar) {
		t.Error("Offscreen pipe leaked into the canvas")
	}
}
