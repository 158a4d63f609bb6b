package sim

import (
	"math"
	"testing"
)

// openGap is a gap so tall the pilot can never hit the pipe body.
func openGap(x float64) Pipe {
	return Pipe{X: x, GapTop: -1000, GapBottom: 10000}
}

func TestStepIntegration(t *testing.T) {
	cfg := DefaultConfig()
	w, err := NewWorld(cfg, 550, nil)
	if err != nil {
		t.Fatalf("NewWorld failed: %v", err)
	}

	if w.Pilot.Y != 300 {
		t.Fatalf("Expected pilot to start at field center 300, got %v", w.Pilot.Y)
	}

	// Gravity accumulates into velocity, velocity into position
	w.Step(false)
	if w.Pilot.Velocity != 0.5 {
		t.Errorf("Velocity after one frame: got %v, want 0.5", w.Pilot.Velocity)
	}
	if w.Pilot.Y != 300.5 {
		t.Errorf("Position after one frame: got %v, want 300.5", w.Pilot.Y)
	}

	// A jump overrides velocity with the impulse, it does not add to it
	w.Step(true)
	if w.Pilot.Velocity != -7.5 {
		t.Errorf("Velocity after jump: got %v, want -7.5", w.Pilot.Velocity)
	}
	if w.Pilot.Y != 293 {
		t.Errorf("Position after jump: got %v, want 293", w.Pilot.Y)
	}
}

func TestJumpOverridesFallSpeed(t *testing.T) {
	cfg := DefaultConfig()
	w, _ := NewWorld(cfg, 550, nil)

	// Build up fall speed first
	for i := 0; i < 10; i++ {
		w.Step(false)
	}
	if w.Pilot.Velocity != 5 {
		t.Fatalf("Fall speed after 10 frames: got %v, want 5", w.Pilot.Velocity)
	}

	w.Step(true)
	if w.Pilot.Velocity != -7.5 {
		t.Errorf("Jump from a fall should still give -7.5, got %v", w.Pilot.Velocity)
	}
}

func TestSingleJumpRise(t *testing.T) {
	cfg := DefaultConfig()
	w, _ := NewWorld(cfg, 10000, nil)

	start := w.Pilot.Y
	w.Step(true)
	steps := 1
	for w.Pilot.Velocity < 0 {
		w.Step(false)
		steps++
	}

	// Velocity -8 + 0.5 per frame crosses zero exactly at frame 16, having
	// risen 60 units in discrete steps (the continuous apex bound is 64).
	if steps != 16 {
		t.Errorf("Velocity zero-crossing: got step %d, want 16", steps)
	}
	rise := start - w.Pilot.Y
	if rise != 60 {
		t.Errorf("Discrete rise of one jump: got %v, want 60", rise)
	}
	if cfg.ApexRise() != 64 {
		t.Errorf("Kinematic apex rise: got %v, want 64", cfg.ApexRise())
	}
}

func TestScoreRecomputedFromPassedPipes(t *testing.T) {
	cfg := DefaultConfig()
	// Pipe right edge starts at 210; it crosses the pilot's x=100 after
	// frame 37 (210 - 3*37 = 99).
	w, _ := NewWorld(cfg, 10000, []Pipe{openGap(160)})

	for i := 0; i < 36; i++ {
		w.Step(false)
	}
	if w.Score != 0 {
		t.Fatalf("Score before the pipe is passed: got %d, want 0", w.Score)
	}

	w.Step(false)
	if w.Score != 1 {
		t.Errorf("Score after the pipe is passed: got %d, want 1", w.Score)
	}
	if w.GameOver {
		t.Errorf("Run should not have ended: cause %v", w.Cause)
	}

	if _, ok := w.CurrentPipe(); ok {
		t.Error("CurrentPipe should report no pipe once all are passed")
	}
}

func TestFloorCollision(t *testing.T) {
	cfg := DefaultConfig()
	w, _ := NewWorld(cfg, 550, nil)

	// Free fall from y=300: bottom edge 330 + 0.25*k*(k+1) reaches the
	// floor at 550 on frame 30.
	for i := 0; i < 29; i++ {
		result := w.Step(false)
		if result.GameOver {
			t.Fatalf("Run ended early at frame %d, cause %v", w.Frame, w.Cause)
		}
	}

	result := w.Step(false)
	if !result.GameOver {
		t.Fatal("Expected floor collision on frame 30")
	}
	if result.Cause != CauseFloor {
		t.Errorf("Cause: got %v, want %v", result.Cause, CauseFloor)
	}
}

func TestCeilingCollision(t *testing.T) {
	cfg := DefaultConfig()
	w, _ := NewWorld(cfg, 550, nil)

	// Jumping every frame climbs 7.5 units per frame from y=300.
	for !w.GameOver {
		w.Step(true)
		if w.Frame > 100 {
			t.Fatal("Never reached the ceiling")
		}
	}

	if w.Cause != CauseCeiling {
		t.Errorf("Cause: got %v, want %v", w.Cause, CauseCeiling)
	}
}

func TestPipeCollision(t *testing.T) {
	cfg := DefaultConfig()
	// After one scroll the pipe occupies x [100, 150], overlapping the
	// pilot, with a gap far above the pilot's path.
	pipe := Pipe{X: 103, GapTop: 100, GapBottom: 130}
	w, _ := NewWorld(cfg, 550, []Pipe{pipe})

	result := w.Step(false)
	if !result.GameOver {
		t.Fatal("Expected pipe collision on frame 1")
	}
	if result.Cause != CausePipe {
		t.Errorf("Cause: got %v, want %v", result.Cause, CausePipe)
	}
}

func TestInsideGapIsSafe(t *testing.T) {
	cfg := DefaultConfig()
	// Same overlap, but the gap covers the pilot's path generously.
	pipe := Pipe{X: 103, GapTop: 200, GapBottom: 450}
	w, _ := NewWorld(cfg, 550, []Pipe{pipe})

	result := w.Step(false)
	if result.GameOver {
		t.Fatalf("Pilot inside the gap should survive, cause %v", result.Cause)
	}
}

func TestOnlyCurrentPipeIsChecked(t *testing.T) {
	cfg := DefaultConfig()
	// Both pipes overlap the pilot after one scroll, but only the first
	// unpassed pipe is collision-checked. The second would kill the pilot
	// if it were.
	pipes := []Pipe{
		openGap(110),
		{X: 112, GapTop: 100, GapBottom: 130},
	}
	w, _ := NewWorld(cfg, 10000, pipes)

	result := w.Step(false)
	if result.GameOver {
		t.Errorf("Only the nearest unpassed pipe should be checked, cause %v", result.Cause)
	}
}

func TestStepAfterGameOverIsInert(t *testing.T) {
	cfg := DefaultConfig()
	w, _ := NewWorld(cfg, 550, nil)

	for !w.GameOver {
		w.Step(false)
	}
	frame := w.Frame
	y := w.Pilot.Y

	result := w.Step(true)
	if w.Frame != frame || w.Pilot.Y != y {
		t.Error("Step after game over must not advance the world")
	}
	if !result.GameOver || result.Cause != CauseFloor {
		t.Errorf("Terminal result should repeat the outcome, got %+v", result)
	}
}

func TestNewWorldValidation(t *testing.T) {
	cfg := DefaultConfig()

	if _, err := NewWorld(cfg, math.NaN(), nil); err == nil {
		t.Error("Expected error for non-finite floor")
	}

	bad := []Pipe{openGap(400), openGap(200)}
	if _, err := NewWorld(cfg, 550, bad); err == nil {
		t.Error("Expected error for pipes out of ascending order")
	}

	nonFinite := []Pipe{{X: 400, GapTop: math.Inf(1), GapBottom: 500}}
	if _, err := NewWorld(cfg, 550, nonFinite); err == nil {
		t.Error("Expected error for non-finite pipe coordinates")
	}
}

func TestDeterminism(t *testing.T) {
	cfg := DefaultConfig()
	pipes := []Pipe{openGap(400), openGap(700), openGap(1000)}

	w1, _ := NewWorld(cfg, 10000, pipes)
	w2, _ := NewWorld(cfg, 10000, pipes)

	for i := 0; i < 300; i++ {
		jump := i%25 == 0
		w1.Step(jump)
		w2.Step(jump)
	}

	if w1.Pilot != w2.Pilot {
		t.Errorf("Pilot state diverged: %+v vs %+v", w1.Pilot, w2.Pilot)
	}
	if w1.Score != w2.Score || w1.Frame != w2.Frame {
		t.Errorf("Score/frame diverged: %d/%d vs %d/%d", w1.Score, w1.Frame, w2.Score, w2.Frame)
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	cfg := DefaultConfig()
	w, _ := NewWorld(cfg, 550, []Pipe{openGap(400)})

	snap := w.Snapshot()
	if snap.CurrentPipe == nil {
		t.Fatal("Expected a current pipe in the snapshot")
	}

	w.Step(false)

	if snap.Pipes[0].X != 400 {
		t.Error("Snapshot pipe slice should not alias live world state")
	}
	if snap.CurrentPipe.X != 400 {
		t.Error("Snapshot current pipe should not alias live world state")
	}
}
