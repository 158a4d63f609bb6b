// Package sim implements the physics and collision model for the flappy
// simulation: explicit Euler integration of the pilot under gravity, pipes
// scrolling toward it at a fixed speed, and collision against floor, ceiling
// and the current pipe's gap. A World is an explicit state record advanced by
// Step; there are no globals, so independent simulations can run side by side.
package sim

import (
	"fmt"
	"math"
)

// CollisionCause identifies what ended a run.
type CollisionCause int

const (
	CauseNone CollisionCause = iota
	CauseCeiling
	CauseFloor
	CausePipe
)

// String returns a human-readable name for the cause.
func (c CollisionCause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CauseCeiling:
		return "ceiling"
	case CauseFloor:
		return "floor"
	case CausePipe:
		return "pipe"
	default:
		return "unknown"
	}
}

// World is the complete simulation state for one run.
type World struct {
	Pilot    Pilot
	Pipes    []Pipe // Ascending by X; order never changes
	FloorY   float64
	Score    int
	Frame    int
	GameOver bool
	Cause    CollisionCause

	cfg Config
}

// StepResult reports the outcome of one simulation frame.
type StepResult struct {
	Jumped    bool
	Collision bool
	Cause     CollisionCause
	Score     int
	GameOver  bool
}

// NewWorld creates a simulation with the pilot at field center and the given
// materialized pipes. Structurally invalid pipes (non-finite coordinates) are
// a precondition violation and reported to the caller; a degenerate gap
// (GapBottom <= GapTop) is tolerated because downstream logic stays total.
func NewWorld(cfg Config, floorY float64, pipes []Pipe) (*World, error) {
	if !isFinite(floorY) {
		return nil, fmt.Errorf("sim: floor position %v is not finite", floorY)
	}
	prevX := math.Inf(-1)
	for i, p := range pipes {
		if !isFinite(p.X) || !isFinite(p.GapTop) || !isFinite(p.GapBottom) {
			return nil, fmt.Errorf("sim: pipe %d has non-finite coordinates", i)
		}
		if p.X < prevX {
			return nil, fmt.Errorf("sim: pipe %d at x=%v breaks ascending order", i, p.X)
		}
		prevX = p.X
	}

	w := &World{
		Pilot: Pilot{
			X:      cfg.PilotX,
			Y:      cfg.ScreenH / 2,
			Width:  cfg.PilotWidth,
			Height: cfg.PilotHeight,
		},
		Pipes:  append([]Pipe(nil), pipes...),
		FloorY: floorY,
		cfg:    cfg,
	}
	return w, nil
}

// Config returns the constants this world was created with.
func (w *World) Config() Config {
	return w.cfg
}

// Step advances the simulation by one frame. A requested jump overrides the
// current velocity with the impulse rather than adding to it, then gravity
// accumulates into velocity and velocity into position. Pipes scroll, score
// is recomputed, and collision ends the run.
func (w *World) Step(jump bool) StepResult {
	if w.GameOver {
		return StepResult{Cause: w.Cause, Score: w.Score, GameOver: true}
	}

	w.Frame++

	if jump {
		w.Pilot.Velocity = w.cfg.JumpImpulse
	}
	w.Pilot.Velocity += w.cfg.Gravity
	w.Pilot.Y += w.Pilot.Velocity

	for i := range w.Pipes {
		w.Pipes[i].X -= w.cfg.PipeSpeed
	}

	w.Score = w.countPassed()

	if cause := w.collisionCause(); cause != CauseNone {
		w.GameOver = true
		w.Cause = cause
	}

	return StepResult{
		Jumped:    jump,
		Collision: w.GameOver,
		Cause:     w.Cause,
		Score:     w.Score,
		GameOver:  w.GameOver,
	}
}

// CurrentPipe returns the nearest pipe not yet passed: the first one, in
// ascending x order, whose right edge is strictly right of the pilot's x.
// ok is false once every pipe has been passed.
func (w *World) CurrentPipe() (pipe Pipe, ok bool) {
	for _, p := range w.Pipes {
		if p.Right(w.cfg.PipeWidth) > w.Pilot.X {
			return p, true
		}
	}
	return Pipe{}, false
}

// countPassed recomputes the score as the number of pipes whose right edge
// has scrolled left of the pilot. Recomputing rather than incrementing keeps
// Step replay-safe.
func (w *World) countPassed() int {
	n := 0
	for _, p := range w.Pipes {
		if p.Right(w.cfg.PipeWidth) < w.Pilot.X {
			n++
		}
	}
	return n
}

// collisionCause checks the pilot against the ceiling, the floor, and the
// current pipe. Only the single nearest unpassed pipe is checked: levels
// space pipes far enough apart that at most one can overlap the pilot's
// x-range, and that contract is part of the model.
func (w *World) collisionCause() CollisionCause {
	if w.Pilot.Y <= 0 {
		return CauseCeiling
	}
	if w.Pilot.Bottom() >= w.FloorY {
		return CauseFloor
	}

	cur, ok := w.CurrentPipe()
	if !ok {
		return CauseNone
	}
	if cur.X < w.Pilot.Right() && cur.Right(w.cfg.PipeWidth) > w.Pilot.X {
		if w.Pilot.Y < cur.GapTop || w.Pilot.Bottom() > cur.GapBottom {
			return CausePipe
		}
	}
	return CauseNone
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
