package sim

// Snapshot is the per-frame view handed to a decision function. It is
// recomputed every frame, never persisted, and safe to hold: the pipe slice
// and current pipe are copies, so a caller can never tear live world state.
type Snapshot struct {
	Pilot       Pilot
	CurrentPipe *Pipe // Nearest unpassed pipe; nil when all are passed
	Pipes       []Pipe
	PipeSpeed   float64
	PipeWidth   float64
	Gravity     float64
	JumpImpulse float64
	ScreenH     float64
	FloorY      float64
	Score       int
	Frame       int
	GameOver    bool
}

// Snapshot captures the current state for a decision function.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Pilot:       w.Pilot,
		Pipes:       append([]Pipe(nil), w.Pipes...),
		PipeSpeed:   w.cfg.PipeSpeed,
		PipeWidth:   w.cfg.PipeWidth,
		Gravity:     w.cfg.Gravity,
		JumpImpulse: w.cfg.JumpImpulse,
		ScreenH:     w.cfg.ScreenH,
		FloorY:      w.FloorY,
		Score:       w.Score,
		Frame:       w.Frame,
		GameOver:    w.GameOver,
	}
	if cur, ok := w.CurrentPipe(); ok {
		s.CurrentPipe = &cur
	}
	return s
}
