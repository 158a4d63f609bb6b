package sim

// Pipe is a vertical obstacle with a passable gap. Only X changes after
// creation (decremented by the scroll speed each frame); the gap bounds are
// fixed, so GapHeight is an invariant of the pipe.
type Pipe struct {
	X         float64 // Left edge
	GapTop    float64 // Y where the top pipe ends (top of the gap)
	GapBottom float64 // Y where the bottom pipe starts (bottom of the gap)
}

// Right returns the x-coordinate of the pipe's right edge.
func (p Pipe) Right(width float64) float64 {
	return p.X + width
}

// GapCenter returns the vertical midpoint of the gap.
func (p Pipe) GapCenter() float64 {
	return (p.GapTop + p.GapBottom) / 2
}

// GapHeight returns the vertical extent of the gap.
func (p Pipe) GapHeight() float64 {
	return p.GapBottom - p.GapTop
}
