package sim

// Pilot is the controlled entity. X never changes after creation; the world
// scrolls toward the pilot instead.
type Pilot struct {
	X        float64
	Y        float64 // Top edge of the hitbox
	Width    float64
	Height   float64
	Velocity float64 // Signed, positive = downward
}

// Bottom returns the y-coordinate of the pilot's bottom edge.
func (p Pilot) Bottom() float64 {
	return p.Y + p.Height
}

// Right returns the x-coordinate of the pilot's right edge.
func (p Pilot) Right() float64 {
	return p.X + p.Width
}
