package sim

// Config holds the physics and geometry constants for one simulation.
// All values are in world units (the nominal field is 800x600).
type Config struct {
	ScreenW     float64 // Field width
	ScreenH     float64 // Field height
	Gravity     float64 // Downward acceleration per frame
	JumpImpulse float64 // Velocity set on jump (negative = up)
	PipeSpeed   float64 // How far pipes scroll left per frame
	PipeWidth   float64 // Horizontal extent of every pipe
	PilotX      float64 // Fixed horizontal position of the pilot
	PilotWidth  float64 // Pilot hitbox width
	PilotHeight float64 // Pilot hitbox height
}

// DefaultConfig returns the constants the original game was tuned with.
func DefaultConfig() Config {
	return Config{
		ScreenW:     800,
		ScreenH:     600,
		Gravity:     0.5,
		JumpImpulse: -8,
		PipeSpeed:   3,
		PipeWidth:   50,
		PilotX:      100,
		PilotWidth:  30,
		PilotHeight: 30,
	}
}

// ApexRise returns the vertical rise a single jump achieves before gravity
// wins, from the kinematic relation rise = impulse^2 / (2 * gravity).
// With the default constants this is 64 units.
func (c Config) ApexRise() float64 {
	if c.Gravity <= 0 {
		return 0
	}
	return c.JumpImpulse * c.JumpImpulse / (2 * c.Gravity)
}
