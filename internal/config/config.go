// Package config provides YAML-based tuning for the flappy simulation:
// physics constants, pilot geometry and field size. Everything the physics
// model and the autopilot derive from (apex rise, screen center) comes out
// of these values, so they are validated on load.
package config

import (
	"fmt"

	"github.com/Jamess-Nguyen/ai-flappy-bird/internal/sim"
)

// GameConfig contains all tunable simulation parameters.
type GameConfig struct {
	Physics PhysicsConfig `yaml:"physics"`
	Pilot   PilotConfig   `yaml:"pilot"`
	Screen  ScreenConfig  `yaml:"screen"`
}

// PhysicsConfig defines the integration and scrolling constants.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse"`
	PipeSpeed   float64 `yaml:"pipe_speed"`
	PipeWidth   float64 `yaml:"pipe_width"`
}

// PilotConfig defines the pilot's fixed position and hitbox.
type PilotConfig struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ScreenConfig defines the field dimensions in world units.
type ScreenConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Validate reports the first constant that would break the model.
func (c GameConfig) Validate() error {
	if c.Physics.Gravity <= 0 {
		return fmt.Errorf("config: gravity must be positive, got %v", c.Physics.Gravity)
	}
	if c.Physics.JumpImpulse >= 0 {
		return fmt.Errorf("config: jump_impulse must be negative (up), got %v", c.Physics.JumpImpulse)
	}
	if c.Physics.PipeSpeed <= 0 {
		return fmt.Errorf("config: pipe_speed must be positive, got %v", c.Physics.PipeSpeed)
	}
	if c.Physics.PipeWidth <= 0 {
		return fmt.Errorf("config: pipe_width must be positive, got %v", c.Physics.PipeWidth)
	}
	if c.Pilot.Width <= 0 || c.Pilot.Height <= 0 {
		return fmt.Errorf("config: pilot dimensions must be positive, got %vx%v", c.Pilot.Width, c.Pilot.Height)
	}
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("config: screen dimensions must be positive, got %vx%v", c.Screen.Width, c.Screen.Height)
	}
	return nil
}

// SimConfig converts the loaded configuration into simulation constants.
func (c GameConfig) SimConfig() sim.Config {
	return sim.Config{
		ScreenW:     c.Screen.Width,
		ScreenH:     c.Screen.Height,
		Gravity:     c.Physics.Gravity,
		JumpImpulse: c.Physics.JumpImpulse,
		PipeSpeed:   c.Physics.PipeSpeed,
		PipeWidth:   c.Physics.PipeWidth,
		PilotX:      c.Pilot.X,
		PilotWidth:  c.Pilot.Width,
		PilotHeight: c.Pilot.Height,
	}
}
