package config

import (
	_ "embed"
)

//go:embed defaults/game.yaml
var defaultGameYAML []byte

// Default returns the configuration the original game was tuned with:
// 800x600 field, gravity 0.5, jump impulse -8, pipes 50 wide scrolling at 3.
func Default() GameConfig {
	return GameConfig{
		Physics: PhysicsConfig{
			Gravity:     0.5,
			JumpImpulse: -8,
			PipeSpeed:   3,
			PipeWidth:   50,
		},
		Pilot: PilotConfig{
			X:      100,
			Width:  30,
			Height: 30,
		},
		Screen: ScreenConfig{
			Width:  800,
			Height: 600,
		},
	}
}
