package core

import "time"

// RuntimeConfig contains settings the front-ends pass around for one game.
type RuntimeConfig struct {
	ScreenW       int           // Screen width in characters
	ScreenH       int           // Screen height in characters
	Seed          int64         // RNG seed for the computer strategy, 0 = time based
	ComputerDelay time.Duration // Pause before the computer's move is shown
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:       80,
		ScreenH:       24,
		Seed:          0, // 0 means use current time in platform layer
		ComputerDelay: 250 * time.Millisecond,
	}
}
