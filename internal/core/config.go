package core

// RuntimeConfig contains the settings the platform needs to run a game.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Clock   int   // Driver frames per second
	Seed    int64 // RNG seed for apple placement
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Clock:   1000,
		Seed:    0, // 0 means use current time in platform layer
	}
}
