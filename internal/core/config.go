package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Display width in pixels
	ScreenH  int   // Display height in pixels
	TickRate int   // Timer ticks per second (reference 15)
	Seed     int64 // RNG seed for serve direction
}

// DefaultConfig returns a RuntimeConfig matching the 128x160 LCD panel.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  128,
		ScreenH:  160,
		TickRate: 15,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Screen returns the full display as a Region.
func (c RuntimeConfig) Screen() Region {
	return NewRegion(0, 0, c.ScreenW-1, c.ScreenH-1)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score      int  // Combined score, used for display
	ScoreLeft  int  // Points won by the left player
	ScoreRight int  // Points won by the right player
	GameOver   bool // Whether a side has lost
	Winner     int  // 0 while playing, 1 = left, 2 = right
}
