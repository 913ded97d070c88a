package core

// RuntimeConfig contains configuration passed to the game at initialization.
// Hosts fill it from CLI flags and the terminal or window size.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}
