package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  120,
		ScreenH:  40,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// PlayerState is the externally visible standing of one player.
type PlayerState struct {
	Lives int
	Score int
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	P1       PlayerState
	P2       PlayerState
	Winner   PlayerID // zero until GameOver
	GameOver bool
	Paused   bool
	Ticks    int
	Notice   string // transient status line, e.g. "saved"
}

// Score returns the better of the two player scores.
func (s GameState) Score() int {
	return max(s.P1.Score, s.P2.Score)
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	// Sounds raised during the tick, in order. Platforms without audio drop them.
	Sounds []Sound
}
