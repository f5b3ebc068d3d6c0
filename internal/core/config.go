package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for reproducible simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 means pick one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// Validate rejects configurations that would produce a degenerate simulation.
func (c RuntimeConfig) Validate() error {
	if c.TickRate <= 0 {
		return Invalidf("tick_rate", "must be positive, got %d", c.TickRate)
	}
	if c.ScreenW < 0 || c.ScreenH < 0 {
		return Invalidf("screen", "negative size %dx%d", c.ScreenW, c.ScreenH)
	}
	return nil
}

// ResolvedSeed returns the configured seed, or a clock-based one when unset.
func (c RuntimeConfig) ResolvedSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

// Status is the controller state of a running game.
type Status int

const (
	StatusInRoom        Status = iota // Normal play
	StatusTransitioning               // Floor/level change in progress this tick
	StatusLevelComplete               // Terminal: goal reached
	StatusGameOver                    // Terminal: player lost
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusInRoom:
		return "in-room"
	case StatusTransitioning:
		return "transitioning"
	case StatusLevelComplete:
		return "level-complete"
	case StatusGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Terminal reports whether the status needs a reset to leave.
func (s Status) Terminal() bool {
	return s == StatusLevelComplete || s == StatusGameOver
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Status   Status
	Progress int  // Floors climbed, bricks broken, seconds survived, levels cleared
	Health   int  // Remaining HP, or 1/0 for one-touch games
	GameOver bool // Status is terminal
	Paused   bool
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and the sound events emitted this tick.
type StepResult struct {
	State  GameState
	Events []Sound
}
