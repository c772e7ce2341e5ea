package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW   int   // Screen width in characters
	ScreenH   int   // Screen height in characters
	TickRate  int   // Simulation ticks per second (default 60)
	Seed      int64 // RNG seed for deterministic gameplay
	Debug     bool  // Enables developer shortcuts (force tier, near-win board)
	Ephemeral bool  // Remote or transient session; the resumable-run slot stays untouched
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Display score (matched groups for recall modes)
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// EventKind discriminates the events a game can emit from a step.
type EventKind int

const (
	// EventRoundComplete fires when a board is fully matched.
	// Payload is mode-specific result data for the record store.
	EventRoundComplete EventKind = iota
	// EventPunishment fires when a penalty engine escalates.
	EventPunishment
	// EventLevelUp fires on an infinite-mode tier transition.
	EventLevelUp
	// EventMilestone fires on an infinite-mode survival milestone.
	EventMilestone
)

// Event is something noteworthy that happened during a simulation tick.
// The platform layer uses events to persist records and show banners;
// games never depend on whether anyone consumed them.
type Event struct {
	Kind    EventKind
	Payload any
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
