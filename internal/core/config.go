package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 100, one tick = 10ms)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 100,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of the game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score      int    // Current score
	Health     int    // Player health
	MaxHealth  int    // Player maximum health
	Invincible bool   // Whether the player is currently invincible
	Level      string // Name of the active level
	GameOver   bool   // Whether the player died
	Won        bool   // Whether the game was won
	Paused     bool   // Whether the game is paused
}

// EventKind identifies a game event raised during a tick.
type EventKind int

const (
	// EventLevelComplete fires when a goal trigger resolved to a next level.
	// The platform should offer to record a high score for the finished level.
	EventLevelComplete EventKind = iota
	// EventGameWon fires when a goal trigger resolved to the end of the game.
	EventGameWon
	// EventExitRequested fires when the game hit a fatal configuration or
	// level-load problem and wants the application to terminate.
	EventExitRequested
)

// Event is a notification from the game core to the platform layer.
type Event struct {
	Kind    EventKind
	Level   string // Level the event refers to (the one just finished)
	Score   int    // Player score at the time of the event
	Message string // Human-readable detail for fatal events
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}
