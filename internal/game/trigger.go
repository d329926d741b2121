package game

// EndOfGame is the sentinel next-level name that wins the game.
const EndOfGame = "END"

// LevelDirectory resolves a goal trigger to the name of the next level.
// It is the loaded-configuration lookup of the host application:
// NextLevel returns false when the active level declares no target for
// the trigger key, which is a fatal configuration error.
type LevelDirectory interface {
	NextLevel(level, key string) (string, bool)
}

// LevelSource supplies level grids by name. Loading a level that does
// not exist is fatal.
type LevelSource interface {
	Grid(name string) ([]string, error)
}

// triggerRequest is a goal trigger queued during collision dispatch.
// Rebuilding the world mid-callback is unsafe, so resolution is deferred
// to the end of the tick that raised it.
type triggerRequest struct {
	level string // Level the trigger fired in
	key   string // Trigger key to look up ("goal" or "tunnel")
}

// fireTrigger queues the goal resolution for the given block. Only the
// first trigger of a tick is kept.
func (g *Game) fireTrigger(b *Block, key string) {
	if g.pendingTrigger != nil || g.won || g.exiting {
		return
	}
	if key == "" {
		key = b.Kind()
	}
	g.pendingTrigger = &triggerRequest{level: g.level, key: key}
}

// resolveTrigger runs the queued goal protocol after the physics step:
// it looks the trigger key up in the level directory and either loads
// the next level without resetting the player, wins the game, or
// reports a fatal configuration error. Completing a level always asks
// the platform to record a high score for the level just finished.
func (g *Game) resolveTrigger() {
	req := g.pendingTrigger
	if req == nil {
		return
	}
	g.pendingTrigger = nil

	next, ok := g.directory.NextLevel(req.level, req.key)
	if !ok {
		g.requestExit("no %q target configured for level %q", req.key, req.level)
		return
	}

	finished := req.level
	score := g.player.Score()

	if next == EndOfGame {
		g.won = true
		g.emitLevelComplete(finished, score)
		g.emitGameWon(finished, score)
		return
	}

	if err := g.enterLevel(next); err != nil {
		g.requestExit("cannot load level %q: %v", next, err)
		return
	}
	g.emitLevelComplete(finished, score)
}
