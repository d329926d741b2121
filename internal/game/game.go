package game

import (
	"fmt"
	"math/rand"

	"tui-platformer/internal/config"
	"tui-platformer/internal/core"
)

// Game drives one platformer session: it owns the world of the active
// level, the timed-effect scheduler and the player, and advances them
// one fixed tick at a time. The platform layer supplies input frames
// and consumes state and events; it never touches the world directly.
type Game struct {
	cfg       config.Config
	directory LevelDirectory
	source    LevelSource
	runtime   core.RuntimeConfig
	rng       *rand.Rand

	world   *World
	effects *Scheduler
	player  *Player

	level     string
	tickCount int

	paused  bool
	won     bool
	exiting bool

	pendingTrigger *triggerRequest
	events         []core.Event
}

// New creates a game for the given configuration. The configuration
// itself serves as the level directory; level grids come from the
// configured level directory with builtin fallback.
func New(cfg config.Config) *Game {
	return &Game{
		cfg:       cfg,
		directory: cfg,
		source:    FileLevelSource{Dir: cfg.LevelDir},
	}
}

// ID returns the identifier used for CLI commands and score storage.
func (g *Game) ID() string { return "platformer" }

// Title returns the display name.
func (g *Game) Title() string { return "Platformer" }

// Reset starts (or restarts) the session from the configured starting
// level with a fresh player.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.player = NewPlayer(g.cfg.Name, g.cfg.Health, g.cfg.Mass)
	g.effects = NewScheduler()
	g.tickCount = 0
	g.paused = false
	g.won = false
	g.exiting = false
	g.pendingTrigger = nil
	g.events = nil

	if err := g.enterLevel(g.cfg.Start); err != nil {
		g.requestExit("cannot load starting level %q: %v", g.cfg.Start, err)
	}
}

// enterLevel builds the world for the named level and places the player
// at the configured spawn. The player object carries over unchanged:
// score, health and invincibility survive level transitions triggered
// by goals.
func (g *Game) enterLevel(name string) error {
	grid, err := g.source.Grid(name)
	if err != nil {
		return err
	}

	world := NewWorld(g.cfg.Gravity, g.cfg.MaxVelocity)
	BuildWorld(world, grid, g.rng)

	g.player.DetachTunnel()
	g.player.SetVelocity(core.Vec2{})
	world.AddPlayer(g.player, float64(g.cfg.X)*TileSize, float64(g.cfg.Y)*TileSize)

	g.installCollisionHandlers(world)
	g.effects.Reset()
	g.world = world
	g.level = name
	return nil
}

// World exposes the active world, mainly for tests and rendering.
func (g *Game) World() *World { return g.world }

// PlayerRef returns the session's player.
func (g *Game) PlayerRef() *Player { return g.player }

// Effects returns the timed-effect scheduler.
func (g *Game) Effects() *Scheduler { return g.effects }

// Level returns the name of the active level.
func (g *Game) Level() string { return g.level }

// tickDelta returns the fixed simulation delta in seconds.
func (g *Game) tickDelta() float64 {
	rate := g.runtime.TickRate
	if rate <= 0 {
		rate = core.DefaultConfig().TickRate
	}
	return 1.0 / float64(rate)
}

// Step advances the simulation by one fixed tick: player commands,
// physics with collision dispatch, then the timed-effect countdowns and
// any queued goal trigger. While paused or after game over, the step is
// skipped entirely.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && !g.finished() {
		g.paused = !g.paused
	}
	if g.paused || g.finished() {
		return core.StepResult{State: g.State(), Events: g.drainEvents()}
	}

	g.applyInput(in)

	g.world.Step(g.tickDelta())
	g.effects.Tick(g.world)
	g.resolveTrigger()
	g.tickCount++

	return core.StepResult{State: g.State(), Events: g.drainEvents()}
}

// drainEvents hands the queued events over to the caller.
func (g *Game) drainEvents() []core.Event {
	events := g.events
	g.events = nil
	return events
}

// finished reports whether the session has ended one way or another.
func (g *Game) finished() bool {
	return g.won || g.exiting || g.player == nil || g.player.IsDead()
}

// applyInput translates the frame's actions into player commands.
func (g *Game) applyInput(in core.InputFrame) {
	vel := g.player.Velocity()

	if in.Has(core.ActionLeft) {
		vel.X = -WalkSpeed
		g.player.SetVelocity(vel)
	} else if in.Has(core.ActionRight) {
		vel.X = WalkSpeed
		g.player.SetVelocity(vel)
	}

	// Jump only from the ground: vertical velocity must be zero.
	if in.Has(core.ActionJump) && vel.Y == 0 {
		vel = g.player.Velocity()
		vel.Y = JumpSpeed
		g.player.SetVelocity(vel)
	}

	// Duck enters the tunnel the player is standing on, firing its goal
	// trigger and detaching.
	if in.Has(core.ActionDuck) && g.player.OnTunnel() {
		tunnel := g.player.Tunnel()
		g.fireTrigger(tunnel, tunnel.TriggerKey())
		g.player.DetachTunnel()
	}
}

// State returns the current game state for the platform layer.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Level:  g.level,
		Won:    g.won,
		Paused: g.paused,
	}
	if g.player != nil {
		st.Score = g.player.Score()
		st.Health = g.player.Health()
		st.MaxHealth = g.player.MaxHealth()
		st.Invincible = g.player.IsInvincible()
		st.GameOver = g.player.IsDead() || g.exiting
	}
	return st
}

func (g *Game) emitLevelComplete(level string, score int) {
	g.events = append(g.events, core.Event{
		Kind:  core.EventLevelComplete,
		Level: level,
		Score: score,
	})
}

func (g *Game) emitGameWon(level string, score int) {
	g.events = append(g.events, core.Event{
		Kind:  core.EventGameWon,
		Level: level,
		Score: score,
	})
}

// requestExit records a fatal condition and asks the host to terminate.
func (g *Game) requestExit(format string, args ...any) {
	g.exiting = true
	g.events = append(g.events, core.Event{
		Kind:    core.EventExitRequested,
		Level:   g.level,
		Message: fmt.Sprintf(format, args...),
	})
}
