package game

import (
	"fmt"
	"math"
	"testing"

	"tui-platformer/internal/config"
	"tui-platformer/internal/core"
)

// staticSource serves level grids from a map, bypassing the filesystem.
type staticSource map[string][]string

func (s staticSource) Grid(name string) ([]string, error) {
	grid, ok := s[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLevelNotFound, name)
	}
	return grid, nil
}

// flatGrid is a minimal level: empty air over a floor of brick base.
var flatGrid = []string{
	"          ",
	"          ",
	"%%%%%%%%%%",
}

func testConfig(graph map[string]map[string]string) config.Config {
	return config.Config{
		Gravity:     300,
		Start:       "main",
		X:           1,
		Y:           1,
		Mass:        100,
		Health:      5,
		MaxVelocity: 300,
		Name:        "Tester",
		Levels:      graph,
	}
}

func newTestGame(t *testing.T, levels map[string][]string, graph map[string]map[string]string) *Game {
	t.Helper()
	g := New(testConfig(graph))
	g.source = staticSource(levels)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 100, Seed: 1})
	if g.exiting {
		t.Fatalf("game failed to start: %+v", g.drainEvents())
	}
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestResetPlacesPlayerAtSpawn(t *testing.T) {
	g := newTestGame(t, map[string][]string{"main": flatGrid}, nil)

	p := g.PlayerRef()
	if p == nil {
		t.Fatal("no player after Reset")
	}
	pos := p.Position()
	if pos.X != TileSize || pos.Y != TileSize {
		t.Errorf("spawn position = %v, expected {16 16}", pos)
	}
	if p.Health() != 5 {
		t.Errorf("Health() = %d, expected 5", p.Health())
	}
	if g.Level() != "main" {
		t.Errorf("Level() = %q, expected main", g.Level())
	}
}

func TestWalkCommandsSetVelocity(t *testing.T) {
	g := newTestGame(t, map[string][]string{"main": flatGrid}, nil)
	p := g.PlayerRef()

	g.applyInput(frame(core.ActionRight))
	if p.Velocity().X != WalkSpeed {
		t.Errorf("vel.X after right = %v, expected %v", p.Velocity().X, WalkSpeed)
	}

	g.applyInput(frame(core.ActionLeft))
	if p.Velocity().X != -WalkSpeed {
		t.Errorf("vel.X after left = %v, expected %v", p.Velocity().X, -WalkSpeed)
	}
}

func TestJumpOnlyWhenGrounded(t *testing.T) {
	g := newTestGame(t, map[string][]string{"main": flatGrid}, nil)
	p := g.PlayerRef()

	// Grounded: vertical velocity is zero
	g.applyInput(frame(core.ActionJump))
	if p.Velocity().Y != JumpSpeed {
		t.Errorf("vel.Y after grounded jump = %v, expected %v", p.Velocity().Y, JumpSpeed)
	}

	// Airborne: jump command is ignored
	g.applyInput(frame(core.ActionJump))
	if p.Velocity().Y != JumpSpeed {
		t.Errorf("vel.Y after airborne jump = %v, expected unchanged %v", p.Velocity().Y, JumpSpeed)
	}
}

func TestPlayerLandsOnFloor(t *testing.T) {
	g := newTestGame(t, map[string][]string{"main": flatGrid}, nil)
	p := g.PlayerRef()

	for i := 0; i < 50; i++ {
		g.Step(core.NewInputFrame())
	}

	// Floor top is at row 2; the player rests on it
	if math.Abs(p.Box().Bottom()-2*TileSize) > 1e-6 {
		t.Errorf("player bottom = %v, expected %v", p.Box().Bottom(), 2*TileSize)
	}
	if p.Velocity().Y != 0 {
		t.Errorf("vel.Y at rest = %v, expected 0", p.Velocity().Y)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(t, map[string][]string{"main": flatGrid}, nil)
	p := g.PlayerRef()

	res := g.Step(frame(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("State.Paused = false after pause")
	}

	before := p.Position()
	g.Step(frame(core.ActionRight))
	if p.Position() != before {
		t.Error("player moved while paused")
	}

	res = g.Step(frame(core.ActionPause))
	if res.State.Paused {
		t.Error("State.Paused = true after unpause")
	}
}

func TestDuckOnTunnelFiresTrigger(t *testing.T) {
	graph := map[string]map[string]string{
		"main": {"tunnel": "cellar"},
	}
	levels := map[string][]string{
		"main":   flatGrid,
		"cellar": flatGrid,
	}
	g := newTestGame(t, levels, graph)
	p := g.PlayerRef()

	tunnel := NewBlock(KindTunnel)
	g.World().AddBlock(tunnel, 96, 0)
	p.AttachTunnel(tunnel)

	res := g.Step(frame(core.ActionDuck))

	if g.Level() != "cellar" {
		t.Errorf("Level() = %q, expected cellar", g.Level())
	}
	if len(res.Events) != 1 || res.Events[0].Kind != core.EventLevelComplete {
		t.Errorf("events = %+v, expected one EventLevelComplete", res.Events)
	}
	if res.Events[0].Level != "main" {
		t.Errorf("completed level = %q, expected main", res.Events[0].Level)
	}
	if p.OnTunnel() {
		t.Error("player still attached to tunnel after duck")
	}
}

func TestDuckWithoutTunnelDoesNothing(t *testing.T) {
	g := newTestGame(t, map[string][]string{"main": flatGrid}, nil)

	res := g.Step(frame(core.ActionDuck))
	if g.Level() != "main" {
		t.Errorf("Level() = %q, expected main", g.Level())
	}
	if len(res.Events) != 0 {
		t.Errorf("events = %+v, expected none", res.Events)
	}
}

func TestGameOverStopsStepping(t *testing.T) {
	g := newTestGame(t, map[string][]string{"main": flatGrid}, nil)
	p := g.PlayerRef()

	p.ChangeHealth(-5)
	res := g.Step(core.NewInputFrame())
	if !res.State.GameOver {
		t.Fatal("State.GameOver = false after death")
	}

	before := p.Position()
	g.Step(frame(core.ActionRight))
	if p.Position() != before {
		t.Error("player moved after game over")
	}
}

func TestResetAfterGameOver(t *testing.T) {
	g := newTestGame(t, map[string][]string{"main": flatGrid}, nil)
	g.PlayerRef().ChangeHealth(-5)
	g.PlayerRef().AddScore(3)

	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 100, Seed: 2})

	st := g.State()
	if st.GameOver {
		t.Error("GameOver = true after Reset")
	}
	if st.Health != 5 {
		t.Errorf("Health = %d after Reset, expected 5", st.Health)
	}
	if st.Score != 0 {
		t.Errorf("Score = %d after Reset, expected 0", st.Score)
	}
	if st.Level != "main" {
		t.Errorf("Level = %q after Reset, expected main", st.Level)
	}
}

func TestDeterministicReplay(t *testing.T) {
	levels := map[string][]string{"main": {
		"              ",
		"   $          ",
		"       @      ",
		"%%%%%%%%%%%%%%",
	}}

	run := func() core.GameState {
		g := newTestGame(t, levels, nil)
		for i := 0; i < 200; i++ {
			f := core.NewInputFrame()
			if i == 10 {
				f.Set(core.ActionJump)
			}
			if i > 5 && i < 150 {
				f.Set(core.ActionRight)
			}
			g.Step(f)
		}
		return g.State()
	}

	first := run()
	second := run()
	if first != second {
		t.Errorf("replay diverged: first %+v, second %+v", first, second)
	}
}

func TestStateReflectsPlayer(t *testing.T) {
	g := newTestGame(t, map[string][]string{"main": flatGrid}, nil)
	p := g.PlayerRef()

	p.AddScore(7)
	p.ChangeHealth(-2)
	p.MakeInvincible(10)

	st := g.State()
	if st.Score != 7 {
		t.Errorf("Score = %d, expected 7", st.Score)
	}
	if st.Health != 3 {
		t.Errorf("Health = %d, expected 3", st.Health)
	}
	if st.MaxHealth != 5 {
		t.Errorf("MaxHealth = %d, expected 5", st.MaxHealth)
	}
	if !st.Invincible {
		t.Error("Invincible = false, expected true")
	}
}

func TestMissingStartLevelExits(t *testing.T) {
	g := New(testConfig(nil))
	g.source = staticSource{}
	g.Reset(core.RuntimeConfig{TickRate: 100, Seed: 1})

	res := g.Step(core.NewInputFrame())
	if !res.State.GameOver {
		t.Error("GameOver = false with missing start level")
	}
	found := false
	for _, ev := range res.Events {
		if ev.Kind == core.EventExitRequested {
			found = true
		}
	}
	if !found {
		t.Errorf("events = %+v, expected EventExitRequested", res.Events)
	}
}
