package game

import (
	"testing"

	"tui-platformer/internal/core"
)

func TestThingsInRange(t *testing.T) {
	w := NewWorld(300, 300)
	w.SetSize(320, 160)

	near := NewBlock(KindBrick)
	w.AddBlock(near, 48, 0)
	far := NewBlock(KindBrick)
	w.AddBlock(far, 200, 0)
	item := NewItem(KindCoin)
	w.AddItem(item, 0, 32)

	found := w.ThingsInRange(8, 8, 64)

	has := func(e Entity) bool {
		for _, f := range found {
			if f == e {
				return true
			}
		}
		return false
	}
	if !has(near) {
		t.Error("near block not returned")
	}
	if has(far) {
		t.Error("far block returned")
	}
	if !has(item) {
		t.Error("item within radius not returned")
	}

	w.RemoveBlock(near)
	found = w.ThingsInRange(8, 8, 64)
	if has(near) {
		t.Error("removed block still returned")
	}
}

func TestContactEpisodeFiresOnce(t *testing.T) {
	w := NewWorld(0, 0)
	w.SetSize(320, 160)
	p := NewPlayer("t", 5, 100)
	w.AddPlayer(p, 0, 0)
	b := NewBlock(KindBrick)
	w.AddBlock(b, 8, 0) // overlapping the player

	begins, seps := 0, 0
	w.AddCollisionHandler(CategoryPlayer, CategoryBlock,
		func(w *World, a, b Entity, c Contact) bool {
			begins++
			return false // pass through so the overlap persists
		},
		func(w *World, a, b Entity) {
			seps++
		})

	for i := 0; i < 5; i++ {
		w.Step(0.01)
	}
	if begins != 1 {
		t.Errorf("begin fired %d times over a persistent overlap, expected 1", begins)
	}
	if seps != 0 {
		t.Errorf("separate fired %d times while still touching, expected 0", seps)
	}

	// Teleport the player away: the episode ends
	p.SetPosition(core.Vec2{X: 200, Y: 0})
	w.Step(0.01)
	if seps != 1 {
		t.Errorf("separate fired %d times after moving apart, expected 1", seps)
	}

	// Coming back starts a new episode
	p.SetPosition(core.Vec2{X: 8, Y: 0})
	w.Step(0.01)
	if begins != 2 {
		t.Errorf("begin fired %d times after re-contact, expected 2", begins)
	}
}

func TestPhysicalContactResolves(t *testing.T) {
	w := NewWorld(0, 0)
	w.SetSize(320, 160)
	p := NewPlayer("t", 5, 100)
	w.AddPlayer(p, 20, 0)
	b := NewBlock(KindBrick)
	w.AddBlock(b, 32, 0)

	w.AddCollisionHandler(CategoryPlayer, CategoryBlock,
		func(w *World, a, b Entity, c Contact) bool { return true }, nil)

	p.SetVelocity(core.Vec2{X: 100})
	w.Step(0.01)

	if p.Box().Intersects(b.Box()) {
		t.Error("player still penetrating the block after resolution")
	}
	if p.Velocity().X != 0 {
		t.Errorf("vel.X = %v after hitting a wall, expected 0", p.Velocity().X)
	}
}

func TestNonPhysicalVerdictRemembered(t *testing.T) {
	w := NewWorld(0, 0)
	w.SetSize(320, 160)
	p := NewPlayer("t", 5, 100)
	w.AddPlayer(p, 0, 0)
	b := NewBlock(KindBrick)
	w.AddBlock(b, 8, 0)

	w.AddCollisionHandler(CategoryPlayer, CategoryBlock,
		func(w *World, a, b Entity, c Contact) bool { return false }, nil)

	start := p.Position()
	for i := 0; i < 3; i++ {
		w.Step(0.01)
	}
	if p.Position() != start {
		t.Error("pass-through contact moved the player")
	}
}

func TestVelocityClamp(t *testing.T) {
	w := NewWorld(0, 300)
	w.SetSize(3200, 1600)
	p := NewPlayer("t", 5, 100)
	w.AddPlayer(p, 100, 100)
	p.SetVelocity(core.Vec2{X: 1000, Y: -1000})

	w.Step(0.01)

	v := p.Velocity()
	if v.X != 300 {
		t.Errorf("vel.X = %v, expected clamp to 300", v.X)
	}
	if v.Y != -300 {
		t.Errorf("vel.Y = %v, expected clamp to -300", v.Y)
	}
}

func TestKeepInBounds(t *testing.T) {
	w := NewWorld(0, 300)
	w.SetSize(320, 160)
	p := NewPlayer("t", 5, 100)
	w.AddPlayer(p, 0, 0)
	p.SetVelocity(core.Vec2{X: -100})

	w.Step(0.01)

	if p.Position().X != 0 {
		t.Errorf("pos.X = %v, expected clamp at 0", p.Position().X)
	}
	if p.Velocity().X != 0 {
		t.Errorf("vel.X = %v at the level edge, expected 0", p.Velocity().X)
	}
}

func TestCullFallenPlayerDies(t *testing.T) {
	w := NewWorld(300, 300)
	w.SetSize(320, 160)
	p := NewPlayer("t", 5, 100)
	w.AddPlayer(p, 0, 0)
	p.MakeInvincible(1000)
	p.SetPosition(core.Vec2{X: 0, Y: 300})

	w.Step(0.01)

	// Falling out kills outright, invincibility does not help
	if !p.IsDead() {
		t.Error("player survived falling out of the level")
	}
}

func TestCullFallenRemovesMobs(t *testing.T) {
	w := NewWorld(300, 300)
	w.SetSize(320, 160)
	m := NewMob(KindMushroom)
	w.AddMob(m, 0, 300)

	w.Step(0.01)

	if len(w.Mobs()) != 0 {
		t.Errorf("%d mobs remain after the fall, expected 0", len(w.Mobs()))
	}
}

func TestRemoveOutsideStepPrunesImmediately(t *testing.T) {
	w := NewWorld(300, 300)
	w.SetSize(320, 160)
	b := NewBlock(KindBrick)
	w.AddBlock(b, 0, 0)

	w.RemoveBlock(b)

	if len(w.Blocks()) != 0 {
		t.Errorf("%d blocks remain, expected 0", len(w.Blocks()))
	}
}

func TestReinsertedBlockKeepsID(t *testing.T) {
	w := NewWorld(300, 300)
	w.SetSize(320, 160)
	b := NewBlock(KindBrick)
	w.AddBlock(b, 48, 16)
	id := b.ID()

	w.RemoveBlock(b)
	w.AddBlock(b, 48, 16)

	if b.ID() != id {
		t.Errorf("ID changed from %d to %d on reinsertion", id, b.ID())
	}
}

func TestHandlerArgumentOrderFollowsRegistration(t *testing.T) {
	w := NewWorld(0, 0)
	w.SetSize(320, 160)
	p := NewPlayer("t", 5, 100)
	w.AddPlayer(p, 0, 0)
	m := NewMob(KindCloud) // no gravity, keeps position
	w.AddMob(m, 8, 0)
	m.SetTempo(0)

	var gotFirst Entity
	w.AddCollisionHandler(CategoryPlayer, CategoryMob,
		func(w *World, a, b Entity, c Contact) bool {
			gotFirst = a
			return false
		}, nil)

	w.Step(0.01)

	if gotFirst != p {
		t.Error("handler did not receive the player as the first argument")
	}
}
