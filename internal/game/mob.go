package game

import "tui-platformer/internal/core"

// Mob kind identifiers.
const (
	KindCloud    = "cloud"
	KindFireball = "fireball"
	KindMushroom = "mushroom"
)

// mobBehavior is the per-kind behavior table entry, resolved once at
// construction. onHit resolves combat with the player; onCollide reacts
// to contact with any other entity; step advances the mob's velocity for
// one tick.
type mobBehavior struct {
	onHit     func(w *World, m *Mob, p *Player, dir Direction)
	onCollide func(m *Mob, other Entity, dir Direction)
	step      func(w *World, m *Mob, dt float64)
}

// Mob is a hostile or ambient creature. Tempo is the movement speed in
// pixels per second; its sign encodes the walking direction and flips on
// side collisions.
type Mob struct {
	baseEntity

	vel    core.Vec2
	tempo  float64
	weight float64

	behavior mobBehavior
}

// NewMob constructs a mob of the given kind. Unknown kinds fall back to
// a generic walker of one tile in size.
func NewMob(kind string) *Mob {
	m := &Mob{
		baseEntity: baseEntity{
			category: CategoryMob,
			kind:     kind,
			box:      core.NewAABB(0, 0, TileSize, TileSize),
		},
	}

	switch kind {
	case KindCloud:
		m.tempo = 30
		m.weight = 0
		m.behavior = cloudBehavior
	case KindFireball:
		m.tempo = 0
		m.weight = 100
		m.behavior = fireballBehavior
	case KindMushroom:
		m.tempo = 100
		m.weight = 300
		m.behavior = mushroomBehavior
	default:
		m.tempo = 50
		m.weight = 100
		m.behavior = genericMobBehavior
	}
	return m
}

// Velocity returns the mob's current velocity.
func (m *Mob) Velocity() core.Vec2 { return m.vel }

// SetVelocity replaces the mob's velocity.
func (m *Mob) SetVelocity(v core.Vec2) { m.vel = v }

// Tempo returns the mob's movement speed; the sign is its direction.
func (m *Mob) Tempo() float64 { return m.tempo }

// SetTempo replaces the mob's tempo.
func (m *Mob) SetTempo(t float64) { m.tempo = t }

// Weight returns the mob's weight, used when resolving pushes between
// dynamic bodies.
func (m *Mob) Weight() float64 { return m.weight }

// onHit resolves combat between the mob and the player. dir is the
// player's position relative to the mob.
func (m *Mob) onHit(w *World, p *Player, dir Direction) {
	if m.behavior.onHit != nil {
		m.behavior.onHit(w, m, p, dir)
	}
}

// collide reacts to contact with another entity. dir is the other
// entity's position relative to the mob.
func (m *Mob) collide(other Entity, dir Direction) {
	if m.behavior.onCollide != nil {
		m.behavior.onCollide(m, other, dir)
	}
}

// stepMob advances the mob's velocity for one tick.
func (m *Mob) stepMob(w *World, dt float64) {
	if m.behavior.step != nil {
		m.behavior.step(w, m, dt)
	}
}

// flipOnSideContact reverses the tempo when the contact came from the
// left or right. Above and below contacts do not change direction.
func flipOnSideContact(m *Mob, dir Direction) {
	if dir == DirLeft || dir == DirRight {
		m.tempo = -m.tempo
	}
}

// Mushroom combat: a side or below contact damages the player by one
// health (suppressed while invincible) and knocks the player away from
// its approach direction; landing on top launches the player upward and
// removes the mushroom.
var mushroomBehavior = mobBehavior{
	onHit: func(w *World, m *Mob, p *Player, dir Direction) {
		if dir != DirAbove {
			m.collide(p, dir)
			p.ChangeHealth(-1)
			vel := p.Velocity()
			if vel.X > 0 {
				p.SetVelocity(core.Vec2{X: -WalkSpeed, Y: vel.Y})
			} else {
				p.SetVelocity(core.Vec2{X: WalkSpeed, Y: vel.Y})
			}
			return
		}
		vel := p.Velocity()
		p.SetVelocity(core.Vec2{X: vel.X, Y: StompBounce})
		w.RemoveMob(m)
	},
	onCollide: func(m *Mob, other Entity, dir Direction) {
		flipOnSideContact(m, dir)
	},
	step: func(w *World, m *Mob, dt float64) {
		m.vel.X = m.tempo
		m.vel.Y += w.Gravity() * dt
	},
}

// Clouds drift horizontally, ignore gravity and are harmless: player
// contact only reverses their direction.
var cloudBehavior = mobBehavior{
	onHit: func(w *World, m *Mob, p *Player, dir Direction) {
		flipOnSideContact(m, dir.Flip())
	},
	onCollide: func(m *Mob, other Entity, dir Direction) {
		flipOnSideContact(m, dir)
	},
	step: func(w *World, m *Mob, dt float64) {
		m.vel.X = m.tempo
		m.vel.Y = 0
	},
}

// Fireballs fall under gravity and burn the player for one health on any
// contact, then disappear.
var fireballBehavior = mobBehavior{
	onHit: func(w *World, m *Mob, p *Player, dir Direction) {
		p.ChangeHealth(-1)
		w.RemoveMob(m)
	},
	step: func(w *World, m *Mob, dt float64) {
		m.vel.X = 0
		m.vel.Y += w.Gravity() * dt
	},
}

// Generic mobs walk at their tempo and bounce off whatever they hit.
var genericMobBehavior = mobBehavior{
	onHit: func(w *World, m *Mob, p *Player, dir Direction) {
		flipOnSideContact(m, dir.Flip())
	},
	onCollide: func(m *Mob, other Entity, dir Direction) {
		flipOnSideContact(m, dir)
	},
	step: func(w *World, m *Mob, dt float64) {
		m.vel.X = m.tempo
		m.vel.Y += w.Gravity() * dt
	},
}
