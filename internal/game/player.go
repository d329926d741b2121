package game

import "tui-platformer/internal/core"

// Default player movement velocities, in pixels per second.
const (
	WalkSpeed   = 100.0  // Horizontal speed set by move commands
	JumpSpeed   = -200.0 // Vertical speed set by jump (negative is up)
	StompBounce = -200.0 // Upward speed after stomping a mob
	BounceBoost = -300.0 // Upward speed from a bounce block
)

// InvincibleTicks is the default invincibility duration granted by a
// star, in simulation ticks.
const InvincibleTicks = 1000

// Player is the single controllable entity of a world.
type Player struct {
	baseEntity

	vel  core.Vec2
	mass float64

	name      string
	health    int
	maxHealth int
	score     int

	invincibleTicks int
	tunnel          *Block // Set while standing on an active tunnel
}

// NewPlayer constructs a player with full health at the origin.
func NewPlayer(name string, maxHealth int, mass float64) *Player {
	return &Player{
		baseEntity: baseEntity{
			category: CategoryPlayer,
			kind:     "player",
			box:      core.NewAABB(0, 0, TileSize, TileSize),
		},
		name:      name,
		health:    maxHealth,
		maxHealth: maxHealth,
		mass:      mass,
	}
}

// Name returns the player's character name.
func (p *Player) Name() string { return p.name }

// Velocity returns the player's current velocity.
func (p *Player) Velocity() core.Vec2 { return p.vel }

// SetVelocity replaces the player's velocity.
func (p *Player) SetVelocity(v core.Vec2) { p.vel = v }

// Mass returns the player's body mass, used when resolving pushes
// between dynamic bodies.
func (p *Player) Mass() float64 { return p.mass }

// Health returns the player's current health.
func (p *Player) Health() int { return p.health }

// MaxHealth returns the player's maximum health.
func (p *Player) MaxHealth() int { return p.maxHealth }

// IsDead reports whether the player has no health left.
func (p *Player) IsDead() bool { return p.health <= 0 }

// ChangeHealth adjusts health by delta, clamped to [0, max]. Damage is
// suppressed while the player is invincible; healing always applies.
func (p *Player) ChangeHealth(delta int) {
	if delta < 0 && p.IsInvincible() {
		return
	}
	p.health = core.Clamp(p.health+delta, 0, p.maxHealth)
}

// Score returns the player's score.
func (p *Player) Score() int { return p.score }

// AddScore increases the score. The score never decreases.
func (p *Player) AddScore(delta int) {
	if delta > 0 {
		p.score += delta
	}
}

// MakeInvincible starts an invincibility countdown of the given number
// of ticks.
func (p *Player) MakeInvincible(ticks int) {
	p.invincibleTicks = ticks
}

// IsInvincible reports whether hostile contact damage is currently
// suppressed.
func (p *Player) IsInvincible() bool { return p.invincibleTicks > 0 }

// InvincibleTicksLeft returns the remaining invincibility countdown.
func (p *Player) InvincibleTicksLeft() int { return p.invincibleTicks }

// tickInvincibility decrements the countdown. Called exactly once per
// simulation tick by the effect scheduler; never goes below zero.
func (p *Player) tickInvincibility() {
	if p.invincibleTicks > 0 {
		p.invincibleTicks--
	}
}

// AttachTunnel records the tunnel the player is standing on.
func (p *Player) AttachTunnel(t *Block) { p.tunnel = t }

// DetachTunnel clears the tunnel attachment.
func (p *Player) DetachTunnel() { p.tunnel = nil }

// Tunnel returns the tunnel the player is standing on, or nil.
func (p *Player) Tunnel() *Block { return p.tunnel }

// OnTunnel reports whether the player is attached to a tunnel.
func (p *Player) OnTunnel() bool { return p.tunnel != nil }
