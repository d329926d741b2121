package game

import (
	"math/rand"

	"tui-platformer/internal/core"
)

// Block kind identifiers.
const (
	KindBrick        = "brick"
	KindBrickBase    = "brick_base"
	KindCube         = "cube"
	KindMysteryEmpty = "mystery_empty"
	KindMysteryCoin  = "mystery_coin"
	KindBounce       = "bounce_block"
	KindFlag         = "flag"
	KindTunnel       = "tunnel"
	KindSwitch       = "switch"
)

// Switch defaults: how long a press lasts and how far the brick-hiding
// area effect reaches.
const (
	SwitchPressedTicks    = 1000
	SwitchInvisibleRadius = 64.0
	InvisibleBlockTicks   = 1000
)

// Goal block footprints in tiles.
var goalSizes = map[string][2]int{
	KindFlag:   {2, 9},
	KindTunnel: {2, 2},
}

// Block is a static world tile. Blocks participate in collisions but are
// not integrated by the physics step; only the switch carries per-tick
// state (its pressed countdown).
//
// Behavioral subtypes are expressed through the kind-keyed onHit table
// plus the optional fields below, resolved once at construction.
type Block struct {
	baseEntity

	onHit func(w *World, b *Block, p *Player, dir Direction)

	// Mystery block drop pool.
	drop      string
	dropsLeft int
	active    bool

	// Switch state.
	pressedTicks    int
	invisibleRadius float64

	// Goal trigger key ("goal" for flags, the block's own kind for
	// tunnels). Empty for non-goal blocks.
	triggerKey string
}

// NewBlock constructs a block of the given kind. Unknown kinds become
// plain solid blocks of one tile.
func NewBlock(kind string) *Block {
	b := &Block{
		baseEntity: baseEntity{
			category: CategoryBlock,
			kind:     kind,
			box:      core.NewAABB(0, 0, TileSize, TileSize),
		},
	}

	if size, ok := goalSizes[kind]; ok {
		b.box.Size = core.Vec2{X: float64(size[0]) * TileSize, Y: float64(size[1]) * TileSize}
	}

	switch kind {
	case KindBounce:
		b.onHit = bounceOnHit
	case KindSwitch:
		b.invisibleRadius = SwitchInvisibleRadius
	case KindFlag:
		b.triggerKey = "goal"
	case KindTunnel:
		b.triggerKey = KindTunnel
	}
	return b
}

// NewMysteryBlock constructs a mystery block. drop is the item kind it
// releases when hit from above; the number of drops is picked uniformly
// from [dropMin, dropMax]. A drop count of zero makes the block start
// spent.
func NewMysteryBlock(drop string, dropMin, dropMax int, rng *rand.Rand) *Block {
	b := NewBlock(KindMysteryCoin)
	if drop == "" {
		b.kind = KindMysteryEmpty
		return b
	}
	b.drop = drop
	b.dropsLeft = dropMin
	if dropMax > dropMin {
		b.dropsLeft = dropMin + rng.Intn(dropMax-dropMin+1)
	}
	b.active = b.dropsLeft > 0
	b.onHit = mysteryOnHit
	return b
}

// Hit runs the block's own on-hit behavior, if any.
func (b *Block) Hit(w *World, p *Player, dir Direction) {
	if b.onHit != nil {
		b.onHit(w, b, p, dir)
	}
}

// IsActive reports whether a mystery block still has items to drop.
// Non-mystery blocks are never active.
func (b *Block) IsActive() bool { return b.active }

// DropsLeft returns the remaining drop count of a mystery block.
func (b *Block) DropsLeft() int { return b.dropsLeft }

// IsGoal reports whether the block resolves a goal trigger.
func (b *Block) IsGoal() bool { return b.triggerKey != "" }

// TriggerKey returns the configuration key this goal block fires with.
func (b *Block) TriggerKey() string { return b.triggerKey }

// Press starts the switch countdown. Pressing an already-pressed switch
// does nothing: the countdown is neither reset nor extended.
func (b *Block) Press(ticks int) {
	if b.pressedTicks > 0 {
		return
	}
	b.pressedTicks = ticks
}

// IsPressed reports whether the switch countdown is running.
func (b *Block) IsPressed() bool { return b.pressedTicks > 0 }

// PressedTicksLeft returns the remaining pressed countdown.
func (b *Block) PressedTicksLeft() int { return b.pressedTicks }

// InvisibleRadius is the reach of the switch's brick-hiding effect.
func (b *Block) InvisibleRadius() float64 { return b.invisibleRadius }

// tickPressed decrements the pressed countdown. Called exactly once per
// simulation tick by the effect scheduler; never goes below zero.
func (b *Block) tickPressed() {
	if b.pressedTicks > 0 {
		b.pressedTicks--
	}
}

// bounceOnHit launches the player upward when landing on the block.
func bounceOnHit(w *World, b *Block, p *Player, dir Direction) {
	if dir != DirAbove {
		return
	}
	vel := p.Velocity()
	p.SetVelocity(core.Vec2{X: vel.X, Y: BounceBoost})
}

// mysteryOnHit pops one item from the drop pool on an above hit. The
// item appears one tile over the block. The block goes inactive when the
// pool runs out.
func mysteryOnHit(w *World, b *Block, p *Player, dir Direction) {
	if dir != DirAbove || !b.active {
		return
	}
	pos := b.Position()
	w.AddItem(NewItem(b.drop), pos.X, pos.Y-TileSize)
	b.dropsLeft--
	if b.dropsLeft <= 0 {
		b.active = false
	}
}
