package game

import "tui-platformer/internal/core"

// Item kind identifiers.
const (
	KindCoin = "coin"
	KindStar = "star"
)

// Item is a collectible. Picking one up removes it from the world and
// applies its effect to the player; the collect behavior is resolved
// from the kind at construction.
type Item struct {
	baseEntity

	collect func(p *Player)
}

// NewItem constructs an item of the given kind. Unknown kinds are
// collectible but have no effect.
func NewItem(kind string) *Item {
	it := &Item{
		baseEntity: baseEntity{
			category: CategoryItem,
			kind:     kind,
			box:      core.NewAABB(0, 0, TileSize, TileSize),
		},
	}

	switch kind {
	case KindCoin:
		it.collect = func(p *Player) { p.AddScore(1) }
	case KindStar:
		it.collect = func(p *Player) { p.MakeInvincible(InvincibleTicks) }
	}
	return it
}

// Collect applies the item's effect to the player.
func (it *Item) Collect(p *Player) {
	if it.collect != nil {
		it.collect(p)
	}
}
