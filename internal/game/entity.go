// Package game implements the platformer core: the physics world, the
// entity model, collision dispatch, timed effects, level building and the
// goal-trigger protocol. It contains pure logic with no terminal
// dependencies; the platform layer drives it one fixed tick at a time.
package game

import "tui-platformer/internal/core"

// TileSize is the edge length of one level tile in world pixels.
const TileSize = 16

// Category tags an entity with its collision class. Collision handlers
// are registered per category pair.
type Category int

const (
	CategoryPlayer Category = iota
	CategoryBlock
	CategoryMob
	CategoryItem
)

// String returns the category name used in logs and errors.
func (c Category) String() string {
	switch c {
	case CategoryPlayer:
		return "player"
	case CategoryBlock:
		return "block"
	case CategoryMob:
		return "mob"
	case CategoryItem:
		return "item"
	default:
		return "unknown"
	}
}

// Entity is anything that occupies space in the world: the player,
// blocks, mobs and items. Every entity belongs to exactly one world at a
// time and carries a kind identifier that selects its behavior.
type Entity interface {
	ID() uint64
	Category() Category
	Kind() string
	Box() core.AABB
	Position() core.Vec2
	SetPosition(core.Vec2)
}

// baseEntity carries the identity and geometry shared by all entity
// variants. The world assigns IDs when entities are added.
type baseEntity struct {
	id       uint64
	category Category
	kind     string
	box      core.AABB
}

func (e *baseEntity) ID() uint64         { return e.id }
func (e *baseEntity) Category() Category { return e.category }
func (e *baseEntity) Kind() string       { return e.kind }
func (e *baseEntity) Box() core.AABB     { return e.box }

func (e *baseEntity) Position() core.Vec2 { return e.box.Pos }

func (e *baseEntity) SetPosition(p core.Vec2) { e.box.Pos = p }
