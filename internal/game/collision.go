package game

import (
	"math"

	"tui-platformer/internal/core"
)

// Direction classifies a contact normal relative to the colliding pair.
type Direction int

const (
	DirNone Direction = iota
	DirAbove
	DirBelow
	DirLeft
	DirRight
)

// String returns a short name for the direction.
func (d Direction) String() string {
	switch d {
	case DirAbove:
		return "above"
	case DirBelow:
		return "below"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Flip returns the direction seen from the other side of the contact.
func (d Direction) Flip() Direction {
	switch d {
	case DirAbove:
		return DirBelow
	case DirBelow:
		return DirAbove
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

// CollisionDirection classifies where a sits relative to b: DirAbove
// means a is above b, DirLeft means a is to the left of b, and so on.
// The axis with the smaller penetration decides, so a body landing on
// top of a wide block reads as above even when their centers are offset
// horizontally.
func CollisionDirection(a, b core.AABB) Direction {
	ca := a.Center()
	cb := b.Center()
	dx := ca.X - cb.X
	dy := ca.Y - cb.Y

	px := (a.Size.X+b.Size.X)/2 - math.Abs(dx)
	py := (a.Size.Y+b.Size.Y)/2 - math.Abs(dy)

	if py <= px {
		if dy < 0 {
			return DirAbove
		}
		return DirBelow
	}
	if dx < 0 {
		return DirLeft
	}
	return DirRight
}

// Contact describes a collision-begin event passed to handlers.
// Dir is the direction of the first entity of the pair relative to the
// second, computed from the boxes at the moment of contact.
type Contact struct {
	Dir Direction
}
