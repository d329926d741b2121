// Package core provides fundamental types and utilities for the platformer.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Vec2 is a 2D vector in world coordinates (pixels).
// Positive Y points down, matching screen space.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum of two vectors.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Scale returns the vector multiplied by a scalar.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// AABB is an axis-aligned bounding box in world coordinates.
// Pos is the top-left corner.
type AABB struct {
	Pos  Vec2
	Size Vec2
}

// NewAABB creates a bounding box from a top-left corner and dimensions.
func NewAABB(x, y, w, h float64) AABB {
	return AABB{Pos: Vec2{x, y}, Size: Vec2{w, h}}
}

// Right returns the x-coordinate of the right edge.
func (b AABB) Right() float64 {
	return b.Pos.X + b.Size.X
}

// Bottom returns the y-coordinate of the bottom edge.
func (b AABB) Bottom() float64 {
	return b.Pos.Y + b.Size.Y
}

// Center returns the center point of the box.
func (b AABB) Center() Vec2 {
	return Vec2{b.Pos.X + b.Size.X/2, b.Pos.Y + b.Size.Y/2}
}

// Intersects reports whether the two boxes overlap.
func (b AABB) Intersects(o AABB) bool {
	if b.Pos.X >= o.Right() || o.Pos.X >= b.Right() {
		return false
	}
	if b.Pos.Y >= o.Bottom() || o.Pos.Y >= b.Bottom() {
		return false
	}
	return true
}

// IntersectsCircle reports whether the box intersects a circle centered
// at (cx, cy) with the given radius.
func (b AABB) IntersectsCircle(cx, cy, radius float64) bool {
	nx := ClampF(cx, b.Pos.X, b.Right())
	ny := ClampF(cy, b.Pos.Y, b.Bottom())
	dx := cx - nx
	dy := cy - ny
	return dx*dx+dy*dy <= radius*radius
}

// Overlap returns the penetration depth of o into b along each axis.
// Both values are positive when the boxes intersect.
func (b AABB) Overlap(o AABB) (float64, float64) {
	ox := math.Min(b.Right(), o.Right()) - math.Max(b.Pos.X, o.Pos.X)
	oy := math.Min(b.Bottom(), o.Bottom()) - math.Max(b.Pos.Y, o.Pos.Y)
	return ox, oy
}

// Rect represents an axis-aligned rectangle in screen cells, used for drawing.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
