// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Vec2 is a point or velocity in arena space.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the component-wise sum.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale multiplies both components by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Offset shifts the vector by (dx, dy).
func (v Vec2) Offset(dx, dy float64) Vec2 {
	return Vec2{X: v.X + dx, Y: v.Y + dy}
}

// Magnitude returns the Euclidean length.
func (v Vec2) Magnitude() float64 {
	return math.Hypot(v.X, v.Y)
}

// Box is an axis-aligned bounding box in arena space.
// Boxes are derived per frame for collision tests and never stored.
type Box struct {
	Left, Top, Right, Bottom float64
}

// BoxAround builds the box of a w*h sprite centered on c.
func BoxAround(c Vec2, w, h float64) Box {
	return Box{
		Left:   c.X - w/2,
		Right:  c.X + w/2,
		Top:    c.Y - h/2,
		Bottom: c.Y + h/2,
	}
}

// Intersects reports whether two boxes overlap.
// Touching edges do not count as overlap.
func (b Box) Intersects(o Box) bool {
	return b.Right > o.Left && b.Left < o.Right &&
		b.Bottom > o.Top && b.Top < o.Bottom
}

// Rect represents an integer cell rectangle used for screen layout.
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
