// Package core provides fundamental types and utilities for the pong runtime.
// It contains no external dependencies (especially no terminal or audio
// libraries) to keep the renderer and physics pure and testable.
package core

// Axis selects one coordinate of a Vec2.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
)

// Axes lists both axes in evaluation order.
var Axes = [2]Axis{AxisX, AxisY}

// String returns the axis name.
func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// Vec2 is a 2-D integer vector in pixel units.
type Vec2 struct {
	X, Y int
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y int) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by k.
func (v Vec2) Scale(k int) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Neg returns -v.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Axis returns the component along a.
func (v Vec2) Axis(a Axis) int {
	if a == AxisX {
		return v.X
	}
	return v.Y
}

// With returns a copy of v with the component along a replaced by n.
func (v Vec2) With(a Axis, n int) Vec2 {
	if a == AxisX {
		v.X = n
	} else {
		v.Y = n
	}
	return v
}

// Region is an axis-aligned rectangle whose corners are both inclusive.
// A well-formed region has TopLeft <= BotRight on both axes.
type Region struct {
	TopLeft  Vec2
	BotRight Vec2
}

// NewRegion creates a region from two inclusive corners.
func NewRegion(x0, y0, x1, y1 int) Region {
	return Region{TopLeft: Vec2{x0, y0}, BotRight: Vec2{x1, y1}}
}

// RegionAround creates the region spanning center-half to center+half.
func RegionAround(center, half Vec2) Region {
	return Region{TopLeft: center.Sub(half), BotRight: center.Add(half)}
}

// Width returns the number of pixel columns covered by the region.
func (r Region) Width() int {
	return r.BotRight.X - r.TopLeft.X + 1
}

// Height returns the number of pixel rows covered by the region.
func (r Region) Height() int {
	return r.BotRight.Y - r.TopLeft.Y + 1
}

// Area returns Width*Height, or 0 for a malformed region.
func (r Region) Area() int {
	if r.Empty() {
		return 0
	}
	return r.Width() * r.Height()
}

// Empty reports whether the region covers no pixels.
func (r Region) Empty() bool {
	return r.TopLeft.X > r.BotRight.X || r.TopLeft.Y > r.BotRight.Y
}

// Contains returns true if the pixel p lies inside the region.
func (r Region) Contains(p Vec2) bool {
	return p.X >= r.TopLeft.X && p.X <= r.BotRight.X &&
		p.Y >= r.TopLeft.Y && p.Y <= r.BotRight.Y
}

// Intersects returns true if the two regions share at least one pixel.
// Uses standard AABB overlap on both axes.
func (r Region) Intersects(o Region) bool {
	if r.TopLeft.X > o.BotRight.X || o.TopLeft.X > r.BotRight.X {
		return false
	}
	if r.TopLeft.Y > o.BotRight.Y || o.TopLeft.Y > r.BotRight.Y {
		return false
	}
	return true
}

// Within returns true if r lies entirely inside o.
func (r Region) Within(o Region) bool {
	return r.TopLeft.X >= o.TopLeft.X && r.TopLeft.Y >= o.TopLeft.Y &&
		r.BotRight.X <= o.BotRight.X && r.BotRight.Y <= o.BotRight.Y
}

// Union returns the smallest region containing both regions.
func (r Region) Union(o Region) Region {
	return Region{
		TopLeft:  Vec2{Min(r.TopLeft.X, o.TopLeft.X), Min(r.TopLeft.Y, o.TopLeft.Y)},
		BotRight: Vec2{Max(r.BotRight.X, o.BotRight.X), Max(r.BotRight.Y, o.BotRight.Y)},
	}
}

// Clip returns the intersection of r and o. ok is false when they do not overlap.
func (r Region) Clip(o Region) (clipped Region, ok bool) {
	clipped = Region{
		TopLeft:  Vec2{Max(r.TopLeft.X, o.TopLeft.X), Max(r.TopLeft.Y, o.TopLeft.Y)},
		BotRight: Vec2{Min(r.BotRight.X, o.BotRight.X), Min(r.BotRight.Y, o.BotRight.Y)},
	}
	return clipped, !clipped.Empty()
}

// Inset shrinks the region by n pixels on every side.
func (r Region) Inset(n int) Region {
	return Region{
		TopLeft:  r.TopLeft.Add(Vec2{n, n}),
		BotRight: r.BotRight.Sub(Vec2{n, n}),
	}
}

// Translate moves the region by d.
func (r Region) Translate(d Vec2) Region {
	return Region{TopLeft: r.TopLeft.Add(d), BotRight: r.BotRight.Add(d)}
}

// Center returns the center pixel of the region (rounded toward TopLeft).
func (r Region) Center() Vec2 {
	return Vec2{(r.TopLeft.X + r.BotRight.X) / 2, (r.TopLeft.Y + r.BotRight.Y) / 2}
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

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
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
