// Package core provides fundamental types and utilities for the crossy
// platform. It contains no external dependencies (especially no Bubble Tea)
// to keep game logic pure and testable.
package core

// Rect is an axis-aligned box in screen-cell space.
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

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// RectF is an axis-aligned box in native pixel space. Game simulation runs
// in pixels; only the renderer converts to screen cells.
type RectF struct {
	X0, Y0 float64 // Top-left corner
	X1, Y1 float64 // Bottom-right corner
}

// NewRectF creates a box from its two corners.
func NewRectF(x0, y0, x1, y1 float64) RectF {
	return RectF{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// Intersects returns true if the boxes overlap. Boxes that merely touch on
// an edge do not overlap.
func (r RectF) Intersects(other RectF) bool {
	if r.X0 >= other.X1 || other.X0 >= r.X1 {
		return false
	}
	if r.Y0 >= other.Y1 || other.Y0 >= r.Y1 {
		return false
	}
	return true
}

// Empty reports whether the box has zero or negative area.
func (r RectF) Empty() bool {
	return r.X0 >= r.X1 || r.Y0 >= r.Y1
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
