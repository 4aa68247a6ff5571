// Package core provides fundamental types and utilities shared by the
// simulation and the terminal presentation. It contains no external
// dependencies (especially no Bubble Tea) to keep game logic pure and
// testable.
package core

// Rect is an integer axis-aligned rectangle used for screen-cell drawing.
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

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// RectF is a float64 axis-aligned rectangle in world units. The simulation
// does all collision detection with RectF; the integer Rect above exists only
// for the cell-based screen buffer.
type RectF struct {
	X, Y, W, H float64
}

// NewRectF creates a new world-unit rectangle.
func NewRectF(x, y, w, h float64) RectF {
	return RectF{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// Intersects reports whether the two rectangles overlap with positive area.
// The comparisons are strict, so rectangles that merely share an edge do not
// intersect.
func (r RectF) Intersects(other RectF) bool {
	if r.Right() <= other.X || r.X >= other.Right() {
		return false
	}
	if r.Bottom() <= other.Y || r.Y >= other.Bottom() {
		return false
	}
	return true
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
