// Package core provides fundamental types and utilities for the ricochet game.
// It contains no UI dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Two frames are used throughout the game:
//
//	world frame   - positions; x grows right, y grows down (screen rows)
//	physics frame - velocities, orientations, gravity; y grows up
//
// ToPhysics and ToWorld convert direction vectors between the two.

// ToPhysics converts a world-frame direction into the physics frame.
func ToPhysics(v mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{v[0], -v[1]}
}

// ToWorld converts a physics-frame direction into the world frame.
func ToWorld(v mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{v[0], -v[1]}
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b mgl32.Vec2) float32 {
	return a.Sub(b).Len()
}

// LineDistance returns the perpendicular distance from p to the line a·x + b·y + c = 0.
// A degenerate line (a = b = 0) has no defined distance and yields 0.
func LineDistance(a, b, c float32, p mgl32.Vec2) float32 {
	norm := float32(math.Sqrt(float64(a*a + b*b)))
	if norm == 0 {
		return 0
	}
	return mgl32.Abs(a*p[0]+b*p[1]+c) / norm
}

// Line is an infinite line in implicit form A·x + B·y + C = 0.
type Line struct {
	A, B, C float32
}

// LineThrough builds the line through p with the given normal.
// The normal is expected to be unit length so Eval returns a true distance.
func LineThrough(p, normal mgl32.Vec2) Line {
	return Line{
		A: normal[0],
		B: normal[1],
		C: -(normal[0]*p[0] + normal[1]*p[1]),
	}
}

// Eval returns A·x + B·y + C for the given point.
func (l Line) Eval(p mgl32.Vec2) float32 {
	return l.A*p[0] + l.B*p[1] + l.C
}

// Distance returns the unsigned distance from p to the line.
func (l Line) Distance(p mgl32.Vec2) float32 {
	return LineDistance(l.A, l.B, l.C, p)
}

// Normal returns the (A, B) normal of the line.
func (l Line) Normal() mgl32.Vec2 {
	return mgl32.Vec2{l.A, l.B}
}

// SafeNormalize returns v scaled to unit length.
// Zero-length vectors are returned unchanged with ok = false.
func SafeNormalize(v mgl32.Vec2) (n mgl32.Vec2, ok bool) {
	l := v.Len()
	if l == 0 || math.IsNaN(float64(l)) {
		return mgl32.Vec2{}, false
	}
	return v.Mul(1 / l), true
}

// Perpendicular returns v rotated by +90° in the plane: (-y, x).
func Perpendicular(v mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{-v[1], v[0]}
}

// Rotate rotates v counter-clockwise by the given angle in degrees.
func Rotate(v mgl32.Vec2, degrees float32) mgl32.Vec2 {
	return mgl32.Rotate2D(mgl32.DegToRad(degrees)).Mul2x1(v)
}

// SignedAngle returns the angle in radians that rotates from onto to.
// The result lies in (-π, π]; it is 0 when either vector is zero.
func SignedAngle(from, to mgl32.Vec2) float32 {
	cross := from[0]*to[1] - from[1]*to[0]
	dot := from.Dot(to)
	if cross == 0 && dot == 0 {
		return 0
	}
	return float32(math.Atan2(float64(cross), float64(dot)))
}

// Rect represents an axis-aligned bounding box on the character grid.
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

// ClampF restricts a float32 value to be within [min, max].
func ClampF(val, min, max float32) float32 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
