// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea or Ebitengine) to keep
// game logic pure and testable.
package core

import "math"

// Vec2 is a point or vector in world coordinates (y grows downwards).
type Vec2 struct {
	X, Y float64
}

// V is shorthand for constructing a Vec2.
func V(x, y float64) Vec2 {
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

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the Euclidean distance between two points.
func Dist(a, b Vec2) float64 {
	return b.Sub(a).Len()
}

// Rotate returns v rotated around the origin by angle radians.
func (v Vec2) Rotate(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{X: v.X*cos - v.Y*sin, Y: v.X*sin + v.Y*cos}
}

// Rect is an axis-aligned rectangle in world coordinates.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Contains returns true if p lies inside the rectangle (right/bottom edges exclusive).
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Triangle is three vertices in any winding order.
type Triangle struct {
	A, B, C Vec2
}

// Translate returns the triangle shifted by d.
func (t Triangle) Translate(d Vec2) Triangle {
	return Triangle{A: t.A.Add(d), B: t.B.Add(d), C: t.C.Add(d)}
}

// Centroid returns the average of the three vertices.
func (t Triangle) Centroid() Vec2 {
	return Vec2{X: (t.A.X + t.B.X + t.C.X) / 3, Y: (t.A.Y + t.B.Y + t.C.Y) / 3}
}

// Bounds returns the bounding box of the triangle.
func (t Triangle) Bounds() Rect {
	minX := math.Min(t.A.X, math.Min(t.B.X, t.C.X))
	maxX := math.Max(t.A.X, math.Max(t.B.X, t.C.X))
	minY := math.Min(t.A.Y, math.Min(t.B.Y, t.C.Y))
	maxY := math.Max(t.A.Y, math.Max(t.B.Y, t.C.Y))
	return NewRect(minX, minY, maxX-minX, maxY-minY)
}

// PointInTriangle reports whether p lies inside or on the edge of triangle abc.
// Either winding works: the sign of the determinant picks which side of zero the
// barycentric terms must fall on.
func PointInTriangle(p, a, b, c Vec2) bool {
	dX, dY := p.X-c.X, p.Y-c.Y
	dX21, dY12 := c.X-b.X, b.Y-c.Y
	d := dY12*(a.X-c.X) + dX21*(a.Y-c.Y)
	s := dY12*dX + dX21*dY
	t := (c.Y-a.Y)*dX + (a.X-c.X)*dY
	if d < 0 {
		return s <= 0 && t <= 0 && s+t >= d
	}
	return s >= 0 && t >= 0 && s+t <= d
}

// DistancePointToSegment returns the distance from p to the closest point of segment ab.
// A zero-length segment is treated as the point a.
func DistancePointToSegment(p, a, b Vec2) float64 {
	v := b.Sub(a)
	w := p.Sub(a)
	vv := v.Dot(v)

	t := 0.0
	if vv != 0 {
		t = ClampF(w.Dot(v)/vv, 0, 1)
	}
	return Dist(p, a.Add(v.Scale(t)))
}

// CircleIntersectsTriangle reports whether the circle touches or overlaps the triangle.
// The triangle is convex, so centre containment plus edge and vertex distance is exact.
func CircleIntersectsTriangle(center Vec2, radius float64, t Triangle) bool {
	if PointInTriangle(center, t.A, t.B, t.C) {
		return true
	}
	if DistancePointToSegment(center, t.A, t.B) <= radius ||
		DistancePointToSegment(center, t.B, t.C) <= radius ||
		DistancePointToSegment(center, t.C, t.A) <= radius {
		return true
	}
	return Dist(center, t.A) <= radius || Dist(center, t.B) <= radius || Dist(center, t.C) <= radius
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

// MapRange linearly maps v from [inMin, inMax] to [outMin, outMax] without clamping.
func MapRange(v, inMin, inMax, outMin, outMax float64) float64 {
	if inMax == inMin {
		return outMin
	}
	return outMin + (v-inMin)*(outMax-outMin)/(inMax-inMin)
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
