// Package geom provides the 2D value types and intersection primitives the
// emitter engine is built on. Everything here is pure and allocation free.
package geom

import "math"

// Point is a position in world coordinates.
type Point struct {
	X, Y float64
}

// Vec is a displacement or direction in world coordinates.
// Directions are not required to be unit length.
type Vec struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// V is shorthand for Vec{X: x, Y: y}.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Add returns p translated by v.
func (p Point) Add(v Vec) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Vec {
	return Vec{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns v multiplied by k.
func (v Vec) Scale(k float64) Vec {
	return Vec{X: v.X * k, Y: v.Y * k}
}

// Add returns the component-wise sum of v and w.
func (v Vec) Add(w Vec) Vec {
	return Vec{X: v.X + w.X, Y: v.Y + w.Y}
}

// Dot returns the dot product of v and w.
func (v Vec) Dot(w Vec) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Len returns the Euclidean length of v.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Segment is an immutable directed wall between endpoints A and B.
type Segment struct {
	A, B Point
}

// Seg builds a segment from raw coordinates (x1,y1)-(x2,y2).
func Seg(x1, y1, x2, y2 float64) Segment {
	return Segment{A: Point{X: x1, Y: y1}, B: Point{X: x2, Y: y2}}
}

// Dir returns B - A.
func (s Segment) Dir() Vec {
	return s.B.Sub(s.A)
}

// Normal returns the segment direction rotated by 90 degrees,
// (y1-y2, x2-x1). It is not normalized.
func (s Segment) Normal() Vec {
	return Vec{X: s.A.Y - s.B.Y, Y: s.B.X - s.A.X}
}

// At returns the point at fraction mu along the segment, 0 at A and 1 at B.
func (s Segment) At(mu float64) Point {
	return s.A.Add(s.Dir().Scale(mu))
}

// Reflect mirrors v about the line whose normal is n:
// v - 2*(v·n / n·n)*n. A zero normal yields NaN components.
func Reflect(v, n Vec) Vec {
	beta := -2 * v.Dot(n) / n.Dot(n)
	return v.Add(n.Scale(beta))
}
