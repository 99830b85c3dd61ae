// Package geom holds the small set of value types (points, vectors) shared
// by the path flattener, stroke generator, and polygon filler. It has no
// dependency on the public gg package, so gg and every internal rendering
// package can import it without creating a cycle.
package geom

import "math"

// Point is a location in 2D space.
type Point struct {
	X, Y float64
}

// Pt is a convenience constructor for Point.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add returns p+v.
func (p Point) Add(v Vec2) Point { return Point{X: p.X + v.X, Y: p.Y + v.Y} }

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Vec2 { return Vec2{X: p.X - q.X, Y: p.Y - q.Y} }

// Lerp linearly interpolates between p and q at parameter t.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{X: p.X + (q.X-p.X)*t, Y: p.Y + (q.Y-p.Y)*t}
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 { return p.Sub(q).Length() }

// Vec2 is a 2D displacement vector.
type Vec2 struct {
	X, Y float64
}

// Add returns v+w.
func (v Vec2) Add(w Vec2) Vec2 { return Vec2{X: v.X + w.X, Y: v.Y + w.Y} }

// Sub returns v-w.
func (v Vec2) Sub(w Vec2) Vec2 { return Vec2{X: v.X - w.X, Y: v.Y - w.Y} }

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{X: v.X * s, Y: v.Y * s} }

// Neg returns -v.
func (v Vec2) Neg() Vec2 { return Vec2{X: -v.X, Y: -v.Y} }

// Dot returns the dot product of v and w.
func (v Vec2) Dot(w Vec2) float64 { return v.X*w.X + v.Y*w.Y }

// Cross returns the 2D scalar cross product (z component of the 3D cross).
func (v Vec2) Cross(w Vec2) float64 { return v.X*w.Y - v.Y*w.X }

// Length returns the Euclidean length of v.
func (v Vec2) Length() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y) }

// Normalize returns a unit vector in the direction of v, or the zero
// vector if v is (near) zero length.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l < 1e-10 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Perp returns v rotated 90 degrees counter-clockwise: (x,y) -> (-y,x).
// This is the "left normal" used throughout stroke expansion.
func (v Vec2) Perp() Vec2 { return Vec2{X: -v.Y, Y: v.X} }

// Angle returns the angle of v in radians, per math.Atan2.
func (v Vec2) Angle() float64 { return math.Atan2(v.Y, v.X) }

// ToPoint reinterprets v as a point (vector from the origin).
func (v Vec2) ToPoint() Point { return Point(v) }
