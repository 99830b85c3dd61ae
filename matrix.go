package gg

import "math"

// Matrix is a 2D affine transform: six finite floats (a,b,c,d,e,f)
// representing the 3x3 homogeneous matrix
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// A point (x,y) maps to (a*x + c*y + e, b*x + d*y + f). Matrix is
// logically immutable; every method returns a new value.
type Matrix struct {
	A, B, C, D, E, F float64
}

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{A: 1, D: 1}
}

// Translation returns a translation by (x,y).
func Translation(x, y float64) Matrix {
	return Matrix{A: 1, D: 1, E: x, F: y}
}

// Scaling returns a scale by (sx,sy) about the origin.
func Scaling(sx, sy float64) Matrix {
	return Matrix{A: sx, D: sy}
}

// Rotation returns a rotation by angle radians about the origin.
func Rotation(angle float64) Matrix {
	s, c := math.Sin(angle), math.Cos(angle)
	return Matrix{A: c, B: s, C: -s, D: c}
}

// Multiply returns the composition "apply N then M" — i.e. result =
// M*N in column-vector convention (spec §3). Context.Transform uses
// this to post-multiply: current.Multiply(n).
func (m Matrix) Multiply(n Matrix) Matrix {
	return Matrix{
		A: m.A*n.A + m.C*n.B,
		B: m.B*n.A + m.D*n.B,
		C: m.A*n.C + m.C*n.D,
		D: m.B*n.C + m.D*n.D,
		E: m.A*n.E + m.C*n.F + m.E,
		F: m.B*n.E + m.D*n.F + m.F,
	}
}

// Apply maps p through m.
func (m Matrix) Apply(p Point) Point {
	return Point{X: m.A*p.X + m.C*p.Y + m.E, Y: m.B*p.X + m.D*p.Y + m.F}
}

// Determinant returns a*d - b*c.
func (m Matrix) Determinant() float64 {
	return m.A*m.D - m.B*m.C
}

// Invertible reports whether |det| >= 1e-10, per spec §3.
func (m Matrix) Invertible() bool {
	return math.Abs(m.Determinant()) >= 1e-10
}

// Invert returns the inverse of m. It returns ErrNonInvertibleTransform
// if |det| < 1e-10, per spec §3 and §7 (drawImage is the only caller
// that needs inversion, and is the only place this error surfaces).
func (m Matrix) Invert() (Matrix, error) {
	det := m.Determinant()
	if math.Abs(det) < 1e-10 {
		return Matrix{}, ErrNonInvertibleTransform
	}
	invDet := 1 / det
	a := m.D * invDet
	b := -m.B * invDet
	c := -m.C * invDet
	d := m.A * invDet
	e := -(a*m.E + c*m.F)
	f := -(b*m.E + d*m.F)
	return Matrix{A: a, B: b, C: c, D: d, E: e, F: f}, nil
}

// IsAxisAligned reports whether m has no rotation/shear component
// (b == 0 && c == 0), the condition the Rasterizer's fillRect fast path
// (spec §4.6) requires.
func (m Matrix) IsAxisAligned() bool {
	return m.B == 0 && m.C == 0
}
