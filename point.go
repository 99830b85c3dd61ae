package gg

// Point is a location in the path's user space, exposed on the public
// API surface (Path's current point, Matrix.Apply's result). Internal
// rendering code uses internal/geom.Point instead; this type exists
// only so callers outside the module don't need to import an internal
// package to read a coordinate.
type Point struct {
	X, Y float64
}

// Pt is a convenience constructor for Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}
