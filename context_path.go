package gg

// BeginPath discards the current path and starts a new one.
func (c *Context) BeginPath() {
	c.path.Clear()
}

// MoveTo starts a new subpath at (x,y), in user space. Returns
// ErrNonFiniteCoordinate if x or y is NaN or Inf.
func (c *Context) MoveTo(x, y float64) error { return c.path.MoveTo(x, y) }

// LineTo appends a line segment to (x,y), in user space. Returns
// ErrNonFiniteCoordinate if x or y is NaN or Inf.
func (c *Context) LineTo(x, y float64) error { return c.path.LineTo(x, y) }

// QuadraticCurveTo appends a quadratic Bezier curve, in user space.
// Returns ErrNonFiniteCoordinate if any coordinate is NaN or Inf.
func (c *Context) QuadraticCurveTo(cpx, cpy, x, y float64) error {
	return c.path.QuadraticCurveTo(cpx, cpy, x, y)
}

// BezierCurveTo appends a cubic Bezier curve, in user space. Returns
// ErrNonFiniteCoordinate if any coordinate is NaN or Inf.
func (c *Context) BezierCurveTo(c1x, c1y, c2x, c2y, x, y float64) error {
	return c.path.BezierCurveTo(c1x, c1y, c2x, c2y, x, y)
}

// Rect appends a closed rectangular subpath, in user space. Returns
// ErrNonFiniteCoordinate if any argument is NaN or Inf.
func (c *Context) Rect(x, y, w, h float64) error { return c.path.Rect(x, y, w, h) }

// Arc appends a circular arc, in user space. Returns
// ErrNonFiniteCoordinate if any argument is NaN or Inf.
func (c *Context) Arc(cx, cy, r, a0, a1 float64, ccw bool) error {
	return c.path.Arc(cx, cy, r, a0, a1, ccw)
}

// Ellipse appends an elliptical arc, in user space. Returns
// ErrNonFiniteCoordinate if any argument is NaN or Inf.
func (c *Context) Ellipse(cx, cy, rx, ry, rot, a0, a1 float64, ccw bool) error {
	return c.path.Ellipse(cx, cy, rx, ry, rot, a0, a1, ccw)
}

// ClosePath closes the current subpath.
func (c *Context) ClosePath() { c.path.ClosePath() }
