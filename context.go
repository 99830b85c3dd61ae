// Package gg implements a deterministic, software-only 2D raster
// engine exposing a Canvas-style immediate-mode drawing API: path
// flattening, scanline polygon fill, geometric stroke generation,
// stencil clipping, affine transforms, and nearest-neighbor image
// resampling. Given identical command sequences it produces
// bit-identical pixel buffers on every platform and build.
package gg

import (
	"log/slog"
	"math"

	"github.com/gogpu/gg/internal/geom"
	"github.com/gogpu/gg/internal/pathflatten"
)

// Context is the public command API: a drawing state bound to a
// Surface (spec §6). A Context is exclusively owned by its calling
// goroutine for the duration of any draw call (spec §5).
type Context struct {
	surface *Surface
	logger  *slog.Logger

	state drawState
	stack []drawState

	path             *Path
	flattenTolerance float64
}

// NewContext allocates a Surface of the given dimensions (unless
// WithSurface supplies one) and returns a Context ready to draw into
// it. It returns an error if the dimensions are invalid (spec §7).
func NewContext(width, height int, opts ...ContextOption) (*Context, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	surf := o.surface
	if surf == nil {
		s, err := NewSurface(width, height)
		if err != nil {
			return nil, err
		}
		surf = s
	} else if surf.Width() != width || surf.Height() != height {
		return nil, ErrInvalidSurfaceDimensions
	}

	logger := o.logger
	if logger == nil {
		logger = Logger()
	}

	return &Context{
		surface:          surf,
		logger:           logger,
		state:            defaultDrawState(),
		path:             NewPath(),
		flattenTolerance: o.flattenTolerance,
	}, nil
}

// Surface returns the Context's backing Surface.
func (c *Context) Surface() *Surface { return c.surface }

// Save pushes a deep copy of the current drawing state (spec §4.8).
func (c *Context) Save() {
	c.stack = append(c.stack, c.state.clone())
}

// Restore pops the most recently saved drawing state. Restoring with
// an empty stack is a silent no-op (spec §7).
func (c *Context) Restore() {
	if len(c.stack) == 0 {
		return
	}
	n := len(c.stack) - 1
	c.state = c.stack[n]
	c.stack = c.stack[:n]
}

// SetTransform replaces the current transform outright.
func (c *Context) SetTransform(a, b, d, e, tx, ty float64) {
	c.state.transform = Matrix{A: a, B: b, C: d, D: e, E: tx, F: ty}
}

// Transform post-multiplies the current transform by the given matrix:
// newTransform = currentTransform.Multiply(m) — "apply m then the
// current transform" (spec §3, §6).
func (c *Context) Transform(a, b, d, e, tx, ty float64) {
	c.state.transform = c.state.transform.Multiply(Matrix{A: a, B: b, C: d, D: e, E: tx, F: ty})
}

// ResetTransform resets the current transform to identity.
func (c *Context) ResetTransform() {
	c.state.transform = Identity()
}

// Translate post-multiplies a translation into the current transform.
func (c *Context) Translate(x, y float64) {
	c.Transform(1, 0, 0, 1, x, y)
}

// ScaleBy post-multiplies a scale into the current transform.
func (c *Context) ScaleBy(sx, sy float64) {
	c.Transform(sx, 0, 0, sy, 0, 0)
}

// Rotate post-multiplies a rotation (radians) into the current
// transform.
func (c *Context) Rotate(angle float64) {
	s, cs := math.Sin(angle), math.Cos(angle)
	c.Transform(cs, s, -s, cs, 0, 0)
}

// CurrentTransform returns the active transform.
func (c *Context) CurrentTransform() Matrix { return c.state.transform }

// flattenPath flattens the current path at the Context's tolerance
// (pathflatten.Tolerance unless WithFlattenTolerance overrides it); it
// is the single call site shared by fill, stroke, and clip.
func (c *Context) flattenPath() [][]geom.Point {
	return pathflatten.FlattenWithTolerance(c.path.Commands(), c.flattenTolerance)
}
