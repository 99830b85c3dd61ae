package gg

// SetFillStyle sets the fill color. Channels are uint8, so every value
// is already in [0,255] and no range check is made.
func (c *Context) SetFillStyle(r, g, b, a uint8) {
	c.state.fillColor = Color{R: r, G: g, B: b, A: a}
}

// SetStrokeStyle sets the stroke color.
func (c *Context) SetStrokeStyle(r, g, b, a uint8) {
	c.state.strokeColor = Color{R: r, G: g, B: b, A: a}
}

// SetGlobalAlpha sets the global alpha multiplier, clamped to [0,1]
// per the Canvas convention (out-of-range values are silently
// clamped, not treated as argument errors, since the spec's argument
// error list does not name globalAlpha).
func (c *Context) SetGlobalAlpha(a float64) {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	c.state.globalAlpha = a
}

// GlobalAlpha returns the current global alpha multiplier.
func (c *Context) GlobalAlpha() float64 { return c.state.globalAlpha }

// SetGlobalCompositeOperation sets the composition mode. It returns
// ErrInvalidCompositeMode for unrecognized values, leaving state
// unchanged (spec §7).
func (c *Context) SetGlobalCompositeOperation(op CompositeOperation) error {
	if _, ok := op.toInternal(); !ok {
		return ErrInvalidCompositeMode
	}
	c.state.composite = op
	return nil
}

// SetLineWidth sets the stroke line width. Must be positive (spec §6);
// returns ErrNonPositiveLineWidth otherwise, leaving state unchanged.
func (c *Context) SetLineWidth(w float64) error {
	if !(w > 0) {
		return ErrNonPositiveLineWidth
	}
	c.state.lineWidth = w
	return nil
}

// SetLineJoin sets the stroke line join. Returns ErrInvalidLineJoin for
// unrecognized values.
func (c *Context) SetLineJoin(j LineJoin) error {
	if _, ok := j.toInternal(); !ok {
		return ErrInvalidLineJoin
	}
	c.state.lineJoin = j
	return nil
}

// SetLineCap sets the stroke line cap. Returns ErrInvalidLineCap for
// unrecognized values.
func (c *Context) SetLineCap(cap LineCap) error {
	if _, ok := cap.toInternal(); !ok {
		return ErrInvalidLineCap
	}
	c.state.lineCap = cap
	return nil
}

// SetMiterLimit sets the miter limit. Must be positive (spec §6);
// returns ErrNonPositiveMiterLimit otherwise.
func (c *Context) SetMiterLimit(limit float64) error {
	if !(limit > 0) {
		return ErrNonPositiveMiterLimit
	}
	c.state.miterLimit = limit
	return nil
}
