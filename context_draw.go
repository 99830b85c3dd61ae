package gg

import (
	"math"

	"github.com/gogpu/gg/internal/geom"
	"github.com/gogpu/gg/internal/pathflatten"
	"github.com/gogpu/gg/internal/raster"
	"github.com/gogpu/gg/internal/stroke"
)

// toRasterMatrix adapts a gg.Matrix to internal/raster's Matrix, which
// shares its field layout exactly.
func toRasterMatrix(m Matrix) raster.Matrix {
	return raster.Matrix{A: m.A, B: m.B, C: m.C, D: m.D, E: m.E, F: m.F}
}

// effectiveColor applies globalAlpha to c's straight alpha channel, per
// spec §4.3's "effective_a = src_a * globalAlpha".
func effectiveColor(c Color, globalAlpha float64) raster.Color {
	s := c.Straight()
	return raster.Color{R: s.R, G: s.G, B: s.B, A: roundClampByte(float64(s.A) * globalAlpha)}
}

// clipTest builds a raster.ClipTest from the current state's clip
// mask, or nil if there is none (spec §4.5).
func (c *Context) clipTest() raster.ClipTest {
	m := c.state.clipMask
	if m == nil {
		return nil
	}
	return func(x, y int) bool { return m.Get(x, y) }
}

func (c *Context) compositeMode() raster.CompositeMode {
	mode, _ := c.state.composite.toInternal()
	return mode
}

// fillPolygons is the shared routing point for fill, stroke, and the
// general (non-fast-path) fillRect/strokeRect case: every caller ends
// up here so there is exactly one place pixels get written, matching
// spec §4.10's requirement that a fast path never behaviorally fork
// from the general polygon-fill path.
func (c *Context) fillPolygons(polys [][]geom.Point, rule raster.FillRule, color raster.Color, mode raster.CompositeMode) {
	raster.Fill(c.surface, polys, toRasterMatrix(c.state.transform), rule, color, mode, c.clipTest())
}

// FillRule selects nonzero or evenodd winding for fill/clip.
type FillRule int

const (
	FillRuleNonZero FillRule = iota
	FillRuleEvenOdd
)

func (r FillRule) toInternal() raster.FillRule {
	if r == FillRuleEvenOdd {
		return raster.EvenOdd
	}
	return raster.NonZero
}

// FillRect fills the rectangle [x,y,x+w,y+h) in user space with the
// current fill color and composite mode (spec §4.6). Zero-area
// rectangles are a silent no-op.
func (c *Context) FillRect(x, y, w, h float64) {
	if w <= 0 || h <= 0 {
		c.logger.Warn("fillRect: non-positive dimension, no-op", "w", w, "h", h)
		return
	}
	color := effectiveColor(c.state.fillColor, c.state.globalAlpha)
	mode := c.compositeMode()

	if c.state.clipMask == nil && c.state.transform.IsAxisAligned() {
		c.fastFillRect(x, y, w, h, color, mode)
		return
	}
	poly := rectPolygon(x, y, w, h)
	c.fillPolygons([][]geom.Point{poly}, raster.NonZero, color, mode)
}

// fastFillRect is the axis-aligned, unclipped fast path of spec §4.6 /
// §4.10. It computes the identical integer span the general scanline
// path would (derivable in closed form because an axis-aligned
// rectangle's edges are exactly horizontal/vertical, with no
// interpolation ambiguity), so it can never disagree with the general
// path's output.
func (c *Context) fastFillRect(x, y, w, h float64, color raster.Color, mode raster.CompositeMode) {
	m := c.state.transform
	dx0, dy0 := m.A*x+m.E, m.D*y+m.F
	dx1, dy1 := m.A*(x+w)+m.E, m.D*(y+h)+m.F
	minX, maxX := math.Min(dx0, dx1), math.Max(dx0, dx1)
	minY, maxY := math.Min(dy0, dy1), math.Max(dy0, dy1)

	sw, sh := c.surface.Width(), c.surface.Height()
	y0 := int(math.Floor(minY))
	y1 := int(math.Ceil(maxY)) - 1
	if y0 < 0 {
		y0 = 0
	}
	if y1 > sh-1 {
		y1 = sh - 1
	}
	xStart := int(math.Ceil(minX))
	xEnd := int(math.Floor(maxX))
	if xStart < 0 {
		xStart = 0
	}
	if xEnd > sw-1 {
		xEnd = sw - 1
	}
	if xStart > xEnd {
		return
	}
	for row := y0; row <= y1; row++ {
		sampleY := float64(row) + 0.5
		if sampleY < minY || sampleY >= maxY {
			continue
		}
		for px := xStart; px <= xEnd; px++ {
			c.surface.BlendPixel(px, row, color, mode)
		}
	}
}

// ClearRect clears the rectangle [x,y,x+w,y+h) to (0,0,0,0) in copy
// mode, ignoring current composite mode and global alpha (spec §4.6).
func (c *Context) ClearRect(x, y, w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	color := raster.Color{}
	if c.state.clipMask == nil && c.state.transform.IsAxisAligned() {
		c.fastFillRect(x, y, w, h, color, raster.Copy)
		return
	}
	poly := rectPolygon(x, y, w, h)
	c.fillPolygons([][]geom.Point{poly}, raster.NonZero, color, raster.Copy)
}

// rectPolygon returns the four corners of [x,y,x+w,y+h), in winding
// order, as a path-local polygon.
func rectPolygon(x, y, w, h float64) []geom.Point {
	return []geom.Point{
		geom.Pt(x, y), geom.Pt(x+w, y), geom.Pt(x+w, y+h), geom.Pt(x, y+h),
	}
}

// Fill fills the current path under the given winding rule (spec §4.6).
func (c *Context) Fill(rule FillRule) {
	polys := c.flattenPath()
	if len(polys) == 0 {
		c.logger.Debug("fill: empty path, no-op")
		return
	}
	c.logger.Debug("fill", "subpaths", len(polys))
	color := effectiveColor(c.state.fillColor, c.state.globalAlpha)
	c.fillPolygons(polys, rule.toInternal(), color, c.compositeMode())
}

// strokeConfig resolves the current stroke settings into
// internal/stroke.Config plus the alpha scale factor required by the
// sub-pixel stroke rule (spec §4.4): widths at or below 1 use a
// geometry width of 1 and scale alpha by the (pre-clamp) width, with
// width 0 treated as 1.0.
func (c *Context) strokeConfig() (stroke.Config, float64) {
	width := c.state.lineWidth
	alphaScale := 1.0
	geomWidth := width
	if width <= 1 {
		geomWidth = 1
		if width == 0 {
			alphaScale = 1.0
		} else {
			alphaScale = width
		}
	}
	join, _ := c.state.lineJoin.toInternal()
	cap, _ := c.state.lineCap.toInternal()
	return stroke.Config{
		Width:      geomWidth,
		Join:       join,
		Cap:        cap,
		MiterLimit: c.state.miterLimit,
	}, alphaScale
}

// strokePath strokes the given flattened polylines with the current
// stroke style and returns the polygons to fill with nonzero winding.
func (c *Context) strokePath(polylines [][]geom.Point) ([][]geom.Point, raster.Color) {
	cfg, alphaScale := c.strokeConfig()
	polys := stroke.Generate(polylines, cfg)
	color := effectiveColor(c.state.strokeColor.WithAlpha(alphaScale), c.state.globalAlpha)
	return polys, color
}

// Stroke strokes the current path with the current stroke style (spec
// §4.6): stroke-generate then fill with nonzero winding.
func (c *Context) Stroke() {
	polylines := c.flattenPath()
	if len(polylines) == 0 {
		c.logger.Debug("stroke: empty path, no-op")
		return
	}
	polys, color := c.strokePath(polylines)
	if len(polys) == 0 {
		return
	}
	c.logger.Debug("stroke", "subpaths", len(polylines), "spans", len(polys))
	c.fillPolygons(polys, raster.NonZero, color, c.compositeMode())
}

// StrokeRect strokes the rectangle [x,y,x+w,y+h) (spec §4.6): builds a
// closed rectangular path and routes through the stroke path.
func (c *Context) StrokeRect(x, y, w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	rectPath := NewPath()
	rectPath.Rect(x, y, w, h)
	polylines := pathflatten.Flatten(rectPath.Commands())
	polys, color := c.strokePath(polylines)
	if len(polys) == 0 {
		return
	}
	c.fillPolygons(polys, raster.NonZero, color, c.compositeMode())
}
