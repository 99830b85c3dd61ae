package gg

import "github.com/gogpu/gg/internal/clip"

// Clip intersects the current clip region with the current path under
// the given winding rule (spec §4.5). A temporary mask is built by
// filling the path into a fresh all-0 mask via the same scanline
// procedure fill() uses, then AND-ed with the existing mask (if any).
// Clipping is monotonic: it can only shrink the visible region within
// the current save scope.
func (c *Context) Clip(rule FillRule) {
	polys := c.flattenPath()
	if len(polys) == 0 {
		c.logger.Warn("clip: empty path clips away everything")
	}
	m := clip.FillFromPolygons(c.surface.Width(), c.surface.Height(), polys, toRasterMatrix(c.state.transform), rule.toInternal())
	if c.state.clipMask != nil {
		m = c.state.clipMask.Intersect(m)
	}
	c.state.clipMask = m
}
