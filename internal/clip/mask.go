// Package clip implements the 1-bit-per-pixel stencil buffer used for
// clip regions (spec §4.5). A set bit means the pixel is visible; an
// unset bit means it is clipped. Masks only ever shrink what is visible
// — the sole way to combine two masks is bitwise intersection.
package clip

import (
	"github.com/gogpu/gg/internal/geom"
	"github.com/gogpu/gg/internal/raster"
)

// Mask is a packed bitset of W*H bits, one per pixel, bit (y*W+x)%8 of
// byte (y*W+x)/8.
type Mask struct {
	w, h int
	bits []byte
}

// New returns a fresh mask with every in-range bit set to 1 (fully
// visible), per spec §4.5.
func New(w, h int) *Mask {
	n := (w*h + 7) / 8
	m := &Mask{w: w, h: h, bits: make([]byte, n)}
	for i := range m.bits {
		m.bits[i] = 0xFF
	}
	m.maskTrailingBits()
	return m
}

// maskTrailingBits clears any padding bits in the final byte beyond
// w*h, so that a full-mask bitwise AND never spuriously reports
// clipping contributed by out-of-range padding.
func (m *Mask) maskTrailingBits() {
	total := m.w * m.h
	if total == 0 {
		return
	}
	used := total % 8
	if used == 0 {
		return
	}
	last := total / 8
	var keep byte
	for i := 0; i < used; i++ {
		keep |= 1 << uint(i)
	}
	m.bits[last] &= keep
}

// Width returns the mask width.
func (m *Mask) Width() int { return m.w }

// Height returns the mask height.
func (m *Mask) Height() int { return m.h }

// Get reports whether (x,y) is visible. Out-of-range coordinates are
// always reported as clipped, per spec §4.5.
func (m *Mask) Get(x, y int) bool {
	if x < 0 || x >= m.w || y < 0 || y >= m.h {
		return false
	}
	idx := y*m.w + x
	return m.bits[idx/8]&(1<<uint(idx%8)) != 0
}

// set marks (x,y) as visible. Coordinates outside the mask are ignored.
func (m *Mask) set(x, y int) {
	if x < 0 || x >= m.w || y < 0 || y >= m.h {
		return
	}
	idx := y*m.w + x
	m.bits[idx/8] |= 1 << uint(idx%8)
}

// HasClipping reports whether any in-range bit is 0 — i.e. whether
// this mask actually restricts anything. A fresh New() mask reports
// false.
func (m *Mask) HasClipping() bool {
	total := m.w * m.h
	full := total / 8
	for i := 0; i < full; i++ {
		if m.bits[i] != 0xFF {
			return true
		}
	}
	used := total % 8
	if used != 0 {
		var keep byte
		for i := 0; i < used; i++ {
			keep |= 1 << uint(i)
		}
		if m.bits[full]&keep != keep {
			return true
		}
	}
	return false
}

// Intersect returns the bitwise AND of m and other, which must share
// dimensions. This is the only way two masks combine (spec §4.5): the
// result can only be more restrictive than either input, so repeated
// intersection is monotonic and order-independent.
func (m *Mask) Intersect(other *Mask) *Mask {
	if m.w != other.w || m.h != other.h {
		panic("clip: Intersect requires matching dimensions")
	}
	out := &Mask{w: m.w, h: m.h, bits: make([]byte, len(m.bits))}
	for i := range out.bits {
		out.bits[i] = m.bits[i] & other.bits[i]
	}
	return out
}

// Clone returns a deep copy of m, for DrawingState save-frame isolation.
func (m *Mask) Clone() *Mask {
	out := &Mask{w: m.w, h: m.h, bits: make([]byte, len(m.bits))}
	copy(out.bits, m.bits)
	return out
}

// FillFromPolygons builds a fresh all-0 mask and sets every pixel
// spec §4.2's scanline procedure would fill for the given polygons,
// transform, and winding rule — the same procedure the polygon filler
// uses, writing bits instead of color (spec §4.5).
func FillFromPolygons(w, h int, polys [][]geom.Point, m raster.Matrix, rule raster.FillRule) *Mask {
	out := &Mask{w: w, h: h, bits: make([]byte, (w*h+7)/8)}
	raster.ForEachSpan(polys, m, rule, w, h, func(y, xStart, xEnd int) {
		for x := xStart; x <= xEnd; x++ {
			out.set(x, y)
		}
	})
	return out
}
