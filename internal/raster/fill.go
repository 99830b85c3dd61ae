// Package raster implements the scanline polygon filler: the single
// place where transformed polygons become pixel writes, subject to a
// winding rule, an optional clip stencil, and the composition formulas
// of spec §4.2–§4.3.
package raster

import (
	"math"

	"github.com/gogpu/gg/internal/geom"
)

// FillRule selects how self-intersecting polygons are classified as
// inside or outside.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

// Matrix is the minimal affine transform the filler needs to map
// polygon vertices into device space. It mirrors gg.Matrix's field
// layout exactly so callers can pass it through without conversion
// logic scattered across packages.
type Matrix struct {
	A, B, C, D, E, F float64
}

// Apply maps p through the transform: x' = A*x+C*y+E, y' = B*x+D*y+F.
func (m Matrix) Apply(p geom.Point) geom.Point {
	return geom.Point{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

// Surface is the minimal pixel sink the filler writes into. Callers
// (the gg package) adapt their Surface type to this interface so this
// package has no dependency on pixel buffer layout.
type Surface interface {
	Width() int
	Height() int
	// BlendPixel composites src over the pixel at (x,y) using mode.
	BlendPixel(x, y int, src Color, mode CompositeMode)
}

// ClipTest reports whether the pixel at (x,y) is visible (unclipped).
// A nil ClipTest means "no clipping" — every pixel is visible.
type ClipTest func(x, y int) bool

// edge is one transformed polygon edge, active over the half-open
// vertical interval [yMin, yMax), per spec §4.2's horizontal-edge and
// shared-vertex rules.
type edge struct {
	p1, p2 geom.Point
	yMin   float64
	yMax   float64
	wind   int // +1 if p2.Y > p1.Y, else -1
}

// crossing is one scanline/edge intersection.
type crossing struct {
	x    float64
	wind int
}

// Fill rasterizes polys (already in local path coordinates) into dst,
// transformed by m, honoring rule, clip, and color per spec §4.2–§4.3.
// No pixel outside the filled region is touched, and no pixel is
// written more than once.
func Fill(dst Surface, polys [][]geom.Point, m Matrix, rule FillRule, color Color, mode CompositeMode, clip ClipTest) {
	ForEachSpan(polys, m, rule, dst.Width(), dst.Height(), func(y, xStart, xEnd int) {
		for x := xStart; x <= xEnd; x++ {
			if clip != nil && !clip(x, y) {
				continue
			}
			dst.BlendPixel(x, y, color, mode)
		}
	})
}

// ForEachSpan walks the scanline algorithm of spec §4.2 — transform,
// build edges, sample at y+0.5, sort crossings, accumulate winding —
// and invokes fn once per inside span per scanline, already clamped to
// [0,w-1]x[0,h-1]. Both the pixel filler (Fill) and the clip-mask
// rasterizer (internal/clip) drive this same procedure, per spec
// §4.5's requirement that mask fills use "the same scanline procedure
// as §4.2".
func ForEachSpan(polys [][]geom.Point, m Matrix, rule FillRule, w, h int, fn func(y, xStart, xEnd int)) {
	edges := buildEdges(polys, m)
	if len(edges) == 0 {
		return
	}

	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, e := range edges {
		minY = math.Min(minY, e.yMin)
		maxY = math.Max(maxY, e.yMax)
	}

	y0 := int(math.Floor(minY))
	y1 := int(math.Ceil(maxY))
	if y0 < 0 {
		y0 = 0
	}
	if y1 > h-1 {
		y1 = h - 1
	}

	var xs []crossing
	for y := y0; y <= y1; y++ {
		sampleY := float64(y) + 0.5
		xs = xs[:0]
		for _, e := range edges {
			if sampleY < e.yMin || sampleY >= e.yMax {
				continue
			}
			t := (sampleY - e.p1.Y) / (e.p2.Y - e.p1.Y)
			x := e.p1.X + t*(e.p2.X-e.p1.X)
			xs = append(xs, crossing{x: x, wind: e.wind})
		}
		if len(xs) == 0 {
			continue
		}
		sortCrossings(xs)

		winding := 0
		prevEnd := -1
		for i := 0; i < len(xs); i++ {
			winding += xs[i].wind
			inside := false
			switch rule {
			case EvenOdd:
				inside = winding%2 != 0
			default:
				inside = winding != 0
			}
			if !inside || i+1 >= len(xs) {
				continue
			}
			xStart := int(math.Ceil(xs[i].x))
			xEnd := int(math.Floor(xs[i+1].x))
			if xStart < 0 {
				xStart = 0
			}
			if xEnd > w-1 {
				xEnd = w - 1
			}
			// Consecutive inside spans meet at a crossing; when that
			// crossing is an integer both spans would include its
			// column, so start after the previous span instead.
			if xStart <= prevEnd {
				xStart = prevEnd + 1
			}
			if xStart > xEnd {
				continue
			}
			fn(y, xStart, xEnd)
			prevEnd = xEnd
		}
	}
}

// buildEdges transforms every polygon vertex and produces one edge per
// consecutive pair (the polygon is implicitly closed, last-to-first).
// Horizontal edges (|p1.Y-p2.Y| < 1e-10) are dropped, per spec §4.2.
func buildEdges(polys [][]geom.Point, m Matrix) []edge {
	var edges []edge
	for _, poly := range polys {
		n := len(poly)
		if n < 2 {
			continue
		}
		pts := make([]geom.Point, n)
		for i, p := range poly {
			pts[i] = m.Apply(p)
		}
		for i := 0; i < n; i++ {
			p1 := pts[i]
			p2 := pts[(i+1)%n]
			if math.Abs(p1.Y-p2.Y) < 1e-10 {
				continue
			}
			wind := -1
			if p2.Y > p1.Y {
				wind = 1
			}
			edges = append(edges, edge{
				p1:   p1,
				p2:   p2,
				yMin: math.Min(p1.Y, p2.Y),
				yMax: math.Max(p1.Y, p2.Y),
				wind: wind,
			})
		}
	}
	return edges
}

// sortCrossings sorts by ascending X using insertion sort: crossing
// counts per scanline are typically small, and insertion sort keeps
// the comparison order (and thus tie-breaking for equal X) fully
// deterministic without relying on sort.Slice's unspecified stability.
func sortCrossings(xs []crossing) {
	for i := 1; i < len(xs); i++ {
		v := xs[i]
		j := i - 1
		for j >= 0 && xs[j].x > v.x {
			xs[j+1] = xs[j]
			j--
		}
		xs[j+1] = v
	}
}

