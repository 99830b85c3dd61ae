// Package pathflatten converts a path command log into polygons — ordered
// point chains — at a single fixed flatness tolerance. It is the sole
// source of determinism for curved geometry: the same commands always
// produce the same points, on any platform.
package pathflatten

import (
	"math"

	"github.com/gogpu/gg/internal/geom"
)

// Tolerance is the fixed flatness tolerance, in input coordinate units,
// used for every curve in every flattening operation. It is not
// adjustable per call: adaptive or device-space tolerance would make
// output depend on the current transform, breaking determinism.
const Tolerance = 0.25

// maxCurvePoints bounds the number of points a single curve subdivision
// may emit, guarding against unbounded recursion on pathological control
// points (e.g. coincident points producing zero-length chords).
const maxCurvePoints = 1000

// Command is a single path command. Exactly one of the Kind-specific
// fields is meaningful for a given Kind.
type Command struct {
	Kind      Kind
	X, Y      float64 // MoveTo, LineTo, Arc/Ellipse center, CubicTo/QuadTo endpoint
	CPX, CPY  float64 // QuadTo control point
	C1X, C1Y  float64 // CubicTo control point 1
	C2X, C2Y  float64 // CubicTo control point 2
	RX, RY    float64 // Arc radius (RX) or Ellipse radii (RX, RY)
	Rotation  float64 // Ellipse rotation, radians
	StartAng  float64 // Arc/Ellipse start angle, radians
	EndAng    float64 // Arc/Ellipse end angle, radians
	CCW       bool    // Arc/Ellipse sweep direction
}

// Kind identifies which path command a Command represents.
type Kind int

const (
	KindMoveTo Kind = iota
	KindLineTo
	KindQuadTo
	KindCubicTo
	KindArc
	KindEllipse
	KindClose
)

// Flatten converts a command sequence into polygons at the fixed
// Tolerance: one polygon per closed or open subpath, in command order.
// Single-point polygons are retained here and left for downstream
// consumers to discard, per the flattener's contract (it never judges
// what counts as degenerate).
func Flatten(cmds []Command) [][]geom.Point {
	return FlattenWithTolerance(cmds, Tolerance)
}

// FlattenWithTolerance is Flatten parameterized by flatness tolerance.
// gg.Context calls it with its configured tolerance, which is Tolerance
// unless gg.WithFlattenTolerance overrides it for tolerance tests.
func FlattenWithTolerance(cmds []Command, tolerance float64) [][]geom.Point {
	var polys [][]geom.Point
	var current []geom.Point
	var pen, subpathStart geom.Point
	havePen := false

	finish := func() {
		if len(current) > 0 {
			polys = append(polys, current)
		}
		current = nil
	}

	// ensureCurrent seeds `current` with the pen position when a command
	// appends to a subpath that was left open by an earlier ClosePath
	// (which finalizes the polygon but keeps the pen live at the start
	// point, per Canvas close semantics).
	ensureCurrent := func() {
		if havePen && current == nil {
			current = []geom.Point{pen}
		}
	}

	for _, c := range cmds {
		switch c.Kind {
		case KindMoveTo:
			finish()
			pen = geom.Pt(c.X, c.Y)
			subpathStart = pen
			havePen = true
			current = []geom.Point{pen}

		case KindLineTo:
			if !havePen {
				pen = geom.Pt(c.X, c.Y)
				subpathStart = pen
				havePen = true
				current = []geom.Point{pen}
				continue
			}
			ensureCurrent()
			pen = geom.Pt(c.X, c.Y)
			current = append(current, pen)

		case KindQuadTo:
			if !havePen {
				pen = geom.Pt(c.X, c.Y)
				subpathStart = pen
				havePen = true
				current = []geom.Point{pen}
				continue
			}
			ensureCurrent()
			p0 := pen
			p1 := geom.Pt(c.CPX, c.CPY)
			p2 := geom.Pt(c.X, c.Y)
			pts := make([]geom.Point, 0, 16)
			flattenQuad(p0, p1, p2, tolerance, &pts)
			current = append(current, pts...)
			pen = p2

		case KindCubicTo:
			if !havePen {
				pen = geom.Pt(c.X, c.Y)
				subpathStart = pen
				havePen = true
				current = []geom.Point{pen}
				continue
			}
			ensureCurrent()
			p0 := pen
			p1 := geom.Pt(c.C1X, c.C1Y)
			p2 := geom.Pt(c.C2X, c.C2Y)
			p3 := geom.Pt(c.X, c.Y)
			pts := make([]geom.Point, 0, 16)
			flattenCubic(p0, p1, p2, p3, tolerance, &pts)
			current = append(current, pts...)
			pen = p3

		case KindArc:
			pts := flattenArc(c.X, c.Y, c.RX, c.StartAng, c.EndAng, c.CCW, tolerance)
			if len(pts) == 0 {
				continue
			}
			if !havePen {
				subpathStart = pts[0]
				current = []geom.Point{}
				havePen = true
			}
			ensureCurrent()
			if len(current) > 0 && pen.Distance(pts[0]) > 0.01 {
				current = append(current, pts[0])
			} else if len(current) == 0 {
				current = append(current, pts[0])
			}
			current = append(current, pts[1:]...)
			pen = pts[len(pts)-1]

		case KindEllipse:
			pts := flattenEllipse(c.X, c.Y, c.RX, c.RY, c.Rotation, c.StartAng, c.EndAng, c.CCW, tolerance)
			if len(pts) == 0 {
				continue
			}
			if !havePen {
				subpathStart = pts[0]
				current = []geom.Point{}
				havePen = true
			}
			ensureCurrent()
			if len(current) > 0 && pen.Distance(pts[0]) > 0.01 {
				current = append(current, pts[0])
			} else if len(current) == 0 {
				current = append(current, pts[0])
			}
			current = append(current, pts[1:]...)
			pen = pts[len(pts)-1]

		case KindClose:
			if havePen && len(current) > 0 {
				last := current[len(current)-1]
				if last != subpathStart {
					current = append(current, subpathStart)
				}
			}
			finish()
			pen = subpathStart
		}
	}
	finish()
	return polys
}

// flattenQuad recursively subdivides a quadratic Bezier until the
// perpendicular distance of the control point from the chord is within
// tolerance, per spec §4.1. The recursion guard is tracked by
// accumulated point count rather than tree depth, to bound pathological
// inputs uniformly.
func flattenQuad(p0, p1, p2 geom.Point, tolerance float64, out *[]geom.Point) {
	if len(*out) >= maxCurvePoints {
		*out = append(*out, p2)
		return
	}
	chord := p2.Sub(p0)
	chordLen := chord.Length()
	if chordLen < 1e-12 {
		*out = append(*out, p2)
		return
	}
	d := math.Abs(p1.Sub(p0).Cross(chord)) / chordLen
	if d <= tolerance {
		*out = append(*out, p2)
		return
	}
	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	mid := q0.Lerp(q1, 0.5)
	flattenQuad(p0, q0, mid, tolerance, out)
	flattenQuad(mid, q1, p2, tolerance, out)
}

// flattenCubic recursively subdivides a cubic Bezier until both inner
// control points lie within tolerance of the endpoint chord (summed),
// per spec §4.1.
func flattenCubic(p0, p1, p2, p3 geom.Point, tolerance float64, out *[]geom.Point) {
	if len(*out) >= maxCurvePoints {
		*out = append(*out, p3)
		return
	}
	chord := p3.Sub(p0)
	chordLen := chord.Length()
	var d1, d2 float64
	if chordLen < 1e-12 {
		d1 = p1.Distance(p0)
		d2 = p2.Distance(p0)
	} else {
		d1 = math.Abs(p1.Sub(p0).Cross(chord)) / chordLen
		d2 = math.Abs(p2.Sub(p0).Cross(chord)) / chordLen
	}
	if d1+d2 <= tolerance {
		*out = append(*out, p3)
		return
	}
	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := p2.Lerp(p3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	mid := r0.Lerp(r1, 0.5)
	flattenCubic(p0, q0, r0, mid, tolerance, out)
	flattenCubic(mid, r1, q2, p3, tolerance, out)
}

// arcMaxStep returns the maximum angular step, in radians, for which the
// circular sweep of radius r stays within tolerance of the true arc.
func arcMaxStep(r, tolerance float64) float64 {
	if r <= 0 {
		return math.Pi
	}
	ratio := 1 - tolerance/r
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	return 2 * math.Acos(ratio)
}

// flattenArc samples the circular arc (cx,cy,r,a0,a1,ccw) at uniform
// angular steps, per spec §4.1's arc flattening and continuity rules.
func flattenArc(cx, cy, r, a0, a1 float64, ccw bool, tolerance float64) []geom.Point {
	if r <= 0 {
		return nil
	}
	a0n, a1n := normalizeArcAngles(a0, a1, ccw)
	delta := math.Abs(a1n - a0n)
	maxStep := arcMaxStep(r, tolerance)
	n := int(math.Ceil(delta / maxStep))
	if n < 1 {
		n = 1
	}
	step := (a1n - a0n) / float64(n)
	pts := make([]geom.Point, 0, n+1)
	for i := 0; i <= n; i++ {
		a := a0n + step*float64(i)
		pts = append(pts, geom.Pt(cx+r*math.Cos(a), cy+r*math.Sin(a)))
	}
	return pts
}

// flattenEllipse samples the rotated ellipse (cx,cy,rx,ry,rot,a0,a1,ccw),
// using min(rx,ry) for the step-size computation as spec §4.1 requires.
func flattenEllipse(cx, cy, rx, ry, rot, a0, a1 float64, ccw bool, tolerance float64) []geom.Point {
	if rx <= 0 || ry <= 0 {
		return nil
	}
	a0n, a1n := normalizeArcAngles(a0, a1, ccw)
	delta := math.Abs(a1n - a0n)
	minR := math.Min(rx, ry)
	maxStep := arcMaxStep(minR, tolerance)
	n := int(math.Ceil(delta / maxStep))
	if n < 1 {
		n = 1
	}
	step := (a1n - a0n) / float64(n)
	cosRot, sinRot := math.Cos(rot), math.Sin(rot)
	pts := make([]geom.Point, 0, n+1)
	for i := 0; i <= n; i++ {
		a := a0n + step*float64(i)
		ex := rx * math.Cos(a)
		ey := ry * math.Sin(a)
		x := cx + ex*cosRot - ey*sinRot
		y := cy + ex*sinRot + ey*cosRot
		pts = append(pts, geom.Pt(x, y))
	}
	return pts
}

// normalizeArcAngles applies spec §4.1's angle-normalization rule so that
// the swept delta matches the requested direction: if not ccw and
// a1 < a0, add 2π to a1; if ccw and a0 < a1, add 2π to a0.
func normalizeArcAngles(a0, a1 float64, ccw bool) (float64, float64) {
	if !ccw && a1 < a0 {
		a1 += 2 * math.Pi
	}
	if ccw && a0 < a1 {
		a0 += 2 * math.Pi
	}
	return a0, a1
}
