// Package stroke expands a flattened path into the filled polygons that
// make up its geometric stroke — segment bodies, joins, and caps — per
// spec §4.4. The output is handed directly to the polygon filler with
// the nonzero winding rule; this package never touches pixels.
package stroke

import (
	"math"

	"github.com/gogpu/gg/internal/geom"
)

// Join selects the join geometry between two non-collinear segments.
type Join int

const (
	JoinMiter Join = iota
	JoinRound
	JoinBevel
)

// Cap selects the end-cap geometry for open polylines.
type Cap int

const (
	CapButt Cap = iota
	CapRound
	CapSquare
)

// Config is the resolved stroke geometry configuration. Width is the
// geometry half-width source: callers apply the sub-pixel rule (spec
// §4.4, "if line_width <= 1, ... use line_width = 1 in the geometry")
// before constructing Config, so this package always works with an
// effective width of at least 1.
type Config struct {
	Width      float64
	Join       Join
	Cap        Cap
	MiterLimit float64
}

const epsilon = 1e-10

// Generate produces the list of filled polygons whose union is the
// stroke of the given (already flattened) polylines.
func Generate(polylines [][]geom.Point, cfg Config) [][]geom.Point {
	var out [][]geom.Point
	for _, pl := range polylines {
		out = append(out, strokePolyline(pl, cfg)...)
	}
	return out
}

// closed reports whether a flattened polyline should be treated as a
// closed contour, per spec §4.4: at least 3 points, first and last
// coincide within 1e-10.
func closed(pl []geom.Point) bool {
	if len(pl) < 3 {
		return false
	}
	return pl[0].Distance(pl[len(pl)-1]) < epsilon
}

// segment is a single stroked edge with precomputed tangent and
// half-width-scaled left normal.
type segment struct {
	p1, p2 geom.Point
	t      geom.Vec2 // unit tangent
	n      geom.Vec2 // left normal, scaled by half-width
}

func strokePolyline(pl []geom.Point, cfg Config) [][]geom.Point {
	h := cfg.Width / 2

	var segs []segment
	for i := 0; i+1 < len(pl); i++ {
		p1, p2 := pl[i], pl[i+1]
		v := p2.Sub(p1)
		l := v.Length()
		if l < epsilon {
			continue
		}
		t := v.Scale(1 / l)
		n := t.Perp().Scale(h)
		segs = append(segs, segment{p1: p1, p2: p2, t: t, n: n})
	}
	if len(segs) == 0 {
		return nil
	}

	isClosed := closed(pl)

	var out [][]geom.Point
	for _, s := range segs {
		out = append(out, []geom.Point{
			s.p1.Add(s.n), s.p2.Add(s.n), s.p2.Add(s.n.Neg()), s.p1.Add(s.n.Neg()),
		})
	}

	for i := 0; i+1 < len(segs); i++ {
		out = append(out, joinPolys(segs[i], segs[i+1], cfg)...)
	}
	if isClosed && len(segs) > 1 {
		out = append(out, joinPolys(segs[len(segs)-1], segs[0], cfg)...)
	}

	if !isClosed {
		out = append(out, capPolys(segs[0].p1, segs[0].t.Neg(), segs[0].n.Neg(), cfg)...)
		last := segs[len(segs)-1]
		out = append(out, capPolys(last.p2, last.t, last.n, cfg)...)
	}

	return out
}

// joinPolys builds the join geometry between consecutive segments s1
// and s2 sharing vertex J = s2.p1, per spec §4.4.
func joinPolys(s1, s2 segment, cfg Config) [][]geom.Point {
	cross := s1.t.Cross(s2.t)
	if math.Abs(cross) < epsilon {
		return nil
	}
	j := s2.p1

	var o1, o2, i1, i2 geom.Point
	outerRight := cross > 0
	if outerRight {
		o1, o2 = j.Add(s1.n.Neg()), j.Add(s2.n.Neg())
		i1, i2 = j.Add(s1.n), j.Add(s2.n)
	} else {
		o1, o2 = j.Add(s1.n), j.Add(s2.n)
		i1, i2 = j.Add(s1.n.Neg()), j.Add(s2.n.Neg())
	}

	switch cfg.Join {
	case JoinRound:
		return [][]geom.Point{roundFan(j, o1, o2, cfg.Width/2)}
	case JoinBevel:
		return [][]geom.Point{{o1, o2, i2, i1}}
	default: // JoinMiter
		h := cfg.Width / 2
		m, ok := lineIntersect(o1, s1.t, o2, s2.t)
		if ok && m.Distance(j)/h <= cfg.MiterLimit {
			return [][]geom.Point{
				{o1, m, o2},
				{o1, o2, i2, i1},
			}
		}
		return [][]geom.Point{{o1, o2, i2, i1}}
	}
}

// lineIntersect finds the intersection of the line through p1 with
// direction d1 and the line through p2 with direction d2.
func lineIntersect(p1 geom.Point, d1 geom.Vec2, p2 geom.Point, d2 geom.Vec2) (geom.Point, bool) {
	cross := d1.Cross(d2)
	if math.Abs(cross) < epsilon {
		return geom.Point{}, false
	}
	diff := p2.Sub(p1)
	s := diff.Cross(d2) / cross
	return p1.Add(d1.Scale(s)), true
}

// roundFan returns a single polygon tracing the triangular fan from
// apex j over the arc of the given radius from o1's angle to o2's
// angle, sweeping the shorter (convex) way, per spec §4.4.
func roundFan(j, o1, o2 geom.Point, radius float64) []geom.Point {
	a0 := o1.Sub(j).Angle()
	a1 := o2.Sub(j).Angle()
	delta := shortestAngleDelta(a0, a1)

	n := int(math.Ceil(math.Abs(delta) / (math.Pi / 4)))
	if n < 2 {
		n = 2
	}
	poly := make([]geom.Point, 0, n+2)
	poly = append(poly, j)
	step := delta / float64(n)
	for i := 0; i <= n; i++ {
		a := a0 + step*float64(i)
		poly = append(poly, geom.Pt(j.X+radius*math.Cos(a), j.Y+radius*math.Sin(a)))
	}
	return poly
}

// shortestAngleDelta returns the signed delta from a0 to a1 normalized
// into [-pi, pi], i.e. the convex (shorter) sweep direction.
func shortestAngleDelta(a0, a1 float64) float64 {
	d := math.Mod(a1-a0, 2*math.Pi)
	if d > math.Pi {
		d -= 2 * math.Pi
	} else if d < -math.Pi {
		d += 2 * math.Pi
	}
	return d
}

// capPolys returns the cap geometry at endpoint e, where outward is the
// unit tangent pointing away from the stroked body (i.e. away from the
// path interior) and n is the left-normal vector (scaled by
// half-width) at that endpoint.
func capPolys(e geom.Point, outward, n geom.Vec2, cfg Config) [][]geom.Point {
	switch cfg.Cap {
	case CapSquare:
		h := n.Length()
		ext := outward.Scale(h)
		return [][]geom.Point{{
			e.Add(n), e.Add(n).Add(ext),
			e.Add(n.Neg()).Add(ext), e.Add(n.Neg()),
		}}
	case CapRound:
		a0 := n.Angle()
		a1 := a0 - math.Pi
		if outward.Cross(n) < 0 {
			a1 = a0 + math.Pi
		}
		return [][]geom.Point{roundFanAngles(e, n.Length(), a0, a1)}
	default: // CapButt
		return nil
	}
}

// roundFanAngles is roundFan parameterized by explicit start/end
// angles rather than endpoint vectors, used for caps where the sweep
// direction (not just magnitude) matters.
func roundFanAngles(center geom.Point, radius, a0, a1 float64) []geom.Point {
	delta := a1 - a0
	n := int(math.Ceil(math.Abs(delta) / (math.Pi / 4)))
	if n < 2 {
		n = 2
	}
	poly := make([]geom.Point, 0, n+2)
	poly = append(poly, center)
	step := delta / float64(n)
	for i := 0; i <= n; i++ {
		a := a0 + step*float64(i)
		poly = append(poly, geom.Pt(center.X+radius*math.Cos(a), center.Y+radius*math.Sin(a)))
	}
	return poly
}
