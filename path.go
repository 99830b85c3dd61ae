package gg

import (
	"math"

	"github.com/gogpu/gg/internal/pathflatten"
)

// PathElement is one recorded path command. Concrete types below are a
// sum type over exactly the seven command kinds spec §3 names; Path
// never mutates a recorded element once appended.
type PathElement interface {
	isPathElement()
	toCommand() pathflatten.Command
}

type moveToElem struct{ x, y float64 }

func (moveToElem) isPathElement() {}
func (e moveToElem) toCommand() pathflatten.Command {
	return pathflatten.Command{Kind: pathflatten.KindMoveTo, X: e.x, Y: e.y}
}

type lineToElem struct{ x, y float64 }

func (lineToElem) isPathElement() {}
func (e lineToElem) toCommand() pathflatten.Command {
	return pathflatten.Command{Kind: pathflatten.KindLineTo, X: e.x, Y: e.y}
}

type quadToElem struct{ cpx, cpy, x, y float64 }

func (quadToElem) isPathElement() {}
func (e quadToElem) toCommand() pathflatten.Command {
	return pathflatten.Command{Kind: pathflatten.KindQuadTo, CPX: e.cpx, CPY: e.cpy, X: e.x, Y: e.y}
}

type cubicToElem struct{ c1x, c1y, c2x, c2y, x, y float64 }

func (cubicToElem) isPathElement() {}
func (e cubicToElem) toCommand() pathflatten.Command {
	return pathflatten.Command{
		Kind: pathflatten.KindCubicTo,
		C1X:  e.c1x, C1Y: e.c1y,
		C2X: e.c2x, C2Y: e.c2y,
		X: e.x, Y: e.y,
	}
}

type arcElem struct {
	cx, cy, r, a0, a1 float64
	ccw               bool
}

func (arcElem) isPathElement() {}
func (e arcElem) toCommand() pathflatten.Command {
	return pathflatten.Command{
		Kind: pathflatten.KindArc,
		X:    e.cx, Y: e.cy, RX: e.r,
		StartAng: e.a0, EndAng: e.a1, CCW: e.ccw,
	}
}

type ellipseElem struct {
	cx, cy, rx, ry, rot, a0, a1 float64
	ccw                         bool
}

func (ellipseElem) isPathElement() {}
func (e ellipseElem) toCommand() pathflatten.Command {
	return pathflatten.Command{
		Kind: pathflatten.KindEllipse,
		X:    e.cx, Y: e.cy, RX: e.rx, RY: e.ry,
		Rotation: e.rot, StartAng: e.a0, EndAng: e.a1, CCW: e.ccw,
	}
}

type closeElem struct{}

func (closeElem) isPathElement() {}
func (closeElem) toCommand() pathflatten.Command {
	return pathflatten.Command{Kind: pathflatten.KindClose}
}

// Path is an append-only command log (spec §3). It is never mutated
// during rendering: flattening and stroke generation both read it
// through Commands without altering it.
type Path struct {
	elements []PathElement
	start    Point
	current  Point
	hasPen   bool
}

// NewPath returns a new empty path.
func NewPath() *Path {
	return &Path{elements: make([]PathElement, 0, 16)}
}

// allFinite reports whether every value in vs is neither NaN nor Inf.
func allFinite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// MoveTo starts a new subpath at (x,y). Returns ErrNonFiniteCoordinate,
// leaving the path unchanged, if x or y is NaN or Inf.
func (p *Path) MoveTo(x, y float64) error {
	if !allFinite(x, y) {
		return ErrNonFiniteCoordinate
	}
	p.elements = append(p.elements, moveToElem{x, y})
	p.start = Pt(x, y)
	p.current = p.start
	p.hasPen = true
	return nil
}

// LineTo appends a line segment to (x,y). Returns
// ErrNonFiniteCoordinate, leaving the path unchanged, if x or y is NaN
// or Inf.
func (p *Path) LineTo(x, y float64) error {
	if !allFinite(x, y) {
		return ErrNonFiniteCoordinate
	}
	p.elements = append(p.elements, lineToElem{x, y})
	p.current = Pt(x, y)
	p.hasPen = true
	return nil
}

// QuadraticCurveTo appends a quadratic Bezier with control (cpx,cpy)
// ending at (x,y). Returns ErrNonFiniteCoordinate, leaving the path
// unchanged, if any coordinate is NaN or Inf.
func (p *Path) QuadraticCurveTo(cpx, cpy, x, y float64) error {
	if !allFinite(cpx, cpy, x, y) {
		return ErrNonFiniteCoordinate
	}
	p.elements = append(p.elements, quadToElem{cpx, cpy, x, y})
	p.current = Pt(x, y)
	p.hasPen = true
	return nil
}

// BezierCurveTo appends a cubic Bezier with controls (c1x,c1y),
// (c2x,c2y) ending at (x,y). Returns ErrNonFiniteCoordinate, leaving
// the path unchanged, if any coordinate is NaN or Inf.
func (p *Path) BezierCurveTo(c1x, c1y, c2x, c2y, x, y float64) error {
	if !allFinite(c1x, c1y, c2x, c2y, x, y) {
		return ErrNonFiniteCoordinate
	}
	p.elements = append(p.elements, cubicToElem{c1x, c1y, c2x, c2y, x, y})
	p.current = Pt(x, y)
	p.hasPen = true
	return nil
}

// Arc appends a circular arc of radius r about (cx,cy) swept from a0 to
// a1; ccw selects the sweep direction. Returns ErrNonFiniteCoordinate,
// leaving the path unchanged, if any argument is NaN or Inf.
func (p *Path) Arc(cx, cy, r, a0, a1 float64, ccw bool) error {
	if !allFinite(cx, cy, r, a0, a1) {
		return ErrNonFiniteCoordinate
	}
	p.elements = append(p.elements, arcElem{cx, cy, r, a0, a1, ccw})
	p.current = Pt(cx+r*math.Cos(a1), cy+r*math.Sin(a1))
	p.hasPen = true
	return nil
}

// Ellipse appends an elliptical arc per the same convention as Arc,
// with independent radii rx, ry and a rotation in radians. Returns
// ErrNonFiniteCoordinate, leaving the path unchanged, if any argument
// is NaN or Inf.
func (p *Path) Ellipse(cx, cy, rx, ry, rot, a0, a1 float64, ccw bool) error {
	if !allFinite(cx, cy, rx, ry, rot, a0, a1) {
		return ErrNonFiniteCoordinate
	}
	p.elements = append(p.elements, ellipseElem{cx, cy, rx, ry, rot, a0, a1, ccw})
	ex, ey := rx*math.Cos(a1), ry*math.Sin(a1)
	cosRot, sinRot := math.Cos(rot), math.Sin(rot)
	p.current = Pt(cx+ex*cosRot-ey*sinRot, cy+ex*sinRot+ey*cosRot)
	p.hasPen = true
	return nil
}

// Rect appends a closed rectangular subpath, independent of any other
// subpath currently open. Returns ErrNonFiniteCoordinate, leaving the
// path unchanged, if any argument is NaN or Inf.
func (p *Path) Rect(x, y, w, h float64) error {
	if !allFinite(x, y, w, h) {
		return ErrNonFiniteCoordinate
	}
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.ClosePath()
	return nil
}

// ClosePath closes the current subpath back to its start point.
func (p *Path) ClosePath() {
	p.elements = append(p.elements, closeElem{})
	p.current = p.start
}

// CurrentPoint returns the path's current pen position.
func (p *Path) CurrentPoint() Point { return p.current }

// HasCurrentPoint reports whether any command other than ClosePath has
// been recorded since the last Clear.
func (p *Path) HasCurrentPoint() bool { return p.hasPen }

// Clear removes all recorded commands.
func (p *Path) Clear() {
	p.elements = p.elements[:0]
	p.start = Point{}
	p.current = Point{}
	p.hasPen = false
}

// Commands returns the path as a pathflatten command sequence.
func (p *Path) Commands() []pathflatten.Command {
	cmds := make([]pathflatten.Command, len(p.elements))
	for i, e := range p.elements {
		cmds[i] = e.toCommand()
	}
	return cmds
}
