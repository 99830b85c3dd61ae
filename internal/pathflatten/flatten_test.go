package pathflatten

import (
	"math"
	"testing"

	"github.com/gogpu/gg/internal/geom"
)

func maxChordDeviation(t *testing.T, poly []geom.Point) float64 {
	t.Helper()
	max := 0.0
	for i := 0; i+2 < len(poly); i++ {
		p0, p1, p2 := poly[i], poly[i+1], poly[i+2]
		chord := p2.Sub(p0)
		l := chord.Length()
		if l < 1e-12 {
			continue
		}
		d := math.Abs(p1.Sub(p0).Cross(chord)) / l
		if d > max {
			max = d
		}
	}
	return max
}

func TestFlattenQuadStaysWithinTolerance(t *testing.T) {
	cmds := []Command{
		{Kind: KindMoveTo, X: 0, Y: 0},
		{Kind: KindQuadTo, CPX: 100, CPY: 100, X: 200, Y: 0},
	}
	polys := FlattenWithTolerance(cmds, 0.25)
	if len(polys) != 1 {
		t.Fatalf("want 1 polygon, got %d", len(polys))
	}
	if len(polys[0]) < 3 {
		t.Fatalf("expected curve subdivision to emit multiple points, got %d", len(polys[0]))
	}
	if d := maxChordDeviation(t, polys[0]); d > 0.26 {
		t.Errorf("chord deviation %v exceeds tolerance", d)
	}
}

func TestFlattenCubicStaysWithinTolerance(t *testing.T) {
	cmds := []Command{
		{Kind: KindMoveTo, X: 0, Y: 0},
		{Kind: KindCubicTo, C1X: 0, C1Y: 150, C2X: 200, C2Y: 150, X: 200, Y: 0},
	}
	polys := FlattenWithTolerance(cmds, 0.25)
	if len(polys) != 1 {
		t.Fatalf("want 1 polygon, got %d", len(polys))
	}
	if d := maxChordDeviation(t, polys[0]); d > 0.26 {
		t.Errorf("chord deviation %v exceeds tolerance", d)
	}
}

func TestFlattenToleranceIsMonotonic(t *testing.T) {
	cmds := []Command{
		{Kind: KindMoveTo, X: 0, Y: 0},
		{Kind: KindQuadTo, CPX: 100, CPY: 100, X: 200, Y: 0},
	}
	tight := FlattenWithTolerance(cmds, 0.05)
	loose := FlattenWithTolerance(cmds, 2.0)
	if len(tight[0]) <= len(loose[0]) {
		t.Errorf("tighter tolerance should emit more points: tight=%d loose=%d", len(tight[0]), len(loose[0]))
	}
}

func TestFlattenDefaultMatchesFixedTolerance(t *testing.T) {
	cmds := []Command{
		{Kind: KindMoveTo, X: 0, Y: 0},
		{Kind: KindCubicTo, C1X: 10, C1Y: 80, C2X: 90, C2Y: 80, X: 100, Y: 0},
	}
	a := Flatten(cmds)
	b := FlattenWithTolerance(cmds, Tolerance)
	if len(a[0]) != len(b[0]) {
		t.Fatalf("Flatten and FlattenWithTolerance(Tolerance) diverged: %d vs %d points", len(a[0]), len(b[0]))
	}
	for i := range a[0] {
		if a[0][i] != b[0][i] {
			t.Fatalf("point %d differs: %v vs %v", i, a[0][i], b[0][i])
		}
	}
}

func TestFlattenRectProducesClosedQuad(t *testing.T) {
	cmds := []Command{
		{Kind: KindMoveTo, X: 0, Y: 0},
		{Kind: KindLineTo, X: 10, Y: 0},
		{Kind: KindLineTo, X: 10, Y: 10},
		{Kind: KindLineTo, X: 0, Y: 10},
		{Kind: KindClose},
	}
	polys := FlattenWithTolerance(cmds, 0.25)
	if len(polys) != 1 {
		t.Fatalf("want 1 polygon, got %d", len(polys))
	}
	poly := polys[0]
	if poly[0] != poly[len(poly)-1] {
		t.Errorf("ClosePath should return to the subpath start, got %v vs %v", poly[0], poly[len(poly)-1])
	}
}

func TestFlattenArcFullCircleEndpointsMatchRadius(t *testing.T) {
	cmds := []Command{
		{Kind: KindArc, X: 50, Y: 50, RX: 20, StartAng: 0, EndAng: 2 * math.Pi, CCW: false},
	}
	polys := FlattenWithTolerance(cmds, 0.25)
	if len(polys) != 1 {
		t.Fatalf("want 1 polygon, got %d", len(polys))
	}
	for _, p := range polys[0] {
		r := p.Distance(geom.Pt(50, 50))
		if math.Abs(r-20) > 1e-6 {
			t.Errorf("point %v not on circle of radius 20 (got r=%v)", p, r)
		}
	}
}

func TestFlattenEmptyCommandsProducesNoPolygons(t *testing.T) {
	polys := FlattenWithTolerance(nil, Tolerance)
	if len(polys) != 0 {
		t.Errorf("want 0 polygons, got %d", len(polys))
	}
}

func TestFlattenDegenerateQuadDoesNotRecurseForever(t *testing.T) {
	cmds := []Command{
		{Kind: KindMoveTo, X: 5, Y: 5},
		{Kind: KindQuadTo, CPX: 5, CPY: 5, X: 5, Y: 5},
	}
	polys := FlattenWithTolerance(cmds, Tolerance)
	if len(polys) != 1 {
		t.Fatalf("want 1 polygon, got %d", len(polys))
	}
}
