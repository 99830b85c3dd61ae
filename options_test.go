package gg

import "testing"

func TestWithSurfaceRejectsDimensionMismatch(t *testing.T) {
	surf, err := NewSurface(10, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = NewContext(5, 5, WithSurface(surf))
	if err != ErrInvalidSurfaceDimensions {
		t.Errorf("want ErrInvalidSurfaceDimensions, got %v", err)
	}
}

func TestWithSurfaceUsesProvidedSurface(t *testing.T) {
	surf, err := NewSurface(8, 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dc, err := NewContext(8, 8, WithSurface(surf))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dc.Surface() != surf {
		t.Errorf("Context should draw into the caller-supplied surface")
	}
}

func TestWithFlattenToleranceChangesSubdivisionCount(t *testing.T) {
	tight, err := NewContext(300, 300, WithFlattenTolerance(0.01))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	loose, err := NewContext(300, 300, WithFlattenTolerance(10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, c := range []*Context{tight, loose} {
		c.MoveTo(0, 0)
		c.QuadraticCurveTo(150, 150, 300, 0)
	}

	tightPolys := tight.flattenPath()
	loosePolys := loose.flattenPath()
	if len(tightPolys[0]) <= len(loosePolys[0]) {
		t.Errorf("tighter tolerance should subdivide into more points: tight=%d loose=%d", len(tightPolys[0]), len(loosePolys[0]))
	}
}

func TestDefaultOptionsUseFixedPathflattenTolerance(t *testing.T) {
	dc, err := NewContext(10, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dc.flattenTolerance != defaultOptions().flattenTolerance {
		t.Errorf("default Context should use the package default tolerance")
	}
}
