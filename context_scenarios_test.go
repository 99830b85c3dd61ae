package gg

import "testing"

// TestScenarioNestedFillRect is spec scenario S1: a large opaque fill
// followed by a smaller, differently-colored fill should leave the
// outer ring one color and the inner region another, with an exact
// boundary.
func TestScenarioNestedFillRect(t *testing.T) {
	dc, err := NewContext(10, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dc.SetFillStyle(255, 0, 0, 255)
	dc.FillRect(0, 0, 10, 10)
	dc.SetFillStyle(0, 255, 0, 255)
	dc.FillRect(3, 3, 4, 4)

	outer := dc.Surface().PixelAt(0, 0)
	if outer != (Color{R: 255, A: 255}) {
		t.Errorf("outer ring should stay red, got %+v", outer)
	}
	inner := dc.Surface().PixelAt(4, 4)
	if inner != (Color{G: 255, A: 255}) {
		t.Errorf("inner square should be green, got %+v", inner)
	}
	// (7,7) is in row 7, the first row past the inner square's [3,7)
	// row extent (row 7 samples at 7.5).
	boundary := dc.Surface().PixelAt(7, 7)
	if boundary != (Color{R: 255, A: 255}) {
		t.Errorf("pixel just outside the inner square should be red, got %+v", boundary)
	}
}

// TestScenarioHalfAlphaBlend is spec scenario S2: filling an opaque red
// pixel with a 50%-alpha blue fill must produce the exact straight-alpha
// blend formula's result, not an approximation.
func TestScenarioHalfAlphaBlend(t *testing.T) {
	dc, err := NewContext(4, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dc.SetFillStyle(255, 0, 0, 255)
	dc.FillRect(0, 0, 4, 4)

	dc.SetFillStyle(0, 0, 255, 128)
	dc.FillRect(0, 0, 4, 4)

	got := dc.Surface().PixelAt(1, 1)
	// sa = 128/255, out.R = round(0*sa + 255*(1-sa)), out.B = round(255*sa + 0*(1-sa))
	sa := 128.0 / 255.0
	wantR := roundClampByte(255 * (1 - sa))
	wantB := roundClampByte(255 * sa)
	if got.R != wantR || got.B != wantB || got.A != 255 {
		t.Errorf("want (R=%d,B=%d,A=255), got %+v", wantR, wantB, got)
	}
}

// TestScenarioCopyModePreservesExactSourceAlpha is spec scenario S6:
// CompositeCopy must replace the destination pixel outright, including
// its alpha channel, rather than blending.
func TestScenarioCopyModePreservesExactSourceAlpha(t *testing.T) {
	dc, err := NewContext(4, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dc.SetFillStyle(255, 0, 0, 255)
	dc.FillRect(0, 0, 4, 4)

	if err := dc.SetGlobalCompositeOperation(CompositeCopy); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dc.SetFillStyle(10, 20, 30, 77)
	dc.FillRect(0, 0, 4, 4)

	got := dc.Surface().PixelAt(2, 2)
	if got != (Color{R: 10, G: 20, B: 30, A: 77}) {
		t.Errorf("copy mode should write the source color verbatim including alpha, got %+v", got)
	}
}

func TestScenarioCopyModeWithGlobalAlphaScalesBeforeCopy(t *testing.T) {
	dc, err := NewContext(4, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := dc.SetGlobalCompositeOperation(CompositeCopy); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dc.SetGlobalAlpha(0.5)
	dc.SetFillStyle(10, 20, 30, 200)
	dc.FillRect(0, 0, 4, 4)

	got := dc.Surface().PixelAt(1, 1)
	wantA := roundClampByte(200 * 0.5)
	if got.A != wantA {
		t.Errorf("want alpha scaled by globalAlpha before the copy, got A=%d want %d", got.A, wantA)
	}
	if got.R != 10 || got.G != 20 || got.B != 30 {
		t.Errorf("RGB should be copied verbatim even under globalAlpha, got %+v", got)
	}
}
