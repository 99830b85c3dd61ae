package gg

import "testing"

// TestClipCircleRestrictsSubsequentFill is spec scenario S3: clipping to
// a circle then filling a larger rect should only paint inside the
// circle.
func TestClipCircleRestrictsSubsequentFill(t *testing.T) {
	dc, err := NewContext(20, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dc.BeginPath()
	dc.Arc(10, 10, 5, 0, 2*3.141592653589793, false)
	dc.Clip(FillRuleNonZero)

	dc.SetFillStyle(255, 0, 0, 255)
	dc.FillRect(0, 0, 20, 20)

	center := dc.Surface().PixelAt(10, 10)
	if center.A == 0 {
		t.Errorf("center of clip circle should be painted, got %+v", center)
	}
	corner := dc.Surface().PixelAt(0, 0)
	if corner.A != 0 {
		t.Errorf("corner outside the clip circle should remain untouched, got %+v", corner)
	}
}

func TestClipIsMonotonicAcrossNestedCalls(t *testing.T) {
	dc, err := NewContext(20, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dc.BeginPath()
	dc.Rect(0, 0, 20, 20)
	dc.Clip(FillRuleNonZero)

	dc.BeginPath()
	dc.Rect(0, 0, 5, 5)
	dc.Clip(FillRuleNonZero)

	dc.SetFillStyle(0, 255, 0, 255)
	dc.FillRect(0, 0, 20, 20)

	inside := dc.Surface().PixelAt(2, 2)
	if inside.A == 0 {
		t.Errorf("pixel inside both clip rects should be painted")
	}
	outside := dc.Surface().PixelAt(15, 15)
	if outside.A != 0 {
		t.Errorf("pixel outside the second, narrower clip should remain untouched")
	}
}

func TestClipIsRevertedByRestore(t *testing.T) {
	dc, err := NewContext(10, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dc.Save()
	dc.BeginPath()
	dc.Rect(0, 0, 2, 2)
	dc.Clip(FillRuleNonZero)
	dc.Restore()

	dc.SetFillStyle(0, 0, 255, 255)
	dc.FillRect(0, 0, 10, 10)

	far := dc.Surface().PixelAt(9, 9)
	if far.A == 0 {
		t.Errorf("clip set inside a Save/Restore scope must not leak past Restore")
	}
}

func TestClipEmptyPathClipsAwayEverything(t *testing.T) {
	dc, err := NewContext(5, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dc.BeginPath()
	dc.Clip(FillRuleNonZero)

	dc.SetFillStyle(255, 255, 255, 255)
	dc.FillRect(0, 0, 5, 5)

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if dc.Surface().PixelAt(x, y).A != 0 {
				t.Fatalf("an empty-path clip should hide the entire surface, but (%d,%d) is painted", x, y)
			}
		}
	}
}
