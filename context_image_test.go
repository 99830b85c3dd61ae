package gg

import "testing"

func TestNewImageAcceptsRGBAndRGBA(t *testing.T) {
	if _, err := NewImage(2, 1, []uint8{255, 0, 0, 0, 255, 0}); err != nil {
		t.Errorf("RGB form: unexpected error: %v", err)
	}
	if _, err := NewImage(2, 1, []uint8{255, 0, 0, 255, 0, 255, 0, 255}); err != nil {
		t.Errorf("RGBA form: unexpected error: %v", err)
	}
}

func TestNewImageRejectsBadLength(t *testing.T) {
	if _, err := NewImage(2, 2, []uint8{1, 2, 3}); err == nil {
		t.Errorf("want error for data length matching neither RGB nor RGBA")
	}
}

func TestDrawImageAtPlacesImageAtNativeSize(t *testing.T) {
	dc, err := NewContext(4, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	src, err := NewImage(2, 2, []uint8{
		255, 0, 0, 255, 0, 255, 0, 255,
		0, 0, 255, 255, 255, 255, 0, 255,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := dc.DrawImageAt(src, 1, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := dc.Surface().PixelAt(1, 1)
	if got.R != 255 || got.G != 0 || got.B != 0 {
		t.Errorf("top-left source pixel should land at (1,1), got %+v", got)
	}
	untouched := dc.Surface().PixelAt(0, 0)
	if untouched.A != 0 {
		t.Errorf("pixels outside the drawn image should remain untouched, got %+v", untouched)
	}
}

func TestDrawImageRectRejectsOutOfBoundsSource(t *testing.T) {
	dc, err := NewContext(4, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	src, err := NewImage(2, 2, make([]uint8, 16))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err = dc.DrawImageRect(src, 0, 0, 3, 3, 0, 0, 3, 3)
	if err != ErrSourceRectOutOfBounds {
		t.Errorf("want ErrSourceRectOutOfBounds, got %v", err)
	}
}

func TestDrawImageScalesUpWithNearestNeighbor(t *testing.T) {
	dc, err := NewContext(4, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	src, err := NewImage(2, 1, []uint8{
		255, 0, 0, 255,
		0, 255, 0, 255,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := dc.DrawImage(src, 0, 0, 4, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	left := dc.Surface().PixelAt(0, 0)
	right := dc.Surface().PixelAt(3, 0)
	if left.R != 255 || left.G != 0 {
		t.Errorf("left half should sample the red source pixel, got %+v", left)
	}
	if right.R != 0 || right.G != 255 {
		t.Errorf("right half should sample the green source pixel, got %+v", right)
	}
}
