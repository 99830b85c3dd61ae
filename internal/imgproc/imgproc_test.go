package imgproc

import (
	"errors"
	"testing"
)

func TestNewAcceptsRGBAndFillsOpaqueAlpha(t *testing.T) {
	data := []uint8{255, 0, 0, 0, 255, 0, 0, 0, 255, 10, 20, 30}
	img, err := New(2, 2, data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r, g, b, a := img.At(0, 0)
	if r != 255 || g != 0 || b != 0 || a != 255 {
		t.Errorf("pixel 0: want (255,0,0,255), got (%d,%d,%d,%d)", r, g, b, a)
	}
	r, g, b, a = img.At(1, 1)
	if r != 10 || g != 20 || b != 30 || a != 255 {
		t.Errorf("pixel 3: want (10,20,30,255), got (%d,%d,%d,%d)", r, g, b, a)
	}
}

func TestNewAcceptsRGBAVerbatim(t *testing.T) {
	data := []uint8{1, 2, 3, 128, 4, 5, 6, 64, 7, 8, 9, 32, 10, 11, 12, 16}
	img, err := New(2, 2, data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r, g, b, a := img.At(0, 0)
	if r != 1 || g != 2 || b != 3 || a != 128 {
		t.Errorf("want (1,2,3,128), got (%d,%d,%d,%d)", r, g, b, a)
	}
}

func TestNewCopiesData(t *testing.T) {
	data := []uint8{1, 2, 3, 255}
	img, err := New(1, 1, data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data[0] = 99
	r, _, _, _ := img.At(0, 0)
	if r != 1 {
		t.Errorf("New must copy data, not retain the caller's slice: got r=%d after mutating source", r)
	}
}

func TestNewRejectsNonPositiveDimensions(t *testing.T) {
	if _, err := New(0, 1, nil); !errors.Is(err, ErrInvalidImageDimensions) {
		t.Errorf("want ErrInvalidImageDimensions for zero width, got %v", err)
	}
	if _, err := New(1, -1, nil); !errors.Is(err, ErrInvalidImageDimensions) {
		t.Errorf("want ErrInvalidImageDimensions for negative height, got %v", err)
	}
}

func TestNewRejectsOversizedDimensions(t *testing.T) {
	if _, err := New(MaxDimension+1, 1, nil); !errors.Is(err, ErrInvalidImageDimensions) {
		t.Errorf("want ErrInvalidImageDimensions for width exceeding MaxDimension, got %v", err)
	}
}

func TestNewRejectsMismatchedDataLength(t *testing.T) {
	if _, err := New(2, 2, make([]uint8, 5)); !errors.Is(err, ErrInvalidImageDimensions) {
		t.Errorf("want ErrInvalidImageDimensions for a length matching neither RGB nor RGBA, got %v", err)
	}
}
