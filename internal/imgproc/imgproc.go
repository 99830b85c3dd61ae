// Package imgproc validates and normalizes caller-supplied image blocks
// into straight RGBA pixel buffers for drawImage sampling (spec §6
// "Input image format", §4.9). It is the sole site that allocates a
// pixel buffer from raw caller bytes.
package imgproc

import (
	"errors"
	"fmt"
)

// ErrInvalidImageDimensions reports an image block whose dimensions are
// non-positive, exceed MaxDimension, or whose data length doesn't match
// width*height*3 or width*height*4.
var ErrInvalidImageDimensions = errors.New("imgproc: invalid image dimensions")

// MaxDimension is the largest permitted width or height for a source
// image, per spec §6.
const MaxDimension = 16384

// Image is a decoded source image: straight (non-premultiplied) RGBA,
// stride == Width*4.
type Image struct {
	Width, Height int
	Pix           []uint8
}

// At returns the straight RGBA color at (x,y). Callers must bounds
// check first; At does not.
func (img *Image) At(x, y int) (r, g, b, a uint8) {
	i := (y*img.Width + x) * 4
	p := img.Pix[i : i+4 : i+4]
	return p[0], p[1], p[2], p[3]
}

// New validates and normalizes a caller-supplied image block. data must
// have length width*height*3 (RGB, alpha assumed 255) or width*height*4
// (RGBA, straight alpha); any other combination is
// ErrInvalidImageDimensions. The returned Image owns a private copy of
// data — it never retains the caller's slice.
func New(width, height int, data []uint8) (*Image, error) {
	if width <= 0 || height <= 0 || width > MaxDimension || height > MaxDimension {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidImageDimensions, width, height)
	}
	n := width * height
	switch len(data) {
	case n * 3:
		pix := make([]uint8, n*4)
		for i := 0; i < n; i++ {
			pix[i*4+0] = data[i*3+0]
			pix[i*4+1] = data[i*3+1]
			pix[i*4+2] = data[i*3+2]
			pix[i*4+3] = 255
		}
		return &Image{Width: width, Height: height, Pix: pix}, nil
	case n * 4:
		pix := make([]uint8, n*4)
		copy(pix, data)
		return &Image{Width: width, Height: height, Pix: pix}, nil
	default:
		return nil, fmt.Errorf("%w: data length %d matches neither RGB nor RGBA for %dx%d", ErrInvalidImageDimensions, len(data), width, height)
	}
}
