package gg

import (
	"image"
	"image/color"

	"github.com/gogpu/gg/internal/raster"
)

// Compile-time interface checks.
var (
	_ image.Image   = (*Surface)(nil)
	_ raster.Surface = (*Surface)(nil)
)

// Surface is a caller-owned rectangular pixel buffer, W*H <= 2^28, row
// stride 4*W bytes, straight (non-premultiplied) RGBA channels in a
// fixed order, origin top-left (spec §3, §6). It implements
// image.Image so it interoperates with the standard library's image
// ecosystem, and internal/raster.Surface so the filler can write
// directly into it.
type Surface struct {
	width, height int
	pix           []uint8
}

// maxSurfacePixels is 2^28, the area ceiling spec §3 imposes.
const maxSurfacePixels = 1 << 28

// NewSurface allocates a cleared (fully transparent) surface. It
// returns ErrInvalidSurfaceDimensions if width or height is
// non-positive, or ErrSurfaceTooLarge if width*height exceeds 2^28.
func NewSurface(width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidSurfaceDimensions
	}
	if int64(width)*int64(height) > maxSurfacePixels {
		return nil, ErrSurfaceTooLarge
	}
	return &Surface{width: width, height: height, pix: make([]uint8, width*height*4)}, nil
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.width }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.height }

// Stride returns the row stride in bytes (always 4*Width).
func (s *Surface) Stride() int { return s.width * 4 }

// Pix returns the raw straight-RGBA pixel bytes, row-major, stride
// Stride(). Callers may read but must not retain a mutated reference
// across concurrent draws.
func (s *Surface) Pix() []uint8 { return s.pix }

// PixelAt returns the straight RGBA color at (x,y). Out-of-range
// coordinates return the zero Color.
func (s *Surface) PixelAt(x, y int) Color {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Color{}
	}
	i := (y*s.width + x) * 4
	p := s.pix[i : i+4 : i+4]
	return Color{R: p[0], G: p[1], B: p[2], A: p[3]}
}

// setPixelAt writes c (straight RGBA) directly, with no blending.
func (s *Surface) setPixelAt(x, y int, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	i := (y*s.width + x) * 4
	p := s.pix[i : i+4 : i+4]
	p[0], p[1], p[2], p[3] = c.R, c.G, c.B, c.A
}

// Clear fills the entire surface with c (straight RGBA), no blending.
func (s *Surface) Clear(c Color) {
	for i := 0; i < len(s.pix); i += 4 {
		s.pix[i+0] = c.R
		s.pix[i+1] = c.G
		s.pix[i+2] = c.B
		s.pix[i+3] = c.A
	}
}

// BlendPixel implements internal/raster.Surface: composites src over
// the pixel at (x,y) using mode, per spec §4.3.
func (s *Surface) BlendPixel(x, y int, src raster.Color, mode raster.CompositeMode) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	i := (y*s.width + x) * 4
	p := s.pix[i : i+4 : i+4]
	dst := raster.Color{R: p[0], G: p[1], B: p[2], A: p[3]}
	out := raster.Blend(dst, src, mode)
	p[0], p[1], p[2], p[3] = out.R, out.G, out.B, out.A
}

// At implements image.Image.
func (s *Surface) At(x, y int) color.Color {
	return s.PixelAt(x, y).NRGBA()
}

// Bounds implements image.Image.
func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// ColorModel implements image.Image.
func (s *Surface) ColorModel() color.Model {
	return color.NRGBAModel
}
