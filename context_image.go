package gg

import (
	"math"

	"github.com/gogpu/gg/internal/imgproc"
	"github.com/gogpu/gg/internal/raster"
)

// Image is a decoded, validated source image for drawImage: straight
// (non-premultiplied) RGBA, stride Width*4. Construct with NewImage.
type Image struct {
	img *imgproc.Image
}

// NewImage validates and normalizes a caller-supplied image block (spec
// §6 "Input image format"): data must have length width*height*3 (RGB,
// alpha assumed 255) or width*height*4 (RGBA, straight alpha); either
// dimension exceeding 16384, or a non-positive dimension, or a length
// matching neither form, is a fatal argument error. NewImage copies
// data; it never retains the caller's slice.
func NewImage(width, height int, data []uint8) (*Image, error) {
	img, err := imgproc.New(width, height, data)
	if err != nil {
		return nil, err
	}
	return &Image{img: img}, nil
}

// Width returns the image width in pixels.
func (i *Image) Width() int { return i.img.Width }

// Height returns the image height in pixels.
func (i *Image) Height() int { return i.img.Height }

// DrawImage draws the whole of src into the destination rectangle
// [dx,dy,dx+dw,dy+dh) in user space (the 5-argument Canvas form).
func (c *Context) DrawImage(src *Image, dx, dy, dw, dh float64) error {
	return c.DrawImageRect(src, 0, 0, float64(src.Width()), float64(src.Height()), dx, dy, dw, dh)
}

// DrawImageAt draws the whole of src at (dx,dy) at its native size (the
// 3-argument Canvas form).
func (c *Context) DrawImageAt(src *Image, dx, dy float64) error {
	return c.DrawImage(src, dx, dy, float64(src.Width()), float64(src.Height()))
}

// DrawImageRect draws the source sub-rectangle [sx,sy,sx+sw,sy+sh) of
// src into the destination rectangle [dx,dy,dx+dw,dy+dh) in user space
// (the 9-argument Canvas form), per spec §4.7. The source rectangle
// must lie within src's bounds, or ErrSourceRectOutOfBounds is
// returned and the surface is left unchanged.
func (c *Context) DrawImageRect(src *Image, sx, sy, sw, sh, dx, dy, dw, dh float64) error {
	if sx < 0 || sy < 0 || sx+sw > float64(src.Width()) || sy+sh > float64(src.Height()) {
		return ErrSourceRectOutOfBounds
	}
	if dw <= 0 || dh <= 0 || sw <= 0 || sh <= 0 {
		return nil
	}

	inv, err := c.state.transform.Invert()
	if err != nil {
		return err
	}

	corners := [4]Point{
		c.state.transform.Apply(Pt(dx, dy)),
		c.state.transform.Apply(Pt(dx+dw, dy)),
		c.state.transform.Apply(Pt(dx+dw, dy+dh)),
		c.state.transform.Apply(Pt(dx, dy+dh)),
	}
	minX, maxX := corners[0].X, corners[0].X
	minY, maxY := corners[0].Y, corners[0].Y
	for _, p := range corners[1:] {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}

	x0 := clampInt(int(math.Floor(minX)), 0, c.surface.Width()-1)
	x1 := clampInt(int(math.Ceil(maxX)), 0, c.surface.Width()-1)
	y0 := clampInt(int(math.Floor(minY)), 0, c.surface.Height()-1)
	y1 := clampInt(int(math.Ceil(maxY)), 0, c.surface.Height()-1)

	clipTest := c.clipTest()
	mode := c.compositeMode()
	alpha := c.state.globalAlpha

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if clipTest != nil && !clipTest(x, y) {
				continue
			}
			dxSpace := float64(x) + 0.5
			dySpace := float64(y) + 0.5
			u := inv.A*dxSpace + inv.C*dySpace + inv.E
			v := inv.B*dxSpace + inv.D*dySpace + inv.F
			if u < dx || u >= dx+dw || v < dy || v >= dy+dh {
				continue
			}
			srcX := int(math.Floor(sx + (u-dx)/dw*sw))
			srcY := int(math.Floor(sy + (v-dy)/dh*sh))
			if srcX < 0 || srcX >= src.img.Width || srcY < 0 || srcY >= src.img.Height {
				continue
			}
			r, g, b, a := src.img.At(srcX, srcY)
			color := raster.Color{R: r, G: g, B: b, A: roundClampByte(float64(a) * alpha)}
			c.surface.BlendPixel(x, y, color, mode)
		}
	}
	return nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
