package gg

import (
	"image/color"
	"math"
)

// Color is an 8-bit-per-channel RGBA tuple, carrying an explicit flag
// for which alpha convention its R,G,B channels follow (spec §3). It is
// logically immutable — every method returns a new value.
//
// Premultiplied form requires R,G,B <= A. Surface storage throughout
// this package is always straight; the premultiplied form exists only
// as an input/output convenience (e.g. interop with image.Image, whose
// color.Color is itself alpha-premultiplied) and is never used as the
// filler's internal representation.
type Color struct {
	R, G, B, A    uint8
	Premultiplied bool
}

// RGBA constructs a straight-alpha color from channels in [0,255].
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Opaque constructs a fully-opaque straight-alpha color.
func Opaque(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// Straight returns c converted to straight-alpha form. If c is already
// straight, it is returned unchanged. Conversion uses
// straight = round(premult*255/A) when A>0, and (0,0,0) when A==0, per
// spec §3.
func (c Color) Straight() Color {
	if !c.Premultiplied {
		return c
	}
	if c.A == 0 {
		return Color{A: 0}
	}
	a := float64(c.A)
	return Color{
		R: roundClampByte(float64(c.R) * 255 / a),
		G: roundClampByte(float64(c.G) * 255 / a),
		B: roundClampByte(float64(c.B) * 255 / a),
		A: c.A,
	}
}

// Premultiply returns c converted to premultiplied-alpha form. If c is
// already premultiplied, it is returned unchanged.
func (c Color) Premultiply() Color {
	if c.Premultiplied {
		return c
	}
	a := float64(c.A) / 255
	return Color{
		R:             roundClampByte(float64(c.R) * a),
		G:             roundClampByte(float64(c.G) * a),
		B:             roundClampByte(float64(c.B) * a),
		A:             c.A,
		Premultiplied: true,
	}
}

// WithAlpha returns c (straight form) with its alpha channel scaled by
// factor, clamped to [0,255]. Used for the sub-pixel stroke rule (spec
// §4.4); globalAlpha is applied separately by effectiveColor.
func (c Color) WithAlpha(factor float64) Color {
	s := c.Straight()
	s.A = roundClampByte(float64(s.A) * factor)
	return s
}

// NRGBA converts c to the standard library's non-premultiplied color
// representation.
func (c Color) NRGBA() color.NRGBA {
	s := c.Straight()
	return color.NRGBA{R: s.R, G: s.G, B: s.B, A: s.A}
}

// roundClampByte rounds half-away-from-zero and clamps to [0,255], per
// spec §6's determinism contract.
func roundClampByte(v float64) uint8 {
	r := math.Floor(v + 0.5)
	if r < 0 {
		return 0
	}
	if r > 255 {
		return 255
	}
	return uint8(r)
}
