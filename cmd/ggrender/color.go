package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
)

// ColorParser parses a CSS-style color string into straight RGBA. The
// core package gg neither declares nor implements a color parser:
// scripts arrive with colors as strings, and this CLI is the one place
// that turns them into numeric tuples before calling into gg.
type ColorParser interface {
	ParseColor(s string) (gg.Color, error)
}

// hexColorParser accepts #rgb, #rgba, #rrggbb, #rrggbbaa hex forms and
// a small table of named colors.
type hexColorParser struct{}

var namedColors = map[string]gg.Color{
	"black":       gg.Opaque(0, 0, 0),
	"white":       gg.Opaque(255, 255, 255),
	"red":         gg.Opaque(255, 0, 0),
	"green":       gg.Opaque(0, 128, 0),
	"blue":        gg.Opaque(0, 0, 255),
	"yellow":      gg.Opaque(255, 255, 0),
	"cyan":        gg.Opaque(0, 255, 255),
	"magenta":     gg.Opaque(255, 0, 255),
	"transparent": gg.RGBA(0, 0, 0, 0),
}

func (hexColorParser) ParseColor(s string) (gg.Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		if c, ok := namedColors[strings.ToLower(s)]; ok {
			return c, nil
		}
		return gg.Color{}, fmt.Errorf("unknown color name %q", s)
	}

	hex := s[1:]
	switch len(hex) {
	case 3:
		r, g, b := hex[0:1], hex[1:2], hex[2:3]
		return hexRGBA(r+r, g+g, b+b, "ff")
	case 4:
		r, g, b, a := hex[0:1], hex[1:2], hex[2:3], hex[3:4]
		return hexRGBA(r+r, g+g, b+b, a+a)
	case 6:
		return hexRGBA(hex[0:2], hex[2:4], hex[4:6], "ff")
	case 8:
		return hexRGBA(hex[0:2], hex[2:4], hex[4:6], hex[6:8])
	default:
		return gg.Color{}, fmt.Errorf("invalid hex color %q", s)
	}
}

func hexRGBA(r, g, b, a string) (gg.Color, error) {
	rv, err := strconv.ParseUint(r, 16, 8)
	if err != nil {
		return gg.Color{}, fmt.Errorf("invalid hex component %q: %w", r, err)
	}
	gv, err := strconv.ParseUint(g, 16, 8)
	if err != nil {
		return gg.Color{}, fmt.Errorf("invalid hex component %q: %w", g, err)
	}
	bv, err := strconv.ParseUint(b, 16, 8)
	if err != nil {
		return gg.Color{}, fmt.Errorf("invalid hex component %q: %w", b, err)
	}
	av, err := strconv.ParseUint(a, 16, 8)
	if err != nil {
		return gg.Color{}, fmt.Errorf("invalid hex component %q: %w", a, err)
	}
	return gg.RGBA(uint8(rv), uint8(gv), uint8(bv), uint8(av)), nil
}
