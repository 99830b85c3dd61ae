package gg

import (
	"github.com/gogpu/gg/internal/clip"
	"github.com/gogpu/gg/internal/raster"
)

// drawState is one save-frame of drawing configuration (spec §3
// DrawingState). Context.save pushes a deep copy; Context.restore pops.
type drawState struct {
	transform   Matrix
	globalAlpha float64
	composite   CompositeOperation
	fillColor   Color
	strokeColor Color
	lineWidth   float64
	lineJoin    LineJoin
	lineCap     LineCap
	miterLimit  float64
	clipMask    *clip.Mask // nil means "no clipping"
}

// CompositeOperation selects how drawing operations combine with the
// existing surface contents (spec §4.3).
type CompositeOperation int

const (
	CompositeSourceOver CompositeOperation = iota
	CompositeCopy
)

func (c CompositeOperation) toInternal() (raster.CompositeMode, bool) {
	switch c {
	case CompositeSourceOver:
		return raster.SourceOver, true
	case CompositeCopy:
		return raster.Copy, true
	default:
		return 0, false
	}
}

func defaultDrawState() drawState {
	return drawState{
		transform:   Identity(),
		globalAlpha: 1,
		composite:   CompositeSourceOver,
		fillColor:   Color{A: 255},
		strokeColor: Color{A: 255},
		lineWidth:   1,
		lineJoin:    LineJoinMiter,
		lineCap:     LineCapButt,
		miterLimit:  10,
	}
}

// clone deep-copies s, including the clip mask, per spec §3's
// "deep-copied clip mask" save-frame requirement.
func (s drawState) clone() drawState {
	out := s
	if s.clipMask != nil {
		out.clipMask = s.clipMask.Clone()
	}
	return out
}
