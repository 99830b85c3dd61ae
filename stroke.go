package gg

import "github.com/gogpu/gg/internal/stroke"

// LineJoin selects the join geometry used where two stroked segments
// meet (spec §4.4).
type LineJoin int

const (
	LineJoinMiter LineJoin = iota
	LineJoinRound
	LineJoinBevel
)

func (j LineJoin) toInternal() (stroke.Join, bool) {
	switch j {
	case LineJoinMiter:
		return stroke.JoinMiter, true
	case LineJoinRound:
		return stroke.JoinRound, true
	case LineJoinBevel:
		return stroke.JoinBevel, true
	default:
		return 0, false
	}
}

// LineCap selects the cap geometry at the open ends of a stroked path
// (spec §4.4).
type LineCap int

const (
	LineCapButt LineCap = iota
	LineCapRound
	LineCapSquare
)

func (c LineCap) toInternal() (stroke.Cap, bool) {
	switch c {
	case LineCapButt:
		return stroke.CapButt, true
	case LineCapRound:
		return stroke.CapRound, true
	case LineCapSquare:
		return stroke.CapSquare, true
	default:
		return 0, false
	}
}
