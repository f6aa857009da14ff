package skyduel

import (
	"strings"

	"github.com/vovakirdan/sky-duel/internal/assets"
	"github.com/vovakirdan/sky-duel/internal/core"
)

// Facing is the direction a craft's nose points. Exactly one is active.
type Facing int

const (
	FacingForward Facing = iota
	FacingLeft
	FacingBackward
	FacingRight
)

// Next is the facing after one left rotation:
// Forward -> Left -> Backward -> Right -> Forward.
func (f Facing) Next() Facing {
	switch f {
	case FacingForward:
		return FacingLeft
	case FacingLeft:
		return FacingBackward
	case FacingBackward:
		return FacingRight
	default:
		return FacingForward
	}
}

// Prev is the facing after one right rotation, the inverse of Next.
func (f Facing) Prev() Facing {
	switch f {
	case FacingForward:
		return FacingRight
	case FacingRight:
		return FacingBackward
	case FacingBackward:
		return FacingLeft
	default:
		return FacingForward
	}
}

// Sprite returns the atlas handle drawn for this facing.
func (f Facing) Sprite() assets.SpriteID {
	switch f {
	case FacingLeft:
		return assets.PlaneLeft
	case FacingBackward:
		return assets.PlaneBackward
	case FacingRight:
		return assets.PlaneRight
	default:
		return assets.PlaneForward
	}
}

func (f Facing) String() string {
	switch f {
	case FacingForward:
		return "forward"
	case FacingLeft:
		return "left"
	case FacingBackward:
		return "backward"
	case FacingRight:
		return "right"
	default:
		return "unknown"
	}
}

// DirectionMask is the set of steering keys held this frame.
type DirectionMask uint8

const (
	DirLeft DirectionMask = 1 << iota
	DirRight
	DirForward
	DirBackward
)

// Has reports whether every bit of d is set in m.
func (m DirectionMask) Has(d DirectionMask) bool {
	return m&d == d && d != 0
}

func (m DirectionMask) String() string {
	if m == 0 {
		return "none"
	}
	var parts []string
	for _, d := range []struct {
		bit  DirectionMask
		name string
	}{{DirLeft, "left"}, {DirRight, "right"}, {DirForward, "forward"}, {DirBackward, "backward"}} {
		if m.Has(d.bit) {
			parts = append(parts, d.name)
		}
	}
	return strings.Join(parts, "|")
}

// MaskFromInput folds a player's held steering actions into a mask.
func MaskFromInput(in core.InputFrame) DirectionMask {
	var m DirectionMask
	if in.Has(core.ActionLeft) {
		m |= DirLeft
	}
	if in.Has(core.ActionRight) {
		m |= DirRight
	}
	if in.Has(core.ActionForward) {
		m |= DirForward
	}
	if in.Has(core.ActionBackward) {
		m |= DirBackward
	}
	return m
}
