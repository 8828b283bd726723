// Package shape defines the closed set of border shapes a control can be
// drawn with. Shapes are descriptions only; the host canvas owns the
// fill-this-region capability that turns them into pixels.
package shape

import (
	"fmt"

	"github.com/jaywardell/singleusebutton/pkg/graphics"
)

// Kind identifies the shape variant.
type Kind int

const (
	// KindRoundedRect is the platform-standard rounded control outline.
	KindRoundedRect Kind = iota
	// KindCapsule is a stadium shape: semicircular ends, straight sides.
	KindCapsule
	// KindPath is a caller-supplied outline polygon.
	KindPath
)

// String returns a human-readable representation of the shape kind.
func (k Kind) String() string {
	switch k {
	case KindRoundedRect:
		return "rounded_rect"
	case KindCapsule:
		return "capsule"
	case KindPath:
		return "path"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// defaultCornerRadius matches the standard control outline.
const defaultCornerRadius = 8

// Shape describes a border shape. The zero value is the standard
// rounded-rect outline.
type Shape struct {
	Kind Kind
	// CornerRadius applies to KindRoundedRect only. Zero means the
	// standard radius.
	CornerRadius float64
	// Points is the outline polygon for KindPath, in unit coordinates.
	Points []graphics.Offset
}

// RoundedRect creates the standard outline shape with the given corner
// radius. Pass zero for the default radius.
func RoundedRect(radius float64) Shape {
	return Shape{Kind: KindRoundedRect, CornerRadius: radius}
}

// Capsule creates a stadium shape.
func Capsule() Shape {
	return Shape{Kind: KindCapsule}
}

// Path creates a caller-defined outline from unit-space points.
func Path(points []graphics.Offset) Shape {
	pts := make([]graphics.Offset, len(points))
	copy(pts, points)
	return Shape{Kind: KindPath, Points: pts}
}

// IsCapsule reports whether the shape is the stadium variant. The padding
// policy branches on this and nothing else.
func (s Shape) IsCapsule() bool {
	return s.Kind == KindCapsule
}

// Radius returns the effective corner radius for rounded-rect shapes.
func (s Shape) Radius() float64 {
	if s.Kind != KindRoundedRect {
		return 0
	}
	if s.CornerRadius > 0 {
		return s.CornerRadius
	}
	return defaultCornerRadius
}
