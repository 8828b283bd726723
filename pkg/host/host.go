// Package host defines the presentation abstraction the control renders
// through. The rendering pipeline, layout engine, and accessibility tree
// all live behind these interfaces; this module never implements them.
package host

import (
	"time"

	"golang.org/x/image/font"

	"github.com/jaywardell/singleusebutton/pkg/graphics"
	"github.com/jaywardell/singleusebutton/pkg/icons"
	"github.com/jaywardell/singleusebutton/pkg/semantics"
	"github.com/jaywardell/singleusebutton/pkg/shape"
)

// Paint describes a fill treatment: either a solid color or a gradient.
type Paint struct {
	Color    graphics.Color
	Gradient *graphics.Gradient
}

// Solid creates a solid-color paint.
func Solid(c graphics.Color) Paint {
	return Paint{Color: c}
}

// WithGradient creates a gradient paint.
func WithGradient(g *graphics.Gradient) Paint {
	return Paint{Gradient: g}
}

// IsGradient reports whether the paint carries a usable gradient.
func (p Paint) IsGradient() bool {
	return p.Gradient.IsValid()
}

// IsTransparent reports whether the paint draws nothing.
func (p Paint) IsTransparent() bool {
	return !p.IsGradient() && p.Color.Alpha() == 0
}

// TextStyle describes how the canvas should draw a string.
type TextStyle struct {
	Paint    Paint
	FontSize float64
	// Opacity multiplies the paint's alpha; 0 draws nothing but the text
	// still occupies its measured space.
	Opacity float64
}

// Canvas exposes the host's drawing primitives. All coordinates are in
// logical pixels relative to the control's bounding box.
type Canvas interface {
	// FillShape fills the region described by s within bounds.
	FillShape(s shape.Shape, bounds graphics.Rect, paint Paint)
	// DrawText draws one line of text at origin.
	DrawText(text string, origin graphics.Offset, style TextStyle)
	// DrawIcon draws a resolved icon into bounds at the given opacity.
	DrawIcon(d icons.Drawable, bounds graphics.Rect, opacity float64)
}

// Metrics exposes the host's scaled sizing primitives.
type Metrics interface {
	// BasePaddingUnit returns the platform's text-scaling-aware padding
	// unit. The padding policy multiplies this, never recomputes it.
	BasePaddingUnit() float64
	// Face returns the font face labels are measured against.
	Face() font.Face
}

// FrameScheduler requests render passes. Hosts batch requests per frame.
type FrameScheduler interface {
	// RequestFrame schedules fn to run on the next frame with the frame
	// timestamp. One-shot: animations re-request while running.
	RequestFrame(fn func(now time.Time))
}

// Accessibility receives the control's current semantics node.
type Accessibility interface {
	Update(node semantics.Node)
}

// Host bundles everything the control consumes from its platform.
type Host interface {
	Canvas() Canvas
	Metrics() Metrics
	Scheduler() FrameScheduler
	Accessibility() Accessibility
	Icons() icons.Resolver
}
