package graphics

import "fmt"

// GradientKind describes the gradient variant.
type GradientKind int

const (
	// GradientNone indicates no gradient is applied.
	GradientNone GradientKind = iota
	// GradientLinear indicates a linear gradient between two points.
	GradientLinear
)

// String returns a human-readable representation of the gradient kind.
func (k GradientKind) String() string {
	switch k {
	case GradientNone:
		return "none"
	case GradientLinear:
		return "linear"
	default:
		return fmt.Sprintf("GradientKind(%d)", int(k))
	}
}

// GradientStop defines a color stop within a gradient.
type GradientStop struct {
	Position float64
	Color    Color
}

// Gradient describes a linear gradient between two points.
type Gradient struct {
	Kind  GradientKind
	Start Offset
	End   Offset
	Stops []GradientStop
}

// NewLinearGradient constructs a linear gradient definition.
func NewLinearGradient(start, end Offset, stops []GradientStop) *Gradient {
	return &Gradient{
		Kind:  GradientLinear,
		Start: start,
		End:   end,
		Stops: cloneGradientStops(stops),
	}
}

// TwoTone constructs a top-to-bottom linear gradient fading from one
// color to another. This is the armed-state treatment for both the label
// and the background fill.
func TwoTone(from, to Color) *Gradient {
	return NewLinearGradient(
		Offset{X: 0, Y: 0},
		Offset{X: 0, Y: 1},
		[]GradientStop{
			{Position: 0, Color: from},
			{Position: 1, Color: to},
		},
	)
}

// IsValid reports whether the gradient has usable stops.
func (g *Gradient) IsValid() bool {
	if g == nil || g.Kind != GradientLinear {
		return false
	}
	if len(g.Stops) < 2 {
		return false
	}
	for _, stop := range g.Stops {
		if stop.Position < 0 || stop.Position > 1 {
			return false
		}
	}
	return true
}

// Collapse returns a copy of the gradient with every stop interpolated
// toward the single color at progress t. At t=1 all stops equal the
// target and the gradient paints as a solid fill.
func (g *Gradient) Collapse(target Color, t float64) *Gradient {
	if !g.IsValid() {
		return g
	}
	stops := make([]GradientStop, len(g.Stops))
	for i, stop := range g.Stops {
		stops[i] = GradientStop{
			Position: stop.Position,
			Color:    stop.Color.Lerp(target, t),
		}
	}
	return &Gradient{
		Kind:  g.Kind,
		Start: g.Start,
		End:   g.End,
		Stops: stops,
	}
}

func cloneGradientStops(stops []GradientStop) []GradientStop {
	if len(stops) == 0 {
		return nil
	}
	clone := make([]GradientStop, len(stops))
	copy(clone, stops)
	return clone
}
