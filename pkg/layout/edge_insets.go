// Package layout provides the spacing primitives shared by the control
// and its host.
package layout

// EdgeInsets describes padding on each side of a box, in logical pixels.
type EdgeInsets struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// EdgeInsetsAll creates insets with the same value on every side.
func EdgeInsetsAll(value float64) EdgeInsets {
	return EdgeInsets{Left: value, Top: value, Right: value, Bottom: value}
}

// EdgeInsetsSymmetric creates insets with horizontal and vertical values.
func EdgeInsetsSymmetric(horizontal, vertical float64) EdgeInsets {
	return EdgeInsets{Left: horizontal, Top: vertical, Right: horizontal, Bottom: vertical}
}

// EdgeInsetsOnly creates insets with individual side values.
func EdgeInsetsOnly(left, top, right, bottom float64) EdgeInsets {
	return EdgeInsets{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Horizontal returns the sum of the left and right insets.
func (e EdgeInsets) Horizontal() float64 {
	return e.Left + e.Right
}

// Vertical returns the sum of the top and bottom insets.
func (e EdgeInsets) Vertical() float64 {
	return e.Top + e.Bottom
}

// Lerp linearly interpolates between e and other at progress t.
func (e EdgeInsets) Lerp(other EdgeInsets, t float64) EdgeInsets {
	lerp := func(a, b float64) float64 { return a + (b-a)*t }
	return EdgeInsets{
		Left:   lerp(e.Left, other.Left),
		Top:    lerp(e.Top, other.Top),
		Right:  lerp(e.Right, other.Right),
		Bottom: lerp(e.Bottom, other.Bottom),
	}
}
