// Package text measures string widths for the control's width-reservation
// policy.
package text

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Measurer reports the rendered advance width of a string, in logical
// pixels. Hosts with their own text stack supply their own implementation;
// the control only ever asks for widths.
type Measurer interface {
	Width(s string) float64
}

// FaceMeasurer measures strings against a font face.
type FaceMeasurer struct {
	face font.Face
}

// NewFaceMeasurer creates a measurer for the given face. A nil face falls
// back to the bundled basic face.
func NewFaceMeasurer(face font.Face) *FaceMeasurer {
	if face == nil {
		face = basicfont.Face7x13
	}
	return &FaceMeasurer{face: face}
}

// Width returns the advance width of s in logical pixels.
func (m *FaceMeasurer) Width(s string) float64 {
	return float64(font.MeasureString(m.face, s)) / 64
}

// Wider returns whichever of a and b measures wider, along with its
// width. Ties return a.
func Wider(m Measurer, a, b string) (string, float64) {
	wa := m.Width(a)
	wb := m.Width(b)
	if wb > wa {
		return b, wb
	}
	return a, wa
}
