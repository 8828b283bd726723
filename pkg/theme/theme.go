// Package theme holds the tunable presentation details of the control:
// accent colors, font size, and transition timing. Everything here has a
// sensible default; a host can override any field or load overrides from
// an optional YAML file.
package theme

import (
	"time"

	"github.com/jaywardell/singleusebutton/pkg/animation"
	"github.com/jaywardell/singleusebutton/pkg/graphics"
)

// Theme defines the control's visual tunables.
type Theme struct {
	// Accent is the interactive accent color. The armed gradient fades
	// from Accent to Contrast; the fired state collapses to solid Accent.
	Accent graphics.Color
	// Contrast is the background-contrast end of the armed gradient.
	Contrast graphics.Color
	// FontSize is the label font size.
	FontSize float64
	// TransitionDuration is the length of the armed-to-fired animation.
	TransitionDuration time.Duration
	// PulseDuration is the length of the post-fire acknowledgment pulse.
	PulseDuration time.Duration
	// Curve eases the transition. Nil means EaseInOut.
	Curve func(float64) float64
}

// Default returns the stock theme.
func Default() Theme {
	return Theme{
		Accent:             graphics.RGB(0x3B, 0x82, 0xF6),
		Contrast:           graphics.RGB(0xF8, 0xFA, 0xFC),
		FontSize:           16,
		TransitionDuration: 200 * time.Millisecond,
		PulseDuration:      120 * time.Millisecond,
		Curve:              animation.EaseInOut,
	}
}

// Resolved returns a copy of the theme with zero-value fields replaced by
// defaults, so a partially-specified theme is always usable.
func (t Theme) Resolved() Theme {
	def := Default()
	if t.Accent == 0 {
		t.Accent = def.Accent
	}
	if t.Contrast == 0 {
		t.Contrast = def.Contrast
	}
	if t.FontSize == 0 {
		t.FontSize = def.FontSize
	}
	if t.TransitionDuration == 0 {
		t.TransitionDuration = def.TransitionDuration
	}
	if t.PulseDuration == 0 {
		t.PulseDuration = def.PulseDuration
	}
	if t.Curve == nil {
		t.Curve = def.Curve
	}
	return t
}
