package button

import (
	"github.com/jaywardell/singleusebutton/pkg/graphics"
	"github.com/jaywardell/singleusebutton/pkg/host"
	"github.com/jaywardell/singleusebutton/pkg/icons"
	"github.com/jaywardell/singleusebutton/pkg/layout"
	"github.com/jaywardell/singleusebutton/pkg/semantics"
	"github.com/jaywardell/singleusebutton/pkg/shape"
)

// RenderSpec is the computed visual description of the control: what to
// show, in which colors, inside which shape, with how much padding. It is
// a pure function of the configuration, the phase, and the transition
// progress; it carries no behavior.
type RenderSpec struct {
	// Title is the currently visible label text.
	Title string
	// PlaceholderTitle is the wider of the two titles. It is drawn at
	// zero opacity underneath the visible title so the reserved layout
	// width never changes across the transition.
	PlaceholderTitle string
	// ReservedWidth is the layout width held for PlaceholderTitle.
	ReservedWidth float64

	// Icon is the incoming icon drawable; nil when absent or unresolved.
	Icon icons.Drawable
	// OutgoingIcon is the icon fading out during the transition.
	OutgoingIcon icons.Drawable
	// IconCrossfade is the crossfade progress: 0 shows only OutgoingIcon,
	// 1 shows only Icon.
	IconCrossfade float64

	// Foreground paints the label and icon.
	Foreground host.Paint
	// Background paints the border shape's interior. Transparent once
	// the control has fired.
	Background host.Paint
	// ShowsBorder reports whether the enclosing shape is drawn.
	ShowsBorder bool

	// Padding places the content within the border shape.
	Padding layout.EdgeInsets

	// AccessibilityLabel is what assistive technology announces.
	AccessibilityLabel string
	// Role is the semantic role matching the control's behavior.
	Role semantics.Role

	// PulseProgress is the acknowledgment pulse for taps on an already
	// fired control; 0 when no pulse is running.
	PulseProgress float64
}

// capsuleTrailingFactor scales the base unit on the trailing edge of
// capsule shapes, which read as cramped under the uniform formula.
const capsuleTrailingFactor = 3

// PaddingFor computes the content padding for a border shape. The default
// formula is one base unit on every side; capsules collapse the leading
// and vertical padding and triple the trailing edge.
func PaddingFor(s shape.Shape, baseUnit float64) layout.EdgeInsets {
	if s.IsCapsule() {
		return layout.EdgeInsetsOnly(0, 0, baseUnit*capsuleTrailingFactor, 0)
	}
	return layout.EdgeInsetsAll(baseUnit)
}

// RenderSpec computes the control's current visual description.
func (b *Button) RenderSpec() RenderSpec {
	fired := b.Fired()
	p := b.progress()
	th := b.theme

	spec := RenderSpec{
		PlaceholderTitle:   b.reservedTitle,
		ReservedWidth:      b.reservedWidth,
		Padding:            PaddingFor(b.cfg.BorderShape, b.h.Metrics().BasePaddingUnit()),
		AccessibilityLabel: semantics.LabelFor(fired, b.cfg.ActionTitle, b.cfg.FinishedTitle),
		Role:               semantics.RoleFor(fired),
	}

	if fired {
		spec.Title = b.cfg.FinishedTitle
	} else {
		spec.Title = b.cfg.ActionTitle
	}

	armedGradient := graphics.TwoTone(th.Accent, th.Contrast)
	switch {
	case p >= 1:
		spec.Foreground = host.Solid(th.Accent)
		spec.Background = host.Solid(graphics.ColorTransparent)
		spec.ShowsBorder = false
	case p <= 0:
		spec.Foreground = host.WithGradient(armedGradient)
		spec.Background = host.WithGradient(armedGradient)
		spec.ShowsBorder = true
	default:
		// Mid-transition: the foreground gradient collapses toward the
		// solid accent while the background fades out entirely.
		spec.Foreground = host.WithGradient(armedGradient.Collapse(th.Accent, p))
		spec.Background = host.WithGradient(armedGradient.Collapse(th.Accent.WithAlpha(0), p))
		spec.ShowsBorder = true
	}

	outgoing, incoming := b.cfg.ActionIcon, b.cfg.FinishedIcon
	if !fired {
		// Before activation only the action icon shows; crossfade is
		// pinned to the incoming side with the action icon incoming.
		spec.Icon = b.resolveIcon(outgoing)
		spec.IconCrossfade = 1
	} else {
		spec.Icon = b.resolveIcon(incoming)
		spec.OutgoingIcon = b.resolveIcon(outgoing)
		spec.IconCrossfade = p
	}

	if b.pulse.IsRunning() {
		spec.PulseProgress = b.pulse.Value
	}

	return spec
}

func (b *Button) resolveIcon(ref icons.Ref) icons.Drawable {
	if ref.IsNone() {
		return nil
	}
	d, ok := b.h.Icons().Resolve(ref)
	if !ok {
		return nil
	}
	return d
}

// Render draws the current RenderSpec onto the host canvas within bounds.
// Hosts that consume RenderSpec directly never need to call this; it
// exists for hosts that want the stock draw ordering.
func (b *Button) Render(bounds graphics.Rect) {
	spec := b.RenderSpec()
	canvas := b.h.Canvas()

	if spec.ShowsBorder && !spec.Background.IsTransparent() {
		canvas.FillShape(b.cfg.BorderShape, bounds, spec.Background)
	}

	origin := graphics.Offset{
		X: bounds.Left + spec.Padding.Left,
		Y: bounds.Top + spec.Padding.Top,
	}
	style := host.TextStyle{
		Paint:    spec.Foreground,
		FontSize: b.theme.FontSize,
	}

	// The placeholder occupies the reserved width at zero opacity; the
	// visible title is overlaid on top of it.
	placeholder := style
	placeholder.Opacity = 0
	canvas.DrawText(spec.PlaceholderTitle, origin, placeholder)

	visible := style
	visible.Opacity = 1
	canvas.DrawText(spec.Title, origin, visible)

	iconBounds := iconRect(bounds, spec.Padding, spec.ReservedWidth)
	if spec.OutgoingIcon != nil && spec.IconCrossfade < 1 {
		canvas.DrawIcon(spec.OutgoingIcon, iconBounds, 1-spec.IconCrossfade)
	}
	if spec.Icon != nil && spec.IconCrossfade > 0 {
		canvas.DrawIcon(spec.Icon, iconBounds, spec.IconCrossfade)
	}
}

// iconRect places the icon after the reserved text block. Icon presence
// never affects the reserved width, so a missing icon simply leaves the
// slot empty.
func iconRect(bounds graphics.Rect, padding layout.EdgeInsets, reservedWidth float64) graphics.Rect {
	side := bounds.Height() - padding.Vertical()
	if side < 0 {
		side = 0
	}
	return graphics.RectFromLTWH(
		bounds.Left+padding.Left+reservedWidth,
		bounds.Top+padding.Top,
		side,
		side,
	)
}
