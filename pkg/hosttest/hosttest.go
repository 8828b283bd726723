// Package hosttest provides a deterministic in-memory host for tests: a
// manual clock, a recording canvas, and an explicitly pumped frame loop.
// It drives the same render path as a real host without any platform
// layer.
package hosttest

import (
	"testing"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/jaywardell/singleusebutton/pkg/animation"
	"github.com/jaywardell/singleusebutton/pkg/graphics"
	"github.com/jaywardell/singleusebutton/pkg/host"
	"github.com/jaywardell/singleusebutton/pkg/icons"
	"github.com/jaywardell/singleusebutton/pkg/semantics"
	"github.com/jaywardell/singleusebutton/pkg/shape"
)

// DefaultBaseUnit is the padding unit the fake metrics report.
const DefaultBaseUnit = 8.0

// ManualClock is an animation.Clock advanced explicitly by tests.
type ManualClock struct {
	now time.Time
}

// Now returns the current fake time.
func (c *ManualClock) Now() time.Time { return c.now }

// Advance moves the clock forward.
func (c *ManualClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// FillOp records one FillShape call.
type FillOp struct {
	Shape  shape.Shape
	Bounds graphics.Rect
	Paint  host.Paint
}

// TextOp records one DrawText call.
type TextOp struct {
	Text   string
	Origin graphics.Offset
	Style  host.TextStyle
}

// IconOp records one DrawIcon call.
type IconOp struct {
	Drawable icons.Drawable
	Bounds   graphics.Rect
	Opacity  float64
}

// RecordingCanvas captures draw calls instead of rendering them.
type RecordingCanvas struct {
	Fills []FillOp
	Texts []TextOp
	Icons []IconOp
}

func (c *RecordingCanvas) FillShape(s shape.Shape, bounds graphics.Rect, paint host.Paint) {
	c.Fills = append(c.Fills, FillOp{Shape: s, Bounds: bounds, Paint: paint})
}

func (c *RecordingCanvas) DrawText(text string, origin graphics.Offset, style host.TextStyle) {
	c.Texts = append(c.Texts, TextOp{Text: text, Origin: origin, Style: style})
}

func (c *RecordingCanvas) DrawIcon(d icons.Drawable, bounds graphics.Rect, opacity float64) {
	c.Icons = append(c.Icons, IconOp{Drawable: d, Bounds: bounds, Opacity: opacity})
}

// Reset discards all recorded operations.
func (c *RecordingCanvas) Reset() {
	c.Fills = nil
	c.Texts = nil
	c.Icons = nil
}

// Host is a deterministic host.Host for tests.
type Host struct {
	Clock    *ManualClock
	Recorder *RecordingCanvas
	BaseUnit float64
	FontFace font.Face
	Registry *icons.Registry

	// Nodes collects every accessibility update, newest last.
	Nodes []semantics.Node

	frameCallbacks []func(now time.Time)
}

// New creates a test host and installs its clock as the animation clock.
// The previous clock is restored via t.Cleanup.
func New(t *testing.T) *Host {
	t.Helper()
	h := &Host{
		Clock:    &ManualClock{now: time.Unix(0, 0)},
		Recorder: &RecordingCanvas{},
		BaseUnit: DefaultBaseUnit,
		FontFace: basicfont.Face7x13,
		Registry: icons.NewRegistry(),
	}
	prev := animation.SetClock(h.Clock)
	t.Cleanup(func() { animation.SetClock(prev) })
	return h
}

// Canvas implements host.Host.
func (h *Host) Canvas() host.Canvas { return h.Recorder }

// Metrics implements host.Host.
func (h *Host) Metrics() host.Metrics { return hostMetrics{h} }

// Scheduler implements host.Host.
func (h *Host) Scheduler() host.FrameScheduler { return hostScheduler{h} }

// Accessibility implements host.Host.
func (h *Host) Accessibility() host.Accessibility { return hostAccessibility{h} }

// Icons implements host.Host.
func (h *Host) Icons() icons.Resolver { return h.Registry }

type hostMetrics struct{ h *Host }

func (m hostMetrics) BasePaddingUnit() float64 { return m.h.BaseUnit }
func (m hostMetrics) Face() font.Face          { return m.h.FontFace }

type hostScheduler struct{ h *Host }

func (s hostScheduler) RequestFrame(fn func(now time.Time)) {
	if fn != nil {
		s.h.frameCallbacks = append(s.h.frameCallbacks, fn)
	}
}

type hostAccessibility struct{ h *Host }

func (a hostAccessibility) Update(node semantics.Node) {
	a.h.Nodes = append(a.h.Nodes, node)
}

// PumpFrame advances the clock by dt and runs every pending frame
// callback once with the new timestamp. Callbacks scheduled during the
// pump wait for the next one, matching per-frame batching.
func (h *Host) PumpFrame(dt time.Duration) {
	h.Clock.Advance(dt)
	pending := h.frameCallbacks
	h.frameCallbacks = nil
	for _, fn := range pending {
		fn(h.Clock.Now())
	}
}

// PumpUntilIdle pumps frames until no callbacks remain, with a cap to
// keep a runaway animation from hanging the test.
func (h *Host) PumpUntilIdle(t *testing.T, dt time.Duration) {
	t.Helper()
	const maxFrames = 1000
	for i := 0; len(h.frameCallbacks) > 0; i++ {
		if i >= maxFrames {
			t.Fatal("PumpUntilIdle: animation never settled")
		}
		h.PumpFrame(dt)
	}
}

// LastNode returns the most recent accessibility node.
func (h *Host) LastNode(t *testing.T) semantics.Node {
	t.Helper()
	if len(h.Nodes) == 0 {
		t.Fatal("no accessibility nodes were published")
	}
	return h.Nodes[len(h.Nodes)-1]
}
