package button_test

import (
	"testing"
	"time"

	"github.com/jaywardell/singleusebutton/pkg/button"
	"github.com/jaywardell/singleusebutton/pkg/graphics"
	"github.com/jaywardell/singleusebutton/pkg/hosttest"
	"github.com/jaywardell/singleusebutton/pkg/layout"
	"github.com/jaywardell/singleusebutton/pkg/shape"
)

type fakeIcon struct {
	name string
}

func (f fakeIcon) NaturalSize() graphics.Size {
	return graphics.Size{Width: 16, Height: 16}
}

func TestPaddingForPolicy(t *testing.T) {
	base := 10.0

	if got := button.PaddingFor(shape.Capsule(), base); got != layout.EdgeInsetsOnly(0, 0, 30, 0) {
		t.Errorf("capsule padding = %+v, want trailing 3x base only", got)
	}
	if got := button.PaddingFor(shape.Shape{}, base); got != layout.EdgeInsetsAll(base) {
		t.Errorf("default padding = %+v, want base on every side", got)
	}
	if got := button.PaddingFor(shape.RoundedRect(12), base); got != layout.EdgeInsetsAll(base) {
		t.Errorf("rounded rect padding = %+v, want base on every side", got)
	}
	if got := button.PaddingFor(shape.Path(nil), base); got != layout.EdgeInsetsAll(base) {
		t.Errorf("custom path padding = %+v, want base on every side", got)
	}
}

func TestRenderDrawsPlaceholderUnderTitle(t *testing.T) {
	h := hosttest.New(t)
	b := button.New(button.ConfigOf("Go", "All finished here", func() {}), h)

	b.Render(graphics.RectFromLTWH(0, 0, 240, 40))

	texts := h.Recorder.Texts
	if len(texts) != 2 {
		t.Fatalf("drew %d text ops, want 2 (placeholder + title)", len(texts))
	}
	if texts[0].Text != "All finished here" || texts[0].Style.Opacity != 0 {
		t.Errorf("first text op should be the invisible wider title, got %q at opacity %v",
			texts[0].Text, texts[0].Style.Opacity)
	}
	if texts[1].Text != "Go" || texts[1].Style.Opacity != 1 {
		t.Errorf("second text op should be the visible title, got %q at opacity %v",
			texts[1].Text, texts[1].Style.Opacity)
	}
	if texts[0].Origin != texts[1].Origin {
		t.Error("title must overlay the placeholder at the same origin")
	}
}

func TestRenderBackgroundFillLifecycle(t *testing.T) {
	h := hosttest.New(t)
	b := button.New(button.ConfigOf("Go", "Gone", func() {}), h)
	bounds := graphics.RectFromLTWH(0, 0, 200, 40)

	b.Render(bounds)
	if len(h.Recorder.Fills) != 1 {
		t.Fatalf("armed render drew %d fills, want 1", len(h.Recorder.Fills))
	}
	if !h.Recorder.Fills[0].Paint.IsGradient() {
		t.Error("armed background fill should be a gradient")
	}

	b.HandleTap()
	h.PumpUntilIdle(t, 16*time.Millisecond)
	h.Recorder.Reset()

	b.Render(bounds)
	if len(h.Recorder.Fills) != 0 {
		t.Errorf("fired render drew %d fills, want 0", len(h.Recorder.Fills))
	}
	if len(h.Recorder.Texts) != 2 {
		t.Errorf("fired render drew %d text ops, want placeholder + title", len(h.Recorder.Texts))
	}
}

func TestRenderIconCrossfade(t *testing.T) {
	h := hosttest.New(t)
	h.Registry.Register("bookmark", fakeIcon{name: "bookmark"})
	h.Registry.Register("bookmark.fill", fakeIcon{name: "bookmark.fill"})

	b := button.New(
		button.ConfigOf("Bookmark", "Bookmarked", func() {}).
			WithActionIcon("bookmark").
			WithFinishedIcon("bookmark.fill"),
		h)
	bounds := graphics.RectFromLTWH(0, 0, 240, 40)

	b.Render(bounds)
	if got := len(h.Recorder.Icons); got != 1 {
		t.Fatalf("armed render drew %d icons, want 1", got)
	}
	if h.Recorder.Icons[0].Opacity != 1 {
		t.Error("armed icon should be fully opaque")
	}

	b.HandleTap()
	h.PumpFrame(100 * time.Millisecond)
	h.Recorder.Reset()

	b.Render(bounds)
	iconOps := h.Recorder.Icons
	if len(iconOps) != 2 {
		t.Fatalf("mid-transition render drew %d icons, want crossfading pair", len(iconOps))
	}
	total := iconOps[0].Opacity + iconOps[1].Opacity
	if total < 0.99 || total > 1.01 {
		t.Errorf("crossfade opacities sum to %v, want ~1", total)
	}

	h.PumpUntilIdle(t, 16*time.Millisecond)
	h.Recorder.Reset()
	b.Render(bounds)
	if got := len(h.Recorder.Icons); got != 1 {
		t.Fatalf("settled render drew %d icons, want 1", got)
	}
	if h.Recorder.Icons[0].Drawable.(fakeIcon).name != "bookmark.fill" {
		t.Error("settled render should draw the finished icon")
	}
}

func TestIconAbsenceKeepsLayoutStable(t *testing.T) {
	h := hosttest.New(t)
	h.Registry.Register("bookmark", fakeIcon{name: "bookmark"})

	withIcon := button.New(
		button.ConfigOf("Bookmark", "Bookmarked", func() {}).WithActionIcon("bookmark"), h)
	without := button.New(button.ConfigOf("Bookmark", "Bookmarked", func() {}), h)

	if withIcon.ReservedWidth() != without.ReservedWidth() {
		t.Error("width reservation must be measured against text only")
	}

	without.HandleTap()
	h.PumpUntilIdle(t, 16*time.Millisecond)
	if spec := without.RenderSpec(); spec.ReservedWidth != without.ReservedWidth() {
		t.Error("icon-free control must keep its reserved width after firing")
	}
}
