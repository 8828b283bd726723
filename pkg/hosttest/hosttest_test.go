package hosttest

import (
	"testing"
	"time"

	"github.com/jaywardell/singleusebutton/pkg/animation"
	"github.com/jaywardell/singleusebutton/pkg/graphics"
	"github.com/jaywardell/singleusebutton/pkg/host"
	"github.com/jaywardell/singleusebutton/pkg/shape"
)

func TestManualClockDrivesAnimationClock(t *testing.T) {
	h := New(t)

	start := animation.Now()
	h.Clock.Advance(time.Second)
	if got := animation.Now().Sub(start); got != time.Second {
		t.Errorf("animation clock advanced %v, want 1s", got)
	}
}

func TestPumpFrameBatchesPerFrame(t *testing.T) {
	h := New(t)

	frames := 0
	var fn func(now time.Time)
	fn = func(now time.Time) {
		frames++
		if frames < 3 {
			h.Scheduler().RequestFrame(fn)
		}
	}
	h.Scheduler().RequestFrame(fn)

	h.PumpFrame(time.Millisecond)
	if frames != 1 {
		t.Fatalf("one pump ran %d frames, want 1 (re-requests wait)", frames)
	}

	h.PumpUntilIdle(t, time.Millisecond)
	if frames != 3 {
		t.Errorf("ran %d frames total, want 3", frames)
	}
}

func TestRecordingCanvasReset(t *testing.T) {
	h := New(t)
	h.Recorder.DrawText("x", graphics.Offset{}, host.TextStyle{Opacity: 1})
	h.Recorder.FillShape(shape.Capsule(), graphics.Rect{}, host.Paint{})

	if len(h.Recorder.Texts) != 1 || len(h.Recorder.Fills) != 1 {
		t.Fatal("recorder should capture draw calls")
	}

	h.Recorder.Reset()
	if len(h.Recorder.Texts) != 0 || len(h.Recorder.Fills) != 0 || len(h.Recorder.Icons) != 0 {
		t.Error("Reset should discard all recorded operations")
	}
}
