package shape

import (
	"testing"

	"github.com/jaywardell/singleusebutton/pkg/graphics"
)

func TestZeroValueIsRoundedRect(t *testing.T) {
	var s Shape
	if s.Kind != KindRoundedRect {
		t.Fatalf("zero shape kind = %v, want rounded_rect", s.Kind)
	}
	if s.IsCapsule() {
		t.Error("zero shape must not read as capsule")
	}
	if s.Radius() != defaultCornerRadius {
		t.Errorf("zero shape radius = %v, want default", s.Radius())
	}
}

func TestCapsulePredicate(t *testing.T) {
	if !Capsule().IsCapsule() {
		t.Error("Capsule() should read as capsule")
	}
	if RoundedRect(4).IsCapsule() {
		t.Error("rounded rect must not read as capsule")
	}
	if Path(nil).IsCapsule() {
		t.Error("custom path must not read as capsule")
	}
}

func TestRoundedRectRadius(t *testing.T) {
	if r := RoundedRect(12).Radius(); r != 12 {
		t.Errorf("radius = %v, want 12", r)
	}
	if r := Capsule().Radius(); r != 0 {
		t.Errorf("capsule radius = %v, want 0", r)
	}
}

func TestPathCopiesPoints(t *testing.T) {
	pts := []graphics.Offset{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0.5, Y: 1}}
	s := Path(pts)
	pts[0].X = 99
	if s.Points[0].X != 0 {
		t.Error("Path must copy its input points")
	}
	if s.Kind.String() != "path" {
		t.Errorf("kind string = %q, want \"path\"", s.Kind.String())
	}
}
