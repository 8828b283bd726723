package theme

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jaywardell/singleusebutton/pkg/errors"
	"github.com/jaywardell/singleusebutton/pkg/graphics"
)

type discardHandler struct{}

func (discardHandler) HandleError(*errors.Error) {}

func silenceErrors(t *testing.T) {
	t.Helper()
	errors.SetHandler(discardHandler{})
	t.Cleanup(func() { errors.SetHandler(nil) })
}

func TestDefaultIsUsable(t *testing.T) {
	d := Default()
	if d.Accent == 0 || d.Contrast == 0 {
		t.Error("default colors must be set")
	}
	if d.TransitionDuration <= 0 || d.PulseDuration <= 0 {
		t.Error("default durations must be positive")
	}
	if d.Curve == nil {
		t.Error("default curve must be set")
	}
}

func TestResolvedFillsZeroFields(t *testing.T) {
	partial := Theme{Accent: graphics.RGB(1, 2, 3)}
	r := partial.Resolved()
	if r.Accent != graphics.RGB(1, 2, 3) {
		t.Error("explicit accent must survive resolution")
	}
	if r.Contrast != Default().Contrast || r.FontSize != Default().FontSize {
		t.Error("zero fields should resolve to defaults")
	}
	if r.Curve == nil {
		t.Error("nil curve should resolve to default")
	}
}

func TestParse(t *testing.T) {
	data := []byte(`
accent: "#FF0000"
contrast: "#80FFFFFF"
font_size: 18
transition: 300ms
pulse: 90ms
curve: ease-out
`)
	got, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got.Accent != graphics.RGB(0xFF, 0, 0) {
		t.Errorf("accent = %#x", uint32(got.Accent))
	}
	if got.Contrast != graphics.RGBA(0xFF, 0xFF, 0xFF, 0x80) {
		t.Errorf("contrast = %#x", uint32(got.Contrast))
	}
	if got.FontSize != 18 {
		t.Errorf("font size = %v, want 18", got.FontSize)
	}
	if got.TransitionDuration != 300*time.Millisecond {
		t.Errorf("transition = %v", got.TransitionDuration)
	}
	if got.PulseDuration != 90*time.Millisecond {
		t.Errorf("pulse = %v", got.PulseDuration)
	}
	if got.Curve == nil {
		t.Error("curve should be set")
	}
}

func TestParseErrors(t *testing.T) {
	silenceErrors(t)
	cases := map[string]string{
		"bad yaml":     ":\n\t-",
		"bad color":    `accent: "red"`,
		"bad duration": `transition: fast`,
		"bad curve":    `curve: bouncy`,
	}
	for name, data := range cases {
		if _, err := Parse([]byte(data)); err == nil {
			t.Errorf("%s: expected parse error", name)
		}
	}
}

func TestLoadOptionalMissingFile(t *testing.T) {
	got, err := LoadOptional(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error, got %v", err)
	}
	def := Default()
	if got.Accent != def.Accent || got.Contrast != def.Contrast || got.TransitionDuration != def.TransitionDuration {
		t.Error("missing file should yield defaults")
	}
}

func TestLoadOptionalReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "button.yaml")
	if err := os.WriteFile(path, []byte(`accent: "#00FF00"`), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := LoadOptional(path)
	if err != nil {
		t.Fatalf("LoadOptional failed: %v", err)
	}
	if got.Accent != graphics.RGB(0, 0xFF, 0) {
		t.Errorf("accent = %#x, want green", uint32(got.Accent))
	}
}

func TestParseHexColorRejectsShortForms(t *testing.T) {
	for _, s := range []string{"", "#FFF", "#GGGGGG", "#12345"} {
		if _, err := ParseHexColor(s); err == nil {
			t.Errorf("ParseHexColor(%q) should fail", s)
		}
	}
}
