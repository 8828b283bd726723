package theme

import (
	stderrors "errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jaywardell/singleusebutton/pkg/animation"
	"github.com/jaywardell/singleusebutton/pkg/errors"
	"github.com/jaywardell/singleusebutton/pkg/graphics"
)

// fileTheme is the YAML shape of a theme file. All fields are optional.
type fileTheme struct {
	Accent     string  `yaml:"accent,omitempty"`
	Contrast   string  `yaml:"contrast,omitempty"`
	FontSize   float64 `yaml:"font_size,omitempty"`
	Transition string  `yaml:"transition,omitempty"`
	Pulse      string  `yaml:"pulse,omitempty"`
	Curve      string  `yaml:"curve,omitempty"`
}

// LoadOptional reads a theme file if present. A missing file yields the
// default theme; a malformed file yields an error and the default theme,
// so callers can always render.
func LoadOptional(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		e := errors.E("theme.LoadOptional", errors.KindTheme, err)
		errors.Report(e)
		return Default(), e
	}
	return Parse(data)
}

// Parse decodes YAML theme data, filling unspecified fields from the
// default theme.
func Parse(data []byte) (Theme, error) {
	var file fileTheme
	if err := yaml.Unmarshal(data, &file); err != nil {
		e := errors.E("theme.Parse", errors.KindTheme, err)
		errors.Report(e)
		return Default(), e
	}

	t := Theme{FontSize: file.FontSize}

	if file.Accent != "" {
		c, err := ParseHexColor(file.Accent)
		if err != nil {
			e := errors.E("theme.Parse", errors.KindTheme, err)
			errors.Report(e)
			return Default(), e
		}
		t.Accent = c
	}
	if file.Contrast != "" {
		c, err := ParseHexColor(file.Contrast)
		if err != nil {
			e := errors.E("theme.Parse", errors.KindTheme, err)
			errors.Report(e)
			return Default(), e
		}
		t.Contrast = c
	}
	if file.Transition != "" {
		d, err := time.ParseDuration(file.Transition)
		if err != nil {
			e := errors.E("theme.Parse", errors.KindTheme, err)
			errors.Report(e)
			return Default(), e
		}
		t.TransitionDuration = d
	}
	if file.Pulse != "" {
		d, err := time.ParseDuration(file.Pulse)
		if err != nil {
			e := errors.E("theme.Parse", errors.KindTheme, err)
			errors.Report(e)
			return Default(), e
		}
		t.PulseDuration = d
	}
	if file.Curve != "" {
		curve, err := curveByName(file.Curve)
		if err != nil {
			e := errors.E("theme.Parse", errors.KindTheme, err)
			errors.Report(e)
			return Default(), e
		}
		t.Curve = curve
	}

	return t.Resolved(), nil
}

// ParseHexColor parses "#RRGGBB" or "#AARRGGBB" into a Color.
func ParseHexColor(s string) (graphics.Color, error) {
	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 6:
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		return graphics.Color(0xFF000000 | uint32(v)), nil
	case 8:
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		return graphics.Color(uint32(v)), nil
	default:
		return 0, fmt.Errorf("invalid hex color %q: want #RRGGBB or #AARRGGBB", s)
	}
}

func curveByName(name string) (func(float64) float64, error) {
	switch strings.ToLower(name) {
	case "linear":
		return animation.Linear, nil
	case "ease":
		return animation.Ease, nil
	case "ease_in", "ease-in":
		return animation.EaseIn, nil
	case "ease_out", "ease-out":
		return animation.EaseOut, nil
	case "ease_in_out", "ease-in-out":
		return animation.EaseInOut, nil
	default:
		return nil, fmt.Errorf("unknown curve %q", name)
	}
}
