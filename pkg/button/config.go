package button

import (
	"github.com/jaywardell/singleusebutton/pkg/icons"
	"github.com/jaywardell/singleusebutton/pkg/shape"
)

// Config describes a single-use button. It is immutable for the lifetime
// of one control instance: changing a title, icon, or shape means
// constructing a new control.
//
// Example using struct literal:
//
//	button.Config{
//	    ActionTitle:   "Bookmark",
//	    FinishedTitle: "Bookmarked",
//	    OnActivate:    saveBookmark,
//	}
//
// Example using the ConfigOf helper:
//
//	button.ConfigOf("Bookmark", "Bookmarked", saveBookmark).
//	    WithActionIcon("bookmark").
//	    WithFinishedIcon("bookmark.fill").
//	    WithBorderShape(shape.Capsule())
type Config struct {
	// ActionTitle is the label text before activation.
	ActionTitle string
	// ActionIcon is the optional icon before activation.
	ActionIcon icons.Ref
	// FinishedTitle is the label text after activation.
	FinishedTitle string
	// FinishedIcon is the optional icon after activation.
	FinishedIcon icons.Ref
	// BorderShape is the enclosing shape. The zero value is the standard
	// rounded outline; a capsule switches the padding rules.
	BorderShape shape.Shape
	// OnActivate is invoked exactly once, on first activation.
	OnActivate func()
}

// ConfigOf creates a config with the given titles and activation handler.
func ConfigOf(actionTitle, finishedTitle string, onActivate func()) Config {
	return Config{
		ActionTitle:   actionTitle,
		FinishedTitle: finishedTitle,
		OnActivate:    onActivate,
	}
}

// WithActionIcon returns a copy of the config with the pre-activation icon.
func (c Config) WithActionIcon(ref icons.Ref) Config {
	c.ActionIcon = ref
	return c
}

// WithFinishedIcon returns a copy of the config with the post-activation icon.
func (c Config) WithFinishedIcon(ref icons.Ref) Config {
	c.FinishedIcon = ref
	return c
}

// WithBorderShape returns a copy of the config with the enclosing shape.
func (c Config) WithBorderShape(s shape.Shape) Config {
	c.BorderShape = s
	return c
}
