// Package icons defines the icon-resolution contract the control consumes.
//
// A Ref is an opaque identifier; the host's resolver maps it to something
// drawable. Unresolved refs degrade to "no icon" rather than failing, so
// the control never branches on resolution errors.
package icons

import "github.com/jaywardell/singleusebutton/pkg/graphics"

// Ref is an opaque icon identifier. The empty Ref means no icon.
type Ref string

// None is the absent icon.
const None Ref = ""

// IsNone reports whether the ref names no icon.
func (r Ref) IsNone() bool {
	return r == None
}

// Drawable is anything the host canvas can paint into a rectangle.
type Drawable interface {
	// NaturalSize returns the drawable's preferred size in logical pixels.
	NaturalSize() graphics.Size
}

// Resolver maps icon refs to drawables. A miss returns (nil, false);
// resolvers never return errors.
type Resolver interface {
	Resolve(ref Ref) (Drawable, bool)
}

// Registry is an in-memory resolver backed by a map.
type Registry struct {
	drawables map[Ref]Drawable
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{drawables: make(map[Ref]Drawable)}
}

// Register associates a ref with a drawable, replacing any previous entry.
func (r *Registry) Register(ref Ref, d Drawable) {
	if ref.IsNone() || d == nil {
		return
	}
	r.drawables[ref] = d
}

// Resolve returns the drawable for ref, or (nil, false) when the ref is
// empty or unknown.
func (r *Registry) Resolve(ref Ref) (Drawable, bool) {
	if ref.IsNone() {
		return nil, false
	}
	d, ok := r.drawables[ref]
	return d, ok
}
