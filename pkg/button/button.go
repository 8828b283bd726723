// Package button implements a control that can be activated exactly once.
//
// On first tap the control invokes its action, latches into a permanent
// fired state, and animates from a gradient-filled pressable look to
// inert accent-colored text. Further taps never re-invoke the action.
package button

import (
	"time"

	"go.uber.org/atomic"

	"github.com/jaywardell/singleusebutton/pkg/animation"
	"github.com/jaywardell/singleusebutton/pkg/host"
	"github.com/jaywardell/singleusebutton/pkg/semantics"
	"github.com/jaywardell/singleusebutton/pkg/text"
	"github.com/jaywardell/singleusebutton/pkg/theme"
)

// Button is a single-use button control. Create one with New; all methods
// must be called from the host's UI event thread, except Fired, which may
// be read from anywhere.
type Button struct {
	cfg   Config
	h     host.Host
	theme theme.Theme

	// fired is the one-way activation latch. CompareAndSwap guarantees
	// the action runs at most once per instance.
	fired atomic.Bool

	nodeID string

	// Width is reserved for the wider title at construction and never
	// changes, so the bounding box cannot resize at the transition.
	reservedTitle string
	reservedWidth float64

	transition *animation.Controller
	pulse      *animation.Controller

	subscribers map[int]func()
	nextSubID   int
	disposed    bool
}

// New creates a control with the default theme.
func New(cfg Config, h host.Host) *Button {
	return NewThemed(cfg, h, theme.Default())
}

// NewThemed creates a control with the given theme.
func NewThemed(cfg Config, h host.Host, th theme.Theme) *Button {
	th = th.Resolved()

	measurer := text.NewFaceMeasurer(h.Metrics().Face())
	wider, width := text.Wider(measurer, cfg.ActionTitle, cfg.FinishedTitle)

	b := &Button{
		cfg:           cfg,
		h:             h,
		theme:         th,
		nodeID:        semantics.NewNodeID(),
		reservedTitle: wider,
		reservedWidth: width,
		transition:    animation.NewController(th.TransitionDuration),
		pulse:         animation.NewController(th.PulseDuration),
		subscribers:   make(map[int]func()),
	}
	b.transition.Curve = th.Curve
	b.pulse.Curve = th.Curve

	b.publishSemantics()
	return b
}

// HandleTap processes one user interaction event.
//
// The first tap latches the control, invokes OnActivate synchronously,
// and starts the transition animation. Every later tap replays a short
// acknowledgment pulse and changes nothing.
func (b *Button) HandleTap() {
	if b.fired.CompareAndSwap(false, true) {
		// The latch is set before the callback runs so that a panicking
		// callback still leaves the control fired.
		defer func() {
			b.publishSemantics()
			b.transition.Forward()
			b.requestFrame()
			b.notify()
		}()
		if b.cfg.OnActivate != nil {
			b.cfg.OnActivate()
		}
		return
	}

	b.pulse.Forward()
	b.requestFrame()
	b.notify()
}

// Fired reports whether the control has been activated.
func (b *Button) Fired() bool {
	return b.fired.Load()
}

// Phase returns the control's current phase.
func (b *Button) Phase() Phase {
	if b.Fired() {
		return PhaseFired
	}
	return PhaseArmed
}

// ReservedWidth returns the layout width held for the wider title. It is
// identical in both phases.
func (b *Button) ReservedWidth() float64 {
	return b.reservedWidth
}

// Config returns a copy of the control's configuration.
func (b *Button) Config() Config {
	return b.cfg
}

// Subscribe registers a callback invoked whenever the control needs a
// re-render (state change or animation tick). Returns a detach function.
func (b *Button) Subscribe(fn func()) func() {
	if fn == nil {
		return func() {}
	}
	id := b.nextSubID
	b.nextSubID++
	b.subscribers[id] = fn
	return func() {
		delete(b.subscribers, id)
	}
}

// Dispose releases the control's animation and subscriber resources.
func (b *Button) Dispose() {
	if b.disposed {
		return
	}
	b.disposed = true
	b.transition.Dispose()
	b.pulse.Dispose()
	b.subscribers = nil
}

func (b *Button) notify() {
	for _, fn := range b.subscribers {
		fn()
	}
}

func (b *Button) requestFrame() {
	if b.disposed {
		return
	}
	b.h.Scheduler().RequestFrame(b.onFrame)
}

func (b *Button) onFrame(now time.Time) {
	if b.disposed {
		return
	}
	b.transition.Tick(now)
	b.pulse.Tick(now)
	b.notify()
	if b.transition.IsRunning() || b.pulse.IsRunning() {
		b.requestFrame()
	}
}

func (b *Button) publishSemantics() {
	fired := b.Fired()
	b.h.Accessibility().Update(semantics.Node{
		ID:    b.nodeID,
		Label: semantics.LabelFor(fired, b.cfg.ActionTitle, b.cfg.FinishedTitle),
		Role:  semantics.RoleFor(fired),
	})
}

// progress is the transition progress: 0 while armed, 1 once the collapse
// animation has finished.
func (b *Button) progress() float64 {
	if !b.Fired() {
		return 0
	}
	if b.transition.IsCompleted() {
		return 1
	}
	return b.transition.Value
}
