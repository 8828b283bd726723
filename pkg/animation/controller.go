package animation

import (
	"fmt"
	"time"
)

// Status represents the current state of an animation.
type Status int

const (
	// StatusDismissed means the animation is stopped at 0.
	StatusDismissed Status = iota
	// StatusRunning means the animation is progressing toward 1.
	StatusRunning
	// StatusCompleted means the animation is stopped at 1.
	StatusCompleted
)

// String returns a human-readable representation of the status.
func (s Status) String() string {
	switch s {
	case StatusDismissed:
		return "dismissed"
	case StatusRunning:
		return "running"
	case StatusCompleted:
		return "completed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Controller drives a value from 0 to 1 over a duration, shaped by an
// easing curve.
//
// The controller owns no timer. Call Forward to begin, then Tick from the
// host's frame callback until IsCompleted reports true. Use [Tween] to map
// the 0-1 value onto colors, insets, or opacities.
type Controller struct {
	// Value is the current eased progress, in [0, 1].
	Value float64

	// Duration is the length of the animation.
	Duration time.Duration

	// Curve transforms linear progress. Nil means linear.
	Curve func(float64) float64

	status          Status
	startTime       time.Time
	listeners       map[int]func()
	statusListeners map[int]func(Status)
	nextListenerID  int
}

// NewController creates a controller with the given duration.
func NewController(duration time.Duration) *Controller {
	return &Controller{
		Duration:        duration,
		status:          StatusDismissed,
		listeners:       make(map[int]func()),
		statusListeners: make(map[int]func(Status)),
	}
}

// Forward starts (or restarts) the animation from 0.
func (c *Controller) Forward() {
	c.Value = 0
	c.startTime = Now()
	c.setStatus(StatusRunning)
	if c.Duration <= 0 {
		c.finish()
	}
}

// Tick advances the animation to the given time. It is a no-op unless the
// animation is running.
func (c *Controller) Tick(now time.Time) {
	if c.status != StatusRunning {
		return
	}
	if c.Duration <= 0 {
		c.finish()
		return
	}
	progress := float64(now.Sub(c.startTime)) / float64(c.Duration)
	if progress >= 1 {
		c.finish()
		return
	}
	if progress < 0 {
		progress = 0
	}
	eased := progress
	if c.Curve != nil {
		eased = c.Curve(progress)
	}
	c.Value = eased
	c.notifyListeners()
}

func (c *Controller) finish() {
	c.Value = 1
	c.notifyListeners()
	c.setStatus(StatusCompleted)
}

// Complete jumps the animation to its end state immediately.
func (c *Controller) Complete() {
	c.finish()
}

// Status returns the current animation status.
func (c *Controller) Status() Status {
	return c.status
}

// IsRunning returns true while the animation is in flight.
func (c *Controller) IsRunning() bool {
	return c.status == StatusRunning
}

// IsCompleted returns true once the animation has reached 1.
func (c *Controller) IsCompleted() bool {
	return c.status == StatusCompleted
}

// AddListener adds a callback that fires whenever the value changes.
// Returns a detach function.
func (c *Controller) AddListener(fn func()) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners[id] = fn
	return func() {
		delete(c.listeners, id)
	}
}

// AddStatusListener adds a callback that fires whenever the status
// changes. Returns a detach function.
func (c *Controller) AddStatusListener(fn func(Status)) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.statusListeners[id] = fn
	return func() {
		delete(c.statusListeners, id)
	}
}

func (c *Controller) setStatus(status Status) {
	if c.status == status {
		return
	}
	c.status = status
	for _, listener := range c.statusListeners {
		listener(status)
	}
}

func (c *Controller) notifyListeners() {
	for _, listener := range c.listeners {
		listener()
	}
}

// Dispose releases listener references. The controller must not be used
// afterward.
func (c *Controller) Dispose() {
	c.listeners = nil
	c.statusListeners = nil
}
