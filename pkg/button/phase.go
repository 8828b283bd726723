package button

import "fmt"

// Phase is the control's activation state. There are exactly two phases
// and one legal transition: Armed to Fired. The transition is a one-way
// latch; nothing sets a fired control back to armed.
type Phase int

const (
	// PhaseArmed is the initial phase: the control behaves as a
	// pressable button.
	PhaseArmed Phase = iota
	// PhaseFired is the terminal phase: the control behaves as inert
	// labeled text.
	PhaseFired
)

// String returns a human-readable representation of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseArmed:
		return "armed"
	case PhaseFired:
		return "fired"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}
