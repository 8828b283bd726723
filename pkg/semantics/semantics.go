// Package semantics describes what the control exposes to the host's
// accessibility tree.
package semantics

import (
	"fmt"

	"github.com/google/uuid"
)

// Role tells assistive technology how to announce a node.
type Role int

const (
	// RoleText is inert labeled text.
	RoleText Role = iota
	// RoleButton is a pressable control.
	RoleButton
)

// String returns a human-readable representation of the role.
func (r Role) String() string {
	switch r {
	case RoleText:
		return "text"
	case RoleButton:
		return "button"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// Node is one entry in the host accessibility tree. The ID is stable for
// the lifetime of a control instance so hosts can update in place.
type Node struct {
	ID    string
	Label string
	Role  Role
}

// NewNodeID allocates a stable accessibility node identifier.
func NewNodeID() string {
	return uuid.NewString()
}

// LabelFor computes the accessibility label for the control.
//
// Before activation the visual may be ambiguous, so the label carries an
// explicit role hint: "{actionTitle} button". After activation the control
// no longer behaves like a button and the finished title stands alone.
func LabelFor(fired bool, actionTitle, finishedTitle string) string {
	if fired {
		return finishedTitle
	}
	return actionTitle + " button"
}

// RoleFor returns the role matching the control's current behavior.
func RoleFor(fired bool) Role {
	if fired {
		return RoleText
	}
	return RoleButton
}
