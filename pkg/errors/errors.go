// Package errors provides structured error reporting for the control's
// supporting infrastructure. The control itself cannot fail; these errors
// come from theme loading and host wiring.
package errors

import (
	"fmt"
	"time"
)

// Kind identifies the category of an error.
type Kind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown Kind = iota
	// KindTheme indicates a theme file load or parse failure.
	KindTheme
	// KindIcon indicates an icon service wiring failure.
	KindIcon
	// KindInit indicates an initialization error.
	KindInit
)

func (k Kind) String() string {
	switch k {
	case KindTheme:
		return "theme"
	case KindIcon:
		return "icon"
	case KindInit:
		return "init"
	default:
		return "unknown"
	}
}

// Error represents a structured error with an operation and category.
type Error struct {
	// Op is the operation that failed (e.g., "theme.Load").
	Op string
	// Kind categorizes the error.
	Kind Kind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// E constructs an Error for the given operation.
func E(op string, kind Kind, err error) *Error {
	return &Error{Op: op, Kind: kind, Err: err, Timestamp: time.Now()}
}
