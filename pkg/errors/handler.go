package errors

import (
	"fmt"
	"os"
	"sync"
	"time"
)

// Handler receives reported errors.
type Handler interface {
	HandleError(err *Error)
}

var (
	handler   Handler = &LogHandler{}
	handlerMu sync.RWMutex
)

// SetHandler configures the global error handler. Pass nil to restore the
// default LogHandler.
func SetHandler(h Handler) {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	if h == nil {
		handler = &LogHandler{}
	} else {
		handler = h
	}
}

// Report sends an error to the global handler. If err.Timestamp is zero,
// it is set to the current time.
func Report(err *Error) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	handlerMu.RLock()
	h := handler
	handlerMu.RUnlock()
	if h != nil {
		h.HandleError(err)
	}
}

// LogHandler is a Handler that logs errors to stderr.
type LogHandler struct {
	// Verbose enables detailed output including the error kind.
	Verbose bool
}

// HandleError logs an Error to stderr.
func (h *LogHandler) HandleError(err *Error) {
	if err == nil {
		return
	}
	if h.Verbose {
		fmt.Fprintf(os.Stderr, "[singleusebutton error] %s [%s]: %v\n", err.Op, err.Kind, err.Err)
	} else {
		fmt.Fprintf(os.Stderr, "[singleusebutton error] %s: %v\n", err.Op, err.Err)
	}
}
