package errors

import (
	"fmt"
	"os"
)

// LogHandler is an ErrorHandler that logs errors to stderr.
type LogHandler struct {
	// Verbose enables detailed output including stack traces.
	Verbose bool
}

// HandleError logs a BindError to stderr.
func (h *LogHandler) HandleError(err *BindError) {
	if err == nil {
		return
	}
	if h.Verbose {
		fmt.Fprintf(os.Stderr, "[anchor error] %s [%s]", err.Op, err.Kind)
		if err.Widget != "" {
			fmt.Fprintf(os.Stderr, " widget=%s", err.Widget)
		}
		if err.Attr != "" {
			fmt.Fprintf(os.Stderr, " attr=%s", err.Attr)
		}
		fmt.Fprintf(os.Stderr, ": %v\n", err.Err)
		if err.StackTrace != "" {
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", err.StackTrace)
		}
	} else {
		fmt.Fprintf(os.Stderr, "[anchor error] %s: %v\n", err.Op, err.Err)
	}
}
