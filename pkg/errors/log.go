package errors

import (
	"fmt"
	"os"
)

// LogHandler is a Handler that logs violations to stderr.
type LogHandler struct {
	// Verbose enables detailed output including stack traces.
	Verbose bool
}

// HandleViolation logs a Violation to stderr.
func (h *LogHandler) HandleViolation(v *Violation) {
	if v == nil {
		return
	}
	if h.Verbose {
		fmt.Fprintf(os.Stderr, "[beam violation] %s [%s]: %s\n", v.Op, v.Kind, v.Reason)
		if v.StackTrace != "" {
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", v.StackTrace)
		}
	} else {
		fmt.Fprintf(os.Stderr, "[beam violation] %s: %s\n", v.Op, v.Reason)
	}
}
