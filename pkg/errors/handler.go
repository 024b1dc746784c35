package errors

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Handler receives violations reported by embedding code.
type Handler interface {
	// HandleViolation is called when a violation is reported.
	HandleViolation(v *Violation)
}

var (
	// DefaultHandler is the global violation handler.
	// It defaults to LogHandler with Verbose=false.
	DefaultHandler Handler = &LogHandler{}

	handlerMu sync.RWMutex
)

// SetHandler configures the global violation handler.
// Pass nil to restore the default LogHandler.
func SetHandler(h Handler) {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	if h == nil {
		DefaultHandler = &LogHandler{}
	} else {
		DefaultHandler = h
	}
}

// getHandler returns the current violation handler.
func getHandler() Handler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return DefaultHandler
}

// Report sends a violation to the global handler.
// If v.Timestamp is zero, it is set to the current time.
func Report(v *Violation) {
	if v == nil {
		return
	}
	if v.Timestamp.IsZero() {
		v.Timestamp = time.Now()
	}
	if h := getHandler(); h != nil {
		h.HandleViolation(v)
	}
}

// Recover is a helper for deferred panic recovery at embedding boundaries.
// A recovered *Violation is reported as-is; any other panic value is wrapped
// in a KindUnknown violation. Usage: defer errors.Recover("operation.name")
func Recover(op string) {
	if r := recover(); r != nil {
		Report(asViolation(op, r))
	}
}

// Catch runs fn and converts a violation panic into an error.
// Panics that did not originate in this library are re-raised.
func Catch(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			v, ok := r.(*Violation)
			if !ok {
				panic(r)
			}
			err = v
		}
	}()
	fn()
	return nil
}

func asViolation(op string, r any) *Violation {
	if v, ok := r.(*Violation); ok {
		return v
	}
	return &Violation{
		Op:         op,
		Kind:       KindUnknown,
		Reason:     fmt.Sprintf("panic: %v", r),
		StackTrace: CaptureStack(),
		Timestamp:  time.Now(),
	}
}

// CaptureStack returns the current call stack as a string.
// It skips the first few frames to exclude the CaptureStack call itself.
func CaptureStack() string {
	const maxDepth = 32
	var pcs [maxDepth]uintptr
	n := runtime.Callers(3, pcs[:])
	if n == 0 {
		return ""
	}

	frames := runtime.CallersFrames(pcs[:n])
	var sb strings.Builder
	for {
		frame, more := frames.Next()
		sb.WriteString(frame.Function)
		sb.WriteString("\n\t")
		sb.WriteString(frame.File)
		sb.WriteString(":")
		sb.WriteString(strconv.Itoa(frame.Line))
		sb.WriteString("\n")
		if !more {
			break
		}
	}
	return sb.String()
}
