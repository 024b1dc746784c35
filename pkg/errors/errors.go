// Package errors provides structured violation reporting for the Beam library.
//
// The core property types fail fast on contract violations: they panic with a
// *Violation describing the offending call. Nothing inside the library catches
// these panics. Embedding code that prefers error values can wrap calls with
// [Catch], or install a [Handler] and recover at a boundary with [Recover].
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// Kind identifies the category of a violation.
type Kind int

const (
	// KindUnknown indicates a violation of unknown type, typically a
	// recovered panic that did not originate in this library.
	KindUnknown Kind = iota
	// KindInvalidArgument indicates a malformed argument: a nil listener or
	// compute function, a nil binding source, a zero divisor, or an empty
	// source list.
	KindInvalidArgument
	// KindIllegalState indicates a call that is invalid in the receiver's
	// current state, such as setting a property while it is bound.
	KindIllegalState
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid argument"
	case KindIllegalState:
		return "illegal state"
	default:
		return "unknown"
	}
}

// Violation represents a contract violation in the Beam library.
//
// Violations are programming errors, not recoverable runtime states: the
// caller passed a bad argument or called a method in the wrong state.
type Violation struct {
	// Op is the operation that was violated (e.g., "property.Bind").
	Op string
	// Kind categorizes the violation.
	Kind Kind
	// Reason describes what was wrong with the call.
	Reason string
	// Err is the underlying error, if any.
	Err error
	// StackTrace contains the call stack at the time of the violation.
	StackTrace string
	// Timestamp is when the violation occurred.
	Timestamp time.Time
}

func (v *Violation) Error() string {
	if v.Err != nil {
		return fmt.Sprintf("%s [%s]: %s: %v", v.Op, v.Kind, v.Reason, v.Err)
	}
	return fmt.Sprintf("%s [%s]: %s", v.Op, v.Kind, v.Reason)
}

func (v *Violation) Unwrap() error {
	return v.Err
}

// InvalidArgument creates a Violation for a malformed argument to op.
func InvalidArgument(op, reason string) *Violation {
	return newViolation(op, KindInvalidArgument, reason)
}

// IllegalState creates a Violation for a call to op in the wrong state.
func IllegalState(op, reason string) *Violation {
	return newViolation(op, KindIllegalState, reason)
}

func newViolation(op string, kind Kind, reason string) *Violation {
	return &Violation{
		Op:         op,
		Kind:       kind,
		Reason:     reason,
		StackTrace: CaptureStack(),
		Timestamp:  time.Now(),
	}
}

// IsInvalidArgument reports whether err is a Violation of KindInvalidArgument.
func IsInvalidArgument(err error) bool {
	return isKind(err, KindInvalidArgument)
}

// IsIllegalState reports whether err is a Violation of KindIllegalState.
func IsIllegalState(err error) bool {
	return isKind(err, KindIllegalState)
}

func isKind(err error, kind Kind) bool {
	var v *Violation
	if stderrors.As(err, &v) {
		return v.Kind == kind
	}
	return false
}
