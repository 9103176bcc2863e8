// Package saperr defines the error taxonomy used across the engine: every
// public operation in internal/sap returns one of these kinds so callers can
// branch on failure mode instead of parsing messages.
package saperr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies a failure per the propagation policy in the engine design.
type Kind int

const (
	// Unknown is never returned; it guards against a zero-value Kind slipping through.
	Unknown Kind = iota
	// InvalidTeamAction covers caller-recoverable rule violations: team-size
	// overflow, buying into a full slot, insufficient gold, opening an
	// already-open shop. No state is mutated when this is returned.
	InvalidTeamAction
	// LookupFailure is an unknown name in the game database. Fatal to the
	// operation that triggered it; no mutation occurs.
	LookupFailure
	// ParseFailure covers JSON or effect-descriptor parse errors.
	ParseFailure
	// RuntimeBudget means the effect engine exceeded its step guard, almost
	// always because a rule fails to terminate. State may be partially
	// mutated; callers should call Team.Restore.
	RuntimeBudget
)

func (k Kind) String() string {
	switch k {
	case InvalidTeamAction:
		return "InvalidTeamAction"
	case LookupFailure:
		return "LookupFailure"
	case ParseFailure:
		return "ParseFailure"
	case RuntimeBudget:
		return "RuntimeBudget"
	default:
		return "Unknown"
	}
}

// Error is the concrete error type returned by every public sap/shop/effect
// operation. It wraps an optional cause with github.com/pkg/errors so a
// stack trace survives across the call chain, the same way cmd/server and
// cmd/streamer in the teacher repo wrap startup failures.
type Error struct {
	Kind    Kind
	Subject string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Subject, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Subject)
}

// Unwrap lets errors.Is / errors.As see through to the wrapped cause.
func (e *Error) Unwrap() error { return e.cause }

// New builds an Error with no wrapped cause.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Subject: fmt.Sprintf(format, args...)}
}

// Wrap attaches kind and subject to an existing cause, preserving its stack
// trace via pkg/errors.
func Wrap(kind Kind, cause error, format string, args ...any) *Error {
	if cause == nil {
		return New(kind, format, args...)
	}
	return &Error{Kind: kind, Subject: fmt.Sprintf(format, args...), cause: errors.WithStack(cause)}
}

// Is reports whether err carries the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
