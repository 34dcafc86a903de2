package kala

import "errors"

var (
	// ErrNoSuchElement is wrapped by every wrong-variant access.
	ErrNoSuchElement = errors.New("kala: no such element")
	// ErrEmpty is the failure held by a zero-value Try.
	ErrEmpty = errors.New("kala: empty try")
	// ErrNilFailure replaces a nil error passed to FailureOf.
	ErrNilFailure = errors.New("kala: failure with nil error")
	// ErrFatal marks panic values that Run must not capture.
	ErrFatal = errors.New("kala: fatal condition")
)
