package kala

import (
	"errors"
	"fmt"
	"runtime/debug"
)

// FatalPolicy decides whether a recovered panic value is fatal. Fatal values
// are re-panicked by the Run family instead of being turned into a Failure.
//
// Conditions the Go runtime reports as "fatal error" (out of memory, stack
// exhaustion, concurrent map writes) are not panics and terminate the process
// before any policy runs. runtime.Goexit is never captured.
type FatalPolicy func(v any) bool

// IsFatal is the default policy. A panic value is fatal when it implements
// Fatal() bool returning true, or when it is an error matching ErrFatal.
// Everything else, runtime.Error included, is captured.
func IsFatal(v any) bool {
	if f, ok := v.(interface{ Fatal() bool }); ok && f.Fatal() {
		return true
	}
	if err, ok := v.(error); ok {
		return errors.Is(err, ErrFatal)
	}
	return false
}

// PanicError is the failure produced by a recovered panic.
type PanicError struct {
	// Value is what was passed to panic.
	Value any
	// Stack is the goroutine stack at the point of recovery.
	Stack []byte
}

func newPanicError(v any) *PanicError {
	return &PanicError{Value: v, Stack: debug.Stack()}
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("kala: recovered panic: %v", e.Value)
}

// Unwrap returns the panic value when it is an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
