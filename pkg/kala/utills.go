package kala

import (
	"context"
	"errors"
)

// GetErrors flattens an errors.Join result into its parts.
func GetErrors(err error) []error {
	if err == nil {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

// AppendError joins next onto acc, keeping acc flat.
func AppendError(acc error, next error) error {
	if next == nil {
		return acc
	}
	return errors.Join(append(GetErrors(acc), next)...)
}

func IsCancellationError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
