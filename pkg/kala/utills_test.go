package kala

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetErrorsKeepsTypedNil(t *testing.T) {
	t.Parallel()
	var pe *PanicError
	var err error = pe

	assert.Equal(t, []error{err}, GetErrors(err))
	assert.Len(t, GetErrors(AppendError(err, errors.New("x"))), 2)
}

func TestAppendErrorKeepsFlat(t *testing.T) {
	t.Parallel()
	a, b, c := errors.New("a"), errors.New("b"), errors.New("c")

	var acc error
	acc = AppendError(acc, a)
	acc = AppendError(acc, nil)
	acc = AppendError(acc, b)
	acc = AppendError(acc, c)

	assert.Equal(t, []error{a, b, c}, GetErrors(acc))
	assert.Empty(t, GetErrors(nil))
}

func TestIsCancellationError(t *testing.T) {
	t.Parallel()
	assert.True(t, IsCancellationError(context.Canceled))
	assert.True(t, IsCancellationError(fmt.Errorf("op: %w", context.DeadlineExceeded)))
	assert.False(t, IsCancellationError(errors.New("x")))
}
