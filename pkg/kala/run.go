package kala

import (
	"context"

	"github.com/mudler/xlog"
)

// Run invokes op once on the calling goroutine. A normal return becomes a
// Success; a panic is recovered and becomes a Failure holding a *PanicError,
// unless IsFatal reports it fatal, in which case it is re-panicked.
// Side effects of op are not undone.
func Run[T any](op func() T) Try[T] {
	return RunWith(IsFatal, op)
}

// RunWith is Run with an explicit policy. A nil policy captures every panic.
func RunWith[T any](policy FatalPolicy, op func() T) Try[T] {
	return capture(policy, func() (T, error) {
		return op(), nil
	})
}

// RunE invokes a fallible op. A returned error becomes a Failure holding
// exactly that error; panics are handled as in Run.
func RunE[T any](op func() (T, error)) Try[T] {
	return capture(IsFatal, op)
}

// RunContext is RunE for context-aware operations. op is not invoked when
// ctx is already done, and the fatal policy is taken from ctx
// (see WithFatalPolicy), falling back to IsFatal.
func RunContext[T any](ctx context.Context, op func(ctx context.Context) (T, error)) Try[T] {
	if err := ctx.Err(); err != nil {
		return FailureOf[T](err)
	}
	return capture(GetFatalPolicy(ctx, IsFatal), func() (T, error) {
		return op(ctx)
	})
}

func capture[T any](policy FatalPolicy, op func() (T, error)) (res Try[T]) {
	completed := false
	defer func() {
		if completed {
			return
		}
		r := recover()
		if r == nil {
			// runtime.Goexit keeps unwinding
			return
		}
		if policy != nil && policy(r) {
			xlog.Warn("propagating fatal panic", "panic", r)
			panic(r)
		}
		pe := newPanicError(r)
		xlog.Debug("recovered panic", "panic", r, "stack", string(pe.Stack))
		res = FailureOf[T](pe)
	}()

	value, err := op()
	completed = true
	if err != nil {
		return FailureOf[T](err)
	}
	return SuccessOf(value)
}
