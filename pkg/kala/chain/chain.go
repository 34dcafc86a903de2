package chain

import (
	"context"

	"github.com/ib-77/kala/pkg/kala"
	"github.com/ib-77/kala/pkg/kala/solo"
)

// Chain wraps a kala.Try with context to enable fluent chaining
type Chain[T any] struct {
	ctx    context.Context
	result kala.Try[T]
}

// Start creates a new chain from a kala.Try
func Start[T any](ctx context.Context, result kala.Try[T]) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: kala.SuccessOf(value),
	}
}

// Run starts a chain from the captured outcome of op
func Run[T any](ctx context.Context, op func(ctx context.Context) (T, error)) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: kala.RunContext(ctx, op),
	}
}

// Result returns the underlying kala.Try
func (c *Chain[T]) Result() kala.Try[T] {
	return c.result
}

// Then chains a function that returns kala.Try[U]
func Then[T, U any](c *Chain[T], onSuccess func(context.Context, T) kala.Try[U]) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.Switch[T, U](c.ctx, c.result, onSuccess),
	}
}

// ThenTry chains a function that returns (U, error); panics are captured too
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.Try[T, U](c.ctx, c.result, tryOnSuccess),
	}
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onSuccess func(context.Context, T) U) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.Map[T, U](c.ctx, c.result, onSuccess),
	}
}

// Recover turns a non-cancel failure back into a value
func (c *Chain[T]) Recover(onError func(context.Context, error) T) *Chain[T] {
	return &Chain[T]{
		ctx:    c.ctx,
		result: solo.Recover[T](c.ctx, c.result, onError),
	}
}

// Ensure performs a side effect without changing the result
func (c *Chain[T]) Ensure(onSuccess func(context.Context, T)) *Chain[T] {
	return &Chain[T]{
		ctx: c.ctx,
		result: solo.Tee[T](c.ctx, c.result,
			func(ctx context.Context, result kala.Try[T]) {
				onSuccess(ctx, result.MustGet())
			}),
	}
}

// Finally collapses the chain into a final value using solo.Finally
func Finally[T, U any](c *Chain[T], onSuccess func(context.Context, T) U, onFailure func(context.Context, error) U, onCancel func(context.Context, error) U) U {
	return solo.Finally[T, U](c.ctx, c.result, onSuccess, onFailure, onCancel)
}
