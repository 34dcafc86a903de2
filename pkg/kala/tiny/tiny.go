package tiny

import (
	"context"

	"github.com/ib-77/kala/pkg/kala"
)

// Chain is a right-biased fluent wrapper around kala.Either: steps run on a
// Right and a Left short-circuits the rest of the chain.
type Chain[L, R any] struct {
	ctx context.Context
	e   kala.Either[L, R]
}

func Start[L, R any](ctx context.Context, e kala.Either[L, R]) Chain[L, R] {
	return Chain[L, R]{ctx: ctx, e: e}
}

func FromRight[L, R any](ctx context.Context, v R) Chain[L, R] {
	return Start(ctx, kala.RightOf[L](v))
}

func FromLeft[R, L any](ctx context.Context, v L) Chain[L, R] {
	return Start(ctx, kala.LeftOf[L, R](v))
}

// FromTry starts a chain from t, with Failure on the left.
func FromTry[R any](ctx context.Context, t kala.Try[R]) Chain[error, R] {
	return Start(ctx, t.ToEither())
}

func (c Chain[L, R]) Either() kala.Either[L, R] {
	return c.e
}

// Then composes functions that already return kala.Either[L, R]
func (c Chain[L, R]) Then(onRight func(ctx context.Context, r R) kala.Either[L, R]) Chain[L, R] {
	if c.e.IsLeft() {
		return c
	}
	return Chain[L, R]{ctx: c.ctx, e: onRight(c.ctx, c.e.RightValue())}
}

func (c Chain[L, R]) RepeatUntil(onRight func(ctx context.Context, r R) kala.Either[L, R],
	until func(ctx context.Context, r R) bool) Chain[L, R] {

	if c.e.IsLeft() {
		return c
	}

	for {
		c = c.Then(onRight)

		if c.e.IsLeft() || !until(c.ctx, c.e.RightValue()) {
			return c
		}
	}
}

func (c Chain[L, R]) RepeatChainUntil(inC func(ctx context.Context, r R) Chain[L, R],
	until func(ctx context.Context, r R) bool) Chain[L, R] {

	if c.e.IsLeft() {
		return c
	}

	for {
		c = inC(c.ctx, c.e.RightValue())

		if c.e.IsLeft() || !until(c.ctx, c.e.RightValue()) {
			return c
		}
	}
}

func (c Chain[L, R]) While(onRight func(ctx context.Context, r R) kala.Either[L, R],
	while func(ctx context.Context, r R) bool) Chain[L, R] {

	for c.e.IsRight() && while(c.ctx, c.e.RightValue()) {
		c = c.Then(onRight)
	}
	return c
}

func (c Chain[L, R]) WhileChain(inC func(ctx context.Context, r R) Chain[L, R],
	while func(ctx context.Context, r R) bool) Chain[L, R] {

	for c.e.IsRight() && while(c.ctx, c.e.RightValue()) {
		c = inC(c.ctx, c.e.RightValue())
	}
	return c
}

// Or returns the first Right among c and alternatives, otherwise the first Left.
func (c Chain[L, R]) Or(alternatives ...Chain[L, R]) Chain[L, R] {
	if c.e.IsRight() {
		return c
	}
	for _, ch := range alternatives {
		if ch.e.IsRight() {
			return ch
		}
	}
	return c
}

// And returns the first Left among c and required, otherwise the last Right.
func (c Chain[L, R]) And(required ...Chain[L, R]) Chain[L, R] {
	last := c
	for _, ch := range append([]Chain[L, R]{c}, required...) {
		if ch.e.IsLeft() {
			return ch
		}
		last = ch
	}
	return last
}

// ThenTry composes functions that return (R, error), like repo calls. The
// call goes through kala.RunContext, and an error or captured panic becomes
// a Left via toLeft.
func (c Chain[L, R]) ThenTry(try func(ctx context.Context, r R) (R, error),
	toLeft func(ctx context.Context, err error) L) Chain[L, R] {
	if c.e.IsLeft() {
		return c
	}

	r := c.e.RightValue()
	res := kala.RunContext(c.ctx, func(ctx context.Context) (R, error) {
		return try(ctx, r)
	})
	if res.IsFailure() {
		return Chain[L, R]{ctx: c.ctx, e: kala.LeftOf[L, R](toLeft(c.ctx, res.Err()))}
	}
	return Chain[L, R]{ctx: c.ctx, e: kala.RightOf[L](res.MustGet())}
}

// Map transforms the right value
func (c Chain[L, R]) Map(onRight func(ctx context.Context, r R) R) Chain[L, R] {
	if c.e.IsLeft() {
		return c
	}

	return Chain[L, R]{ctx: c.ctx, e: kala.RightOf[L](onRight(c.ctx, c.e.RightValue()))}
}

// MapLeft transforms the left value
func (c Chain[L, R]) MapLeft(onLeft func(ctx context.Context, l L) L) Chain[L, R] {
	if c.e.IsRight() {
		return c
	}

	return Chain[L, R]{ctx: c.ctx, e: kala.LeftOf[L, R](onLeft(c.ctx, c.e.LeftValue()))}
}

// Ensure triggers side effects for either side without changing the value.
// Nil callbacks are skipped.
func (c Chain[L, R]) Ensure(onRight func(context.Context, R), onLeft func(context.Context, L)) Chain[L, R] {
	if c.e.IsLeft() {
		if onLeft != nil {
			onLeft(c.ctx, c.e.LeftValue())
		}
		return c
	}

	if onRight != nil {
		onRight(c.ctx, c.e.RightValue())
	}
	return c
}

// Finally collapses the chain to a final value
func (c Chain[L, R]) Finally(
	onRight func(context.Context, R) R,
	onLeft func(context.Context, L) R,
) R {
	if c.e.IsLeft() {
		return onLeft(c.ctx, c.e.LeftValue())
	}
	return onRight(c.ctx, c.e.RightValue())
}
