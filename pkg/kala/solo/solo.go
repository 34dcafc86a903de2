package solo

import (
	"context"
	"errors"
	"fmt"

	"github.com/ib-77/kala/pkg/kala"
)

func Succeed[T any](input T) kala.Try[T] {
	return kala.SuccessOf(input)
}

func Fail[T any](err error) kala.Try[T] {
	return kala.FailureOf[T](err)
}

// Cancel returns a Failure that reports IsCancel. err is wrapped with
// context.Canceled unless it already is a cancellation error.
func Cancel[T any](err error) kala.Try[T] {
	if err == nil {
		return kala.FailureOf[T](context.Canceled)
	}
	if kala.IsCancellationError(err) {
		return kala.FailureOf[T](err)
	}
	return kala.FailureOf[T](fmt.Errorf("%w: %w", context.Canceled, err))
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) kala.Try[T] {
	return AndValidate(ctx, Succeed(input), validate)
}

func AndValidate[T any](ctx context.Context, input kala.Try[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) kala.Try[T] {

	if input.IsSuccess() {
		value := input.MustGet()
		if isValid, errMsg := validate(ctx, value); isValid {
			return input
		} else {
			return kala.FailureOf[T](errors.New(errMsg))
		}
	}
	return input
}

// ValidateAll applies every step to input and joins the failures they report.
// With breakOnError it stops at the first failing step. A done ctx stops the
// run with a cancel failure.
func ValidateAll[T any](
	ctx context.Context,
	input kala.Try[T],
	breakOnError bool, // exit on first error
	inputsF ...func(ctx context.Context, in kala.Try[T]) kala.Try[T]) kala.Try[T] {

	if input.IsFailure() {
		return input
	}

	var err error
	for _, validate := range inputsF {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Cancel[T](ctxErr)
		}

		current := validate(ctx, input)
		if current.IsFailure() {
			err = kala.AppendError(err, current.Err())
			if breakOnError {
				break
			}
		}
	}

	if err == nil {
		return input
	}
	return kala.FailureOf[T](err)
}

func Switch[In any, Out any](ctx context.Context,
	input kala.Try[In],
	onSuccess func(ctx context.Context, r In) kala.Try[Out]) kala.Try[Out] {

	if input.IsSuccess() {
		return onSuccess(ctx, input.MustGet())
	}
	return kala.FailureFrom[In, Out](input)
}

func Map[In any, Out any](ctx context.Context,
	input kala.Try[In],
	onSuccess func(ctx context.Context, r In) Out) kala.Try[Out] {

	if input.IsSuccess() {
		return kala.SuccessOf(onSuccess(ctx, input.MustGet()))
	}
	return kala.FailureFrom[In, Out](input)
}

func Tee[T any](ctx context.Context,
	input kala.Try[T],
	onSuccess func(ctx context.Context, r kala.Try[T])) kala.Try[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input)
	}

	return input
}

func TeeIf[T any](ctx context.Context,
	input kala.Try[T],
	condition func(ctx context.Context, r kala.Try[T]) bool,
	onSuccessAndCondition func(ctx context.Context, r kala.Try[T])) kala.Try[T] {

	if input.IsSuccess() {
		if condition(ctx, input) {
			onSuccessAndCondition(ctx, input)
		}
	}

	return input
}

func DoubleTee[T any](ctx context.Context, input kala.Try[T],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err error),
	onCancel func(ctx context.Context, err error)) kala.Try[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input.MustGet())
	} else if input.IsCancel() {
		onCancel(ctx, input.Err())
	} else {
		onError(ctx, input.Err())
	}

	return input
}

// DoubleMap maps a Success with onSuccess; on Failure the matching handler is
// called for its side effect and the failure is kept.
func DoubleMap[In any, Out any](ctx context.Context, input kala.Try[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out,
	onCancel func(ctx context.Context, err error) Out) kala.Try[Out] {

	if input.IsSuccess() {
		return kala.SuccessOf(onSuccess(ctx, input.MustGet()))
	}

	if input.IsCancel() {
		onCancel(ctx, input.Err())
	} else {
		onError(ctx, input.Err())
	}

	return kala.FailureFrom[In, Out](input)
}

// Try runs onTryExecute on a Success value through kala.RunContext, so a
// returned error or a recovered panic becomes a Failure.
func Try[In any, Out any](ctx context.Context, input kala.Try[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) kala.Try[Out] {

	if input.IsSuccess() {
		value := input.MustGet()
		return kala.RunContext(ctx, func(ctx context.Context) (Out, error) {
			return onTryExecute(ctx, value)
		})
	}

	return kala.FailureFrom[In, Out](input)
}

func FailOnError[T any](ctx context.Context, input kala.Try[T],
	maybeErr func(ctx context.Context, in T) error) kala.Try[T] {
	if input.IsSuccess() {
		err := maybeErr(ctx, input.MustGet())
		if err != nil {
			return kala.FailureOf[T](err)
		}
	}
	return input
}

// Recover replaces a non-cancel Failure with the value from onError.
// Cancelled results are kept.
func Recover[T any](ctx context.Context, input kala.Try[T],
	onError func(ctx context.Context, err error) T) kala.Try[T] {
	if input.IsSuccess() || input.IsCancel() {
		return input
	}
	return kala.SuccessOf(onError(ctx, input.Err()))
}

// Finally folds input into Out, choosing the handler by success, cancel or
// failure.
func Finally[In, Out any](ctx context.Context, input kala.Try[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out,
	onCancel func(ctx context.Context, err error) Out) Out {

	switch {
	case input.IsSuccess():
		return onSuccess(ctx, input.MustGet())
	case input.IsCancel():
		return onCancel(ctx, input.Err())
	default:
		return onError(ctx, input.Err())
	}
}

// Join feeds input through each step in turn, passing every step result
// through concat. With breakOnError the first failed step ends the run. A
// context that is done before or between steps yields a cancelled Failure.
func Join[T any](ctx context.Context,
	input kala.Try[T],
	breakOnError bool,
	concat func(ctx context.Context, current kala.Try[T]) kala.Try[T],
	steps ...func(ctx context.Context, in kala.Try[T]) kala.Try[T]) kala.Try[T] {

	if len(steps) == 0 || concat == nil {
		return input
	}

	result := input
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return Cancel[T](err)
		}

		result = concat(ctx, step(ctx, result))
		if breakOnError && result.IsFailure() {
			return result
		}
	}
	return result
}
