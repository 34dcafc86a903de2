package kala

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Try is the outcome of a computation that may fail: a Success holding a T,
// or a Failure holding a non-nil error. The zero value is a Failure holding
// ErrEmpty.
type Try[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	isSuccess bool
}

// Success is the variant view of a successful Try, returned by Try.Variant.
type Success[T any] struct {
	Value T
}

// Failure is the variant view of a failed Try, returned by Try.Variant.
type Failure struct {
	Err error
}

func SuccessOf[T any](value T) Try[T] {
	return Try[T]{
		value:     value,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailureOf returns a Failure holding err. A nil err is stored as ErrNilFailure.
func FailureOf[T any](err error) Try[T] {
	if err == nil {
		err = ErrNilFailure
	}
	return Try[T]{
		err:       err,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailureFrom retypes the Failure from, keeping its id and creation time.
// Called on a Success it returns a Failure wrapping ErrNoSuchElement.
func FailureFrom[In, Out any](from Try[In]) Try[Out] {
	if from.isSuccess {
		return FailureOf[Out](fmt.Errorf("%w: FailureFrom called on Success", ErrNoSuchElement))
	}
	return Try[Out]{
		err:       from.Err(),
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (t Try[T]) IsSuccess() bool {
	return t.isSuccess
}

func (t Try[T]) IsFailure() bool {
	return !t.isSuccess
}

// IsCancel reports a Failure caused by context cancellation or deadline.
func (t Try[T]) IsCancel() bool {
	return !t.isSuccess && IsCancellationError(t.err)
}

// IsEmpty reports the zero value.
func (t Try[T]) IsEmpty() bool {
	return !t.isSuccess && t.err == nil
}

// Get returns the value and a nil error on Success, or the zero T and the
// failure on Failure.
func (t Try[T]) Get() (T, error) {
	if !t.isSuccess {
		var zero T
		return zero, t.Err()
	}
	return t.value, nil
}

// MustGet returns the value or panics with an error wrapping both
// ErrNoSuchElement and the failure.
func (t Try[T]) MustGet() T {
	if !t.isSuccess {
		panic(fmt.Errorf("%w: MustGet called on Failure: %w", ErrNoSuchElement, t.Err()))
	}
	return t.value
}

func (t Try[T]) GetOrElse(defaultValue T) T {
	if t.isSuccess {
		return t.value
	}
	return defaultValue
}

func (t Try[T]) GetOrElseFunc(fn func(err error) T) T {
	if t.isSuccess {
		return t.value
	}
	return fn(t.Err())
}

// Err returns nil on Success and the held failure otherwise.
func (t Try[T]) Err() error {
	if t.isSuccess {
		return nil
	}
	if t.err == nil {
		return ErrEmpty
	}
	return t.err
}

func (t Try[T]) ToEither() Either[error, T] {
	if t.isSuccess {
		return RightOf[error](t.value)
	}
	return LeftOf[error, T](t.Err())
}

// Variant returns Success[T] or Failure for use in a type switch.
func (t Try[T]) Variant() any {
	if t.isSuccess {
		return Success[T]{Value: t.value}
	}
	return Failure{Err: t.Err()}
}

func (t Try[T]) Match(onSuccess func(T), onFailure func(error)) {
	if t.isSuccess {
		onSuccess(t.value)
	} else {
		onFailure(t.Err())
	}
}

func (t Try[T]) CreatedAt() time.Time {
	return t.createdAt
}

func (t Try[T]) Id() uuid.UUID {
	return t.id
}

func (t Try[T]) String() string {
	if t.isSuccess {
		return fmt.Sprintf("Success(%v)", t.value)
	}
	return fmt.Sprintf("Failure(%v)", t.Err())
}
