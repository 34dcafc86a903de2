package kala

import "fmt"

// Either holds exactly one of two values: a Left of type A or a Right of type B.
// It carries no error meaning of its own, although Left is commonly used for
// the error side. The zero value is a Left holding the zero A.
type Either[A, B any] struct {
	left    A
	right   B
	isRight bool
}

// Left is the variant view of Either.Left, returned by Either.Variant.
type Left[A any] struct {
	Value A
}

// Right is the variant view of Either.Right, returned by Either.Variant.
type Right[B any] struct {
	Value B
}

func LeftOf[A, B any](value A) Either[A, B] {
	return Either[A, B]{left: value}
}

func RightOf[A, B any](value B) Either[A, B] {
	return Either[A, B]{right: value, isRight: true}
}

func (e Either[A, B]) IsLeft() bool {
	return !e.isRight
}

func (e Either[A, B]) IsRight() bool {
	return e.isRight
}

// GetLeft returns the left value and true, or the zero A and false on a Right.
func (e Either[A, B]) GetLeft() (A, bool) {
	if e.isRight {
		var zero A
		return zero, false
	}
	return e.left, true
}

// GetRight returns the right value and true, or the zero B and false on a Left.
func (e Either[A, B]) GetRight() (B, bool) {
	if !e.isRight {
		var zero B
		return zero, false
	}
	return e.right, true
}

// LeftValue returns the left value. It panics with an error wrapping
// ErrNoSuchElement when called on a Right.
func (e Either[A, B]) LeftValue() A {
	if e.isRight {
		panic(fmt.Errorf("%w: LeftValue called on Right", ErrNoSuchElement))
	}
	return e.left
}

// RightValue returns the right value. It panics with an error wrapping
// ErrNoSuchElement when called on a Left.
func (e Either[A, B]) RightValue() B {
	if !e.isRight {
		panic(fmt.Errorf("%w: RightValue called on Left", ErrNoSuchElement))
	}
	return e.right
}

func (e Either[A, B]) LeftOr(defaultValue A) A {
	if e.isRight {
		return defaultValue
	}
	return e.left
}

func (e Either[A, B]) RightOr(defaultValue B) B {
	if e.isRight {
		return e.right
	}
	return defaultValue
}

func (e Either[A, B]) Left() LeftProjection[A, B] {
	return LeftProjection[A, B]{e: e}
}

func (e Either[A, B]) Right() RightProjection[A, B] {
	return RightProjection[A, B]{e: e}
}

// Swap exchanges the sides: Left(a) becomes Right(a) and vice versa.
func (e Either[A, B]) Swap() Either[B, A] {
	if e.isRight {
		return LeftOf[B, A](e.right)
	}
	return RightOf[B, A](e.left)
}

// Variant returns Left[A] or Right[B] for use in a type switch.
func (e Either[A, B]) Variant() any {
	if e.isRight {
		return Right[B]{Value: e.right}
	}
	return Left[A]{Value: e.left}
}

func (e Either[A, B]) Match(onLeft func(A), onRight func(B)) {
	if e.isRight {
		onRight(e.right)
	} else {
		onLeft(e.left)
	}
}

func (e Either[A, B]) String() string {
	if e.isRight {
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}

func MapRight[A, B, C any](e Either[A, B], fn func(B) C) Either[A, C] {
	if e.isRight {
		return RightOf[A, C](fn(e.right))
	}
	return LeftOf[A, C](e.left)
}

func MapLeft[A, B, C any](e Either[A, B], fn func(A) C) Either[C, B] {
	if e.isRight {
		return RightOf[C, B](e.right)
	}
	return LeftOf[C, B](fn(e.left))
}

func FlatMapRight[A, B, C any](e Either[A, B], fn func(B) Either[A, C]) Either[A, C] {
	if e.isRight {
		return fn(e.right)
	}
	return LeftOf[A, C](e.left)
}

// FoldEither reduces e to a single value using the handler for its variant.
func FoldEither[A, B, U any](e Either[A, B], onLeft func(A) U, onRight func(B) U) U {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// FromEither converts Either[error, T] into a Try: Right becomes Success,
// Left becomes Failure with the left error.
func FromEither[T any](e Either[error, T]) Try[T] {
	if e.isRight {
		return SuccessOf(e.right)
	}
	return FailureOf[T](e.left)
}
