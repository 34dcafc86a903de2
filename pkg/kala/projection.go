package kala

import (
	"fmt"
	"iter"
)

// LeftProjection is a view over the left side of an Either. It is defined
// only when the Either is a Left. To transform the left value use MapLeft
// on the Either itself.
type LeftProjection[A, B any] struct {
	e Either[A, B]
}

func (p LeftProjection[A, B]) IsDefined() bool {
	return !p.e.isRight
}

func (p LeftProjection[A, B]) IsEmpty() bool {
	return p.e.isRight
}

// Get returns the left value or panics with ErrNoSuchElement.
func (p LeftProjection[A, B]) Get() A {
	return p.e.LeftValue()
}

func (p LeftProjection[A, B]) GetOk() (A, bool) {
	return p.e.GetLeft()
}

func (p LeftProjection[A, B]) GetOrElse(defaultValue A) A {
	return p.e.LeftOr(defaultValue)
}

// GetOrError returns the left value, or err when the projection is empty.
// A nil err is replaced by ErrNoSuchElement.
func (p LeftProjection[A, B]) GetOrError(err error) (A, error) {
	if p.e.isRight {
		var zero A
		return zero, orNoSuchElement(err, "left projection of Right")
	}
	return p.e.left, nil
}

// GetOrErrorFunc is GetOrError with the error built only when needed.
// A nil result of errFn is replaced by ErrNoSuchElement.
func (p LeftProjection[A, B]) GetOrErrorFunc(errFn func() error) (A, error) {
	if p.e.isRight {
		var zero A
		return zero, orNoSuchElement(errFn(), "left projection of Right")
	}
	return p.e.left, nil
}

func (p LeftProjection[A, B]) Exists(predicate func(A) bool) bool {
	return !p.e.isRight && predicate(p.e.left)
}

// Forall is true for an empty projection.
func (p LeftProjection[A, B]) Forall(predicate func(A) bool) bool {
	return p.e.isRight || predicate(p.e.left)
}

func (p LeftProjection[A, B]) Count(predicate func(A) bool) int {
	if p.Exists(predicate) {
		return 1
	}
	return 0
}

// All yields the left value once, or nothing.
func (p LeftProjection[A, B]) All() iter.Seq[A] {
	return func(yield func(A) bool) {
		if !p.e.isRight {
			yield(p.e.left)
		}
	}
}

func (p LeftProjection[A, B]) Collect() []A {
	if p.e.isRight {
		return []A{}
	}
	return []A{p.e.left}
}

// RightProjection is a view over the right side of an Either. It is defined
// only when the Either is a Right. To transform the right value use MapRight
// on the Either itself.
type RightProjection[A, B any] struct {
	e Either[A, B]
}

func (p RightProjection[A, B]) IsDefined() bool {
	return p.e.isRight
}

func (p RightProjection[A, B]) IsEmpty() bool {
	return !p.e.isRight
}

// Get returns the right value or panics with ErrNoSuchElement.
func (p RightProjection[A, B]) Get() B {
	return p.e.RightValue()
}

func (p RightProjection[A, B]) GetOk() (B, bool) {
	return p.e.GetRight()
}

func (p RightProjection[A, B]) GetOrElse(defaultValue B) B {
	return p.e.RightOr(defaultValue)
}

// GetOrError returns the right value, or err when the projection is empty.
// A nil err is replaced by ErrNoSuchElement.
func (p RightProjection[A, B]) GetOrError(err error) (B, error) {
	if !p.e.isRight {
		var zero B
		return zero, orNoSuchElement(err, "right projection of Left")
	}
	return p.e.right, nil
}

// GetOrErrorFunc is GetOrError with the error built only when needed.
// A nil result of errFn is replaced by ErrNoSuchElement.
func (p RightProjection[A, B]) GetOrErrorFunc(errFn func() error) (B, error) {
	if !p.e.isRight {
		var zero B
		return zero, orNoSuchElement(errFn(), "right projection of Left")
	}
	return p.e.right, nil
}

func (p RightProjection[A, B]) Exists(predicate func(B) bool) bool {
	return p.e.isRight && predicate(p.e.right)
}

// Forall is true for an empty projection.
func (p RightProjection[A, B]) Forall(predicate func(B) bool) bool {
	return !p.e.isRight || predicate(p.e.right)
}

func (p RightProjection[A, B]) Count(predicate func(B) bool) int {
	if p.Exists(predicate) {
		return 1
	}
	return 0
}

// All yields the right value once, or nothing.
func (p RightProjection[A, B]) All() iter.Seq[B] {
	return func(yield func(B) bool) {
		if p.e.isRight {
			yield(p.e.right)
		}
	}
}

func (p RightProjection[A, B]) Collect() []B {
	if !p.e.isRight {
		return []B{}
	}
	return []B{p.e.right}
}

// FoldLeft returns op(zero, v) when p holds v, and zero otherwise.
func FoldLeft[T, U any](p Projection[T], zero U, op func(acc U, v T) U) U {
	v, ok := p.GetOk()
	if !ok {
		return zero
	}
	return op(zero, v)
}

// FoldRight returns op(v, zero) when p holds v, and zero otherwise.
func FoldRight[T, U any](p Projection[T], zero U, op func(v T, acc U) U) U {
	v, ok := p.GetOk()
	if !ok {
		return zero
	}
	return op(v, zero)
}

// Contains reports whether p holds a value equal to v.
func Contains[T comparable](p Projection[T], v T) bool {
	got, ok := p.GetOk()
	return ok && got == v
}

func orNoSuchElement(err error, what string) error {
	if err == nil {
		return fmt.Errorf("%w: %s", ErrNoSuchElement, what)
	}
	return err
}
