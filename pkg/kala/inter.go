package kala

import (
	"iter"
	"time"
)

// Projection is a container of zero or one value; both sides of an Either
// project into it. GetOk and Collect stand in for an Option type.
type Projection[T any] interface {
	// IsDefined returns true if the value is present
	IsDefined() bool
	IsEmpty() bool
	// GetOk returns the value and whether it is present
	GetOk() (T, bool)
	GetOrElse(defaultValue T) T
	// GetOrError returns the value, or err (ErrNoSuchElement if nil) when empty
	GetOrError(err error) (T, error)
	GetOrErrorFunc(errFn func() error) (T, error)
	Exists(predicate func(T) bool) bool
	Forall(predicate func(T) bool) bool
	Count(predicate func(T) bool) int
	All() iter.Seq[T]
	Collect() []T
}

// Outcome defines an interface for types that hold a value or an error
type Outcome[T any] interface {
	// Get returns the value, or the error if the operation failed
	Get() (T, error)
	// Err returns the error if operation failed
	Err() error
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithCancel extends Outcome with cancellation support
type WithCancel[T any] interface {
	Outcome[T]
	// IsCancel returns true if the operation was cancelled
	IsCancel() bool
}

var (
	_ Projection[int] = LeftProjection[int, string]{}
	_ Projection[int] = RightProjection[string, int]{}
	_ WithCancel[int] = Try[int]{}
)
