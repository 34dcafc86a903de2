package kala

// Map applies fn to a Success value. A panic in fn is captured as in Run.
// A Failure passes through unchanged.
func Map[T, U any](t Try[T], fn func(T) U) Try[U] {
	if !t.isSuccess {
		return FailureFrom[T, U](t)
	}
	return Run(func() U {
		return fn(t.value)
	})
}

// FlatMap applies fn to a Success value and returns its Try. A panic in fn
// is captured as in Run.
func FlatMap[T, U any](t Try[T], fn func(T) Try[U]) Try[U] {
	if !t.isSuccess {
		return FailureFrom[T, U](t)
	}
	return Flatten(Run(func() Try[U] {
		return fn(t.value)
	}))
}

// Flatten collapses a nested Try. Flatten(SuccessOf(t)) has t's variant and value.
func Flatten[T any](t Try[Try[T]]) Try[T] {
	if !t.isSuccess {
		return FailureFrom[Try[T], T](t)
	}
	return t.value
}

// Recover turns a Failure into a Success using fn. A Success and a cancelled
// Failure pass through; use Fold to handle a cancellation explicitly.
func Recover[T any](t Try[T], fn func(err error) T) Try[T] {
	if t.isSuccess || t.IsCancel() {
		return t
	}
	return Run(func() T {
		return fn(t.Err())
	})
}

// RecoverWith replaces a non-cancel Failure with the Try returned by fn.
func RecoverWith[T any](t Try[T], fn func(err error) Try[T]) Try[T] {
	if t.isSuccess || t.IsCancel() {
		return t
	}
	return Flatten(Run(func() Try[T] {
		return fn(t.Err())
	}))
}

// Fold reduces t to a single value using the handler for its variant.
func Fold[T, U any](t Try[T], onSuccess func(T) U, onFailure func(error) U) U {
	if t.isSuccess {
		return onSuccess(t.value)
	}
	return onFailure(t.Err())
}
