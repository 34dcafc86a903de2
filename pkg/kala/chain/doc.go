// Package chain provides a fluent wrapper around kala.Try[T]
// for building synchronous, context-aware chains using solo primitives.
//
// It composes functions like Switch, Map, Try, Tee, and Finally behind a
// convenient Chain[T] type. This enables ergonomic pipelines without
// dealing directly with branching results at each step.
//
// Key operations:
// - Start/FromValue/Run: begin a chain from a Try[T], a value or an operation
// - Then: switch to a new Try[U] via a function
// - ThenTry: call a function (U, error) and convert error or panic to failure
// - Map: transform the successful value (T -> U)
// - Recover: replace a non-cancel failure with a value
// - Ensure: run side effects on success without changing the result
// - Finally: collapse the chain into a final value via handlers
package chain
