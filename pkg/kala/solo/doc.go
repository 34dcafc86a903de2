// Package solo contains single-value, synchronous primitives that operate on
// kala.Try[T]. They are the building blocks for error-aware flows that thread
// a context.Context through every step.
//
// Highlights:
// - Succeed/Fail/Cancel: construct Try[T]
// - Validate/AndValidate/ValidateAll: apply validation producing failure on invalid input
// - Switch: move from Try[In] to Try[Out]
// - Map/DoubleMap: transform successful values (with error/cancel side effects)
// - Try: call a function (Out, error) and capture its error or panic as failure
// - Recover: turn a non-cancel failure back into a value
// - Tee/TeeIf/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/error/cancel handlers
// - Join: run steps in sequence, cancelled when the context is done
package solo
