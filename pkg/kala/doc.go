// Package kala provides two immutable sum types.
//
// Either[A, B] holds a Left A or a Right B:
// - LeftOf/RightOf: construct
// - GetLeft/GetRight, LeftValue/RightValue, Left()/Right() projections: access
// - MapLeft/MapRight/FlatMapRight/FoldEither/Swap: transform
//
// Try[T] holds a Success T or a Failure error:
// - SuccessOf/FailureOf: construct
// - Run/RunWith/RunE/RunContext: invoke an operation and capture its outcome
// - Map/FlatMap/Recover/RecoverWith/Fold/Flatten: transform
//
// Run recovers panics into Failure values holding a *PanicError. Panic values
// classified as fatal by the FatalPolicy (IsFatal by default) are re-panicked.
// Runtime fatal errors such as out of memory cannot be recovered in Go and
// always terminate the process.
//
// For context-aware composition of Try values see packages solo and chain;
// for a right-biased fluent Either see package tiny.
package kala
