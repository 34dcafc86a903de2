// Package tiny provides a minimal fluent Chain[L, R] for synchronous,
// right-biased composition of kala.Either[L, R] values.
//
// It parallels the chain package but keeps API surface very small:
// - Start/FromRight/FromLeft/FromTry: create a Chain
// - Then/ThenTry: compose Either-returning or error-returning functions
// - Map/MapLeft: transform one side
// - Or/And: pick among alternative chains
// - RepeatUntil/While: loop a step while the chain stays Right
// - Ensure: trigger side effects on either side
// - Finally: reduce to a concrete value via handlers
//
// Tiny is ideal for small services or tests where lightweight synchronous
// chaining improves readability.
package tiny
