// Package chain provides a small fluent wrapper around result.Result[T] for
// building synchronous pipelines without branching on the variant at each
// step.
//
// Highlights:
// - Start/FromValue: begin a chain from a Result[T] or a plain value
// - Then/ThenTry: compose result-returning or (T, error)-returning steps
// - Map/MapFailure: transform one side of the result
// - Or/OrElse/Ensure: recovery and success-side effects
// - Finally: collapse the chain into a concrete value via handlers
//
// Every step short-circuits on Failure: the callback is not invoked and the
// failure travels to the end of the chain unchanged. Type-changing steps are
// package functions (Then, Map, Try, Finally) because Go methods cannot
// introduce type parameters.
package chain
