// Package result provides Result[T]: an immutable value that is either a
// Success holding a T or a Failure holding an error, plus combinators for
// composing fallible steps without sentinel values or panic-based control
// flow.
//
// Highlights:
// - Success/Failure/From: construct a Result
// - IsSuccess/IsFailure and the *And predicate forms: inspect the variant
// - Value/Err: extract either side as an opt.Option
// - Map/MapOr/MapOrElse/MapFailure: transform one side, thread the other
// - And/AndThen/Or/OrElse: chain fallible steps with short-circuiting
// - Unwrap/Expect and friends: extract or panic with an UnwrapError
//
// Results are plain values: operations return new Results and never mutate
// the receiver, so a Result may be shared across goroutines freely.
//
// Combinators never recover panics raised by caller-supplied callbacks, and
// never convert them into Failures. A Failure is only ever constructed
// explicitly. Callback panics are defects and surface to the caller as-is.
package result
