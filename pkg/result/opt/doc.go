// Package opt provides a minimal Option[T]: a value that is either present
// (Some) or absent (None).
//
// Highlights:
// - Some/None: construct an Option
// - IsSome/IsNone: inspect presence
// - Get/Unwrap/UnwrapOr: extract the value
// - Map: transform a present value
//
// Option exists so accessors can report "maybe a value" without overloading
// nil or zero values; it carries no error channel of its own.
package opt
