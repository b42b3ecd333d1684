package result

import (
	"fmt"

	"github.com/zodiac-go/result/pkg/result/opt"
)

// Result holds either a success value of type T or an error, never both.
// The zero value is a Failure with a nil error; construct with Success,
// Failure or From instead.
type Result[T any] struct {
	value T
	err   error
	ok    bool
}

// Success wraps v as a successful Result. No validation is performed.
func Success[T any](v T) Result[T] {
	return Result[T]{value: v, ok: true}
}

// Failure wraps err as a failed Result. No validation is performed.
func Failure[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// From converts a conventional (value, error) pair into a Result:
// Failure if err is non-nil, Success of v otherwise.
func From[T any](v T, err error) Result[T] {
	if err != nil {
		return Failure[T](err)
	}
	return Success(v)
}

// IsSuccess reports whether the Result is a Success.
func (r Result[T]) IsSuccess() bool {
	return r.ok
}

// IsSuccessAnd reports whether the Result is a Success whose value satisfies
// pred. The predicate is not invoked on a Failure.
func (r Result[T]) IsSuccessAnd(pred func(T) bool) bool {
	return r.ok && pred(r.value)
}

// IsFailure reports whether the Result is a Failure.
func (r Result[T]) IsFailure() bool {
	return !r.ok
}

// IsFailureAnd reports whether the Result is a Failure whose error satisfies
// pred. The predicate is not invoked on a Success.
func (r Result[T]) IsFailureAnd(pred func(error) bool) bool {
	return !r.ok && pred(r.err)
}

// Value returns the success value as an Option: Some on Success, None on
// Failure.
func (r Result[T]) Value() opt.Option[T] {
	if r.ok {
		return opt.Some(r.value)
	}
	return opt.None[T]()
}

// Err returns the error as an Option: Some on Failure, None on Success.
func (r Result[T]) Err() opt.Option[error] {
	if r.ok {
		return opt.None[error]()
	}
	return opt.Some(r.err)
}

func (r Result[T]) String() string {
	if r.ok {
		return fmt.Sprintf("Success(%v)", r.value)
	}
	return fmt.Sprintf("Failure(%v)", r.err)
}
