package result

// UnwrapError is the panic payload for extraction on the wrong variant. When
// extraction failed on a Failure, Cause holds the original error; extracting
// an absent failure from a Success leaves Cause nil, since no error ever
// existed.
type UnwrapError struct {
	Message string
	Cause   error
}

func (e *UnwrapError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *UnwrapError) Unwrap() error {
	return e.Cause
}

// Expect returns the success value. On a Failure it panics with an
// *UnwrapError carrying msg and the original error as cause.
func (r Result[T]) Expect(msg string) T {
	if r.ok {
		return r.value
	}
	panic(&UnwrapError{Message: msg, Cause: r.err})
}

// Unwrap returns the success value. On a Failure it panics with an
// *UnwrapError whose cause is the original error.
func (r Result[T]) Unwrap() T {
	if r.ok {
		return r.value
	}
	panic(&UnwrapError{Message: "called Unwrap on a failure result", Cause: r.err})
}

// ExpectFailure returns the error of a Failure. On a Success it panics with
// an *UnwrapError carrying msg and no cause.
func (r Result[T]) ExpectFailure(msg string) error {
	if !r.ok {
		return r.err
	}
	panic(&UnwrapError{Message: msg})
}

// UnwrapFailure returns the error of a Failure. On a Success it panics with
// an *UnwrapError carrying a fixed message and no cause.
func (r Result[T]) UnwrapFailure() error {
	if !r.ok {
		return r.err
	}
	panic(&UnwrapError{Message: "no failure value present"})
}

// UnwrapOr returns the success value, or def on a Failure.
func (r Result[T]) UnwrapOr(def T) T {
	if r.ok {
		return r.value
	}
	return def
}

// UnwrapOrElse returns the success value, or f applied to the error on a
// Failure.
func (r Result[T]) UnwrapOrElse(f func(error) T) T {
	if r.ok {
		return r.value
	}
	return f(r.err)
}
