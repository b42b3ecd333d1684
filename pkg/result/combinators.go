package result

// Map applies f to the success value and wraps the outcome in a new Success.
// A Failure passes through untouched and f is not invoked.
func Map[In, Out any](r Result[In], f func(In) Out) Result[Out] {
	if r.ok {
		return Success(f(r.value))
	}
	return Failure[Out](r.err)
}

// MapOr applies f to the success value, or returns def on a Failure. The
// error is not inspected and f is not invoked on a Failure.
func MapOr[In, Out any](r Result[In], def Out, f func(In) Out) Out {
	if r.ok {
		return f(r.value)
	}
	return def
}

// MapOrElse collapses the Result into a plain value: onSuccess on the value
// for a Success, onFailure on the error for a Failure.
func MapOrElse[In, Out any](r Result[In], onSuccess func(In) Out, onFailure func(error) Out) Out {
	if r.ok {
		return onSuccess(r.value)
	}
	return onFailure(r.err)
}

// MapFailure applies f to the error of a Failure and wraps the outcome in a
// new Failure. A Success passes through untouched and f is not invoked.
func (r Result[T]) MapFailure(f func(error) error) Result[T] {
	if r.ok {
		return r
	}
	return Failure[T](f(r.err))
}

// And returns other if r is a Success (r's value is discarded), or r's
// Failure otherwise. other is already constructed; use AndThen to defer
// evaluation to the success path.
func And[In, Out any](r Result[In], other Result[Out]) Result[Out] {
	if r.ok {
		return other
	}
	return Failure[Out](r.err)
}

// AndThen applies f to the success value, short-circuiting on the first
// Failure: a Failure passes through untouched and f is not invoked.
func AndThen[In, Out any](r Result[In], f func(In) Result[Out]) Result[Out] {
	if r.ok {
		return f(r.value)
	}
	return Failure[Out](r.err)
}

// Or returns r if it is a Success, or other otherwise.
func (r Result[T]) Or(other Result[T]) Result[T] {
	if r.ok {
		return r
	}
	return other
}

// OrElse returns r if it is a Success, or f applied to the error otherwise.
// f is not invoked on a Success.
func (r Result[T]) OrElse(f func(error) Result[T]) Result[T] {
	if r.ok {
		return r
	}
	return f(r.err)
}
