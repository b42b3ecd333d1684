package chain

import (
	"github.com/zodiac-go/result/pkg/result"
)

// Chain wraps a result.Result to enable fluent composition.
type Chain[T any] struct {
	res result.Result[T]
}

// Start creates a chain from an existing Result.
func Start[T any](r result.Result[T]) Chain[T] {
	return Chain[T]{res: r}
}

// FromValue creates a chain from a successful value.
func FromValue[T any](v T) Chain[T] {
	return Start(result.Success(v))
}

// Result returns the underlying Result.
func (c Chain[T]) Result() result.Result[T] {
	return c.res
}

// Then composes a step that already returns a Result[T].
func (c Chain[T]) Then(onSuccess func(T) result.Result[T]) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T]{res: onSuccess(c.res.Unwrap())}
}

// ThenTry composes a step with a conventional (T, error) signature.
func (c Chain[T]) ThenTry(onSuccess func(T) (T, error)) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T]{res: result.From(onSuccess(c.res.Unwrap()))}
}

// Map transforms the successful value, keeping the chain's type.
func (c Chain[T]) Map(onSuccess func(T) T) Chain[T] {
	return Chain[T]{res: result.Map(c.res, onSuccess)}
}

// MapFailure transforms the error of a failed chain.
func (c Chain[T]) MapFailure(onFailure func(error) error) Chain[T] {
	return Chain[T]{res: c.res.MapFailure(onFailure)}
}

// Or returns c if it is successful, or the alternative chain otherwise.
func (c Chain[T]) Or(alternative Chain[T]) Chain[T] {
	return Chain[T]{res: c.res.Or(alternative.res)}
}

// OrElse recovers a failed chain by deriving a new Result from the error.
func (c Chain[T]) OrElse(onFailure func(error) result.Result[T]) Chain[T] {
	return Chain[T]{res: c.res.OrElse(onFailure)}
}

// Ensure runs a side effect on the successful value without changing the
// chain. It does nothing on a failed chain.
func (c Chain[T]) Ensure(onSuccess func(T)) Chain[T] {
	if c.res.IsSuccess() {
		onSuccess(c.res.Unwrap())
	}
	return c
}

// UnwrapOr collapses the chain to its value, or def on failure.
func (c Chain[T]) UnwrapOr(def T) T {
	return c.res.UnwrapOr(def)
}

// Then composes a step that switches the chain to a new value type.
func Then[In, Out any](c Chain[In], onSuccess func(In) result.Result[Out]) Chain[Out] {
	return Chain[Out]{res: result.AndThen(c.res, onSuccess)}
}

// Map transforms the successful value into a new value type.
func Map[In, Out any](c Chain[In], onSuccess func(In) Out) Chain[Out] {
	return Chain[Out]{res: result.Map(c.res, onSuccess)}
}

// Try composes a (Out, error)-returning step that switches the value type.
func Try[In, Out any](c Chain[In], onSuccess func(In) (Out, error)) Chain[Out] {
	return Then(c, func(in In) result.Result[Out] {
		return result.From(onSuccess(in))
	})
}

// Finally collapses the chain into a concrete value via handlers for either
// outcome.
func Finally[In, Out any](c Chain[In], onSuccess func(In) Out, onFailure func(error) Out) Out {
	return result.MapOrElse(c.res, onSuccess, onFailure)
}
