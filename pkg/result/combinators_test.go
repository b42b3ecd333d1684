package result

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	require := require.New(t)

	require.Equal(Success(4), Map(Success(2), func(v int) int { return v * 2 }))
	require.Equal(Success("2"), Map(Success(2), func(v int) string {
		return fmt.Sprintf("%d", v)
	}))
}

func TestMapPreservesFailure(t *testing.T) {
	require := require.New(t)

	errTest := errors.New("boom")
	mapped := Map(Failure[int](errTest), func(int) int {
		panic("mapper invoked on failure")
	})
	require.True(mapped.IsFailure())
	require.Same(errTest, mapped.UnwrapFailure())
}

func TestMapCallbackPanicPropagates(t *testing.T) {
	require := require.New(t)

	boom := errors.New("defect in mapper")
	defer func() {
		// the exact panic value must surface, not a Failure and not a wrapper
		require.Same(boom, recover())
	}()
	Map(Success(2), func(int) int { panic(boom) })
	t.Fatal("panic did not propagate")
}

func TestMapOr(t *testing.T) {
	require := require.New(t)

	require.Equal(3, MapOr(Success("foo"), 42, func(s string) int { return len(s) }))
	require.Equal(42, MapOr(Failure[string](errors.New("boom")), 42, func(s string) int {
		t.Fatal("mapper invoked on failure")
		return 0
	}))
}

func TestMapOrElse(t *testing.T) {
	require := require.New(t)

	got := MapOrElse(Success(2),
		func(v int) string { return fmt.Sprintf("val:%d", v) },
		func(err error) string { return "err:" + err.Error() })
	require.Equal("val:2", got)

	got = MapOrElse(Failure[int](errors.New("boom")),
		func(v int) string { return fmt.Sprintf("val:%d", v) },
		func(err error) string { return "err:" + err.Error() })
	require.Equal("err:boom", got)
}

func TestMapFailure(t *testing.T) {
	require := require.New(t)

	errTest := errors.New("boom")
	wrapped := Failure[int](errTest).MapFailure(func(err error) error {
		return fmt.Errorf("wrapped: %w", err)
	})
	require.True(wrapped.IsFailure())
	require.ErrorIs(wrapped.UnwrapFailure(), errTest)
	require.True(strings.HasPrefix(wrapped.UnwrapFailure().Error(), "wrapped: "))

	s := Success(2).MapFailure(func(error) error {
		t.Fatal("mapper invoked on success")
		return nil
	})
	require.Equal(Success(2), s)
}

func TestAnd(t *testing.T) {
	require := require.New(t)

	require.Equal(Success("foo"), And(Success(2), Success("foo")))

	errTest := errors.New("boom")
	require.Equal(Failure[string](errTest), And(Failure[int](errTest), Success("foo")))

	errOther := errors.New("late")
	// the receiver's failure wins over the argument's
	require.Equal(Failure[string](errTest), And(Failure[int](errTest), Failure[string](errOther)))
}

func TestAndThen(t *testing.T) {
	require := require.New(t)

	parse := func(s string) Result[int] {
		if s == "" {
			return Failure[int](errors.New("empty"))
		}
		return Success(len(s))
	}

	require.Equal(Success(3), AndThen(Success("foo"), parse))
	require.True(AndThen(Success(""), parse).IsFailure())
}

func TestAndThenShortCircuits(t *testing.T) {
	require := require.New(t)

	errTest := errors.New("boom")
	calls := 0
	got := AndThen(Failure[int](errTest), func(v int) Result[int] {
		calls++
		return Success(v + 1)
	})
	require.Equal(0, calls)
	require.Equal(Failure[int](errTest), got)
}

func TestOr(t *testing.T) {
	require := require.New(t)

	require.Equal(Success(2), Success(2).Or(Success(9)))
	require.Equal(Success(9), Failure[int](errors.New("boom")).Or(Success(9)))

	errLast := errors.New("last")
	require.Equal(Failure[int](errLast),
		Failure[int](errors.New("first")).Or(Failure[int](errLast)))
}

func TestOrElse(t *testing.T) {
	require := require.New(t)

	require.Equal(Success(2), Success(2).OrElse(func(error) Result[int] {
		t.Fatal("recovery invoked on success")
		return Success(0)
	}))

	errTest := errors.New("boom")
	got := Failure[int](errTest).OrElse(func(err error) Result[int] {
		require.Same(errTest, err)
		return Success(9)
	})
	require.Equal(Success(9), got)
}
