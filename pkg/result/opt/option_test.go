package opt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSomeAndNone(t *testing.T) {
	require := require.New(t)

	s := Some(5)
	require.True(s.IsSome())
	require.False(s.IsNone())
	v, ok := s.Get()
	require.True(ok)
	require.Equal(5, v)
	require.Equal(5, s.Unwrap())
	require.Equal(5, s.UnwrapOr(9))

	n := None[int]()
	require.False(n.IsSome())
	require.True(n.IsNone())
	_, ok = n.Get()
	require.False(ok)
	require.Equal(9, n.UnwrapOr(9))
	require.Panics(func() { n.Unwrap() })
}

func TestMap(t *testing.T) {
	require := require.New(t)

	require.Equal(Some(3), Map(Some("foo"), func(s string) int { return len(s) }))
	require.Equal(None[int](), Map(None[string](), func(s string) int {
		t.Fatal("mapper invoked on None")
		return 0
	}))
}
