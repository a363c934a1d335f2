package std

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"justisgipson/monads/fperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func double(x int) int { return x * 2 }

func incr(x int) int { return x + 1 }

func swapTuple(t Tuple[int, int]) Tuple[int, int] { return t.Swap() }

func sumTuple(t Tuple[int, int]) Tuple[int, int] { return NewTuple(t.V1+t.V2, t.V2) }

func TestRoundTripLaw(t *testing.T) {
	for _, x := range []int{0, 1, -7, 1 << 20} {
		assert.NoError(t, CheckRoundTrip("Identity[int]", x, NewIdentity[int]))
		assert.NoError(t, CheckRoundTrip("Pair[int, int]", NewTuple(x, -x), PairOf[int, int]))
	}
	assert.NoError(t, CheckRoundTrip("Identity[string]", "", NewIdentity[string]))
}

func TestFunctorLaws(t *testing.T) {
	t.Run("Identity", func(t *testing.T) {
		for _, x := range []int{0, 5, -3} {
			c := NewIdentity(x)
			assert.NoError(t, CheckFunctorIdentity("Identity[int]", c, NewIdentity[int]))
			assert.NoError(t, CheckFunctorComposition("Identity[int]", c, double, incr, NewIdentity[int], NewIdentity[int]))
			assert.NoError(t, CheckFunctorComposition("Identity[int]", c, strconv.Itoa, strings.ToUpper, NewIdentity[string], NewIdentity[string]))
		}
	})

	t.Run("Pair", func(t *testing.T) {
		for _, p := range []Pair[int, int]{NewPair(1, 2), NewPair(0, 0), NewPair(-4, 9)} {
			assert.NoError(t, CheckFunctorIdentity("Pair[int, int]", p, PairOf[int, int]))
			assert.NoError(t, CheckFunctorComposition("Pair[int, int]", p, swapTuple, sumTuple, PairOf[int, int], PairOf[int, int]))
		}
	})

	t.Run("AcrossContainers", func(t *testing.T) {
		toPair := func(x int) Tuple[int, int] { return NewTuple(x, x) }
		assert.NoError(t, CheckFunctorComposition("Identity[int]", NewIdentity(4), toPair, swapTuple, PairOf[int, int], PairOf[int, int]))
	})
}

func TestMonadLaws(t *testing.T) {
	halve := func(x int) Identity[int] { return NewIdentity(x / 2) }
	show := func(x int) Identity[string] { return NewIdentity(strconv.Itoa(x)) }
	swap := func(t Tuple[int, int]) Pair[int, int] { return PairOf(t.Swap()) }
	spread := func(t Tuple[int, int]) Pair[int, int] { return NewPair(t.V1-1, t.V2+1) }

	t.Run("Identity", func(t *testing.T) {
		for _, x := range []int{0, 5, 12} {
			assert.NoError(t, CheckLeftIdentity("Identity[int]", x, NewIdentity[int], halve))
			assert.NoError(t, CheckRightIdentity("Identity[int]", NewIdentity(x), NewIdentity[int]))
			assert.NoError(t, CheckAssociativity("Identity[int]", NewIdentity(x), halve, show))
		}
	})

	t.Run("Pair", func(t *testing.T) {
		for _, p := range []Pair[int, int]{NewPair(1, 2), NewPair(5, 2)} {
			assert.NoError(t, CheckLeftIdentity("Pair[int, int]", p.Unwrap(), PairOf[int, int], swap))
			assert.NoError(t, CheckRightIdentity("Pair[int, int]", p, PairOf[int, int]))
			assert.NoError(t, CheckAssociativity("Pair[int, int]", p, swap, spread))
		}
	})
}

func TestLawViolations(t *testing.T) {
	// A constructor that drops its input breaks every law that goes through it.
	broken := func(int) Identity[int] { return NewIdentity(0) }

	t.Run("RoundTrip", func(t *testing.T) {
		err := CheckRoundTrip("Identity[int]", 3, broken)
		require.Error(t, err)

		var lawErr *fperr.LawError
		require.True(t, errors.As(err, &lawErr))
		assert.Equal(t, LawRoundTrip, lawErr.Law)
		assert.Equal(t, "0", lawErr.Got)
		assert.Equal(t, "3", lawErr.Want)
		assert.Equal(t, fperr.TypeLaw, lawErr.Type())
	})

	t.Run("FunctorIdentity", func(t *testing.T) {
		err := CheckFunctorIdentity("Identity[int]", NewIdentity(3), broken)
		var lawErr *fperr.LawError
		require.True(t, errors.As(err, &lawErr))
		assert.Equal(t, LawFunctorIdentity, lawErr.Law)
		assert.Equal(t, "Identity(0)", lawErr.Got)
		assert.Equal(t, "Identity(3)", lawErr.Want)
	})

	t.Run("RightIdentity", func(t *testing.T) {
		err := CheckRightIdentity("Identity[int]", NewIdentity(3), broken)
		var lawErr *fperr.LawError
		require.True(t, errors.As(err, &lawErr))
		assert.Equal(t, LawRightIdentity, lawErr.Law)
		assert.Contains(t, err.Error(), "Identity[int]: right identity")
	})

	t.Run("LeftIdentityHolds", func(t *testing.T) {
		// Left identity only fails when the constructor loses information the function reads.
		assert.NoError(t, CheckLeftIdentity("Identity[int]", 0, broken, NewIdentity[int]))
		assert.Error(t, CheckLeftIdentity("Identity[int]", 3, broken, NewIdentity[int]))
	})
}

func TestCompose(t *testing.T) {
	h := Compose(double, strconv.Itoa)
	assert.Equal(t, "10", h(5))
	assert.Equal(t, 7, Id(7))
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(NewIdentity(1), NewIdentity(1)))
	assert.True(t, Equal([]int{1, 2}, []int{1, 2}))
	assert.False(t, Equal(map[string]int{"a": 1}, map[string]int{"a": 2}))
	assert.Empty(t, Diff(NewPair(1, 2), NewPair(1, 2)))
	assert.NotEmpty(t, Diff(NewPair(1, 2), NewPair(2, 1)))
	assert.Equal(t, 3, Copy(3))
}
