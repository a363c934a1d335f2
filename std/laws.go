package std

import (
	"fmt"

	"justisgipson/monads/fperr"
)

// Law names as they appear in LawError.
const (
	LawRoundTrip          = "round trip"
	LawFunctorIdentity    = "functor identity"
	LawFunctorComposition = "functor composition"
	LawLeftIdentity       = "left identity"
	LawRightIdentity      = "right identity"
	LawAssociativity      = "associativity"
)

func lawCheck[T any](container, law string, got, want T) error {
	if Equal(got, want) {
		return nil
	}
	err := fperr.NewLawError(container, law, fmt.Sprint(got), fmt.Sprint(want))
	err.Msg = Diff(want, got)
	return err
}

// CheckRoundTrip verifies of(x).Unwrap() == x.
func CheckRoundTrip[C Pointed[U], U any](container string, x U, of func(U) C) error {
	return lawCheck(container, LawRoundTrip, of(x).Unwrap(), x)
}

// CheckFunctorIdentity verifies that mapping Id over c gives back c.
func CheckFunctorIdentity[C Pointed[U], U any](container string, c C, of func(U) C) error {
	return lawCheck(container, LawFunctorIdentity, Map(c, Id[U], of), c)
}

// CheckFunctorComposition verifies that mapping f then g equals mapping g after f once.
func CheckFunctorComposition[S Pointed[U], M Pointed[V], U, V, W, B any](
	container string,
	c S,
	f func(U) V,
	g func(V) W,
	ofM func(V) M,
	ofB func(W) B,
) error {
	got := Map(Map(c, f, ofM), g, ofB)
	want := Map(c, Compose(f, g), ofB)
	return lawCheck(container, LawFunctorComposition, got, want)
}

// CheckLeftIdentity verifies Chain(of(x), f) == f(x).
func CheckLeftIdentity[C Pointed[U], U, M any](container string, x U, of func(U) C, f func(U) M) error {
	return lawCheck(container, LawLeftIdentity, Chain(of(x), f), f(x))
}

// CheckRightIdentity verifies Chain(m, of) == m.
func CheckRightIdentity[C Pointed[U], U any](container string, m C, of func(U) C) error {
	return lawCheck(container, LawRightIdentity, Chain(m, of), m)
}

// CheckAssociativity verifies that chaining f then g equals chaining the composite once.
func CheckAssociativity[C Pointed[U], M1 Pointed[V], U, V, M2 any](container string, m C, f func(U) M1, g func(V) M2) error {
	got := Chain(Chain(m, f), g)
	want := Chain(m, func(x U) M2 {
		return Chain(f(x), g)
	})
	return lawCheck(container, LawAssociativity, got, want)
}
