package std

import "fmt"

// Pair holds two values that are treated together as one Tuple unit.
// Mapping functions given to a Pair take and return a Tuple.
type Pair[A, B any] struct {
	first  A
	second B
}

// PairOf stores the tuple members separately. It is the Pair constructor.
func PairOf[A, B any](t Tuple[A, B]) Pair[A, B] {
	return Pair[A, B]{first: t.V1, second: t.V2}
}

func NewPair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{first: a, second: b}
}

// Unwrap reassembles the members into a Tuple.
func (p Pair[A, B]) Unwrap() Tuple[A, B] {
	return NewTuple(p.first, p.second)
}

func (p Pair[A, B]) First() A {
	return p.first
}

func (p Pair[A, B]) Second() B {
	return p.second
}

func (p Pair[A, B]) Unpack() (A, B) {
	return p.first, p.second
}

func (p Pair[A, B]) Map(f func(Tuple[A, B]) Tuple[A, B]) Pair[A, B] {
	return Map(p, f, PairOf[A, B])
}

func (p Pair[A, B]) Chain(f func(Tuple[A, B]) Pair[A, B]) Pair[A, B] {
	return Chain(p, f)
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("Pair(%v, %v)", p.first, p.second)
}

func (p Pair[A, B]) Copy() Pair[A, B] {
	return NewPair(Copy(p.first), Copy(p.second))
}

func (p Pair[A, B]) Equal(other Pair[A, B]) bool {
	return Equal(p.first, other.first) && Equal(p.second, other.second)
}

var _ Monad[Tuple[int, int], Pair[int, int]] = Pair[int, int]{}
var _ Copyable[Pair[int, int]] = Pair[int, int]{}
var _ Equatable[Pair[int, int]] = Pair[int, int]{}
var _ fmt.Stringer = Pair[int, int]{}
