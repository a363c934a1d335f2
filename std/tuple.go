package std

import "fmt"

// Tuple is the unit type of Pair.
type Tuple[A, B any] struct {
	V1 A
	V2 B
}

func NewTuple[A, B any](a A, b B) Tuple[A, B] {
	return Tuple[A, B]{V1: a, V2: b}
}

// Unpack returns both members as multiple return values.
func (t Tuple[A, B]) Unpack() (A, B) {
	return t.V1, t.V2
}

// Swap returns the tuple with its members exchanged.
func (t Tuple[A, B]) Swap() Tuple[B, A] {
	return NewTuple(t.V2, t.V1)
}

func (t Tuple[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", t.V1, t.V2)
}

func (t Tuple[A, B]) Copy() Tuple[A, B] {
	return NewTuple(Copy(t.V1), Copy(t.V2))
}

func (t Tuple[A, B]) Equal(other Tuple[A, B]) bool {
	return Equal(t.V1, other.V1) && Equal(t.V2, other.V2)
}

var _ Copyable[Tuple[int, int]] = Tuple[int, int]{}
var _ Equatable[Tuple[int, int]] = Tuple[int, int]{}
