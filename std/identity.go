package std

import "fmt"

// Identity holds exactly one value.
type Identity[T any] struct {
	value T
}

func NewIdentity[T any](v T) Identity[T] {
	return Identity[T]{value: v}
}

func (i Identity[T]) Unwrap() T {
	return i.value
}

func (i Identity[T]) Map(f func(T) T) Identity[T] {
	return Map(i, f, NewIdentity[T])
}

func (i Identity[T]) Chain(f func(T) Identity[T]) Identity[T] {
	return Chain(i, f)
}

func (i Identity[T]) String() string {
	return fmt.Sprintf("Identity(%v)", i.value)
}

func (i Identity[T]) Copy() Identity[T] {
	return NewIdentity(Copy(i.value))
}

func (i Identity[T]) Equal(other Identity[T]) bool {
	return Equal(i.value, other.value)
}

var _ Monad[int, Identity[int]] = Identity[int]{}
var _ Copyable[Identity[int]] = Identity[int]{}
var _ Equatable[Identity[int]] = Identity[int]{}
var _ fmt.Stringer = Identity[int]{}
