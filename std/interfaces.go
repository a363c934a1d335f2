package std

// Pointed is implemented by containers that can hand back the unit value they hold.
// The matching constructor is passed around separately as a Constructor.
type Pointed[U any] interface {
	Unwrap() U
}

// Constructor wraps a unit value into a container of type C.
type Constructor[U, C any] func(unit U) C

// Functor is a Pointed container that can map its unit without changing shape.
// Retyping maps go through the free function Map.
type Functor[U, Self any] interface {
	Pointed[U]
	Map(f func(U) U) Self
}

// Monad is a Functor that can sequence container-producing functions.
type Monad[U, Self any] interface {
	Functor[U, Self]
	Chain(f func(U) Self) Self
}

type Copyable[T any] interface {
	Copy() T
}

type Equatable[T any] interface {
	Equal(other T) bool
}
