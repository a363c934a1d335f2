package std

// Map and Chain are provided as functions because Go methods cannot have type parameters.
// The container methods of the same name delegate here with their own constructor.

// Of wraps unit with the given constructor.
func Of[U, C any](unit U, of func(U) C) C {
	return of(unit)
}

// Map unwraps src, applies f and rewraps the result with of.
// The target container is whatever of builds, so Map can change the container type.
func Map[S Pointed[U], U, V, B any](src S, f func(U) V, of func(V) B) B {
	return of(f(src.Unwrap()))
}

// Chain unwraps src and returns the container produced by f as is.
func Chain[S Pointed[U], U, M any](src S, f func(U) M) M {
	return f(src.Unwrap())
}

// Id returns its argument.
func Id[T any](v T) T {
	return v
}

// Compose returns g after f.
func Compose[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}
