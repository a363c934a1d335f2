package std

import (
	"reflect"

	"github.com/google/go-cmp/cmp"
)

// exportAll lets cmp look inside structs with unexported fields that have no Equal method.
var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

// Copy returns v.Copy() when T is Copyable and v itself otherwise.
// Containers are values, so assignment already gives an independent copy.
func Copy[T any](v T) T {
	if c, ok := any(v).(Copyable[T]); ok {
		return c.Copy()
	}
	return v
}

// Equal reports structural equality, preferring an Equatable implementation.
func Equal[T any](v1, v2 T) bool {
	if e, ok := any(v1).(Equatable[T]); ok {
		return e.Equal(v2)
	}
	return cmp.Equal(v1, v2, exportAll)
}

// Diff renders the difference between two values, or "" when they are equal.
func Diff[T any](want, got T) string {
	if Equal(want, got) {
		return ""
	}
	return cmp.Diff(want, got, exportAll)
}
