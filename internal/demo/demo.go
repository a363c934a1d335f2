// Package demo prints the Identity and Pair walkthrough.
package demo

import (
	"fmt"
	"io"

	"justisgipson/monads/std"
)

// Steps returns the three Identity states followed by the three Pair states.
func Steps() []fmt.Stringer {
	id1 := std.NewIdentity(5)
	id2 := id1.Map(func(x int) int { return x * 3 })
	id3 := id2.Chain(func(x int) std.Identity[int] { return std.NewIdentity(x - 3) })

	p1 := std.PairOf(std.NewTuple(1, 2))
	p2 := p1.Map(func(t std.Tuple[int, int]) std.Tuple[int, int] {
		a, b := t.Unpack()
		return std.NewTuple(a*2, b+3)
	})
	p3 := p2.Chain(func(t std.Tuple[int, int]) std.Pair[int, int] {
		a, b := t.Unpack()
		return std.PairOf(std.NewTuple(b, a))
	})

	return []fmt.Stringer{id1, id2, id3, p1, p2, p3}
}

// Run writes every step to w, one per line.
func Run(w io.Writer) error {
	for _, s := range Steps() {
		if _, err := fmt.Fprintln(w, s); err != nil {
			return fmt.Errorf("write %s: %w", s, err)
		}
	}
	return nil
}
