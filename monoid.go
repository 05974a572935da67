// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monat

import (
	"golang.org/x/exp/constraints"
)

// Stock Monoid instances.

// Number constrains the numeric monoids.
type Number interface {
	constraints.Integer | constraints.Float
}

// StringMonoid is the monoid of strings under concatenation.
func StringMonoid() Monoid[string] {
	return Monoid[string]{
		ID:     func() string { return "" },
		Append: func(a, b string) string { return a + b },
	}
}

// SumMonoid is the monoid of numbers under addition.
func SumMonoid[N Number]() Monoid[N] {
	return Monoid[N]{
		ID:     func() N { return 0 },
		Append: func(a, b N) N { return a + b },
	}
}

// ProdMonoid is the monoid of numbers under multiplication.
func ProdMonoid[N Number]() Monoid[N] {
	return Monoid[N]{
		ID:     func() N { return 1 },
		Append: func(a, b N) N { return a * b },
	}
}

// AllMonoid is the monoid of booleans under conjunction.
func AllMonoid() Monoid[bool] {
	return Monoid[bool]{
		ID:     func() bool { return true },
		Append: func(a, b bool) bool { return a && b },
	}
}

// AnyMonoid is the monoid of booleans under disjunction.
func AnyMonoid() Monoid[bool] {
	return Monoid[bool]{
		ID:     func() bool { return false },
		Append: func(a, b bool) bool { return a || b },
	}
}

// ListMonoid is the monoid of slices under concatenation.
// Append copies; neither argument is mutated.
func ListMonoid[A any]() Monoid[[]A] {
	return Monoid[[]A]{
		ID: func() []A { return nil },
		Append: func(a, b []A) []A {
			out := make([]A, 0, len(a)+len(b))
			out = append(out, a...)
			return append(out, b...)
		},
	}
}

// UnitMonoid is the trivial monoid on the one-value type.
func UnitMonoid() Monoid[Unit] {
	return Monoid[Unit]{
		ID:     func() Unit { return Unit{} },
		Append: func(Unit, Unit) Unit { return Unit{} },
	}
}

// MaybeMonoid lifts a Monoid on A to a Monoid on Maybe[A].
// Nothing is the identity; two Just values append their payloads.
func MaybeMonoid[A any](m Monoid[A]) Monoid[Maybe[A]] {
	return Monoid[Maybe[A]]{
		ID: NothingOf[A],
		Append: func(a, b Maybe[A]) Maybe[A] {
			av, aok := a.Get()
			bv, bok := b.Get()
			switch {
			case aok && bok:
				return Just(m.Append(av, bv))
			case aok:
				return a
			default:
				return b
			}
		},
	}
}

// MConcat folds a slice of monoid values into one, left to right,
// starting from the identity.
func MConcat[A any](m Monoid[A], xs []A) A {
	return FoldlList(xs, m.ID(), m.Append)
}
