// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monat

// LazyStatus reports the state of a deferred computation.
type LazyStatus int

const (
	// LazyDeferred means the computation has not been performed yet.
	LazyDeferred LazyStatus = iota
	// LazyReady means the value is computed and memoized.
	LazyReady
)

// Lazy is a shared, memoized, on-demand computation cell.
//
// Copies of a Lazy alias the same underlying cell, so the wrapped
// computation runs at most once for every set of copies derived from the
// same Defer call, no matter which copy forces first. A computation no copy
// ever forces never runs at all.
//
// The cell is Either a pending computation (Left) or the computed value
// (Right). The transition Left→Right happens exactly once and never
// reverts.
//
// Forcing is not synchronized: forcing the same cell from two goroutines
// concurrently is a data race. Callers that share cells across goroutines
// must serialize forcing externally.
type Lazy[A any] struct {
	cell *Either[func() A, A]
}

// Defer creates a Lazy from a computation without invoking it.
func Defer[A any](f func() A) Lazy[A] {
	c := Left[func() A, A](f)
	return Lazy[A]{cell: &c}
}

// Force returns the value, computing and memoizing it on first call.
// The transition to ready happens only after the computation returns:
// a panicking computation propagates to the caller and leaves the cell
// deferred, so a later Force re-attempts the same computation.
func (l Lazy[A]) Force() A {
	if v, ok := l.cell.GetRight(); ok {
		return v
	}
	f, _ := l.cell.GetLeft()
	v := f()
	*l.cell = Right[func() A](v)
	return v
}

// Status reports whether the cell is still deferred or already computed.
// It never forces the computation.
func (l Lazy[A]) Status() LazyStatus {
	if l.cell.IsRight() {
		return LazyReady
	}
	return LazyDeferred
}

// PureLazy creates an already-known deferred value.
// Useful for algorithms generalized over any monad.
func PureLazy[A any](a A) Lazy[A] {
	return Defer(func() A { return a })
}

// MapLazy defers the application of f to the value of l.
// Neither l nor the result is forced; the whole chain runs when the
// returned cell is forced (though l may be forced earlier by an unrelated
// copy, cells being shared).
func MapLazy[A, B any](l Lazy[A], f func(A) B) Lazy[B] {
	return Defer(func() B { return f(l.Force()) })
}

// FlatMapLazy sequences two deferred computations.
// Nothing runs until the returned cell is forced.
func FlatMapLazy[A, B any](l Lazy[A], f func(A) Lazy[B]) Lazy[B] {
	return Defer(func() B { return f(l.Force()).Force() })
}

// ApplyLazy applies a deferred function to a deferred argument, deferred.
func ApplyLazy[A, B any](lf Lazy[func(A) B], la Lazy[A]) Lazy[B] {
	return Defer(func() B { return lf.Force()(la.Force()) })
}

// EqLazy forces both cells and compares the values.
func EqLazy[A comparable](l1, l2 Lazy[A]) bool {
	return l1.Force() == l2.Force()
}

// LazyFunctor returns the Functor descriptor for Lazy.
func LazyFunctor[A, B any]() Functor[Lazy[A], Lazy[B], A, B] {
	return Functor[Lazy[A], Lazy[B], A, B]{Map: MapLazy[A, B]}
}

// LazyApplicative returns the Applicative descriptor for Lazy.
func LazyApplicative[A, B any]() Applicative[Lazy[A], Lazy[B], Lazy[func(A) B], A, B] {
	return Applicative[Lazy[A], Lazy[B], Lazy[func(A) B], A, B]{
		Pure:  PureLazy[B],
		Apply: ApplyLazy[A, B],
		Map:   MapLazy[A, B],
	}
}

// LazyMonad returns the Monad descriptor for Lazy.
func LazyMonad[A, B any]() Monad[Lazy[A], Lazy[B], A, B] {
	return Monad[Lazy[A], Lazy[B], A, B]{
		Pure: PureLazy[B],
		Bind: FlatMapLazy[A, B],
	}
}

// LazyMonoid lifts a Monoid on A to a Monoid on Lazy[A].
// ID and Append are themselves deferred: appending two cells forces
// neither, only forcing the result does.
func LazyMonoid[A any](m Monoid[A]) Monoid[Lazy[A]] {
	return Monoid[Lazy[A]]{
		ID: func() Lazy[A] {
			return Defer(m.ID)
		},
		Append: func(l1, l2 Lazy[A]) Lazy[A] {
			return Defer(func() A { return m.Append(l1.Force(), l2.Force()) })
		},
	}
}
