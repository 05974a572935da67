// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monat

// Maybe represents an optional value: Just a value, or Nothing.
// The zero value is Nothing.
type Maybe[A any] struct {
	isJust bool
	val    A
}

// Just creates a Maybe holding a value.
func Just[A any](a A) Maybe[A] {
	return Maybe[A]{isJust: true, val: a}
}

// NothingOf creates an empty Maybe.
func NothingOf[A any]() Maybe[A] {
	return Maybe[A]{}
}

// IsJust returns true if this Maybe holds a value.
func (m Maybe[A]) IsJust() bool {
	return m.isJust
}

// IsNothing returns true if this Maybe is empty.
func (m Maybe[A]) IsNothing() bool {
	return !m.isJust
}

// Get returns the value and true, or zero and false.
func (m Maybe[A]) Get() (A, bool) {
	if m.isJust {
		return m.val, true
	}
	var zero A
	return zero, false
}

// MatchMaybe pattern matches on the Maybe, calling onNothing or onJust.
func MatchMaybe[A, T any](m Maybe[A], onNothing func() T, onJust func(A) T) T {
	if m.isJust {
		return onJust(m.val)
	}
	return onNothing()
}

// MapMaybe applies a function to the value, if present.
func MapMaybe[A, B any](m Maybe[A], f func(A) B) Maybe[B] {
	if m.isJust {
		return Just(f(m.val))
	}
	return NothingOf[B]()
}

// FlatMapMaybe sequences two Maybe computations.
func FlatMapMaybe[A, B any](m Maybe[A], f func(A) Maybe[B]) Maybe[B] {
	if m.isJust {
		return f(m.val)
	}
	return NothingOf[B]()
}

// ApplyMaybe applies a wrapped function to a wrapped argument.
// Nothing on either side yields Nothing.
func ApplyMaybe[A, B any](mf Maybe[func(A) B], ma Maybe[A]) Maybe[B] {
	if !mf.isJust {
		return NothingOf[B]()
	}
	return MapMaybe(ma, mf.val)
}

// FoldlMaybe folds the zero-or-one element into the accumulator.
func FoldlMaybe[A, Z any](m Maybe[A], z Z, f func(Z, A) Z) Z {
	if m.isJust {
		return f(z, m.val)
	}
	return z
}

// FoldrMaybe is FoldlMaybe with the step arguments flipped.
func FoldrMaybe[A, Z any](m Maybe[A], z Z, f func(A, Z) Z) Z {
	if m.isJust {
		return f(m.val, z)
	}
	return z
}

// MaybeFunctor returns the Functor descriptor for Maybe.
func MaybeFunctor[A, B any]() Functor[Maybe[A], Maybe[B], A, B] {
	return Functor[Maybe[A], Maybe[B], A, B]{Map: MapMaybe[A, B]}
}

// MaybeApplicative returns the Applicative descriptor for Maybe.
func MaybeApplicative[A, B any]() Applicative[Maybe[A], Maybe[B], Maybe[func(A) B], A, B] {
	return Applicative[Maybe[A], Maybe[B], Maybe[func(A) B], A, B]{
		Pure:  Just[B],
		Apply: ApplyMaybe[A, B],
		Map:   MapMaybe[A, B],
	}
}

// MaybeMonad returns the Monad descriptor for Maybe.
func MaybeMonad[A, B any]() Monad[Maybe[A], Maybe[B], A, B] {
	return Monad[Maybe[A], Maybe[B], A, B]{
		Pure: Just[B],
		Bind: FlatMapMaybe[A, B],
	}
}

// MaybeFoldable returns the Foldable descriptor for Maybe.
func MaybeFoldable[A, Z any]() Foldable[Maybe[A], A, Z] {
	return Foldable[Maybe[A], A, Z]{
		Foldl: FoldlMaybe[A, Z],
		Foldr: FoldrMaybe[A, Z],
	}
}
