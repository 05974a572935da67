// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monat

// Either represents a value that is either Left (error) or Right (success).
// Constructed via Left or Right; the tag and active payload stay consistent
// for the lifetime of the value. The zero value is Left of L's zero value.
type Either[L, A any] struct {
	isRight bool
	left    L
	right   A
}

// Left creates a Left (error) value.
func Left[L, A any](l L) Either[L, A] {
	return Either[L, A]{isRight: false, left: l}
}

// Right creates a Right (success) value.
func Right[L, A any](a A) Either[L, A] {
	return Either[L, A]{isRight: true, right: a}
}

// IsRight returns true if this is a Right value.
func (e Either[L, A]) IsRight() bool {
	return e.isRight
}

// IsLeft returns true if this is a Left value.
func (e Either[L, A]) IsLeft() bool {
	return !e.isRight
}

// GetRight returns the Right value and true, or zero and false.
func (e Either[L, A]) GetRight() (A, bool) {
	if e.isRight {
		return e.right, true
	}
	var zero A
	return zero, false
}

// GetLeft returns the Left value and true, or zero and false.
func (e Either[L, A]) GetLeft() (L, bool) {
	if !e.isRight {
		return e.left, true
	}
	var zero L
	return zero, false
}

// MatchEither pattern matches on the Either, calling onLeft or onRight.
func MatchEither[L, A, T any](e Either[L, A], onLeft func(L) T, onRight func(A) T) T {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// MapEither applies a function to the Right value.
func MapEither[L, A, B any](e Either[L, A], f func(A) B) Either[L, B] {
	if e.isRight {
		return Right[L](f(e.right))
	}
	return Left[L, B](e.left)
}

// FlatMapEither sequences two Either computations.
func FlatMapEither[L, A, B any](e Either[L, A], f func(A) Either[L, B]) Either[L, B] {
	if e.isRight {
		return f(e.right)
	}
	return Left[L, B](e.left)
}

// ApplyEither applies a wrapped function to a wrapped argument.
// The first Left encountered wins; ef is inspected before ea.
func ApplyEither[L, A, B any](ef Either[L, func(A) B], ea Either[L, A]) Either[L, B] {
	if !ef.isRight {
		return Left[L, B](ef.left)
	}
	return MapEither(ea, ef.right)
}

// MapLeftEither applies a function to the Left value.
func MapLeftEither[L, M, A any](e Either[L, A], f func(L) M) Either[M, A] {
	if e.isRight {
		return Right[M](e.right)
	}
	return Left[M, A](f(e.left))
}

// PureEither lifts a value into a Right.
// Alias of Right kept for uniformity with the other Pure constructors.
func PureEither[L, A any](a A) Either[L, A] {
	return Right[L, A](a)
}

// FoldlEither folds the zero-or-one Right element into the accumulator.
// A Left value contributes nothing: the accumulator passes through.
func FoldlEither[L, A, Z any](e Either[L, A], z Z, f func(Z, A) Z) Z {
	if e.isRight {
		return f(z, e.right)
	}
	return z
}

// FoldrEither is FoldlEither with the step arguments flipped.
func FoldrEither[L, A, Z any](e Either[L, A], z Z, f func(A, Z) Z) Z {
	if e.isRight {
		return f(e.right, z)
	}
	return z
}

// EitherFunctor returns the Functor descriptor for Either over L.
func EitherFunctor[L, A, B any]() Functor[Either[L, A], Either[L, B], A, B] {
	return Functor[Either[L, A], Either[L, B], A, B]{Map: MapEither[L, A, B]}
}

// EitherApplicative returns the Applicative descriptor for Either over L.
func EitherApplicative[L, A, B any]() Applicative[Either[L, A], Either[L, B], Either[L, func(A) B], A, B] {
	return Applicative[Either[L, A], Either[L, B], Either[L, func(A) B], A, B]{
		Pure:  PureEither[L, B],
		Apply: ApplyEither[L, A, B],
		Map:   MapEither[L, A, B],
	}
}

// EitherMonad returns the Monad descriptor for Either over L.
func EitherMonad[L, A, B any]() Monad[Either[L, A], Either[L, B], A, B] {
	return Monad[Either[L, A], Either[L, B], A, B]{
		Pure: PureEither[L, B],
		Bind: FlatMapEither[L, A, B],
	}
}

// EitherFoldable returns the Foldable descriptor for Either over L.
func EitherFoldable[L, A, Z any]() Foldable[Either[L, A], A, Z] {
	return Foldable[Either[L, A], A, Z]{
		Foldl: FoldlEither[L, A, Z],
		Foldr: FoldrEither[L, A, Z],
	}
}
