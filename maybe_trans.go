// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monat

// The maybe transformer.
//
// MaybeT transforms any monadic base type M so that it also acts like the
// maybe monad: MaybeT[MA] wraps a value of the re-parametrised base
// MA = M[Maybe[A]] whose operations act on A and short-circuit on Nothing.
// It is the payload-free sibling of [EitherT]: Nothing carries no failure
// value, so the monoidal alternative needs no monoid on a Left type.

// MaybeT wraps a base-capability value whose element type is a Maybe.
// MA is the base type at element Maybe[A].
type MaybeT[MA any] struct {
	wrapped MA
}

// WrapMaybeT constructs a transform from the re-parametrised base value.
func WrapMaybeT[MA any](m MA) MaybeT[MA] {
	return MaybeT[MA]{wrapped: m}
}

// Unwrap returns the inner, transformed, base value.
func (m MaybeT[MA]) Unwrap() MA {
	return m.wrapped
}

// PureMaybeT lifts a plain value into the transform: first into a Just,
// then into the base via its pure.
func PureMaybeT[A, MA any](pure func(Maybe[A]) MA, a A) MaybeT[MA] {
	return MaybeT[MA]{wrapped: pure(Just(a))}
}

// MapMaybeT maps f over the Just case inside the base's own map.
func MapMaybeT[A, B, MA, MB any](
	base Functor[MA, MB, Maybe[A], Maybe[B]],
	m MaybeT[MA],
	f func(A) B,
) MaybeT[MB] {
	return MaybeT[MB]{wrapped: base.Map(m.wrapped, func(ma Maybe[A]) Maybe[B] {
		return MapMaybe(ma, f)
	})}
}

// BindMaybeT sequences the transform with a continuation that returns the
// transform itself. Nothing short-circuits without invoking the
// continuation.
func BindMaybeT[A, B, MA, MB any](
	base Monad[MA, MB, Maybe[A], Maybe[B]],
	m MaybeT[MA],
	f func(A) MaybeT[MB],
) MaybeT[MB] {
	return MaybeT[MB]{wrapped: base.Bind(m.wrapped, func(ma Maybe[A]) MB {
		if a, ok := ma.Get(); ok {
			return f(a).wrapped
		}
		return base.Pure(NothingOf[B]())
	})}
}

// BindMaybeTBase sequences the transform with a continuation that returns a
// bare value of the re-parametrised base NB = M[B]. The result is lifted
// automatically by mapping every element to a Just; the lift descriptor is
// the static witness that NB is the base re-parametrised over B.
func BindMaybeTBase[A, B, MA, NB, MB any](
	base Monad[MA, MB, Maybe[A], Maybe[B]],
	lift Functor[NB, MB, B, Maybe[B]],
	m MaybeT[MA],
	f func(A) NB,
) MaybeT[MB] {
	return MaybeT[MB]{wrapped: base.Bind(m.wrapped, func(ma Maybe[A]) MB {
		if a, ok := ma.Get(); ok {
			return lift.Map(f(a), Just[B])
		}
		return base.Pure(NothingOf[B]())
	})}
}

// BindMaybeTMaybe sequences the transform with a continuation that returns
// a plain Maybe, hoisted automatically through the base's pure.
func BindMaybeTMaybe[A, B, MA, MB any](
	base Monad[MA, MB, Maybe[A], Maybe[B]],
	m MaybeT[MA],
	f func(A) Maybe[B],
) MaybeT[MB] {
	return MaybeT[MB]{wrapped: base.Bind(m.wrapped, func(ma Maybe[A]) MB {
		return base.Pure(FlatMapMaybe(ma, f))
	})}
}

// ApplyMaybeT applies a transform of functions to a transform of
// arguments. Nothing on the function side wins.
func ApplyMaybeT[A, B, MF, MA, MB any](
	bindF Monad[MF, MB, Maybe[func(A) B], Maybe[B]],
	bindA Monad[MA, MB, Maybe[A], Maybe[B]],
	mf MaybeT[MF],
	ma MaybeT[MA],
) MaybeT[MB] {
	return MaybeT[MB]{wrapped: bindF.Bind(mf.wrapped, func(mff Maybe[func(A) B]) MB {
		if fn, ok := mff.Get(); ok {
			return bindA.Bind(ma.wrapped, func(maa Maybe[A]) MB {
				return bindA.Pure(MapMaybe(maa, fn))
			})
		}
		return bindF.Pure(NothingOf[B]())
	})}
}

// FailMaybeT invokes the failure state: Nothing embedded via the base's
// pure.
func FailMaybeT[A, MA any](pure func(Maybe[A]) MA) MaybeT[MA] {
	return MaybeT[MA]{wrapped: pure(NothingOf[A]())}
}

// OrMaybeT evaluates two alternatives: the first transform wrapping a Just
// wins; if both wrap Nothing the result is Nothing. Unlike [OrEitherT]
// there is nothing to combine, so the second transform is used as-is.
func OrMaybeT[A, MA any](
	base Monad[MA, MA, Maybe[A], Maybe[A]],
	m1, m2 MaybeT[MA],
) MaybeT[MA] {
	return MaybeT[MA]{wrapped: base.Bind(m1.wrapped, func(ma Maybe[A]) MA {
		if ma.IsJust() {
			return base.Pure(ma)
		}
		return m2.wrapped
	})}
}

// FoldlMaybeT folds the transform by delegating to the base's own foldl,
// skipping Nothing elements.
func FoldlMaybeT[A, Z, MA any](
	base Foldable[MA, Maybe[A], Z],
	m MaybeT[MA],
	z Z,
	f func(Z, A) Z,
) Z {
	return base.Foldl(m.wrapped, z, func(acc Z, ma Maybe[A]) Z {
		if a, ok := ma.Get(); ok {
			return f(acc, a)
		}
		return acc
	})
}

// FoldrMaybeT is the right fold counterpart of FoldlMaybeT.
func FoldrMaybeT[A, Z, MA any](
	base Foldable[MA, Maybe[A], Z],
	m MaybeT[MA],
	z Z,
	f func(A, Z) Z,
) Z {
	return base.Foldr(m.wrapped, z, func(ma Maybe[A], acc Z) Z {
		if a, ok := ma.Get(); ok {
			return f(a, acc)
		}
		return acc
	})
}

// MaybeTFunctor builds the transform's Functor entry from the base's.
// Re-parametrisation threads through the inner Maybe: M[Maybe[A]] goes to
// M[Maybe[B]].
func MaybeTFunctor[A, B, MA, MB any](
	base Functor[MA, MB, Maybe[A], Maybe[B]],
) Functor[MaybeT[MA], MaybeT[MB], A, B] {
	return Functor[MaybeT[MA], MaybeT[MB], A, B]{
		Map: func(m MaybeT[MA], f func(A) B) MaybeT[MB] {
			return MapMaybeT(base, m, f)
		},
	}
}

// MaybeTMonad builds the transform's Monad entry from the base's.
func MaybeTMonad[A, B, MA, MB any](
	base Monad[MA, MB, Maybe[A], Maybe[B]],
) Monad[MaybeT[MA], MaybeT[MB], A, B] {
	return Monad[MaybeT[MA], MaybeT[MB], A, B]{
		Pure: func(b B) MaybeT[MB] {
			return PureMaybeT(base.Pure, b)
		},
		Bind: func(m MaybeT[MA], f func(A) MaybeT[MB]) MaybeT[MB] {
			return BindMaybeT(base, m, f)
		},
	}
}

// MaybeTFoldable builds the transform's Foldable entry from the base's.
func MaybeTFoldable[A, Z, MA any](
	base Foldable[MA, Maybe[A], Z],
) Foldable[MaybeT[MA], A, Z] {
	return Foldable[MaybeT[MA], A, Z]{
		Foldl: func(m MaybeT[MA], z Z, f func(Z, A) Z) Z {
			return FoldlMaybeT(base, m, z, f)
		},
		Foldr: func(m MaybeT[MA], z Z, f func(A, Z) Z) Z {
			return FoldrMaybeT(base, m, z, f)
		},
	}
}
