// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monat

// The either transformer.
//
// EitherT transforms any monadic base type M so that it also acts like the
// either monad: EitherT[L, MEA] wraps a single value of the re-parametrised
// base MEA = M[Either[L, A]], but its operations act on A and short-circuit
// on Left. For example, an EitherT[string, []Either[string, int]] is a slice
// of eithers whose map and bind see plain ints.
//
// The transform never inspects a Left/Right tag itself; all case analysis
// happens inside the base type's own operations, reached through the
// capability descriptors passed at each call site.

// EitherT wraps a base-capability value whose element type is an Either.
// MEA is the base type at element Either[L, A]. The transform owns the
// wrapped value exclusively.
type EitherT[L, MEA any] struct {
	wrapped MEA
}

// WrapEitherT constructs a transform from the re-parametrised base value.
func WrapEitherT[L, MEA any](m MEA) EitherT[L, MEA] {
	return EitherT[L, MEA]{wrapped: m}
}

// Unwrap returns the inner, transformed, base value.
// This regains functionality of the base that wrapping hid.
func (e EitherT[L, MEA]) Unwrap() MEA {
	return e.wrapped
}

// PureEitherT lifts a plain value into the transform: first into a Right,
// then into the base via its pure.
func PureEitherT[L, A, MEA any](pure func(Either[L, A]) MEA, a A) EitherT[L, MEA] {
	return EitherT[L, MEA]{wrapped: pure(Right[L, A](a))}
}

// MapEitherT maps f over the Right case inside the base's own map: one
// traversal of the base structure, however many elements are Left.
func MapEitherT[L, A, B, MEA, MEB any](
	base Functor[MEA, MEB, Either[L, A], Either[L, B]],
	e EitherT[L, MEA],
	f func(A) B,
) EitherT[L, MEB] {
	return EitherT[L, MEB]{wrapped: base.Map(e.wrapped, func(ea Either[L, A]) Either[L, B] {
		return MapEither(ea, f)
	})}
}

// BindEitherT sequences the transform with a continuation that returns the
// transform itself. When the current element is Right, the continuation's
// result is unwrapped and used directly; when it is Left, the continuation
// is never invoked and the same Left, re-typed to B, is embedded via the
// base's pure.
func BindEitherT[L, A, B, MEA, MEB any](
	base Monad[MEA, MEB, Either[L, A], Either[L, B]],
	e EitherT[L, MEA],
	f func(A) EitherT[L, MEB],
) EitherT[L, MEB] {
	return EitherT[L, MEB]{wrapped: base.Bind(e.wrapped, func(ea Either[L, A]) MEB {
		if a, ok := ea.GetRight(); ok {
			return f(a).wrapped
		}
		l, _ := ea.GetLeft()
		return base.Pure(Left[L, B](l))
	})}
}

// BindEitherTBase sequences the transform with a continuation that returns
// a bare value of the re-parametrised base MB = M[B] — no Either wrapping,
// no transform wrapping. The result is lifted automatically: every element
// of the continuation's result is mapped to a Right.
//
// The lift descriptor is the static witness that MB really is the base
// re-parametrised over B; a continuation whose result is any other type
// cannot satisfy it and fails to compile.
func BindEitherTBase[L, A, B, MEA, MB, MEB any](
	base Monad[MEA, MEB, Either[L, A], Either[L, B]],
	lift Functor[MB, MEB, B, Either[L, B]],
	e EitherT[L, MEA],
	f func(A) MB,
) EitherT[L, MEB] {
	return EitherT[L, MEB]{wrapped: base.Bind(e.wrapped, func(ea Either[L, A]) MEB {
		if a, ok := ea.GetRight(); ok {
			return lift.Map(f(a), Right[L, B])
		}
		l, _ := ea.GetLeft()
		return base.Pure(Left[L, B](l))
	})}
}

// BindEitherTEither sequences the transform with a continuation that
// returns a plain Either — no base wrapping at all. The continuation's
// result is hoisted automatically: each element of the base is bound
// against f in the either monad and the outcome re-embedded with the
// base's pure. Left elements pass through untouched and never reach f.
func BindEitherTEither[L, A, B, MEA, MEB any](
	base Monad[MEA, MEB, Either[L, A], Either[L, B]],
	e EitherT[L, MEA],
	f func(A) Either[L, B],
) EitherT[L, MEB] {
	return EitherT[L, MEB]{wrapped: base.Bind(e.wrapped, func(ea Either[L, A]) MEB {
		return base.Pure(FlatMapEither(ea, f))
	})}
}

// ApplyEitherT applies a transform of functions to a transform of
// arguments. A Left on the function side wins without consulting the
// argument side beyond what the base's own bind requires.
func ApplyEitherT[L, A, B, MEF, MEA, MEB any](
	bindF Monad[MEF, MEB, Either[L, func(A) B], Either[L, B]],
	bindA Monad[MEA, MEB, Either[L, A], Either[L, B]],
	ef EitherT[L, MEF],
	ea EitherT[L, MEA],
) EitherT[L, MEB] {
	return EitherT[L, MEB]{wrapped: bindF.Bind(ef.wrapped, func(eff Either[L, func(A) B]) MEB {
		if fn, ok := eff.GetRight(); ok {
			return bindA.Bind(ea.wrapped, func(eaa Either[L, A]) MEB {
				return bindA.Pure(MapEither(eaa, fn))
			})
		}
		l, _ := eff.GetLeft()
		return bindF.Pure(Left[L, B](l))
	})}
}

// FailEitherT invokes the failure state: a Left holding the Left monoid's
// identity element, embedded via the base's pure.
// Available only when L is a Monoid.
func FailEitherT[L, A, MEA any](pure func(Either[L, A]) MEA, m Monoid[L]) EitherT[L, MEA] {
	return EitherT[L, MEA]{wrapped: pure(Left[L, A](m.ID()))}
}

// OrEitherT evaluates two alternatives: first success wins, failures
// accumulate. If e1 wraps a Right it is returned unchanged; otherwise e2 is
// checked, and if both wrap Lefts their payloads are combined with the Left
// monoid's append.
func OrEitherT[L, A, MEA any](
	base Monad[MEA, MEA, Either[L, A], Either[L, A]],
	alt Functor[MEA, MEA, Either[L, A], Either[L, A]],
	m Monoid[L],
	e1, e2 EitherT[L, MEA],
) EitherT[L, MEA] {
	return EitherT[L, MEA]{wrapped: base.Bind(e1.wrapped, func(ea Either[L, A]) MEA {
		if ea.IsRight() {
			return base.Pure(ea)
		}
		l1, _ := ea.GetLeft()
		return alt.Map(e2.wrapped, func(eb Either[L, A]) Either[L, A] {
			if eb.IsRight() {
				return eb
			}
			l2, _ := eb.GetLeft()
			return Left[L, A](m.Append(l1, l2))
		})
	})}
}

// FoldlEitherT folds the transform by delegating to the base's own foldl
// with a step that applies f to Right elements and passes the accumulator
// through unchanged for Left ones. Available only when the base is
// Foldable.
func FoldlEitherT[L, A, Z, MEA any](
	base Foldable[MEA, Either[L, A], Z],
	e EitherT[L, MEA],
	z Z,
	f func(Z, A) Z,
) Z {
	return base.Foldl(e.wrapped, z, func(acc Z, ea Either[L, A]) Z {
		if a, ok := ea.GetRight(); ok {
			return f(acc, a)
		}
		return acc
	})
}

// FoldrEitherT is the right fold counterpart of FoldlEitherT.
func FoldrEitherT[L, A, Z, MEA any](
	base Foldable[MEA, Either[L, A], Z],
	e EitherT[L, MEA],
	z Z,
	f func(A, Z) Z,
) Z {
	return base.Foldr(e.wrapped, z, func(ea Either[L, A], acc Z) Z {
		if a, ok := ea.GetRight(); ok {
			return f(a, acc)
		}
		return acc
	})
}

// EitherTFunctor builds the transform's Functor entry from the base's.
// This is the transformer's re-parametrisation rule: substituting B for A
// threads through the inner Either, taking M[Either[L, A]] to
// M[Either[L, B]] rather than wrapping the transform's apparent element
// type directly.
func EitherTFunctor[L, A, B, MEA, MEB any](
	base Functor[MEA, MEB, Either[L, A], Either[L, B]],
) Functor[EitherT[L, MEA], EitherT[L, MEB], A, B] {
	return Functor[EitherT[L, MEA], EitherT[L, MEB], A, B]{
		Map: func(e EitherT[L, MEA], f func(A) B) EitherT[L, MEB] {
			return MapEitherT(base, e, f)
		},
	}
}

// EitherTMonad builds the transform's Monad entry from the base's.
func EitherTMonad[L, A, B, MEA, MEB any](
	base Monad[MEA, MEB, Either[L, A], Either[L, B]],
) Monad[EitherT[L, MEA], EitherT[L, MEB], A, B] {
	return Monad[EitherT[L, MEA], EitherT[L, MEB], A, B]{
		Pure: func(b B) EitherT[L, MEB] {
			return PureEitherT(base.Pure, b)
		},
		Bind: func(e EitherT[L, MEA], f func(A) EitherT[L, MEB]) EitherT[L, MEB] {
			return BindEitherT(base, e, f)
		},
	}
}

// EitherTFoldable builds the transform's Foldable entry from the base's.
func EitherTFoldable[L, A, Z, MEA any](
	base Foldable[MEA, Either[L, A], Z],
) Foldable[EitherT[L, MEA], A, Z] {
	return Foldable[EitherT[L, MEA], A, Z]{
		Foldl: func(e EitherT[L, MEA], z Z, f func(Z, A) Z) Z {
			return FoldlEitherT(base, e, z, f)
		},
		Foldr: func(e EitherT[L, MEA], z Z, f func(A, Z) Z) Z {
			return FoldrEitherT(base, e, z, f)
		},
	}
}
