// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package monat provides typeclass-style capabilities (Functor, Applicative,
// Monad, Monoid, Foldable) and monad transformers for Go.
//
// The package retrofits functional-programming abstractions onto ordinary
// value types: a single generic algorithm (map, bind, fold, append) operates
// uniformly over heterogeneous wrapped types — [Either], [Maybe], slices,
// single-argument functions, [Lazy] cells, continuations — chosen at compile
// time, and the transformers [EitherT] and [MaybeT] layer one capability's
// behavior inside another wrapped type's element slot.
//
// # Design Philosophy
//
// monat provides:
//   - Explicit capability descriptors resolved by the type system at compile time
//   - Transformer composition that never inspects the inner tag itself
//   - Errors as data: Left and Nothing, never out-of-band signals
//
// # Capability Descriptors
//
// Go has no higher-kinded types, so a capability instance is an explicit
// descriptor value whose type parameters pin down both the wrapped type and
// its re-parametrisation over a new element type:
//
//   - [Functor]: Map over FA producing FB
//   - [Applicative]: Pure, Apply, Map
//   - [Monad]: Pure (into the result shape), Bind
//   - [Foldable]: Foldl, Foldr with accumulator type Z
//   - [Monoid]: ID, Append
//
// A descriptor constructor (e.g. [MaybeMonad], [ListFoldable],
// [EitherTFunctor]) is the availability witness for that (type, capability)
// pair: if no constructor exists, the operation cannot be expressed and the
// program does not compile. There are no runtime capability errors.
// Descriptors are additive — a new wrapped type ships its own constructors
// and modifies none of the existing ones.
//
// Re-parametrisation — building W[Y] from W[X] — is carried by the paired
// type parameters of each descriptor (FA/FB, MA/MB). Transformers
// special-case it: re-parametrising EitherT[L, M[Either[L, X]]] over Y
// substitutes on the base type parameter, yielding
// EitherT[L, M[Either[L, Y]]], which is what [EitherTFunctor] and
// [EitherTMonad] construct from a base descriptor.
//
// # Wrapped Types
//
// [Either] represents success (Right) or failure (Left):
//
//   - [Left], [Right]: Constructors
//   - [Either.IsLeft], [Either.IsRight]: Predicates
//   - [Either.GetLeft], [Either.GetRight]: Accessors
//   - [MatchEither]: Pattern matching
//   - [MapEither], [FlatMapEither], [ApplyEither], [MapLeftEither]
//   - [FoldlEither], [FoldrEither]
//
// [Maybe] represents an optional value:
//
//   - [Just], [NothingOf]: Constructors
//   - [Maybe.IsJust], [Maybe.IsNothing], [Maybe.Get]
//   - [MatchMaybe], [MapMaybe], [FlatMapMaybe], [ApplyMaybe]
//   - [FoldlMaybe], [FoldrMaybe]
//
// Slices are wrapped types as they stand:
//
//   - [PureList], [MapList], [FlatMapList], [ApplyList]
//   - [FoldlList], [FoldrList]
//
// [Func] is the single-argument function (reader) type:
//
//   - [PureFunc], [MapFunc], [FlatMapFunc], [ApplyFunc]
//
// [Cont] is the continuation type:
//
//   - [Return], [Suspend], [Run], [RunWith]
//   - [Bind], [Map], [Then]
//
// # Deferred Evaluation
//
// [Lazy] is a shared, memoized, on-demand computation cell:
//
//   - [Defer]: Wrap a computation without running it
//   - [Lazy.Force]: Run at most once across all copies, then return the value
//   - [Lazy.Status]: Report deferred or ready without forcing
//   - [PureLazy], [MapLazy], [FlatMapLazy]: Fully deferred composition
//   - [LazyMonoid]: Deferred identity and append
//
// Copies of a Lazy alias the same cell, so forcing one copy is observed by
// all of them. The cell transitions to ready only after the computation
// returns: a panicking computation leaves the cell deferred, and a later
// force re-attempts it. Forcing the same cell from multiple goroutines
// concurrently is not synchronized; callers that share cells across
// goroutines must serialize forcing externally.
//
// # Transformers
//
// [EitherT] composes a capability-bearing base M with [Either], wrapping a
// value of type M[Either[L, A]] whose operations act on A and short-circuit
// on Left. Bind states the shape of the continuation's result at the call
// site, one entry point per shape:
//
//   - [BindEitherTBase]: continuation returns the bare base M[B];
//     the result is lifted into M[Either[L, B]] automatically
//   - [BindEitherT]: continuation returns EitherT[L, M[Either[L, B]]]
//   - [BindEitherTEither]: continuation returns a bare Either[L, B],
//     hoisted through the base automatically
//
// All three produce EitherT[L, M[Either[L, B]]] and never invoke the
// continuation when the current element is Left. A continuation of any other
// shape matches no entry point and fails to compile.
//
// When L is a [Monoid], EitherT is also a monoidal alternative:
//
//   - [FailEitherT]: Left of the monoid identity, embedded via base pure
//   - [OrEitherT]: First Right wins; two Lefts append their payloads
//
// When the base is [Foldable], so is the transform:
//
//   - [FoldlEitherT], [FoldrEitherT]: Fold Right elements, skip Left ones
//
// [MaybeT] is the analogous transform over [Maybe], with [BindMaybeTBase],
// [BindMaybeT], [BindMaybeTMaybe], [FailMaybeT], [OrMaybeT] and folds.
//
// # Monoids
//
// Stock [Monoid] instances: [StringMonoid], [SumMonoid], [ProdMonoid],
// [AllMonoid], [AnyMonoid], [ListMonoid], [UnitMonoid], [MaybeMonoid],
// [LazyMonoid]. [MConcat] folds any slice through any monoid.
//
// # Example
//
//	mf := monat.PureMaybeT(monat.PureFunc[int, monat.Maybe[int]], 1)
//	g := monat.MapMaybeT(
//		monat.FuncFunctor[int, monat.Maybe[int], monat.Maybe[float64]](),
//		mf,
//		func(x int) float64 { return float64(x) / 4 },
//	)
//	g.Unwrap()(3) // Just(0.25)
package monat
