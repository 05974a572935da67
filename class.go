// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monat

// Capability descriptors.
//
// A descriptor value is the compile-time registry entry for one
// (wrapped type, capability) pair. Its type parameters carry the
// re-parametrisation relation: FA is the wrapped type at element A,
// FB the same wrapped type at element B. A generic algorithm that takes a
// descriptor works for every wrapped type that has a constructor for it,
// with no per-type code at the call site. Calling an operation on a type
// without the capability is a compile error — the constructor for the
// descriptor does not exist.

// Functor is the capability of mapping a function over a wrapped value.
// FA is the wrapped type at element A, FB the re-parametrisation at B.
type Functor[FA, FB, A, B any] struct {
	// Map applies f to every element of fa, preserving structure.
	Map func(fa FA, f func(A) B) FB
}

// Applicative is the capability of embedding pure values and applying
// wrapped functions to wrapped arguments. FF is the wrapped type whose
// element is func(A) B.
type Applicative[FA, FB, FF, A, B any] struct {
	// Pure lifts a plain value into the wrapped type at element B.
	Pure func(B) FB
	// Apply applies every function in ff to every element of fa.
	Apply func(ff FF, fa FA) FB
	// Map is the underlying functorial map.
	Map func(fa FA, f func(A) B) FB
}

// Monad is the capability of sequencing computations in a wrapped type.
// MA is the wrapped type at element A, MB the re-parametrisation at B.
//
// Pure lifts into the result shape MB rather than MA: every consumer of a
// Monad descriptor (transformer binds in particular) embeds values on the
// result side of the sequencing, including when short-circuiting.
type Monad[MA, MB, A, B any] struct {
	// Pure lifts a plain value into the wrapped type at element B.
	Pure func(B) MB
	// Bind sequences ma with a continuation producing the next computation.
	Bind func(ma MA, f func(A) MB) MB
}

// Foldable is the capability of reducing a wrapped value to an accumulator.
// Z is the accumulator type of this particular fold.
type Foldable[FA, A, Z any] struct {
	// Foldl folds left-to-right: f(f(f(z, a0), a1), a2).
	Foldl func(fa FA, z Z, f func(Z, A) Z) Z
	// Foldr folds right-to-left: f(a0, f(a1, f(a2, z))).
	Foldr func(fa FA, z Z, f func(A, Z) Z) Z
}

// Monoid is the capability of a type with an identity element and an
// associative append.
type Monoid[T any] struct {
	// ID returns the identity element: Append(ID(), t) == t == Append(t, ID()).
	ID func() T
	// Append combines two values associatively.
	Append func(T, T) T
}

// Unit is the one-value type. It is a lawful Monoid under [UnitMonoid] and
// the conventional Left type for transforms whose failures carry no payload.
type Unit = struct{}

// Identity returns its argument unchanged.
func Identity[A any](a A) A { return a }

// Compose returns the composition g after f.
func Compose[A, B, C any](g func(B) C, f func(A) B) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}
