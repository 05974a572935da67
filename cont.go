// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monat

// Cont represents a continuation-passing computation.
// Cont[R, A] computes a value of type A, with final result type R.
//
// The function receives a continuation k of type func(A) R, which represents
// "the rest of the computation". Applying k to a value of type A produces
// the final result of type R.
//
// Minimal definition: Return (unit) and Bind are necessary and sufficient.
// Map and Then are derived operations kept as optimizations to avoid
// intermediate closure allocations.
type Cont[R, A any] func(k func(A) R) R

// Return lifts a pure value into the continuation monad.
// The resulting computation immediately passes the value to its continuation.
func Return[R, A any](a A) Cont[R, A] {
	return func(k func(A) R) R {
		return k(a)
	}
}

// Suspend creates a continuation from a CPS function.
// This is the primitive constructor for continuations that need direct
// access to the continuation.
func Suspend[R, A any](f func(func(A) R) R) Cont[R, A] {
	return Cont[R, A](f)
}

// identity is the identity continuation for Run.
// Named generic function produces a static function value per type instantiation,
// avoiding the heap allocation that anonymous closures incur.
func identity[A any](a A) A { return a }

// Run executes a continuation with the identity continuation.
// The result type must match the value type (R = A).
func Run[A any](m Cont[A, A]) A {
	return m(identity[A])
}

// RunWith executes a continuation with a custom final continuation.
func RunWith[R, A any](m Cont[R, A], k func(A) R) R {
	return m(k)
}

// Bind sequences two continuations (monadic bind).
// It runs m, then passes the result to f to get a new continuation.
func Bind[R, A, B any](m Cont[R, A], f func(A) Cont[R, B]) Cont[R, B] {
	return func(k func(B) R) R {
		return m(func(a A) R {
			return f(a)(k)
		})
	}
}

// Map applies a pure function to the result of a continuation.
//
// Allocation note: Map is equivalent to Bind(m, compose(Return, f)) but
// avoids the intermediate Return closure, making it the preferred choice
// when the transformation is pure.
func Map[R, A, B any](m Cont[R, A], f func(A) B) Cont[R, B] {
	return func(k func(B) R) R {
		return m(func(a A) R {
			return k(f(a))
		})
	}
}

// Then sequences two continuations, discarding the first result.
// This is more efficient than Bind when the second computation
// does not depend on the first result.
func Then[R, A, B any](m Cont[R, A], n Cont[R, B]) Cont[R, B] {
	return func(k func(B) R) R {
		return m(func(_ A) R {
			return n(k)
		})
	}
}

// ApplyCont applies a continuation computing a function to a continuation
// computing its argument; mf runs before ma.
func ApplyCont[R, A, B any](mf Cont[R, func(A) B], ma Cont[R, A]) Cont[R, B] {
	return func(k func(B) R) R {
		return mf(func(f func(A) B) R {
			return ma(func(a A) R {
				return k(f(a))
			})
		})
	}
}

// ContFunctor returns the Functor descriptor for Cont over answer type R.
func ContFunctor[R, A, B any]() Functor[Cont[R, A], Cont[R, B], A, B] {
	return Functor[Cont[R, A], Cont[R, B], A, B]{Map: Map[R, A, B]}
}

// ContApplicative returns the Applicative descriptor for Cont over R.
func ContApplicative[R, A, B any]() Applicative[Cont[R, A], Cont[R, B], Cont[R, func(A) B], A, B] {
	return Applicative[Cont[R, A], Cont[R, B], Cont[R, func(A) B], A, B]{
		Pure:  Return[R, B],
		Apply: ApplyCont[R, A, B],
		Map:   Map[R, A, B],
	}
}

// ContMonad returns the Monad descriptor for Cont over R.
func ContMonad[R, A, B any]() Monad[Cont[R, A], Cont[R, B], A, B] {
	return Monad[Cont[R, A], Cont[R, B], A, B]{
		Pure: Return[R, B],
		Bind: Bind[R, A, B],
	}
}
