// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monat

// Func is the single-argument function type, viewed as a wrapped type over
// its result: Func[R, A] is a computation that reads an R and produces an A.
// Its capabilities are those of the reader monad.
type Func[R, A any] func(R) A

// PureFunc lifts a value into a constant function.
func PureFunc[R, A any](a A) Func[R, A] {
	return func(R) A { return a }
}

// MapFunc post-composes f onto the result of g.
func MapFunc[R, A, B any](g Func[R, A], f func(A) B) Func[R, B] {
	return func(r R) B {
		return f(g(r))
	}
}

// ApplyFunc applies a function-producing computation to an argument-producing
// computation; both read the same environment.
func ApplyFunc[R, A, B any](ff Func[R, func(A) B], fa Func[R, A]) Func[R, B] {
	return func(r R) B {
		return ff(r)(fa(r))
	}
}

// FlatMapFunc sequences two computations that read the same environment.
func FlatMapFunc[R, A, B any](g Func[R, A], f func(A) Func[R, B]) Func[R, B] {
	return func(r R) B {
		return f(g(r))(r)
	}
}

// FuncFunctor returns the Functor descriptor for Func over environment R.
func FuncFunctor[R, A, B any]() Functor[Func[R, A], Func[R, B], A, B] {
	return Functor[Func[R, A], Func[R, B], A, B]{Map: MapFunc[R, A, B]}
}

// FuncApplicative returns the Applicative descriptor for Func over R.
func FuncApplicative[R, A, B any]() Applicative[Func[R, A], Func[R, B], Func[R, func(A) B], A, B] {
	return Applicative[Func[R, A], Func[R, B], Func[R, func(A) B], A, B]{
		Pure:  PureFunc[R, B],
		Apply: ApplyFunc[R, A, B],
		Map:   MapFunc[R, A, B],
	}
}

// FuncMonad returns the Monad descriptor for Func over R.
func FuncMonad[R, A, B any]() Monad[Func[R, A], Func[R, B], A, B] {
	return Monad[Func[R, A], Func[R, B], A, B]{
		Pure: PureFunc[R, B],
		Bind: FlatMapFunc[R, A, B],
	}
}
