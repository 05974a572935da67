// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monat

// List capabilities for plain slices. A slice is a wrapped type as it
// stands; no dedicated container type is introduced.

// PureList creates a one-element slice.
func PureList[A any](a A) []A {
	return []A{a}
}

// MapList applies f to every element, preserving order.
func MapList[A, B any](xs []A, f func(A) B) []B {
	ys := make([]B, len(xs))
	for i, x := range xs {
		ys[i] = f(x)
	}
	return ys
}

// FlatMapList maps f over the slice and concatenates the results.
func FlatMapList[A, B any](xs []A, f func(A) []B) []B {
	var ys []B
	for _, x := range xs {
		ys = append(ys, f(x)...)
	}
	return ys
}

// ApplyList applies every function to every argument, in function-major
// order (the cartesian product).
func ApplyList[A, B any](fs []func(A) B, xs []A) []B {
	ys := make([]B, 0, len(fs)*len(xs))
	for _, f := range fs {
		for _, x := range xs {
			ys = append(ys, f(x))
		}
	}
	return ys
}

// FoldlList folds left-to-right.
func FoldlList[A, Z any](xs []A, z Z, f func(Z, A) Z) Z {
	acc := z
	for _, x := range xs {
		acc = f(acc, x)
	}
	return acc
}

// FoldrList folds right-to-left.
func FoldrList[A, Z any](xs []A, z Z, f func(A, Z) Z) Z {
	acc := z
	for i := len(xs) - 1; i >= 0; i-- {
		acc = f(xs[i], acc)
	}
	return acc
}

// ListFunctor returns the Functor descriptor for slices.
func ListFunctor[A, B any]() Functor[[]A, []B, A, B] {
	return Functor[[]A, []B, A, B]{Map: MapList[A, B]}
}

// ListApplicative returns the Applicative descriptor for slices.
func ListApplicative[A, B any]() Applicative[[]A, []B, []func(A) B, A, B] {
	return Applicative[[]A, []B, []func(A) B, A, B]{
		Pure:  PureList[B],
		Apply: ApplyList[A, B],
		Map:   MapList[A, B],
	}
}

// ListMonad returns the Monad descriptor for slices.
func ListMonad[A, B any]() Monad[[]A, []B, A, B] {
	return Monad[[]A, []B, A, B]{
		Pure: PureList[B],
		Bind: FlatMapList[A, B],
	}
}

// ListFoldable returns the Foldable descriptor for slices.
func ListFoldable[A, Z any]() Foldable[[]A, A, Z] {
	return Foldable[[]A, A, Z]{
		Foldl: FoldlList[A, Z],
		Foldr: FoldrList[A, Z],
	}
}
