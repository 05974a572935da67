// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monat_test

import (
	"testing"

	"code.hybscloud.com/monat"
)

// sumVia reduces any foldable wrapped value with one algorithm; the
// descriptor is the only per-type input.
func sumVia[FA any](fold monat.Foldable[FA, int, int], fa FA) int {
	return fold.Foldl(fa, 0, func(z, a int) int { return z + a })
}

// squareVia maps one function over any functorial wrapped value.
func squareVia[FA, FB any](fn monat.Functor[FA, FB, int, int], fa FA) FB {
	return fn.Map(fa, func(x int) int { return x * x })
}

func TestGenericFoldDispatch(t *testing.T) {
	// One algorithm, four wrapped types.
	if got := sumVia(monat.ListFoldable[int, int](), []int{1, 2, 3}); got != 6 {
		t.Fatalf("list: got %d", got)
	}
	if got := sumVia(monat.MaybeFoldable[int, int](), monat.Just(4)); got != 4 {
		t.Fatalf("maybe: got %d", got)
	}
	if got := sumVia(monat.EitherFoldable[string, int, int](), monat.Right[string](5)); got != 5 {
		t.Fatalf("either: got %d", got)
	}

	xs := []monat.Either[string, int]{
		monat.Right[string](1),
		monat.Left[string, int]("skip"),
		monat.Right[string](2),
	}
	et := monat.WrapEitherT[string](xs)
	fold := monat.EitherTFoldable(monat.ListFoldable[monat.Either[string, int], int]())
	if got := sumVia(fold, et); got != 3 {
		t.Fatalf("eitherT: got %d", got)
	}
}

func TestGenericMapDispatch(t *testing.T) {
	got := squareVia(monat.MaybeFunctor[int, int](), monat.Just(3))
	if got != monat.Just(9) {
		t.Fatalf("maybe: got %#v", got)
	}

	lz := squareVia(monat.LazyFunctor[int, int](), monat.PureLazy(4))
	if v := lz.Force(); v != 16 {
		t.Fatalf("lazy: got %d", v)
	}

	es := squareVia(monat.EitherFunctor[string, int, int](), monat.Left[string, int]("e"))
	if es != monat.Left[string, int]("e") {
		t.Fatalf("either: got %#v", es)
	}
}

func TestCompose(t *testing.T) {
	f := func(x int) int { return x + 1 }
	g := func(x int) int { return x * 2 }
	if got := monat.Compose(g, f)(5); got != 12 {
		t.Fatalf("got %d, want 12", got)
	}
	if got := monat.Identity(7); got != 7 {
		t.Fatalf("got %d, want 7", got)
	}
}
