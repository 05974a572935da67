// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monat_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"code.hybscloud.com/monat"
)

func TestStringMonoid(t *testing.T) {
	m := monat.StringMonoid()
	if m.ID() != "" {
		t.Fatalf("id: got %q", m.ID())
	}
	if got := m.Append("ab", "cd"); got != "abcd" {
		t.Fatalf("append: got %q", got)
	}
	if got := m.Append(m.ID(), "x"); got != "x" {
		t.Fatalf("left identity: got %q", got)
	}
	if got := m.Append("x", m.ID()); got != "x" {
		t.Fatalf("right identity: got %q", got)
	}
}

func TestSumProdMonoids(t *testing.T) {
	s := monat.SumMonoid[int]()
	if got := s.Append(s.ID(), 5); got != 5 {
		t.Fatalf("sum identity: got %d", got)
	}
	if got := s.Append(2, 3); got != 5 {
		t.Fatalf("sum append: got %d", got)
	}

	p := monat.ProdMonoid[float64]()
	if got := p.Append(p.ID(), 2.5); got != 2.5 {
		t.Fatalf("prod identity: got %v", got)
	}
	if got := p.Append(2, 3); got != 6 {
		t.Fatalf("prod append: got %v", got)
	}
}

func TestBoolMonoids(t *testing.T) {
	all := monat.AllMonoid()
	if !all.ID() || all.Append(true, false) {
		t.Fatal("all monoid misbehaved")
	}
	anyM := monat.AnyMonoid()
	if anyM.ID() || !anyM.Append(false, true) {
		t.Fatal("any monoid misbehaved")
	}
}

func TestListMonoid(t *testing.T) {
	m := monat.ListMonoid[int]()
	a := []int{1, 2}
	b := []int{3}

	got := m.Append(a, b)
	if diff := cmp.Diff([]int{1, 2, 3}, got); diff != "" {
		t.Fatalf("append mismatch (-want +got):\n%s", diff)
	}
	// Append must not mutate its arguments.
	if diff := cmp.Diff([]int{1, 2}, a); diff != "" {
		t.Fatalf("first argument mutated (-want +got):\n%s", diff)
	}
}

func TestUnitMonoid(t *testing.T) {
	m := monat.UnitMonoid()
	if m.Append(m.ID(), m.ID()) != (monat.Unit{}) {
		t.Fatal("unit monoid misbehaved")
	}
}

func TestMaybeMonoid(t *testing.T) {
	m := monat.MaybeMonoid(monat.SumMonoid[int]())

	if m.ID() != monat.NothingOf[int]() {
		t.Fatal("id is not Nothing")
	}
	if got := m.Append(monat.Just(2), monat.Just(3)); got != monat.Just(5) {
		t.Fatalf("Just+Just: got %#v", got)
	}
	if got := m.Append(monat.Just(2), monat.NothingOf[int]()); got != monat.Just(2) {
		t.Fatalf("Just+Nothing: got %#v", got)
	}
	if got := m.Append(monat.NothingOf[int](), monat.Just(3)); got != monat.Just(3) {
		t.Fatalf("Nothing+Just: got %#v", got)
	}
}

func TestMConcat(t *testing.T) {
	if got := monat.MConcat(monat.StringMonoid(), []string{"a", "b", "c"}); got != "abc" {
		t.Fatalf("got %q", got)
	}
	if got := monat.MConcat(monat.SumMonoid[int](), nil); got != 0 {
		t.Fatalf("empty concat: got %d", got)
	}
}
