package treeset

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestNewNilComparePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic for nil compare function")
		}
	}()
	New[int](nil)
}

func TestAddOrdering(t *testing.T) {
	s := NewOrdered(5, 3, 8, 1)
	if s.Len() != 4 {
		t.Fatalf("expected 4 elements, got %d", s.Len())
	}
	if got := s.Values(); !slices.Equal(got, []int{1, 3, 5, 8}) {
		t.Fatalf("expected [1 3 5 8], got %v", got)
	}
}

func TestHas(t *testing.T) {
	s := NewOrdered(5, 3, 8, 1)
	if !s.Has(8) {
		t.Fatal("expected set to contain 8")
	}
	if s.Has(9) {
		t.Fatal("set should not contain 9")
	}
}

func TestDuplicatesCollapse(t *testing.T) {
	s := NewOrdered(2, 1, 2, 2, 1)
	if got := s.Values(); !slices.Equal(got, []int{1, 2}) {
		t.Fatalf("expected [1 2], got %v", got)
	}
}

func TestAddPresentReturnsSameSet(t *testing.T) {
	s := NewOrdered(5, 3, 8, 1)
	again := s.Add(3)
	if again.tree != s.tree {
		t.Fatal("adding a present element should share the same tree")
	}
}

func TestRemove(t *testing.T) {
	s := NewOrdered(5, 3, 8, 1)
	rest := s.Remove(3)
	if got := rest.Values(); !slices.Equal(got, []int{1, 5, 8}) {
		t.Fatalf("expected [1 5 8], got %v", got)
	}
	// The original version is untouched.
	if got := s.Values(); !slices.Equal(got, []int{1, 3, 5, 8}) {
		t.Fatalf("prior version modified: %v", got)
	}
}

func TestRemoveAbsentReturnsSameSet(t *testing.T) {
	s := NewOrdered(5, 3, 8, 1)
	if s.Remove(4).tree != s.tree {
		t.Fatal("removing an absent element should share the same tree")
	}
}

func TestMinMax(t *testing.T) {
	s := NewOrdered(5, 3, 8, 1)
	mn, err := s.Min()
	if err != nil || mn != 1 {
		t.Fatalf("expected min 1, got %d (%v)", mn, err)
	}
	mx, err := s.Max()
	if err != nil || mx != 8 {
		t.Fatalf("expected max 8, got %d (%v)", mx, err)
	}
}

func TestMinMaxEmpty(t *testing.T) {
	s := NewOrdered[int]()
	if _, err := s.Min(); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
	if _, err := s.Max(); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
}

func TestRemoveMinMax(t *testing.T) {
	s := NewOrdered(5, 3, 8, 1)

	rest, err := s.RemoveMin()
	if err != nil {
		t.Fatal(err)
	}
	if got := rest.Values(); !slices.Equal(got, []int{3, 5, 8}) {
		t.Fatalf("expected [3 5 8], got %v", got)
	}

	rest, err = s.RemoveMax()
	if err != nil {
		t.Fatal(err)
	}
	if got := rest.Values(); !slices.Equal(got, []int{1, 3, 5}) {
		t.Fatalf("expected [1 3 5], got %v", got)
	}

	if _, err := NewOrdered[int]().RemoveMin(); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
	if _, err := NewOrdered[int]().RemoveMax(); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
}

func TestClearKeepsOrder(t *testing.T) {
	desc := New(func(a, b int) int { return b - a }, 1, 2, 3)
	s := desc.Clear()
	if !s.IsEmpty() {
		t.Fatal("cleared set should be empty")
	}
	s = s.Add(1).Add(3).Add(2)
	if got := s.Values(); !slices.Equal(got, []int{3, 2, 1}) {
		t.Fatalf("cleared set lost its descending order: %v", got)
	}
}

func caseInsensitive(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

func TestAddKeepsExistingRepresentative(t *testing.T) {
	s := New(caseInsensitive, "Foo", "bar")
	s = s.Add("FOO")
	if got := s.Values(); !slices.Equal(got, []string{"bar", "Foo"}) {
		t.Fatalf("expected [bar Foo], got %v", got)
	}
}

func TestReplaceSwapsRepresentative(t *testing.T) {
	s := New(caseInsensitive, "Foo", "bar")
	s2 := s.Replace("FOO")
	if got := s2.Values(); !slices.Equal(got, []string{"bar", "FOO"}) {
		t.Fatalf("expected [bar FOO], got %v", got)
	}
	if got := s.Values(); !slices.Equal(got, []string{"bar", "Foo"}) {
		t.Fatalf("prior version modified: %v", got)
	}
}

func TestMinAfterMaxBefore(t *testing.T) {
	s := NewOrdered(5, 3, 8, 1)
	if v := s.MinAfter(3); !v.Ok || v.Value != 5 {
		t.Fatalf("expected MinAfter(3) = 5, got %+v", v)
	}
	if v := s.MaxBefore(5); !v.Ok || v.Value != 3 {
		t.Fatalf("expected MaxBefore(5) = 3, got %+v", v)
	}
	if v := s.MinAfter(8); v.Ok {
		t.Fatalf("expected MinAfter(8) absent, got %+v", v)
	}
	if v := s.MaxBefore(1); v.Ok {
		t.Fatalf("expected MaxBefore(1) absent, got %+v", v)
	}
}

func TestIterators(t *testing.T) {
	s := NewOrdered(5, 3, 8, 1)
	if got := slices.Collect(s.All()); !slices.Equal(got, []int{1, 3, 5, 8}) {
		t.Fatalf("All: expected [1 3 5 8], got %v", got)
	}
	if got := slices.Collect(s.From(4)); !slices.Equal(got, []int{5, 8}) {
		t.Fatalf("From(4): expected [5 8], got %v", got)
	}

	// Restartable: same sequence value, same elements again.
	seq := s.All()
	a, b := slices.Collect(seq), slices.Collect(seq)
	if !slices.Equal(a, b) {
		t.Fatalf("sequence not restartable: %v then %v", a, b)
	}
}

func TestForEach(t *testing.T) {
	s := NewOrdered(5, 3, 8, 1)
	var got []int
	s.ForEach(func(v int) { got = append(got, v) })
	if !slices.Equal(got, []int{1, 3, 5, 8}) {
		t.Fatalf("expected [1 3 5 8], got %v", got)
	}
}

func TestVersionsIndependent(t *testing.T) {
	v1 := NewOrdered(1, 2, 3, 4, 5)
	v2 := v1.Add(6)
	v3 := v1.Remove(1)

	if got := v1.Values(); !slices.Equal(got, []int{1, 2, 3, 4, 5}) {
		t.Fatalf("v1 changed: %v", got)
	}
	if got := v2.Values(); !slices.Equal(got, []int{1, 2, 3, 4, 5, 6}) {
		t.Fatalf("v2 wrong: %v", got)
	}
	if got := v3.Values(); !slices.Equal(got, []int{2, 3, 4, 5}) {
		t.Fatalf("v3 wrong: %v", got)
	}
}
