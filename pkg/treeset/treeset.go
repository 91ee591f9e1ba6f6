// Package treeset provides an immutable sorted set over any element
// type with a caller-supplied total order.
//
// A Set is a value: operations never modify the receiver, they return a
// new Set that shares structure with the old one, so keeping many
// versions of one set is cheap and any version can be read from any
// goroutine without locking.
//
// Basic usage:
//
//	s := treeset.NewOrdered(5, 3, 8, 1)
//	s = s.Add(4).Remove(3)
//	for v := range s.All() {
//		fmt.Println(v) // 1, 4, 5, 8
//	}
//
// Custom orders take a compare function:
//
//	byLen := func(a, b string) int { return len(a) - len(b) }
//	s := treeset.New(byLen, "ccc", "a", "bb")
//
// Membership, neighbor queries and ranged views all cost O(log n);
// iteration is lazy and ascending.
package treeset

import (
	"iter"

	g "github.com/anacrolix/generics"
	"golang.org/x/exp/constraints"

	"github.com/mibar/treeset/internal/rbtree"
)

// Compare is a total order over A: negative when a sorts before b,
// positive when b sorts first, zero when the two are equivalent. It
// must stay consistent for the lifetime of every set it orders.
type Compare[A any] = rbtree.Compare[A]

// Set is an immutable sorted set of unique elements. The zero value is
// not usable; construct sets with New or NewOrdered.
type Set[A any] struct {
	compare Compare[A]
	tree    rbtree.Tree[A]
}

// New creates a set ordered by compare, holding elems. Duplicate
// elements (under compare) collapse to the first occurrence.
// Panics if compare is nil.
func New[A any](compare Compare[A], elems ...A) Set[A] {
	if compare == nil {
		panic("treeset: cannot create a set with a nil compare function")
	}
	s := Set[A]{compare: compare}
	for _, e := range elems {
		s = s.Add(e)
	}
	return s
}

// NewOrdered is New with the natural ascending order of A.
func NewOrdered[A constraints.Ordered](elems ...A) Set[A] {
	return New(Natural[A](), elems...)
}

// Natural returns the comparator induced by the < operator.
func Natural[A constraints.Ordered]() Compare[A] {
	return func(a, b A) int {
		switch {
		case a < b:
			return -1
		case b < a:
			return 1
		default:
			return 0
		}
	}
}

// with wraps a tree in a set carrying the receiver's order. When the
// tree is the receiver's own, the receiver is returned so no-op edits
// keep the exact same value.
func (s Set[A]) with(t rbtree.Tree[A]) Set[A] {
	if t == s.tree {
		return s
	}
	return Set[A]{compare: s.compare, tree: t}
}

// Len returns the number of elements. O(1).
func (s Set[A]) Len() int { return s.tree.Len() }

// IsEmpty reports whether the set has no elements.
func (s Set[A]) IsEmpty() bool { return s.tree.IsEmpty() }

// Has reports whether a is in the set.
func (s Set[A]) Has(a A) bool { return s.tree.Contains(a, s.compare) }

// Add returns a set that also contains a. Adding a present element is a
// no-op that returns the receiver itself.
func (s Set[A]) Add(a A) Set[A] {
	return s.with(s.tree.Insert(a, false, s.compare))
}

// Replace is Add, except that an element already present (equal under
// the set's order) is swapped for a. The difference is only observable
// with comparators that equate distinct values, e.g. case-insensitive
// string orders.
func (s Set[A]) Replace(a A) Set[A] {
	return s.with(s.tree.Insert(a, true, s.compare))
}

// Remove returns a set without a. Removing an absent element is a no-op
// that returns the receiver itself.
func (s Set[A]) Remove(a A) Set[A] {
	return s.with(s.tree.Delete(a, s.compare))
}

// Clear returns an empty set with the same order.
func (s Set[A]) Clear() Set[A] { return Set[A]{compare: s.compare} }

// Min returns the smallest element, or ErrEmpty.
func (s Set[A]) Min() (A, error) {
	if m := s.tree.Min(); m.Ok {
		return m.Value, nil
	}
	var zero A
	return zero, ErrEmpty
}

// Max returns the greatest element, or ErrEmpty.
func (s Set[A]) Max() (A, error) {
	if m := s.tree.Max(); m.Ok {
		return m.Value, nil
	}
	var zero A
	return zero, ErrEmpty
}

// RemoveMin returns the set without its smallest element, or ErrEmpty.
func (s Set[A]) RemoveMin() (Set[A], error) {
	if s.IsEmpty() {
		return s, ErrEmpty
	}
	return s.with(s.tree.Drop(1)), nil
}

// RemoveMax returns the set without its greatest element, or ErrEmpty.
func (s Set[A]) RemoveMax() (Set[A], error) {
	if s.IsEmpty() {
		return s, ErrEmpty
	}
	return s.with(s.tree.Take(s.Len() - 1)), nil
}

// MinAfter returns the smallest element strictly greater than a, or
// None when a is at or past the end.
func (s Set[A]) MinAfter(a A) g.Option[A] {
	return s.tree.MinAfter(a, s.compare)
}

// MaxBefore returns the largest element strictly less than a, or None
// when a is at or before the start.
func (s Set[A]) MaxBefore(a A) g.Option[A] {
	return s.tree.MaxBefore(a, s.compare)
}

// All returns a lazy ascending sequence over the elements. The set is
// immutable, so the sequence may be ranged over any number of times and
// always replays the same elements.
func (s Set[A]) All() iter.Seq[A] { return s.tree.All() }

// From is All starting at the smallest element >= start.
func (s Set[A]) From(start A) iter.Seq[A] {
	return s.tree.From(start, s.compare)
}

// ForEach visits every element in ascending order.
func (s Set[A]) ForEach(visit func(A)) { s.tree.ForEach(visit) }

// Values returns the elements in ascending order as a fresh slice.
func (s Set[A]) Values() []A {
	out := make([]A, 0, s.Len())
	s.tree.ForEach(func(a A) { out = append(out, a) })
	return out
}
