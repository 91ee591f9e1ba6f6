package treeset

import (
	g "github.com/anacrolix/generics"
)

// Take returns the n smallest elements. n clamps to [0, Len()].
func (s Set[A]) Take(n int) Set[A] { return s.with(s.tree.Take(n)) }

// Drop returns all but the n smallest elements. n clamps to [0, Len()].
func (s Set[A]) Drop(n int) Set[A] { return s.with(s.tree.Drop(n)) }

// Slice returns the elements ranked from..until-1 in ascending order.
// Bounds clamp; until <= from yields the empty set.
func (s Set[A]) Slice(from, until int) Set[A] {
	return s.with(s.tree.Slice(from, until))
}

// TakeRight returns the n greatest elements.
func (s Set[A]) TakeRight(n int) Set[A] { return s.Drop(s.Len() - n) }

// DropRight returns all but the n greatest elements.
func (s Set[A]) DropRight(n int) Set[A] { return s.Take(s.Len() - n) }

// countWhile returns the rank of the first element failing pred,
// scanning ascending and stopping at the first failure.
func (s Set[A]) countWhile(pred func(A) bool) int {
	k := 0
	for a := range s.All() {
		if !pred(a) {
			break
		}
		k++
	}
	return k
}

// TakeWhile returns the longest ascending prefix whose elements all
// satisfy pred. pred is not called past the first failing element.
func (s Set[A]) TakeWhile(pred func(A) bool) Set[A] {
	return s.Take(s.countWhile(pred))
}

// DropWhile returns the set without its TakeWhile prefix.
func (s Set[A]) DropWhile(pred func(A) bool) Set[A] {
	return s.Drop(s.countWhile(pred))
}

// Span returns the TakeWhile prefix and the rest, splitting the set in
// one scan.
func (s Set[A]) Span(pred func(A) bool) (Set[A], Set[A]) {
	k := s.countWhile(pred)
	return s.Take(k), s.Drop(k)
}

// Range returns the elements x with from <= x < until.
func (s Set[A]) Range(from, until A) Set[A] {
	return s.with(s.tree.Range(from, until, s.compare))
}

// RangeOpt is Range with optional bounds; None leaves that side open.
func (s Set[A]) RangeOpt(from, until g.Option[A]) Set[A] {
	return s.with(s.tree.RangeOpt(from, until, s.compare))
}

// RangeFrom returns the elements >= from.
func (s Set[A]) RangeFrom(from A) Set[A] {
	return s.RangeOpt(g.Some(from), g.None[A]())
}

// RangeUntil returns the elements < until.
func (s Set[A]) RangeUntil(until A) Set[A] {
	return s.RangeOpt(g.None[A](), g.Some(until))
}
