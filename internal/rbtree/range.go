package rbtree

import (
	g "github.com/anacrolix/generics"
)

// Range returns the keys x with from <= x < until under cmp.
func (t Tree[A]) Range(from, until A, cmp Compare[A]) Tree[A] {
	return t.RangeOpt(g.Some(from), g.Some(until), cmp)
}

// RangeOpt is Range with optional bounds; None leaves that side
// unbounded. With both bounds absent the receiver is returned as-is.
func (t Tree[A]) RangeOpt(from, until g.Option[A], cmp Compare[A]) Tree[A] {
	root := t.root
	if from.Ok {
		root = splitGE(root, from.Value, cmp)
	}
	if until.Ok {
		root = splitLT(root, until.Value, cmp)
	}
	if root == t.root {
		return t
	}
	return Tree[A]{root.blacken()}
}

// splitGE keeps the keys >= pivot.
func splitGE[A any](n *node[A], pivot A, cmp Compare[A]) *node[A] {
	if n == nil {
		return nil
	}
	if cmp(pivot, n.key) <= 0 {
		return join(splitGE(n.left, pivot, cmp), n.key, n.right)
	}
	return splitGE(n.right, pivot, cmp)
}

// splitLT keeps the keys < pivot.
func splitLT[A any](n *node[A], pivot A, cmp Compare[A]) *node[A] {
	if n == nil {
		return nil
	}
	if cmp(pivot, n.key) <= 0 {
		return splitLT(n.left, pivot, cmp)
	}
	return join(n.left, n.key, splitLT(n.right, pivot, cmp))
}

// MinAfter returns the smallest key strictly greater than key, present
// or not, or None when nothing sorts after it.
func (t Tree[A]) MinAfter(key A, cmp Compare[A]) (ret g.Option[A]) {
	for n := t.root; n != nil; {
		if cmp(key, n.key) < 0 {
			ret = g.Some(n.key)
			n = n.left
		} else {
			n = n.right
		}
	}
	return
}

// MaxBefore returns the largest key strictly less than key, or None
// when nothing sorts before it.
func (t Tree[A]) MaxBefore(key A, cmp Compare[A]) (ret g.Option[A]) {
	for n := t.root; n != nil; {
		if cmp(key, n.key) > 0 {
			ret = g.Some(n.key)
			n = n.right
		} else {
			n = n.left
		}
	}
	return
}
