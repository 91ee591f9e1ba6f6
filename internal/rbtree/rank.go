package rbtree

import "github.com/anacrolix/missinggo/v2/panicif"

// Take returns the n smallest keys as a tree. n clamps to [0, Len()];
// the full tree is returned as-is when n covers it.
func (t Tree[A]) Take(n int) Tree[A] {
	if n <= 0 {
		return Tree[A]{}
	}
	if n >= t.Len() {
		return t
	}
	l, _ := splitAt(t.root, n)
	panicif.NotEq(l.count(), n)
	return Tree[A]{l.blacken()}
}

// Drop returns all but the n smallest keys. n clamps to [0, Len()].
func (t Tree[A]) Drop(n int) Tree[A] {
	if n <= 0 {
		return t
	}
	if n >= t.Len() {
		return Tree[A]{}
	}
	_, r := splitAt(t.root, n)
	panicif.NotEq(r.count(), t.Len()-n)
	return Tree[A]{r.blacken()}
}

// Slice returns the keys ranked from..until-1 (ascending, 0-based).
// Bounds clamp to the tree and until <= from yields the empty tree.
func (t Tree[A]) Slice(from, until int) Tree[A] {
	return t.Take(until).Drop(from)
}

// splitAt cuts the tree into the i smallest keys and the rest. The size
// cache directs the descent, so only the nodes on the cut path are
// rebuilt; everything to either side is shared with the input.
func splitAt[A any](n *node[A], i int) (l, r *node[A]) {
	if n == nil {
		return nil, nil
	}
	if sl := n.left.count(); i <= sl {
		a, b := splitAt(n.left, i)
		return a, join(b, n.key, n.right)
	} else {
		a, b := splitAt(n.right, i-sl-1)
		return join(n.left, n.key, a), b
	}
}

// join builds a valid tree from two trees l and r of arbitrary black
// heights and a middle key that sorts after everything in l and before
// everything in r. The shorter tree is attached along the spine of the
// taller one and red-red pairs are rotated away on the way back up.
func join[A any](l *node[A], key A, r *node[A]) *node[A] {
	lh, rh := l.blackHeight(), r.blackHeight()
	switch {
	case lh > rh:
		t := joinRight(l, key, r, lh, rh)
		if t.isRed() && t.right.isRed() {
			t = mk(black, t.key, t.left, t.right)
		}
		return t
	case lh < rh:
		t := joinLeft(l, key, r, lh, rh)
		if t.isRed() && t.left.isRed() {
			t = mk(black, t.key, t.left, t.right)
		}
		return t
	default:
		if !l.isRed() && !r.isRed() {
			return mk(red, key, l, r)
		}
		return mk(black, key, l, r)
	}
}

// joinRight descends the right spine of l until it reaches a black
// subtree of r's black height and grafts r there under a red node.
func joinRight[A any](l *node[A], key A, r *node[A], lh, rh int) *node[A] {
	if lh == rh && !l.isRed() {
		return mk(red, key, l, r)
	}
	h := lh
	if l.color == black {
		h--
	}
	jr := joinRight(l.right, key, r, h, rh)
	if l.color == black && jr.isRed() && jr.right.isRed() {
		// Rotate left, pushing the extra red down to the right.
		return mk(red, jr.key,
			mk(black, l.key, l.left, jr.left),
			jr.right.blacken())
	}
	return mk(l.color, l.key, l.left, jr)
}

// joinLeft is the mirror of joinRight.
func joinLeft[A any](l *node[A], key A, r *node[A], lh, rh int) *node[A] {
	if lh == rh && !r.isRed() {
		return mk(red, key, l, r)
	}
	h := rh
	if r.color == black {
		h--
	}
	jl := joinLeft(l, key, r.left, lh, h)
	if r.color == black && jl.isRed() && jl.left.isRed() {
		return mk(red, jl.key,
			jl.left.blacken(),
			mk(black, r.key, jl.right, r.right))
	}
	return mk(r.color, r.key, jl, r.right)
}
