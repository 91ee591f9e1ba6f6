// Package rbtree implements a persistent red-black tree over unique keys
// under a caller-supplied total order.
//
// Persistent means every mutating operation leaves the old tree intact
// and returns a new version; the two versions share all subtrees the
// edit did not touch, so a mutation allocates O(log n) nodes. Old
// versions stay valid for as long as anything references them, and any
// number of goroutines may read any version concurrently without
// locking.
//
// Insertion rebalances in the style of Okasaki's functional red-black
// trees; deletion follows Kahrs. Rank and key ranges are cut out with a
// black-height join, directed by the per-node size cache, so they cost
// O(log n) rather than a rebuild.
package rbtree

import (
	g "github.com/anacrolix/generics"
)

// Tree is one immutable version of a sorted collection of unique keys.
// The zero value is the empty tree.
//
// The comparator is supplied per call and must implement the same total
// order in every call on trees derived from one another.
type Tree[A any] struct {
	root *node[A]
}

// Len returns the number of keys. O(1) from the size cache.
func (t Tree[A]) Len() int { return t.root.count() }

// IsEmpty reports whether the tree holds no keys.
func (t Tree[A]) IsEmpty() bool { return t.root == nil }

// Contains reports whether key is present.
func (t Tree[A]) Contains(key A, cmp Compare[A]) bool {
	n := t.root
	for n != nil {
		switch c := cmp(key, n.key); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return true
		}
	}
	return false
}

// Min returns the smallest key, or None for the empty tree.
func (t Tree[A]) Min() g.Option[A] {
	n := t.root
	if n == nil {
		return g.None[A]()
	}
	for n.left != nil {
		n = n.left
	}
	return g.Some(n.key)
}

// Max returns the greatest key, or None for the empty tree.
func (t Tree[A]) Max() g.Option[A] {
	n := t.root
	if n == nil {
		return g.None[A]()
	}
	for n.right != nil {
		n = n.right
	}
	return g.Some(n.key)
}

// Insert returns a tree that also contains key. When an equivalent key
// is already present the receiver is returned as-is — sharing the
// identical root, so callers may rely on pointer equality to detect the
// no-op — unless overwrite is set, in which case the stored key is
// replaced (observable only with comparators that equate distinct
// values).
func (t Tree[A]) Insert(key A, overwrite bool, cmp Compare[A]) Tree[A] {
	root := ins(t.root, key, overwrite, cmp)
	if root == t.root {
		return t
	}
	return Tree[A]{root.blacken()}
}

func ins[A any](n *node[A], key A, overwrite bool, cmp Compare[A]) *node[A] {
	if n == nil {
		return mk(red, key, nil, nil)
	}
	switch c := cmp(key, n.key); {
	case c < 0:
		l := ins(n.left, key, overwrite, cmp)
		if l == n.left {
			return n
		}
		return balanceLeft(n.color, n.key, l, n.right)
	case c > 0:
		r := ins(n.right, key, overwrite, cmp)
		if r == n.right {
			return n
		}
		return balanceRight(n.color, n.key, n.left, r)
	default:
		if !overwrite {
			return n
		}
		return mk(n.color, key, n.left, n.right)
	}
}

// balanceLeft repairs a red-red pair introduced in l while rebuilding
// the path after an insert. Only a black node can absorb the repair.
func balanceLeft[A any](c color, key A, l, r *node[A]) *node[A] {
	if c == black && l.isRed() {
		if l.left.isRed() {
			return mk(red, l.key,
				l.left.blacken(),
				mk(black, key, l.right, r))
		}
		if l.right.isRed() {
			lr := l.right
			return mk(red, lr.key,
				mk(black, l.key, l.left, lr.left),
				mk(black, key, lr.right, r))
		}
	}
	return mk(c, key, l, r)
}

// balanceRight is the mirror of balanceLeft.
func balanceRight[A any](c color, key A, l, r *node[A]) *node[A] {
	if c == black && r.isRed() {
		if r.right.isRed() {
			return mk(red, r.key,
				mk(black, key, l, r.left),
				r.right.blacken())
		}
		if r.left.isRed() {
			rl := r.left
			return mk(red, rl.key,
				mk(black, key, l, rl.left),
				mk(black, r.key, rl.right, r.right))
		}
	}
	return mk(c, key, l, r)
}

// Delete returns a tree without key. When key is absent the receiver is
// returned unchanged, sharing the identical root.
func (t Tree[A]) Delete(key A, cmp Compare[A]) Tree[A] {
	if !t.Contains(key, cmp) {
		return t
	}
	return Tree[A]{del(t.root, key, cmp).blacken()}
}

// del removes key from the subtree, temporarily running one black short
// on the rebuilt path; balLeft/balRight restore the deficit on the way
// back up.
func del[A any](n *node[A], key A, cmp Compare[A]) *node[A] {
	if n == nil {
		return nil
	}
	switch c := cmp(key, n.key); {
	case c < 0:
		if n.left.isBlackNode() {
			return balLeft(n.key, del(n.left, key, cmp), n.right)
		}
		return mk(red, n.key, del(n.left, key, cmp), n.right)
	case c > 0:
		if n.right.isBlackNode() {
			return balRight(n.key, n.left, del(n.right, key, cmp))
		}
		return mk(red, n.key, n.left, del(n.right, key, cmp))
	default:
		return fuse(n.left, n.right)
	}
}

// balLeft rebuilds a node whose left subtree is one black short.
func balLeft[A any](key A, l, r *node[A]) *node[A] {
	switch {
	case l.isRed():
		return mk(red, key, l.blacken(), r)
	case r.isBlackNode():
		return balance(key, l, r.redden())
	case r.isRed() && r.left.isBlackNode():
		return mk(red, r.left.key,
			mk(black, key, l, r.left.left),
			balance(r.key, r.left.right, r.right.redden()))
	}
	panic("rbtree: invariance violation in balLeft")
}

// balRight rebuilds a node whose right subtree is one black short.
func balRight[A any](key A, l, r *node[A]) *node[A] {
	switch {
	case r.isRed():
		return mk(red, key, l, r.blacken())
	case l.isBlackNode():
		return balance(key, l.redden(), r)
	case l.isRed() && l.right.isBlackNode():
		return mk(red, l.right.key,
			balance(l.key, l.left.redden(), l.right.left),
			mk(black, key, l.right.right, r))
	}
	panic("rbtree: invariance violation in balRight")
}

// balance absorbs a possible red-red pair on either side of key.
func balance[A any](key A, l, r *node[A]) *node[A] {
	switch {
	case l.isRed() && r.isRed():
		return mk(red, key, l.blacken(), r.blacken())
	case l.isRed() && l.left.isRed():
		return mk(red, l.key,
			l.left.blacken(),
			mk(black, key, l.right, r))
	case l.isRed() && l.right.isRed():
		return mk(red, l.right.key,
			mk(black, l.key, l.left, l.right.left),
			mk(black, key, l.right.right, r))
	case r.isRed() && r.right.isRed():
		return mk(red, r.key,
			mk(black, key, l, r.left),
			r.right.blacken())
	case r.isRed() && r.left.isRed():
		return mk(red, r.left.key,
			mk(black, key, l, r.left.left),
			mk(black, r.key, r.left.right, r.right))
	default:
		return mk(black, key, l, r)
	}
}

// fuse concatenates two subtrees of equal black height whose keys are
// already ordered around a removed root.
func fuse[A any](l, r *node[A]) *node[A] {
	switch {
	case l == nil:
		return r
	case r == nil:
		return l
	case l.isRed() && r.isRed():
		m := fuse(l.right, r.left)
		if m.isRed() {
			return mk(red, m.key,
				mk(red, l.key, l.left, m.left),
				mk(red, r.key, m.right, r.right))
		}
		return mk(red, l.key, l.left, mk(red, r.key, m, r.right))
	case l.isBlackNode() && r.isBlackNode():
		m := fuse(l.right, r.left)
		if m.isRed() {
			return mk(red, m.key,
				mk(black, l.key, l.left, m.left),
				mk(black, r.key, m.right, r.right))
		}
		return balLeft(l.key, l.left, mk(black, r.key, m, r.right))
	case r.isRed():
		return mk(red, r.key, fuse(l, r.left), r.right)
	default: // l red, r black
		return mk(red, l.key, l.left, fuse(l.right, r))
	}
}
