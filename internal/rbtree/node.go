package rbtree

import "github.com/anacrolix/missinggo/v2/panicif"

type color uint8

const (
	red color = iota
	black
)

// Compare is a total order over A: negative when a sorts before b,
// positive when b sorts first, zero when the two are equivalent.
type Compare[A any] func(a, b A) int

// node is either nil (the empty sentinel) or an internal node owning its
// two subtrees. A node is never modified once built; edits copy the path
// from the root to the change and share every other subtree, so any
// number of tree versions may point into the same nodes.
type node[A any] struct {
	key         A
	color       color
	left, right *node[A]
	size        int // nodes in the subtree rooted here, including this one
}

func mk[A any](c color, key A, l, r *node[A]) *node[A] {
	return &node[A]{
		key:   key,
		color: c,
		left:  l,
		right: r,
		size:  1 + l.count() + r.count(),
	}
}

func (n *node[A]) count() int {
	if n == nil {
		return 0
	}
	return n.size
}

func (n *node[A]) isRed() bool { return n != nil && n.color == red }

// isBlackNode is false for the empty sentinel, unlike !isRed.
func (n *node[A]) isBlackNode() bool { return n != nil && n.color == black }

// blacken returns n with a black root. The empty tree is already black.
func (n *node[A]) blacken() *node[A] {
	if n.isRed() {
		return mk(black, n.key, n.left, n.right)
	}
	return n
}

// redden returns n with a red root. Reddening the empty tree would
// break the black-height invariant; only the rebalancing code calls
// this, and never with the sentinel.
func (n *node[A]) redden() *node[A] {
	panicif.True(n == nil)
	if n.color == red {
		return n
	}
	return mk(red, n.key, n.left, n.right)
}

// blackHeight counts the black nodes on the path to the leftmost leaf.
// The black-height invariant makes every root-to-leaf path agree.
func (n *node[A]) blackHeight() int {
	h := 0
	for ; n != nil; n = n.left {
		if n.color == black {
			h++
		}
	}
	return h
}
