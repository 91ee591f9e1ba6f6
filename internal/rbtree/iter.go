package rbtree

import "iter"

// All returns a lazy ascending sequence over the keys. The backing tree
// never changes, so the sequence is restartable: ranging over it again
// replays the identical keys.
func (t Tree[A]) All() iter.Seq[A] {
	return func(yield func(A) bool) {
		var stack []*node[A]
		for n := t.root; n != nil; n = n.left {
			stack = append(stack, n)
		}
		emit(stack, yield)
	}
}

// From is All starting at the smallest key >= start. The skipped prefix
// is never visited: the seeding descent pushes only nodes at or after
// start.
func (t Tree[A]) From(start A, cmp Compare[A]) iter.Seq[A] {
	return func(yield func(A) bool) {
		var stack []*node[A]
		for n := t.root; n != nil; {
			if cmp(start, n.key) <= 0 {
				stack = append(stack, n)
				n = n.left
			} else {
				n = n.right
			}
		}
		emit(stack, yield)
	}
}

// emit pops the pending stack in order, pushing each popped node's
// right child's left spine. The stack always holds the not-yet-visited
// ancestors in descending key order.
func emit[A any](stack []*node[A], yield func(A) bool) {
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !yield(n.key) {
			return
		}
		for m := n.right; m != nil; m = m.left {
			stack = append(stack, m)
		}
	}
}

// ForEach visits every key in ascending order. Cheaper than All when
// the whole tree is wanted.
func (t Tree[A]) ForEach(visit func(A)) { forEach(t.root, visit) }

func forEach[A any](n *node[A], visit func(A)) {
	if n == nil {
		return
	}
	forEach(n.left, visit)
	visit(n.key)
	forEach(n.right, visit)
}
