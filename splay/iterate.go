package splay

import "iter"

// All returns an iterator over the values of t in position order.
//
// The iterator does not restructure the tree and may be restarted. It must
// not be used across mutations of t.
func (t *Tree[T]) All() iter.Seq[T] {
	if t == nil {
		return inorder[T](nil)
	}
	return inorder(t.root)
}

// ForEach calls fn for every value in position order.
// Iteration stops early if fn returns false.
func (t *Tree[T]) ForEach(fn func(T) bool) {
	if fn == nil {
		return
	}
	for v := range t.All() {
		if !fn(v) {
			return
		}
	}
}

// Values collects all values of t in position order.
func (t *Tree[T]) Values() []T {
	out := make([]T, 0, t.Len())
	for v := range t.All() {
		out = append(out, v)
	}
	return out
}

// inorder walks the subtree of n iteratively, with an explicit stack, as
// splay trees may temporarily degenerate to linear height.
func inorder[T any](n *Node[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		var stack []*Node[T]
		c := n
		for c != nil || len(stack) > 0 {
			for c != nil {
				stack = append(stack, c)
				c = c.left
			}
			c = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(c.value) {
				return
			}
			c = c.right
		}
	}
}

// LevelOrder returns an iterator over the nodes of t in breadth-first order,
// starting at the root. Intended for debugging output.
func (t *Tree[T]) LevelOrder() iter.Seq2[int, *Node[T]] {
	return func(yield func(int, *Node[T]) bool) {
		if t == nil || t.root == nil {
			return
		}
		type entry struct {
			n     *Node[T]
			depth int
		}
		queue := []entry{{t.root, 0}}
		for len(queue) > 0 {
			e := queue[0]
			queue = queue[1:]
			if !yield(e.depth, e.n) {
				return
			}
			if e.n.left != nil {
				queue = append(queue, entry{e.n.left, e.depth + 1})
			}
			if e.n.right != nil {
				queue = append(queue, entry{e.n.right, e.depth + 1})
			}
		}
	}
}
