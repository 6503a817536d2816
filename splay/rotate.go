package splay

// rotateRight lifts n, which must be a left child, above its parent:
//
//	    p            n
//	   / \          / \
//	  n   c   =>   a   p
//	 / \              / \
//	a   b            b   c
func rotateRight[T any](n *Node[T], st *Stats) {
	p := n.parent
	assert(p != nil && p.left == n, "rotateRight: node is not a left child")
	g := p.parent
	p.setLeft(n.right)
	n.setRight(p)
	replaceChild(g, p, n)
	p.update()
	n.update()
	st.rotated()
}

// rotateLeft lifts n, which must be a right child, above its parent.
func rotateLeft[T any](n *Node[T], st *Stats) {
	p := n.parent
	assert(p != nil && p.right == n, "rotateLeft: node is not a right child")
	g := p.parent
	p.setRight(n.left)
	n.setLeft(p)
	replaceChild(g, p, n)
	p.update()
	n.update()
	st.rotated()
}

// rotate lifts n above its parent, choosing the direction from n's side.
func rotate[T any](n *Node[T], st *Stats) {
	if n.isLeftChild() {
		rotateRight(n, st)
	} else {
		rotateLeft(n, st)
	}
}

// replaceChild re-points the link of g which referenced old to n.
// If g is nil, n becomes a root.
func replaceChild[T any](g, old, n *Node[T]) {
	n.parent = g
	if g == nil {
		return
	}
	if g.left == old {
		g.left = n
	} else {
		g.right = n
	}
}

// splayNode brings n to the root of its tree by zig, zig-zig and zig-zag
// steps. The in-order sequence is unchanged; sizes along the path are
// recomputed by the rotations.
func splayNode[T any](n *Node[T], st *Stats) *Node[T] {
	st.splayed()
	for n.parent != nil {
		p := n.parent
		g := p.parent
		switch {
		case g == nil: // zig
			rotate(n, st)
		case n.isLeftChild() == p.isLeftChild(): // zig-zig
			rotate(p, st)
			rotate(n, st)
		default: // zig-zag
			rotate(n, st)
			rotate(n, st)
		}
	}
	return n
}

// find locates the node at rank within the tree rooted at root and splays it
// to the top. It returns the new root.
func find[T any](root *Node[T], rank int, st *Stats) *Node[T] {
	assert(rank >= 0 && rank < root.Size(), "find: rank out of range")
	st.found()
	return splayNode(root.locate(rank), st)
}

// splitAt splits the tree rooted at root into ranks [0, rank) and
// [rank, size). Either result may be nil.
func splitAt[T any](root *Node[T], rank int, st *Stats) (left, right *Node[T]) {
	if rank == root.Size() {
		return root, nil
	}
	right = find(root, rank, st)
	left = right.left
	if left != nil {
		left.parent = nil
		right.left = nil
		right.update()
	}
	return left, right
}

// join concatenates the trees rooted at left and right, in this order, and
// returns the new root.
func join[T any](left, right *Node[T], st *Stats) *Node[T] {
	if left == nil {
		return right
	}
	if right == nil {
		return left
	}
	m := find(left, left.size-1, st)
	assert(m.right == nil, "join: maximum node has a right child")
	m.setRight(right)
	m.update()
	return m
}
