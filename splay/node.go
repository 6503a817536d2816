package splay

// Node is a single element of a tree. It holds exactly one value.
//
// Left and right links own their subtrees, the parent link is a back-reference
// kept consistent with them. size counts the nodes of the subtree rooted here.
type Node[T any] struct {
	value  T
	size   int
	left   *Node[T]
	right  *Node[T]
	parent *Node[T]
}

func newNode[T any](value T) *Node[T] {
	return &Node[T]{value: value, size: 1}
}

// Value returns the payload of n.
func (n *Node[T]) Value() T {
	return n.value
}

// Size returns the number of nodes in the subtree rooted at n. A nil node has size 0.
func (n *Node[T]) Size() int {
	if n == nil {
		return 0
	}
	return n.size
}

// Left returns the left child of n, or nil.
func (n *Node[T]) Left() *Node[T] {
	if n == nil {
		return nil
	}
	return n.left
}

// Right returns the right child of n, or nil.
func (n *Node[T]) Right() *Node[T] {
	if n == nil {
		return nil
	}
	return n.right
}

// Parent returns the parent of n, or nil for a root.
func (n *Node[T]) Parent() *Node[T] {
	if n == nil {
		return nil
	}
	return n.parent
}

// update recomputes the size of n from its children. Children have to be
// up to date.
func (n *Node[T]) update() {
	n.size = 1 + n.left.Size() + n.right.Size()
}

func (n *Node[T]) isLeftChild() bool {
	return n.parent != nil && n.parent.left == n
}

// setLeft links c as the left child of n. It does not update sizes.
func (n *Node[T]) setLeft(c *Node[T]) {
	n.left = c
	if c != nil {
		c.parent = n
	}
}

// setRight links c as the right child of n. It does not update sizes.
func (n *Node[T]) setRight(c *Node[T]) {
	n.right = c
	if c != nil {
		c.parent = n
	}
}

// locate descends from n to the node at in-order position rank, relative to
// the subtree of n. rank has to be in [0, n.Size()).
func (n *Node[T]) locate(rank int) *Node[T] {
	c := n
	for c != nil {
		leftSize := c.left.Size()
		switch {
		case rank == leftSize:
			return c
		case rank < leftSize:
			c = c.left
		default:
			rank -= leftSize + 1
			c = c.right
		}
	}
	assert(false, "locate: rank exceeds subtree size")
	return nil
}

// rank computes the in-order position of n within its tree by walking up to
// the root. It does not restructure the tree.
func (n *Node[T]) rank() int {
	r := n.left.Size()
	for c := n; c.parent != nil; c = c.parent {
		if c.parent.right == c {
			r += c.parent.left.Size() + 1
		}
	}
	return r
}
