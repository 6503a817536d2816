package splay

import "fmt"

// Check validates structural tree invariants:
//
//   - the root has no parent,
//   - every child points back to its parent,
//   - size(n) = 1 + size(n.left) + size(n.right) for every node.
//
// Check is meant for tests. It does not restructure the tree.
func (t *Tree[T]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvariant)
	}
	if t.root == nil {
		return nil
	}
	if t.root.parent != nil {
		return fmt.Errorf("%w: root has a parent", ErrInvariant)
	}
	_, err := checkNode(t.root)
	return err
}

func checkNode[T any](n *Node[T]) (int, error) {
	if n == nil {
		return 0, nil
	}
	if n.left != nil && n.left.parent != n {
		return 0, fmt.Errorf("%w: left child of %v does not link back", ErrInvariant, n.value)
	}
	if n.right != nil && n.right.parent != n {
		return 0, fmt.Errorf("%w: right child of %v does not link back", ErrInvariant, n.value)
	}
	l, err := checkNode(n.left)
	if err != nil {
		return 0, err
	}
	r, err := checkNode(n.right)
	if err != nil {
		return 0, err
	}
	if n.size != 1+l+r {
		return 0, fmt.Errorf("%w: node %v has size %d, expected %d", ErrInvariant, n.value, n.size, 1+l+r)
	}
	return n.size, nil
}
