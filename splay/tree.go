package splay

import (
	"fmt"
)

// Tree is an order-statistics splay tree over values of type T.
//
// The zero value is a valid, empty tree. Trees are not safe for concurrent
// use; even read access through Find or At restructures the tree.
type Tree[T any] struct {
	root     *Node[T]
	stats    Stats
	consumed bool
}

// New creates an empty tree.
func New[T any]() *Tree[T] {
	return &Tree[T]{}
}

// Build creates a tree whose in-order sequence equals values.
//
// Construction picks the midpoint of every sub-range as subtree root, so the
// initial tree has logarithmic height.
func Build[T any](values []T) *Tree[T] {
	t := New[T]()
	t.root = build[T](values, nil)
	tracer().Debugf("built splay tree of %d nodes", t.Len())
	return t
}

func build[T any](values []T, parent *Node[T]) *Node[T] {
	if len(values) == 0 {
		return nil
	}
	m := len(values) / 2
	n := newNode(values[m])
	n.parent = parent
	n.left = build(values[:m], n)
	n.right = build(values[m+1:], n)
	n.update()
	return n
}

func (t *Tree[T]) invalidate() {
	t.root = nil
	t.consumed = true
}

func (t *Tree[T]) usable() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrIllegalArguments)
	}
	if t.consumed {
		return ErrConsumed
	}
	return nil
}

// IsEmpty reports whether the tree holds no values.
func (t *Tree[T]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// IsConsumed reports whether t has been handed to Split or Merge.
func (t *Tree[T]) IsConsumed() bool {
	return t != nil && t.consumed
}

// Len returns the number of values in the tree.
func (t *Tree[T]) Len() int {
	if t == nil {
		return 0
	}
	return t.root.Size()
}

// Root returns the current root node, or nil for an empty tree.
func (t *Tree[T]) Root() *Node[T] {
	if t == nil {
		return nil
	}
	return t.root
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *Tree[T]) Height() int {
	if t == nil {
		return 0
	}
	return height(t.root)
}

func height[T any](n *Node[T]) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.left), height(n.right))
}

// Stats returns a snapshot of the restructuring counters of t.
func (t *Tree[T]) Stats() Stats {
	if t == nil {
		return Stats{}
	}
	return t.stats
}

// ResetStats clears the restructuring counters of t.
func (t *Tree[T]) ResetStats() {
	if t != nil {
		t.stats = Stats{}
	}
}

// Find returns the node at the 0-based in-order position rank and splays it
// to the root.
func (t *Tree[T]) Find(rank int) (*Node[T], error) {
	if err := t.usable(); err != nil {
		return nil, err
	}
	if rank < 0 || rank >= t.Len() {
		return nil, fmt.Errorf("%w: rank %d not in [0,%d)", ErrIndexOutOfBounds, rank, t.Len())
	}
	t.root = find(t.root, rank, &t.stats)
	return t.root, nil
}

// At returns the value at position rank. The node found is splayed to the root.
func (t *Tree[T]) At(rank int) (T, error) {
	var zero T
	n, err := t.Find(rank)
	if err != nil {
		return zero, err
	}
	return n.value, nil
}

// RankOf returns the in-order position of n, which must be a node of t.
// The tree is not restructured.
func (t *Tree[T]) RankOf(n *Node[T]) int {
	assert(n != nil, "RankOf called with nil node")
	return n.rank()
}

// Slice returns the values at positions [from, to).
//
// The node at from is splayed to the root, the remaining values are collected
// from its right subtree in order.
func (t *Tree[T]) Slice(from, to int) ([]T, error) {
	if err := t.usable(); err != nil {
		return nil, err
	}
	if from < 0 || to < from || to > t.Len() {
		return nil, fmt.Errorf("%w: range [%d,%d) with size %d", ErrIndexOutOfBounds, from, to, t.Len())
	}
	if from == to {
		return []T{}, nil
	}
	n, err := t.Find(from)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, to-from)
	out = append(out, n.value)
	for v := range inorder(n.right) {
		if len(out) == cap(out) {
			break
		}
		out = append(out, v)
	}
	return out, nil
}

// Split partitions the tree into positions [0, rank) and [rank, Len()).
//
// Split consumes t: on success t is left empty and unusable, its nodes now
// belong to left and right. rank == Len() yields an empty right tree,
// rank == 0 an empty left tree. An invalid rank leaves t untouched.
func (t *Tree[T]) Split(rank int) (left, right *Tree[T], err error) {
	if err = t.usable(); err != nil {
		return nil, nil, err
	}
	if rank < 0 || rank > t.Len() {
		return nil, nil, fmt.Errorf("%w: split rank %d not in [0,%d]", ErrIndexOutOfBounds, rank, t.Len())
	}
	size := t.Len()
	lroot, rroot := splitAt(t.root, rank, &t.stats)
	left, right = &Tree[T]{root: lroot, stats: t.stats}, &Tree[T]{root: rroot}
	tracer().Debugf("split tree of %d at %d into %d|%d", size, rank, left.Len(), right.Len())
	t.invalidate()
	return left, right, nil
}

// Merge concatenates left and right, in this order, into a new tree.
//
// Merge consumes both arguments. If either tree is empty, the nodes of the
// other one are handed over unchanged. Otherwise the maximum node of left is
// splayed to the root and receives right as its right subtree.
func Merge[T any](left, right *Tree[T]) (*Tree[T], error) {
	if err := left.usable(); err != nil {
		return nil, err
	}
	if err := right.usable(); err != nil {
		return nil, err
	}
	if left == right {
		return nil, fmt.Errorf("%w: cannot merge a tree with itself", ErrIllegalArguments)
	}
	tracer().Debugf("merging trees %d+%d", left.Len(), right.Len())
	out := &Tree[T]{stats: left.stats}
	out.stats.absorb(&right.stats)
	out.root = join(left.root, right.root, &out.stats)
	left.invalidate()
	right.invalidate()
	return out, nil
}

// Move cuts the range of positions [i, j] and re-inserts it before position k
// of the remaining sequence. k is counted after the range has been removed,
// thus 0 <= k <= Len()-(j-i+1).
//
// Arguments are checked before any restructuring; on error t is unchanged.
// Move is composed of three splits and three merges:
//
//	[0,j] | (j,end)   =>  [0,i) | [i,j] | (j,end)
//	[0,i) + (j,end)   =>  outer,  split at k
//	outer[0,k) + [i,j] + outer[k,end)
func (t *Tree[T]) Move(i, j, k int) error {
	if err := t.usable(); err != nil {
		return err
	}
	if err := checkMove(i, j, k, t.Len()); err != nil {
		return err
	}
	st := &t.stats
	left1, right1 := splitAt(t.root, j+1, st)
	left2, mid := splitAt(left1, i, st)
	outer := join(left2, right1, st)
	outerLeft, outerRight := splitAt(outer, k, st)
	t.root = join(join(outerLeft, mid, st), outerRight, st)
	return nil
}

func checkMove(i, j, k, size int) error {
	if i > j {
		return fmt.Errorf("%w: move range [%d,%d] is inverted", ErrIllegalArguments, i, j)
	}
	if i < 0 || j >= size {
		return fmt.Errorf("%w: move range [%d,%d] with size %d", ErrIndexOutOfBounds, i, j, size)
	}
	if rest := size - (j - i + 1); k < 0 || k > rest {
		return fmt.Errorf("%w: move target %d not in [0,%d]", ErrIndexOutOfBounds, k, rest)
	}
	return nil
}
