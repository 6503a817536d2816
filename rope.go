package rope

import (
	"iter"

	"github.com/ivanbgd/rope/splay"
)

// Rope stores text as a splay tree with one character per node.
//
// A rope created by
//
//	Rope{}
//
// is a valid object and behaves like the empty string.
//
// Positions are 0-based byte offsets. Characters are opaque bytes to the rope;
// clients restricting the alphabet (see package textfile) validate on input.
//
// Performance characteristics differ from Go strings (amortized bounds):
//
//	Operation     |   Rope          |  String
//	--------------+-----------------+--------
//	Index         |   O(log n)      |   O(1)
//	Split         |   O(log n)      |   O(1)
//	Concatenate   |   O(log n)      |   O(n)
//	Move          |   O(log n)      |   O(n)
//	Iterate       |   O(n)          |   O(n)
type Rope struct {
	tree *splay.Tree[byte]
}

// FromString creates a rope from a Go string.
func FromString(s string) *Rope {
	return &Rope{tree: splay.Build([]byte(s))}
}

func fromTree(tree *splay.Tree[byte]) *Rope {
	return &Rope{tree: tree}
}

// usableTree returns the tree of r, creating it for a zero rope.
func (r *Rope) usableTree() (*splay.Tree[byte], error) {
	if r == nil {
		return nil, ErrIllegalArguments
	}
	if r.tree == nil {
		r.tree = splay.New[byte]()
	}
	if r.tree.IsConsumed() {
		return nil, ErrConsumed
	}
	return r.tree, nil
}

// String returns the complete rope as a Go string. This may be an expensive
// operation, as it walks all nodes of the tree.
func (r *Rope) String() string {
	if r.IsVoid() {
		return ""
	}
	return string(r.tree.Values())
}

// IsVoid reports whether the rope has no characters.
func (r *Rope) IsVoid() bool {
	return r == nil || r.tree.IsEmpty()
}

// Len returns the rope length in bytes.
func (r *Rope) Len() int {
	if r == nil {
		return 0
	}
	return r.tree.Len()
}

// height returns the current height of the rope's tree.
func (r *Rope) height() int {
	if r == nil {
		return 0
	}
	return r.tree.Height()
}

// At returns the character at position i.
//
// At restructures the rope: the node found becomes the root of the tree.
func (r *Rope) At(i int) (byte, error) {
	tree, err := r.usableTree()
	if err != nil {
		return 0, err
	}
	if i < 0 || i >= tree.Len() {
		return 0, ErrIndexOutOfBounds
	}
	b, err := tree.At(i)
	assert(err == nil, "rope.At: tree lookup failed for valid index")
	return b, nil
}

// Report outputs a substring: Report(i,l) => outputs the string bi,...,bi+l-1.
func (r *Rope) Report(i, l int) (string, error) {
	tree, err := r.usableTree()
	if err != nil {
		return "", err
	}
	if i < 0 || l < 0 || i+l > tree.Len() {
		return "", ErrIndexOutOfBounds
	}
	b, err := tree.Slice(i, i+l)
	assert(err == nil, "rope.Report: tree slice failed for valid range")
	return string(b), nil
}

// Chars returns an iterator over all characters in position order.
//
// The iterator does not restructure the rope and may be restarted, but it
// must not be used across modifications of r.
func (r *Rope) Chars() iter.Seq[byte] {
	if r == nil || r.tree == nil {
		return func(func(byte) bool) {}
	}
	return r.tree.All()
}

// Nodes returns an iterator over the tree nodes of r in level order, together
// with their depth. Intended for debugging output.
func (r *Rope) Nodes() iter.Seq2[int, *splay.Node[byte]] {
	if r == nil || r.tree == nil {
		return func(func(int, *splay.Node[byte]) bool) {}
	}
	return r.tree.LevelOrder()
}
