package rope

import (
	"fmt"

	"github.com/ivanbgd/rope/splay"
)

// MoveOp describes a cut-and-paste: the characters at positions [I, J]
// (inclusive) are cut and pasted right before position K of the text which
// remains after the cut.
//
// K = 0 pastes at the front, K = length-(J-I+1) appends at the end. Put
// differently, K is the number of remaining characters which precede the
// pasted range, which is the same as pasting after the K-th remaining
// character when counting from 1.
type MoveOp struct {
	I, J, K int
}

// Validate checks op against a text of the given length.
func (op MoveOp) Validate(length int) error {
	if op.I > op.J {
		return ErrIllegalArguments
	}
	if op.I < 0 || op.J >= length {
		return ErrIndexOutOfBounds
	}
	if rest := length - (op.J - op.I + 1); op.K < 0 || op.K > rest {
		return ErrIndexOutOfBounds
	}
	return nil
}

func (op MoveOp) String() string {
	return fmt.Sprintf("move[%d…%d]→%d", op.I, op.J, op.K)
}

// Apply performs op on r. It is a shortcut for r.Move(op.I, op.J, op.K).
func (op MoveOp) Apply(r *Rope) error {
	return r.Move(op.I, op.J, op.K)
}

// Move cuts the characters at positions [i, j] and pastes them before
// position k of the remaining text.
//
// Arguments have to satisfy 0 ≤ i ≤ j < Len() and 0 ≤ k ≤ Len()-(j-i+1).
// They are checked before any modification; on error r is unchanged.
func (r *Rope) Move(i, j, k int) error {
	tree, err := r.usableTree()
	if err != nil {
		return err
	}
	op := MoveOp{I: i, J: j, K: k}
	if err = op.Validate(tree.Len()); err != nil {
		T().Debugf("rejecting %v for rope of length %d", op, tree.Len())
		return err
	}
	err = tree.Move(i, j, k)
	assert(err == nil, "rope.Move: tree move failed for valid arguments")
	T().Debugf("%v applied", op)
	return nil
}

// Concat concatenates ropes and returns a new rope.
//
// All arguments are consumed. If any of them is unusable, none is consumed.
func Concat(r *Rope, others ...*Rope) (*Rope, error) {
	all := append([]*Rope{r}, others...)
	seen := make(map[*Rope]struct{}, len(all))
	for _, x := range all {
		if _, err := x.usableTree(); err != nil {
			return nil, err
		}
		if _, dup := seen[x]; dup {
			return nil, ErrIllegalArguments
		}
		seen[x] = struct{}{}
	}
	acc := all[0].tree
	if len(all) == 1 {
		all = append(all, &Rope{tree: splay.New[byte]()})
	}
	for _, x := range all[1:] {
		merged, err := splay.Merge(acc, x.tree)
		assert(err == nil, "rope.Concat: merge of usable trees failed")
		acc = merged
	}
	return fromTree(acc), nil
}

// Split splits a rope into two new (smaller) ropes right before position i.
// Split(R,i) => split R into R1 and R2, with R1=b0,...,bi-1 and R2=bi,...,bn.
//
// r is consumed.
func Split(r *Rope, i int) (*Rope, *Rope, error) {
	tree, err := r.usableTree()
	if err != nil {
		return nil, nil, err
	}
	if i < 0 || i > tree.Len() {
		return nil, nil, ErrIndexOutOfBounds
	}
	left, right, err := tree.Split(i)
	assert(err == nil, "rope.Split: tree split failed for valid index")
	return fromTree(left), fromTree(right), nil
}

// Cut cuts out a substring [i...i+l) from a rope. It returns a new rope
// without the cut-out segment and the cut segment itself.
//
// r is consumed.
func Cut(r *Rope, i, l int) (*Rope, *Rope, error) {
	tree, err := r.usableTree()
	if err != nil {
		return nil, nil, err
	}
	if i < 0 || l < 0 || i+l > tree.Len() {
		return nil, nil, ErrIndexOutOfBounds
	}
	front, back, err := tree.Split(i)
	assert(err == nil, "rope.Cut: first split failed")
	cut, back, err := back.Split(l)
	assert(err == nil, "rope.Cut: second split failed")
	rest, err := splay.Merge(front, back)
	assert(err == nil, "rope.Cut: merge failed")
	return fromTree(rest), fromTree(cut), nil
}
