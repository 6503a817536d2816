package splay

import "errors"

var (
	// ErrIndexOutOfBounds signals an invalid rank.
	ErrIndexOutOfBounds = errors.New("splay: index out of bounds")
	// ErrIllegalArguments signals inconsistent operation parameters, e.g. i > j for a move.
	ErrIllegalArguments = errors.New("splay: illegal arguments")
	// ErrConsumed signals use of a tree which has been handed to Split or Merge.
	ErrConsumed = errors.New("splay: tree has been consumed")
	// ErrInvariant signals a broken structural invariant, as reported by Check.
	ErrInvariant = errors.New("splay: invariant violated")
)
