/*
Package rope offers a text type optimized for cutting and re-inserting ranges.

# Ropes

Ropes (sometimes called cords) organize text in a tree structure instead of a
contiguous array of bytes. This package stores one character per tree node,
in a self-adjusting splay tree which is ordered by position rather than by a
key. Locating a position, splitting a text in two and concatenating two texts
all take amortized logarithmic time. The central editing operation is Move,
which cuts a range of characters and pastes it somewhere else:

	r := rope.FromString("abcdef")
	_ = r.Move(2, 3, 0)  // cut "cd", paste it at the front
	fmt.Println(r)       // cdabef

From Wikipedia:
In computer programming, a rope, or cord, is a data structure composed of
smaller strings that is used to efficiently store and manipulate a very long string.
For example, a text editing program may use a rope to represent the text being edited,
so that operations such as insertion, deletion, and random access can be
done efficiently. […] In summary, ropes are preferable when the data is large
and modified often.

# Ownership

Ropes are mutable. Split, Cut and Concat consume their input ropes: the
characters move into the resulting ropes, and the inputs are left void and
unusable (operations on them fail with ErrConsumed).

Every operation on a rope restructures its tree, including read access by
position. A rope shared between goroutines has to be guarded by a single
exclusive lock; see package document for a host which does this.

_________________________________________________________________________

# BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package rope

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// RopeError is an error type for the rope module
type RopeError string

func (e RopeError) Error() string {
	return string(e)
}

// ErrIndexOutOfBounds is flagged whenever a rope position is
// outside of the rope's range.
const ErrIndexOutOfBounds = RopeError("index out of bounds")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = RopeError("illegal arguments")

// ErrConsumed is flagged when a rope is used after it has been handed to
// Split, Cut or Concat.
const ErrConsumed = RopeError("rope has been consumed by a split or concatenation")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
