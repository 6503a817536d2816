/*
Package splay provides an order-statistics splay tree, the backend for
positional ropes.

The tree is not a map or set container. Nodes carry no search key: every node
holds one opaque value, and the order of values is the in-order order of the
tree. Positions (ranks) are derived from subtree sizes during descent and
are never stored, as splaying moves nodes between subtrees without changing
their relative order.

Supported operations:
  - midpoint construction from a slice (`Build`),
  - rank-directed search with splaying (`Find`, `At`),
  - destructive split and merge (`Split`, `Merge`),
  - cut-and-paste of a contiguous range (`Move`),
  - lazy in-order and level-order traversal (`All`, `LevelOrder`),
  - invariant checking (`Check`) and rotation statistics (`Stats`).

Ownership model:
  - `Split` consumes its receiver and returns two fresh trees,
  - `Merge` consumes both arguments and returns a fresh tree,
  - a consumed tree is empty, and mutating calls on it fail with ErrConsumed.

Every operation, including `Find`, restructures the tree. A tree must
therefore be guarded by a single exclusive lock if shared between goroutines.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package splay

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'rope.splay'
func tracer() tracing.Trace {
	return tracing.Select("rope.splay")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
