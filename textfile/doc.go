/*
Package textfile loads rope editing scripts from text files.

A script is line oriented:

	line 1       the initial text, lowercase letters a…z only
	line 2       the number q of operations
	q lines      three integers "i j k" each

Every operation line describes a cut-and-paste (see rope.MoveOp): cut the
characters at positions [i, j] and paste them before position k of the
remaining text. All operations are validated while parsing, before any rope is
built, so running a parsed script cannot fail half-way.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'rope.textfile'
func tracer() tracing.Trace {
	return tracing.Select("rope.textfile")
}
