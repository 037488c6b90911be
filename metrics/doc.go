/*
Package metrics provides some pre-manufactured metrics on red-black trees.

A metric is computed bottom-up: every NIL leaf contributes a neutral value,
and every node combines the values of its two subtrees with its own
properties. This is the way balance information is usually maintained in
augmented trees; here it is applied to whole trees after the fact, to
inspect their shape.

Collect uses metrics to gather shape statistics, which are handy for judging
how well a sequence of operations is balanced, as the command line tool
does with flag --stats.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package metrics

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'rbtree'
func tracer() tracing.Trace {
	return tracing.Select("rbtree")
}
