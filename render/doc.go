/*
Package render draws red-black trees, for terminals and for HTML pages.

Renderers inspect trees through the read-only node accessors of package
rbtree and never modify them. Layout computes the placement of nodes in a
grid (depth and in-order column), which is the common ground of all the
renderers in this package and may be used by other visualizers as well.

Console output is notoriously tricky for scripts other than Latin, as the
display width of a string is not its length in bytes or runes. Labels are
measured by their grapheme clusters and East Asian width properties
(UAX #11), so trees with wide keys line up as well.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package render

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'rbtree'
func tracer() tracing.Trace {
	return tracing.Select("rbtree")
}
