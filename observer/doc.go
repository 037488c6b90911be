/*
Package observer broadcasts structural events of red-black trees to
subscribers, e.g. animators re-playing insertions and deletions step by step.

A Broadcaster is installed as the event sink of a tree. The tree hands over
every event synchronously; the broadcaster fans them out to any number of
subscriber channels, preserving their order.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package observer

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'rbtree'
func tracer() tracing.Trace {
	return tracing.Select("rbtree")
}
