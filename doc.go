/*
Package rbtree implements an ordered set over totally ordered keys, kept
balanced by the red-black coloring discipline.

Red-Black Trees

A red-black tree is a binary search tree where every node carries one bit of
extra information, its color. The coloring is constrained such that no path
from the root to a leaf is more than twice as long as any other path, which
bounds the height of a tree with n nodes by 2·log2(n+1). Search, insertion and
deletion therefore run in O(log n).

The following invariants hold after every completed call to Insert or Remove:

	1. Every node is either red or black.
	2. The root is black.
	3. Every leaf (an absent child, "NIL") is black.
	4. A red node never has a red child.
	5. Every path from a node down to a leaf below it contains the same
	   number of black nodes.

Insertion and deletion both perform a plain binary search tree edit first and
then walk from the edited position towards the root, recoloring nodes and
applying a bounded number of rotations.

Observers

Trees expose their nodes read-only (Root, Node.Left, Node.Right, Node.Color),
which is all a visualization needs to draw them. Clients interested in how a
tree got into its current shape may switch on event recording: the tree will
then log every structural step (insertions, recolorings, rotations, fix-up
cases) in order. Sub-package observer broadcasts these events to animators,
sub-package render draws trees to terminals and HTML.

Trees are not safe for concurrent use. Clients sharing a tree between
goroutines have to guard it by a mutex, for readers as well as writers, as
rotations break the structure transiently.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package rbtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'rbtree'
func tracer() tracing.Trace {
	return tracing.Select("rbtree")
}

// TreeError is an error type for the rbtree module
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrKeyNotFound is flagged whenever a key to be removed is not present in a tree.
const ErrKeyNotFound = TreeError("key not found")

// ErrInvalidConfig signals an invalid tree configuration.
const ErrInvalidConfig = TreeError("invalid tree configuration")

// ErrInvariantViolation is flagged by Check if one of the red-black
// properties does not hold.
const ErrInvariantViolation = TreeError("red-black invariant violated")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = TreeError("illegal arguments")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
