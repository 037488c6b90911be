package rbtree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
)

// Tree is a red-black tree, i.e. a self-balancing binary search tree, holding
// a set of keys of type K.
//
// Keys are ordered by the comparator given in the tree's configuration.
// Keys comparing equal are considered duplicates: a tree holds at most one of them.
//
//	Operation     |   Complexity
//	--------------+--------------
//	Search        |   O(log n)
//	Insert        |   O(log n)
//	Remove        |   O(log n)
//	Traversals    |   O(n)
//
// Trees must be created with New or NewOrdered.
type Tree[K any] struct {
	cfg       Config[K]
	root      *Node[K]
	size      int
	recording bool         // events are buffered in events
	sink      EventSink[K] // events are forwarded to sink
	events    []Event[K]
}

// New creates an empty tree with a validated configuration.
func New[K any](cfg Config[K]) (*Tree[K], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Tree[K]{
		cfg:       cfg,
		recording: cfg.RecordEvents,
		sink:      cfg.Sink,
	}, nil
}

// NewOrdered creates an empty tree for key types with a natural order.
func NewOrdered[K cmp.Ordered]() *Tree[K] {
	t, err := New(OrderedConfig[K]())
	assert(err == nil, "NewOrdered: cannot create tree")
	return t
}

// Root returns the root node of the tree, or nil for an empty tree.
// The node may be used to inspect the tree structure, e.g., for rendering it.
func (t *Tree[K]) Root() *Node[K] {
	if t == nil {
		return nil
	}
	return t.root
}

// Size returns the number of keys in the tree.
func (t *Tree[K]) Size() int {
	if t == nil {
		return 0
	}
	return t.size
}

// IsEmpty reports whether the tree has no keys.
func (t *Tree[K]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Clear removes all keys from the tree. Event recording state is kept.
func (t *Tree[K]) Clear() {
	if t == nil {
		return
	}
	t.root = nil
	t.size = 0
}

// Search reports whether key is contained in the tree.
func (t *Tree[K]) Search(key K) bool {
	return t.findNode(key) != nil
}

// Find returns the node holding key, or nil if key is not in the tree.
// The node is valid until the next call to Remove.
func (t *Tree[K]) Find(key K) *Node[K] {
	return t.findNode(key)
}

// Min returns the smallest key of the tree. The second return value is false
// for an empty tree.
func (t *Tree[K]) Min() (K, bool) {
	if t.IsEmpty() {
		var zero K
		return zero, false
	}
	return minimum(t.root).key, true
}

// Max returns the largest key of the tree. The second return value is false
// for an empty tree.
func (t *Tree[K]) Max() (K, bool) {
	if t.IsEmpty() {
		var zero K
		return zero, false
	}
	return maximum(t.root).key, true
}

func (t *Tree[K]) findNode(key K) *Node[K] {
	if t == nil {
		return nil
	}
	n := t.root
	for n != nil {
		c := t.cfg.Compare(key, n.key)
		switch {
		case c < 0:
			n = n.child[left]
		case c > 0:
			n = n.child[right]
		default:
			return n
		}
	}
	return nil
}
