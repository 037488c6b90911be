package rbtree

import "fmt"

// Color is the color of a tree node.
type Color uint8

const (
	// Red nodes may not have red children.
	Red Color = iota
	// Black is the color of the root and of all (conceptual) NIL leaves.
	Black
)

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Black:
		return "black"
	}
	return fmt.Sprintf("Color(%d)", uint8(c))
}

// side addresses one of the two children of a node.
type side uint8

const (
	left  side = 0
	right side = 1
)

func (s side) opposite() side {
	return 1 - s
}

func (s side) String() string {
	if s == left {
		return "left"
	}
	return "right"
}

// Node is a node of a red-black tree, holding a single key.
//
// Nodes are handed out to clients for read-only inspection, e.g., for
// drawing a tree. All structural changes go through Tree.Insert and Tree.Remove.
// All accessors may be called on a nil node, which then behaves like a NIL leaf.
type Node[K any] struct {
	key    K
	color  Color
	child  [2]*Node[K] // left and right subtree, owned
	parent *Node[K]    // back-reference, not owning
}

// Key returns the key stored in a node.
func (n *Node[K]) Key() K {
	if n == nil {
		var zero K
		return zero
	}
	return n.key
}

// Color returns the color of a node. NIL leaves are black.
func (n *Node[K]) Color() Color {
	if n == nil {
		return Black
	}
	return n.color
}

// IsRed is true for non-nil red nodes.
func (n *Node[K]) IsRed() bool {
	return n != nil && n.color == Red
}

// Left returns the left child of a node, or nil.
func (n *Node[K]) Left() *Node[K] {
	if n == nil {
		return nil
	}
	return n.child[left]
}

// Right returns the right child of a node, or nil.
func (n *Node[K]) Right() *Node[K] {
	if n == nil {
		return nil
	}
	return n.child[right]
}

func (n *Node[K]) String() string {
	if n == nil {
		return "NIL"
	}
	return fmt.Sprintf("%v(%v)", n.color, n.key)
}

func isBlack[K any](n *Node[K]) bool {
	return n == nil || n.color == Black
}

// sideOf returns the side at which n hangs below its parent.
// REQUIRES: n.parent != nil
func (n *Node[K]) sideOf() side {
	if n == n.parent.child[left] {
		return left
	}
	return right
}

// minimum descends all the way left, starting from n.
func minimum[K any](n *Node[K]) *Node[K] {
	for n != nil && n.child[left] != nil {
		n = n.child[left]
	}
	return n
}

func maximum[K any](n *Node[K]) *Node[K] {
	for n != nil && n.child[right] != nil {
		n = n.child[right]
	}
	return n
}
