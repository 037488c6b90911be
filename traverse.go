package rbtree

import "iter"

// InorderTraversal calls visit for every key, in ascending order.
func (t *Tree[K]) InorderTraversal(visit func(K)) {
	if t.IsEmpty() || visit == nil {
		return
	}
	inorder(t.root, visit)
}

// PreorderTraversal calls visit for every key, visiting nodes before their subtrees.
func (t *Tree[K]) PreorderTraversal(visit func(K)) {
	if t.IsEmpty() || visit == nil {
		return
	}
	preorder(t.root, visit)
}

// PostorderTraversal calls visit for every key, visiting nodes after their subtrees.
func (t *Tree[K]) PostorderTraversal(visit func(K)) {
	if t.IsEmpty() || visit == nil {
		return
	}
	postorder(t.root, visit)
}

// Recursion depth is bounded by the height of the tree, i.e. O(log n).

func inorder[K any](n *Node[K], visit func(K)) {
	if n == nil {
		return
	}
	inorder(n.child[left], visit)
	visit(n.key)
	inorder(n.child[right], visit)
}

func preorder[K any](n *Node[K], visit func(K)) {
	if n == nil {
		return
	}
	visit(n.key)
	preorder(n.child[left], visit)
	preorder(n.child[right], visit)
}

func postorder[K any](n *Node[K], visit func(K)) {
	if n == nil {
		return
	}
	postorder(n.child[left], visit)
	postorder(n.child[right], visit)
	visit(n.key)
}

// LevelOrderTraversal returns all keys breadth-first, level by level and
// from left to right within a level.
func (t *Tree[K]) LevelOrderTraversal() []K {
	if t.IsEmpty() {
		return nil
	}
	keys := make([]K, 0, t.size)
	queue := make([]*Node[K], 0, t.size)
	queue = append(queue, t.root)
	for head := 0; head < len(queue); head++ {
		n := queue[head]
		keys = append(keys, n.key)
		for _, c := range n.child {
			if c != nil {
				queue = append(queue, c)
			}
		}
	}
	return keys
}

// All returns an iterator over all keys in ascending order.
//
// The tree must not be modified during iteration.
func (t *Tree[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		if t.IsEmpty() {
			return
		}
		stack := make([]*Node[K], 0, 2*t.Height()+2)
		current := t.root
		for current != nil || len(stack) > 0 {
			for current != nil {
				stack = append(stack, current)
				current = current.child[left]
			}
			current = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(current.key) {
				return
			}
			current = current.child[right]
		}
	}
}

// Height returns the number of edges on the longest path from the root to
// a leaf. A tree with a single node has height 0, the empty tree has height -1.
func (t *Tree[K]) Height() int {
	if t == nil {
		return -1
	}
	return height(t.root)
}

func height[K any](n *Node[K]) int {
	if n == nil {
		return -1
	}
	return 1 + max(height(n.child[left]), height(n.child[right]))
}

// BlackHeight returns the number of black nodes on the path from the root
// down to the leftmost leaf, NIL leaves not counted. As long as the tree
// satisfies the red-black properties, all root-to-leaf paths share this count.
func (t *Tree[K]) BlackHeight() int {
	if t == nil {
		return 0
	}
	bh := 0
	for n := t.root; n != nil; n = n.child[left] {
		if n.color == Black {
			bh++
		}
	}
	return bh
}
