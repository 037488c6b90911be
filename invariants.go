package rbtree

import "fmt"

// VerifyProperties reports whether the tree satisfies all red-black
// properties. It walks the complete tree and is meant for tests and debugging.
func (t *Tree[K]) VerifyProperties() bool {
	return t.Check() == nil
}

// Check validates the red-black invariants together with structural
// consistency (parent links, key order, size accounting). It returns nil for a
// valid tree, or an error wrapping ErrInvariantViolation describing the first
// problem found.
func (t *Tree[K]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrIllegalArguments)
	}
	if t.root == nil {
		if t.size != 0 {
			return fmt.Errorf("%w: empty tree must have size=0, has %d", ErrInvariantViolation, t.size)
		}
		return nil
	}
	if t.root.color != Black {
		return fmt.Errorf("%w: root %v is not black", ErrInvariantViolation, t.root.key)
	}
	if t.root.parent != nil {
		return fmt.Errorf("%w: root %v has a parent", ErrInvariantViolation, t.root.key)
	}
	count, _, err := t.checkNode(t.root, nil, nil)
	if err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: size mismatch (%d nodes reachable, size=%d)", ErrInvariantViolation, count, t.size)
	}
	return nil
}

// checkNode validates the subtree at n, where all keys have to be strictly
// between lo and hi (if given). It returns the number of nodes and the
// black-height of the subtree, counting the NIL leaf.
func (t *Tree[K]) checkNode(n *Node[K], lo, hi *Node[K]) (count int, blackHeight int, err error) {
	if n == nil {
		return 0, 1, nil
	}
	if n.color != Red && n.color != Black {
		return 0, 0, fmt.Errorf("%w: node %v has invalid color %v", ErrInvariantViolation, n.key, n.color)
	}
	if lo != nil && t.cfg.Compare(lo.key, n.key) >= 0 {
		return 0, 0, fmt.Errorf("%w: key %v out of order, not greater than %v", ErrInvariantViolation, n.key, lo.key)
	}
	if hi != nil && t.cfg.Compare(n.key, hi.key) >= 0 {
		return 0, 0, fmt.Errorf("%w: key %v out of order, not less than %v", ErrInvariantViolation, n.key, hi.key)
	}
	for _, c := range n.child {
		if c == nil {
			continue
		}
		if c.parent != n {
			return 0, 0, fmt.Errorf("%w: broken parent link at %v", ErrInvariantViolation, c.key)
		}
		if n.color == Red && c.color == Red {
			return 0, 0, fmt.Errorf("%w: red node %v has red child %v", ErrInvariantViolation, n.key, c.key)
		}
	}
	lcount, lbh, err := t.checkNode(n.child[left], lo, n)
	if err != nil {
		return 0, 0, err
	}
	rcount, rbh, err := t.checkNode(n.child[right], n, hi)
	if err != nil {
		return 0, 0, err
	}
	if lbh != rbh {
		return 0, 0, fmt.Errorf("%w: black-height differs below %v (%d != %d)", ErrInvariantViolation, n.key, lbh, rbh)
	}
	if n.color == Black {
		lbh++
	}
	return lcount + rcount + 1, lbh, nil
}
