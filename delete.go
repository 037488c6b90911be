package rbtree

import "fmt"

// Remove deletes key from the tree. It returns false if key is not contained
// in the tree, in which case the tree is left unchanged.
func (t *Tree[K]) Remove(key K) bool {
	return t.Delete(key) == nil
}

// Delete deletes key from the tree. If key is not contained in the tree, an
// error wrapping ErrKeyNotFound is returned and the tree is left unchanged.
func (t *Tree[K]) Delete(key K) error {
	z := t.findNode(key)
	if z == nil {
		return fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	t.deleteNode(z)
	t.size--
	return nil
}

// deleteNode unlinks z from the tree.
//
// If z has two children, its in-order successor y is spliced out of its
// position and relinked in z's place, taking over z's children and color.
// x is the node moving into the position vacated by the spliced-out node; it
// may be nil (a NIL leaf), therefore its parent is tracked in xParent.
func (t *Tree[K]) deleteNode(z *Node[K]) {
	if t.tracking() {
		ev := t.event(EventDeleteNode, z, "delete %v", z.key)
		ev.Parent = keyOf(z.parent)
		t.emit(ev)
	}
	removed := z.color
	var x, xParent *Node[K]
	switch {
	case z.child[left] == nil:
		x, xParent = z.child[right], z.parent
		t.replaceChild(z, x)
	case z.child[right] == nil:
		x, xParent = z.child[left], z.parent
		t.replaceChild(z, x)
	default:
		y := minimum(z.child[right])
		removed = y.color
		x = y.child[right]
		if y.parent == z {
			xParent = y
		} else {
			xParent = y.parent
			t.replaceChild(y, x)
			y.child[right] = z.child[right]
			y.child[right].parent = y
		}
		t.replaceChild(z, y)
		y.child[left] = z.child[left]
		y.child[left].parent = y
		t.paint(y, z.color)
	}
	z.parent = nil
	z.child = [2]*Node[K]{}
	if removed == Black {
		t.fixDelete(x, xParent)
	}
	t.blackenRoot()
}

// fixDelete restores the red-black properties after a black node has been
// removed from the path through x. x carries an extra "black" which has to be
// pushed up the tree until it can be absorbed by a red node or a rotation, or
// reaches the root.
func (t *Tree[K]) fixDelete(x, xParent *Node[K]) {
	for x != t.root && isBlack(x) {
		p := xParent
		dir := childSide(p, x)
		far := dir.opposite()
		w := p.child[far] // sibling; it must exist, as its subtree has black-height >= 1
		assert(w != nil, "rbtree: double black node without sibling")
		if w.IsRed() {
			t.deleteFixupCase(1, x, p, "case 1: sibling %v is red, rotate at parent", w.key)
			t.paint(w, Black)
			t.paint(p, Red)
			t.rotate(p, dir)
			w = p.child[far]
			assert(w != nil, "rbtree: double black node without sibling")
		}
		if isBlack(w.child[left]) && isBlack(w.child[right]) {
			t.deleteFixupCase(2, x, p, "case 2: sibling %v and its children are black, recolor", w.key)
			t.paint(w, Red)
			x, xParent = p, p.parent
			continue
		}
		if isBlack(w.child[far]) {
			t.deleteFixupCase(3, x, p, "case 3: near nephew %v is red, rotate at sibling", w.child[dir].key)
			t.paint(w.child[dir], Black)
			t.paint(w, Red)
			t.rotate(w, far)
			w = p.child[far]
		}
		t.deleteFixupCase(4, x, p, "case 4: far nephew %v is red, rotate at parent", w.child[far].key)
		t.paint(w, p.color)
		t.paint(p, Black)
		t.paint(w.child[far], Black)
		t.rotate(p, dir)
		x, xParent = t.root, nil
	}
	if x != nil {
		t.paint(x, Black)
	}
}

// childSide returns the side of p where x hangs. x may be a NIL leaf, in
// which case its sibling is known to exist.
func childSide[K any](p, x *Node[K]) side {
	if x != nil {
		return x.sideOf()
	}
	if p.child[left] == nil {
		return left
	}
	return right
}

func (t *Tree[K]) deleteFixupCase(n int, x, p *Node[K], format string, args ...any) {
	tracer().Debugf("rbtree: delete fix-up case %d below %v", n, p.key)
	if !t.tracking() {
		return
	}
	ev := t.event(EventDeleteFixup, p, format, args...)
	if x != nil {
		ev.Key = x.key
		ev.From, ev.To = x.color, x.color
	}
	ev.Parent = keyOf(p)
	ev.Case = n
	t.emit(ev)
}
