package rbtree

// rotate turns the subtree at x towards dir. The child of x opposite to dir
// takes x's place, x becomes its child on side dir, and the former inner
// subtree of that child moves over to x. For dir == left:
//
//	     P                 P
//	     |                 |
//	     x                 y
//	    / \               / \
//	   A   y      =>     x   C
//	      / \           / \
//	     B   C         A   B
//
// Rotations never change the black-height of any path.
// REQUIRES: x.child[dir.opposite()] != nil
func (t *Tree[K]) rotate(x *Node[K], dir side) {
	y := x.child[dir.opposite()]
	assert(y != nil, "rbtree: rotation without pivot child")
	inner := y.child[dir]
	x.child[dir.opposite()] = inner
	if inner != nil {
		inner.parent = x
	}
	t.replaceChild(x, y)
	y.child[dir] = x
	x.parent = y
	if t.tracking() {
		typ := EventRotateLeft
		if dir == right {
			typ = EventRotateRight
		}
		ev := t.event(typ, x, "rotate %s at %v", dir, x.key)
		ev.Parent = keyOf(y)
		t.emit(ev)
	}
}

// replaceChild links v into the position of u below u's parent (or makes v
// the root). v's parent link is updated, u's links are left untouched.
func (t *Tree[K]) replaceChild(u, v *Node[K]) {
	p := u.parent
	if p == nil {
		t.root = v
	} else {
		p.child[u.sideOf()] = v
	}
	if v != nil {
		v.parent = p
	}
}
