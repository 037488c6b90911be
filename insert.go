package rbtree

// Insert adds key to the tree. If a key comparing equal is already present,
// Insert does nothing and returns false. Duplicates are not an error.
func (t *Tree[K]) Insert(key K) bool {
	if t.root == nil {
		t.root = &Node[K]{key: key, color: Black}
		t.size++
		if t.tracking() {
			t.emit(t.event(EventInsertNode, t.root, "insert %v as black root", key))
		}
		return true
	}
	z := t.attach(key)
	if z == nil {
		tracer().Debugf("rbtree: ignoring duplicate key %v", key)
		return false
	}
	t.size++
	if t.tracking() {
		ev := t.event(EventInsertNode, z, "insert %v as red leaf below %v", key, z.parent.key)
		ev.Parent = keyOf(z.parent)
		t.emit(ev)
	}
	t.fixInsert(z)
	return true
}

// attach performs a plain binary search tree insertion of a new red leaf.
// It returns nil if key is already present.
// REQUIRES: t.root != nil
func (t *Tree[K]) attach(key K) *Node[K] {
	p := t.root
	for {
		c := t.cfg.Compare(key, p.key)
		if c == 0 {
			return nil
		}
		dir := right
		if c < 0 {
			dir = left
		}
		if p.child[dir] == nil {
			z := &Node[K]{key: key, color: Red, parent: p}
			p.child[dir] = z
			return z
		}
		p = p.child[dir]
	}
}

// fixInsert restores the red-black properties after z has been linked in as
// a red leaf. The only property possibly violated is "no red node has a red
// child", between z and its parent.
//
// The root stays black during the whole loop; it is only z itself which may
// get painted red when moving up in case 1, and then the loop terminates. A red
// parent therefore is never the root and always has a parent itself.
func (t *Tree[K]) fixInsert(z *Node[K]) {
	for z != t.root && z.parent.IsRed() {
		p := z.parent
		g := p.parent
		assert(g != nil, "rbtree: red parent without grandparent")
		pside := p.sideOf()
		u := g.child[pside.opposite()]
		if u.IsRed() { // case 1: push the violation up two levels
			if t.tracking() {
				t.emit(t.fixupEvent(EventCase1UncleRed, z, "case 1: uncle %v is red, recolor", u.key))
			}
			tracer().Debugf("rbtree: insert fix-up case 1 at %v", z.key)
			t.paint(p, Black)
			t.paint(u, Black)
			t.paint(g, Red)
			z = g
			continue
		}
		if z.sideOf() != pside { // case 2: triangle, turn it into a line
			if t.tracking() {
				t.emit(t.fixupEvent(EventCase2Triangle, z, "case 2: %v forms a triangle, rotate at parent", z.key))
			}
			tracer().Debugf("rbtree: insert fix-up case 2 at %v", z.key)
			z = p
			t.rotate(z, pside)
			p = z.parent
			g = p.parent
			assert(g != nil, "rbtree: red parent without grandparent")
		}
		// case 3: line
		if t.tracking() {
			t.emit(t.fixupEvent(EventCase3Line, z, "case 3: %v forms a line, rotate at grandparent", z.key))
		}
		tracer().Debugf("rbtree: insert fix-up case 3 at %v", z.key)
		t.paint(p, Black)
		t.paint(g, Red)
		t.rotate(g, pside.opposite())
		break
	}
	t.blackenRoot()
}

func (t *Tree[K]) fixupEvent(typ EventType, z *Node[K], format string, args ...any) Event[K] {
	ev := t.event(typ, z, format, args...)
	ev.Parent = keyOf(z.parent)
	if z.parent != nil && z.parent.parent != nil {
		g := z.parent.parent
		ev.Grandparent = keyOf(g)
		ev.Uncle = keyOf(g.child[z.parent.sideOf().opposite()])
	}
	return ev
}

// blackenRoot forces the root to black.
func (t *Tree[K]) blackenRoot() {
	if t.root == nil || t.root.color == Black {
		return
	}
	if t.tracking() {
		ev := t.event(EventSetRootBlack, t.root, "force root %v to black", t.root.key)
		ev.To = Black
		t.emit(ev)
	}
	t.root.color = Black
}
