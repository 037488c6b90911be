package render

import (
	"fmt"

	"github.com/npillmayer/rbtree"
)

// Placement describes where a tree node is to be drawn.
type Placement struct {
	Label  string       // textual representation of the key
	Color  rbtree.Color // color of the node
	Depth  int          // number of edges from the root
	Column int          // in-order position of the node
	Parent int          // index of the parent's placement, -1 for the root
}

// Layout computes placements for all nodes of a tree. Placements are returned
// in in-order, i.e. placement i is in column i. No two nodes share a column,
// and every node is placed one row below its parent.
func Layout[K any](t *rbtree.Tree[K]) []Placement {
	if t.IsEmpty() {
		return nil
	}
	placements := make([]Placement, 0, t.Size())
	index := make(map[*rbtree.Node[K]]int, t.Size())
	var nodes []*rbtree.Node[K]
	var walk func(n *rbtree.Node[K], depth int)
	walk = func(n *rbtree.Node[K], depth int) {
		if n == nil {
			return
		}
		walk(n.Left(), depth+1)
		index[n] = len(placements)
		nodes = append(nodes, n)
		placements = append(placements, Placement{
			Label:  fmt.Sprint(n.Key()),
			Color:  n.Color(),
			Depth:  depth,
			Column: len(placements),
			Parent: -1,
		})
		walk(n.Right(), depth+1)
	}
	walk(t.Root(), 0)
	for i, n := range nodes {
		for _, c := range []*rbtree.Node[K]{n.Left(), n.Right()} {
			if c != nil {
				placements[index[c]].Parent = i
			}
		}
	}
	return placements
}

// depth returns the number of rows needed to draw placements.
func depth(placements []Placement) int {
	d := 0
	for _, p := range placements {
		d = max(d, p.Depth+1)
	}
	return d
}
