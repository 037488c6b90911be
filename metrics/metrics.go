package metrics

import (
	"fmt"
	"math"

	"github.com/npillmayer/rbtree"
)

// Metric is a type for computations on trees which combine the values of
// subtrees. V is the type of the metric's value.
type Metric[K any, V any] interface {
	Nil() V                                     // value of a NIL leaf
	Combine(n *rbtree.Node[K], left, right V) V // value of the subtree rooted at n
}

// Apply applies a metric to a tree, returning the value of the root.
// For an empty tree this is the metric's NIL value.
func Apply[K any, V any](t *rbtree.Tree[K], m Metric[K, V]) V {
	return apply(t.Root(), m)
}

func apply[K any, V any](n *rbtree.Node[K], m Metric[K, V]) V {
	if n == nil {
		return m.Nil()
	}
	l := apply(n.Left(), m)
	r := apply(n.Right(), m)
	return m.Combine(n, l, r)
}

// ---------------------------------------------------------------------------

// Count creates a metric counting the nodes for which pred is true.
func Count[K any](pred func(*rbtree.Node[K]) bool) Metric[K, int] {
	return countingMetric[K]{pred: pred}
}

type countingMetric[K any] struct {
	pred func(*rbtree.Node[K]) bool
}

func (m countingMetric[K]) Nil() int {
	return 0
}

func (m countingMetric[K]) Combine(n *rbtree.Node[K], left, right int) int {
	if m.pred(n) {
		return left + right + 1
	}
	return left + right
}

// IsRed is a predicate for Count, true for red nodes.
func IsRed[K any](n *rbtree.Node[K]) bool {
	return n.IsRed()
}

// IsLeaf is true for nodes without children.
func IsLeaf[K any](n *rbtree.Node[K]) bool {
	return n.Left() == nil && n.Right() == nil
}

// ---------------------------------------------------------------------------

// shape collects everything Stats needs in a single pass.
type shape struct {
	nodes    int
	red      int
	leaves   int
	longest  int // nodes on the longest path down to a NIL leaf
	shortest int // nodes on the shortest path down to a NIL leaf
	depths   int // sum of node depths, relative to the subtree root
}

type shapeMetric[K any] struct{}

func (shapeMetric[K]) Nil() shape {
	return shape{}
}

func (shapeMetric[K]) Combine(n *rbtree.Node[K], l, r shape) shape {
	s := shape{
		nodes:    l.nodes + r.nodes + 1,
		red:      l.red + r.red,
		leaves:   l.leaves + r.leaves,
		longest:  max(l.longest, r.longest) + 1,
		shortest: min(l.shortest, r.shortest) + 1,
		depths:   l.depths + l.nodes + r.depths + r.nodes,
	}
	if n.IsRed() {
		s.red++
	}
	if l.nodes == 0 && r.nodes == 0 {
		s.leaves++
	}
	return s
}

// Stats holds shape statistics of a tree. Depths count edges from the root.
type Stats struct {
	Nodes       int     // number of keys
	Red         int     // number of red nodes
	Black       int     // number of black nodes
	Leaves      int     // nodes without children
	Height      int     // edges on the longest root-to-node path, -1 for the empty tree
	BlackHeight int     // black nodes on any root-to-NIL path, NIL not counted
	MinDepth    int     // depth of the shallowest node with a missing child
	MaxDepth    int     // depth of the deepest node
	AvgDepth    float64 // average depth of all nodes
	HeightBound float64 // 2·log₂(n+1), the upper bound for paths in a red-black tree
}

// Collect gathers shape statistics of a tree.
func Collect[K any](t *rbtree.Tree[K]) Stats {
	s := Apply[K, shape](t, shapeMetric[K]{})
	stats := Stats{
		Nodes:       s.nodes,
		Red:         s.red,
		Black:       s.nodes - s.red,
		Leaves:      s.leaves,
		Height:      s.longest - 1,
		BlackHeight: t.BlackHeight(),
		MinDepth:    s.shortest - 1,
		MaxDepth:    s.longest - 1,
		HeightBound: 2 * math.Log2(float64(s.nodes+1)),
	}
	if s.nodes > 0 {
		stats.AvgDepth = float64(s.depths) / float64(s.nodes)
	}
	if t.Size() != s.nodes {
		tracer().Errorf("metrics: tree reports size %d, but has %d nodes", t.Size(), s.nodes)
	}
	return stats
}

// WithinBound checks the height guarantee of red-black trees: no path from
// the root down to a NIL leaf holds more than 2·log₂(n+1) nodes.
func (s Stats) WithinBound() bool {
	return float64(s.Height+1) <= s.HeightBound+1e-9
}

func (s Stats) String() string {
	return fmt.Sprintf("nodes=%d red=%d black=%d leaves=%d height=%d black-height=%d depth=[%d…%d] avg-depth=%.2f bound=%.2f",
		s.Nodes, s.Red, s.Black, s.Leaves, s.Height, s.BlackHeight,
		s.MinDepth, s.MaxDepth, s.AvgDepth, s.HeightBound)
}
