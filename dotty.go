package rbtree

import (
	"fmt"
	"io"
	"strings"
)

type nodeids[K any] struct {
	idTable map[*Node[K]]int
	max     int
}

func newtable[K any]() nodeids[K] {
	return nodeids[K]{
		idTable: make(map[*Node[K]]int),
		max:     1,
	}
}

func (ids nodeids[K]) find(node *Node[K]) int {
	return ids.idTable[node]
}

func (ids *nodeids[K]) alloc(node *Node[K]) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). NIL leaves are drawn as small black boxes.
func Tree2Dot[K any](t *Tree[K], w io.Writer) error {
	if t == nil {
		return ErrIllegalArguments
	}
	var b strings.Builder
	b.WriteString("strict digraph {\n")
	b.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable[K]()
	nilid := 0
	var nodelist, edgelist strings.Builder
	t.PreorderNodes(func(node *Node[K]) {
		ID := ids.alloc(node)
		fmt.Fprintf(&nodelist, "\t\"%d\" [label=\"%s\" %s];\n", ID, dotEscape(fmt.Sprint(node.key)),
			nodeDotStyles(node.color))
		for _, c := range node.child {
			if c == nil {
				nilid--
				fmt.Fprintf(&nodelist, "\t\"%d\" %s;\n", nilid, emptyNode())
				fmt.Fprintf(&edgelist, "\t\"%d\" -> \"%d\";\n", ID, nilid)
				continue
			}
			fmt.Fprintf(&edgelist, "\t\"%d\" -> \"%d\";\n", ID, ids.alloc(c))
		}
	})
	b.WriteString(nodelist.String())
	b.WriteString(edgelist.String())
	b.WriteString("}\n")
	if _, err := io.WriteString(w, b.String()); err != nil {
		tracer().Errorf("tree DOT: %s", err.Error())
		return err
	}
	return nil
}

// PreorderNodes calls visit for every node of the tree, parents first.
// It is intended for drawing trees; visit must not retain nodes beyond the
// next modification of t.
func (t *Tree[K]) PreorderNodes(visit func(*Node[K])) {
	if t.IsEmpty() || visit == nil {
		return
	}
	var walk func(*Node[K])
	walk = func(n *Node[K]) {
		if n == nil {
			return
		}
		visit(n)
		walk(n.child[left])
		walk(n.child[right])
	}
	walk(t.root)
}

func emptyNode() string {
	return "[label=\"NIL\",shape=box,style=filled,color=black,fillcolor=black,fontcolor=white,fontsize=8,width=.3,height=.2]"
}

func nodeDotStyles(c Color) string {
	s := ",shape=circle,style=filled,fontcolor=white"
	if c == Red {
		s += ",color=\"#b00000\",fillcolor=\"#e03030\""
	} else {
		s += ",color=black,fillcolor=\"#303030\""
	}
	return s
}

func dotEscape(s string) string {
	return strings.ReplaceAll(s, "\"", "\\\"")
}
