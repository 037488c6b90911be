package render

import (
	"fmt"
	"io"

	"github.com/npillmayer/rbtree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTML writes a tree as a nested list of HTML elements. The result is a
// fragment of the form
//
//	<div class="rbtree">
//	  <ul><li class="black"><span>20</span>
//	    <ul><li class="red"><span>10</span><ul><li class="nil">NIL</li>…</ul></li>…</ul>
//	  </li></ul>
//	</div>
//
// Nodes carry the class of their color, absent children are rendered as
// list items of class "nil". Styling is left to the embedding page.
func HTML[K any](w io.Writer, t *rbtree.Tree[K]) error {
	if t == nil {
		return fmt.Errorf("%w: tree is nil", rbtree.ErrIllegalArguments)
	}
	div := element(atom.Div, "rbtree")
	if t.IsEmpty() {
		div.AppendChild(&html.Node{Type: html.TextNode, Data: "<empty>"})
	} else {
		ul := element(atom.Ul, "")
		ul.AppendChild(nodeItem(t.Root()))
		div.AppendChild(ul)
	}
	if err := html.Render(w, div); err != nil {
		tracer().Errorf("render: %v", err)
		return err
	}
	return nil
}

func nodeItem[K any](n *rbtree.Node[K]) *html.Node {
	if n == nil {
		li := element(atom.Li, "nil")
		li.AppendChild(&html.Node{Type: html.TextNode, Data: "NIL"})
		return li
	}
	li := element(atom.Li, n.Color().String())
	span := element(atom.Span, "")
	span.AppendChild(&html.Node{Type: html.TextNode, Data: fmt.Sprint(n.Key())})
	li.AppendChild(span)
	ul := element(atom.Ul, "")
	ul.AppendChild(nodeItem(n.Left()))
	ul.AppendChild(nodeItem(n.Right()))
	li.AppendChild(ul)
	return li
}

func element(a atom.Atom, class string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	if class != "" {
		n.Attr = []html.Attribute{{Key: "class", Val: class}}
	}
	return n
}
