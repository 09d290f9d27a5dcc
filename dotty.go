package segtree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"io"
)

// Tree2Dot outputs the internal structure of a Tree in Graphviz DOT format
// (for debugging purposes).
func Tree2Dot[T any](t *Tree[T], w io.Writer) {
	dot(w, t.n, func(node int) string {
		return fmt.Sprintf("%v", t.tree[node])
	})
}

// LazyTree2Dot outputs the internal structure of a LazyTree in Graphviz DOT
// format (for debugging purposes). Nodes carrying a pending value are marked
// with a trailing asterisk and their deferred value.
func LazyTree2Dot[T any](t *LazyTree[T], w io.Writer) {
	dot(w, t.n, func(node int) string {
		if t.lazy[node].set {
			return fmt.Sprintf("%v *%v", t.tree[node], t.lazy[node].value)
		}
		return fmt.Sprintf("%v", t.tree[node])
	})
}

// dot walks the implicit tree over span [0, n-1]. Node IDs are the backing
// array indices, so no ID allocation table is necessary.
func dot(w io.Writer, n int, label func(node int) string) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	nodelist, edgelist := "", ""
	var walk func(node, start, end int)
	walk = func(node, start, end int) {
		isleaf := start == end
		styles := nodeDotStyles(isleaf)
		if isleaf {
			lbl := fmt.Sprintf("%s\\n@%d", label(node), start)
			nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", node, lbl, styles)
			return
		}
		lbl := fmt.Sprintf("%s\\n[%d,%d]", label(node), start, end)
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", node, lbl, styles)
		edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", node, left(node))
		edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", node, right(node))
		mid := midpoint(start, end)
		walk(left(node), start, mid)
		walk(right(node), mid+1, end)
	}
	walk(0, 0, n-1)
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}
