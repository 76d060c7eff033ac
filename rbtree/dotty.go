package rbtree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"io"

	"github.com/npillmayer/containers/alloc"
)

// Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). Absent children are drawn as small black leaves.
func (t *Tree[T]) Dot(w io.Writer) error {
	var err error
	write := func(format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}
	write("strict digraph {\n")
	write("\tnode [fontname=Arial,fontsize=12];\n")
	nilid := 0
	var walk func(h alloc.Handle)
	walk = func(h alloc.Handle) {
		x := t.n(h)
		write("\t\"%d\" [label=\"%s\" %s];\n", h, dotLabel(x.value), nodeDotStyles(x.color))
		for _, c := range [2]alloc.Handle{x.left, x.right} {
			if c == alloc.Nil {
				nilid++
				write("\t\"nil%d\" %s;\n", nilid, emptyNode())
				write("\t\"%d\" -> \"nil%d\";\n", h, nilid)
				continue
			}
			write("\t\"%d\" -> \"%d\";\n", h, c)
			walk(c)
		}
	}
	if t.root != alloc.Nil {
		walk(t.root)
	}
	write("}\n")
	return err
}

func dotLabel(value any) string {
	s := fmt.Sprint(value)
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '"' || r == '\\' {
			out = append(out, '\\')
		}
		out = append(out, r)
	}
	return string(out)
}

func emptyNode() string {
	return "[label=\"\",color=black,style=filled,shape=box,fixedsize=true,width=.15,height=.15]"
}

func nodeDotStyles(c Color) string {
	s := ",style=filled,shape=circle,fontcolor=white"
	if c == Red {
		s += ",color=\"#cc2222\",fillcolor=\"#dd3333\""
	} else {
		s += ",color=black,fillcolor=black"
	}
	return s
}
