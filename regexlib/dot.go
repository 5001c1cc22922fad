package regexlib

import (
	"fmt"
	"io"
)

// ExportDOT печатает Graphviz-представление NFA в w.
func ExportDOT(w io.Writer, n *NFA) {
	ExportDOTActive(w, n, nil)
}

// ExportDOTActive renders the automaton with the given states highlighted,
// for showing the simulator's current active set.
func ExportDOTActive(w io.Writer, n *NFA, active []int) {
	hot := make(map[int]bool, len(active))
	for _, id := range active {
		hot[id] = true
	}

	fmt.Fprintln(w, "digraph G {")
	fmt.Fprintln(w, "    rankdir=LR;")

	for _, s := range n.States {
		shape := "circle"
		if s.Accept {
			shape = "doublecircle"
		}
		if hot[s.ID] {
			fmt.Fprintf(w, "    n%d [shape=%s, style=filled, fillcolor=lightblue];\n", s.ID, shape)
		} else {
			fmt.Fprintf(w, "    n%d [shape=%s];\n", s.ID, shape)
		}
		for _, e := range s.Edges {
			label := "ε"
			if e.Symbol != Epsilon {
				label = string(e.Symbol)
			}
			fmt.Fprintf(w, "    n%d -> n%d [label=\"%s\"];\n", s.ID, e.To, label)
		}
	}
	fmt.Fprintf(w, "    _start [shape=point]; _start -> n%d;\n", n.Start)

	fmt.Fprintln(w, "}")
}
