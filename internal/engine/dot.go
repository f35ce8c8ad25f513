package engine

import (
	"fmt"
	"strings"
)

// DOT renders the expression graph reachable from root in Graphviz DOT
// format: one record node per Value showing its data and gradient, one
// edge per operand reference, pointing from operand to result.
//
// Node IDs are positions in the post-order traversal of the graph, so
// output is deterministic for a given graph and carries no state between
// calls.
func DOT(root *Value) string {
	order := topoSort(root)

	id := make(map[*Value]int, len(order))
	for i, n := range order {
		id[n] = i
	}

	var b strings.Builder
	b.WriteString("digraph grad {\n")
	b.WriteString("  rankdir=LR;\n")

	for i, n := range order {
		label := fmt.Sprintf("data %.4g | grad %.4g", n.data, n.grad)
		if n.op != OpLeaf {
			label = fmt.Sprintf("%s | %s", n.op, label)
		}
		fmt.Fprintf(&b, "  n%d [shape=record, label=\"{ %s }\"];\n", i, label)
	}

	for i, n := range order {
		if n.in1 != nil {
			fmt.Fprintf(&b, "  n%d -> n%d;\n", id[n.in1], i)
		}
		if n.in2 != nil {
			fmt.Fprintf(&b, "  n%d -> n%d;\n", id[n.in2], i)
		}
	}

	b.WriteString("}\n")
	return b.String()
}
