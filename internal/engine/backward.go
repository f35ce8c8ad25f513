package engine

// Backward computes the gradient of v with respect to every node
// reachable from it through operand references, accumulating into each
// node's Grad.
//
// Algorithm:
//  1. Collect every reachable node in post-order via depth-first search
//     (operands before the nodes derived from them), visiting each node
//     exactly once.
//  2. Seed v's gradient with 1.0 (d(v)/d(v)).
//  3. Walk the order in reverse. For each node, deposit
//     node.grad * localK into operand K's gradient.
//
// The reverse walk processes a node only after every downstream node
// that references it, so a node shared by several parents has its full
// gradient summed before its own operands are touched. For tree-shaped
// expressions this matches a naive recursive traversal exactly.
//
// Gradients are not reset between passes: a repeated Backward over the
// same graph deposits on top of the stale totals, and on graphs with
// intermediate nodes the stale intermediate gradients feed back into
// their operands, so leaf totals compound rather than double. Callers
// wanting fresh gradients rebuild the expression.
func (v *Value) Backward() {
	order := topoSort(v)

	v.grad = 1.0

	for i := len(order) - 1; i >= 0; i-- {
		n := order[i]
		if n.in1 != nil {
			n.in1.grad += n.grad * n.local1
		}
		if n.in2 != nil {
			n.in2.grad += n.grad * n.local2
		}
	}
}

// topoSort returns every node reachable from root in post-order:
// each node appears after all of its operands.
func topoSort(root *Value) []*Value {
	order := make([]*Value, 0, 64)
	seen := make(map[*Value]struct{})

	var visit func(*Value)
	visit = func(n *Value) {
		if _, ok := seen[n]; ok {
			return
		}
		seen[n] = struct{}{}
		if n.in1 != nil {
			visit(n.in1)
		}
		if n.in2 != nil {
			visit(n.in2)
		}
		order = append(order, n)
	}
	visit(root)

	return order
}
