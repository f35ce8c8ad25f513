// Package engine implements reverse-mode automatic differentiation over
// scalar values.
//
// A Value is one node in a computation graph: it holds the result of the
// forward computation, an accumulated gradient, and (for non-leaf nodes)
// references to the operand node(s) it was derived from together with the
// local partial derivative of this node with respect to each operand,
// captured at construction time.
//
// Architecture:
//   - The graph is implicit: there is no tape or graph object. Each
//     operation returns a new node pointing back at its operands, so the
//     web of operand references is the graph.
//   - Local derivatives are numbers, not closures: each op bakes in the
//     partial derivatives evaluated at the operand values it saw, and the
//     backward pass only ever multiplies and accumulates them.
//   - Backward computes gradients in reverse topological order, so a node
//     reused as an operand of several downstream nodes still receives its
//     full gradient before its own operands are updated.
//
// Usage:
//
//	a := engine.New(2.0)
//	b := engine.New(3.0)
//	out := a.Add(b).Mul(engine.New(4.0)) // (a + b) * 4
//
//	out.Backward()
//	fmt.Println(a.Grad()) // d(out)/da = 4.0
package engine

import "fmt"

// Op identifies the operation that produced a node. It exists for
// rendering (String, DOT); the backward pass never reads it.
type Op string

// Operation tags, one per constructor in this package.
const (
	OpLeaf Op = ""
	OpAdd  Op = "+"
	OpSub  Op = "-"
	OpMul  Op = "*"
	OpDiv  Op = "/"
	OpPow  Op = "pow"
	OpNeg  Op = "neg"
	OpTanh Op = "tanh"
	OpReLU Op = "relu"
)

// Value is one scalar node in a computation graph.
//
// data and the operand/local-derivative slots are fixed at construction;
// only grad mutates, and only during a Backward pass. A Value may be
// referenced as an operand by arbitrarily many downstream nodes, so the
// graph is a DAG in general. It is never cyclic: a node can only
// reference nodes that existed before it was constructed.
//
// Values are not safe for concurrent use. At most one Backward pass may
// be in flight over a given graph, and no new nodes may be built from
// nodes currently being mutated by one.
type Value struct {
	data float64 // forward result, immutable after construction
	grad float64 // accumulated d(output)/d(this), zero until Backward

	// Operand references. Leaf: both nil. Unary op: in2 nil.
	in1, in2 *Value

	// Partial derivatives of data with respect to in1.data and in2.data,
	// evaluated at construction time. Meaningful only where the matching
	// operand reference is set.
	local1, local2 float64

	op Op
}

// New creates a leaf node holding data. Its gradient starts at zero and
// stays zero until a Backward pass reaches it.
func New(data float64) *Value {
	return &Value{data: data}
}

// Data returns the forward value of the node.
func (v *Value) Data() float64 {
	return v.data
}

// Grad returns the gradient accumulated by Backward passes so far.
func (v *Value) Grad() float64 {
	return v.grad
}

// Op returns the tag of the operation that produced the node
// (OpLeaf for leaves).
func (v *Value) Op() Op {
	return v.op
}

// binary constructs a node derived from two operands.
func binary(op Op, a, b *Value, data, local1, local2 float64) *Value {
	return &Value{
		data:   data,
		in1:    a,
		in2:    b,
		local1: local1,
		local2: local2,
		op:     op,
	}
}

// unary constructs a node derived from a single operand.
func unary(op Op, a *Value, data, local1 float64) *Value {
	return &Value{
		data:   data,
		in1:    a,
		local1: local1,
		op:     op,
	}
}

// String renders the node for debugging.
func (v *Value) String() string {
	switch {
	case v.in2 != nil:
		return fmt.Sprintf("Value(%s: data=%g grad=%g local=[%g %g])",
			v.op, v.data, v.grad, v.local1, v.local2)
	case v.in1 != nil:
		return fmt.Sprintf("Value(%s: data=%g grad=%g local=[%g])",
			v.op, v.data, v.grad, v.local1)
	default:
		return fmt.Sprintf("Value(data=%g grad=%g)", v.data, v.grad)
	}
}
