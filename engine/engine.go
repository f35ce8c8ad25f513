// Copyright 2025 The grad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package engine provides scalar reverse-mode automatic differentiation.
//
// This package builds a computation graph as operations are applied to
// Values and computes exact partial derivatives by backpropagation.
//
// Example:
//
//	import "github.com/grad-ml/grad/engine"
//
//	func main() {
//	    a := engine.New(2.0)
//	    b := engine.New(3.0)
//	    c := engine.New(4.0)
//
//	    out := a.Add(b).Mul(c) // (a + b) * c
//	    out.Backward()
//
//	    fmt.Println(out.Data()) // 20
//	    fmt.Println(a.Grad())   // 4
//	    fmt.Println(c.Grad())   // 5
//	}
package engine

import "github.com/grad-ml/grad/internal/engine"

// Value is one scalar node in a computation graph.
type Value = engine.Value

// Op identifies the operation that produced a node.
type Op = engine.Op

// Operation tags.
const (
	OpLeaf = engine.OpLeaf
	OpAdd  = engine.OpAdd
	OpSub  = engine.OpSub
	OpMul  = engine.OpMul
	OpDiv  = engine.OpDiv
	OpPow  = engine.OpPow
	OpNeg  = engine.OpNeg
	OpTanh = engine.OpTanh
	OpReLU = engine.OpReLU
)

// New creates a leaf node holding data.
//
// Example:
//
//	x := engine.New(2.0)
//	y := x.Mul(x) // y = x²
//	y.Backward()
//	fmt.Println(x.Grad()) // dy/dx = 2x = 4
func New(data float64) *Value {
	return engine.New(data)
}

// DOT renders the expression graph reachable from root in Graphviz DOT
// format.
func DOT(root *Value) string {
	return engine.DOT(root)
}
