package engine

import "math"

// Tanh returns a node computing the hyperbolic tangent of v.
//
// Backward pass:
//   - d(tanh(a))/da = 1 - tanh(a)²
//
// The local derivative reuses the forward result, so it always lies in
// (0, 1].
func (v *Value) Tanh() *Value {
	data := math.Tanh(v.data)
	return unary(OpTanh, v, data, 1-data*data)
}
