package engine

import "math"

// Pow returns a node computing v^o with a node-valued exponent.
//
// Backward pass:
//   - d(a^b)/da = b * a^(b-1)
//   - d(a^b)/db = a^b * ln(a)
//
// The ∂/∂b term is undefined for a non-positive base; math.Log then
// yields NaN (or -Inf at zero), which propagates through Backward
// unguarded.
func (v *Value) Pow(o *Value) *Value {
	data := math.Pow(v.data, o.data)
	return binary(OpPow, v, o,
		data,
		o.data*math.Pow(v.data, o.data-1),
		data*math.Log(v.data))
}

// PowReal returns a node computing v^p for a plain-number exponent.
// Unlike Pow, the exponent is a constant, not a node, so the result is
// unary and no gradient flows to p.
//
// Backward pass:
//   - d(a^p)/da = p * a^(p-1)
func (v *Value) PowReal(p float64) *Value {
	return unary(OpPow, v, math.Pow(v.data, p), p*math.Pow(v.data, p-1))
}
