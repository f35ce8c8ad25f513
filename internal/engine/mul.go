package engine

// Mul returns a node computing v * o.
//
// Backward pass:
//   - d(a*b)/da = b
//   - d(a*b)/db = a
func (v *Value) Mul(o *Value) *Value {
	return binary(OpMul, v, o, v.data*o.data, o.data, v.data)
}
