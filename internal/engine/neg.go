package engine

// Neg returns a node computing -v.
//
// Backward pass:
//   - d(-a)/da = -1
func (v *Value) Neg() *Value {
	return unary(OpNeg, v, -v.data, -1)
}
