package engine

// ReLU returns a node computing max(0, v).
//
// Backward pass:
//   - d(ReLU(a))/da = 1 if a > 0, else 0
//
// At exactly zero both the value and the local derivative take the
// non-positive branch: ReLU(0) = 0 with derivative 0.
func (v *Value) ReLU() *Value {
	if v.data > 0 {
		return unary(OpReLU, v, v.data, 1)
	}
	return unary(OpReLU, v, 0, 0)
}
