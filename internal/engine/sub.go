package engine

// Sub returns a node computing v - o.
//
// Backward pass:
//   - d(a-b)/da = 1
//   - d(a-b)/db = -1
func (v *Value) Sub(o *Value) *Value {
	return binary(OpSub, v, o, v.data-o.data, 1, -1)
}
