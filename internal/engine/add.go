package engine

// Add returns a node computing v + o.
//
// Backward pass:
//   - d(a+b)/da = 1
//   - d(a+b)/db = 1
func (v *Value) Add(o *Value) *Value {
	return binary(OpAdd, v, o, v.data+o.data, 1, 1)
}
