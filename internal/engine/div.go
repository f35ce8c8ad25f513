package engine

// Div returns a node computing v / o.
//
// Backward pass:
//   - d(a/b)/da = 1/b
//   - d(a/b)/db = -a/b²
//
// Division by zero is not guarded: the forward value and both local
// derivatives follow IEEE 754 semantics (±Inf or NaN) and propagate
// through Backward.
func (v *Value) Div(o *Value) *Value {
	return binary(OpDiv, v, o, v.data/o.data, 1/o.data, -v.data/(o.data*o.data))
}
