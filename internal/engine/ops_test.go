package engine_test

import (
	"math"
	"testing"

	"github.com/grad-ml/grad/internal/engine"
	"github.com/stretchr/testify/assert"
)

const delta = 1e-12

// TestOps_Forward tests that every operation's forward value matches a
// direct evaluation on the operand data.
func TestOps_Forward(t *testing.T) {
	a := engine.New(2.0)
	b := engine.New(3.0)

	assert.Equal(t, 5.0, a.Add(b).Data())
	assert.Equal(t, -1.0, a.Sub(b).Data())
	assert.Equal(t, 6.0, a.Mul(b).Data())
	assert.InDelta(t, 2.0/3.0, a.Div(b).Data(), delta)
	assert.Equal(t, 8.0, a.Pow(b).Data())
	assert.Equal(t, 4.0, a.PowReal(2).Data())
	assert.Equal(t, -2.0, a.Neg().Data())
	assert.InDelta(t, math.Tanh(2.0), a.Tanh().Data(), delta)
	assert.Equal(t, 2.0, a.ReLU().Data())
	assert.Equal(t, 0.0, engine.New(-2.0).ReLU().Data())
}

// TestOps_SingleEdgeGradients tests the analytic partial derivatives of
// each binary operation applied to two fresh leaves.
func TestOps_SingleEdgeGradients(t *testing.T) {
	cases := []struct {
		name         string
		apply        func(a, b *engine.Value) *engine.Value
		gradA, gradB float64
	}{
		{"add", (*engine.Value).Add, 1, 1},
		{"sub", (*engine.Value).Sub, 1, -1},
		{"mul", (*engine.Value).Mul, 3, 2},
		{"div", (*engine.Value).Div, 1.0 / 3.0, -2.0 / 9.0},
		// d(a^b)/da = b*a^(b-1) = 3*4 = 12, d(a^b)/db = a^b*ln(a) = 8*ln(2)
		{"pow", (*engine.Value).Pow, 12, 8 * math.Ln2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := engine.New(2.0)
			b := engine.New(3.0)

			out := tc.apply(a, b)
			out.Backward()

			assert.InDelta(t, tc.gradA, a.Grad(), delta, "a.Grad()")
			assert.InDelta(t, tc.gradB, b.Grad(), delta, "b.Grad()")
		})
	}
}

// TestOps_UnaryGradients tests the analytic derivatives of the unary
// operations.
func TestOps_UnaryGradients(t *testing.T) {
	t.Run("neg", func(t *testing.T) {
		a := engine.New(2.0)
		a.Neg().Backward()
		assert.Equal(t, -1.0, a.Grad())
	})

	t.Run("powreal", func(t *testing.T) {
		a := engine.New(2.0)
		a.PowReal(3).Backward()
		// d(a³)/da = 3a² = 12
		assert.InDelta(t, 12.0, a.Grad(), delta)
	})

	t.Run("tanh", func(t *testing.T) {
		a := engine.New(0.5)
		out := a.Tanh()
		out.Backward()
		assert.InDelta(t, 1-math.Tanh(0.5)*math.Tanh(0.5), a.Grad(), delta)
	})

	t.Run("relu_positive", func(t *testing.T) {
		a := engine.New(2.0)
		a.ReLU().Backward()
		assert.Equal(t, 1.0, a.Grad())
	})

	t.Run("relu_negative", func(t *testing.T) {
		a := engine.New(-2.0)
		a.ReLU().Backward()
		assert.Equal(t, 0.0, a.Grad())
	})
}

// TestTanh_Bounds tests that tanh output stays in (-1, 1) and its local
// derivative stays in (0, 1] over a spread of inputs. Samples stay
// within |x| <= 15: beyond |x| ≈ 19, float64 tanh rounds to exactly ±1
// and the open bounds no longer hold in floating point.
func TestTanh_Bounds(t *testing.T) {
	for _, x := range []float64{-15, -3, -0.5, 0, 0.5, 3, 15} {
		a := engine.New(x)
		out := a.Tanh()

		assert.Greater(t, out.Data(), -1.0, "tanh(%g)", x)
		assert.Less(t, out.Data(), 1.0, "tanh(%g)", x)

		out.Backward()
		local := a.Grad() // root seeded with 1, so a.Grad() is the local derivative
		assert.Greater(t, local, 0.0, "tanh'(%g)", x)
		assert.LessOrEqual(t, local, 1.0, "tanh'(%g)", x)
	}
}

// TestTanh_Saturation tests the extreme inputs where float64 tanh
// saturates: the value rounds to exactly ±1 and the local derivative
// 1 - tanh(x)² underflows to exactly 0. Only the closed bounds hold.
func TestTanh_Saturation(t *testing.T) {
	for _, x := range []float64{-20, 20} {
		a := engine.New(x)
		out := a.Tanh()

		assert.GreaterOrEqual(t, out.Data(), -1.0, "tanh(%g)", x)
		assert.LessOrEqual(t, out.Data(), 1.0, "tanh(%g)", x)
		assert.Equal(t, math.Tanh(x), out.Data(), "tanh(%g)", x)

		out.Backward()
		assert.Equal(t, 0.0, a.Grad(), "tanh'(%g) underflows to 0", x)
	}
}

// TestReLU_AtZero tests that exactly zero takes the non-positive branch.
func TestReLU_AtZero(t *testing.T) {
	a := engine.New(0.0)
	out := a.ReLU()

	assert.Equal(t, 0.0, out.Data())

	out.Backward()
	assert.Equal(t, 0.0, a.Grad(), "ReLU derivative at 0 must be 0")
}

// TestOps_DomainFailuresPropagate tests that out-of-domain inputs produce
// Inf/NaN rather than panics, per IEEE 754 and math.Log semantics.
func TestOps_DomainFailuresPropagate(t *testing.T) {
	t.Run("div_by_zero", func(t *testing.T) {
		a := engine.New(2.0)
		b := engine.New(0.0)

		out := a.Div(b)
		assert.True(t, math.IsInf(out.Data(), 1))

		out.Backward()
		assert.True(t, math.IsInf(a.Grad(), 1), "d(a/0)/da = 1/0")
		assert.True(t, math.IsInf(b.Grad(), -1), "d(a/0)/db = -a/0²")
	})

	t.Run("pow_negative_base", func(t *testing.T) {
		a := engine.New(-2.0)
		b := engine.New(3.0)

		out := a.Pow(b)
		assert.Equal(t, -8.0, out.Data())

		// ln(-2) is NaN, so the exponent's gradient is NaN.
		out.Backward()
		assert.True(t, math.IsNaN(b.Grad()))
	})
}
