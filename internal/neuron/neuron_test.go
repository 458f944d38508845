package neuron

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ann/internal/activation"
)

func withInputs(t *testing.T, n *Neuron, inputs ...float64) *Neuron {
	t.Helper()
	require.NoError(t, n.SetInputs(inputs))
	return n
}

func TestLinearMeanWeightedInput(t *testing.T) {
	n := withInputs(t, NewLinear(1, 1), 1, 1)
	v, ok := n.Evaluate().Real()
	require.True(t, ok)
	assert.Equal(t, 1.0, v)

	n = withInputs(t, NewLinear(0.5, 1, 0), 1, 0.5, 1)
	v, _ = n.Evaluate().Real()
	assert.InDelta(t, 1.0/3.0, v, 1e-12)
}

func TestBinaryThreshold(t *testing.T) {
	n := withInputs(t, NewBinaryThreshold(0.5, 1, 1), 0.6, 0.6)
	out := n.Evaluate()
	assert.True(t, out.Bool())
	_, ok := out.Real()
	assert.False(t, ok)
	assert.Equal(t, 1.0, out.Float())

	// strictly greater
	n = withInputs(t, NewBinaryThreshold(0.5, 1, 1), 0.5, 0.5)
	assert.False(t, n.Evaluate().Bool())
	assert.Equal(t, "false", n.Evaluate().String())
}

func TestRectifiedLinear(t *testing.T) {
	n := withInputs(t, NewRectifiedLinear(0.5, 1, 1), 0.2, 0.4)
	out := n.Evaluate()
	assert.False(t, out.Present())
	_, ok := out.Real()
	assert.False(t, ok)
	assert.Equal(t, "none", out.String())

	n = withInputs(t, NewRectifiedLinear(0.5, 1, 1), 0.75, 0.75)
	v, ok := n.Evaluate().Real()
	require.True(t, ok)
	assert.InDelta(t, 0.5, v, 1e-12)

	n = withInputs(t, NewRectifiedLinear(0.5, 1), 1)
	v, _ = n.Evaluate().Real()
	assert.InDelta(t, 1.0, v, 1e-12)
}

func TestSigmoid(t *testing.T) {
	// total input at the middle of [0, n] maps to 0 before squashing
	n := withInputs(t, NewSigmoid(0.5, 0.5), 1, 1)
	v, ok := n.Evaluate().Real()
	require.True(t, ok)
	assert.InDelta(t, 0.5, v, 1e-12)

	n = withInputs(t, NewSigmoid(1, 1), 0, 0)
	v, _ = n.Evaluate().Real()
	assert.InDelta(t, activation.Logistic(-10), v, 1e-12)

	n = withInputs(t, NewSigmoid(1, 1), 1, 1)
	v, _ = n.Evaluate().Real()
	assert.InDelta(t, activation.Logistic(10), v, 1e-12)
	assert.Less(t, v, 1.0)
}

func TestStochasticBinary(t *testing.T) {
	n := withInputs(t, NewStochasticBinary(1, 1), 0.9, 0.8)
	assert.True(t, n.Evaluate().Bool())

	n = withInputs(t, NewStochasticBinary(1, 1), 0.5, 0.5)
	assert.False(t, n.Evaluate().Bool(), "exactly 0.5 does not fire")

	n = withInputs(t, NewStochasticBinary(1, 1), 0.1, 0.2)
	assert.False(t, n.Evaluate().Bool())
}

func TestEvaluateIsRepeatable(t *testing.T) {
	n := withInputs(t, NewRandom(Sigmoid, 0, 4, rand.New(rand.NewSource(3))), 0.1, 0.2, 0.3, 0.4)
	first := n.Evaluate()
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, n.Evaluate())
	}
}

func TestSetInputsLengthMismatch(t *testing.T) {
	n := NewLinear(1, 1)
	require.NoError(t, n.SetInputs([]float64{0.25, 0.75}))

	err := n.SetInputs([]float64{1, 2, 3})
	require.Error(t, err)
	var countErr *InputCountError
	require.True(t, errors.As(err, &countErr))
	assert.Equal(t, 2, countErr.Expected)
	assert.Equal(t, 3, countErr.Got)
	assert.Contains(t, err.Error(), "(3)")
	assert.Contains(t, err.Error(), "(2)")

	syn := n.Synapses()
	assert.Equal(t, 0.25, syn[0].Input, "synapses untouched after a failed SetInputs")
	assert.Equal(t, 0.75, syn[1].Input)

	assert.PanicsWithValue(t, err.Error(), func() { n.MustSetInputs([]float64{1, 2, 3}) })
}

func TestSetters(t *testing.T) {
	n := NewLinear(0, 0)
	n.SetInput(0, 2)
	n.SetWeight(0, 0.5)
	n.SetInput(1, 4)
	n.SetWeight(1, 0.25)
	assert.Equal(t, []Synapse{{Input: 2, Weight: 0.5}, {Input: 4, Weight: 0.25}}, n.Synapses())
	v, _ := n.Evaluate().Real()
	assert.Equal(t, 1.0, v)

	syn := n.Synapses()
	syn[0].Weight = 99
	assert.Equal(t, 0.5, n.Synapses()[0].Weight, "Synapses returns a copy")
}

func TestNewRandomDeterministic(t *testing.T) {
	a := NewRandom(Linear, 0, 5, rand.New(rand.NewSource(9)))
	b := NewRandom(Linear, 0, 5, rand.New(rand.NewSource(9)))
	assert.Equal(t, a.Synapses(), b.Synapses())
	assert.Equal(t, 5, a.Len())
	for _, s := range a.Synapses() {
		assert.GreaterOrEqual(t, s.Weight, 0.0)
		assert.Less(t, s.Weight, 1.0)
	}
}

func TestParseKind(t *testing.T) {
	cases := map[string]Kind{
		"linear":            Linear,
		"Binary-Threshold":  BinaryThreshold,
		"rectified_linear":  RectifiedLinear,
		"linear_threshold":  LinearThreshold,
		"logistic":          Logistic,
		"SIGMOID":           Sigmoid,
		"stochastic binary": StochasticBinary,
	}
	for in, want := range cases {
		got, err := ParseKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseKind("tanh")
	assert.Error(t, err)

	assert.Equal(t, RectifiedLinear, LinearThreshold)
	assert.Equal(t, "sigmoid", Logistic.String())
	assert.True(t, BinaryThreshold.Thresholded())
	assert.False(t, Sigmoid.Thresholded())
}
