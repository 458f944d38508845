package model

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"ann/internal/activation"
	"ann/internal/matrix"
)

// Source supplies uniform draws for weight initialisation. *rand.Rand
// satisfies it.
type Source interface {
	Float64() float64
}

// Network is a feed-forward network with a single hidden layer.
//
// hidden has one row per input and one column per hidden neuron; output has
// one row per hidden neuron and one column per output.
type Network struct {
	inputs, hidden, outputs int
	hiddenWeights           *mat.Dense
	outputWeights           *mat.Dense
}

// NewNetwork constructs the network with every weight drawn from src. A nil
// src falls back to a generator seeded with 1.
func NewNetwork(inputs, hidden, outputs int, src Source) *Network {
	if src == nil {
		src = rand.New(rand.NewSource(1))
	}
	return &Network{
		inputs:        inputs,
		hidden:        hidden,
		outputs:       outputs,
		hiddenWeights: randomDense(inputs, hidden, src),
		outputWeights: randomDense(hidden, outputs, src),
	}
}

func randomDense(rows, cols int, src Source) *mat.Dense {
	if rows <= 0 || cols <= 0 {
		return &mat.Dense{}
	}
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = src.Float64()
	}
	return matrix.FromColMajor(rows, cols, data)
}

// Dims returns the input, hidden and output widths.
func (n *Network) Dims() (inputs, hidden, outputs int) {
	return n.inputs, n.hidden, n.outputs
}

// HiddenWeights returns a copy of the input-to-hidden weights.
func (n *Network) HiddenWeights() *mat.Dense { return copyDense(n.hiddenWeights) }

// OutputWeights returns a copy of the hidden-to-output weights.
func (n *Network) OutputWeights() *mat.Dense { return copyDense(n.outputWeights) }

func copyDense(m *mat.Dense) *mat.Dense {
	if m.IsEmpty() {
		return &mat.Dense{}
	}
	return mat.DenseCopyOf(m)
}

// Forward feeds a batch through the network. Each row of input is one
// example and each column one feature; the result has one row per example
// and one column per output. A width mismatch panics inside mat.
func (n *Network) Forward(input mat.Matrix) *mat.Dense {
	if n.hiddenWeights.IsEmpty() || n.outputWeights.IsEmpty() {
		return &mat.Dense{}
	}
	if r, c := input.Dims(); r == 0 || c == 0 {
		return &mat.Dense{}
	}

	var hiddenActivity mat.Dense
	hiddenActivity.Mul(input, n.hiddenWeights)
	matrix.UpdateElems(&hiddenActivity, activation.Logistic)

	var outputActivity mat.Dense
	outputActivity.Mul(&hiddenActivity, n.outputWeights)
	matrix.UpdateElems(&outputActivity, activation.Logistic)

	return &outputActivity
}
