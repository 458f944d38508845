package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestCost(t *testing.T) {
	assert.Equal(t, 0.0, Cost([]float64{0.75, 0.82, 0.93}, []float64{0.75, 0.82, 0.93}))
	assert.Equal(t, 1.0, Cost([]float64{0, 0}, []float64{1, 1}))
	assert.InDelta(t, 0.125, Cost([]float64{0.5}, []float64{1}), 1e-12)
	assert.Equal(t, 0.0, Cost(nil, nil))
}

func TestCostTruncatesToShorter(t *testing.T) {
	assert.Equal(t, 0.5, Cost([]float64{0, 0, 0}, []float64{1}))
	assert.Equal(t, 0.5, Cost([]float64{0}, []float64{1, 5, 9}))
}

func TestMatrixCost(t *testing.T) {
	guesses := mat.NewDense(3, 1, []float64{0.7, 0.8, 0.9})
	correct := mat.NewDense(3, 1, []float64{0.75, 0.82, 0.93})
	want := (0.05*0.05 + 0.02*0.02 + 0.03*0.03) / 2
	assert.InDelta(t, want, MatrixCost(guesses, correct), 1e-12)
}
