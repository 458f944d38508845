package metrics

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"ann/internal/matrix"
)

// Cost sums the squared error of each guess against its correct result,
// halved: Σ (correct - guess)² / 2. Pairs are taken positionally and the
// longer slice is truncated to the shorter one.
func Cost(guesses, correct []float64) float64 {
	n := len(guesses)
	if len(correct) < n {
		n = len(correct)
	}
	if n == 0 {
		return 0
	}
	diff := make([]float64, n)
	floats.SubTo(diff, correct[:n], guesses[:n])
	return floats.Dot(diff, diff) / 2
}

// MatrixCost is Cost over the column-major contents of two matrices.
func MatrixCost(guesses, correct mat.Matrix) float64 {
	return Cost(matrix.ColMajor(guesses), matrix.ColMajor(correct))
}
