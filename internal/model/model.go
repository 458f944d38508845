package model

import "gonum.org/v1/gonum/mat"

// Batch pairs a matrix of examples (one per row) with the expected outputs.
type Batch struct {
	Inputs  *mat.Dense
	Targets *mat.Dense
}

// Predictor defines the minimal evaluation functionality required by the runner.
type Predictor interface {
	Forward(input mat.Matrix) *mat.Dense
}
