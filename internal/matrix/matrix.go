package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Real is the element constraint for column normalisation: ordered,
// divisible and with a usable zero value.
type Real interface {
	~float32 | ~float64
}

// FromColMajor builds a rows x cols matrix from data laid out column by
// column. A zero row or column count yields an empty matrix.
func FromColMajor(rows, cols int, data []float64) *mat.Dense {
	if len(data) != rows*cols {
		panic(fmt.Sprintf("matrix: %d values for a %dx%d matrix", len(data), rows, cols))
	}
	if rows == 0 || cols == 0 {
		return &mat.Dense{}
	}
	m := mat.NewDense(rows, cols, nil)
	for c := 0; c < cols; c++ {
		m.SetCol(c, data[c*rows:(c+1)*rows])
	}
	return m
}

// ColMajor flattens m column by column.
func ColMajor(m mat.Matrix) []float64 {
	rows, cols := m.Dims()
	out := make([]float64, 0, rows*cols)
	for c := 0; c < cols; c++ {
		out = append(out, mat.Col(nil, c, m)...)
	}
	return out
}

// UpdateElems replaces every element of m with f applied to it.
func UpdateElems(m *mat.Dense, f func(float64) float64) {
	if m.IsEmpty() {
		return
	}
	m.Apply(func(_, _ int, v float64) float64 {
		return f(v)
	}, m)
}

// NormaliseCols divides each column of m by that column's maximum.
// Columns whose maximum is zero are left untouched.
func NormaliseCols(m *mat.Dense) {
	if m.IsEmpty() {
		return
	}
	rows, cols := m.Dims()
	col := make([]float64, rows)
	for c := 0; c < cols; c++ {
		mat.Col(col, c, m)
		if NormaliseSlice(col) {
			m.SetCol(c, col)
		}
	}
}

// ScaleCols divides column c of m by maxima[c]. Zero entries skip
// their column, as does a missing entry.
func ScaleCols(m *mat.Dense, maxima []float64) {
	if m.IsEmpty() {
		return
	}
	rows, cols := m.Dims()
	col := make([]float64, rows)
	for c := 0; c < cols && c < len(maxima); c++ {
		if maxima[c] == 0 {
			continue
		}
		mat.Col(col, c, m)
		for i := range col {
			col[i] /= maxima[c]
		}
		m.SetCol(c, col)
	}
}

// UpdateSlice is UpdateElems over raw storage.
func UpdateSlice[T any](s []T, f func(T) T) {
	for i := range s {
		s[i] = f(s[i])
	}
}

// NormaliseSlice divides every element of col by the largest one, in place.
// The fold starts from zero, so an all-negative column has a zero maximum.
// It reports whether col was changed.
func NormaliseSlice[T Real](col []T) bool {
	var peak T
	for _, v := range col {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		return false
	}
	for i := range col {
		col[i] /= peak
	}
	return true
}
