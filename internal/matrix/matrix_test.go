package matrix

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestFromColMajorOrdering(t *testing.T) {
	m := FromColMajor(3, 2, []float64{
		3, 5, 10, // sleep
		5, 1, 2, // study
	})
	r, c := m.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 2, c)
	assert.Equal(t, 10.0, m.At(2, 0))
	assert.Equal(t, 5.0, m.At(0, 1))
	assert.Equal(t, []float64{3, 5, 10, 5, 1, 2}, ColMajor(m))
}

func TestFromColMajorEmpty(t *testing.T) {
	m := FromColMajor(0, 4, nil)
	assert.True(t, m.IsEmpty())
	assert.Empty(t, ColMajor(m))
}

func TestFromColMajorLengthMismatchPanics(t *testing.T) {
	assert.Panics(t, func() { FromColMajor(2, 2, []float64{1, 2, 3}) })
}

func TestUpdateElemsVisitsEveryElementOnce(t *testing.T) {
	m := mat.NewDense(3, 4, nil)
	calls := 0
	UpdateElems(m, func(v float64) float64 {
		calls++
		return v + 1
	})
	assert.Equal(t, 12, calls)
	r, c := m.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 4, c)
	for _, v := range ColMajor(m) {
		assert.Equal(t, 1.0, v)
	}
}

func TestUpdateElemsEmpty(t *testing.T) {
	m := &mat.Dense{}
	UpdateElems(m, func(float64) float64 {
		t.Fatal("f called on empty matrix")
		return 0
	})
}

func TestNormaliseCols(t *testing.T) {
	m := FromColMajor(3, 3, []float64{
		3, 5, 10,
		0, 0, 0,
		75, 82, 93,
	})
	NormaliseCols(m)

	for _, c := range []int{0, 2} {
		col := mat.Col(nil, c, m)
		peak := math.Inf(-1)
		for _, v := range col {
			assert.LessOrEqual(t, v, 1.0)
			peak = math.Max(peak, v)
		}
		assert.InDelta(t, 1.0, peak, 1e-12, "column %d", c)
	}
	assert.InDelta(t, 0.3, m.At(0, 0), 1e-12)
	assert.Equal(t, []float64{0, 0, 0}, mat.Col(nil, 1, m))
}

func TestNormaliseColsZeroMaxIsBitIdentical(t *testing.T) {
	negZero := math.Copysign(0, -1)
	m := FromColMajor(3, 1, []float64{-2, negZero, -0.5})
	NormaliseCols(m)
	col := mat.Col(nil, 0, m)
	assert.Equal(t, -2.0, col[0])
	assert.True(t, math.Signbit(col[1]))
	assert.Equal(t, -0.5, col[2])
}

func TestScaleCols(t *testing.T) {
	m := FromColMajor(3, 2, []float64{3, 5, 10, 5, 1, 2})
	ScaleCols(m, []float64{10, 0})
	assert.Equal(t, []float64{0.3, 0.5, 1, 5, 1, 2}, ColMajor(m))
}

func TestNormaliseSliceFloat32(t *testing.T) {
	col := []float32{1, 2, 4}
	require.True(t, NormaliseSlice(col))
	assert.Equal(t, []float32{0.25, 0.5, 1}, col)

	zeros := []float32{0, 0}
	assert.False(t, NormaliseSlice(zeros))
}

func TestUpdateSlice(t *testing.T) {
	s := []int{1, 2, 3}
	UpdateSlice(s, func(v int) int { return v * v })
	assert.Equal(t, []int{1, 4, 9}, s)
}
