package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrixAccumulate(t *testing.T) {
	M := NewMatrix(2, 2)
	M.Accumulate(0, 1, 2.5).Accumulate(0, 1, 0.5)
	assert.Equal(t, 3.0, M.At(0, 1))
	assert.Equal(t, 0.0, M.At(1, 0))
}

func TestMatrixReadOnly(t *testing.T) {
	M := NewMatrix(2, 2)
	M.SetReadOnly("K")
	assert.Panics(t, func() { M.Set(0, 0, 1) })
	assert.Panics(t, func() { M.Accumulate(0, 0, 1) })
	M.SetWritable()
	assert.NotPanics(t, func() { M.Set(0, 0, 1) })
}

func TestMatrixDimMismatch(t *testing.T) {
	assert.Panics(t, func() { NewMatrix(2, 2, []float64{1, 2, 3}) })
}

func TestMatrixCopyIsIndependent(t *testing.T) {
	M := NewMatrix(2, 2, []float64{1, 2, 3, 4})
	R := M.Copy()
	R.Set(0, 0, 99)
	assert.Equal(t, 1.0, M.At(0, 0))
	assert.Equal(t, 99.0, R.At(0, 0))
}

func TestMatrixRowCol(t *testing.T) {
	M := NewMatrix(2, 3, []float64{1, 2, 3, 4, 5, 6})
	assert.Equal(t, []float64{4, 5, 6}, M.Row(1).Data())
	assert.Equal(t, []float64{2, 5}, M.Col(1).Data())
}

func TestVectorAccumulateAndMaxDiff(t *testing.T) {
	v := NewVector(3, []float64{1, 2, 3})
	v.Accumulate(1, 0.5)
	w := NewVector(3, []float64{1, 2.5, 4})
	assert.Equal(t, 1.0, v.MaxDiff(w))
	assert.Equal(t, 0.0, v.MaxDiff(v.Copy()))
	assert.Panics(t, func() { v.MaxDiff(NewVector(2)) })
}

func TestVectorApplyMinMax(t *testing.T) {
	v := NewVector(3, []float64{-2, 0, 1})
	assert.Equal(t, -2.0, v.Min())
	assert.Equal(t, 1.0, v.Max())
	v.Apply(func(x float64) float64 { return x * x })
	assert.Equal(t, []float64{4, 0, 1}, v.Data())
}
