package utils

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

type Vector struct {
	V *mat.VecDense
}

func NewVector(n int, dataO ...[]float64) (V Vector) {
	if len(dataO) != 0 {
		if len(dataO[0]) != n {
			err := fmt.Errorf("mismatch in allocation: NewVector n = %v, len(data[0]) = %v\n", n, len(dataO[0]))
			panic(err)
		}
		V = Vector{mat.NewVecDense(n, dataO[0])}
	} else {
		V = Vector{mat.NewVecDense(n, make([]float64, n))}
	}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (v Vector) Dims() (r, c int)         { return v.V.Dims() }
func (v Vector) At(i, j int) float64      { return v.V.At(i, j) }
func (v Vector) T() mat.Matrix            { return v.V.T() }
func (v Vector) AtVec(i int) float64      { return v.V.AtVec(i) }
func (v Vector) RawVector() blas64.Vector { return v.V.RawVector() }
func (v Vector) Len() int                 { return v.V.Len() }
func (v Vector) Data() []float64          { return v.V.RawVector().Data }

// Chainable (extended) methods
func (v Vector) Set(i int, val float64) Vector {
	v.V.SetVec(i, val)
	return v
}

// Accumulate adds val into entry i, the scatter primitive for the global
// load vector.
func (v Vector) Accumulate(i int, val float64) Vector {
	v.V.SetVec(i, v.V.AtVec(i)+val)
	return v
}

func (v Vector) Copy() (R Vector) {
	var (
		data  = v.V.RawVector().Data
		dataR = make([]float64, len(data))
	)
	copy(dataR, data)
	R = NewVector(len(dataR), dataR)
	return
}

func (v Vector) Scale(a float64) Vector {
	data := v.V.RawVector().Data
	for i := range data {
		data[i] *= a
	}
	return v
}

func (v Vector) Apply(f func(float64) float64) Vector {
	data := v.V.RawVector().Data
	for i, val := range data {
		data[i] = f(val)
	}
	return v
}

func (v Vector) Min() (min float64) {
	data := v.V.RawVector().Data
	min = data[0]
	for _, val := range data {
		if val < min {
			min = val
		}
	}
	return
}

func (v Vector) Max() (max float64) {
	data := v.V.RawVector().Data
	max = data[0]
	for _, val := range data {
		if val > max {
			max = val
		}
	}
	return
}

// MaxDiff returns the largest absolute entry-wise difference between v and a.
func (v Vector) MaxDiff(a Vector) (max float64) {
	var (
		d1 = v.V.RawVector().Data
		d2 = a.V.RawVector().Data
	)
	if len(d1) != len(d2) {
		panic("mismatched vector lengths")
	}
	for i, val := range d1 {
		if diff := math.Abs(val - d2[i]); diff > max {
			max = diff
		}
	}
	return
}
