package FEM1D

import (
	"fmt"
	"math"

	"github.com/notargets/fem1d/utils"
	"gonum.org/v1/gonum/mat"
)

type QuadratureType uint8

const (
	GaussLegendre QuadratureType = iota
	NewtonCotes
)

func (qt QuadratureType) String() string {
	switch qt {
	case GaussLegendre:
		return "GaussLegendre"
	case NewtonCotes:
		return "NewtonCotes"
	}
	return "unknown"
}

func NewQuadratureType(label string) (qt QuadratureType, err error) {
	switch label {
	case "GaussLegendre", "Gauss", "GL":
		qt = GaussLegendre
	case "NewtonCotes", "NC":
		qt = NewtonCotes
	default:
		err = fmt.Errorf("%w: %q", ErrUnsupportedRule, label)
	}
	return
}

// Quadrature is an immutable rule on the reference interval [-1,1]. A
// Gauss-Legendre rule with n points integrates polynomials up to degree
// 2n-1 exactly; a Newton-Cotes rule with n equally spaced points only up to
// degree n-1. Newton-Cotes weights change sign from nine points on, as all
// equally spaced rules do.
type Quadrature struct {
	Kind QuadratureType
	X, W utils.Vector
}

func NewQuadrature(kind QuadratureType, nPoints int) (q *Quadrature, err error) {
	if nPoints < 1 {
		err = fmt.Errorf("%w: %d", ErrInvalidPointCount, nPoints)
		return
	}
	q = &Quadrature{Kind: kind}
	switch kind {
	case GaussLegendre:
		q.X, q.W = legendreGQ(nPoints)
	case NewtonCotes:
		q.X, q.W = newtonCotes(nPoints)
	default:
		q, err = nil, fmt.Errorf("%w: kind %d", ErrUnsupportedRule, kind)
	}
	return
}

func (q *Quadrature) Len() int { return q.X.Len() }

// legendreGQ computes the n-point Gauss-Legendre rule via the Golub-Welsch
// algorithm: the points are the eigenvalues of the Jacobi matrix of the
// recurrence coefficients, the weights come from the first components of the
// eigenvectors scaled by the total measure of the interval.
func legendreGQ(n int) (X, W utils.Vector) {
	if n == 1 {
		X = utils.NewVector(1, []float64{0})
		W = utils.NewVector(1, []float64{2})
		return
	}
	var (
		d0 = make([]float64, n)
		d1 = make([]float64, n-1)
	)
	for i := 0; i < n-1; i++ {
		ip1 := float64(i + 1)
		d1[i] = ip1 / math.Sqrt((2*ip1-1)*(2*ip1+1))
	}
	JJ := utils.NewSymTriDiagonal(d0, d1)

	var eig mat.EigenSym
	ok := eig.Factorize(JJ, true)
	if !ok {
		panic("eigenvalue decomposition failed")
	}
	X = utils.NewVector(n, eig.Values(nil))

	VVr := mat.NewDense(n, n, nil)
	eig.VectorsTo(VVr)
	w := make([]float64, n)
	for j := 0; j < n; j++ {
		v0 := VVr.At(0, j)
		w[j] = 2 * v0 * v0
	}
	W = utils.NewVector(n, w)
	return
}

// newtonCotes computes the n-point rule on equally spaced nodes including the
// interval endpoints (midpoint rule for n=1). The weights solve the moment
// system V*w = m so that the rule is exact for all polynomials up to degree
// n-1.
func newtonCotes(n int) (X, W utils.Vector) {
	if n == 1 {
		X = utils.NewVector(1, []float64{0})
		W = utils.NewVector(1, []float64{2})
		return
	}
	var (
		x = make([]float64, n)
		m = make([]float64, n)
		v = make([]float64, n*n)
	)
	for j := 0; j < n; j++ {
		x[j] = -1 + 2*float64(j)/float64(n-1)
	}
	for k := 0; k < n; k++ {
		if k%2 == 0 {
			m[k] = 2 / float64(k+1)
		}
		for j := 0; j < n; j++ {
			v[k*n+j] = utils.POW(x[j], k)
		}
	}
	V := mat.NewDense(n, n, v)
	var w mat.VecDense
	if err := w.SolveVec(V, mat.NewVecDense(n, m)); err != nil {
		panic(fmt.Errorf("newton-cotes moment system: %v", err))
	}
	X = utils.NewVector(n, x)
	W = utils.NewVector(n, w.RawVector().Data)
	return
}
