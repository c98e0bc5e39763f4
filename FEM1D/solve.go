package FEM1D

import (
	"fmt"

	"github.com/notargets/fem1d/utils"
	"gonum.org/v1/gonum/mat"
)

// Solve computes the coefficient vector of the assembled system K*u = f with
// the direct method matching the storage backing: LU for a dense system, row
// elimination on compressed storage for a sparse one. A numerically singular
// system - typically a pure-Neumann problem with no essential boundary
// condition pinning the constant mode - surfaces as ErrSingularSystem.
func Solve(K SystemMatrix, f utils.Vector) (u utils.Vector, err error) {
	switch sys := K.(type) {
	case DenseSystem:
		u, err = solveDense(sys.Matrix, f)
	case SparseSystem:
		u, err = solveSparse(sys.DOK, f)
	default:
		err = fmt.Errorf("%w: %T", ErrUnsupportedStorage, K)
	}
	return
}

func solveDense(K utils.Matrix, f utils.Vector) (u utils.Vector, err error) {
	var (
		lu mat.LU
		x  mat.VecDense
	)
	lu.Factorize(K.M)
	if sErr := lu.SolveVecTo(&x, false, f.V); sErr != nil {
		err = fmt.Errorf("%w: %v", ErrSingularSystem, sErr)
		return
	}
	u = utils.NewVector(x.Len(), x.RawVector().Data)
	return
}
