package FEM1D

import (
	"github.com/notargets/fem1d/utils"
)

// ApplyEssentialBC enforces prescribed (Dirichlet) values on a local element
// system by symmetric row/column elimination. For each local dof whose global
// index appears in essbc with value v:
//
//  1. subtract v times column r from the load vector - this correction must
//     precede the column zeroing or it is lost
//  2. zero row r and column r of the local matrix
//  3. set the diagonal entry to 1
//  4. pin the load vector entry to v
//
// The transformation preserves symmetry of a symmetric local matrix and is
// idempotent: re-applying it to an already constrained system changes
// nothing. The modified flag is diagnostic only.
func ApplyEssentialBC(Ae utils.Matrix, be utils.Vector, dofs []int,
	essbc map[int]float64) (modified bool) {
	var (
		n = len(dofs)
	)
	for r := 0; r < n; r++ {
		v, ok := essbc[dofs[r]]
		if !ok {
			continue
		}
		for i := 0; i < n; i++ {
			be.Accumulate(i, -v*Ae.At(i, r))
		}
		for i := 0; i < n; i++ {
			Ae.Set(r, i, 0)
			Ae.Set(i, r, 0)
		}
		Ae.Set(r, r, 1)
		be.Set(r, v)
		modified = true
	}
	return
}
