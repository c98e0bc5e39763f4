package FEM1D

import (
	"iter"

	"github.com/notargets/fem1d/utils"
)

// Samples returns the reconstructed solution u(x) = sum c_i psi_i(X(x))
// evaluated at pointsPerElement equally spaced reference points per element,
// concatenated in mesh order. The sequence is lazy and restartable; ranging
// over it never mutates the inputs.
func Samples(coeffs utils.Vector, msh Mesh, dofMap [][]int,
	pointsPerElement int) iter.Seq2[float64, float64] {
	return func(yield func(x, u float64) bool) {
		bases := make(map[int]*Basis)
		for e := 0; e < msh.NumElements(); e++ {
			var (
				dofs = dofMap[e]
				P    = len(dofs) - 1
			)
			b, ok := bases[P]
			if !ok {
				var err error
				if b, err = NewBasis(P); err != nil {
					return
				}
				bases[P] = b
			}
			x1, x2 := msh.ElementEndpoints(e)
			for i := 0; i < pointsPerElement; i++ {
				X := -1.0
				if pointsPerElement > 1 {
					X = -1 + 2*float64(i)/float64(pointsPerElement-1)
				}
				var u float64
				for r, dof := range dofs {
					u += coeffs.AtVec(dof) * b.Phi[r](X)
				}
				if !yield(MapToPhysical(X, x1, x2), u) {
					return
				}
			}
		}
	}
}

// SampleGlobal materializes the sample sequence into parallel x and u arrays
// for plotting consumers, and returns the mesh vertex coordinates alongside.
func SampleGlobal(coeffs utils.Vector, msh Mesh, dofMap [][]int,
	pointsPerElement int) (xs, us, nodes []float64) {
	for x, u := range Samples(coeffs, msh, dofMap, pointsPerElement) {
		xs = append(xs, x)
		us = append(us, u)
	}
	nodes = make([]float64, msh.VX.Len())
	copy(nodes, msh.VX.Data())
	return
}
