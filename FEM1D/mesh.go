package FEM1D

import (
	"github.com/notargets/fem1d/utils"
)

// Mesh is an ordered set of vertex coordinates and the cells connecting
// them. Vertex coordinates must be strictly increasing and the cells must
// partition the domain contiguously; the assembly loop assumes this rather
// than enforcing it.
type Mesh struct {
	VX   utils.Vector // vertex coordinates
	EToV [][2]int     // cell to vertex connectivity
}

// NumElements returns the cell count.
func (msh Mesh) NumElements() int { return len(msh.EToV) }

// ElementEndpoints returns the physical endpoints of cell e in left, right
// order. The element length is always x2-x1.
func (msh Mesh) ElementEndpoints(e int) (x1, x2 float64) {
	x1 = msh.VX.AtVec(msh.EToV[e][0])
	x2 = msh.VX.AtVec(msh.EToV[e][1])
	return
}

// UniformMesh builds K equal cells covering [x0, x1].
func UniformMesh(x0, x1 float64, K int) (msh Mesh) {
	var (
		vx = make([]float64, K+1)
		h  = (x1 - x0) / float64(K)
	)
	for i := 0; i <= K; i++ {
		vx[i] = x0 + float64(i)*h
	}
	vx[K] = x1
	msh = Mesh{
		VX:   utils.NewVector(K+1, vx),
		EToV: make([][2]int, K),
	}
	for e := 0; e < K; e++ {
		msh.EToV[e] = [2]int{e, e + 1}
	}
	return
}

// UniformDofMap numbers P+1 local degrees of freedom per cell left to right,
// sharing the interface dof between neighboring cells.
func UniformDofMap(K, P int) (dofMap [][]int) {
	dofMap = make([][]int, K)
	for e := 0; e < K; e++ {
		dofMap[e] = make([]int, P+1)
		for r := 0; r <= P; r++ {
			dofMap[e][r] = e*P + r
		}
	}
	return
}

// NumDofs returns the total degree of freedom count implied by a dof map,
// max index + 1.
func NumDofs(dofMap [][]int) (n int) {
	for _, dofs := range dofMap {
		for _, d := range dofs {
			if d+1 > n {
				n = d + 1
			}
		}
	}
	return
}

// MapToPhysical maps reference coordinate X in [-1,1] onto the physical cell
// [x1,x2] via the affine reference map.
func MapToPhysical(X, x1, x2 float64) float64 {
	return 0.5*(1-X)*x1 + 0.5*(1+X)*x2
}
