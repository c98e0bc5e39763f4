package FEM1D

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssembleDenseP1(t *testing.T) {
	var (
		msh    = UniformMesh(0, 2, 2) // h = 1
		dofMap = UniformDofMap(2, 1)
		asm    = NewAssembler(msh, dofMap, map[int]float64{}, GaussLegendre, Dense)
	)
	K, f, err := asm.Assemble(laplaceForm{c: 1})
	assert.NoError(t, err)
	want := [][]float64{
		{1, -1, 0},
		{-1, 2, -1}, // shared dof accumulates from both neighbors
		{0, -1, 1},
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.True(t, near(K.At(i, j), want[i][j]), "i=%d j=%d", i, j)
		}
	}
	assert.True(t, near(f.AtVec(0), 0.5))
	assert.True(t, near(f.AtVec(1), 1))
	assert.True(t, near(f.AtVec(2), 0.5))
}

func TestAssemblyOrderInvariance(t *testing.T) {
	var (
		K      = 5
		msh    = UniformMesh(0, 1, K)
		dofMap = UniformDofMap(K, 1)
		essbc  = map[int]float64{K: 0.7}
	)
	// same cells and dofs, elements visited in reverse order
	rev := Mesh{VX: msh.VX, EToV: make([][2]int, K)}
	revDofs := make([][]int, K)
	for e := 0; e < K; e++ {
		rev.EToV[e] = msh.EToV[K-1-e]
		revDofs[e] = dofMap[K-1-e]
	}
	KA, fA, err := NewAssembler(msh, dofMap, essbc, GaussLegendre, Dense).Assemble(laplaceForm{c: 2})
	assert.NoError(t, err)
	KB, fB, err := NewAssembler(rev, revDofs, essbc, GaussLegendre, Dense).Assemble(laplaceForm{c: 2})
	assert.NoError(t, err)
	n := NumDofs(dofMap)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			assert.True(t, near(KA.At(i, j), KB.At(i, j)), "i=%d j=%d", i, j)
		}
	}
	assert.True(t, near(fA.MaxDiff(fB), 0))
}

func TestDenseSparseAgreement(t *testing.T) {
	var (
		K      = 4
		msh    = UniformMesh(0, 3, K)
		dofMap = UniformDofMap(K, 2)
		essbc  = map[int]float64{NumDofs(dofMap) - 1: 1.5}
	)
	KD, fD, err := NewAssembler(msh, dofMap, essbc, GaussLegendre, Dense).Assemble(laplaceForm{c: 1})
	assert.NoError(t, err)
	KS, fS, err := NewAssembler(msh, dofMap, essbc, GaussLegendre, Sparse).Assemble(laplaceForm{c: 1})
	assert.NoError(t, err)
	n := NumDofs(dofMap)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			assert.True(t, near(KD.At(i, j), KS.At(i, j)), "i=%d j=%d", i, j)
		}
	}
	assert.True(t, near(fD.MaxDiff(fS), 0))

	uD, err := Solve(KD, fD)
	assert.NoError(t, err)
	uS, err := Solve(KS, fS)
	assert.NoError(t, err)
	assert.True(t, uD.MaxDiff(uS) < 1.e-10)
}

func TestParallelAssemblyMatchesSerial(t *testing.T) {
	var (
		K      = 10
		msh    = UniformMesh(0, 4, K)
		dofMap = UniformDofMap(K, 2)
		essbc  = map[int]float64{NumDofs(dofMap) - 1: 2}
	)
	for _, st := range []StorageType{Dense, Sparse} {
		asm := NewAssembler(msh, dofMap, essbc, GaussLegendre, st)
		KA, fA, err := asm.Assemble(laplaceForm{c: 3})
		assert.NoError(t, err)
		KB, fB, err := asm.AssembleParallel(laplaceForm{c: 3}, 3)
		assert.NoError(t, err)
		n := NumDofs(dofMap)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				assert.True(t, near(KA.At(i, j), KB.At(i, j)), "st=%v i=%d j=%d", st, i, j)
			}
		}
		assert.True(t, near(fA.MaxDiff(fB), 0))
	}
}

func TestParallelCallbackFailure(t *testing.T) {
	var (
		msh    = UniformMesh(0, 1, 6)
		dofMap = UniformDofMap(6, 1)
		asm    = NewAssembler(msh, dofMap, map[int]float64{6: 0}, GaussLegendre, Dense)
	)
	_, _, err := asm.AssembleParallel(panicForm{}, 3)
	assert.Error(t, err)
}

func TestStorageTypeParsing(t *testing.T) {
	st, err := NewStorageType("sparse")
	assert.NoError(t, err)
	assert.Equal(t, Sparse, st)
	_, err = NewStorageType("triangular")
	assert.ErrorIs(t, err, ErrUnsupportedStorage)
}
