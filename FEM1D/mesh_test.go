package FEM1D

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniformMesh(t *testing.T) {
	msh := UniformMesh(0, 2, 4)
	assert.Equal(t, 4, msh.NumElements())
	assert.Equal(t, 5, msh.VX.Len())
	for i := 0; i <= 4; i++ {
		assert.True(t, near(msh.VX.AtVec(i), 0.5*float64(i)))
	}
	x1, x2 := msh.ElementEndpoints(2)
	assert.True(t, near(x1, 1.0))
	assert.True(t, near(x2, 1.5))
}

func TestMapToPhysical(t *testing.T) {
	assert.True(t, near(MapToPhysical(-1, 2, 6), 2))
	assert.True(t, near(MapToPhysical(1, 2, 6), 6))
	assert.True(t, near(MapToPhysical(0, 2, 6), 4))
}

func TestUniformDofMap(t *testing.T) {
	dofMap := UniformDofMap(3, 2)
	assert.Equal(t, [][]int{{0, 1, 2}, {2, 3, 4}, {4, 5, 6}}, dofMap)
	assert.Equal(t, 7, NumDofs(dofMap))
	// interface dofs are shared between neighbors
	assert.Equal(t, dofMap[0][2], dofMap[1][0])
}
