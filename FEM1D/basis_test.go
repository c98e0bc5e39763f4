package FEM1D

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBasisNodalProperty(t *testing.T) {
	for P := 0; P <= 4; P++ {
		b, err := NewBasis(P)
		assert.NoError(t, err)
		assert.Equal(t, P+1, len(b.Phi))
		for r := 0; r <= P; r++ {
			for s := 0; s <= P; s++ {
				want := 0.
				if r == s {
					want = 1.
				}
				assert.True(t, near(b.Phi[r](b.Nodes[s]), want), "P=%d r=%d s=%d", P, r, s)
			}
		}
	}
}

func TestBasisPartitionOfUnity(t *testing.T) {
	for P := 1; P <= 4; P++ {
		b, _ := NewBasis(P)
		for _, X := range []float64{-1, -0.73, 0, 0.21, 1} {
			var sum, dsum float64
			for r := 0; r <= P; r++ {
				sum += b.Phi[r](X)
				dsum += b.GradPhi[r](X, 0.5)
			}
			assert.True(t, near(sum, 1))
			// derivative of the constant is zero
			assert.True(t, near(dsum, 0))
		}
	}
}

func TestBasisLinearGradient(t *testing.T) {
	var (
		b, _ = NewBasis(1)
		h    = 2.5
	)
	for _, X := range []float64{-1, 0, 1} {
		assert.True(t, near(b.GradPhi[0](X, h), -1/h))
		assert.True(t, near(b.GradPhi[1](X, h), 1/h))
	}
}

func TestBasisInvalidDegree(t *testing.T) {
	_, err := NewBasis(-1)
	assert.ErrorIs(t, err, ErrInvalidDegree)
}
