package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDOKAccumulate(t *testing.T) {
	D := NewDOK(3, 3)
	D.Accumulate(0, 0, 1).Accumulate(0, 0, 2)
	D.Accumulate(2, 1, -4)
	assert.Equal(t, 3.0, D.At(0, 0))
	assert.Equal(t, -4.0, D.At(2, 1))
	assert.Equal(t, 2, D.NNZ())
}

func TestDOKReadOnly(t *testing.T) {
	D := NewDOK(2, 2)
	D.SetReadOnly("K")
	assert.Panics(t, func() { D.Accumulate(0, 0, 1) })
}

func TestDOKToCSRPreservesValues(t *testing.T) {
	D := NewDOK(3, 3)
	D.Accumulate(0, 0, 2)
	D.Accumulate(1, 2, -1)
	D.Accumulate(2, 2, 5)
	C := D.ToCSR()
	assert.Equal(t, 2.0, C.At(0, 0))
	assert.Equal(t, -1.0, C.At(1, 2))
	assert.Equal(t, 5.0, C.At(2, 2))
	assert.Equal(t, 0.0, C.At(0, 1))
}

func TestPartitionMapSpread(t *testing.T) {
	pm := NewPartitionMap(3, 10)
	// the remainder element lands in the first bucket
	assert.Equal(t, [][2]int{{0, 4}, {4, 7}, {7, 10}}, pm.Partitions)
	assert.Equal(t, 4, pm.GetBucketDimension(0))
	assert.Equal(t, 3, pm.GetBucketDimension(1))
	kMin, kMax := pm.GetBucketRange(2)
	assert.Equal(t, 7, kMin)
	assert.Equal(t, 10, kMax)

	// every index is covered exactly once
	total := 0
	for n := 0; n < pm.ParallelDegree; n++ {
		total += pm.GetBucketDimension(n)
	}
	assert.Equal(t, pm.MaxIndex, total)
}
