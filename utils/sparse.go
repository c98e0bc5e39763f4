package utils

import (
	"fmt"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"
)

// DOK wraps a dictionary-of-keys sparse matrix used as the accumulation
// target during global assembly. Key existence implies a potential nonzero:
// an entry whose accumulated value becomes exactly zero stays stored.
type DOK struct {
	M        *sparse.DOK
	readOnly bool
	name     string
}

func NewDOK(nr, nc int) (R DOK) {
	R = DOK{
		sparse.NewDOK(nr, nc),
		false,
		"unnamed - hint: pass a variable name to SetReadOnly()",
	}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m DOK) Dims() (r, c int)    { return m.M.Dims() }
func (m DOK) At(i, j int) float64 { return m.M.At(i, j) }
func (m DOK) T() mat.Matrix      { return m.M.T() }

func (m *DOK) SetReadOnly(name ...string) DOK {
	if len(name) != 0 {
		m.name = name[0]
	}
	m.readOnly = true
	return *m
}

func (m DOK) Set(i, j int, val float64) DOK { // Changes receiver
	m.checkWritable()
	m.M.Set(i, j, val)
	return m
}

// Accumulate adds val into entry (i,j), creating the key if absent.
func (m DOK) Accumulate(i, j int, val float64) DOK { // Changes receiver
	m.checkWritable()
	m.M.Set(i, j, m.M.At(i, j)+val)
	return m
}

// DoNonZero visits every stored entry in unspecified order.
func (m DOK) DoNonZero(fn func(i, j int, v float64)) {
	m.M.DoNonZero(fn)
}

// NNZ returns the number of stored entries.
func (m DOK) NNZ() int { return m.M.NNZ() }

// ToCSR compresses the accumulated entries into compressed sparse row form.
// This is the single explicit conversion step performed once before a direct
// solve, never interleaved with assembly.
func (m DOK) ToCSR() *sparse.CSR {
	return m.M.ToCSR()
}

func (m DOK) checkWritable() {
	if m.readOnly {
		err := fmt.Errorf("attempt to write to a read only matrix named: \"%v\"", m.name)
		panic(err)
	}
}
