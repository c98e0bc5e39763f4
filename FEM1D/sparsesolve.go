package FEM1D

import (
	"fmt"
	"math"

	"github.com/notargets/fem1d/utils"
)

// pivotTol scales the largest assembled entry to decide when a pivot is
// numerically zero.
const pivotTol = 1.e-13

// solveSparse performs a direct solve on the sparse backing. The DOK
// accumulator is first compressed to CSR - the one explicit conversion step
// before solving - then expanded into mutable per-row maps on which Gaussian
// elimination with partial pivoting runs. Fill-in stays small for the banded
// systems 1D assembly produces.
func solveSparse(K utils.DOK, f utils.Vector) (u utils.Vector, err error) {
	var (
		n, _   = K.Dims()
		rows   = make([]map[int]float64, n)
		maxAbs float64
	)
	csr := K.ToCSR()
	for i := 0; i < n; i++ {
		rows[i] = make(map[int]float64)
	}
	csr.DoNonZero(func(i, j int, v float64) {
		rows[i][j] = v
		if a := math.Abs(v); a > maxAbs {
			maxAbs = a
		}
	})
	if maxAbs == 0 {
		err = fmt.Errorf("%w: empty matrix", ErrSingularSystem)
		return
	}

	b := f.Copy().Data()

	// forward elimination with partial pivoting by magnitude
	for k := 0; k < n; k++ {
		piv := k
		for i := k + 1; i < n; i++ {
			if math.Abs(rows[i][k]) > math.Abs(rows[piv][k]) {
				piv = i
			}
		}
		if math.Abs(rows[piv][k]) <= pivotTol*maxAbs {
			err = fmt.Errorf("%w: zero pivot at row %d", ErrSingularSystem, k)
			return utils.Vector{}, err
		}
		if piv != k {
			rows[k], rows[piv] = rows[piv], rows[k]
			b[k], b[piv] = b[piv], b[k]
		}
		pivVal := rows[k][k]
		for i := k + 1; i < n; i++ {
			aik, ok := rows[i][k]
			if !ok || aik == 0 {
				continue
			}
			factor := aik / pivVal
			for j, akj := range rows[k] {
				if j > k {
					rows[i][j] -= factor * akj
				}
			}
			delete(rows[i], k)
			b[i] -= factor * b[k]
		}
	}

	// back substitution
	x := make([]float64, n)
	for k := n - 1; k >= 0; k-- {
		sum := b[k]
		for j, akj := range rows[k] {
			if j > k {
				sum -= akj * x[j]
			}
		}
		x[k] = sum / rows[k][k]
	}
	u = utils.NewVector(n, x)
	return
}
