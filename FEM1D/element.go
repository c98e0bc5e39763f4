package FEM1D

import (
	"fmt"

	"github.com/notargets/fem1d/utils"
)

// WeakForm supplies the four integrand callbacks defining the differential
// equation being solved. IntegrandLHS/IntegrandRHS are evaluated at every
// quadrature point and accumulated with the scaled quadrature weight;
// BoundaryLHS/BoundaryRHS are added once per element after the quadrature
// loop. All four receive the element index, the basis table, the local trial
// (r) and test (s) indices, the reference coordinate X, the physical
// coordinate x and the element length h, and must behave as pure functions
// of those arguments. The assembler itself is equation-agnostic.
//
// A callback signals failure by panicking; the assembler recovers the panic
// and aborts the run with a *CallbackError.
type WeakForm interface {
	IntegrandLHS(e int, b *Basis, r, s int, X, x, h float64) float64
	IntegrandRHS(e int, b *Basis, r int, X, x, h float64) float64
	BoundaryLHS(e int, b *Basis, r, s int, X, x, h float64) float64
	BoundaryRHS(e int, b *Basis, r int, X, x, h float64) float64
}

// AssembleElement integrates the weak form over one element, producing the
// local stiffness matrix and load vector. The boundary callbacks are invoked
// with the last quadrature point's coordinates, matching the reference
// formulation; boundary terms that depend on position should use the element
// index to decide their contribution.
func AssembleElement(e int, b *Basis, q *Quadrature, x1, x2 float64,
	wf WeakForm) (Ae utils.Matrix, be utils.Vector) {
	var (
		n    = b.P + 1
		h    = x2 - x1
		detJ = h / 2
		X, x float64
	)
	Ae = utils.NewMatrix(n, n)
	be = utils.NewVector(n)
	for i := 0; i < q.Len(); i++ {
		X = q.X.AtVec(i)
		x = MapToPhysical(X, x1, x2)
		dX := detJ * q.W.AtVec(i)
		for r := 0; r < n; r++ {
			for s := 0; s < n; s++ {
				Ae.Accumulate(r, s, wf.IntegrandLHS(e, b, r, s, X, x, h)*dX)
			}
			be.Accumulate(r, wf.IntegrandRHS(e, b, r, X, x, h)*dX)
		}
	}
	for r := 0; r < n; r++ {
		for s := 0; s < n; s++ {
			Ae.Accumulate(r, s, wf.BoundaryLHS(e, b, r, s, X, x, h))
		}
		be.Accumulate(r, wf.BoundaryRHS(e, b, r, X, x, h))
	}
	return
}

// assembleElementSafe converts a callback panic into a *CallbackError
// carrying the element index.
func assembleElementSafe(e int, b *Basis, q *Quadrature, x1, x2 float64,
	wf WeakForm) (Ae utils.Matrix, be utils.Vector, err error) {
	defer func() {
		if r := recover(); r != nil {
			cause, ok := r.(error)
			if !ok {
				cause = fmt.Errorf("%v", r)
			}
			err = &CallbackError{Elem: e, Err: cause}
		}
	}()
	Ae, be = AssembleElement(e, b, q, x1, x2, wf)
	return
}
