package Poisson1D

import (
	"fmt"
	"math"

	"github.com/notargets/fem1d/FEM1D"
	"github.com/notargets/fem1d/utils"
)

type CaseType uint8

const (
	// QuadraticSource is the model problem -u'' = x^2 on (0,L) with
	// u'(0) = C and u(L) = D.
	QuadraticSource CaseType = iota
	// ConstantSource replaces the source with f = 1.
	ConstantSource
)

func (ct CaseType) String() string {
	switch ct {
	case QuadraticSource:
		return "QuadraticSource"
	case ConstantSource:
		return "ConstantSource"
	}
	return "unknown"
}

// Poisson solves -u'' = f on (0,L) with a natural (Neumann) condition
// u'(0) = C on the left boundary and an essential (Dirichlet) condition
// u(L) = D on the right, using continuous Galerkin elements of degree N on K
// uniform cells. Both cases have closed-form solutions used to measure the
// nodal error.
type Poisson struct {
	K, N       int // element count, polynomial degree
	C, D, L    float64
	Case       CaseType
	Quadrature FEM1D.QuadratureType
	Storage    FEM1D.StorageType

	Mesh   FEM1D.Mesh
	DofMap [][]int
	EssBC  map[int]float64
}

func NewPoisson(C, D, L float64, N, K int, ct CaseType,
	qt FEM1D.QuadratureType, st FEM1D.StorageType) (p *Poisson) {
	p = &Poisson{
		K: K, N: N,
		C: C, D: D, L: L,
		Case:       ct,
		Quadrature: qt,
		Storage:    st,
		Mesh:       FEM1D.UniformMesh(0, L, K),
		DofMap:     FEM1D.UniformDofMap(K, N),
	}
	// pin the rightmost dof to the essential value
	p.EssBC = map[int]float64{FEM1D.NumDofs(p.DofMap) - 1: p.D}
	return
}

func (p *Poisson) Source(x float64) float64 {
	if p.Case == ConstantSource {
		return 1
	}
	return x * x
}

// Exact returns the closed-form solution of the configured case.
func (p *Poisson) Exact(x float64) float64 {
	if p.Case == ConstantSource {
		return p.D + p.C*(x-p.L) + (p.L*p.L-x*x)/2
	}
	return p.D + p.C*(x-p.L) + (utils.POW(p.L, 4)-utils.POW(x, 4))/12
}

// The four WeakForm callbacks below express the variational statement
// integral(u'v') = integral(fv) - C*v(0).

func (p *Poisson) IntegrandLHS(e int, b *FEM1D.Basis, r, s int, X, x, h float64) float64 {
	return b.GradPhi[r](X, h) * b.GradPhi[s](X, h)
}

func (p *Poisson) IntegrandRHS(e int, b *FEM1D.Basis, r int, X, x, h float64) float64 {
	return p.Source(x) * b.Phi[r](X)
}

func (p *Poisson) BoundaryLHS(e int, b *FEM1D.Basis, r, s int, X, x, h float64) float64 {
	return 0
}

func (p *Poisson) BoundaryRHS(e int, b *FEM1D.Basis, r int, X, x, h float64) float64 {
	if e == 0 {
		// flux condition enters on the leftmost element only
		return -p.C * b.Phi[r](-1)
	}
	return 0
}

// Solve assembles and solves the global system, returning the coefficient
// vector.
func (p *Poisson) Solve() (u utils.Vector, err error) {
	asm := FEM1D.NewAssembler(p.Mesh, p.DofMap, p.EssBC, p.Quadrature, p.Storage)
	return asm.SolveSystem(p)
}

// NodalCoords returns the physical coordinate of every global dof, derived
// from the reference nodes of each element's basis.
func (p *Poisson) NodalCoords() (xn []float64, err error) {
	xn = make([]float64, FEM1D.NumDofs(p.DofMap))
	var b *FEM1D.Basis
	if b, err = FEM1D.NewBasis(p.N); err != nil {
		return
	}
	for e, dofs := range p.DofMap {
		x1, x2 := p.Mesh.ElementEndpoints(e)
		for r, dof := range dofs {
			xn[dof] = FEM1D.MapToPhysical(b.Nodes[r], x1, x2)
		}
	}
	return
}

// MaxNodalError returns the largest absolute difference between the computed
// coefficients and the exact solution at the dof coordinates.
func (p *Poisson) MaxNodalError(u utils.Vector) (max float64, err error) {
	xn, err := p.NodalCoords()
	if err != nil {
		return
	}
	for i, x := range xn {
		if diff := math.Abs(u.AtVec(i) - p.Exact(x)); diff > max {
			max = diff
		}
	}
	return
}

// Run solves the configured problem and reports the nodal error. With
// verbose set, it also prints tab-separated (x, u) samples suitable for
// external plotting tools.
func (p *Poisson) Run(verbose bool, samplesPerElement int) (err error) {
	fmt.Printf("%8d\t\t= Elements (K)\n", p.K)
	fmt.Printf("%8d\t\t= Polynomial Degree (N)\n", p.N)
	fmt.Printf("[%s]\t= Case\n", p.Case)
	fmt.Printf("[%s]\t= Quadrature\n", p.Quadrature)
	fmt.Printf("[%s]\t\t= Storage\n", p.Storage)
	u, err := p.Solve()
	if err != nil {
		return
	}
	maxErr, err := p.MaxNodalError(u)
	if err != nil {
		return
	}
	fmt.Printf("max nodal error = %8.3e\n", maxErr)
	if verbose {
		for x, uu := range FEM1D.Samples(u, p.Mesh, p.DofMap, samplesPerElement) {
			fmt.Printf("%v\t%v\n", x, uu)
		}
	}
	return
}
