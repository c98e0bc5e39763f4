package FEM1D

import (
	"fmt"
	"sync"

	"github.com/notargets/fem1d/utils"
	"gonum.org/v1/gonum/mat"
)

type StorageType uint8

const (
	Dense StorageType = iota
	Sparse
)

func (st StorageType) String() string {
	switch st {
	case Dense:
		return "Dense"
	case Sparse:
		return "Sparse"
	}
	return "unknown"
}

func NewStorageType(label string) (st StorageType, err error) {
	switch label {
	case "Dense", "dense":
		st = Dense
	case "Sparse", "sparse":
		st = Sparse
	default:
		err = fmt.Errorf("%w: %q", ErrUnsupportedStorage, label)
	}
	return
}

// SystemMatrix is the scatter target for global assembly. The two backings
// are functionally equivalent; the choice only affects storage layout and
// which direct solver runs afterwards.
type SystemMatrix interface {
	mat.Matrix
	Accumulate(i, j int, val float64)
}

type DenseSystem struct{ utils.Matrix }

func (d DenseSystem) Accumulate(i, j int, val float64) { d.Matrix.Accumulate(i, j, val) }

type SparseSystem struct{ utils.DOK }

func (s SparseSystem) Accumulate(i, j int, val float64) { s.DOK.Accumulate(i, j, val) }

// Assembler drives the element loop: per element it fetches the cached basis
// and quadrature rule for the element's degree, integrates the weak form,
// enforces essential boundary conditions locally, and scatters the local
// system into the global one through the dof map. Mesh, dof map and boundary
// set are read-only inputs owned by the caller.
type Assembler struct {
	Mesh    Mesh
	DofMap  [][]int
	EssBC   map[int]float64 // global dof -> prescribed value
	QRule   QuadratureType
	Storage StorageType

	bases map[int]*Basis
	rules map[int]*Quadrature
}

func NewAssembler(msh Mesh, dofMap [][]int, essbc map[int]float64,
	qt QuadratureType, st StorageType) *Assembler {
	return &Assembler{
		Mesh:    msh,
		DofMap:  dofMap,
		EssBC:   essbc,
		QRule:   qt,
		Storage: st,
		bases:   make(map[int]*Basis),
		rules:   make(map[int]*Quadrature),
	}
}

func (asm *Assembler) basis(P int) (b *Basis, err error) {
	var ok bool
	if b, ok = asm.bases[P]; ok {
		return
	}
	if b, err = NewBasis(P); err != nil {
		return
	}
	asm.bases[P] = b
	return
}

func (asm *Assembler) rule(nPoints int) (q *Quadrature, err error) {
	var ok bool
	if q, ok = asm.rules[nPoints]; ok {
		return
	}
	if q, err = NewQuadrature(asm.QRule, nPoints); err != nil {
		return
	}
	asm.rules[nPoints] = q
	return
}

func (asm *Assembler) newSystem(nDofs int) (K SystemMatrix, err error) {
	switch asm.Storage {
	case Dense:
		K = DenseSystem{utils.NewMatrix(nDofs, nDofs)}
	case Sparse:
		K = SparseSystem{utils.NewDOK(nDofs, nDofs)}
	default:
		err = fmt.Errorf("%w: kind %d", ErrUnsupportedStorage, asm.Storage)
	}
	return
}

// Assemble builds the global stiffness matrix and load vector. Any error
// aborts the run without returning a partial system.
func (asm *Assembler) Assemble(wf WeakForm) (K SystemMatrix, f utils.Vector, err error) {
	var (
		nDofs = NumDofs(asm.DofMap)
	)
	if K, err = asm.newSystem(nDofs); err != nil {
		return
	}
	f = utils.NewVector(nDofs)
	for e := 0; e < asm.Mesh.NumElements(); e++ {
		if err = asm.assembleInto(K, f, e, wf); err != nil {
			return nil, utils.Vector{}, err
		}
	}
	return
}

func (asm *Assembler) assembleInto(K SystemMatrix, f utils.Vector, e int,
	wf WeakForm) (err error) {
	var (
		dofs = asm.DofMap[e]
		P    = len(dofs) - 1
		b    *Basis
		q    *Quadrature
	)
	if b, err = asm.basis(P); err != nil {
		return
	}
	// degree+1 points integrate the default polynomial integrands exactly
	if q, err = asm.rule(P + 1); err != nil {
		return
	}
	x1, x2 := asm.Mesh.ElementEndpoints(e)
	Ae, be, err := assembleElementSafe(e, b, q, x1, x2, wf)
	if err != nil {
		return
	}
	ApplyEssentialBC(Ae, be, dofs, asm.EssBC)
	for r := range dofs {
		for s := range dofs {
			K.Accumulate(dofs[r], dofs[s], Ae.At(r, s))
		}
		f.Accumulate(dofs[r], be.AtVec(r))
	}
	return
}

// AssembleParallel distributes elements over nThreads workers, each with its
// own partial global accumulator, and merges the partials by entry-wise
// addition afterwards. Element scatter order differs from the serial path
// but the accumulated system is identical since += commutes.
func (asm *Assembler) AssembleParallel(wf WeakForm, nThreads int) (K SystemMatrix, f utils.Vector, err error) {
	var (
		nDofs = NumDofs(asm.DofMap)
		nElem = asm.Mesh.NumElements()
	)
	if nThreads < 1 || nThreads > nElem {
		nThreads = 1
	}
	// warm the basis/rule caches serially; workers only read them
	for e := 0; e < nElem; e++ {
		P := len(asm.DofMap[e]) - 1
		if _, err = asm.basis(P); err != nil {
			return
		}
		if _, err = asm.rule(P + 1); err != nil {
			return
		}
	}
	var (
		pm    = utils.NewPartitionMap(nThreads, nElem)
		parts = make([]SystemMatrix, nThreads)
		loads = make([]utils.Vector, nThreads)
		errs  = make([]error, nThreads)
		wg    sync.WaitGroup
	)
	for n := 0; n < nThreads; n++ {
		if parts[n], err = asm.newSystem(nDofs); err != nil {
			return
		}
		loads[n] = utils.NewVector(nDofs)
	}
	for n := 0; n < nThreads; n++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			kMin, kMax := pm.GetBucketRange(n)
			for e := kMin; e < kMax; e++ {
				if errs[n] = asm.assembleInto(parts[n], loads[n], e, wf); errs[n] != nil {
					return
				}
			}
		}(n)
	}
	wg.Wait()
	for n := 0; n < nThreads; n++ {
		if errs[n] != nil {
			return nil, utils.Vector{}, errs[n]
		}
	}
	K = parts[0]
	f = loads[0]
	for n := 1; n < nThreads; n++ {
		mergeSystem(K, parts[n])
		for i := 0; i < nDofs; i++ {
			f.Accumulate(i, loads[n].AtVec(i))
		}
	}
	return
}

func mergeSystem(dst, src SystemMatrix) {
	switch s := src.(type) {
	case SparseSystem:
		s.DoNonZero(func(i, j int, v float64) {
			dst.Accumulate(i, j, v)
		})
	default:
		nr, nc := src.Dims()
		for i := 0; i < nr; i++ {
			for j := 0; j < nc; j++ {
				if v := src.At(i, j); v != 0 {
					dst.Accumulate(i, j, v)
				}
			}
		}
	}
}

// SolveSystem assembles and solves in one pass, returning the coefficient
// vector.
func (asm *Assembler) SolveSystem(wf WeakForm) (u utils.Vector, err error) {
	K, f, err := asm.Assemble(wf)
	if err != nil {
		return
	}
	return Solve(K, f)
}
