package FEM1D

// Basis holds a nodal Lagrange basis of degree P on P+1 equally spaced nodes
// of the reference interval [-1,1]. Phi[r] evaluates basis function r at a
// reference coordinate; GradPhi[r] evaluates its derivative with respect to
// the physical coordinate, which for an affine element of length h carries
// the constant Jacobian scaling 2/h.
//
// The table shape is fixed at construction: the two slices always have P+1
// entries each and are immutable afterwards, so a Basis can be shared across
// all elements of the same degree.
type Basis struct {
	P       int       // polynomial degree
	Nodes   []float64 // interpolation nodes on [-1,1]
	Phi     []func(X float64) float64
	GradPhi []func(X, h float64) float64
}

func NewBasis(P int) (b *Basis, err error) {
	if P < 0 {
		err = ErrInvalidDegree
		return
	}
	b = &Basis{
		P:     P,
		Nodes: referenceNodes(P),
	}
	b.Phi = make([]func(X float64) float64, P+1)
	b.GradPhi = make([]func(X, h float64) float64, P+1)
	for r := 0; r <= P; r++ {
		b.Phi[r] = lagrange(b.Nodes, r)
		b.GradPhi[r] = lagrangePhysDeriv(b.Nodes, r)
	}
	return
}

func referenceNodes(P int) (X []float64) {
	if P == 0 {
		return []float64{0}
	}
	X = make([]float64, P+1)
	for j := 0; j <= P; j++ {
		X[j] = -1 + 2*float64(j)/float64(P)
	}
	return
}

// lagrange returns the cardinal polynomial through nodes that is 1 at
// nodes[r] and 0 at every other node.
func lagrange(nodes []float64, r int) func(X float64) float64 {
	return func(X float64) (p float64) {
		p = 1
		for s, Xs := range nodes {
			if s == r {
				continue
			}
			p *= (X - Xs) / (nodes[r] - Xs)
		}
		return
	}
}

// lagrangePhysDeriv returns d(phi_r)/dx via the product-rule expansion of the
// cardinal polynomial, scaled by dX/dx = 2/h for the affine reference map.
func lagrangePhysDeriv(nodes []float64, r int) func(X, h float64) float64 {
	return func(X, h float64) (dp float64) {
		for t, Xt := range nodes {
			if t == r {
				continue
			}
			term := 1 / (nodes[r] - Xt)
			for s, Xs := range nodes {
				if s == r || s == t {
					continue
				}
				term *= (X - Xs) / (nodes[r] - Xs)
			}
			dp += term
		}
		dp *= 2 / h
		return
	}
}
