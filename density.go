package qfold

import (
	"math/cmplx"
)

/*
DensityMatrix is the mixed state of the two-wire register. The zero
value is not useful; start from NewDensityMatrix, which prepares |00>.
*/
type DensityMatrix struct {
	rho Matrix
}

// NewDensityMatrix prepares the register in |00><00|.
func NewDensityMatrix() *DensityMatrix {
	var m Matrix
	m[0][0] = 1
	return &DensityMatrix{rho: m}
}

// Evolve applies a gate: rho -> G rho G†.
func (dm *DensityMatrix) Evolve(g Gate) {
	dm.rho = dm.rho.Conjugate(g.Matrix())
}

// ApplyKraus applies a channel given by Kraus operators:
// rho -> sum_k K_k rho K_k†.
func (dm *DensityMatrix) ApplyKraus(ops []Matrix) {
	var out Matrix
	for _, k := range ops {
		out = out.Add(dm.rho.Conjugate(k))
	}
	dm.rho = out
}

// Matrix returns a copy of the underlying matrix.
func (dm *DensityMatrix) Matrix() Matrix {
	return dm.rho
}

// Trace returns Tr(rho), 1 for any physical state.
func (dm *DensityMatrix) Trace() float64 {
	return real(dm.rho.Trace())
}

// Purity returns Tr(rho^2): 1 for pure states, 1/4 for the maximally
// mixed two-wire state.
func (dm *DensityMatrix) Purity() float64 {
	return real(dm.rho.Mul(dm.rho).Trace())
}

// IsHermitian reports whether the matrix is Hermitian within tol.
func (dm *DensityMatrix) IsHermitian(tol float64) bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if cmplx.Abs(dm.rho[i][j]-cmplx.Conj(dm.rho[j][i])) > tol {
				return false
			}
		}
	}
	return true
}
