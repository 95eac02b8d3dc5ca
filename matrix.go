package qfold

import (
	"math"
	"math/cmplx"
)

// Matrix is a dense 4x4 complex matrix, the full operator space of the
// two-wire register. Value semantics: arithmetic returns copies.
type Matrix [4][4]complex128

// Mat2 is a single-qubit operator before expansion onto the register.
type Mat2 [2][2]complex128

// Identity returns the 4x4 identity.
func Identity() Matrix {
	var m Matrix
	for i := range m {
		m[i][i] = 1
	}
	return m
}

// Mul returns the matrix product a*b.
func (a Matrix) Mul(b Matrix) Matrix {
	var out Matrix
	for i := 0; i < 4; i++ {
		for k := 0; k < 4; k++ {
			x := a[i][k]
			if x == 0 {
				continue
			}
			for j := 0; j < 4; j++ {
				out[i][j] += x * b[k][j]
			}
		}
	}
	return out
}

// Dagger returns the conjugate transpose.
func (a Matrix) Dagger() Matrix {
	var out Matrix
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i][j] = cmplx.Conj(a[j][i])
		}
	}
	return out
}

// Add returns a+b.
func (a Matrix) Add(b Matrix) Matrix {
	var out Matrix
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i][j] = a[i][j] + b[i][j]
		}
	}
	return out
}

// Scale returns s*a.
func (a Matrix) Scale(s complex128) Matrix {
	var out Matrix
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i][j] = s * a[i][j]
		}
	}
	return out
}

// Trace returns the sum of the diagonal.
func (a Matrix) Trace() complex128 {
	return a[0][0] + a[1][1] + a[2][2] + a[3][3]
}

// Conjugate returns u * a * u†, the similarity transform used for both
// unitary evolution and Kraus terms.
func (a Matrix) Conjugate(u Matrix) Matrix {
	return u.Mul(a).Mul(u.Dagger())
}

// Expand places a single-qubit operator on the given wire of the
// two-wire register. Wire 0 is the most significant bit of the basis
// index.
func Expand(g Mat2, wire int) Matrix {
	var out Matrix
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				if wire == 0 {
					// g ⊗ I
					out[i*2+k][j*2+k] = g[i][j]
				} else {
					// I ⊗ g
					out[k*2+i][k*2+j] = g[i][j]
				}
			}
		}
	}
	return out
}

/*
EigenHermitian diagonalizes a Hermitian matrix with cyclic Jacobi
rotations, returning eigenvalues and the unitary of column eigenvectors
so that a = v * diag(vals) * v†. Convergence is quadratic; the sweep cap
is far beyond what a 4x4 needs.
*/
func EigenHermitian(a Matrix) (vals [4]float64, vecs Matrix) {
	A := a
	V := Identity()

	for sweep := 0; sweep < 60; sweep++ {
		off := 0.0
		for p := 0; p < 4; p++ {
			for q := p + 1; q < 4; q++ {
				off += real(A[p][q])*real(A[p][q]) + imag(A[p][q])*imag(A[p][q])
			}
		}
		if off < 1e-26 {
			break
		}

		for p := 0; p < 4; p++ {
			for q := p + 1; q < 4; q++ {
				apq := A[p][q]
				if cmplx.Abs(apq) < 1e-18 {
					continue
				}
				app := real(A[p][p])
				aqq := real(A[q][q])
				phase := apq / complex(cmplx.Abs(apq), 0)

				tau := (aqq - app) / (2 * cmplx.Abs(apq))
				t := 1 / (math.Abs(tau) + math.Sqrt(1+tau*tau))
				if tau < 0 {
					t = -t
				}
				c := complex(1/math.Sqrt(1+t*t), 0)
				s := complex(t, 0) * c

				// Unitary plane rotation mixing columns p and q.
				for k := 0; k < 4; k++ {
					akp, akq := A[k][p], A[k][q]
					A[k][p] = c*akp - s*cmplx.Conj(phase)*akq
					A[k][q] = s*phase*akp + c*akq
				}
				for k := 0; k < 4; k++ {
					apk, aqk := A[p][k], A[q][k]
					A[p][k] = c*apk - s*phase*aqk
					A[q][k] = s*cmplx.Conj(phase)*apk + c*aqk
				}
				for k := 0; k < 4; k++ {
					vkp, vkq := V[k][p], V[k][q]
					V[k][p] = c*vkp - s*cmplx.Conj(phase)*vkq
					V[k][q] = s*phase*vkp + c*vkq
				}
			}
		}
	}

	for i := 0; i < 4; i++ {
		vals[i] = real(A[i][i])
	}
	return vals, V
}

// SqrtPSD returns the principal square root of a positive semidefinite
// Hermitian matrix. Small negative eigenvalues from roundoff clamp to
// zero.
func SqrtPSD(a Matrix) Matrix {
	vals, v := EigenHermitian(a)
	var d Matrix
	for i := 0; i < 4; i++ {
		d[i][i] = complex(math.Sqrt(math.Max(vals[i], 0)), 0)
	}
	return v.Mul(d).Mul(v.Dagger())
}
