package qfold

import (
	"math"
	"math/cmplx"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func maxDiff(a, b Matrix) float64 {
	max := 0.0
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if d := cmplx.Abs(a[i][j] - b[i][j]); d > max {
				max = d
			}
		}
	}
	return max
}

func TestMatrixAlgebra(t *testing.T) {
	Convey("Given the 4x4 matrix helpers", t, func() {
		id := Identity()

		Convey("Identity is the multiplicative unit", func() {
			m := Expand(Mat2{{0, 1}, {1, 0}}, 0)
			So(maxDiff(m.Mul(id), m), ShouldBeLessThan, 1e-15)
			So(maxDiff(id.Mul(m), m), ShouldBeLessThan, 1e-15)
		})

		Convey("Dagger is an involution", func() {
			m := Expand(Mat2{{0, -1i}, {1i, 0}}, 1)
			So(maxDiff(m.Dagger().Dagger(), m), ShouldBeLessThan, 1e-15)
		})

		Convey("Trace of the identity is 4", func() {
			So(real(id.Trace()), ShouldAlmostEqual, 4, 1e-15)
		})

		Convey("Expand places the operator on the right wire", func() {
			x := Mat2{{0, 1}, {1, 0}}

			// Wire 0 flips the most significant bit: |00> -> |10>.
			x0 := Expand(x, 0)
			So(x0[2][0], ShouldEqual, complex128(1))
			So(x0[0][2], ShouldEqual, complex128(1))

			// Wire 1 flips the least significant bit: |00> -> |01>.
			x1 := Expand(x, 1)
			So(x1[1][0], ShouldEqual, complex128(1))
			So(x1[0][1], ShouldEqual, complex128(1))
		})

		Convey("Conjugate computes u a u-dagger", func() {
			h := 1 / math.Sqrt2
			u := Expand(Mat2{{complex(h, 0), complex(h, 0)}, {complex(h, 0), complex(-h, 0)}}, 0)
			z := Expand(Mat2{{1, 0}, {0, -1}}, 0)
			x := Expand(Mat2{{0, 1}, {1, 0}}, 0)

			// H Z H = X
			So(maxDiff(z.Conjugate(u), x), ShouldBeLessThan, 1e-15)
		})
	})
}

func TestEigenHermitian(t *testing.T) {
	Convey("Given a Hermitian matrix", t, func() {
		// A dense Hermitian matrix with complex off-diagonals.
		a := Matrix{
			{2, 1 + 1i, 0.5i, 0},
			{1 - 1i, 3, 1, -0.25i},
			{-0.5i, 1, 1, 0.75},
			{0, 0.25i, 0.75, 2.5},
		}

		vals, vecs := EigenHermitian(a)

		Convey("Eigendecomposition reconstructs the input", func() {
			var d Matrix
			for i := 0; i < 4; i++ {
				d[i][i] = complex(vals[i], 0)
			}
			So(maxDiff(vecs.Mul(d).Mul(vecs.Dagger()), a), ShouldBeLessThan, 1e-10)
		})

		Convey("Eigenvector matrix is unitary", func() {
			So(maxDiff(vecs.Mul(vecs.Dagger()), Identity()), ShouldBeLessThan, 1e-10)
		})

		Convey("Eigenvalue sum matches the trace", func() {
			sum := 0.0
			for _, v := range vals {
				sum += v
			}
			So(sum, ShouldAlmostEqual, real(a.Trace()), 1e-10)
		})
	})
}

func TestSqrtPSD(t *testing.T) {
	Convey("Given a positive semidefinite matrix", t, func() {
		// rho of an equal mixture of |00> and |01>.
		var a Matrix
		a[0][0], a[1][1] = 0.5, 0.5

		Convey("The square root squares back", func() {
			s := SqrtPSD(a)
			So(maxDiff(s.Mul(s), a), ShouldBeLessThan, 1e-10)
		})

		Convey("A projector is its own square root up to scale", func() {
			var p Matrix
			p[0][0] = 1
			s := SqrtPSD(p)
			So(maxDiff(s, p), ShouldBeLessThan, 1e-10)
		})
	})
}
