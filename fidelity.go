package qfold

import "math"

/*
Fidelity computes the Uhlmann fidelity between two density matrices:

	F(rho, sigma) = (Tr sqrt( sqrt(rho) sigma sqrt(rho) ))^2

For a pure rho this reduces to <psi|sigma|psi>. The result is clamped
to [0, 1] against roundoff.
*/
func Fidelity(a, b *DensityMatrix) float64 {
	s := SqrtPSD(a.rho)
	inner := s.Mul(b.rho).Mul(s)
	vals, _ := EigenHermitian(inner)

	sum := 0.0
	for _, v := range vals {
		sum += math.Sqrt(math.Max(v, 0))
	}
	f := sum * sum
	return math.Min(1, math.Max(0, f))
}
