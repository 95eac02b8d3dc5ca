package qfold

import "fmt"

/*
Fold applies global circuit folding to a circuit U = L_1 ... L_d:

	U (U† U)^n L_d† ... L_s† L_s ... L_d

The net unitary action is unchanged; only the physical gate count grows,
which scales the accumulated hardware noise. n counts whole-circuit
adjoint/forward repetitions and s selects the partial tail: the gates
L_s..L_d are undone and redone once more. s = d+1 means an empty tail,
so Fold(c, 0, d+1) returns a copy of c.
*/
func Fold(c *Circuit, n, s int) (*Circuit, error) {
	d := c.Len()
	if n < 0 {
		return nil, fmt.Errorf("%w: n = %d must be non-negative", ErrInvalidFoldIndex, n)
	}
	if s < 1 || s > d+1 {
		return nil, fmt.Errorf("%w: s = %d outside [1, %d]", ErrInvalidFoldIndex, s, d+1)
	}

	folded := &Circuit{gates: c.Ops()}
	adj := c.Adjoint()
	for i := 0; i < n; i++ {
		folded.Extend(adj)
		folded.Extend(c)
	}

	tail := c.Slice(s)
	folded.Extend(tail.Adjoint())
	folded.Extend(tail)

	return folded, nil
}

// FoldedLen returns the gate count of Fold(c, n, s) for a circuit of
// d gates: d(2n+1) + 2(d-s+1).
func FoldedLen(d, n, s int) int {
	return d*(2*n+1) + 2*(d-s+1)
}

// ScaleFactor is the effective noise scale of a folded circuit relative
// to the unfolded one, used as the x-axis of a zero-noise
// extrapolation.
func ScaleFactor(d, n, s int) float64 {
	return float64(FoldedLen(d, n, s)) / float64(d)
}
