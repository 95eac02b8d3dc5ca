package qfold

import (
	"fmt"
)

/*
SamplePoint is one measurement in a zero-noise-extrapolation sweep: the
noise scale factor of a folded circuit and the fidelity of its noisy
output against the ideal output of the unfolded circuit.
*/
type SamplePoint struct {
	Lambda   float64
	Fidelity float64
}

// FoldParams selects one folded variant of a circuit.
type FoldParams struct {
	N int
	S int
}

/*
FidelitySweep folds the circuit once per parameter pair, runs each
variant under the given noise rate, and records fidelity against the
ideal (noiseless) output of the original circuit. Points come back in
the order the parameters were given.
*/
func FidelitySweep(c *Circuit, rate float64, params []FoldParams) ([]SamplePoint, error) {
	ideal, err := NoisyState(c, 0)
	if err != nil {
		return nil, err
	}

	points := make([]SamplePoint, 0, len(params))
	for _, p := range params {
		state, err := FoldedState(c, p.N, p.S, rate)
		if err != nil {
			return nil, err
		}
		points = append(points, SamplePoint{
			Lambda:   ScaleFactor(c.Len(), p.N, p.S),
			Fidelity: Fidelity(state, ideal),
		})
	}
	return points, nil
}

/*
ExtrapolateRichardson evaluates the Lagrange interpolating polynomial
through the sample points at lambda zero. All scale factors must be
distinct and nonzero.
*/
func ExtrapolateRichardson(points []SamplePoint) (float64, error) {
	if len(points) < 2 {
		return 0, fmt.Errorf("richardson extrapolation needs at least 2 points, got %d", len(points))
	}

	total := 0.0
	for i, pi := range points {
		weight := 1.0
		for j, pj := range points {
			if i == j {
				continue
			}
			if pj.Lambda == pi.Lambda {
				return 0, fmt.Errorf("duplicate scale factor %v", pi.Lambda)
			}
			weight *= pj.Lambda / (pj.Lambda - pi.Lambda)
		}
		total += weight * pi.Fidelity
	}
	return total, nil
}

/*
ExtrapolateLinear fits a least-squares line through the sample points
and returns its value at lambda zero.
*/
func ExtrapolateLinear(points []SamplePoint) (float64, error) {
	if len(points) < 2 {
		return 0, fmt.Errorf("linear extrapolation needs at least 2 points, got %d", len(points))
	}

	var sx, sy, sxx, sxy float64
	for _, p := range points {
		sx += p.Lambda
		sy += p.Fidelity
		sxx += p.Lambda * p.Lambda
		sxy += p.Lambda * p.Fidelity
	}

	n := float64(len(points))
	det := n*sxx - sx*sx
	if det == 0 {
		return 0, fmt.Errorf("degenerate sample points, all at scale factor %v", points[0].Lambda)
	}
	slope := (n*sxy - sx*sy) / det
	return (sy - slope*sx) / n, nil
}
