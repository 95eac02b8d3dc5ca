package qfold

import (
	"fmt"
	"math"
)

// DefaultNoiseRate is the depolarizing probability applied after every
// gate, on each wire the gate acts on.
const DefaultNoiseRate = 0.05

/*
DemoCircuit builds the fixed two-wire benchmark circuit used throughout
the package. The rotation angle of the controlled-RX gate is the only
free parameter.
*/
func DemoCircuit(angle float64) *Circuit {
	c, _ := NewCircuit(
		TGate(0),
		Swap(0, 1),
		CRX(angle, 0, 1),
		Phase(0),
		CZ(0, 1),
		Hadamard(0),
	)
	return c
}

// NoisyState runs the circuit on a depolarizing device and returns the
// output state.
func NoisyState(c *Circuit, rate float64) (*DensityMatrix, error) {
	var opts []DeviceOption
	if rate > 0 {
		opts = append(opts, WithNoise(&NoiseModel{Channel: Depolarizing{P: rate}}))
	}
	return NewDevice(opts...).Run(c)
}

// FoldedState folds the circuit with parameters n and s, then runs it
// on the same noisy device as NoisyState.
func FoldedState(c *Circuit, n, s int, rate float64) (*DensityMatrix, error) {
	folded, err := Fold(c, n, s)
	if err != nil {
		return nil, err
	}
	return NoisyState(folded, rate)
}

/*
FoldedFidelity builds the benchmark circuit at the given angle, folds it
with parameters n and s, runs both the folded and unfolded variants under
depolarizing noise, and returns the fidelity between the two output
states. The index s must address a gate of the circuit, so 1 <= s <= d.
*/
func FoldedFidelity(angle float64, n, s int) (float64, error) {
	c := DemoCircuit(angle)
	if s < 1 || s > c.Len() {
		return 0, fmt.Errorf("%w: s=%d outside [1,%d]", ErrInvalidFoldIndex, s, c.Len())
	}

	base, err := NoisyState(c, DefaultNoiseRate)
	if err != nil {
		return 0, err
	}
	folded, err := FoldedState(c, n, s, DefaultNoiseRate)
	if err != nil {
		return 0, err
	}
	return Fidelity(folded, base), nil
}

// Round5 rounds a fidelity to five decimals, the precision the result
// is reported at.
func Round5(f float64) float64 {
	return math.Round(f*1e5) / 1e5
}

// FormatFidelity renders a fidelity the way results are printed, with
// exactly five decimals.
func FormatFidelity(f float64) string {
	return fmt.Sprintf("%.5f", Round5(f))
}
