package qfold

import (
	"fmt"
	"math"
)

/*
Channel is a single-qubit noise process in Kraus form. Kraus returns the
operators expanded onto the given wire of the register.
*/
type Channel interface {
	Name() string
	Kraus(wire int) []Matrix
}

// Depolarizing replaces the qubit state with a uniformly random Pauli
// error with probability p.
type Depolarizing struct {
	P float64
}

func (d Depolarizing) Name() string { return "depolarizing" }

func (d Depolarizing) Kraus(wire int) []Matrix {
	k0 := Identity().Scale(complex(math.Sqrt(1-d.P), 0))
	px := complex(math.Sqrt(d.P/3), 0)
	return []Matrix{
		k0,
		Expand(Mat2{{0, 1}, {1, 0}}, wire).Scale(px),
		Expand(Mat2{{0, -1i}, {1i, 0}}, wire).Scale(px),
		Expand(Mat2{{1, 0}, {0, -1}}, wire).Scale(px),
	}
}

// AmplitudeDamping relaxes |1> toward |0> with probability gamma.
type AmplitudeDamping struct {
	Gamma float64
}

func (a AmplitudeDamping) Name() string { return "amplitude_damping" }

func (a AmplitudeDamping) Kraus(wire int) []Matrix {
	return []Matrix{
		Expand(Mat2{{1, 0}, {0, complex(math.Sqrt(1-a.Gamma), 0)}}, wire),
		Expand(Mat2{{0, complex(math.Sqrt(a.Gamma), 0)}, {0, 0}}, wire),
	}
}

/*
NoiseModel inserts a channel after every gate of a circuit, once per
wire the gate acts on. This mirrors the insert-transform convention of
mixed-state simulators: a two-qubit gate is followed by the channel on
both of its wires.
*/
type NoiseModel struct {
	Channel Channel
}

// ChannelFor builds a channel from a config name and rate.
func ChannelFor(name string, rate float64) (Channel, error) {
	switch name {
	case "depolarizing":
		return Depolarizing{P: rate}, nil
	case "amplitude_damping":
		return AmplitudeDamping{Gamma: rate}, nil
	}
	return nil, fmt.Errorf("unknown noise channel %q", name)
}
