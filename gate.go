package qfold

import (
	"fmt"
	"math"
	"math/cmplx"
)

// GateName identifies a gate in the supported set.
type GateName string

const (
	GateH       GateName = "H"
	GateX       GateName = "X"
	GateY       GateName = "Y"
	GateZ       GateName = "Z"
	GateS       GateName = "S"
	GateT       GateName = "T"
	GateRX      GateName = "RX"
	GateRY      GateName = "RY"
	GateRZ      GateName = "RZ"
	GateCNOT    GateName = "CNOT"
	GateCZ      GateName = "CZ"
	GateSWAP    GateName = "SWAP"
	GateCRX     GateName = "CRX"
	GateCRY     GateName = "CRY"
	GateCRZ     GateName = "CRZ"
	GateIsingXY GateName = "IsingXY"
)

/*
Gate is a single operation on the two-wire register. A gate is a value:
once constructed it is never mutated, and Dagger returns a flipped copy
rather than touching the receiver. For controlled gates Wires[0] is the
control and Wires[1] the target.
*/
type Gate struct {
	Name  GateName
	Wires []int
	Theta float64 // rotation angle, zero for discrete gates
	Adj   bool    // apply the conjugate transpose instead
}

// Single-qubit constructors.
func Hadamard(w int) Gate { return Gate{Name: GateH, Wires: []int{w}} }
func PauliX(w int) Gate   { return Gate{Name: GateX, Wires: []int{w}} }
func PauliY(w int) Gate   { return Gate{Name: GateY, Wires: []int{w}} }
func PauliZ(w int) Gate   { return Gate{Name: GateZ, Wires: []int{w}} }
func Phase(w int) Gate    { return Gate{Name: GateS, Wires: []int{w}} }
func TGate(w int) Gate    { return Gate{Name: GateT, Wires: []int{w}} }

func RX(theta float64, w int) Gate { return Gate{Name: GateRX, Wires: []int{w}, Theta: theta} }
func RY(theta float64, w int) Gate { return Gate{Name: GateRY, Wires: []int{w}, Theta: theta} }
func RZ(theta float64, w int) Gate { return Gate{Name: GateRZ, Wires: []int{w}, Theta: theta} }

// Two-qubit constructors.
func CNOT(control, target int) Gate { return Gate{Name: GateCNOT, Wires: []int{control, target}} }
func CZ(a, b int) Gate              { return Gate{Name: GateCZ, Wires: []int{a, b}} }
func Swap(a, b int) Gate            { return Gate{Name: GateSWAP, Wires: []int{a, b}} }

func CRX(theta float64, control, target int) Gate {
	return Gate{Name: GateCRX, Wires: []int{control, target}, Theta: theta}
}

func CRY(theta float64, control, target int) Gate {
	return Gate{Name: GateCRY, Wires: []int{control, target}, Theta: theta}
}

func CRZ(theta float64, control, target int) Gate {
	return Gate{Name: GateCRZ, Wires: []int{control, target}, Theta: theta}
}

// IsingXY couples two wires through the XX+YY interaction.
func IsingXY(phi float64, a, b int) Gate {
	return Gate{Name: GateIsingXY, Wires: []int{a, b}, Theta: phi}
}

// Dagger returns the adjoint gate.
func (g Gate) Dagger() Gate {
	g.Adj = !g.Adj
	g.Wires = append([]int(nil), g.Wires...)
	return g
}

// Validate checks the gate name and wire indices against the two-wire
// register.
func (g Gate) Validate() error {
	switch g.Name {
	case GateH, GateX, GateY, GateZ, GateS, GateT, GateRX, GateRY, GateRZ,
		GateCNOT, GateCZ, GateSWAP, GateCRX, GateCRY, GateCRZ, GateIsingXY:
	default:
		return fmt.Errorf("%w: unknown gate %q", ErrInvalidGate, g.Name)
	}
	if len(g.Wires) == 0 || len(g.Wires) > 2 {
		return fmt.Errorf("%w: gate %s acts on %d wires", ErrInvalidGate, g.Name, len(g.Wires))
	}
	for _, w := range g.Wires {
		if w < 0 || w >= NumWires {
			return fmt.Errorf("%w: gate %s wire %d out of range", ErrInvalidGate, g.Name, w)
		}
	}
	if len(g.Wires) == 2 && g.Wires[0] == g.Wires[1] {
		return fmt.Errorf("%w: gate %s wires must be distinct", ErrInvalidGate, g.Name)
	}
	return nil
}

// Matrix returns the gate's operator on the full register.
func (g Gate) Matrix() Matrix {
	m := g.baseMatrix()
	if g.Adj {
		return m.Dagger()
	}
	return m
}

func (g Gate) baseMatrix() Matrix {
	switch g.Name {
	case GateH:
		h := 1 / math.Sqrt2
		return Expand(Mat2{{complex(h, 0), complex(h, 0)}, {complex(h, 0), complex(-h, 0)}}, g.Wires[0])
	case GateX:
		return Expand(Mat2{{0, 1}, {1, 0}}, g.Wires[0])
	case GateY:
		return Expand(Mat2{{0, -1i}, {1i, 0}}, g.Wires[0])
	case GateZ:
		return Expand(Mat2{{1, 0}, {0, -1}}, g.Wires[0])
	case GateS:
		return Expand(Mat2{{1, 0}, {0, 1i}}, g.Wires[0])
	case GateT:
		return Expand(Mat2{{1, 0}, {0, cmplx.Exp(1i * math.Pi / 4)}}, g.Wires[0])
	case GateRX:
		c := complex(math.Cos(g.Theta/2), 0)
		s := complex(0, -math.Sin(g.Theta/2))
		return Expand(Mat2{{c, s}, {s, c}}, g.Wires[0])
	case GateRY:
		c := complex(math.Cos(g.Theta/2), 0)
		s := complex(math.Sin(g.Theta/2), 0)
		return Expand(Mat2{{c, -s}, {s, c}}, g.Wires[0])
	case GateRZ:
		return Expand(Mat2{{cmplx.Exp(complex(0, -g.Theta/2)), 0}, {0, cmplx.Exp(complex(0, g.Theta/2))}}, g.Wires[0])
	case GateCNOT:
		return controlled(Mat2{{0, 1}, {1, 0}}, g.Wires[0], g.Wires[1])
	case GateCZ:
		return controlled(Mat2{{1, 0}, {0, -1}}, g.Wires[0], g.Wires[1])
	case GateSWAP:
		var m Matrix
		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				m[i*2+j][j*2+i] = 1
			}
		}
		return m
	case GateCRX:
		c := complex(math.Cos(g.Theta/2), 0)
		s := complex(0, -math.Sin(g.Theta/2))
		return controlled(Mat2{{c, s}, {s, c}}, g.Wires[0], g.Wires[1])
	case GateCRY:
		c := complex(math.Cos(g.Theta/2), 0)
		s := complex(math.Sin(g.Theta/2), 0)
		return controlled(Mat2{{c, -s}, {s, c}}, g.Wires[0], g.Wires[1])
	case GateCRZ:
		return controlled(Mat2{{cmplx.Exp(complex(0, -g.Theta/2)), 0}, {0, cmplx.Exp(complex(0, g.Theta/2))}}, g.Wires[0], g.Wires[1])
	case GateIsingXY:
		// exp(i phi/4 (XX+YY)): mixes |01> and |10>, leaves |00>, |11>.
		c := complex(math.Cos(g.Theta/2), 0)
		s := complex(0, math.Sin(g.Theta/2))
		m := Identity()
		lo, hi := basisIndex(g.Wires[0]), basisIndex(g.Wires[1])
		m[lo][lo], m[lo][hi] = c, s
		m[hi][lo], m[hi][hi] = s, c
		return m
	}
	// Unreachable for validated gates.
	return Identity()
}

// basisIndex returns the register basis index with only the given wire
// set to |1>.
func basisIndex(w int) int {
	if w == 0 {
		return 2
	}
	return 1
}

// controlled builds a controlled single-qubit operator for any
// control/target assignment on the register.
func controlled(u Mat2, control, target int) Matrix {
	m := Identity()
	cBit, tBit := basisIndex(control), basisIndex(target)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			m[cBit+i*tBit][cBit+j*tBit] = u[i][j]
		}
	}
	return m
}
