package qfold

import (
	"errors"
	"fmt"
	"strings"
)

// NumWires fixes the register size. The folding demo is a two-wire
// artifact and the simulation engine is sized to match.
const NumWires = 2

var (
	ErrInvalidGate      = errors.New("invalid gate")
	ErrInvalidFoldIndex = errors.New("invalid fold index")
)

/*
Circuit is an ordered gate sequence on the two-wire register. The
sequence is append-only while building; Ops hands out copies so a built
circuit cannot be mutated through its gate list.
*/
type Circuit struct {
	gates []Gate
}

// NewCircuit builds a circuit from the given gates. Gates are validated
// up front so every later consumer can trust the sequence.
func NewCircuit(gates ...Gate) (*Circuit, error) {
	c := &Circuit{}
	for _, g := range gates {
		if err := c.Append(g); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Append adds a gate to the end of the sequence.
func (c *Circuit) Append(g Gate) error {
	if err := g.Validate(); err != nil {
		return err
	}
	c.gates = append(c.gates, g)
	return nil
}

// Len returns the number of gates d.
func (c *Circuit) Len() int {
	return len(c.gates)
}

// Ops returns a copy of the gate sequence in application order.
func (c *Circuit) Ops() []Gate {
	out := make([]Gate, len(c.gates))
	copy(out, c.gates)
	return out
}

// Adjoint returns U†: the daggered gates in reverse order.
func (c *Circuit) Adjoint() *Circuit {
	out := &Circuit{gates: make([]Gate, 0, len(c.gates))}
	for i := len(c.gates) - 1; i >= 0; i-- {
		out.gates = append(out.gates, c.gates[i].Dagger())
	}
	return out
}

// Extend appends every gate of other to c.
func (c *Circuit) Extend(other *Circuit) {
	c.gates = append(c.gates, other.Ops()...)
}

// Slice returns a circuit holding gates L_from..L_d (1-based, inclusive).
func (c *Circuit) Slice(from int) *Circuit {
	out := &Circuit{gates: make([]Gate, 0)}
	for i := from - 1; i < len(c.gates); i++ {
		out.gates = append(out.gates, c.gates[i])
	}
	return out
}

// ToQASM renders the circuit as OpenQASM 2.0 text.
func (c *Circuit) ToQASM() string {
	var sb strings.Builder
	sb.WriteString("OPENQASM 2.0;\n")
	sb.WriteString("include \"qelib1.inc\";\n\n")
	fmt.Fprintf(&sb, "qreg q[%d];\n\n", NumWires)

	for _, g := range c.gates {
		sb.WriteString(g.qasm())
		sb.WriteString("\n")
	}
	return sb.String()
}

// qasm renders one gate as a QASM statement.
func (g Gate) qasm() string {
	theta := g.Theta
	if g.Adj {
		theta = -theta
	}
	switch g.Name {
	case GateH, GateX, GateY, GateZ:
		return fmt.Sprintf("%s q[%d];", strings.ToLower(string(g.Name)), g.Wires[0])
	case GateS, GateT:
		n := strings.ToLower(string(g.Name))
		if g.Adj {
			n += "dg"
		}
		return fmt.Sprintf("%s q[%d];", n, g.Wires[0])
	case GateRX, GateRY, GateRZ:
		return fmt.Sprintf("%s(%g) q[%d];", strings.ToLower(string(g.Name)), theta, g.Wires[0])
	case GateCNOT:
		return fmt.Sprintf("cx q[%d], q[%d];", g.Wires[0], g.Wires[1])
	case GateCZ:
		return fmt.Sprintf("cz q[%d], q[%d];", g.Wires[0], g.Wires[1])
	case GateSWAP:
		return fmt.Sprintf("swap q[%d], q[%d];", g.Wires[0], g.Wires[1])
	case GateCRX, GateCRY, GateCRZ:
		return fmt.Sprintf("%s(%g) q[%d], q[%d];", strings.ToLower(string(g.Name)), theta, g.Wires[0], g.Wires[1])
	case GateIsingXY:
		// Not a qelib primitive; emitted under a custom name.
		return fmt.Sprintf("isingxy(%g) q[%d], q[%d];", theta, g.Wires[0], g.Wires[1])
	}
	return fmt.Sprintf("// unsupported gate %s", g.Name)
}
