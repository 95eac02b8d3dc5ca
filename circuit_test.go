package qfold

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCircuitConstruction(t *testing.T) {
	Convey("Given a set of gates", t, func() {
		Convey("NewCircuit accepts valid gates in order", func() {
			c, err := NewCircuit(Hadamard(0), CNOT(0, 1))
			So(err, ShouldBeNil)
			So(c.Len(), ShouldEqual, 2)
			So(c.Ops()[0].Name, ShouldEqual, GateH)
			So(c.Ops()[1].Name, ShouldEqual, GateCNOT)
		})

		Convey("NewCircuit rejects a gate on a missing wire", func() {
			_, err := NewCircuit(Hadamard(0), PauliX(3))
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "out of range")
		})

		Convey("Ops hands out a copy", func() {
			c, _ := NewCircuit(Hadamard(0))
			ops := c.Ops()
			ops[0] = PauliZ(1)
			So(c.Ops()[0].Name, ShouldEqual, GateH)
		})
	})
}

func TestCircuitAdjoint(t *testing.T) {
	Convey("Given a circuit", t, func() {
		c, _ := NewCircuit(Hadamard(0), CNOT(0, 1), RX(0.3, 1))

		Convey("Adjoint reverses the order and daggers every gate", func() {
			adj := c.Adjoint()
			So(adj.Len(), ShouldEqual, 3)
			So(adj.Ops()[0].Name, ShouldEqual, GateRX)
			So(adj.Ops()[0].Adj, ShouldBeTrue)
			So(adj.Ops()[2].Name, ShouldEqual, GateH)
		})

		Convey("U-dagger U applied to |00> is a no-op", func() {
			dm := NewDensityMatrix()
			for _, g := range c.Ops() {
				dm.Evolve(g)
			}
			for _, g := range c.Adjoint().Ops() {
				dm.Evolve(g)
			}
			So(real(dm.Matrix()[0][0]), ShouldAlmostEqual, 1, 1e-12)
		})

		Convey("Slice takes a one-based tail", func() {
			tail := c.Slice(2)
			So(tail.Len(), ShouldEqual, 2)
			So(tail.Ops()[0].Name, ShouldEqual, GateCNOT)

			So(c.Slice(4).Len(), ShouldEqual, 0)
		})
	})
}

func TestCircuitToQASM(t *testing.T) {
	Convey("Given the benchmark circuit", t, func() {
		c := DemoCircuit(0.4)

		Convey("ToQASM renders the expected program", func() {
			want := `OPENQASM 2.0;
include "qelib1.inc";

qreg q[2];

t q[0];
swap q[0], q[1];
crx(0.4) q[0], q[1];
s q[0];
cz q[0], q[1];
h q[0];
`
			So(cmp.Diff(want, c.ToQASM()), ShouldBeEmpty)
		})

		Convey("Adjoint gates render with inverted parameters", func() {
			adj, _ := NewCircuit(TGate(0).Dagger(), RX(0.3, 1).Dagger())
			qasm := adj.ToQASM()
			So(qasm, ShouldContainSubstring, "tdg q[0];")
			So(qasm, ShouldContainSubstring, "rx(-0.3) q[1];")
		})
	})
}
