package qfold

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestDevice(t *testing.T) {
	Convey("Given the benchmark circuit", t, func() {
		c := DemoCircuit(0.4)

		Convey("An ideal device keeps the state pure", func() {
			dev := NewDevice()
			So(dev.Noisy(), ShouldBeFalse)

			state, err := dev.Run(c)
			So(err, ShouldBeNil)
			So(state.Purity(), ShouldAlmostEqual, 1, 1e-12)
			So(state.Trace(), ShouldAlmostEqual, 1, 1e-12)
		})

		Convey("A noisy device mixes the state", func() {
			dev := NewDevice(WithNoise(&NoiseModel{Channel: Depolarizing{P: DefaultNoiseRate}}))
			So(dev.Noisy(), ShouldBeTrue)

			state, err := dev.Run(c)
			So(err, ShouldBeNil)
			So(state.Trace(), ShouldAlmostEqual, 1, 1e-12)
			So(state.Purity(), ShouldBeLessThan, 1)
		})

		Convey("Metrics count gates and channel insertions", func() {
			dev := NewDevice(WithNoise(&NoiseModel{Channel: Depolarizing{P: DefaultNoiseRate}}))
			_, err := dev.Run(c)
			So(err, ShouldBeNil)

			m := dev.Metrics()
			So(m.RunCount, ShouldEqual, 1)
			So(m.GateCount, ShouldEqual, 6)
			// One channel per wire per gate: three two-qubit gates and
			// three single-qubit gates.
			So(m.ChannelCount, ShouldEqual, 9)
		})

		Convey("A malformed gate aborts the run", func() {
			bad := &Circuit{gates: []Gate{{Name: GateH, Wires: []int{5}}}}
			_, err := NewDevice().Run(bad)
			So(err, ShouldNotBeNil)
		})
	})
}
