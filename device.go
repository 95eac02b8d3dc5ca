package qfold

import (
	"time"

	"github.com/theapemachine/errnie"
)

/*
Device executes circuits against the two-wire density-matrix engine.
A device without a noise model is ideal; WithNoise attaches a channel
that is inserted after every gate, on each wire the gate touches.
Execution is synchronous: Run returns only when the full sequence has
been applied.
*/
type Device struct {
	noise   *NoiseModel
	metrics *Metrics
}

// DeviceOption configures a Device.
type DeviceOption func(*Device)

// WithNoise attaches a noise model to the device.
func WithNoise(model *NoiseModel) DeviceOption {
	return func(d *Device) {
		d.noise = model
	}
}

// NewDevice creates a device, ideal unless configured otherwise.
func NewDevice(opts ...DeviceOption) *Device {
	d := &Device{metrics: newMetrics()}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Noisy reports whether a noise model is attached.
func (d *Device) Noisy() bool {
	return d.noise != nil
}

// Run applies the circuit to |00> and returns the final state.
func (d *Device) Run(c *Circuit) (*DensityMatrix, error) {
	start := time.Now()
	dm := NewDensityMatrix()
	gates, channels := 0, 0

	for _, g := range c.Ops() {
		if err := g.Validate(); err != nil {
			return nil, err
		}
		dm.Evolve(g)
		gates++

		if d.noise == nil {
			continue
		}
		for _, w := range g.Wires {
			dm.ApplyKraus(d.noise.Channel.Kraus(w))
			channels++
		}
	}

	d.metrics.recordRun(start, gates, channels)
	errnie.Info(
		"Run complete - gates %v, channels %v",
		gates,
		channels,
	)
	return dm, nil
}

// Metrics returns a snapshot of the device's counters.
func (d *Device) Metrics() MetricsSnapshot {
	return d.metrics.Snapshot()
}
