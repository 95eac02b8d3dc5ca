package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/spf13/cobra"
	"github.com/theapemachine/qfold"
)

var rootCmd = &cobra.Command{
	Use:   "qfold",
	Short: "Global circuit folding on a noisy two-qubit simulator",
	Long: `qfold folds a fixed two-qubit benchmark circuit, runs the folded and
unfolded variants under depolarizing noise, and reports the fidelity
between their output states.

Fold parameters come in as a JSON array [angle, n, s]: the rotation
angle of the circuit, the number of whole-circuit repetitions, and the
start index of the partial fold.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// runCmd evaluates one set of fold parameters.
var runCmd = &cobra.Command{
	Use:   "run [json]",
	Short: "Compute the folded-vs-unfolded fidelity for [angle, n, s]",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runFold,
}

// checkCmd verifies the reference parameters against the known answer.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the reference case angle=0.4, n=2, s=3",
	RunE:  runCheck,
}

// sweepCmd measures fidelity across scale factors and extrapolates to
// the zero-noise limit.
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Sweep fold parameters and extrapolate fidelity to zero noise",
	RunE:  runSweep,
}

var configPath string

func init() {
	sweepCmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	rootCmd.AddCommand(runCmd, checkCmd, sweepCmd)
}

func readParams(cmd *cobra.Command, args []string) (angle float64, n, s int, err error) {
	var raw []byte
	if len(args) == 1 {
		raw = []byte(args[0])
	} else {
		raw, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return 0, 0, 0, fmt.Errorf("read input: %w", err)
		}
	}

	var params []float64
	if err := json.Unmarshal(raw, &params); err != nil {
		return 0, 0, 0, fmt.Errorf("parse input: %w", err)
	}
	if len(params) != 3 {
		return 0, 0, 0, fmt.Errorf("expected [angle, n, s], got %d values", len(params))
	}
	if params[1] != math.Trunc(params[1]) {
		return 0, 0, 0, fmt.Errorf("parse input: n = %v is not an integer", params[1])
	}
	if params[2] != math.Trunc(params[2]) {
		return 0, 0, 0, fmt.Errorf("parse input: s = %v is not an integer", params[2])
	}
	return params[0], int(params[1]), int(params[2]), nil
}

func runFold(cmd *cobra.Command, args []string) error {
	angle, n, s, err := readParams(cmd, args)
	if err != nil {
		return err
	}

	fid, err := qfold.FoldedFidelity(angle, n, s)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), qfold.FormatFidelity(fid))
	return nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	fid, err := qfold.FoldedFidelity(0.4, 2, 3)
	if err != nil {
		return err
	}

	got := qfold.FormatFidelity(fid)
	if got != "0.79209" {
		return fmt.Errorf("expected 0.79209, got %s", got)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Correct!")
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg := qfold.NewConfig()
	if configPath != "" {
		var err error
		cfg, err = qfold.LoadConfig(configPath)
		if err != nil {
			return err
		}
	}

	circuit := qfold.DemoCircuit(cfg.Angle)
	params := []qfold.FoldParams{}
	for n := 0; n <= cfg.FoldN; n++ {
		params = append(params, qfold.FoldParams{N: n, S: circuit.Len() + 1})
	}
	// The configured partial fold adds one fractional scale factor.
	if cfg.FoldS >= 1 && cfg.FoldS <= circuit.Len() {
		params = append(params, qfold.FoldParams{N: cfg.FoldN, S: cfg.FoldS})
	}

	points, err := qfold.FidelitySweep(circuit, cfg.NoiseRate, params)
	if err != nil {
		return err
	}
	for _, p := range points {
		fmt.Fprintf(cmd.OutOrStdout(), "lambda=%.4f fidelity=%s\n", p.Lambda, qfold.FormatFidelity(p.Fidelity))
	}

	richardson, err := qfold.ExtrapolateRichardson(points)
	if err != nil {
		return err
	}
	linear, err := qfold.ExtrapolateLinear(points)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "richardson=%s linear=%s\n",
		qfold.FormatFidelity(richardson), qfold.FormatFidelity(linear))
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Runtime Error: %v\n", err)
		os.Exit(1)
	}
}
