package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"wavefd/pkg/wave"
)

// SweepResult is the outcome of one (dt, nx) combination.
type SweepResult struct {
	DT       float64
	NX       int
	Courant  float64
	Accepted bool
	Reason   string

	// EnergyRatio is final over initial energy; NaN when the initial
	// energy is zero.
	EnergyRatio float64
	MaxAbs      float64
	Steps       int
}

// Sweep builds sim for every dt and nx pair on top of base and runs the
// accepted ones to completion. Configuration errors are recorded, not
// returned.
func Sweep(ctx context.Context, sim string, base map[string]string, dts []float64, nxs []int, workers int) ([]SweepResult, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	results := make([]SweepResult, len(dts)*len(nxs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for a, nx := range nxs {
		for b, dt := range dts {
			slot := &results[a*len(dts)+b]
			g.Go(func() error {
				res, err := sweepOne(ctx, sim, base, dt, nx)
				*slot = res
				return err
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func sweepOne(ctx context.Context, sim string, base map[string]string, dt float64, nx int) (SweepResult, error) {
	res := SweepResult{DT: dt, NX: nx, EnergyRatio: math.NaN()}
	kv := make(map[string]string, len(base)+3)
	for k, v := range base {
		kv[k] = v
	}
	kv["dt"] = strconv.FormatFloat(dt, 'g', -1, 64)
	kv["nx"] = strconv.Itoa(nx)
	if _, ok := base["ny"]; !ok {
		// Square 2D grids stay square; 1D configs reset ny to 1.
		kv["ny"] = strconv.Itoa(nx)
	}

	s, err := buildSim(sim, kv)
	if err != nil {
		if errors.Is(err, wave.ErrConfiguration) {
			res.Reason = err.Error()
			var cfgErr *wave.ConfigurationError
			if errors.As(err, &cfgErr) && cfgErr.Field == "courant" {
				res.Courant, _ = cfgErr.Value.(float64)
			}
			return res, nil
		}
		return res, err
	}
	stepper, err := stepperOf(s)
	if err != nil {
		return res, err
	}
	res.Accepted = true
	res.Courant = stepper.Grid().Courant()

	e0 := stepper.Stats().Energy
	for step := range stepper.Frames() {
		if step%64 == 0 {
			if err := ctx.Err(); err != nil {
				return res, err
			}
		}
	}
	final := stepper.Stats()
	if e0 > 0 {
		res.EnergyRatio = final.Energy / e0
	}
	res.MaxAbs = final.MaxAbs
	res.Steps = final.Step
	return res, nil
}

func newSweepCommand() *cobra.Command {
	var (
		flags   simFlags
		dtList  string
		nxList  string
		workers int
	)
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run a grid of time steps and resolutions and report stability",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dts, err := parseFloats(dtList)
			if err != nil {
				return fmt.Errorf("--dt: %w", err)
			}
			nxs, err := parseInts(nxList)
			if err != nil {
				return fmt.Errorf("--nx: %w", err)
			}
			base, err := flags.overrides()
			if err != nil {
				return err
			}
			if _, err := buildSim(flags.name, base); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Sweeping %d combinations of %s (%d workers)\n", len(dts)*len(nxs), flags.name, workers)
			start := time.Now()
			results, err := Sweep(cmd.Context(), flags.name, base, dts, nxs, workers)
			if err != nil {
				return err
			}
			sort.SliceStable(results, func(i, j int) bool { return results[i].Courant < results[j].Courant })
			writeSweep(out, results)
			fmt.Fprintf(out, "elapsed %s\n", time.Since(start).Round(time.Millisecond))
			return nil
		},
	}
	flags.bind(cmd.Flags(), "pulse1d")
	cmd.Flags().StringVar(&dtList, "dt", "0.005,0.01,0.02", "comma-separated time steps")
	cmd.Flags().StringVar(&nxList, "nx", "100", "comma-separated cell counts along x")
	cmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "number of concurrent runs")
	return cmd
}

func writeSweep(out io.Writer, results []SweepResult) {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "nx\tdt\tcourant\tstatus\tsteps\tenergy ratio\tmax")
	for _, r := range results {
		status := "accepted"
		if !r.Accepted {
			status = "rejected"
		}
		fmt.Fprintf(tw, "%d\t%g\t%.4f\t%s\t%d\t%.4f\t%.4g\n", r.NX, r.DT, r.Courant, status, r.Steps, r.EnergyRatio, r.MaxAbs)
	}
	tw.Flush()
}

func parseFloats(s string) ([]float64, error) {
	var out []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", part)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, errors.New("empty list")
	}
	return out, nil
}

func parseInts(s string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer", part)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, errors.New("empty list")
	}
	return out, nil
}
