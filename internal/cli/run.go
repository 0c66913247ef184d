package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"runtime/pprof"

	"github.com/rs/xid"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"wavefd/pkg/wave"
)

func newRunCommand() *cobra.Command {
	var (
		flags      simFlags
		every      int
		workers    int
		cpuProfile string
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a simulation headless and print energy statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if workers > 0 {
				flags.set = append([]string{fmt.Sprintf("workers=%d", workers)}, flags.set...)
			}
			runID := xid.New().String()
			logger := log.New(cmd.ErrOrStderr(), "wavesim["+runID+"] ", log.LstdFlags|log.Lmsgprefix)

			sim, err := flags.build()
			if err != nil {
				return err
			}
			stepper, err := stepperOf(sim)
			if err != nil {
				return err
			}
			warnCourant(logger, stepper.Grid())

			if cpuProfile != "" {
				if err := startCPUProfile(cpuProfile); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "run=%s sim=%s %s boundary=%s\n", runID, sim.Name(), describeGrid(stepper.Grid(), stepper.TotalSteps()), stepper.Boundary())
			printStats(out, stepper.Stats())

			sink := wave.SinkFunc(func(s wave.Snapshot) error {
				if every > 0 && (s.Step%every == 0 || s.Step == stepper.TotalSteps()) {
					printStats(out, stepper.Stats())
				}
				return nil
			})
			if err := stepper.Run(cmd.Context(), sink); err != nil {
				return err
			}
			if every <= 0 {
				printStats(out, stepper.Stats())
			}
			logger.Printf("finished %d steps", stepper.Steps())
			return nil
		},
	}
	flags.bind(cmd.Flags(), "pulse1d")
	cmd.Flags().IntVar(&every, "every", 100, "print statistics every N steps (0 prints only the final state)")
	cmd.Flags().IntVar(&workers, "workers", 0, "row-band workers for 2D updates (0 keeps the preset)")
	cmd.Flags().StringVar(&cpuProfile, "cpuprofile", "", "write a CPU profile to this file")
	return cmd
}

func printStats(out io.Writer, s wave.Stats) {
	fmt.Fprintf(out, "step=%d t=%.4f energy=%.6g max=%.4g\n", s.Step, s.Time, s.Energy, s.MaxAbs)
}

// startCPUProfile starts profiling and registers the flush with atexit, so
// it runs whenever main leaves through atexit.Exit.
func startCPUProfile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create cpu profile: %w", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return fmt.Errorf("start cpu profile: %w", err)
	}
	atexit.Register(func() {
		pprof.StopCPUProfile()
		f.Close()
	})
	return nil
}
