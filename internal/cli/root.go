// Package cli implements the wavesim command tree.
package cli

import (
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"wavefd/internal/app"
	"wavefd/internal/core"
	"wavefd/pkg/wave"

	_ "wavefd/internal/sims/interference"
	_ "wavefd/internal/sims/pulse1d"
	_ "wavefd/internal/sims/pulse2d"
)

// NewRootCommand builds the wavesim command with all subcommands attached.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "wavesim",
		Short: "Explicit finite-difference wave equation simulator.",
		Long: `wavesim integrates the scalar wave equation on 1D and 2D grids with a ` +
			`leapfrog stencil. It can run presets headless, view them in the terminal, ` +
			`and sweep time steps and resolutions to map the stability limit.`,
		SilenceUsage: true,
	}
	root.AddCommand(newListCommand(), newRunCommand(), newViewCommand(), newSweepCommand())
	return root
}

// simFlags are shared by every command that builds a sim.
type simFlags struct {
	name    string
	set     []string
	envFile string
}

func (f *simFlags) bind(fs *pflag.FlagSet, defaultSim string) {
	f.name = defaultSim
	fs.StringVar(&f.name, "sim", f.name, "simulation to run ("+strings.Join(core.Names(), ", ")+")")
	fs.StringArrayVar(&f.set, "set", nil, "parameter override as key=value (repeatable)")
	fs.StringVar(&f.envFile, "env-file", "", "dotenv file of key=value overrides; --set wins")
}

// overrides merges the env file and --set values.
func (f *simFlags) overrides() (map[string]string, error) {
	kv := map[string]string{}
	if f.envFile != "" {
		env, err := godotenv.Read(f.envFile)
		if err != nil {
			return nil, fmt.Errorf("read env file: %w", err)
		}
		for k, v := range env {
			kv[strings.ToLower(k)] = v
		}
	}
	set, err := app.ParseOverrides(f.set)
	if err != nil {
		return nil, err
	}
	for k, v := range set {
		kv[k] = v
	}
	return kv, nil
}

func (f *simFlags) build() (core.Sim, error) {
	kv, err := f.overrides()
	if err != nil {
		return nil, err
	}
	return buildSim(f.name, kv)
}

func buildSim(name string, kv map[string]string) (core.Sim, error) {
	factory, ok := core.Sims()[name]
	if !ok {
		return nil, fmt.Errorf("unknown sim %q (available: %s)", name, strings.Join(core.Names(), ", "))
	}
	return factory(kv)
}

// stepperSim is satisfied by every registered preset.
type stepperSim interface {
	core.Sim
	Stepper() *wave.Stepper
}

func stepperOf(sim core.Sim) (*wave.Stepper, error) {
	s, ok := sim.(stepperSim)
	if !ok {
		return nil, fmt.Errorf("sim %q does not expose a stepper", sim.Name())
	}
	return s.Stepper(), nil
}

// warnCourant logs when r is accepted but above the 2D stability bound.
func warnCourant(logger *log.Logger, g wave.Grid) {
	if r, bound := g.Courant(), wave.StrictBound(g); r > bound {
		logger.Printf("courant number %.4f exceeds the %dD bound %.4f; the field may diverge", r, g.Dims(), bound)
	}
}

func describeGrid(g wave.Grid, total int) string {
	return fmt.Sprintf("grid=%dx%d dx=%g dt=%g c=%g courant=%.4f steps=%d",
		g.NX(), g.NY(), g.DX(), g.DT(), g.Speed(), g.Courant(), total)
}
