package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"wavefd/internal/core"
	"wavefd/internal/ui"
)

func newListCommand() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered simulations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range core.Names() {
				fmt.Fprintln(out, name)
				if !verbose {
					continue
				}
				sim, err := buildSim(name, nil)
				if err != nil {
					fmt.Fprintf(out, "  error: %v\n", err)
					continue
				}
				provider, ok := sim.(core.ParameterProvider)
				if !ok {
					continue
				}
				for _, line := range ui.ParameterLines(provider.Parameters()) {
					fmt.Fprintln(out, "  "+line)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "also print each sim's default parameters")
	return cmd
}
