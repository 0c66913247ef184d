package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep/speaker"
	"github.com/spf13/cobra"

	"wavefd/internal/audio"
	"wavefd/internal/core"
	"wavefd/internal/render"
	"wavefd/internal/term"
	"wavefd/pkg/wave"
)

func newViewCommand() *cobra.Command {
	var (
		flags    simFlags
		tps      int
		stepsPer int
		limit    float64
		sound    bool
		probeAt  string
		gain     float64
	)
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Watch a simulation in the terminal",
		Long:  "Keys: space pauses, n steps once, r restarts, q or Esc quits.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sim, err := flags.build()
			if err != nil {
				return err
			}
			if limit <= 0 {
				limit = render.StyleFor(sim).Limit
			}
			opts := []term.Option{term.WithTPS(tps), term.WithStepsPerTick(stepsPer), term.WithLimit(limit)}

			if sound {
				i, j, err := probeCell(sim, probeAt)
				if err != nil {
					return err
				}
				probe := audio.NewProbe(gain, 0.01)
				if err := speaker.Init(audio.SampleRate, audio.SampleRate.N(time.Second/10)); err != nil {
					return fmt.Errorf("init audio: %w", err)
				}
				defer speaker.Close()
				speaker.Play(probe)
				opts = append(opts, term.WithStepHook(probe.Listen(i, j)))
			}

			screen, err := tcell.NewScreen()
			if err != nil {
				return err
			}
			if err := screen.Init(); err != nil {
				return err
			}
			defer screen.Fini()
			return term.NewViewer(screen, sim, opts...).Run(cmd.Context())
		},
	}
	flags.bind(cmd.Flags(), "pulse2d")
	cmd.Flags().IntVar(&tps, "tps", 30, "ticks per second")
	cmd.Flags().IntVar(&stepsPer, "steps-per-tick", 1, "simulation steps per tick")
	cmd.Flags().Float64Var(&limit, "limit", 0, "amplitude drawn at full intensity (0 uses the sim's limit or the peak of its initial field)")
	cmd.Flags().BoolVar(&sound, "audio", false, "play the field value at the probe cell")
	cmd.Flags().StringVar(&probeAt, "probe", "", "probe cell as i,j (defaults to next to the first emitter, else the center)")
	cmd.Flags().Float64Var(&gain, "gain", 4, "audio gain applied to the probe value")
	return cmd
}

type sourceLister interface {
	Sources() []wave.Source
}

// probeCell parses "i,j" or picks a default cell inside the grid.
func probeCell(sim core.Sim, pos string) (int, int, error) {
	size := sim.Size()
	if pos == "" {
		if s, ok := sim.(sourceLister); ok && len(s.Sources()) > 0 {
			src := s.Sources()[0]
			return min(src.I+1, size.W-1), src.J, nil
		}
		return size.W / 2, size.H / 2, nil
	}
	is, js, _ := strings.Cut(pos, ",")
	i, err := strconv.Atoi(strings.TrimSpace(is))
	if err != nil {
		return 0, 0, fmt.Errorf("probe %q: bad column", pos)
	}
	j := 0
	if strings.TrimSpace(js) != "" {
		if j, err = strconv.Atoi(strings.TrimSpace(js)); err != nil {
			return 0, 0, fmt.Errorf("probe %q: bad row", pos)
		}
	}
	if i < 0 || j < 0 || i >= size.W || j >= size.H {
		return 0, 0, fmt.Errorf("probe %q: outside the %dx%d grid", pos, size.W, size.H)
	}
	return i, j, nil
}
