//go:build ebiten

package main

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/pflag"

	"wavefd/internal/app"
	"wavefd/internal/core"
	_ "wavefd/internal/sims/interference"
	_ "wavefd/internal/sims/pulse1d"
	_ "wavefd/internal/sims/pulse2d"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(pflag.CommandLine)
	pflag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}
	overrides, err := cfg.Overrides()
	if err != nil {
		log.Fatal(err)
	}
	sim, err := factory(overrides)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(sim, cfg)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("waveview: " + sim.Name())
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
