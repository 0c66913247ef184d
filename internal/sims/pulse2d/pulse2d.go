// Package pulse2d registers a Gaussian pulse on a square membrane.
package pulse2d

import (
	"wavefd/internal/core"
	"wavefd/internal/sims"
	"wavefd/pkg/wave"
)

// Name is the registry key.
const Name = "pulse2d"

// DefaultConfig returns a 10×10 domain on 100×100 cells, T = 5, dt = 0.01
// and c = 1 with a centered Gaussian and fixed edges.
func DefaultConfig() wave.Config {
	return wave.Config{
		Dims:     2,
		LengthX:  10,
		LengthY:  10,
		NX:       100,
		NY:       100,
		Duration: 5,
		DT:       0.01,
		Speed:    1,
		Boundary: wave.Fixed{},
		Initial:  wave.Gaussian{CenterX: 5, CenterY: 5, Sharpness: 100, Amplitude: 1},
	}
}

// FromMap applies flag-style overrides to DefaultConfig.
func FromMap(cfg map[string]string) (wave.Config, error) {
	return DefaultConfig().Apply(cfg)
}

// New builds the sim.
func New(cfg wave.Config, opts ...wave.Option) (*sims.Sim, error) {
	return sims.New(Name, cfg, opts...)
}

func init() {
	core.Register(Name, func(cfg map[string]string) (core.Sim, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		s, err := New(c)
		if err != nil {
			return nil, err
		}
		return s, nil
	})
}
