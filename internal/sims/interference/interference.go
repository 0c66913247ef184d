// Package interference registers two continuous point emitters on a damped
// membrane, in a shared-parameter and a per-emitter variant.
package interference

import (
	"strconv"
	"strings"

	"wavefd/internal/core"
	"wavefd/internal/sims"
	"wavefd/pkg/wave"
)

const (
	// Name is the registry key for the shared-parameter variant.
	Name = "interference"
	// CustomName is the registry key for the per-emitter variant.
	CustomName = "interference_custom"
)

// Emitter tuning used when no override is given.
const (
	DefaultFrequency = 1.0
	DefaultAmplitude = 1.0
)

// DefaultConfig returns a 10×10 domain on 200×200 cells, T = 5, dt = 0.005
// and c = 1, at rest, with emitters at (L/4, L/2) and (3L/4, L/2) and
// edges damped by 0.9 per step.
func DefaultConfig() wave.Config {
	const l = 10.0
	return wave.Config{
		Dims:     2,
		LengthX:  l,
		LengthY:  l,
		NX:       200,
		NY:       200,
		Duration: 5,
		DT:       0.005,
		Speed:    1,
		Boundary: wave.Damped{Coefficient: wave.DefaultDamping},
		Initial:  wave.Zero{},
		Emitters: []wave.Emitter{
			{X: l / 4, Y: l / 2, Amplitude: DefaultAmplitude, Frequency: DefaultFrequency},
			{X: 3 * l / 4, Y: l / 2, Amplitude: DefaultAmplitude, Frequency: DefaultFrequency},
		},
	}
}

// FromMap applies overrides to DefaultConfig. Besides the wave.Config
// keys, "freq" and "amp" retune every emitter.
func FromMap(cfg map[string]string) (wave.Config, error) {
	c, err := DefaultConfig().Apply(cfg)
	if err != nil {
		return wave.Config{}, err
	}
	for i := range c.Emitters {
		if err := parseFloat(cfg, "freq", &c.Emitters[i].Frequency); err != nil {
			return wave.Config{}, err
		}
		if err := parseFloat(cfg, "amp", &c.Emitters[i].Amplitude); err != nil {
			return wave.Config{}, err
		}
	}
	return c, nil
}

// FromMapCustom applies overrides to DefaultConfig. Emitter n (counting
// from 1) is retuned by "freqN" and "ampN".
func FromMapCustom(cfg map[string]string) (wave.Config, error) {
	c, err := DefaultConfig().Apply(cfg)
	if err != nil {
		return wave.Config{}, err
	}
	for i := range c.Emitters {
		n := strconv.Itoa(i + 1)
		if err := parseFloat(cfg, "freq"+n, &c.Emitters[i].Frequency); err != nil {
			return wave.Config{}, err
		}
		if err := parseFloat(cfg, "amp"+n, &c.Emitters[i].Amplitude); err != nil {
			return wave.Config{}, err
		}
	}
	return c, nil
}

func parseFloat(cfg map[string]string, key string, dst *float64) error {
	v, ok := cfg[key]
	if !ok {
		return nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return &wave.ConfigurationError{Field: key, Value: v, Reason: "not a number"}
	}
	*dst = f
	return nil
}

// Interference is the sim plus the per-emitter parameter view.
type Interference struct {
	*sims.Sim
	custom bool
}

// New builds the shared-parameter variant.
func New(cfg wave.Config, opts ...wave.Option) (*Interference, error) {
	return build(Name, false, cfg, opts)
}

// NewCustom builds the per-emitter variant.
func NewCustom(cfg wave.Config, opts ...wave.Option) (*Interference, error) {
	return build(CustomName, true, cfg, opts)
}

func build(name string, custom bool, cfg wave.Config, opts []wave.Option) (*Interference, error) {
	s, err := sims.New(name, cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Interference{Sim: s, custom: custom}, nil
}

// Limit is the symmetric color range for display: the largest emitter
// amplitude.
func (in *Interference) Limit() float64 {
	limit := 0.0
	for _, e := range in.Config().Emitters {
		a := e.Amplitude
		if a < 0 {
			a = -a
		}
		if a > limit {
			limit = a
		}
	}
	if limit == 0 {
		return 1
	}
	return limit
}

// Parameters extends the generic snapshot with the emitter tuning keys.
func (in *Interference) Parameters() core.ParameterSnapshot {
	snap := in.Sim.Parameters()
	emitters := in.Config().Emitters
	var params []core.Parameter
	switch {
	case in.custom:
		for i, e := range emitters {
			n := strconv.Itoa(i + 1)
			params = append(params,
				core.FloatParam("freq"+n, "Frequency "+n, e.Frequency),
				core.FloatParam("amp"+n, "Amplitude "+n, e.Amplitude),
			)
		}
	case len(emitters) > 0:
		params = append(params,
			core.FloatParam("freq", "Frequency", emitters[0].Frequency),
			core.FloatParam("amp", "Amplitude", emitters[0].Amplitude),
		)
	}
	if len(params) > 0 {
		snap.Groups = append(snap.Groups, core.ParameterGroup{Name: "Emitters", Params: params})
	}
	return snap
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
	core.Register(CustomName, func(cfg map[string]string) (core.Sim, error) {
		c, err := FromMapCustom(cfg)
		if err != nil {
			return nil, err
		}
		s, err := NewCustom(c)
		if err != nil {
			return nil, err
		}
		return s, nil
	})
}
