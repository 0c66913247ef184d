package wave

import (
	"math"
	"strconv"
	"strings"
)

// Emitter is a source given in physical coordinates. Y is ignored in 1D.
type Emitter struct {
	X, Y      float64
	Amplitude float64
	Frequency float64
}

// Config is everything a Stepper needs, accepted once before the first step.
type Config struct {
	Dims     int
	LengthX  float64
	LengthY  float64
	NX, NY   int
	Duration float64
	DT       float64
	Speed    float64

	Emitters []Emitter
	Boundary BoundaryPolicy
	Initial  InitialCondition

	// Workers > 1 updates 2D interiors in parallel row bands.
	Workers int
}

// DefaultConfig returns the 1D Gaussian pulse setup: L = 10, 100 cells,
// T = 5, dt = 0.01, c = 1 (r = 0.1) with fixed ends.
func DefaultConfig() Config {
	return Config{
		Dims:     1,
		LengthX:  10,
		NX:       100,
		NY:       1,
		Duration: 5,
		DT:       0.01,
		Speed:    1,
		Boundary: Fixed{},
		Initial:  Gaussian{CenterX: 5, Sharpness: 100, Amplitude: 1},
	}
}

// Grid builds the grid described by c.
func (c Config) Grid() (Grid, error) {
	switch c.Dims {
	case 1:
		return NewGrid1D(c.LengthX, c.NX, c.Speed, c.DT)
	case 2:
		return NewGrid2D(c.LengthX, c.LengthY, c.NX, c.NY, c.Speed, c.DT)
	}
	return Grid{}, configErr("dims", c.Dims, "must be 1 or 2")
}

// Sources converts the emitters to grid cells.
func (c Config) Sources(g Grid) []Source {
	out := make([]Source, 0, len(c.Emitters))
	for _, e := range c.Emitters {
		out = append(out, SourceAt(g, e.X, e.Y, e.Amplitude, e.Frequency))
	}
	return out
}

// TotalSteps returns ceil(duration/dt). Ratios within rounding error of an
// integer are not bumped to the next step, so 5/0.01 gives 500.
func TotalSteps(duration, dt float64) (int, error) {
	if err := positive("duration", duration); err != nil {
		return 0, err
	}
	if err := positive("dt", dt); err != nil {
		return 0, err
	}
	n := duration / dt
	if r := math.Round(n); math.Abs(n-r) <= 1e-9*math.Max(1, r) {
		n = r
	}
	steps := math.Ceil(n)
	if steps > math.MaxInt32 {
		return 0, configErr("duration", duration, "too many steps for dt %g", dt)
	}
	return int(steps), nil
}

// FromMap applies flag-style key/value overrides to DefaultConfig.
func FromMap(kv map[string]string) (Config, error) {
	return DefaultConfig().Apply(kv)
}

// Apply returns a copy of c with the recognised keys of kv applied.
// Unrecognised keys are ignored so callers can mix in their own.
//
// Keys: dims, lx, ly, nx, ny, t, dt, c, workers, boundary, damping,
// sources ("x,y,amp,freq;..."), initial (zero|gaussian), pulse_x,
// pulse_y, pulse_k, pulse_amp.
func (c Config) Apply(kv map[string]string) (Config, error) {
	if len(kv) == 0 {
		return c, nil
	}
	p := parser{kv: kv}

	p.int("dims", &c.Dims)
	p.float("lx", &c.LengthX)
	p.float("ly", &c.LengthY)
	p.int("nx", &c.NX)
	p.int("ny", &c.NY)
	p.float("t", &c.Duration)
	p.float("dt", &c.DT)
	p.float("c", &c.Speed)
	p.int("workers", &c.Workers)
	if p.err != nil {
		return Config{}, p.err
	}
	switch c.Dims {
	case 1:
		c.NY = 1
	case 2:
		if c.LengthY == 0 {
			c.LengthY = c.LengthX
		}
		if c.NY <= 1 {
			c.NY = c.NX
		}
	}

	if v, ok := kv["boundary"]; ok {
		b, err := ParseBoundary(v)
		if err != nil {
			return Config{}, err
		}
		c.Boundary = b
	}
	if v, ok := kv["damping"]; ok {
		k, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return Config{}, configErr("damping", v, "not a number")
		}
		if _, fixed := c.Boundary.(Fixed); fixed && kv["boundary"] != "" {
			return Config{}, configErr("damping", v, "fixed boundary takes no coefficient")
		}
		d := Damped{Coefficient: k}
		if err := validateBoundary(d); err != nil {
			return Config{}, err
		}
		c.Boundary = d
	}

	if v, ok := kv["sources"]; ok {
		emitters, err := ParseEmitters(v)
		if err != nil {
			return Config{}, err
		}
		c.Emitters = emitters
	}

	if err := c.applyInitial(&p); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c *Config) applyInitial(p *parser) error {
	_, dimsSet := p.kv["dims"]
	_, lxSet := p.kv["lx"]
	_, lySet := p.kv["ly"]
	if v, ok := p.kv["initial"]; ok {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "zero":
			c.Initial = Zero{}
		case "gaussian":
			if _, already := c.Initial.(Gaussian); !already {
				c.Initial = Gaussian{CenterX: c.LengthX / 2, CenterY: c.LengthY / 2, Sharpness: 100, Amplitude: 1}
			}
		default:
			return configErr("initial", v, "expected zero or gaussian")
		}
	}
	g, ok := c.Initial.(Gaussian)
	if !ok {
		return nil
	}
	if lxSet || dimsSet {
		g.CenterX = c.LengthX / 2
	}
	if lySet || dimsSet {
		g.CenterY = c.LengthY / 2
	}
	p.float("pulse_x", &g.CenterX)
	p.float("pulse_y", &g.CenterY)
	p.float("pulse_k", &g.Sharpness)
	p.float("pulse_amp", &g.Amplitude)
	if p.err != nil {
		return p.err
	}
	c.Initial = g
	return nil
}

// ParseEmitters reads "x,y,amp,freq" groups separated by semicolons.
func ParseEmitters(s string) ([]Emitter, error) {
	var out []Emitter
	for _, group := range strings.Split(s, ";") {
		group = strings.TrimSpace(group)
		if group == "" {
			continue
		}
		fields := strings.Split(group, ",")
		if len(fields) != 4 {
			return nil, configErr("sources", group, "expected x,y,amp,freq")
		}
		var vals [4]float64
		for i, f := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil {
				return nil, configErr("sources", group, "%q is not a number", f)
			}
			vals[i] = v
		}
		out = append(out, Emitter{X: vals[0], Y: vals[1], Amplitude: vals[2], Frequency: vals[3]})
	}
	return out, nil
}

// FormatEmitters renders emitters in the form ParseEmitters reads.
func FormatEmitters(emitters []Emitter) string {
	groups := make([]string, len(emitters))
	for i, e := range emitters {
		groups[i] = strings.Join([]string{
			formatFloat(e.X), formatFloat(e.Y), formatFloat(e.Amplitude), formatFloat(e.Frequency),
		}, ",")
	}
	return strings.Join(groups, ";")
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

// parser records the first conversion failure.
type parser struct {
	kv  map[string]string
	err error
}

func (p *parser) float(key string, dst *float64) {
	v, ok := p.kv[key]
	if !ok || p.err != nil {
		return
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		p.err = configErr(key, v, "not a number")
		return
	}
	*dst = f
}

func (p *parser) int(key string, dst *int) {
	v, ok := p.kv[key]
	if !ok || p.err != nil {
		return
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		p.err = configErr(key, v, "not an integer")
		return
	}
	*dst = n
}
