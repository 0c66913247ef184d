package app

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// Config represents the command-line parameters for the viewers.
type Config struct {
	Sim      string
	Scale    int
	TPS      int
	StepsPer int
	HUDWidth int
	Set      []string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "pulse2d", Scale: 4, TPS: 60, StepsPer: 1, HUDWidth: 260}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.StepsPer, "steps-per-tick", c.StepsPer, "simulation steps per tick")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "parameter panel width in pixels (0 hides it)")
	fs.StringArrayVar(&c.Set, "set", c.Set, "parameter override as key=value (repeatable)")
}

// Overrides parses the --set values into a map.
func (c *Config) Overrides() (map[string]string, error) {
	return ParseOverrides(c.Set)
}

// ParseOverrides reads key=value pairs. Later keys replace earlier ones.
func ParseOverrides(pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs))
	for _, kv := range pairs {
		key, value, ok := strings.Cut(kv, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("override %q: expected key=value", kv)
		}
		out[key] = strings.TrimSpace(value)
	}
	return out, nil
}
