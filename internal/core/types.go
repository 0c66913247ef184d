package core

import (
	"sort"

	"wavefd/pkg/wave"
)

// Size describes the dimensions of a simulation grid. H is 1 for 1D sims.
type Size struct {
	W int
	H int
}

// Sim defines the contract the viewers and the CLI drive. Snapshot returns
// a read-only view that is valid until the next Step or Reset.
type Sim interface {
	Name() string
	Size() Size
	Reset() error
	Step() error
	Snapshot() wave.Snapshot
	Done() bool
}

// Factory constructs a Sim from flag-style key/value overrides.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// Names returns the registered simulation names in sorted order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
