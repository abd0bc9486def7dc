package core

import (
	"fmt"
	"sort"
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim is the contract a renderer or runner drives once per tick.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// Seeded is implemented by sims that report the seed behind their current
// grid. A sim may resolve a zero seed to a clock value on Reset.
type Seeded interface {
	Seed() int64
}

// CurrentSeed returns the seed sim last used, or fallback when sim does not
// report one.
func CurrentSeed(sim Sim, fallback int64) int64 {
	if s, ok := sim.(Seeded); ok {
		return s.Seed()
	}
	return fallback
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name. It is meant to
// be called from package init functions only.
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

// SimNames returns the registered names in sorted order.
func SimNames() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewSim looks up a factory by name and builds the sim.
func NewSim(name string, cfg map[string]string) (Sim, error) {
	f, ok := sims[name]
	if !ok {
		return nil, fmt.Errorf("unknown sim %q", name)
	}
	return f(cfg)
}
