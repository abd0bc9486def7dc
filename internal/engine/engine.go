// Package engine computes automaton generations and seeds initial grids.
package engine

import (
	"fmt"
	"math"

	"cells/internal/core"
	"cells/internal/rules"
	prng "cells/pkg/core"
)

// DefaultAliveChance is the reference probability of a seeded cell being alive.
const DefaultAliveChance = 0.5

// Step returns the generation that follows g under rs. Every new state is
// computed from g alone; g is not modified. g must come from one of the core
// constructors; the zero Grid steps to itself.
func Step(g core.Grid, rs rules.RuleSet) core.Grid {
	return g.Next(func(x, y int, c core.Cell) core.Cell {
		return Transition(c, g.AliveAround(x, y), rs)
	})
}

// Transition applies rs to a single cell whose window holds alive live cells.
func Transition(c core.Cell, alive int, rs rules.RuleSet) core.Cell {
	switch {
	case c == core.Dead && rs.Resurrect(alive):
		return core.Alive
	case c == core.Alive && rs.Die(alive):
		return core.Dead
	default:
		return c
	}
}

// Initialize seeds a w*h grid where each cell is alive with probability p.
// A cell is alive when p is greater than its uniform [0, 1) draw, so p=0
// yields an empty grid and p=1 a full one.
func Initialize(w, h int, p float64, rng *prng.RNG) (core.Grid, error) {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return core.Grid{}, fmt.Errorf("alive probability %v outside [0,1]", p)
	}
	if w <= 0 || h <= 0 {
		return core.Grid{}, &core.InvalidGridError{Width: w, Height: h, Reason: "dimensions must be positive"}
	}
	if rng == nil {
		rng = prng.NewTimeSeeded()
	}
	cells := make([]core.Cell, w*h)
	for i := range cells {
		if rng.Chance(p) {
			cells[i] = core.Alive
		}
	}
	return core.FromCells(w, h, cells)
}
