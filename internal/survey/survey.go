// Package survey runs many independent sessions side by side and summarizes
// how each rule shapes the population.
package survey

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"cells/internal/sims/cells"
)

// RuleStat aggregates the alive fraction observed while one rule was active.
type RuleStat struct {
	Rule      string
	Ticks     int
	MeanAlive float64
}

// Result summarizes one seeded run.
type Result struct {
	Seed       int64
	Steps      int
	FinalAlive int
	// PeakAlive and MinAlive track the population after each step.
	PeakAlive int
	MinAlive  int
	Rules     []RuleStat
}

// Run simulates steps generations for every seed, at most workers at a
// time, and returns results ordered by seed. Each seed gets its own session
// so runs share no state.
func Run(ctx context.Context, cfg cells.Config, seeds []int64, steps, workers int) ([]Result, error) {
	if steps < 0 {
		return nil, fmt.Errorf("steps must be non-negative, got %d", steps)
	}
	if workers <= 0 {
		workers = 1
	}
	for i, seed := range seeds {
		if seed == 0 {
			return nil, fmt.Errorf("seeds[%d]: zero seeds are not reproducible", i)
		}
	}
	results := make([]Result, len(seeds))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, seed := range seeds {
		i, seed := i, seed
		g.Go(func() error {
			c := cfg
			c.Seed = seed
			res, err := runOne(ctx, c, steps)
			if err != nil {
				return fmt.Errorf("seed %d: %w", seed, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	sort.SliceStable(results, func(a, b int) bool { return results[a].Seed < results[b].Seed })
	return results, nil
}

func runOne(ctx context.Context, cfg cells.Config, steps int) (Result, error) {
	s, err := cells.New(cfg)
	if err != nil {
		return Result{}, err
	}
	total := float64(cfg.Width * cfg.Height)
	alive := s.Grid().Alive()
	res := Result{Seed: cfg.Seed, PeakAlive: alive, MinAlive: alive}

	sums := map[string]float64{}
	ticks := map[string]int{}
	var order []string
	for i := 0; i < steps; i++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		name := s.Active().Name()
		s.Step()
		alive = s.Grid().Alive()
		if _, seen := ticks[name]; !seen {
			order = append(order, name)
		}
		ticks[name]++
		sums[name] += float64(alive) / total
		res.PeakAlive = max(res.PeakAlive, alive)
		res.MinAlive = min(res.MinAlive, alive)
	}
	res.Steps = steps
	res.FinalAlive = alive
	for _, name := range order {
		res.Rules = append(res.Rules, RuleStat{
			Rule:      name,
			Ticks:     ticks[name],
			MeanAlive: sums[name] / float64(ticks[name]),
		})
	}
	return res, nil
}
