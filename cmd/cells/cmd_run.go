package main

import (
	"github.com/spf13/cobra"

	"cells/internal/core"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Step the automaton headlessly and log the population",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			steps, _ := cmd.Flags().GetInt("steps")
			report, _ := cmd.Flags().GetInt("report")

			sim, err := buildSim(cfg, logger)
			if err != nil {
				return err
			}
			size := sim.Size()
			logger.Info("run started", "sim", sim.Name(), "width", size.W, "height", size.H, "steps", steps)

			for i := 1; i <= steps; i++ {
				if err := cmd.Context().Err(); err != nil {
					return err
				}
				sim.Step()
				if report > 0 && i%report == 0 {
					logger.Info("population", snapshotAttrs(sim)...)
				}
			}
			logger.Info("run finished", snapshotAttrs(sim)...)
			return nil
		},
	}
	cmd.Flags().Int("steps", 500, "generations to simulate")
	cmd.Flags().Int("report", 50, "log the population every N generations (0 disables)")
	return cmd
}

func snapshotAttrs(sim core.Sim) []any {
	p, ok := sim.(core.ParameterProvider)
	if !ok {
		return []any{"sim", sim.Name()}
	}
	snap := p.Parameters()
	attrs := []any{"sim", sim.Name()}
	for _, key := range []string{"generation", "rule", "index", "alive"} {
		if v, ok := snap.Lookup(key); ok {
			attrs = append(attrs, key, v)
		}
	}
	return attrs
}
