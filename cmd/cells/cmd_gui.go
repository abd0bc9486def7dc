package main

import (
	"github.com/spf13/cobra"

	"cells/internal/app"
)

func newGUICmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gui",
		Short: "Open a window animating the automaton (requires -tags ebiten)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			noTrails, _ := cmd.Flags().GetBool("no-trails")

			sim, err := buildSim(cfg, logger)
			if err != nil {
				return err
			}
			return app.Run(sim, app.Options{
				Scale:  cfg.Scale,
				TPS:    cfg.TPS,
				Seed:   cfg.Seed,
				Trails: !noTrails,
			})
		},
	}
	cmd.Flags().Bool("no-trails", false, "clear the screen every frame")
	return cmd
}
