package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"cells/internal/term"
)

func newTermCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "term",
		Short: "Animate the automaton in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("creating screen: %w", err)
			}
			if err := screen.Init(); err != nil {
				return fmt.Errorf("initializing screen: %w", err)
			}
			defer screen.Fini()

			// The terminal is usually smaller than the configured display.
			if !cmd.Flags().Changed("screen-width") && !cmd.Flags().Changed("screen-height") {
				w, h := screen.Size()
				cfg.ScreenWidth = max(w/2, 1) * cfg.Scale
				cfg.ScreenHeight = max(h-1, 1) * cfg.Scale
			}

			sim, err := buildSim(cfg, logger)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return term.NewViewer(screen, sim, cfg.TPS, cfg.Seed).Run(ctx)
		},
	}
}
