package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"cells/internal/config"
	"cells/internal/core"
	"cells/internal/logging"
	_ "cells/internal/sims/cells"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cells",
		Short: "Rule-rotating cellular automaton",
		Long: `cells evolves a random grid under a playlist of resurrect/die rules,
switching to the next rule every rotation period.

Settings come from defaults, an optional YAML file (--config), CELLS_*
environment variables and flags, in increasing priority.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("config", "", "path to a YAML config file")
	config.Default().Bind(rootCmd.PersistentFlags())

	rootCmd.AddCommand(
		newRunCmd(),
		newTermCmd(),
		newGUICmd(),
		newSurveyCmd(),
		newRulesCmd(),
		newConfigCmd(),
	)
	return rootCmd
}

// loadConfig resolves settings for cmd and builds the logger they select.
func loadConfig(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path, cmd.Flags())
	if err != nil {
		return nil, nil, err
	}
	return cfg, logging.NewLogger(cfg.LogLevel, cmd.ErrOrStderr()), nil
}

type loggerSetter interface {
	SetLogger(*slog.Logger)
}

// buildSim creates the configured sim from the registry.
func buildSim(cfg *config.Config, logger *slog.Logger) (core.Sim, error) {
	sim, err := core.NewSim(cfg.Sim, cfg.SimConfig())
	if err != nil {
		return nil, fmt.Errorf("creating sim: %w", err)
	}
	if ls, ok := sim.(loggerSetter); ok {
		ls.SetLogger(logger)
	}
	return sim, nil
}
