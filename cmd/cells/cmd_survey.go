package main

import (
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"cells/internal/sims/cells"
	"cells/internal/survey"
)

func newSurveyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "survey",
		Short: "Run many seeds in parallel and summarize each rule's effect",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			count, _ := cmd.Flags().GetInt("seeds")
			first, _ := cmd.Flags().GetInt64("first-seed")
			steps, _ := cmd.Flags().GetInt("steps")
			workers, _ := cmd.Flags().GetInt("workers")
			if count <= 0 {
				return fmt.Errorf("--seeds must be positive, got %d", count)
			}
			if first == 0 {
				first = 1
			}

			seeds := make([]int64, count)
			for i := range seeds {
				seeds[i] = first + int64(i)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			logger.Info("survey started", "seeds", count, "steps", steps, "workers", workers)
			results, err := survey.Run(ctx, cells.FromMap(cfg.SimConfig()), seeds, steps, workers)
			if err != nil {
				return err
			}
			logger.Info("survey finished", "runs", len(results))

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "SEED\tFINAL\tMIN\tPEAK")
			for _, r := range results {
				fmt.Fprintf(tw, "%d\t%d\t%d\t%d\n", r.Seed, r.FinalAlive, r.MinAlive, r.PeakAlive)
			}
			fmt.Fprintln(tw)
			fmt.Fprintln(tw, "RULE\tTICKS\tMEAN ALIVE")
			for _, rs := range mergeRuleStats(results) {
				fmt.Fprintf(tw, "%s\t%d\t%.3f\n", rs.Rule, rs.Ticks, rs.MeanAlive)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().Int("seeds", 8, "number of seeds to run")
	cmd.Flags().Int64("first-seed", 1, "first seed; the rest count up from it")
	cmd.Flags().Int("steps", 1000, "generations per seed")
	cmd.Flags().Int("workers", runtime.NumCPU(), "parallel runs")
	return cmd
}

// mergeRuleStats combines per-run rule stats, weighting means by ticks and
// keeping first-seen order.
func mergeRuleStats(results []survey.Result) []survey.RuleStat {
	var order []string
	merged := map[string]*survey.RuleStat{}
	for _, r := range results {
		for _, rs := range r.Rules {
			m, ok := merged[rs.Rule]
			if !ok {
				m = &survey.RuleStat{Rule: rs.Rule}
				merged[rs.Rule] = m
				order = append(order, rs.Rule)
			}
			m.MeanAlive += rs.MeanAlive * float64(rs.Ticks)
			m.Ticks += rs.Ticks
		}
	}
	out := make([]survey.RuleStat, 0, len(order))
	for _, name := range order {
		m := merged[name]
		if m.Ticks > 0 {
			m.MeanAlive /= float64(m.Ticks)
		}
		out = append(out, *m)
	}
	return out
}
