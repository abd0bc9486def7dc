package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"cells/internal/core"
	"cells/internal/rules"
	"cells/internal/schedule"
)

func newRulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the rule catalog with truth tables over alive counts 0-9",
		RunE: func(cmd *cobra.Command, args []string) error {
			showPlaylist, _ := cmd.Flags().GetBool("playlist")
			out := cmd.OutOrStdout()
			if showPlaylist {
				for i, name := range schedule.DefaultNames() {
					fmt.Fprintf(out, "%2d  %s\n", i, name)
				}
				return nil
			}

			uses := map[string]int{}
			for _, name := range schedule.DefaultNames() {
				uses[name]++
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "RULE\tRESURRECT %s\tDIE %s\tPLAYLIST\n", countHeader(), countHeader())
			for _, name := range rules.Names() {
				rs, err := rules.Lookup(name)
				if err != nil {
					return err
				}
				res, die := rules.TruthTable(rs)
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", name, marks(res[:]), marks(die[:]), uses[name])
			}
			return tw.Flush()
		},
	}
	cmd.Flags().Bool("playlist", false, "print the default rotation order instead")
	return cmd
}

func countHeader() string {
	var b strings.Builder
	for n := 0; n <= core.MaxWindow; n++ {
		fmt.Fprintf(&b, "%d", n)
	}
	return b.String()
}

func marks(table []bool) string {
	var b strings.Builder
	for _, v := range table {
		if v {
			b.WriteByte('#')
		} else {
			b.WriteByte('.')
		}
	}
	return b.String()
}
