package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"batchcensor/internal/stats"
)

func newStatsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show statistics about all configurations loaded",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, _, err := ctx.buildPlan()
			if err != nil {
				return err
			}

			counts := stats.Collect(plan.Tasks)
			out := cmd.OutOrStdout()
			if len(counts) == 0 {
				fmt.Fprintln(out, "No censored words in any loaded configuration")
				return nil
			}

			rows := make([][]string, 0, len(counts))
			for _, c := range counts {
				rows = append(rows, []string{c.Word, strconv.FormatUint(c.N, 10)})
			}
			table := renderTable([]string{"Word", "Count"}, rows, []columnAlignment{alignLeft, alignRight})
			fmt.Fprintln(out, table)
			fmt.Fprintf(out, "%d replacement(s) across %d word(s)\n", stats.Total(counts), len(counts))
			return nil
		},
	}
}
