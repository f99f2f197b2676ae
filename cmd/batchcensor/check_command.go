package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"batchcensor/internal/reconcile"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	var listFlag bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate configurations against the project tree without writing output",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, sources, err := ctx.buildPlan()
			if err != nil {
				return err
			}
			reportFindings(cmd.ErrOrStderr(), plan, listFlag)

			counts := make(map[reconcile.TaskKind]int)
			for _, task := range plan.Tasks {
				counts[task.Kind]++
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d configuration(s) loaded\n", len(sources))
			fmt.Fprintf(out, "%d file(s) will be copied\n", counts[reconcile.Copy])
			fmt.Fprintf(out, "%d file(s) will be censored\n", counts[reconcile.Process])
			fmt.Fprintf(out, "%d file(s) will be silenced\n", counts[reconcile.Silence])
			return nil
		},
	}

	cmd.Flags().BoolVar(&listFlag, "list", false, "List files which will be muted since they don't have a configuration")
	return cmd
}
