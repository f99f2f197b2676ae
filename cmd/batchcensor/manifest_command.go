package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newManifestCommand(ctx *commandContext) *cobra.Command {
	var fileFlag string

	cmd := &cobra.Command{
		Use:   "manifest",
		Short: "Write the .oiv package manifest for the directories a run would modify",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, _, err := ctx.buildPlan()
			if err != nil {
				return err
			}
			if len(plan.Modified) == 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), "nothing to package: no directories are modified")
				return nil
			}
			return writeManifest(cmd.OutOrStdout(), fileFlag, plan.Modified)
		},
	}

	cmd.Flags().StringVarP(&fileFlag, "file", "f", "-", "Where to write the manifest (- for stdout)")
	return cmd
}
