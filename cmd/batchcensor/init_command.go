package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"batchcensor/internal/censor"
	"batchcensor/internal/fileutil"
)

func newInitCommand(ctx *commandContext) *cobra.Command {
	var fileFlag string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Complete loaded configurations with entries for missing files",
		Long: "Init adds every file that lacks censor configuration to the document\n" +
			"governing its directory, marked with a [missing] transcript, and writes\n" +
			"the completed configurations back out as a YAML stream.",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, sources, err := ctx.buildPlan()
			if err != nil {
				return err
			}
			if len(plan.Unaccounted) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "nothing to initialize: there are no missing files!")
				return nil
			}

			missing, err := censor.ParseTranscript("[missing]")
			if err != nil {
				return err
			}

			byPath := make(map[string]*censor.Config, len(sources))
			configs := make([]*censor.Config, 0, len(sources))
			for _, src := range sources {
				byPath[src.ConfigPath] = src.Config
				configs = append(configs, src.Config)
			}

			for _, f := range plan.Unaccounted {
				cfg, ok := byPath[f.ConfigPath]
				if !ok {
					continue
				}
				if err := cfg.InsertFile(f.Dir, f.RelToDir, missing); err != nil {
					return fmt.Errorf("%s: %w", f.Path, err)
				}
			}

			for _, cfg := range configs {
				cfg.Optimize()
			}

			if fileFlag == "" || fileFlag == "-" {
				return censor.Encode(cmd.OutOrStdout(), configs)
			}
			return fileutil.WithAtomicFile(fileFlag, func(f *os.File) error {
				return censor.Encode(f, configs)
			})
		},
	}

	cmd.Flags().StringVarP(&fileFlag, "file", "f", "-", "Where to write the completed configurations (- for stdout)")
	return cmd
}
