package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var settingsFlag string
	var configFlags []string
	var configDirFlag string
	var rootFlag string
	var outputFlag string
	var logLevelFlag string
	var logFormatFlag string

	ctx := newCommandContext(&settingsFlag, &configFlags, &configDirFlag, &rootFlag, &outputFlag, &logLevelFlag, &logFormatFlag)

	rootCmd := &cobra.Command{
		Use:           "batchcensor",
		Short:         "Censor batches of WAV files from YAML configurations",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&settingsFlag, "settings", "", "Application settings file path")
	rootCmd.PersistentFlags().StringArrayVarP(&configFlags, "config", "c", nil, "Censor configuration to load (repeatable)")
	rootCmd.PersistentFlags().StringVarP(&configDirFlag, "config-dir", "d", "", "Directory searched for .yml censor configurations")
	rootCmd.PersistentFlags().StringVarP(&rootFlag, "root", "r", "", "Root of the project to process")
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "", "Where to build output")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormatFlag, "log-format", "", "Log format (console or json)")

	rootCmd.AddCommand(newRunCommand(ctx))
	rootCmd.AddCommand(newCheckCommand(ctx))
	rootCmd.AddCommand(newStatsCommand(ctx))
	rootCmd.AddCommand(newInitCommand(ctx))
	rootCmd.AddCommand(newManifestCommand(ctx))
	rootCmd.AddCommand(newSettingsCommand(ctx))

	return rootCmd
}
