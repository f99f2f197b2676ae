package main

import (
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"batchcensor/internal/generator"
	"batchcensor/internal/logging"
	"batchcensor/internal/reconcile"
	"batchcensor/internal/runner"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var listFlag bool
	var toneFlag bool
	var manifestFlag string
	var workersFlag int

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Censor every configured file into the output tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			signalCtx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			settings, err := ctx.ensureSettings()
			if err != nil {
				return err
			}
			logger, err := ctx.newLogger()
			if err != nil {
				return err
			}

			plan, sources, err := ctx.buildPlan()
			if err != nil {
				return err
			}
			reportFindings(cmd.ErrOrStderr(), plan, listFlag)

			var gen generator.Generator = generator.Silence{}
			if toneFlag {
				gen = generator.Tone{
					Frequency: settings.Tone.Frequency,
					Amplitude: settings.Tone.Amplitude,
				}
			}

			workers := settings.Processing.Workers
			if workersFlag > 0 {
				workers = workersFlag
			}

			lockPath, err := runLockPath(sources)
			if err != nil {
				return err
			}

			runLogger := logging.WithComponent(logger, "runner").
				With(logging.String("run_id", uuid.NewString()))

			var progress io.Writer
			if isatty.IsTerminal(os.Stderr.Fd()) {
				progress = os.Stderr
			}

			runLogger.Info("starting run", logging.Int("tasks", len(plan.Tasks)))
			if err := runner.Run(signalCtx, plan.Tasks, runner.Options{
				Workers:   workers,
				Generator: gen,
				Logger:    runLogger,
				Progress:  progress,
				LockPath:  lockPath,
			}); err != nil {
				return err
			}

			if manifestFlag != "" {
				if err := writeManifest(cmd.OutOrStdout(), manifestFlag, plan.Modified); err != nil {
					return err
				}
			}

			runLogger.Info("run complete", logging.Int("tasks", len(plan.Tasks)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&listFlag, "list", false, "List files which will be muted since they don't have a configuration")
	cmd.Flags().BoolVar(&toneFlag, "tone", false, "Replace censored sections with a tone instead of blank audio")
	cmd.Flags().StringVar(&manifestFlag, "manifest", "", "Where to write the .oiv manifest after the run (- for stdout)")
	cmd.Flags().IntVar(&workersFlag, "workers", 0, "Parallel censoring workers (0 uses the settings value or one per CPU)")
	return cmd
}

// runLockPath derives the lock guarding the output tree. Runs with multiple
// outputs lock the first; concurrent runs against the same configurations
// always collide on it.
func runLockPath(sources []reconcile.Source) (string, error) {
	if len(sources) == 0 {
		return "", nil
	}
	output := sources[0].Output
	if err := os.MkdirAll(output, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(output, ".batchcensor.lock"), nil
}
