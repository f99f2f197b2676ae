package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"github.com/gofrs/flock"
	"github.com/schollz/progressbar/v3"

	"batchcensor/internal/generator"
	"batchcensor/internal/logging"
	"batchcensor/internal/reconcile"
)

// ErrLocked reports that another run holds the output lock.
var ErrLocked = errors.New("output is locked by another run")

// Options configures plan execution.
type Options struct {
	// Workers bounds the pool. Zero or negative uses the machine's
	// parallelism.
	Workers int
	// Generator fills censored ranges. Nil falls back to zero samples.
	Generator generator.Generator
	// Logger receives per-task results. Nil discards them.
	Logger *slog.Logger
	// Progress, when non-nil, renders a progress bar there while tasks
	// run.
	Progress io.Writer
	// LockPath, when set, guards the output tree against concurrent runs.
	LockPath string
}

// Run executes every task and returns the joined failures once all of them
// have finished. One task's failure never stops its siblings; cancelling
// ctx stops workers between tasks and reports the tasks that never ran.
func Run(ctx context.Context, tasks []reconcile.Task, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	gen := opts.Generator
	if gen == nil {
		gen = generator.Silence{}
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(tasks) {
		workers = len(tasks)
	}
	if len(tasks) == 0 {
		return nil
	}

	if opts.LockPath != "" {
		lock := flock.New(opts.LockPath)
		locked, err := lock.TryLock()
		if err != nil {
			return fmt.Errorf("acquire run lock %s: %w", opts.LockPath, err)
		}
		if !locked {
			return fmt.Errorf("%w: %s", ErrLocked, opts.LockPath)
		}
		defer func() {
			_ = lock.Unlock()
		}()
	}

	var bar *progressbar.ProgressBar
	if opts.Progress != nil {
		bar = progressbar.NewOptions(len(tasks),
			progressbar.OptionSetWriter(opts.Progress),
			progressbar.OptionSetDescription("censoring"),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}

	jobs := make(chan reconcile.Task, len(tasks))
	results := make(chan error, len(tasks))

	for i := 0; i < workers; i++ {
		go func() {
			for task := range jobs {
				results <- runTask(ctx, task, gen, logger)
				if bar != nil {
					_ = bar.Add(1)
				}
			}
		}()
	}

	for _, task := range tasks {
		jobs <- task
	}
	close(jobs)

	var failures []error
	for i := 0; i < len(tasks); i++ {
		if err := <-results; err != nil {
			failures = append(failures, err)
		}
	}
	return errors.Join(failures...)
}

func runTask(ctx context.Context, task reconcile.Task, gen generator.Generator, logger *slog.Logger) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", task, err)
	}

	var err error
	switch task.Kind {
	case reconcile.Copy:
		err = runCopy(task)
	case reconcile.Process:
		err = runProcess(task, gen)
	case reconcile.Silence:
		err = runSilence(task)
	default:
		err = fmt.Errorf("unknown task kind %d", int(task.Kind))
	}

	if err != nil {
		logger.Error("task failed",
			logging.String("task", task.String()),
			logging.Error(err),
		)
		return fmt.Errorf("%s: %w", task, err)
	}
	logger.Debug("task complete", logging.String("task", task.String()))
	return nil
}
