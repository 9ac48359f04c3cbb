package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/oklog/run"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/maxkimambo/batchcli/internal/batch"
	"github.com/maxkimambo/batchcli/internal/logger"
	"github.com/maxkimambo/batchcli/internal/taskmanager"
	"github.com/maxkimambo/batchcli/internal/utils"
)

// ErrTaskFailed is returned when the batch stopped at a failed task
var ErrTaskFailed = errors.New("a task failed")

var errInterrupted = errors.New("batch interrupted by signal")

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayP("answer", "a", nil, "Answer to the next question, repeat for several questions")
	cmd.Flags().BoolP("yes", "y", false, "Accept the default answer of every question")
	cmd.Flags().String("ui", string(batch.UIPlain), "How questions are read: plain or prompt")
	cmd.Flags().Int("max-attempts", 0, "Rejected answers allowed per question before failing, 0 for no limit")
	cmd.Flags().Bool("no-color", false, "Disable colored output")
}

func createRunConfig(cmd *cobra.Command, scriptPath string) (*batch.Config, error) {
	answers, _ := cmd.Flags().GetStringArray("answer")
	autoApprove, _ := cmd.Flags().GetBool("yes")
	ui, _ := cmd.Flags().GetString("ui")
	maxAttempts, _ := cmd.Flags().GetInt("max-attempts")
	noColor, _ := cmd.Flags().GetBool("no-color")

	cfg := &batch.Config{
		ScriptPath:  scriptPath,
		Answers:     answers,
		AutoApprove: autoApprove,
		UI:          batch.UIMode(ui),
		MaxAttempts: maxAttempts,
		NoColor:     noColor,
		Stdin:       cmd.InOrStdin(),
		Stdout:      cmd.OutOrStdout(),
		Fs:          afero.NewOsFs(),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

type runFunc func(ctx context.Context) (*taskmanager.RunResult, error)

// executeBatch runs fn until it returns or a termination signal arrives,
// then prints the run report.
func executeBatch(cmd *cobra.Command, fn runFunc) error {
	result, err := runWithSignals(cmd.Context(), fn)

	if !quiet {
		batch.WriteReport(cmd.OutOrStdout(), result, err, utils.TerminalWidth(os.Stdout)-8)
	}

	if errors.Is(err, errInterrupted) {
		logger.User.Warn("Batch interrupted, remaining tasks were not run")
		return err
	}
	if err != nil {
		return err
	}
	if !result.Success() {
		logger.Op.WithFields(map[string]interface{}{
			"run_id": result.RunID,
			"task":   result.FailedTask,
		}).Debug("Batch stopped at failed task")
		logger.User.Failuref("Stopped at %q, %d of %d tasks done", result.FailedTask,
			result.Count(taskmanager.StatusOK), len(result.Tasks))
		return fmt.Errorf("%w: %s", ErrTaskFailed, result.FailedTask)
	}

	logger.User.Successf("%d tasks finished in %s", len(result.Tasks), utils.FormatDuration(result.Duration))
	return nil
}

type runOutcome struct {
	result *taskmanager.RunResult
	err    error
}

// runWithSignals runs fn in an actor group next to a signal handler. A
// question blocked on input cannot be cancelled, so the batch runs in its
// own goroutine and the actor gives up on it when interrupted.
func runWithSignals(parent context.Context, fn runFunc) (*taskmanager.RunResult, error) {
	if parent == nil {
		parent = context.Background()
	}

	var (
		g       run.Group
		outcome runOutcome
	)

	// OS signals.
	{
		signalCtx, signalCancel := signal.NotifyContext(parent, syscall.SIGTERM, syscall.SIGINT)
		defer signalCancel()

		g.Add(
			func() error {
				<-signalCtx.Done()
				logger.Op.Debug("Termination signal received")
				return errInterrupted
			},
			func(_ error) {
				signalCancel()
			},
		)
	}

	// Batch.
	{
		ctx, cancel := context.WithCancel(parent)
		defer cancel()

		g.Add(
			func() error {
				done := make(chan runOutcome, 1)
				go func() {
					result, err := fn(ctx)
					done <- runOutcome{result: result, err: err}
				}()

				select {
				case outcome = <-done:
					return outcome.err
				case <-ctx.Done():
					return ctx.Err()
				}
			},
			func(_ error) {
				cancel()
			},
		)
	}

	err := g.Run()
	return outcome.result, err
}
