package taskmanager

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"

	batcherrors "github.com/maxkimambo/batchcli/internal/errors"
	"github.com/maxkimambo/batchcli/internal/logger"
)

// Runner runs tasks one after the other through a Presenter and stops at the
// first task that fails.
type Runner struct {
	presenter Presenter
	tasks     []Task
}

// NewRunner creates a runner announcing its tasks through presenter
func NewRunner(presenter Presenter) *Runner {
	return &Runner{
		presenter: presenter,
		tasks:     []Task{},
	}
}

// AddTask appends a task. It must be called before Run. Tasks with the same
// name are not merged.
func (r *Runner) AddTask(task Task) {
	r.tasks = append(r.tasks, task)
}

// TaskCount returns the number of tasks to run
func (r *Runner) TaskCount() int {
	return len(r.tasks)
}

// Tasks returns the tasks in insertion order
func (r *Runner) Tasks() []Task {
	tasks := make([]Task, len(r.tasks))
	copy(tasks, r.tasks)
	return tasks
}

// Run tells the presenter how many tasks to expect, then announces and runs
// each task in order. It returns after the first task reporting StatusFailed;
// that is not an error. The returned error is set when the run was aborted:
// a usage error, a task error or a cancelled context. The result is never nil.
func (r *Runner) Run(ctx context.Context) (*RunResult, error) {
	result := newRunResult(ulid.Make().String(), r.tasks)
	defer result.finish()

	log := logger.Op.WithFields(map[string]interface{}{"run_id": result.RunID})
	log.WithField("tasks", len(r.tasks)).Debug("Run started")

	if err := r.presenter.SetExpectedTaskCount(len(r.tasks)); err != nil {
		return result, err
	}

	for i, task := range r.tasks {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("run cancelled before task %s: %w", task.Name(), err)
		}

		if err := r.presenter.NewTask(task.Name()); err != nil {
			return result, err
		}

		taskLog := log.WithFields(logrus.Fields{"task": task.Name(), "index": i + 1})
		taskLog.Debug("Task started")

		report := &result.Tasks[i]
		start := time.Now()
		status, err := task.Run(ctx, r.presenter)
		report.Duration = time.Since(start)

		if err != nil {
			report.Status = StatusFailed
			report.Err = err
			result.FailedTask = task.Name()
			taskLog.WithError(err).Debug("Task aborted the run")
			return result, wrapTaskError(task.Name(), err)
		}

		report.Status = status
		taskLog.WithFields(logrus.Fields{
			"status":   status.String(),
			"duration": report.Duration.Round(time.Millisecond),
		}).Debug("Task finished")

		if status == StatusFailed {
			result.FailedTask = task.Name()
			return result, nil
		}
	}

	return result, nil
}

// wrapTaskError keeps structured errors visible to errors.As and turns any
// other error into a task execution error.
func wrapTaskError(taskName string, err error) error {
	var batchErr *batcherrors.BatchError
	if stderrors.As(err, &batchErr) {
		return fmt.Errorf("task %s failed: %w", taskName, err)
	}
	return batcherrors.NewTaskExecutionError(taskName, err)
}
