package batch

import (
	"fmt"
	"io"

	batcherrors "github.com/maxkimambo/batchcli/internal/errors"
	"github.com/maxkimambo/batchcli/internal/taskmanager"
	"github.com/maxkimambo/batchcli/internal/utils"
)

// RenderTaskTable lists every task of the run with its status and duration
func RenderTaskTable(result *taskmanager.RunResult) string {
	table := utils.NewTableFormatter("#", "Task", "Status", "Duration").AlignRight(3)
	for _, task := range result.Tasks {
		duration := "-"
		if task.Status != taskmanager.StatusSkipped {
			duration = utils.FormatDuration(task.Duration)
		}
		table.AddRow(fmt.Sprint(task.Index), task.Name, task.Status.String(), duration)
	}
	return table.String()
}

// RenderSummary returns the closing box of a run: success, stopped by a
// failed task, or aborted by runErr.
func RenderSummary(result *taskmanager.RunResult, runErr error, width int) string {
	var box *utils.Box
	switch {
	case runErr != nil:
		box = utils.NewBox(utils.ErrorMessage, "Batch aborted").
			AddLine(batcherrors.DisplayErrorSummary(runErr))
	case result.Success():
		box = utils.NewBox(utils.SuccessMessage, "Batch completed")
	default:
		box = utils.NewBox(utils.WarningMessage, fmt.Sprintf("Batch stopped at task '%s'", result.FailedTask))
	}

	if width > 0 {
		box.WithWidth(width)
	}

	if result != nil {
		box.AddField("Run ID", result.RunID).
			AddField("Tasks", fmt.Sprintf("%d ok, %d failed, %d skipped",
				result.Count(taskmanager.StatusOK),
				result.Count(taskmanager.StatusFailed),
				result.Count(taskmanager.StatusSkipped))).
			AddField("Duration", utils.FormatDuration(result.Duration))
	}

	return box.Render()
}

// WriteReport writes the task table and the summary box to w
func WriteReport(w io.Writer, result *taskmanager.RunResult, runErr error, width int) {
	fmt.Fprintln(w)
	if result != nil && len(result.Tasks) > 0 {
		fmt.Fprint(w, RenderTaskTable(result))
	}
	fmt.Fprintln(w, RenderSummary(result, runErr, width))
}
