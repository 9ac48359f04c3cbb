package taskmanager

import "time"

// TaskReport is the outcome of one task in a run
type TaskReport struct {
	Name     string
	Index    int
	Status   Status
	Duration time.Duration
	Err      error
}

// RunResult contains the results of a run
type RunResult struct {
	RunID      string
	Tasks      []TaskReport
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	FailedTask string // Name of the task that stopped the run, empty if none
}

func newRunResult(runID string, tasks []Task) *RunResult {
	reports := make([]TaskReport, len(tasks))
	for i, task := range tasks {
		reports[i] = TaskReport{
			Name:   task.Name(),
			Index:  i + 1,
			Status: StatusSkipped,
		}
	}

	return &RunResult{
		RunID:     runID,
		Tasks:     reports,
		StartTime: time.Now(),
	}
}

func (r *RunResult) finish() {
	r.EndTime = time.Now()
	r.Duration = r.EndTime.Sub(r.StartTime)
}

// Success reports whether every task ran and none failed
func (r *RunResult) Success() bool {
	return r.FailedTask == "" && r.Count(StatusSkipped) == 0
}

// Count returns the number of tasks with the given status
func (r *RunResult) Count(status Status) int {
	n := 0
	for _, task := range r.Tasks {
		if task.Status == status {
			n++
		}
	}
	return n
}
