package taskmanager

import "context"

// Status is the outcome of a task run.
type Status int

const (
	// StatusOK means the task completed and the batch can go on
	StatusOK Status = iota
	// StatusFailed means the task failed and no further task must run
	StatusFailed
	// StatusSkipped marks tasks never run because an earlier one failed.
	// Tasks do not return it.
	StatusSkipped
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusFailed:
		return "failed"
	case StatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Channel is what a running task uses to talk to the user.
type Channel interface {
	Message(text string)
	Ask(question string, options []string, def string) (string, error)
	Confirm(question string) (bool, error)
	Negate(question string) (bool, error)
	Select(question string, values []string) (string, error)
	Choose(question string, values []string) (string, error)
}

// Presenter is a Channel that also tracks the progress of the batch.
type Presenter interface {
	Channel
	SetExpectedTaskCount(count int) error
	NewTask(name string) error
}

// Task is a named unit of work run once by the Runner.
//
// Run reports an expected failure with StatusFailed. A non-nil error is
// reserved for conditions that must abort the whole run, such as a usage
// error from the channel or a console that can no longer be read.
type Task interface {
	Name() string
	Run(ctx context.Context, ch Channel) (Status, error)
}

// TaskFunc is the function signature for a task's execution logic.
type TaskFunc func(ctx context.Context, ch Channel) (Status, error)

// FuncTask adapts a TaskFunc to the Task interface.
type FuncTask struct {
	name    string
	handler TaskFunc
}

// NewTask creates a task named name running handler. A nil handler does nothing.
func NewTask(name string, handler TaskFunc) *FuncTask {
	return &FuncTask{name: name, handler: handler}
}

// Name returns the task name
func (t *FuncTask) Name() string {
	return t.name
}

// Run executes the handler
func (t *FuncTask) Run(ctx context.Context, ch Channel) (Status, error) {
	if t.handler == nil {
		return StatusOK, nil
	}
	return t.handler(ctx, ch)
}

func (t *FuncTask) String() string {
	return t.name
}

// SameTask reports whether a and b are the same task. Tasks are identified by name.
func SameTask(a, b Task) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Name() == b.Name()
}
