package script

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/maxkimambo/batchcli/internal/logger"
	"github.com/maxkimambo/batchcli/internal/taskmanager"
)

// CommandFunc runs argv and returns its combined output
type CommandFunc func(ctx context.Context, argv []string) ([]byte, error)

// ExecCommand runs argv as a child process
func ExecCommand(ctx context.Context, argv []string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	return cmd.CombinedOutput()
}

// Build turns every task of the script into a runner task. Answers stored by
// a step are written to shared and can be referenced as ${name} by later
// steps, in this task or the next ones. A nil command runs real processes.
func (s *Script) Build(shared *taskmanager.SharedContext, command CommandFunc) []taskmanager.Task {
	if shared == nil {
		shared = taskmanager.NewSharedContext()
	}
	if command == nil {
		command = ExecCommand
	}

	tasks := make([]taskmanager.Task, 0, len(s.Tasks))
	for _, task := range s.Tasks {
		tasks = append(tasks, &scriptTask{
			name:    task.Name,
			steps:   task.Steps,
			shared:  shared,
			command: command,
		})
	}
	return tasks
}

type scriptTask struct {
	name    string
	steps   []Step
	shared  *taskmanager.SharedContext
	command CommandFunc
}

func (t *scriptTask) Name() string {
	return t.name
}

func (t *scriptTask) Run(ctx context.Context, ch taskmanager.Channel) (taskmanager.Status, error) {
	for i, step := range t.steps {
		if err := ctx.Err(); err != nil {
			return taskmanager.StatusFailed, err
		}

		status, err := t.runStep(ctx, ch, step)
		if err != nil {
			return taskmanager.StatusFailed, fmt.Errorf("step %d: %w", i+1, err)
		}
		if status == taskmanager.StatusFailed {
			logger.Op.WithFields(map[string]interface{}{
				"task": t.name,
				"step": i + 1,
				"kind": step.Kind(),
			}).Debug("Step failed the task")
			return status, nil
		}
	}
	return taskmanager.StatusOK, nil
}

func (t *scriptTask) runStep(ctx context.Context, ch taskmanager.Channel, step Step) (taskmanager.Status, error) {
	switch step.Kind() {
	case KindMessage:
		ch.Message(t.expand(step.Message))

	case KindAsk:
		answer, err := ch.Ask(t.expand(step.Ask.Question), step.Ask.Options, t.expand(step.Ask.Default))
		if err != nil {
			return taskmanager.StatusFailed, err
		}
		t.store(step.Ask.Store, answer)

	case KindConfirm:
		ok, err := ch.Confirm(t.expand(step.Confirm.Question))
		if err != nil {
			return taskmanager.StatusFailed, err
		}
		return t.outcome(step.Confirm, ok), nil

	case KindNegate:
		ok, err := ch.Negate(t.expand(step.Negate.Question))
		if err != nil {
			return taskmanager.StatusFailed, err
		}
		return t.outcome(step.Negate, ok), nil

	case KindSelect:
		value, err := ch.Select(t.expand(step.Select.Question), t.expandAll(step.Select.Values))
		if err != nil {
			return taskmanager.StatusFailed, err
		}
		t.store(step.Select.Store, value)

	case KindChoose:
		value, err := ch.Choose(t.expand(step.Choose.Question), t.expandAll(step.Choose.Values))
		if err != nil {
			return taskmanager.StatusFailed, err
		}
		t.store(step.Choose.Store, value)

	case KindRun:
		return t.runCommand(ctx, ch, t.expandAll(step.Run)), nil

	case KindFail:
		ch.Message(t.expand(step.Fail))
		return taskmanager.StatusFailed, nil

	default:
		return taskmanager.StatusFailed, fmt.Errorf("step defines %d actions, expected exactly one", len(step.Kinds()))
	}

	return taskmanager.StatusOK, nil
}

func (t *scriptTask) outcome(step *ConfirmStep, ok bool) taskmanager.Status {
	t.store(step.Store, strconv.FormatBool(ok))
	if !ok && !step.Continue {
		return taskmanager.StatusFailed
	}
	return taskmanager.StatusOK
}

// runCommand sends every non-blank output line as a message. A command that
// cannot start or exits with a non-zero status fails the task.
func (t *scriptTask) runCommand(ctx context.Context, ch taskmanager.Channel, argv []string) taskmanager.Status {
	logger.Op.WithFields(map[string]interface{}{
		"task":    t.name,
		"command": strings.Join(argv, " "),
	}).Debug("Running command")

	output, err := t.command(ctx, argv)

	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		if line := strings.TrimRight(scanner.Text(), " \t\r"); strings.TrimSpace(line) != "" {
			ch.Message(line)
		}
	}

	if err != nil {
		ch.Message(fmt.Sprintf("%s failed: %v", argv[0], err))
		return taskmanager.StatusFailed
	}
	return taskmanager.StatusOK
}

func (t *scriptTask) store(name, value string) {
	if name != "" {
		t.shared.Set(name, value)
	}
}

// expand replaces ${name} and $name with a stored answer, falling back to
// the environment. Unknown names expand to "".
func (t *scriptTask) expand(text string) string {
	return os.Expand(text, func(name string) string {
		if value, ok := t.shared.Get(name); ok {
			return fmt.Sprint(value)
		}
		return os.Getenv(name)
	})
}

func (t *scriptTask) expandAll(values []string) []string {
	expanded := make([]string, len(values))
	for i, value := range values {
		expanded[i] = t.expand(value)
	}
	return expanded
}
