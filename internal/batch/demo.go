package batch

import (
	"context"

	"github.com/maxkimambo/batchcli/internal/taskmanager"
)

var demoSteps = []string{
	"Put oil in the pan",
	"Turn fire on",
	"Break the egg",
	"Put the egg in the pan",
	"Wait the egg is cooked",
	"Put the egg in the dish",
	"Add salt to the egg and eat it!",
}

// DemoTasks returns the fried egg batch. Every task prints "...". The
// interactive version also asks whether the gas is open and how to salt
// the egg.
func DemoTasks(interactive bool) []taskmanager.Task {
	tasks := make([]taskmanager.Task, 0, len(demoSteps))
	for _, name := range demoSteps {
		tasks = append(tasks, taskmanager.NewTask(name, printDots))
	}

	if interactive {
		tasks[1] = taskmanager.NewTask(demoSteps[1], turnFireOn)
		tasks[6] = taskmanager.NewTask(demoSteps[6], addSalt)
	}
	return tasks
}

func printDots(ctx context.Context, ch taskmanager.Channel) (taskmanager.Status, error) {
	ch.Message("...")
	return taskmanager.StatusOK, nil
}

func turnFireOn(ctx context.Context, ch taskmanager.Channel) (taskmanager.Status, error) {
	open, err := ch.Confirm("Is the gas open?")
	if err != nil {
		return taskmanager.StatusFailed, err
	}
	if !open {
		ch.Message("No gas, no fire")
		return taskmanager.StatusFailed, nil
	}
	ch.Message("...")
	return taskmanager.StatusOK, nil
}

func addSalt(ctx context.Context, ch taskmanager.Channel) (taskmanager.Status, error) {
	salt, err := ch.Choose("How much salt?", []string{"a pinch", "a spoon", "none"})
	if err != nil {
		return taskmanager.StatusFailed, err
	}
	ch.Message("Adding " + salt + ", enjoy!")
	return taskmanager.StatusOK, nil
}
