package batch

import (
	"context"

	"github.com/maxkimambo/batchcli/internal/logger"
	"github.com/maxkimambo/batchcli/internal/progress"
	"github.com/maxkimambo/batchcli/internal/script"
	"github.com/maxkimambo/batchcli/internal/taskmanager"
)

// LoadScript reads and validates the script named in cfg
func LoadScript(cfg *Config) (*script.Script, error) {
	cfg = cfg.withDefaults()
	return script.Load(cfg.Fs, cfg.ScriptPath)
}

// Run loads the script named in cfg and runs its tasks
func Run(ctx context.Context, cfg *Config) (*taskmanager.RunResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s, err := LoadScript(cfg)
	if err != nil {
		return nil, err
	}

	logger.Op.WithFields(map[string]interface{}{
		"script": s.Name,
		"tasks":  len(s.Tasks),
		"steps":  s.StepCount(),
	}).Debug("Script loaded")

	return runTasks(ctx, cfg, s.Build(taskmanager.NewSharedContext(), nil))
}

// RunTasks runs tasks in order through a presenter bound to the configured console
func RunTasks(ctx context.Context, cfg *Config, tasks []taskmanager.Task) (*taskmanager.RunResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return runTasks(ctx, cfg, tasks)
}

func runTasks(ctx context.Context, cfg *Config, tasks []taskmanager.Task) (*taskmanager.RunResult, error) {
	presenter := progress.NewPresenter(NewConsole(cfg), &progress.PresenterConfig{
		MaxAttempts: cfg.MaxAttempts,
	})

	runner := taskmanager.NewRunner(presenter)
	for _, task := range tasks {
		runner.AddTask(task)
	}

	return runner.Run(ctx)
}
