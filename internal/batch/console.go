package batch

import (
	"os"

	"github.com/maxkimambo/batchcli/internal/console"
	"github.com/maxkimambo/batchcli/internal/logger"
	"github.com/maxkimambo/batchcli/internal/progress"
)

// NewConsole picks the console matching the configuration. Scripted
// answers come first; once they run out, questions go to the unattended
// console with AutoApprove, otherwise to the user.
func NewConsole(cfg *Config) progress.Console {
	cfg = cfg.withDefaults()
	colors := useColors(cfg)

	var base progress.Console
	switch {
	case cfg.AutoApprove:
		base = console.NewDefaults(cfg.Stdout, colors)
	case cfg.UI == UIPrompt && interactiveInput(cfg):
		base = console.NewPrompt(cfg.Stdin, cfg.Stdout)
	default:
		base = console.NewTerminal(cfg.Stdin, cfg.Stdout, colors)
	}

	logger.Op.WithFields(map[string]interface{}{
		"ui":           cfg.UI,
		"auto_approve": cfg.AutoApprove,
		"answers":      len(cfg.Answers),
		"colors":       colors,
	}).Debug("Console selected")

	if len(cfg.Answers) == 0 {
		return base
	}
	return console.NewScripted(cfg.Answers...).WithEcho(cfg.Stdout).WithFallback(base)
}

// interactiveInput reports whether answers come from a terminal. The prompt
// UI needs one and falls back to plain input otherwise.
func interactiveInput(cfg *Config) bool {
	f, ok := cfg.Stdin.(*os.File)
	return ok && console.IsInteractive(f)
}

func useColors(cfg *Config) bool {
	f, ok := cfg.Stdout.(*os.File)
	if !ok {
		return false
	}
	return console.ShouldColor(f, cfg.NoColor)
}
