// Package batch wires a script, a console and the runner together for the CLI.
package batch

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
)

// UIMode selects how questions are read from the user
type UIMode string

const (
	// UIPlain reads answers line by line
	UIPlain UIMode = "plain"
	// UIPrompt reads answers with an editable promptui prompt
	UIPrompt UIMode = "prompt"
)

// Config holds everything a batch run needs
type Config struct {
	ScriptPath  string
	Answers     []string // Answers consumed before asking the user
	AutoApprove bool     // Every question takes its default
	UI          UIMode
	MaxAttempts int // Rejected answers tolerated per question, 0 for no limit
	NoColor     bool

	Stdin  io.Reader
	Stdout io.Writer
	Fs     afero.Fs
}

// Validate checks the values that came from flags
func (c *Config) Validate() error {
	switch c.UI {
	case "", UIPlain, UIPrompt:
	default:
		return fmt.Errorf("invalid --ui value %q, expected %q or %q", c.UI, UIPlain, UIPrompt)
	}

	if c.MaxAttempts < 0 {
		return fmt.Errorf("--max-attempts must be 0 or more, got %d", c.MaxAttempts)
	}

	return nil
}

// withDefaults fills unset streams and filesystem with the process ones
func (c *Config) withDefaults() *Config {
	cfg := *c
	if cfg.UI == "" {
		cfg.UI = UIPlain
	}
	if cfg.Stdin == nil {
		cfg.Stdin = os.Stdin
	}
	if cfg.Stdout == nil {
		cfg.Stdout = os.Stdout
	}
	if cfg.Fs == nil {
		cfg.Fs = afero.NewOsFs()
	}
	return &cfg
}
