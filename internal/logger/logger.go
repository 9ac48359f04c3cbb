package logger

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

// LogType selects where the output router sends an entry
type LogType string

const (
	UserLog LogType = "user"
	OpLog   LogType = "op"
)

const (
	markerSuccess = "✓"
	markerFailure = "✗"
	markerWarning = "⚠"
)

var (
	User *UserLogger // Clean messages for users (stdout) with status markers
	Op   *OpLogger   // Detailed operational logs (stderr)

	// base is shared by User and Op, Setup reconfigures it in place
	base *logrus.Logger

	// routerHook is the hook installed by the last Setup call
	routerHook *OutputRouterHook
)

// init ensures loggers are never nil
func init() {
	base = logrus.New()
	base.SetOutput(os.Stdout)
	base.SetLevel(logrus.InfoLevel)
	base.SetFormatter(&CLIFormatter{DisableTimestamp: true, DisableLevel: true})

	User = &UserLogger{logger: base}
	Op = &OpLogger{logger: base}
}

// UserLogger prints batch outcomes prefixed with a status marker
type UserLogger struct {
	logger *logrus.Logger
}

// OpLogger writes structured diagnostics
type OpLogger struct {
	logger *logrus.Logger
}

func (u *UserLogger) entry(marker string) *logrus.Entry {
	return u.logger.WithFields(logrus.Fields{
		"log_type": string(UserLog),
		"marker":   marker,
	})
}

// Successf reports something that finished as expected
func (u *UserLogger) Successf(format string, args ...interface{}) {
	u.entry(markerSuccess).Infof(format, args...)
}

// Failuref reports a batch or script that did not make it
func (u *UserLogger) Failuref(format string, args ...interface{}) {
	u.entry(markerFailure).Infof(format, args...)
}

func (u *UserLogger) Warn(msg string) {
	u.entry(markerWarning).Warn(msg)
}

func (o *OpLogger) Debug(msg string) {
	o.logger.WithField("log_type", string(OpLog)).Debug(msg)
}

func (o *OpLogger) WithFields(fields map[string]interface{}) *logrus.Entry {
	if fields == nil {
		fields = make(map[string]interface{})
	}
	fields["log_type"] = string(OpLog)
	return o.logger.WithFields(fields)
}

// CLIFormatter provides clean output for CLI applications
type CLIFormatter struct {
	DisableTimestamp bool
	DisableLevel     bool
	DisableColors    bool
}

func (f *CLIFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer

	// Simple clean format: just the message for user-facing logs
	if f.DisableLevel && f.DisableTimestamp {
		b.WriteString(entry.Message)
		b.WriteByte('\n')
		return b.Bytes(), nil
	}

	if !f.DisableLevel {
		levelColor := ""
		resetColor := ""
		if !f.DisableColors {
			switch entry.Level {
			case logrus.ErrorLevel:
				levelColor = "\033[31m" // Red
			case logrus.WarnLevel:
				levelColor = "\033[33m" // Yellow
			case logrus.InfoLevel:
				levelColor = "\033[36m" // Cyan
			case logrus.DebugLevel:
				levelColor = "\033[37m" // White
			}
			resetColor = "\033[0m"
		}

		b.WriteString(levelColor)
		b.WriteString(strings.ToUpper(entry.Level.String()))
		b.WriteString(resetColor)
		b.WriteString(": ")
	}

	b.WriteString(entry.Message)

	// log_type and marker only drive routing
	fields := make([]string, 0, len(entry.Data))
	for k, v := range entry.Data {
		if k == "log_type" || k == "marker" {
			continue
		}
		fields = append(fields, fmt.Sprintf("%s=%v", k, v))
	}
	if len(fields) > 0 {
		b.WriteString(" ")
		b.WriteString(strings.Join(fields, " "))
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}

// Setup configures level, format and routing of the shared logger.
// LOG_MODE (quiet|verbose|debug) and LOG_FORMAT (json|text) override the flags.
func Setup(verbose bool, jsonLogs bool, quiet bool) {
	if envLogMode := os.Getenv("LOG_MODE"); envLogMode != "" {
		switch envLogMode {
		case "quiet":
			quiet = true
			verbose = false
		case "verbose", "debug":
			verbose = true
			quiet = false
		}
	}

	if envLogFormat := os.Getenv("LOG_FORMAT"); envLogFormat != "" {
		switch envLogFormat {
		case "json":
			jsonLogs = true
		case "text":
			jsonLogs = false
		}
	}

	internalLogger := base

	var level logrus.Level
	if quiet {
		level = logrus.ErrorLevel
	} else if verbose {
		level = logrus.DebugLevel
	} else {
		level = logrus.InfoLevel
	}

	// Clear any existing hooks
	internalLogger.Hooks = make(logrus.LevelHooks)

	hook := NewOutputRouterHook()
	if jsonLogs {
		internalLogger.SetFormatter(&logrus.JSONFormatter{})
		hook.UserFormatter = &logrus.JSONFormatter{}
		hook.OpFormatter = &logrus.JSONFormatter{}
	} else {
		internalLogger.SetFormatter(&logrus.TextFormatter{}) // Dummy formatter

		hook.UserFormatter = &CLIFormatter{
			DisableTimestamp: true,
			DisableLevel:     true,
			DisableColors:    false,
		}

		if verbose {
			hook.OpFormatter = &logrus.TextFormatter{
				FullTimestamp: true,
				ForceColors:   isatty.IsTerminal(os.Stderr.Fd()),
			}
		} else {
			hook.OpFormatter = &CLIFormatter{
				DisableTimestamp: true,
				DisableLevel:     false,
				DisableColors:    !isatty.IsTerminal(os.Stderr.Fd()),
			}
		}
	}

	internalLogger.SetOutput(io.Discard) // Output handled by hooks
	internalLogger.SetLevel(level)
	internalLogger.AddHook(hook)
	routerHook = hook
}

// SetWriters redirects user and op output of the router installed by Setup.
// Nil writers leave the current destination in place.
func SetWriters(userWriter, opWriter io.Writer) {
	if routerHook == nil {
		return
	}
	if userWriter != nil {
		routerHook.UserWriter = userWriter
	}
	if opWriter != nil {
		routerHook.OpWriter = opWriter
	}
}
