// Package console provides the Console implementations the presenter talks to:
// an interactive terminal, a promptui prompt, a scripted answer queue and an
// unattended console that always takes the default.
package console

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	batcherrors "github.com/maxkimambo/batchcli/internal/errors"
)

var statusColors = map[string][]color.Attribute{
	"...": {color.FgCyan},
	"?":   {color.FgYellow, color.Bold},
	"-":   {color.FgHiBlack},
}

var progressColor = []color.Attribute{color.FgGreen, color.Bold}

// Terminal reads answers line by line from an input stream and writes lines
// to an output stream. With colors enabled the bracketed status of each line
// is painted according to its kind.
type Terminal struct {
	in     *bufio.Reader
	out    io.Writer
	colors bool
}

// NewTerminal creates a terminal console over in and out
func NewTerminal(in io.Reader, out io.Writer, colors bool) *Terminal {
	return &Terminal{
		in:     bufio.NewReader(in),
		out:    out,
		colors: colors,
	}
}

// Log writes message on its own line
func (t *Terminal) Log(message string) {
	fmt.Fprintln(t.out, t.paint(message))
}

// Ask writes message followed by a space and reads one line. The returned
// answer keeps its line terminator. A stream closed before any character
// was typed is a console error.
func (t *Terminal) Ask(message string) (string, error) {
	fmt.Fprint(t.out, t.paint(message)+" ")

	line, err := t.in.ReadString('\n')
	if err != nil {
		if stderrors.Is(err, io.EOF) {
			if line != "" {
				return line, nil
			}
			fmt.Fprintln(t.out)
			return "", batcherrors.NewConsoleInterruptedError(message, err)
		}
		return "", batcherrors.NewConsoleReadError(message, err)
	}

	return line, nil
}

func (t *Terminal) paint(line string) string {
	if !t.colors {
		return line
	}
	return Colorize(line)
}

// Colorize paints the status part of a presenter line, from the opening
// bracket to the closing one. Lines that do not start with a status are
// returned unchanged.
func Colorize(line string) string {
	end := strings.Index(line, "]")
	if !strings.HasPrefix(line, "[") || end < 0 {
		return line
	}

	status, rest := line[:end+1], line[end+1:]
	token := strings.TrimSpace(status[1:end])

	attrs, ok := statusColors[token]
	if !ok {
		attrs = progressColor
	}

	c := color.New(attrs...)
	c.EnableColor()
	return c.Sprint(status) + rest
}

// ShouldColor reports whether output written to f can carry ANSI colors
func ShouldColor(f *os.File, noColor bool) bool {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// IsInteractive reports whether f is attached to a terminal a user can type in
func IsInteractive(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
