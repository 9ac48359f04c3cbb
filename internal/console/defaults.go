package console

import (
	"fmt"
	"io"
)

// Defaults never waits for the user: every question gets an empty answer,
// which the presenter resolves to the question's default.
type Defaults struct {
	out    io.Writer
	colors bool
}

// NewDefaults creates an unattended console writing to out
func NewDefaults(out io.Writer, colors bool) *Defaults {
	return &Defaults{out: out, colors: colors}
}

// Log writes message on its own line
func (d *Defaults) Log(message string) {
	fmt.Fprintln(d.out, d.paint(message))
}

// Ask writes message and answers with an empty string
func (d *Defaults) Ask(message string) (string, error) {
	fmt.Fprintln(d.out, d.paint(message))
	return "", nil
}

func (d *Defaults) paint(line string) string {
	if !d.colors {
		return line
	}
	return Colorize(line)
}
