package console

import (
	stderrors "errors"
	"fmt"
	"io"

	"github.com/manifoldco/promptui"

	batcherrors "github.com/maxkimambo/batchcli/internal/errors"
)

// promptTemplates keep the presenter line as the whole prompt, without the
// icons promptui adds by default.
var promptTemplates = &promptui.PromptTemplates{
	Prompt:  "{{ . }} ",
	Valid:   "{{ . }} ",
	Invalid: "{{ . }} ",
	Success: "{{ . }} ",
}

// Prompt reads answers with promptui, which gives line editing and history
// on a real terminal.
type Prompt struct {
	in  io.ReadCloser
	out io.WriteCloser
}

// NewPrompt creates a promptui console over in and out
func NewPrompt(in io.Reader, out io.Writer) *Prompt {
	return &Prompt{
		in:  io.NopCloser(in),
		out: nopWriteCloser{out},
	}
}

// Log writes message on its own line
func (p *Prompt) Log(message string) {
	fmt.Fprintln(p.out, message)
}

// Ask shows message as a promptui prompt and returns what was typed
func (p *Prompt) Ask(message string) (string, error) {
	prompt := promptui.Prompt{
		Label:     message,
		Templates: promptTemplates,
		Stdin:     p.in,
		Stdout:    p.out,
	}

	answer, err := prompt.Run()
	if err != nil {
		return "", promptError(message, err)
	}
	return answer, nil
}

// promptError converts promptui failures into console errors
func promptError(message string, err error) error {
	if stderrors.Is(err, promptui.ErrInterrupt) || stderrors.Is(err, promptui.ErrEOF) {
		return batcherrors.NewConsoleInterruptedError(message, err)
	}
	return batcherrors.NewConsoleReadError(message, err)
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
