package console

import (
	stderrors "errors"
	"fmt"
	"io"

	batcherrors "github.com/maxkimambo/batchcli/internal/errors"
)

// ErrNoMoreAnswers is wrapped by the error returned when a Scripted console
// without fallback has used all of its answers.
var ErrNoMoreAnswers = stderrors.New("no more scripted answers")

// Asker is the reading half of a console
type Asker interface {
	Ask(message string) (string, error)
}

// Scripted answers questions from a fixed queue and records everything it
// is sent. It backs the --answer flag and serves as a test double.
type Scripted struct {
	answers    []string
	echo       io.Writer
	fallback   Asker
	logged     []string
	asked      []string
	transcript []string
}

// NewScripted creates a console answering with answers in order
func NewScripted(answers ...string) *Scripted {
	queue := make([]string, len(answers))
	copy(queue, answers)
	return &Scripted{answers: queue}
}

// WithEcho makes the console print every line and answer to w
func (s *Scripted) WithEcho(w io.Writer) *Scripted {
	s.echo = w
	return s
}

// WithFallback makes the console delegate questions to asker once the queue is empty
func (s *Scripted) WithFallback(asker Asker) *Scripted {
	s.fallback = asker
	return s
}

// Log records message
func (s *Scripted) Log(message string) {
	s.logged = append(s.logged, message)
	s.transcript = append(s.transcript, message)
	if s.echo != nil {
		fmt.Fprintln(s.echo, message)
	}
}

// Ask records message and returns the next queued answer
func (s *Scripted) Ask(message string) (string, error) {
	s.asked = append(s.asked, message)
	s.transcript = append(s.transcript, message)

	if len(s.answers) == 0 {
		if s.fallback != nil {
			return s.fallback.Ask(message)
		}
		return "", batcherrors.NewConsoleReadError(message, ErrNoMoreAnswers)
	}

	answer := s.answers[0]
	s.answers = s.answers[1:]
	if s.echo != nil {
		fmt.Fprintln(s.echo, message+" "+answer)
	}
	return answer, nil
}

// Logged returns the lines sent with Log
func (s *Scripted) Logged() []string {
	return s.logged
}

// Asked returns the prompts sent with Ask
func (s *Scripted) Asked() []string {
	return s.asked
}

// Transcript returns every line and prompt in the order they were sent
func (s *Scripted) Transcript() []string {
	return s.transcript
}

// Remaining returns the number of answers not used yet
func (s *Scripted) Remaining() int {
	return len(s.answers)
}
