package progress

import (
	"strconv"
	"strings"

	batcherrors "github.com/maxkimambo/batchcli/internal/errors"
	"github.com/maxkimambo/batchcli/internal/logger"
)

// PresenterConfig contains configuration for the presenter
type PresenterConfig struct {
	// MaxAttempts caps how many unacceptable answers a question with options
	// tolerates before failing. Zero keeps asking forever.
	MaxAttempts int

	// ListAllSentinel is the answer that makes Select and Choose print every value
	ListAllSentinel string
}

// DefaultPresenterConfig returns a default configuration
func DefaultPresenterConfig() *PresenterConfig {
	return &PresenterConfig{
		MaxAttempts:     0,
		ListAllSentinel: "L",
	}
}

var yesNo = []string{"Y", "N"}

// Presenter tracks the progress of a batch of tasks and sends every message,
// task announcement and question to a Console using one bracketed line format:
//
//	[ ... ] message
//	[ 1/3 ] task name
//	[  ?  ] question (Y|N) [Y]
//
// The current task number is derived from the calls to NewTask.
type Presenter struct {
	console       Console
	config        *PresenterConfig
	expectedTasks int
	currentTask   int
}

// NewPresenter creates a presenter writing to console. A nil config uses
// DefaultPresenterConfig.
func NewPresenter(console Console, config *PresenterConfig) *Presenter {
	cfg := DefaultPresenterConfig()
	if config != nil {
		cfg.MaxAttempts = config.MaxAttempts
		if config.ListAllSentinel != "" {
			cfg.ListAllSentinel = config.ListAllSentinel
		}
	}

	return &Presenter{
		console: console,
		config:  cfg,
	}
}

// SetExpectedTaskCount sets the number of tasks the presenter will announce.
// The current task number is not reset.
func (p *Presenter) SetExpectedTaskCount(count int) error {
	if count < 0 {
		return batcherrors.NewNegativeTaskCountError(count)
	}
	p.expectedTasks = count
	return nil
}

// ExpectedTaskCount returns the number of tasks the presenter expects
func (p *Presenter) ExpectedTaskCount() int {
	return p.expectedTasks
}

// CurrentTask returns the number of the last announced task, 0 before the first one
func (p *Presenter) CurrentTask() int {
	return p.currentTask
}

// Message sends "[ ... ] text" to the console.
func (p *Presenter) Message(text string) {
	p.console.Log(FormatMessage(text))
}

// NewTask announces that the task called name is starting.
// It fails once the expected task count has been reached.
func (p *Presenter) NewTask(name string) error {
	if p.currentTask >= p.expectedTasks {
		return batcherrors.NewTaskCountExceededError(name, p.expectedTasks)
	}

	p.currentTask++
	p.console.Log(FormatTask(p.currentTask, p.expectedTasks, name))
	return nil
}

// Ask sends the question to the console and returns the answer.
//
// Answers are trimmed of surrounding whitespace. Without options the first
// answer is returned, or def when it is empty. With options the answer must be
// one of them (or its lowercase form) and keeps its case; an empty answer
// returns def and anything else asks again.
// Options without a default are a usage error.
func (p *Presenter) Ask(question string, options []string, def string) (string, error) {
	if len(options) > 0 && def == "" {
		return "", batcherrors.NewOptionsWithoutDefaultError(question, options)
	}

	if len(options) == 0 {
		answer, err := p.readAnswer(question, nil, def)
		if err != nil {
			return "", err
		}
		if answer == "" {
			return def, nil
		}
		return answer, nil
	}

	return p.askWithOptions(question, options, def)
}

func (p *Presenter) askWithOptions(question string, options []string, def string) (string, error) {
	valid := make(map[string]struct{}, len(options)*2)
	for _, option := range options {
		valid[option] = struct{}{}
		valid[strings.ToLower(option)] = struct{}{}
	}

	for attempt := 1; ; attempt++ {
		answer, err := p.readAnswer(question, options, def)
		if err != nil {
			return "", err
		}

		if _, ok := valid[answer]; ok {
			return answer, nil
		}
		if answer == "" {
			return def, nil
		}

		logger.Op.WithFields(map[string]interface{}{
			"question": question,
			"answer":   answer,
			"attempt":  attempt,
		}).Debug("Answer not accepted, asking again")

		if p.config.MaxAttempts > 0 && attempt >= p.config.MaxAttempts {
			return "", batcherrors.NewTooManyAttemptsError(question, attempt)
		}
	}
}

// Confirm asks a Y/N question defaulting to Y and returns true when the answer is Y.
func (p *Presenter) Confirm(question string) (bool, error) {
	answer, err := p.Ask(question, yesNo, "Y")
	if err != nil {
		return false, err
	}
	return strings.EqualFold(answer, "Y"), nil
}

// Negate asks a Y/N question defaulting to N and returns true when the answer is N.
func (p *Presenter) Negate(question string) (bool, error) {
	answer, err := p.Ask(question, yesNo, "N")
	if err != nil {
		return false, err
	}
	return strings.EqualFold(answer, "N"), nil
}

// Select asks for one of values, the first one being the default.
// Answering with the list-all sentinel prints the values and asks again.
// An answer that is not one of values falls back to the default.
func (p *Presenter) Select(question string, values []string) (string, error) {
	if len(values) == 0 {
		return "", batcherrors.NewNoValuesError(question, "Value selection")
	}

	def := values[0]
	for {
		answer, err := p.Ask(question, nil, def)
		if err != nil {
			return "", err
		}

		if answer == p.config.ListAllSentinel {
			for _, value := range values {
				p.console.Log(FormatListItem(value))
			}
			continue
		}

		for _, value := range values {
			if answer == value {
				return value, nil
			}
		}
		return def, nil
	}
}

// Choose is Select answered by position: the answer is the 1-based index of
// the value. Invalid or out of range indexes fall back to the first value.
func (p *Presenter) Choose(question string, values []string) (string, error) {
	if len(values) == 0 {
		return "", batcherrors.NewNoValuesError(question, "Value choice")
	}

	for {
		answer, err := p.Ask(question, nil, "1")
		if err != nil {
			return "", err
		}

		if answer == p.config.ListAllSentinel {
			for i, value := range values {
				p.console.Log(FormatListItem(strconv.Itoa(i+1) + ". " + value))
			}
			continue
		}

		index, err := strconv.Atoi(answer)
		if err != nil || index < 1 || index > len(values) {
			return values[0], nil
		}
		return values[index-1], nil
	}
}

// readAnswer prompts once and returns the answer without surrounding blanks
func (p *Presenter) readAnswer(question string, options []string, def string) (string, error) {
	prompt := FormatQuestion(question, options, def)

	raw, err := p.console.Ask(prompt)
	if err != nil {
		if batcherrors.IsConsoleError(err) {
			return "", err
		}
		return "", batcherrors.NewConsoleReadError(prompt, err)
	}

	return strings.TrimSpace(raw), nil
}
