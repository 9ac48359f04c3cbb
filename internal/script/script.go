// Package script loads batch scripts written in YAML or TOML and turns them
// into tasks for the runner.
//
// A script is a named list of tasks; each task is a list of steps. A step
// does exactly one thing: print a message, ask a question, run a command or
// fail the task.
//
//	name: fried egg
//	tasks:
//	  - name: Turn fire on
//	    steps:
//	      - confirm:
//	          question: Is the gas open?
//	      - run: ["ignite", "--burner", "${burner}"]
package script

// Script is a batch of tasks run in order
type Script struct {
	Name        string `yaml:"name" toml:"name"`
	Description string `yaml:"description,omitempty" toml:"description,omitempty"`
	Tasks       []Task `yaml:"tasks" toml:"tasks"`
}

// Task is a named list of steps
type Task struct {
	Name  string `yaml:"name" toml:"name"`
	Steps []Step `yaml:"steps" toml:"steps"`
}

// Step holds exactly one action
type Step struct {
	Message string       `yaml:"message,omitempty" toml:"message,omitempty"`
	Ask     *AskStep     `yaml:"ask,omitempty" toml:"ask,omitempty"`
	Confirm *ConfirmStep `yaml:"confirm,omitempty" toml:"confirm,omitempty"`
	Negate  *ConfirmStep `yaml:"negate,omitempty" toml:"negate,omitempty"`
	Select  *SelectStep  `yaml:"select,omitempty" toml:"select,omitempty"`
	Choose  *SelectStep  `yaml:"choose,omitempty" toml:"choose,omitempty"`
	Run     []string     `yaml:"run,omitempty" toml:"run,omitempty"`
	Fail    string       `yaml:"fail,omitempty" toml:"fail,omitempty"`
}

// AskStep asks a free or restricted question
type AskStep struct {
	Question string   `yaml:"question" toml:"question"`
	Options  []string `yaml:"options,omitempty" toml:"options,omitempty"`
	Default  string   `yaml:"default,omitempty" toml:"default,omitempty"`
	Store    string   `yaml:"store,omitempty" toml:"store,omitempty"`
}

// ConfirmStep asks a Y/N question. A negative outcome fails the task
// unless Continue is set.
type ConfirmStep struct {
	Question string `yaml:"question" toml:"question"`
	Store    string `yaml:"store,omitempty" toml:"store,omitempty"`
	Continue bool   `yaml:"continue,omitempty" toml:"continue,omitempty"`
}

// SelectStep picks one of Values, by value or by position
type SelectStep struct {
	Question string   `yaml:"question" toml:"question"`
	Values   []string `yaml:"values" toml:"values"`
	Store    string   `yaml:"store,omitempty" toml:"store,omitempty"`
}

// Kind names the action a step performs
type Kind string

const (
	KindMessage Kind = "message"
	KindAsk     Kind = "ask"
	KindConfirm Kind = "confirm"
	KindNegate  Kind = "negate"
	KindSelect  Kind = "select"
	KindChoose  Kind = "choose"
	KindRun     Kind = "run"
	KindFail    Kind = "fail"
)

// Kinds returns the actions defined on the step, in declaration order.
// A valid step has exactly one.
func (s Step) Kinds() []Kind {
	var kinds []Kind
	if s.Message != "" {
		kinds = append(kinds, KindMessage)
	}
	if s.Ask != nil {
		kinds = append(kinds, KindAsk)
	}
	if s.Confirm != nil {
		kinds = append(kinds, KindConfirm)
	}
	if s.Negate != nil {
		kinds = append(kinds, KindNegate)
	}
	if s.Select != nil {
		kinds = append(kinds, KindSelect)
	}
	if s.Choose != nil {
		kinds = append(kinds, KindChoose)
	}
	if len(s.Run) > 0 {
		kinds = append(kinds, KindRun)
	}
	if s.Fail != "" {
		kinds = append(kinds, KindFail)
	}
	return kinds
}

// Kind returns the single action of a valid step, or "" when the step
// defines none or several.
func (s Step) Kind() Kind {
	kinds := s.Kinds()
	if len(kinds) != 1 {
		return ""
	}
	return kinds[0]
}

// StepCount returns the number of steps across all tasks
func (s *Script) StepCount() int {
	n := 0
	for _, task := range s.Tasks {
		n += len(task.Steps)
	}
	return n
}
