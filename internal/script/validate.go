package script

import (
	"fmt"
	"regexp"
	"strings"

	batcherrors "github.com/maxkimambo/batchcli/internal/errors"
)

var storeNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Validate checks that the script can be run. It reports the first problem
// found as a script error.
func (s *Script) Validate() error {
	if len(s.Tasks) == 0 {
		return batcherrors.NewInvalidScriptError("script has no tasks")
	}

	for i, task := range s.Tasks {
		if strings.TrimSpace(task.Name) == "" {
			return batcherrors.NewInvalidScriptError(fmt.Sprintf("task %d has no name", i+1)).
				WithContext("task_index", i+1)
		}

		for j, step := range task.Steps {
			if reason := validateStep(step); reason != "" {
				return batcherrors.NewInvalidScriptError(fmt.Sprintf("task '%s' step %d: %s", task.Name, j+1, reason)).
					WithContext("task", task.Name).
					WithContext("step", j+1)
			}
		}
	}

	return nil
}

// validateStep returns why step cannot run, or "" when it can
func validateStep(step Step) string {
	kinds := step.Kinds()
	if len(kinds) != 1 {
		return fmt.Sprintf("a step must define exactly one action, found %d", len(kinds))
	}

	var question, store string
	switch kinds[0] {
	case KindAsk:
		if len(step.Ask.Options) > 0 && step.Ask.Default == "" {
			return "ask with options needs a default"
		}
		question, store = step.Ask.Question, step.Ask.Store
	case KindConfirm:
		question, store = step.Confirm.Question, step.Confirm.Store
	case KindNegate:
		question, store = step.Negate.Question, step.Negate.Store
	case KindSelect:
		if len(step.Select.Values) == 0 {
			return "select needs at least one value"
		}
		question, store = step.Select.Question, step.Select.Store
	case KindChoose:
		if len(step.Choose.Values) == 0 {
			return "choose needs at least one value"
		}
		question, store = step.Choose.Question, step.Choose.Store
	default:
		return ""
	}

	if strings.TrimSpace(question) == "" {
		return fmt.Sprintf("%s needs a question", kinds[0])
	}
	if store != "" && !storeNamePattern.MatchString(store) {
		return fmt.Sprintf("store name '%s' must be letters, digits and underscores", store)
	}
	return ""
}
