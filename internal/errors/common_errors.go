package errors

import (
	"fmt"
	"strings"
)

// Common error codes
const (
	// Usage error codes
	CodeTaskCountExceeded     = "001"
	CodeOptionsWithoutDefault = "002"
	CodeNoValues              = "003"
	CodeNegativeTaskCount     = "004"

	// Input error codes
	CodeTooManyAttempts = "001"

	// Console error codes
	CodeConsoleRead        = "001"
	CodeConsoleInterrupted = "002"

	// Script error codes
	CodeScriptNotFound = "001"
	CodeScriptParse    = "002"
	CodeScriptInvalid  = "003"
	CodeScriptFormat   = "004"

	// Task error codes
	CodeTaskExecution = "001"
)

// Sentinels usable with errors.Is. Matching is done on category and code only.
var (
	ErrTaskCountExceeded     = &BatchError{Category: ErrorCategoryUsage, Code: CodeTaskCountExceeded}
	ErrOptionsWithoutDefault = &BatchError{Category: ErrorCategoryUsage, Code: CodeOptionsWithoutDefault}
	ErrNoValues              = &BatchError{Category: ErrorCategoryUsage, Code: CodeNoValues}
	ErrNegativeTaskCount     = &BatchError{Category: ErrorCategoryUsage, Code: CodeNegativeTaskCount}
	ErrTooManyAttempts       = &BatchError{Category: ErrorCategoryInput, Code: CodeTooManyAttempts}
	ErrConsoleRead           = &BatchError{Category: ErrorCategoryConsole, Code: CodeConsoleRead}
	ErrConsoleInterrupted    = &BatchError{Category: ErrorCategoryConsole, Code: CodeConsoleInterrupted}
	ErrScriptInvalid         = &BatchError{Category: ErrorCategoryScript, Code: CodeScriptInvalid}
)

// NewTaskCountExceededError creates an error for a task announced after the expected count was reached
func NewTaskCountExceededError(taskName string, expected int) *BatchError {
	return NewUsageError(CodeTaskCountExceeded,
		"No more tasks expected",
		"Task announcement").
		WithContext("task", taskName).
		WithContext("expected", expected).
		WithTroubleshooting(
			"Call SetExpectedTaskCount with the number of tasks before announcing them",
			"Do not reuse a presenter across runs",
		)
}

// NewOptionsWithoutDefaultError creates an error for an ask call that lists options but no default
func NewOptionsWithoutDefaultError(question string, options []string) *BatchError {
	return NewUsageError(CodeOptionsWithoutDefault,
		"Cannot call ask with options and no default",
		"Question prompt").
		WithContext("question", question).
		WithContext("options", strings.Join(options, "|"))
}

// NewNoValuesError creates an error for a select or choose call without values
func NewNoValuesError(question, operation string) *BatchError {
	return NewUsageError(CodeNoValues,
		"Cannot select from an empty list of values",
		operation).
		WithContext("question", question)
}

// NewNegativeTaskCountError creates an error for a negative expected task count
func NewNegativeTaskCountError(count int) *BatchError {
	return NewUsageError(CodeNegativeTaskCount,
		fmt.Sprintf("Expected task count cannot be negative (got %d)", count),
		"Task count setup").
		WithContext("count", count)
}

// NewTooManyAttemptsError creates an error for a question that was answered wrongly too many times
func NewTooManyAttemptsError(question string, attempts int) *BatchError {
	return NewInputError(CodeTooManyAttempts,
		fmt.Sprintf("No acceptable answer after %d attempts", attempts),
		"Question prompt").
		WithContext("question", question).
		WithContext("attempts", attempts).
		WithTroubleshooting(
			"Answer with one of the listed options, or press enter to accept the default",
			"Raise --max-attempts or set it to 0 to keep asking",
		)
}

// NewConsoleReadError creates an error for a console that could not produce an answer
func NewConsoleReadError(message string, originalErr error) *BatchError {
	return NewConsoleError(CodeConsoleRead,
		"Failed to read answer from console",
		"Console read").
		WithContext("prompt", message).
		WithOriginalError(originalErr).
		WithTroubleshooting(
			"Run the batch from an interactive terminal",
			"Provide answers with --answer, or accept every default with --yes",
		)
}

// NewConsoleInterruptedError creates an error for a prompt cancelled by the user
func NewConsoleInterruptedError(message string, originalErr error) *BatchError {
	return NewConsoleError(CodeConsoleInterrupted,
		"Prompt interrupted",
		"Console read").
		WithContext("prompt", message).
		WithOriginalError(originalErr)
}

// NewScriptNotFoundError creates an error for a script file that cannot be opened
func NewScriptNotFoundError(path string, originalErr error) *BatchError {
	return NewScriptError(CodeScriptNotFound,
		fmt.Sprintf("Script '%s' could not be read", path),
		"Script loading").
		WithContext("path", path).
		WithOriginalError(originalErr).
		WithTroubleshooting(
			"Verify the script path is correct",
			"Check the file is readable by the current user",
		)
}

// NewScriptParseError creates an error for a script file with invalid syntax
func NewScriptParseError(path string, originalErr error) *BatchError {
	return NewScriptError(CodeScriptParse,
		fmt.Sprintf("Script '%s' could not be parsed", path),
		"Script loading").
		WithContext("path", path).
		WithOriginalError(originalErr)
}

// NewScriptFormatError creates an error for a script with an unknown file extension
func NewScriptFormatError(path string) *BatchError {
	return NewScriptError(CodeScriptFormat,
		fmt.Sprintf("Unsupported script format for '%s'", path),
		"Script loading").
		WithContext("path", path).
		WithTroubleshooting("Use a .yaml, .yml or .toml file")
}

// NewInvalidScriptError creates an error for a script that parsed but is not runnable
func NewInvalidScriptError(reason string) *BatchError {
	return NewScriptError(CodeScriptInvalid,
		reason,
		"Script validation")
}

// NewTaskExecutionError creates an error for a task that returned an error
func NewTaskExecutionError(taskName string, originalErr error) *BatchError {
	return NewTaskError(CodeTaskExecution,
		fmt.Sprintf("Task '%s' aborted", taskName),
		"Task execution").
		WithContext("task", taskName).
		WithOriginalError(originalErr)
}
