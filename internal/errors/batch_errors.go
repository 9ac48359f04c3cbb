package errors

import (
	stderrors "errors"
	"fmt"
	"sort"
	"strings"
)

// ErrorCategory represents the category of error
type ErrorCategory string

const (
	// ErrorCategoryUsage represents programmer mistakes when calling the presenter or runner
	ErrorCategoryUsage ErrorCategory = "USAGE"
	// ErrorCategoryInput represents answers that could not be resolved
	ErrorCategoryInput ErrorCategory = "INPUT"
	// ErrorCategoryConsole represents failures of the console collaborator
	ErrorCategoryConsole ErrorCategory = "CONSOLE"
	// ErrorCategoryScript represents batch script loading and validation errors
	ErrorCategoryScript ErrorCategory = "SCRIPT"
	// ErrorCategoryTask represents errors returned by a task while it runs
	ErrorCategoryTask ErrorCategory = "TASK"
)

// BatchError represents a structured error with context and troubleshooting information
type BatchError struct {
	Category        ErrorCategory
	Code            string
	Message         string
	Operation       string
	Context         map[string]interface{}
	Troubleshooting []string
	OriginalError   error
}

// Error implements the error interface
func (e *BatchError) Error() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s-%s: %s", e.Category, e.Code, e.Message))

	if e.Operation != "" {
		sb.WriteString(fmt.Sprintf("\nOperation: %s", e.Operation))
	}

	if len(e.Context) > 0 {
		sb.WriteString("\nContext:")
		for _, key := range e.contextKeys() {
			sb.WriteString(fmt.Sprintf("\n  %s: %v", key, e.Context[key]))
		}
	}

	if len(e.Troubleshooting) > 0 {
		sb.WriteString("\nTroubleshooting:")
		for i, step := range e.Troubleshooting {
			sb.WriteString(fmt.Sprintf("\n  %d. %s", i+1, step))
		}
	}

	if e.OriginalError != nil {
		sb.WriteString(fmt.Sprintf("\nUnderlying error: %v", e.OriginalError))
	}

	return sb.String()
}

// Unwrap returns the original error for error chain compatibility
func (e *BatchError) Unwrap() error {
	return e.OriginalError
}

// Is reports whether target is a BatchError with the same category and code.
// This lets the package level sentinels be used with errors.Is.
func (e *BatchError) Is(target error) bool {
	t, ok := target.(*BatchError)
	if !ok {
		return false
	}
	return e.Category == t.Category && e.Code == t.Code
}

func (e *BatchError) contextKeys() []string {
	keys := make([]string, 0, len(e.Context))
	for k := range e.Context {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// NewBatchError creates a new batch error with the specified parameters
func NewBatchError(category ErrorCategory, code, message, operation string) *BatchError {
	return &BatchError{
		Category:        category,
		Code:            code,
		Message:         message,
		Operation:       operation,
		Context:         make(map[string]interface{}),
		Troubleshooting: []string{},
	}
}

// WithContext adds context information to the error
func (e *BatchError) WithContext(key string, value interface{}) *BatchError {
	e.Context[key] = value
	return e
}

// WithTroubleshooting adds troubleshooting steps to the error
func (e *BatchError) WithTroubleshooting(steps ...string) *BatchError {
	e.Troubleshooting = append(e.Troubleshooting, steps...)
	return e
}

// WithOriginalError adds the original error to the batch error
func (e *BatchError) WithOriginalError(err error) *BatchError {
	e.OriginalError = err
	return e
}

// Common error constructors

// NewUsageError creates a new usage error
func NewUsageError(code, message, operation string) *BatchError {
	return NewBatchError(ErrorCategoryUsage, code, message, operation)
}

// NewInputError creates a new input error
func NewInputError(code, message, operation string) *BatchError {
	return NewBatchError(ErrorCategoryInput, code, message, operation)
}

// NewConsoleError creates a new console error
func NewConsoleError(code, message, operation string) *BatchError {
	return NewBatchError(ErrorCategoryConsole, code, message, operation)
}

// NewScriptError creates a new script error
func NewScriptError(code, message, operation string) *BatchError {
	return NewBatchError(ErrorCategoryScript, code, message, operation)
}

// NewTaskError creates a new task error
func NewTaskError(code, message, operation string) *BatchError {
	return NewBatchError(ErrorCategoryTask, code, message, operation)
}

// IsUsageError reports whether err (or anything it wraps) is a usage error
func IsUsageError(err error) bool {
	return hasCategory(err, ErrorCategoryUsage)
}

// IsConsoleError reports whether err (or anything it wraps) is a console error
func IsConsoleError(err error) bool {
	return hasCategory(err, ErrorCategoryConsole)
}

func hasCategory(err error, category ErrorCategory) bool {
	var batchErr *BatchError
	if stderrors.As(err, &batchErr) {
		return batchErr.Category == category
	}
	return false
}
