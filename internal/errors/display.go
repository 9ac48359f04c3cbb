package errors

import (
	stderrors "errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DisplayError formats an error for user-friendly display
func DisplayError(err error) string {
	if batchErr, ok := asBatchError(err); ok {
		return batchErr.Error()
	}

	return fmt.Sprintf("Error: %v", err)
}

// DisplayErrorSummary provides a brief summary of the error for logs
func DisplayErrorSummary(err error) string {
	if batchErr, ok := asBatchError(err); ok {
		return fmt.Sprintf("%s-%s: %s", batchErr.Category, batchErr.Code, batchErr.Message)
	}

	runes := []rune(err.Error())
	if len(runes) > 100 {
		return string(runes[:97]) + "..."
	}
	return string(runes)
}

// ShouldDisplayTroubleshooting determines if troubleshooting info should be shown
func ShouldDisplayTroubleshooting(err error) bool {
	if batchErr, ok := asBatchError(err); ok {
		return len(batchErr.Troubleshooting) > 0
	}
	return false
}

// FormatForCLI formats an error for command-line display with proper spacing
func FormatForCLI(err error) string {
	batchErr, ok := asBatchError(err)
	if !ok {
		return fmt.Sprintf("\nError: %v\n", err)
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("\n%s Error [%s-%s]\n",
		cases.Title(language.English).String(strings.ToLower(string(batchErr.Category))), batchErr.Category, batchErr.Code))
	sb.WriteString(fmt.Sprintf("  %s\n", batchErr.Message))

	if batchErr.Operation != "" {
		sb.WriteString(fmt.Sprintf("\nFailed Operation: %s\n", batchErr.Operation))
	}

	if len(batchErr.Context) > 0 {
		sb.WriteString("\nDetails:\n")
		for _, key := range batchErr.contextKeys() {
			sb.WriteString(fmt.Sprintf("  %s: %v\n", key, batchErr.Context[key]))
		}
	}

	if len(batchErr.Troubleshooting) > 0 {
		sb.WriteString("\nHow to resolve:\n")
		for i, step := range batchErr.Troubleshooting {
			sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, step))
		}
	}

	if batchErr.OriginalError != nil {
		sb.WriteString(fmt.Sprintf("\nTechnical details: %v\n", batchErr.OriginalError))
	}

	return sb.String()
}

// IsUserError determines if an error is due to user input or a bad script
func IsUserError(err error) bool {
	if batchErr, ok := asBatchError(err); ok {
		return batchErr.Category == ErrorCategoryInput ||
			batchErr.Category == ErrorCategoryScript
	}
	return false
}

// GetErrorCode extracts the error code for reporting
func GetErrorCode(err error) string {
	if batchErr, ok := asBatchError(err); ok {
		return fmt.Sprintf("%s-%s", batchErr.Category, batchErr.Code)
	}
	return "UNKNOWN"
}

// asBatchError finds the outermost BatchError in the chain
func asBatchError(err error) (*BatchError, bool) {
	var batchErr *BatchError
	if stderrors.As(err, &batchErr) {
		return batchErr, true
	}
	return nil, false
}
