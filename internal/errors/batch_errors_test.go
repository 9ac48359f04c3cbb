package errors

import (
	stderrors "errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestBatchError_IsMatchesCategoryAndCode(t *testing.T) {
	err := NewTaskCountExceededError("Task 3", 2)

	assert.True(t, stderrors.Is(err, ErrTaskCountExceeded))
	assert.False(t, stderrors.Is(err, ErrOptionsWithoutDefault))

	wrapped := fmt.Errorf("announce: %w", err)
	assert.True(t, stderrors.Is(wrapped, ErrTaskCountExceeded))
	assert.True(t, IsUsageError(wrapped))
	assert.False(t, IsConsoleError(wrapped))
}

func TestBatchError_Unwrap(t *testing.T) {
	err := NewConsoleReadError("[  ?  ] q", io.EOF)

	assert.True(t, stderrors.Is(err, io.EOF))
	assert.True(t, stderrors.Is(err, ErrConsoleRead))
	assert.True(t, IsConsoleError(err))
}

func TestBatchError_ErrorString(t *testing.T) {
	err := NewUsageError("001", "No more tasks expected", "Task announcement").
		WithContext("task", "T3").
		WithContext("expected", 2).
		WithTroubleshooting("Set the count first").
		WithOriginalError(stderrors.New("boom"))

	msg := err.Error()
	assert.True(t, strings.HasPrefix(msg, "USAGE-001: No more tasks expected"))
	assert.Contains(t, msg, "Operation: Task announcement")
	// context keys are sorted
	assert.Less(t, strings.Index(msg, "expected: 2"), strings.Index(msg, "task: T3"))
	assert.Contains(t, msg, "1. Set the count first")
	assert.Contains(t, msg, "Underlying error: boom")
}

func TestDisplayHelpers(t *testing.T) {
	err := NewTooManyAttemptsError("Continue?", 3)

	assert.Equal(t, "INPUT-001: No acceptable answer after 3 attempts", DisplayErrorSummary(err))
	assert.Equal(t, "INPUT-001", GetErrorCode(err))
	assert.True(t, IsUserError(err))
	assert.True(t, ShouldDisplayTroubleshooting(err))

	cli := FormatForCLI(err)
	assert.Contains(t, cli, "Input Error [INPUT-001]")
	assert.Contains(t, cli, "How to resolve:")

	plain := stderrors.New("plain failure")
	assert.Equal(t, "UNKNOWN", GetErrorCode(plain))
	assert.Equal(t, "Error: plain failure", DisplayError(plain))
	assert.False(t, IsUserError(plain))
	assert.Equal(t, "\nError: plain failure\n", FormatForCLI(plain))
}

func TestDisplayErrorSummary_TruncatesLongErrors(t *testing.T) {
	err := stderrors.New(strings.Repeat("x", 150))

	summary := DisplayErrorSummary(err)
	assert.Len(t, summary, 100)
	assert.True(t, strings.HasSuffix(summary, "..."))
}

func TestDisplayErrorSummary_TruncatesOnCharacters(t *testing.T) {
	err := stderrors.New(strings.Repeat("é", 60) + strings.Repeat("ü", 60))

	summary := DisplayErrorSummary(err)
	assert.True(t, utf8.ValidString(summary))
	assert.Equal(t, 100, utf8.RuneCountInString(summary))
	assert.Equal(t, strings.Repeat("é", 60)+strings.Repeat("ü", 37)+"...", summary)

	short := stderrors.New(strings.Repeat("é", 100))
	assert.Equal(t, short.Error(), DisplayErrorSummary(short))
}
