package utils

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBox_Render(t *testing.T) {
	out := NewBox(SuccessMessage, "Batch completed").
		WithWidth(60).
		AddField("Tasks", 7).
		AddLine("All tasks ran").
		Render()

	assert.Contains(t, out, "Batch completed")
	assert.Contains(t, out, "Tasks: 7")
	assert.Contains(t, out, "All tasks ran")
	assert.Contains(t, out, successPrefix)
	assert.Len(t, strings.Split(out, "\n"), 5)
}

func TestBox_WrapsLongLines(t *testing.T) {
	long := strings.Repeat("word ", 20)

	out := NewBox(ErrorMessage, "Failed").WithWidth(30).AddLine(long).Render()

	lines := strings.Split(out, "\n")
	require.Greater(t, len(lines), 4)
	for _, line := range lines {
		assert.LessOrEqual(t, utf8.RuneCountInString(stripANSI(line)), 30)
	}
}

func TestWrapText(t *testing.T) {
	assert.Equal(t, []string{"one two", "three"}, wrapText("one two three", 8))
	assert.Equal(t, []string{""}, wrapText("   ", 8))
	assert.Equal(t, []string{"a", "verylongword", "b"}, wrapText("a verylongword b", 5))
}

func TestConvenienceBoxes(t *testing.T) {
	assert.Contains(t, Info("note", "line"), "note")
	assert.Contains(t, Warning("stopped"), warningPrefix)
	assert.Contains(t, Error("aborted", "why"), "why")
	assert.Contains(t, Success("done"), "done")
}

// stripANSI drops escape sequences so widths can be measured
func stripANSI(s string) string {
	var sb strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEscape = true
		case inEscape && (r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'):
			inEscape = false
		case !inEscape:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
