package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatLines(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"message", FormatMessage("Message1"), "[ ... ] Message1"},
		{"task", FormatTask(1, 2, "Task 1"), "[ 1/2 ] Task 1"},
		{"task with wide counter", FormatTask(10, 12, "Deploy"), "[ 10/12 ] Deploy"},
		{"question", FormatQuestion("A question", nil, ""), "[  ?  ] A question"},
		{"question with default", FormatQuestion("Which colour?", nil, "Yellow"), "[  ?  ] Which colour? [Yellow]"},
		{"question with options", FormatQuestion("Can you confirm?", []string{"Y", "N"}, "Y"), "[  ?  ] Can you confirm? (Y|N) [Y]"},
		{"list item", FormatListItem("v1"), "[  -  ]   v1"},
		{"numbered list item", FormatListItem("2. v2"), "[  -  ]   2. v2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.got)
		})
	}
}

func TestOptionsSuffix(t *testing.T) {
	assert.Equal(t, "", optionsSuffix(nil, ""))
	assert.Equal(t, "[E]", optionsSuffix(nil, "E"))
	assert.Equal(t, "(C|S|E) [E]", optionsSuffix([]string{"C", "S", "E"}, "E"))
	assert.Equal(t, "(C|S)", optionsSuffix([]string{"C", "S"}, ""))
}
