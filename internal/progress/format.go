package progress

import (
	"strconv"
	"strings"
)

const (
	startMarker = "["
	endMarker   = "]"

	messageToken  = "..."
	questionToken = " ? "
	listToken     = " - "
)

// formatLine joins the four slots of an output line with single spaces:
// start marker, status token, end marker and body. A non-empty suffix is
// appended after one more space.
func formatLine(token, body, suffix string) string {
	line := strings.Join([]string{startMarker, token, endMarker, body}, " ")
	if suffix != "" {
		line += " " + suffix
	}
	return line
}

func progressToken(current, total int) string {
	return strconv.Itoa(current) + "/" + strconv.Itoa(total)
}

// optionsSuffix renders "(a|b|c) [default]", "[default]" or "".
func optionsSuffix(options []string, def string) string {
	var sb strings.Builder
	openBracket := "["

	if len(options) > 0 {
		sb.WriteString("(")
		sb.WriteString(strings.Join(options, "|"))
		sb.WriteString(")")
		openBracket = " ["
	}

	if def != "" {
		sb.WriteString(openBracket)
		sb.WriteString(def)
		sb.WriteString("]")
	}

	return sb.String()
}

// FormatMessage returns the line emitted for a plain message.
func FormatMessage(text string) string {
	return formatLine(messageToken, text, "")
}

// FormatTask returns the line announcing task current of total.
func FormatTask(current, total int, name string) string {
	return formatLine(progressToken(current, total), name, "")
}

// FormatQuestion returns the prompt line for a question.
func FormatQuestion(question string, options []string, def string) string {
	return formatLine(questionToken, question, optionsSuffix(options, def))
}

// FormatListItem returns one line of a list-all answer.
func FormatListItem(item string) string {
	return formatLine(listToken, "  "+item, "")
}
