package utils

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// MessageType defines the type of message box to render.
type MessageType int

const (
	// InfoMessage represents an informational message.
	InfoMessage MessageType = iota
	// SuccessMessage represents a batch that completed.
	SuccessMessage
	// WarningMessage represents a batch stopped by a failed task.
	WarningMessage
	// ErrorMessage represents a batch aborted by an error.
	ErrorMessage
)

const (
	infoPrefix    = "i"
	successPrefix = "✓"
	warningPrefix = "!"
	errorPrefix   = "✗"
)

const (
	topLeft     = "╭"
	topRight    = "╮"
	bottomLeft  = "╰"
	bottomRight = "╯"
	horizontal  = "─"
	vertical    = "│"

	defaultWidth = 80
	boxMargin    = 8
	minBoxWidth  = 20
)

var (
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("178"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// Box is a builder for the framed summaries printed at the end of a batch.
type Box struct {
	messageType MessageType
	title       string
	content     []string
	maxWidth    int
}

// NewBox creates a message box sized for the current terminal
func NewBox(messageType MessageType, title string) *Box {
	return &Box{
		messageType: messageType,
		title:       title,
		maxWidth:    TerminalWidth(os.Stdout) - boxMargin,
	}
}

// WithWidth sets the widest the box may grow, borders included
func (b *Box) WithWidth(width int) *Box {
	if width < minBoxWidth {
		width = minBoxWidth
	}
	b.maxWidth = width
	return b
}

// AddLine adds a line of text to the message box content.
func (b *Box) AddLine(text string) *Box {
	b.content = append(b.content, text)
	return b
}

// AddField adds a "label: value" line.
func (b *Box) AddField(label string, value interface{}) *Box {
	return b.AddLine(fmt.Sprintf("%s: %v", label, value))
}

// Render builds and returns the formatted message box as a string.
func (b *Box) Render() string {
	style, prefix := b.styleAndPrefix()
	lines := append([]string{b.title}, b.content...)
	return renderStyledBox(lines, style, prefix, b.maxWidth)
}

func (b *Box) styleAndPrefix() (lipgloss.Style, string) {
	switch b.messageType {
	case SuccessMessage:
		return successStyle, successPrefix
	case WarningMessage:
		return warningStyle, warningPrefix
	case ErrorMessage:
		return errorStyle, errorPrefix
	default:
		return infoStyle, infoPrefix
	}
}

// renderStyledBox frames lines, the first one carrying the prefix. Lines
// longer than the box are wrapped on word boundaries.
func renderStyledBox(lines []string, style lipgloss.Style, prefix string, maxWidth int) string {
	prefixWidth := utf8.RuneCountInString(prefix) + 1
	contentWidth := maxWidth - 4 - prefixWidth

	var wrapped []string
	for _, line := range lines {
		if utf8.RuneCountInString(line) <= contentWidth {
			wrapped = append(wrapped, line)
			continue
		}
		wrapped = append(wrapped, wrapText(line, contentWidth)...)
	}

	inner := 0
	for _, line := range wrapped {
		if n := utf8.RuneCountInString(line); n > inner {
			inner = n
		}
	}
	inner += prefixWidth + 2

	var sb strings.Builder
	sb.WriteString(style.Render(topLeft+strings.Repeat(horizontal, inner)+topRight) + "\n")

	for i, line := range wrapped {
		lead := strings.Repeat(" ", prefixWidth)
		text := line
		if i == 0 {
			lead = style.Bold(true).Render(prefix) + " "
			text = style.Render(line)
		}
		padding := inner - 2 - prefixWidth - utf8.RuneCountInString(line)
		sb.WriteString(fmt.Sprintf("%s %s%s%s %s\n",
			style.Render(vertical),
			lead,
			text,
			strings.Repeat(" ", padding),
			style.Render(vertical)))
	}

	sb.WriteString(style.Render(bottomLeft + strings.Repeat(horizontal, inner) + bottomRight))
	return sb.String()
}

// Info renders an informational box.
func Info(title string, lines ...string) string {
	return NewBox(InfoMessage, title).addLines(lines).Render()
}

// Success renders a success box.
func Success(title string, lines ...string) string {
	return NewBox(SuccessMessage, title).addLines(lines).Render()
}

// Warning renders a warning box.
func Warning(title string, lines ...string) string {
	return NewBox(WarningMessage, title).addLines(lines).Render()
}

// Error renders an error box.
func Error(title string, lines ...string) string {
	return NewBox(ErrorMessage, title).addLines(lines).Render()
}

func (b *Box) addLines(lines []string) *Box {
	for _, line := range lines {
		b.AddLine(line)
	}
	return b
}

// TerminalWidth returns the width of the terminal f is attached to, or 80.
func TerminalWidth(f *os.File) int {
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}

// wrapText wraps text to fit within maxWidth. Words longer than maxWidth
// get a line of their own.
func wrapText(text string, maxWidth int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := words[0]
	width := utf8.RuneCountInString(current)

	for _, word := range words[1:] {
		wordWidth := utf8.RuneCountInString(word)
		if width+wordWidth+1 <= maxWidth {
			current += " " + word
			width += wordWidth + 1
			continue
		}
		lines = append(lines, current)
		current = word
		width = wordWidth
	}

	return append(lines, current)
}
