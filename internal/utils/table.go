package utils

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// TableFormatter lays out rows under headers with box drawing borders
type TableFormatter struct {
	headers    []string
	rows       [][]string
	widths     []int
	rightAlign map[int]bool
}

// NewTableFormatter creates a new table formatter with headers
func NewTableFormatter(headers ...string) *TableFormatter {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	return &TableFormatter{
		headers:    headers,
		widths:     widths,
		rightAlign: map[int]bool{},
	}
}

// AlignRight right-aligns the cells of column col
func (t *TableFormatter) AlignRight(col int) *TableFormatter {
	t.rightAlign[col] = true
	return t
}

// AddRow adds a row to the table. Missing cells are left blank and extra
// cells are dropped.
func (t *TableFormatter) AddRow(cells ...string) {
	row := make([]string, len(t.headers))
	copy(row, cells)
	t.rows = append(t.rows, row)

	for i, cell := range row {
		if n := utf8.RuneCountInString(cell); n > t.widths[i] {
			t.widths[i] = n
		}
	}
}

// Len returns the number of rows
func (t *TableFormatter) Len() int {
	return len(t.rows)
}

// String returns the formatted table
func (t *TableFormatter) String() string {
	var sb strings.Builder

	t.writeBorder(&sb, "┌", "┬", "┐")
	t.writeRow(&sb, t.headers, false)
	t.writeBorder(&sb, "├", "┼", "┤")
	for _, row := range t.rows {
		t.writeRow(&sb, row, true)
	}
	t.writeBorder(&sb, "└", "┴", "┘")

	return sb.String()
}

func (t *TableFormatter) writeRow(sb *strings.Builder, cells []string, aligned bool) {
	sb.WriteString("│")
	for i, cell := range cells {
		pad := strings.Repeat(" ", t.widths[i]-utf8.RuneCountInString(cell))
		if aligned && t.rightAlign[i] {
			sb.WriteString(fmt.Sprintf(" %s%s ", pad, cell))
		} else {
			sb.WriteString(fmt.Sprintf(" %s%s ", cell, pad))
		}
		sb.WriteString("│")
	}
	sb.WriteString("\n")
}

func (t *TableFormatter) writeBorder(sb *strings.Builder, left, middle, right string) {
	sb.WriteString(left)
	for i, w := range t.widths {
		sb.WriteString(strings.Repeat("─", w+2))
		if i < len(t.widths)-1 {
			sb.WriteString(middle)
		}
	}
	sb.WriteString(right)
	sb.WriteString("\n")
}
