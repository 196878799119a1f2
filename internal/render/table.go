// Package render turns rows returned by the services into tables for the
// shells: padded text for the menu and CLI, markdown for the form shell.
package render

import (
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
)

// columnGap separates adjacent columns in text output
const columnGap = "  "

// Table is a titled grid of already-formatted cells
type Table struct {
	Title     string
	EmptyText string
	Headers   []string
	Rows      [][]string
}

// widths returns the display width of each column
func (t Table) widths() []int {
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// line pads every cell but the last to its column width
func line(cells []string, widths []int, style func(col int, padded string) string) string {
	var b strings.Builder
	for i, cell := range cells {
		padded := cell
		if i < len(cells)-1 {
			padded = runewidth.FillRight(cell, widths[i])
		}
		if style != nil {
			padded = style(i, padded)
		}
		b.WriteString(padded)
		if i < len(cells)-1 {
			b.WriteString(columnGap)
		}
	}
	return b.String()
}

func ruleWidth(widths []int) int {
	total := 0
	for _, w := range widths {
		total += w
	}
	return total + len(columnGap)*(len(widths)-1)
}

// WriteText writes the table as plain padded columns
func (t Table) WriteText(w io.Writer) error {
	if len(t.Rows) == 0 {
		_, err := fmt.Fprintln(w, t.EmptyText)
		return err
	}

	widths := t.widths()
	var b strings.Builder
	b.WriteString(line(t.Headers, widths, nil) + "\n")
	b.WriteString(strings.Repeat("-", ruleWidth(widths)) + "\n")
	for _, row := range t.Rows {
		b.WriteString(line(row, widths, nil) + "\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Styled renders the table like WriteText with colours from s applied
// after padding, so alignment is unaffected.
func (t Table) Styled(s Styles) string {
	if len(t.Rows) == 0 {
		return s.Subtle.Render(t.EmptyText) + "\n"
	}

	widths := t.widths()
	var b strings.Builder
	if t.Title != "" {
		b.WriteString(s.Title.Render(t.Title) + "\n")
	}
	b.WriteString(line(t.Headers, widths, func(_ int, padded string) string {
		return s.Header.Render(padded)
	}) + "\n")
	b.WriteString(s.Rule.Render(strings.Repeat("─", ruleWidth(widths))) + "\n")
	for _, row := range t.Rows {
		b.WriteString(line(row, widths, func(col int, padded string) string {
			return s.cell(t.Headers[col], strings.TrimSpace(padded)).Render(padded)
		}) + "\n")
	}
	return b.String()
}

// Markdown renders the table as a GitHub-flavoured markdown table
func (t Table) Markdown() string {
	var b strings.Builder
	if t.Title != "" {
		b.WriteString("## " + t.Title + "\n\n")
	}
	if len(t.Rows) == 0 {
		b.WriteString("_" + t.EmptyText + "_\n")
		return b.String()
	}

	b.WriteString(markdownRow(t.Headers))
	seps := make([]string, len(t.Headers))
	for i := range seps {
		seps[i] = "---"
	}
	b.WriteString(markdownRow(seps))
	for _, row := range t.Rows {
		b.WriteString(markdownRow(row))
	}
	return b.String()
}

func markdownRow(cells []string) string {
	escaped := make([]string, len(cells))
	for i, c := range cells {
		escaped[i] = strings.ReplaceAll(c, "|", `\|`)
	}
	return "| " + strings.Join(escaped, " | ") + " |\n"
}

// plain is the zero style, used for cells with no special colouring
var plain = lipgloss.NewStyle()
