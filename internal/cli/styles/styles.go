// Package styles holds the lipgloss styles used for human-readable CLI and
// menu output. Styling is only applied when writing to a terminal.
package styles

import (
	"io"
	"os"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-isatty"

	"github.com/thenoetrevino/trench/internal/config/colors"
	"github.com/thenoetrevino/trench/internal/render"
)

var (
	// Text styles
	TitleStyle lipgloss.Style

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style

	// Tables are the styles for list output
	Tables render.Styles
)

func init() {
	Init(*colors.Default())
}

// Init initializes all CLI styles with the given color scheme
func Init(c colors.ColorScheme) {
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.Title))

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.Create))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.ErrorFg)).
		Background(lipgloss.Color(c.ErrorBg)).
		Padding(0, 1)

	WarningStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.WarningFg)).
		Background(lipgloss.Color(c.WarningBg)).
		Padding(0, 1)

	Tables = render.NewStyles(c)
}

// IsTerminal reports whether w is a terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Apply renders text with style when w is a terminal, and returns it
// unchanged otherwise
func Apply(w io.Writer, style lipgloss.Style, text string) string {
	if !IsTerminal(w) {
		return text
	}
	return style.Render(text)
}

// WriteTable writes t styled on a terminal and as plain text elsewhere
func WriteTable(w io.Writer, t render.Table) error {
	if !IsTerminal(w) {
		return t.WriteText(w)
	}
	_, err := io.WriteString(w, t.Styled(Tables))
	return err
}
