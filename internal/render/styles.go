package render

import (
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/trench/internal/config/colors"
	"github.com/thenoetrevino/trench/internal/models"
)

// Styles holds the lipgloss styles Styled applies
type Styles struct {
	Title  lipgloss.Style
	Header lipgloss.Style
	Rule   lipgloss.Style
	Subtle lipgloss.Style
	Paid   lipgloss.Style
	Unpaid lipgloss.Style
}

// NewStyles builds table styles from a colour scheme
func NewStyles(c colors.ColorScheme) Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(c.Title)),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(c.HeaderFg)),
		Rule: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Border)),
		Subtle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Subtle)),
		Paid: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Paid)),
		Unpaid: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(c.Unpaid)),
	}
}

// cell picks the style for one body cell
func (s Styles) cell(header, value string) lipgloss.Style {
	if header != HeaderStatus {
		return plain
	}
	switch value {
	case models.InvoicePaid:
		return s.Paid
	case models.InvoiceUnpaid:
		return s.Unpaid
	}
	return plain
}
