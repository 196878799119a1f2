package render

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Money formats invoice amounts with a currency symbol and thousands
// separators, e.g. $12,500.00
type Money struct {
	printer *message.Printer
	symbol  string
}

// NewMoney returns a formatter for symbol using English number conventions
func NewMoney(symbol string) Money {
	return Money{
		printer: message.NewPrinter(language.English),
		symbol:  symbol,
	}
}

// Format renders amount to two decimal places
func (m Money) Format(amount float64) string {
	if m.printer == nil {
		m = NewMoney(m.symbol)
	}
	if amount < 0 {
		return "-" + m.symbol + m.printer.Sprintf("%.2f", -amount)
	}
	return m.symbol + m.printer.Sprintf("%.2f", amount)
}

// Hours renders worked hours with no trailing zeros: 5, 7.5, 0.25
func Hours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}
