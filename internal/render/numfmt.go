package render

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer formats numbers with Danish separators (1.234,50). Currency-like
// fields always carry two decimals; whole quantities render without any.
var printer = message.NewPrinter(language.Danish)

// Currency renders a currency-like value with exactly two decimals.
func Currency(v float64) string {
	return printer.Sprintf("%.2f", v)
}

// Quantity renders a count: integers without decimals, fractional values
// with two.
func Quantity(v float64) string {
	if v == math.Trunc(v) {
		return printer.Sprintf("%.0f", v)
	}
	return printer.Sprintf("%.2f", v)
}
