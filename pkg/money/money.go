// Package money provides the two monetary text formats used across the
// order form: the $-prefixed grouped display format and the plain
// two-decimal record format.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Display formats d as a dollar amount with a thousands separator and
// exactly two decimal digits, e.g. "$1,234.56".
func Display(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return printer.Sprintf("$%v", number.Decimal(f,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// Plain formats d with exactly two decimal digits and no currency symbol
// or grouping. Used by the record exports.
func Plain(d decimal.Decimal) string {
	return d.StringFixed(2)
}
