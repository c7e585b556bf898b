// Package money formats rupee amounts for human-facing output (invoice PDF,
// dashboard labels) using en-IN digit grouping (lakh/crore style: 1,00,000).
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var enIN = message.NewPrinter(language.MustParse("en-IN"))

// INR renders amount as an ₹-prefixed string with two decimals and Indian
// digit grouping, e.g. INR(123456.7) == "₹1,23,456.70".
func INR(amount decimal.Decimal) string {
	f, _ := amount.Round(2).Float64()
	return enIN.Sprintf("₹%.2f", f)
}

// Plain renders amount with two decimals and no symbol, for table cells.
func Plain(amount decimal.Decimal) string {
	return amount.Round(2).StringFixed(2)
}
