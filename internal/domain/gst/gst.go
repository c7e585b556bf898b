// Package gst holds the pure GST computation rules: the CGST/SGST vs IGST
// split for a supply and the amount-in-words rendering used on tax invoices.
// Everything here is deterministic and side-effect free.
package gst

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/kiranaledger/kirana-api/internal/domain"
)

// Breakup is the tax decomposition of a subtotal.
//
// Exactly one family is nonzero for a nonzero subtotal: CGST+SGST for an
// intra-state supply (each half the rate), IGST for inter-state.
type Breakup struct {
	Subtotal decimal.Decimal
	CGST     decimal.Decimal
	SGST     decimal.Decimal
	IGST     decimal.Decimal
	Total    decimal.Decimal
}

var (
	hundred    = decimal.NewFromInt(100)
	twoHundred = decimal.NewFromInt(200)
)

// Compute splits GST on subtotal for a supply into placeOfSupply, given the
// seller's home state and the total rate in percent (e.g. 18). A negative
// subtotal fails with domain.ErrInvalidInput.
func Compute(subtotal decimal.Decimal, placeOfSupply, homeState string, ratePercent decimal.Decimal) (Breakup, error) {
	if subtotal.IsNegative() {
		return Breakup{}, fmt.Errorf("gst: negative subtotal %s: %w", subtotal, domain.ErrInvalidInput)
	}
	b := Breakup{
		Subtotal: subtotal,
		CGST:     decimal.Zero,
		SGST:     decimal.Zero,
		IGST:     decimal.Zero,
	}
	if IntraState(placeOfSupply, homeState) {
		half := subtotal.Mul(ratePercent).Div(twoHundred)
		b.CGST = half
		b.SGST = half
	} else {
		b.IGST = subtotal.Mul(ratePercent).Div(hundred)
	}
	b.Total = subtotal.Add(b.CGST).Add(b.SGST).Add(b.IGST)
	return b, nil
}

// IntraState reports whether the place of supply is the seller's home state.
// The comparison is trimmed and case-insensitive; place of supply arrives
// from free-form input.
func IntraState(placeOfSupply, homeState string) bool {
	return strings.EqualFold(strings.TrimSpace(placeOfSupply), strings.TrimSpace(homeState))
}
