package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is the settlement channel of a payment.
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodUPI          PaymentMethod = "upi"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodCheque       PaymentMethod = "cheque"
)

// Valid reports whether m is one of the closed set of methods.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodUPI, PaymentMethodBankTransfer, PaymentMethodCheque:
		return true
	}
	return false
}

// PaymentStatus is derived from PaidAmount vs TotalAmount, never stored
// independently of them.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// PaymentStatusFor computes the status for a cumulative paid amount against
// the sale total: paid if paid >= total, partial if 0 < paid < total,
// otherwise pending.
func PaymentStatusFor(paid, total decimal.Decimal) PaymentStatus {
	switch {
	case paid.GreaterThanOrEqual(total):
		return PaymentStatusPaid
	case paid.GreaterThan(decimal.Zero):
		return PaymentStatusPartial
	default:
		return PaymentStatusPending
	}
}

// Payment is an immutable settlement record against a sale. Once appended to
// Sale.Payments it is never changed or removed.
type Payment struct {
	ID        string
	Amount    decimal.Decimal
	Date      time.Time
	Method    PaymentMethod
	Reference string
	Notes     string
}
