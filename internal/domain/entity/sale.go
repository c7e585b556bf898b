package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItem is one line of a sale. ProductName, HSNCode and Price are a
// snapshot of the product at the time of sale; later product edits do not
// flow back into recorded sales.
type SaleItem struct {
	ProductID   string
	ProductName string
	HSNCode     string
	Price       decimal.Decimal
	Quantity    int64
}

// Amount returns Price * Quantity for the line.
func (i SaleItem) Amount() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(i.Quantity))
}

// Sale is the aggregate billing record.
//
// Invariants maintained by the ledger:
//   - TotalAmount == Subtotal() + CGST + SGST + IGST
//   - exactly one of {CGST,SGST} / {IGST} is nonzero (intra- vs inter-state),
//     unless the subtotal itself is zero
//   - PaidAmount == sum of Payments[].Amount, and PaymentStatus is
//     PaymentStatusFor(PaidAmount, TotalAmount)
type Sale struct {
	ID              string
	InvoiceNumber   string
	BuyerName       string
	BuyerGSTIN      string
	PlaceOfSupply   string
	ShippingAddress string
	DueDate         time.Time
	Items           []SaleItem
	TotalAmount     decimal.Decimal
	CGST            decimal.Decimal
	SGST            decimal.Decimal
	IGST            decimal.Decimal
	PaidAmount      decimal.Decimal
	PaymentStatus   PaymentStatus
	Payments        []Payment
	CreatedAt       time.Time
}

// Subtotal is the pre-tax sum over all items.
func (s *Sale) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range s.Items {
		sum = sum.Add(it.Amount())
	}
	return sum
}

// Remaining is the unsettled balance.
func (s *Sale) Remaining() decimal.Decimal {
	return s.TotalAmount.Sub(s.PaidAmount)
}

// Clone returns a deep copy (items and payments included).
func (s *Sale) Clone() *Sale {
	if s == nil {
		return nil
	}
	cp := *s
	cp.Items = make([]SaleItem, len(s.Items))
	copy(cp.Items, s.Items)
	cp.Payments = make([]Payment, len(s.Payments))
	copy(cp.Payments, s.Payments)
	return &cp
}
