package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog SKU. Quantity is the on-hand stock count; it is only
// mutated through ledger operations (inventory adjustments and sales) and may
// go negative when oversold; the ledger does not clamp it.
type Product struct {
	ID        string
	Name      string
	SKU       string
	HSNCode   string          // GST product-classification code
	Price     decimal.Decimal // selling price
	CostPrice decimal.Decimal
	Quantity  int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Clone returns an independent copy.
func (p *Product) Clone() *Product {
	if p == nil {
		return nil
	}
	cp := *p
	return &cp
}
