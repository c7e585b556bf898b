package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest one line of a new sale. Price is optional: when zero the
// product's catalog price is snapshotted.
type SaleItemRequest struct {
	ProductID string          `json:"product_id" validate:"required"`
	Quantity  int64           `json:"quantity" validate:"required,gt=0"`
	Price     decimal.Decimal `json:"price"`
}

// CreateSaleRequest payload for POST /api/sales.
type CreateSaleRequest struct {
	ID              string            `json:"id"`
	BuyerName       string            `json:"buyer_name" validate:"required"`
	BuyerGSTIN      string            `json:"buyer_gstin"`
	PlaceOfSupply   string            `json:"place_of_supply" validate:"required"`
	ShippingAddress string            `json:"shipping_address"`
	DueDate         time.Time         `json:"due_date"`
	Items           []SaleItemRequest `json:"items" validate:"required,min=1,dive"`
}

// UpdateSaleRequest buyer-field patch for PUT /api/sales/{id}. Items, the
// invoice number and the monetary fields are not editable after the fact;
// settlement goes through the payments endpoint.
type UpdateSaleRequest struct {
	BuyerName       *string    `json:"buyer_name"`
	BuyerGSTIN      *string    `json:"buyer_gstin"`
	ShippingAddress *string    `json:"shipping_address"`
	DueDate         *time.Time `json:"due_date"`
}

// RecordPaymentRequest payload for POST /api/sales/{id}/payments.
type RecordPaymentRequest struct {
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method" validate:"required,oneof=cash upi bank_transfer cheque"`
	Reference string          `json:"reference"`
	Notes     string          `json:"notes"`
}

// SaleItemResponse one recorded line.
type SaleItemResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	HSNCode     string          `json:"hsn_code"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int64           `json:"quantity"`
	Amount      decimal.Decimal `json:"amount"`
}

// PaymentResponse one recorded settlement.
type PaymentResponse struct {
	ID        string          `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	Date      time.Time       `json:"date"`
	Method    string          `json:"method"`
	Reference string          `json:"reference,omitempty"`
	Notes     string          `json:"notes,omitempty"`
}

// SaleResponse full sale representation.
type SaleResponse struct {
	ID              string             `json:"id"`
	InvoiceNumber   string             `json:"invoice_number"`
	BuyerName       string             `json:"buyer_name"`
	BuyerGSTIN      string             `json:"buyer_gstin"`
	PlaceOfSupply   string             `json:"place_of_supply"`
	ShippingAddress string             `json:"shipping_address"`
	DueDate         time.Time          `json:"due_date"`
	Items           []SaleItemResponse `json:"items"`
	Subtotal        decimal.Decimal    `json:"subtotal"`
	CGST            decimal.Decimal    `json:"cgst"`
	SGST            decimal.Decimal    `json:"sgst"`
	IGST            decimal.Decimal    `json:"igst"`
	TotalAmount     decimal.Decimal    `json:"total_amount"`
	PaidAmount      decimal.Decimal    `json:"paid_amount"`
	PaymentStatus   string             `json:"payment_status"`
	Payments        []PaymentResponse  `json:"payments"`
	CreatedAt       time.Time          `json:"created_at"`
}

// SaleListResponse list wrapper.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Total int            `json:"total"`
}
