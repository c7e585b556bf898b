package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest payload for POST /api/products. ID is optional; the
// server assigns one when absent. Price, CostPrice and Quantity must be >= 0
// (checked in the use case; decimals are outside validator's reach).
type CreateProductRequest struct {
	ID        string          `json:"id"`
	Name      string          `json:"name" validate:"required"`
	SKU       string          `json:"sku" validate:"required"`
	HSNCode   string          `json:"hsn_code"`
	Price     decimal.Decimal `json:"price"`
	CostPrice decimal.Decimal `json:"cost_price"`
	Quantity  int64           `json:"quantity" validate:"min=0"`
}

// UpdateProductRequest partial update; nil fields are left untouched.
type UpdateProductRequest struct {
	Name      *string          `json:"name"`
	SKU       *string          `json:"sku"`
	HSNCode   *string          `json:"hsn_code"`
	Price     *decimal.Decimal `json:"price"`
	CostPrice *decimal.Decimal `json:"cost_price"`
	Quantity  *int64           `json:"quantity"`
}

// AdjustInventoryRequest payload for POST /api/products/{id}/adjust.
// Quantity is the delta magnitude; IsAddition picks the direction.
type AdjustInventoryRequest struct {
	Quantity   int64 `json:"quantity" validate:"required,gt=0"`
	IsAddition bool  `json:"is_addition"`
}

// ProductResponse product representation in responses.
type ProductResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	SKU       string          `json:"sku"`
	HSNCode   string          `json:"hsn_code"`
	Price     decimal.Decimal `json:"price"`
	CostPrice decimal.Decimal `json:"cost_price"`
	Quantity  int64           `json:"quantity"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ProductListResponse list wrapper.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
