package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiranaledger/kirana-api/internal/application/dto"
	"github.com/kiranaledger/kirana-api/internal/application/usecase"
	"github.com/kiranaledger/kirana-api/internal/domain"
	"github.com/kiranaledger/kirana-api/internal/domain/entity"
	"github.com/kiranaledger/kirana-api/internal/infrastructure/memory"
)

func newProductUC() (*usecase.ProductUseCase, *memory.Store) {
	store := memory.NewStore()
	return usecase.NewProductUseCase(store, store.Products()), store
}

func strPtr(s string) *string { return &s }

func TestCreateProduct(t *testing.T) {
	uc, _ := newProductUC()
	ctx := context.Background()

	out, err := uc.Create(ctx, dto.CreateProductRequest{
		Name:      "Fortune Rice (5kg)",
		SKU:       "FR5KG",
		HSNCode:   "1006",
		Price:     decimal.NewFromInt(80),
		CostPrice: decimal.NewFromInt(65),
		Quantity:  500,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID, "server assigns an id when the request omits it")
	assert.Equal(t, "FR5KG", out.SKU)
	assert.Equal(t, int64(500), out.Quantity)
	assert.False(t, out.CreatedAt.IsZero())
}

func TestCreateProductRejectsNegatives(t *testing.T) {
	uc, _ := newProductUC()
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateProductRequest{
		Name:  "Bad",
		SKU:   "BAD",
		Price: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateProductDuplicateSKU(t *testing.T) {
	uc, _ := newProductUC()
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateProductRequest{Name: "A", SKU: "DUP"})
	require.NoError(t, err)

	_, err = uc.Create(ctx, dto.CreateProductRequest{Name: "B", SKU: "DUP"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestUpdateProductPartialPatch(t *testing.T) {
	uc, _ := newProductUC()
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CreateProductRequest{
		Name:  "Tata Salt (1kg)",
		SKU:   "TS1KG",
		Price: decimal.NewFromInt(25),
	})
	require.NoError(t, err)

	newPrice := decimal.NewFromInt(28)
	out, err := uc.Update(ctx, created.ID, dto.UpdateProductRequest{Price: &newPrice})
	require.NoError(t, err)
	assert.True(t, out.Price.Equal(newPrice), out.Price.String())
	assert.Equal(t, "Tata Salt (1kg)", out.Name, "unset fields stay as they were")
	assert.Equal(t, "TS1KG", out.SKU)
}

func TestUpdateProductNotFound(t *testing.T) {
	uc, _ := newProductUC()

	_, err := uc.Update(context.Background(), "missing", dto.UpdateProductRequest{Name: strPtr("X")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteProductReferencedBySale(t *testing.T) {
	uc, store := newProductUC()
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CreateProductRequest{Name: "Rice", SKU: "R1"})
	require.NoError(t, err)

	require.NoError(t, store.Sales().Create(&entity.Sale{
		ID:            "s1",
		InvoiceNumber: "INV/2608/0001",
		Items: []entity.SaleItem{
			{ProductID: created.ID, Price: decimal.NewFromInt(80), Quantity: 1},
		},
		TotalAmount:   decimal.NewFromInt(94),
		PaymentStatus: entity.PaymentStatusPending,
	}))

	err = uc.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrProductInUse)

	// The product must still be there after the rejected delete.
	got, err := uc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestDeleteProductUnreferenced(t *testing.T) {
	uc, _ := newProductUC()
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CreateProductRequest{Name: "Rice", SKU: "R1"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, created.ID))

	_, err = uc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAdjustInventory(t *testing.T) {
	uc, _ := newProductUC()
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CreateProductRequest{Name: "Rice", SKU: "R1", Quantity: 10})
	require.NoError(t, err)

	out, err := uc.AdjustInventory(ctx, created.ID, 5, true)
	require.NoError(t, err)
	assert.Equal(t, int64(15), out.Quantity)

	// Removal below zero is allowed; the ledger records the shortfall.
	out, err = uc.AdjustInventory(ctx, created.ID, 20, false)
	require.NoError(t, err)
	assert.Equal(t, int64(-5), out.Quantity)
}

func TestAdjustInventoryValidation(t *testing.T) {
	uc, _ := newProductUC()
	ctx := context.Background()

	_, err := uc.AdjustInventory(ctx, "missing", 0, true)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.AdjustInventory(ctx, "missing", 1, true)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
