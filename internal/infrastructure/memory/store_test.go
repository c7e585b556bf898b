package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiranaledger/kirana-api/internal/domain"
	"github.com/kiranaledger/kirana-api/internal/domain/entity"
	"github.com/kiranaledger/kirana-api/internal/domain/repository"
	"github.com/kiranaledger/kirana-api/internal/infrastructure/memory"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newProduct(id string, price, cost int64, qty int64, at time.Time) *entity.Product {
	return &entity.Product{
		ID:        id,
		Name:      "Product " + id,
		SKU:       "SKU-" + id,
		Price:     decimal.NewFromInt(price),
		CostPrice: decimal.NewFromInt(cost),
		Quantity:  qty,
		CreatedAt: at,
		UpdatedAt: at,
	}
}

func TestSeedDemo(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	require.NoError(t, store.SeedDemo(ctx))

	list, err := store.Products().List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Fortune Rice (5kg)", list[0].Name)
	assert.Equal(t, "Tata Salt (1kg)", list[1].Name)

	// A second seed collides on the fixed ids.
	err = store.SeedDemo(ctx)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestKPIRebuild(t *testing.T) {
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	store := memory.NewStoreAt(fixedClock(now))
	ctx := context.Background()

	err := store.RunLedger(ctx, func(products repository.ProductRepository, sales repository.SaleRepository) error {
		if err := products.Create(newProduct("p1", 80, 65, 500, now)); err != nil {
			return err
		}
		// Current-month sale: 10 units at the catalog price.
		if err := sales.Create(&entity.Sale{
			ID:            "s1",
			InvoiceNumber: "INV/2608/0001",
			BuyerName:     "Walk-in",
			Items: []entity.SaleItem{
				{ProductID: "p1", ProductName: "Product p1", Price: decimal.NewFromInt(80), Quantity: 10},
			},
			TotalAmount:   decimal.NewFromInt(944),
			PaymentStatus: entity.PaymentStatusPending,
			CreatedAt:     now,
		}); err != nil {
			return err
		}
		// Prior-month sale counts toward the totals only.
		return sales.Create(&entity.Sale{
			ID:            "s0",
			InvoiceNumber: "INV/2601/0001",
			BuyerName:     "Walk-in",
			TotalAmount:   decimal.NewFromInt(100),
			PaymentStatus: entity.PaymentStatusPaid,
			CreatedAt:     time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC),
		})
	})
	require.NoError(t, err)

	k := store.KPI()
	assert.Equal(t, int64(2), k.TotalSales)
	assert.True(t, k.TotalRevenue.Equal(decimal.NewFromInt(1044)), k.TotalRevenue.String())
	// Profit: (80 - 65) * 10 from s1; s0 has no item lines.
	assert.True(t, k.TotalProfit.Equal(decimal.NewFromInt(150)), k.TotalProfit.String())
	assert.Equal(t, int64(1), k.MonthlySales)
	assert.True(t, k.MonthlyRevenue.Equal(decimal.NewFromInt(944)), k.MonthlyRevenue.String())
}

func TestRunLedgerErrorLeavesKPIUntouched(t *testing.T) {
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	store := memory.NewStoreAt(fixedClock(now))
	ctx := context.Background()

	require.NoError(t, store.RunLedger(ctx, func(products repository.ProductRepository, _ repository.SaleRepository) error {
		return products.Create(newProduct("p1", 80, 65, 500, now))
	}))
	before := store.KPI()

	err := store.RunLedger(ctx, func(products repository.ProductRepository, _ repository.SaleRepository) error {
		return products.Create(newProduct("p1", 80, 65, 500, now))
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Equal(t, before, store.KPI())
}

func TestRepositoriesReturnClones(t *testing.T) {
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	store := memory.NewStoreAt(fixedClock(now))
	products := store.Products()

	require.NoError(t, products.Create(newProduct("p1", 80, 65, 500, now)))

	got, err := products.GetByID("p1")
	require.NoError(t, err)
	require.NotNil(t, got)
	got.Quantity = 0

	again, err := products.GetByID("p1")
	require.NoError(t, err)
	assert.Equal(t, int64(500), again.Quantity)
}

func TestGetByIDMissingReturnsNil(t *testing.T) {
	store := memory.NewStore()

	p, err := store.Products().GetByID("missing")
	require.NoError(t, err)
	assert.Nil(t, p)

	s, err := store.Sales().GetByID("missing")
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestReferencesProduct(t *testing.T) {
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	store := memory.NewStoreAt(fixedClock(now))
	sales := store.Sales()

	require.NoError(t, sales.Create(&entity.Sale{
		ID:            "s1",
		InvoiceNumber: "INV/2608/0001",
		Items: []entity.SaleItem{
			{ProductID: "p1", Price: decimal.NewFromInt(80), Quantity: 1},
		},
		TotalAmount:   decimal.NewFromInt(94),
		PaymentStatus: entity.PaymentStatusPending,
		CreatedAt:     now,
	}))

	ref, err := sales.ReferencesProduct("p1")
	require.NoError(t, err)
	assert.True(t, ref)

	ref, err = sales.ReferencesProduct("p2")
	require.NoError(t, err)
	assert.False(t, ref)
}
