package memory

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/kiranaledger/kirana-api/internal/domain/entity"
	"github.com/kiranaledger/kirana-api/internal/domain/repository"
)

// SeedDemo loads the demo catalog used in development. Idempotent per id:
// seeding twice fails with a duplicate error, so call it only on a fresh
// store.
func (s *Store) SeedDemo(ctx context.Context) error {
	now := s.now()
	demo := []entity.Product{
		{
			ID:        "1",
			Name:      "Fortune Rice (5kg)",
			SKU:       "FR5KG",
			HSNCode:   "1006",
			Price:     decimal.NewFromInt(80),
			CostPrice: decimal.NewFromInt(65),
			Quantity:  500,
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:        "2",
			Name:      "Tata Salt (1kg)",
			SKU:       "TS1KG",
			HSNCode:   "2501",
			Price:     decimal.NewFromInt(25),
			CostPrice: decimal.NewFromInt(18),
			Quantity:  1000,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	return s.RunLedger(ctx, func(products repository.ProductRepository, _ repository.SaleRepository) error {
		for i := range demo {
			if err := products.Create(&demo[i]); err != nil {
				return err
			}
		}
		return nil
	})
}
