package usecase

import (
	"context"

	"github.com/kiranaledger/kirana-api/internal/domain/repository"
)

// LedgerRunner executes fn atomically against the ledger state: no observer
// sees a partially-applied mutation, and derived aggregates are rebuilt after
// fn succeeds. Callbacks validate everything before their first write so a
// failed operation leaves state untouched.
type LedgerRunner interface {
	RunLedger(ctx context.Context, fn func(products repository.ProductRepository, sales repository.SaleRepository) error) error
}
