// Package memory is the authoritative store for the ledger: the product and
// sale collections plus the derived KPI aggregate, held in process memory
// behind one RWMutex. There is no durability; state lives and dies with the
// process.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kiranaledger/kirana-api/internal/domain/entity"
	"github.com/kiranaledger/kirana-api/internal/domain/repository"
)

// Store owns the ledger state. Use cases mutate it through RunLedger, which
// serializes mutations, hands the callback unlocked repository views and
// rebuilds the KPI aggregate once the callback succeeds. Standalone
// repositories from Products()/Sales() lock per call and are safe for reads
// from any goroutine.
type Store struct {
	mu       sync.RWMutex
	products map[string]entity.Product
	sales    map[string]entity.Sale
	kpi      entity.KPI
	now      func() time.Time
}

// NewStore builds an empty store.
func NewStore() *Store {
	return NewStoreAt(time.Now)
}

// NewStoreAt is NewStore with an injected clock (the clock decides which
// sales count as "this month" in the KPI rebuild).
func NewStoreAt(now func() time.Time) *Store {
	return &Store{
		products: make(map[string]entity.Product),
		sales:    make(map[string]entity.Sale),
		kpi:      entity.ZeroKPI(),
		now:      now,
	}
}

// RunLedger runs fn under the write lock with repository views bound to the
// locked store, then rebuilds the KPI. Callbacks must validate before their
// first write: an error aborts the KPI rebuild but does not undo writes the
// callback already made.
func (s *Store) RunLedger(_ context.Context, fn func(products repository.ProductRepository, sales repository.SaleRepository) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := fn(&productView{s: s}, &saleView{s: s}); err != nil {
		return err
	}
	s.kpi = s.rebuildKPI()
	return nil
}

// Products returns a repository that locks per call.
func (s *Store) Products() repository.ProductRepository {
	return &lockedProducts{s: s}
}

// Sales returns a repository that locks per call.
func (s *Store) Sales() repository.SaleRepository {
	return &lockedSales{s: s}
}

// KPI returns a copy of the current aggregate. Rebuilding with no
// intervening mutation yields the same value.
func (s *Store) KPI() entity.KPI {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.kpi
}

// rebuildKPI walks the full sale and product collections. Called with the
// write lock held. Full recompute over incremental update: collections are
// small and the aggregate can never drift.
func (s *Store) rebuildKPI() entity.KPI {
	now := s.now()
	k := entity.ZeroKPI()
	for _, sale := range s.sales {
		k.TotalSales++
		k.TotalRevenue = k.TotalRevenue.Add(sale.TotalAmount)
		for _, it := range sale.Items {
			p, ok := s.products[it.ProductID]
			if !ok {
				continue
			}
			line := it.Price.Sub(p.CostPrice).Mul(decimal.NewFromInt(it.Quantity))
			k.TotalProfit = k.TotalProfit.Add(line)
		}
		if sale.CreatedAt.Year() == now.Year() && sale.CreatedAt.Month() == now.Month() {
			k.MonthlySales++
			k.MonthlyRevenue = k.MonthlyRevenue.Add(sale.TotalAmount)
		}
	}
	return k
}
