package memory

import (
	"sort"

	"github.com/kiranaledger/kirana-api/internal/domain"
	"github.com/kiranaledger/kirana-api/internal/domain/entity"
	"github.com/kiranaledger/kirana-api/internal/domain/repository"
)

var (
	_ repository.SaleRepository = (*saleView)(nil)
	_ repository.SaleRepository = (*lockedSales)(nil)
)

// saleView accesses the store without locking; only valid inside a RunLedger
// callback.
type saleView struct {
	s *Store
}

func (r *saleView) Create(sale *entity.Sale) error {
	if _, ok := r.s.sales[sale.ID]; ok {
		return domain.ErrDuplicate
	}
	r.s.sales[sale.ID] = *sale.Clone()
	return nil
}

func (r *saleView) GetByID(id string) (*entity.Sale, error) {
	sale, ok := r.s.sales[id]
	if !ok {
		return nil, nil
	}
	return sale.Clone(), nil
}

func (r *saleView) Update(sale *entity.Sale) error {
	if _, ok := r.s.sales[sale.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.sales[sale.ID] = *sale.Clone()
	return nil
}

func (r *saleView) List() ([]*entity.Sale, error) {
	out := make([]*entity.Sale, 0, len(r.s.sales))
	for _, sale := range r.s.sales {
		out = append(out, sale.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *saleView) Delete(id string) error {
	if _, ok := r.s.sales[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.sales, id)
	return nil
}

func (r *saleView) ReferencesProduct(productID string) (bool, error) {
	for _, sale := range r.s.sales {
		for _, it := range sale.Items {
			if it.ProductID == productID {
				return true, nil
			}
		}
	}
	return false, nil
}

// lockedSales locks the store per call.
type lockedSales struct {
	s *Store
}

func (r *lockedSales) Create(sale *entity.Sale) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := (&saleView{s: r.s}).Create(sale); err != nil {
		return err
	}
	r.s.kpi = r.s.rebuildKPI()
	return nil
}

func (r *lockedSales) GetByID(id string) (*entity.Sale, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return (&saleView{s: r.s}).GetByID(id)
}

func (r *lockedSales) Update(sale *entity.Sale) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := (&saleView{s: r.s}).Update(sale); err != nil {
		return err
	}
	r.s.kpi = r.s.rebuildKPI()
	return nil
}

func (r *lockedSales) List() ([]*entity.Sale, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return (&saleView{s: r.s}).List()
}

func (r *lockedSales) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := (&saleView{s: r.s}).Delete(id); err != nil {
		return err
	}
	r.s.kpi = r.s.rebuildKPI()
	return nil
}

func (r *lockedSales) ReferencesProduct(productID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return (&saleView{s: r.s}).ReferencesProduct(productID)
}
