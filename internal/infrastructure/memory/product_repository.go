package memory

import (
	"sort"

	"github.com/kiranaledger/kirana-api/internal/domain"
	"github.com/kiranaledger/kirana-api/internal/domain/entity"
	"github.com/kiranaledger/kirana-api/internal/domain/repository"
)

var (
	_ repository.ProductRepository = (*productView)(nil)
	_ repository.ProductRepository = (*lockedProducts)(nil)
)

// productView accesses the store without locking; only valid inside a
// RunLedger callback.
type productView struct {
	s *Store
}

func (r *productView) Create(p *entity.Product) error {
	if _, ok := r.s.products[p.ID]; ok {
		return domain.ErrDuplicate
	}
	r.s.products[p.ID] = *p.Clone()
	return nil
}

func (r *productView) GetByID(id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	return p.Clone(), nil
}

func (r *productView) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.s.products {
		if p.SKU == sku {
			return p.Clone(), nil
		}
	}
	return nil, nil
}

func (r *productView) Update(p *entity.Product) error {
	if _, ok := r.s.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.products[p.ID] = *p.Clone()
	return nil
}

func (r *productView) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		out = append(out, p.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *productView) Delete(id string) error {
	if _, ok := r.s.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.products, id)
	return nil
}

// lockedProducts locks the store per call; mutations rebuild the KPI so the
// aggregate stays consistent no matter which path wrote.
type lockedProducts struct {
	s *Store
}

func (r *lockedProducts) Create(p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := (&productView{s: r.s}).Create(p); err != nil {
		return err
	}
	r.s.kpi = r.s.rebuildKPI()
	return nil
}

func (r *lockedProducts) GetByID(id string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return (&productView{s: r.s}).GetByID(id)
}

func (r *lockedProducts) GetBySKU(sku string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return (&productView{s: r.s}).GetBySKU(sku)
}

func (r *lockedProducts) Update(p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := (&productView{s: r.s}).Update(p); err != nil {
		return err
	}
	r.s.kpi = r.s.rebuildKPI()
	return nil
}

func (r *lockedProducts) List() ([]*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return (&productView{s: r.s}).List()
}

func (r *lockedProducts) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := (&productView{s: r.s}).Delete(id); err != nil {
		return err
	}
	r.s.kpi = r.s.rebuildKPI()
	return nil
}
