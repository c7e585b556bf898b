package repository

import "github.com/kiranaledger/kirana-api/internal/domain/entity"

// SaleRepository is the persistence port for Sale (header, items and
// payments travel together as one aggregate).
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	// Update replaces the full sale record; there is no partial merge at
	// this level.
	Update(sale *entity.Sale) error
	List() ([]*entity.Sale, error)
	Delete(id string) error
	// ReferencesProduct reports whether any sale line references productID.
	// Product deletion is rejected while this holds.
	ReferencesProduct(productID string) (bool, error)
}
