package repository

import "github.com/kiranaledger/kirana-api/internal/domain/entity"

// ProductRepository is the persistence port for Product. Lookups return
// (nil, nil) when the id is unknown; mutations fail with domain sentinels.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	List() ([]*entity.Product, error)
	Delete(id string) error
}
