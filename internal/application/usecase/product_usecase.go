package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kiranaledger/kirana-api/internal/application/dto"
	"github.com/kiranaledger/kirana-api/internal/domain"
	"github.com/kiranaledger/kirana-api/internal/domain/entity"
	"github.com/kiranaledger/kirana-api/internal/domain/repository"
)

// ProductUseCase catalog CRUD plus inventory adjustment. All mutations run
// through the ledger so stock, sales and KPIs stay consistent.
type ProductUseCase struct {
	runner   LedgerRunner
	products repository.ProductRepository // standalone reads
	now      func() time.Time
}

// NewProductUseCase builds the use case.
func NewProductUseCase(runner LedgerRunner, products repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{runner: runner, products: products, now: time.Now}
}

// Create adds a product to the catalog. The id must be unique (duplicate SKUs
// are rejected too); price, cost price and opening quantity must be >= 0.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Price.IsNegative() || in.CostPrice.IsNegative() || in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	id := in.ID
	if id == "" {
		id = uuid.New().String()
	}
	now := uc.now()
	product := &entity.Product{
		ID:        id,
		Name:      in.Name,
		SKU:       in.SKU,
		HSNCode:   in.HSNCode,
		Price:     in.Price,
		CostPrice: in.CostPrice,
		Quantity:  in.Quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err := uc.runner.RunLedger(ctx, func(products repository.ProductRepository, _ repository.SaleRepository) error {
		if existing, err := products.GetBySKU(in.SKU); err != nil {
			return err
		} else if existing != nil {
			return domain.ErrDuplicate
		}
		return products.Create(product)
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update merges the non-nil fields of the patch into an existing product.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if (in.Price != nil && in.Price.IsNegative()) || (in.CostPrice != nil && in.CostPrice.IsNegative()) {
		return nil, domain.ErrInvalidInput
	}
	var out *entity.Product
	err := uc.runner.RunLedger(ctx, func(products repository.ProductRepository, _ repository.SaleRepository) error {
		product, err := products.GetByID(id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if in.Name != nil {
			product.Name = *in.Name
		}
		if in.SKU != nil {
			product.SKU = *in.SKU
		}
		if in.HSNCode != nil {
			product.HSNCode = *in.HSNCode
		}
		if in.Price != nil {
			product.Price = *in.Price
		}
		if in.CostPrice != nil {
			product.CostPrice = *in.CostPrice
		}
		if in.Quantity != nil {
			product.Quantity = *in.Quantity
		}
		product.UpdatedAt = uc.now()
		if err := products.Update(product); err != nil {
			return err
		}
		out = product
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(out), nil
}

// Delete removes a product. Fails with domain.ErrProductInUse while any
// recorded sale still references it. Sale snapshots are not cascaded.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.runner.RunLedger(ctx, func(products repository.ProductRepository, sales repository.SaleRepository) error {
		product, err := products.GetByID(id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		referenced, err := sales.ReferencesProduct(id)
		if err != nil {
			return err
		}
		if referenced {
			return domain.ErrProductInUse
		}
		return products.Delete(id)
	})
}

// AdjustInventory applies quantity += delta (addition) or -= delta (removal).
// Delta must be positive. Stock is not floored at zero: an oversold product
// goes negative rather than blocking the operation.
func (uc *ProductUseCase) AdjustInventory(ctx context.Context, id string, delta int64, isAddition bool) (*dto.ProductResponse, error) {
	if delta <= 0 {
		return nil, domain.ErrInvalidInput
	}
	var out *entity.Product
	err := uc.runner.RunLedger(ctx, func(products repository.ProductRepository, _ repository.SaleRepository) error {
		product, err := products.GetByID(id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if isAddition {
			product.Quantity += delta
		} else {
			product.Quantity -= delta
		}
		product.UpdatedAt = uc.now()
		if err := products.Update(product); err != nil {
			return err
		}
		out = product
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(out), nil
}

// GetByID fetches one product.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// List returns the full catalog ordered by creation time.
func (uc *ProductUseCase) List(ctx context.Context) (*dto.ProductListResponse, error) {
	list, err := uc.products.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		SKU:       p.SKU,
		HSNCode:   p.HSNCode,
		Price:     p.Price,
		CostPrice: p.CostPrice,
		Quantity:  p.Quantity,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
