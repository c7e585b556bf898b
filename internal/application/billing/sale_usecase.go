// Package billing holds the sale lifecycle: creating a sale (which computes
// GST, assigns the invoice number and decrements stock), deleting it (which
// restores stock item by item), and settling it through payments.
package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kiranaledger/kirana-api/internal/application/dto"
	"github.com/kiranaledger/kirana-api/internal/domain"
	"github.com/kiranaledger/kirana-api/internal/domain/entity"
	"github.com/kiranaledger/kirana-api/internal/domain/gst"
	"github.com/kiranaledger/kirana-api/internal/domain/repository"
)

// GSTConfig tax parameters for the sale use case.
type GSTConfig struct {
	RatePercent decimal.Decimal
	HomeState   string
}

// SaleUseCase creates, replaces and deletes sales.
type SaleUseCase struct {
	runner LedgerRunner
	sales  repository.SaleRepository // standalone reads
	seq    InvoiceSequence
	cfg    GSTConfig
	now    func() time.Time
}

// NewSaleUseCase builds the use case.
func NewSaleUseCase(runner LedgerRunner, sales repository.SaleRepository, seq InvoiceSequence, cfg GSTConfig) *SaleUseCase {
	return &SaleUseCase{runner: runner, sales: sales, seq: seq, cfg: cfg, now: time.Now}
}

// Create records a sale. Every item must reference an existing product with a
// positive quantity; item price and HSN code are snapshotted from the catalog
// (an explicit positive price on the request overrides the catalog price).
// Committing the sale decrements each product's stock by the sold quantity
// (below zero if oversold), and the decrement is reverted in the same per-item
// granularity by Delete.
func (uc *SaleUseCase) Create(ctx context.Context, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	id := in.ID
	if id == "" {
		id = uuid.New().String()
	}

	var sale *entity.Sale
	err := uc.runner.RunLedger(ctx, func(products repository.ProductRepository, sales repository.SaleRepository) error {
		// Validation phase: nothing is written until every check passed, so
		// a failure leaves both collections untouched.
		if existing, err := sales.GetByID(id); err != nil {
			return err
		} else if existing != nil {
			return domain.ErrDuplicate
		}
		resolved := make([]*entity.Product, len(in.Items))
		items := make([]entity.SaleItem, len(in.Items))
		for i, reqItem := range in.Items {
			if reqItem.Quantity <= 0 {
				return domain.ErrInvalidInput
			}
			if reqItem.Price.IsNegative() {
				return domain.ErrInvalidInput
			}
			product, err := products.GetByID(reqItem.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			price := reqItem.Price
			if price.IsZero() {
				price = product.Price
			}
			resolved[i] = product
			items[i] = entity.SaleItem{
				ProductID:   product.ID,
				ProductName: product.Name,
				HSNCode:     product.HSNCode,
				Price:       price,
				Quantity:    reqItem.Quantity,
			}
		}

		subtotal := decimal.Zero
		for _, it := range items {
			subtotal = subtotal.Add(it.Amount())
		}
		breakup, err := gst.Compute(subtotal, in.PlaceOfSupply, uc.cfg.HomeState, uc.cfg.RatePercent)
		if err != nil {
			return err
		}

		// Apply phase: decrement stock per item, then insert the sale.
		now := uc.now()
		for i, product := range resolved {
			product.Quantity -= items[i].Quantity
			product.UpdatedAt = now
			if err := products.Update(product); err != nil {
				return err
			}
		}
		sale = &entity.Sale{
			ID:              id,
			InvoiceNumber:   uc.seq.Next(),
			BuyerName:       in.BuyerName,
			BuyerGSTIN:      in.BuyerGSTIN,
			PlaceOfSupply:   in.PlaceOfSupply,
			ShippingAddress: in.ShippingAddress,
			DueDate:         in.DueDate,
			Items:           items,
			TotalAmount:     breakup.Total,
			CGST:            breakup.CGST,
			SGST:            breakup.SGST,
			IGST:            breakup.IGST,
			PaidAmount:      decimal.Zero,
			PaymentStatus:   entity.PaymentStatusPending,
			Payments:        []entity.Payment{},
			CreatedAt:       now,
		}
		return sales.Create(sale)
	})
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// Replace swaps the full sale record for a new value. It never re-triggers
// inventory adjustment: items are assumed unchanged across a replace.
func (uc *SaleUseCase) Replace(ctx context.Context, sale *entity.Sale) error {
	return uc.runner.RunLedger(ctx, func(_ repository.ProductRepository, sales repository.SaleRepository) error {
		return sales.Update(sale)
	})
}

// UpdateDetails merges editable buyer fields into the sale. Items, taxes and
// the invoice number are immutable after creation; settlement state changes
// only through RecordPayment.
func (uc *SaleUseCase) UpdateDetails(ctx context.Context, id string, in dto.UpdateSaleRequest) (*dto.SaleResponse, error) {
	var out *entity.Sale
	err := uc.runner.RunLedger(ctx, func(_ repository.ProductRepository, sales repository.SaleRepository) error {
		sale, err := sales.GetByID(id)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.ErrNotFound
		}
		if in.BuyerName != nil {
			sale.BuyerName = *in.BuyerName
		}
		if in.BuyerGSTIN != nil {
			sale.BuyerGSTIN = *in.BuyerGSTIN
		}
		if in.ShippingAddress != nil {
			sale.ShippingAddress = *in.ShippingAddress
		}
		if in.DueDate != nil {
			sale.DueDate = *in.DueDate
		}
		if err := sales.Update(sale); err != nil {
			return err
		}
		out = sale
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toSaleResponse(out), nil
}

// Delete removes a sale and restores each referenced product's stock by the
// sold quantity, reverting Create's decrement in full.
func (uc *SaleUseCase) Delete(ctx context.Context, id string) error {
	return uc.runner.RunLedger(ctx, func(products repository.ProductRepository, sales repository.SaleRepository) error {
		sale, err := sales.GetByID(id)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.ErrNotFound
		}
		now := uc.now()
		for _, it := range sale.Items {
			product, err := products.GetByID(it.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				// Products cannot be deleted while referenced, so every
				// line still resolves.
				continue
			}
			product.Quantity += it.Quantity
			product.UpdatedAt = now
			if err := products.Update(product); err != nil {
				return err
			}
		}
		return sales.Delete(id)
	})
}

// GetByID fetches a sale with items and payments.
func (uc *SaleUseCase) GetByID(ctx context.Context, id string) (*dto.SaleResponse, error) {
	sale, err := uc.sales.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	return toSaleResponse(sale), nil
}

// List returns all sales ordered by creation time.
func (uc *SaleUseCase) List(ctx context.Context) (*dto.SaleListResponse, error) {
	list, err := uc.sales.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSaleResponse(s))
	}
	return &dto.SaleListResponse{Items: items, Total: len(items)}, nil
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	if s == nil {
		return nil
	}
	resp := &dto.SaleResponse{
		ID:              s.ID,
		InvoiceNumber:   s.InvoiceNumber,
		BuyerName:       s.BuyerName,
		BuyerGSTIN:      s.BuyerGSTIN,
		PlaceOfSupply:   s.PlaceOfSupply,
		ShippingAddress: s.ShippingAddress,
		DueDate:         s.DueDate,
		Items:           make([]dto.SaleItemResponse, 0, len(s.Items)),
		Subtotal:        s.Subtotal(),
		CGST:            s.CGST,
		SGST:            s.SGST,
		IGST:            s.IGST,
		TotalAmount:     s.TotalAmount,
		PaidAmount:      s.PaidAmount,
		PaymentStatus:   string(s.PaymentStatus),
		Payments:        make([]dto.PaymentResponse, 0, len(s.Payments)),
		CreatedAt:       s.CreatedAt,
	}
	for _, it := range s.Items {
		resp.Items = append(resp.Items, dto.SaleItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			HSNCode:     it.HSNCode,
			Price:       it.Price,
			Quantity:    it.Quantity,
			Amount:      it.Amount(),
		})
	}
	for _, p := range s.Payments {
		resp.Payments = append(resp.Payments, dto.PaymentResponse{
			ID:        p.ID,
			Amount:    p.Amount,
			Date:      p.Date,
			Method:    string(p.Method),
			Reference: p.Reference,
			Notes:     p.Notes,
		})
	}
	return resp
}
