package billing

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kiranaledger/kirana-api/internal/application/dto"
	"github.com/kiranaledger/kirana-api/internal/domain"
	"github.com/kiranaledger/kirana-api/internal/domain/entity"
	"github.com/kiranaledger/kirana-api/internal/domain/repository"
)

// RecordPayment appends an immutable settlement to the sale and recomputes
// the derived payment state. The amount must be positive and must not exceed
// the remaining balance, so PaidAmount can never overshoot TotalAmount and a
// fully paid sale accepts no further payments.
func (uc *SaleUseCase) RecordPayment(ctx context.Context, saleID string, in dto.RecordPaymentRequest) (*dto.SaleResponse, error) {
	if !in.Amount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidAmount
	}
	method := entity.PaymentMethod(in.Method)
	if !method.Valid() {
		return nil, domain.ErrInvalidInput
	}

	var out *entity.Sale
	err := uc.runner.RunLedger(ctx, func(_ repository.ProductRepository, sales repository.SaleRepository) error {
		sale, err := sales.GetByID(saleID)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.ErrNotFound
		}
		if in.Amount.GreaterThan(sale.Remaining()) {
			return domain.ErrInvalidAmount
		}
		sale.Payments = append(sale.Payments, entity.Payment{
			ID:        uuid.New().String(),
			Amount:    in.Amount,
			Date:      uc.now(),
			Method:    method,
			Reference: in.Reference,
			Notes:     in.Notes,
		})
		sale.PaidAmount = sale.PaidAmount.Add(in.Amount)
		sale.PaymentStatus = entity.PaymentStatusFor(sale.PaidAmount, sale.TotalAmount)
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
