package billing

import (
	"context"

	"github.com/kiranaledger/kirana-api/internal/domain/entity"
	"github.com/kiranaledger/kirana-api/internal/domain/repository"
)

// LedgerRunner executes fn atomically against the ledger state with both
// collections in scope; derived aggregates are rebuilt after fn succeeds.
type LedgerRunner interface {
	RunLedger(ctx context.Context, fn func(products repository.ProductRepository, sales repository.SaleRepository) error) error
}

// InvoiceSequence issues the next invoice number.
type InvoiceSequence interface {
	Next() string
}

// SellerDetails identity block printed on tax invoices.
type SellerDetails struct {
	Name    string
	GSTIN   string
	Address string
	UPIID   string
}

// InvoicePDFGenerator renders the tax-invoice document for a sale.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, sale *entity.Sale, seller SellerDetails) ([]byte, error)
}
