package billing

import (
	"context"
	"fmt"
	"strings"

	"github.com/kiranaledger/kirana-api/internal/domain"
	"github.com/kiranaledger/kirana-api/internal/domain/repository"
)

// PDFUseCase renders the printable tax invoice for a recorded sale.
type PDFUseCase struct {
	sales     repository.SaleRepository
	generator InvoicePDFGenerator
	seller    SellerDetails
}

// NewPDFUseCase builds the use case.
func NewPDFUseCase(sales repository.SaleRepository, generator InvoicePDFGenerator, seller SellerDetails) *PDFUseCase {
	return &PDFUseCase{sales: sales, generator: generator, seller: seller}
}

// DownloadInvoicePDF fetches the sale and renders its tax invoice.
//
// Returns:
//   - (pdfBytes, filename, nil) on success
//   - domain.ErrNotFound if the sale does not exist
func (uc *PDFUseCase) DownloadInvoicePDF(ctx context.Context, saleID string) ([]byte, string, error) {
	sale, err := uc.sales.GetByID(saleID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: fetch sale: %w", err)
	}
	if sale == nil {
		return nil, "", domain.ErrNotFound
	}

	pdfBytes, err := uc.generator.GenerateInvoicePDF(ctx, sale, uc.seller)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: render invoice %s: %w", sale.InvoiceNumber, err)
	}

	// INV/2608/0001 -> invoice-INV-2608-0001.pdf
	filename := "invoice-" + strings.ReplaceAll(sale.InvoiceNumber, "/", "-") + ".pdf"
	return pdfBytes, filename, nil
}
