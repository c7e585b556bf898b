// Package pdf renders the printable GST tax invoice for a sale.
//
// A4 page layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Seller name + GSTIN  │  TAX INVOICE + No + Date    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  BUYER: Name + GSTIN + Place of supply + Shipping address   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: Qty | Description | HSN | Rate | Amount             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALS: Subtotal / CGST / SGST / IGST / GRAND TOTAL        │
//	│  AMOUNT IN WORDS                                            │
//	│  FOOTER: UPI payment QR + legend                            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/kiranaledger/kirana-api/internal/application/billing"
	"github.com/kiranaledger/kirana-api/internal/domain/entity"
	"github.com/kiranaledger/kirana-api/internal/domain/gst"
	"github.com/kiranaledger/kirana-api/pkg/money"
)

// ── Color palette ─────────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 15, Green: 82, Blue: 50}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoInvoiceGenerator implements billing.InvoicePDFGenerator using Maroto v2.
type MarotoInvoiceGenerator struct{}

// NewMarotoInvoiceGenerator builds the generator.
func NewMarotoInvoiceGenerator() *MarotoInvoiceGenerator { return &MarotoInvoiceGenerator{} }

var _ billing.InvoicePDFGenerator = (*MarotoInvoiceGenerator)(nil)

// GenerateInvoicePDF renders the tax invoice and returns its bytes.
func (g *MarotoInvoiceGenerator) GenerateInvoicePDF(
	_ context.Context,
	sale *entity.Sale,
	seller billing.SellerDetails,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Tax Invoice "+sale.InvoiceNumber, true).
		WithAuthor(seller.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(sale, seller))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(buyerRow(sale))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(sale.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(sale))
	m.AddRows(wordsRow(sale.TotalAmount))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	for _, r := range footerRows(sale, seller) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Sections ──────────────────────────────────────────────────────────────────

// headerRow: seller name + GSTIN (left), TAX INVOICE + number + date (right).
func headerRow(sale *entity.Sale, seller billing.SellerDetails) core.Row {
	date := sale.CreatedAt.Format("02/01/2006")

	left := col.New(7).Add(
		text.New(seller.Name, props.Text{
			Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
		}),
	)
	if seller.GSTIN != "" {
		left.Add(text.New("GSTIN: "+seller.GSTIN, props.Text{
			Size: 9, Top: 9, Color: colorGray,
		}))
	}
	if seller.Address != "" {
		left.Add(text.New(seller.Address, props.Text{
			Size: 8, Top: 14, Color: colorGray,
		}))
	}

	return row.New(20).Add(
		left,
		col.New(5).Add(
			text.New("TAX INVOICE", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(sale.InvoiceNumber, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Date: "+date, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// buyerRow: buyer identity and supply details.
func buyerRow(sale *entity.Sale) core.Row {
	gstin := sale.BuyerGSTIN
	if gstin == "" {
		gstin = "—"
	}
	second := fmt.Sprintf("GSTIN: %s   |   Place of supply: %s", gstin, sale.PlaceOfSupply)
	third := ""
	if sale.ShippingAddress != "" {
		third = "Ship to: " + sale.ShippingAddress
	}
	if !sale.DueDate.IsZero() {
		if third != "" {
			third += "   |   "
		}
		third += "Due: " + sale.DueDate.Format("02/01/2006")
	}

	c := col.New(12).Add(
		text.New("BILL TO", props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
		}),
		text.New(sale.BuyerName, props.Text{
			Style: fontstyle.Bold, Size: 10, Top: 6,
		}),
		text.New(second, props.Text{Size: 8, Top: 12, Color: colorGray}),
	)
	if third != "" {
		c.Add(text.New(third, props.Text{Size: 8, Top: 17, Color: colorGray}))
	}
	return row.New(22).Add(c)
}

// tableHeaderRow: item table header.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Qty", 1, align.Center),
		h("Description", 5, align.Left),
		h("HSN", 2, align.Center),
		h("Rate", 2, align.Right),
		h("Amount", 2, align.Right),
	)
}

// tableItemRows: one row per sale line.
func tableItemRows(items []entity.SaleItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				strconv.FormatInt(it.Quantity, 10),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				it.ProductName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				it.HSNCode,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				money.Plain(it.Price),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				money.Plain(it.Amount()),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: right-aligned totals block. Only the applicable tax family is
// printed: CGST+SGST for intra-state, IGST for inter-state.
func totalsRow(sale *entity.Sale) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}

	labels := []core.Component{label("Subtotal:")}
	values := []core.Component{value(money.INR(sale.Subtotal()))}
	if sale.IGST.IsZero() {
		labels = append(labels, label("CGST:"), label("SGST:"))
		values = append(values, value(money.INR(sale.CGST)), value(money.INR(sale.SGST)))
	} else {
		labels = append(labels, label("IGST:"))
		values = append(values, value(money.INR(sale.IGST)))
	}
	labels = append(labels, text.New("GRAND TOTAL:", props.Text{
		Style: fontstyle.Bold, Size: 10, Align: align.Right,
		Color: colorPrimary, Right: 2,
	}))
	values = append(values, text.New(money.INR(sale.TotalAmount), props.Text{
		Style: fontstyle.Bold, Size: 10, Align: align.Right,
		Color: colorPrimary, Right: 1,
	}))

	return row.New(30).Add(
		col.New(4),
		col.New(4).Add(labels...),
		col.New(4).Add(values...),
	)
}

// wordsRow: the amount-in-words line required on a tax invoice.
func wordsRow(total decimal.Decimal) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New("Amount in words: "+gst.AmountInWords(total)+" Only", props.Text{
			Style: fontstyle.Italic, Size: 8, Top: 2,
		}),
	))
}

// footerRows: UPI payment QR (when the seller has a UPI id) + legend.
func footerRows(sale *entity.Sale, seller billing.SellerDetails) []core.Row {
	rows := []core.Row{}
	if seller.UPIID != "" {
		rows = append(rows, row.New(45).Add(
			col.New(4).Add(code.NewQr(upiPayload(sale, seller), props.Rect{
				Percent: 95,
				Center:  true,
			})),
			col.New(8).Add(
				text.New("Scan the QR to pay this invoice via UPI.", props.Text{
					Size: 8, Top: 4, Left: 3, Color: colorGray,
				}),
				text.New(fmt.Sprintf("Payable: %s", money.INR(sale.Remaining())), props.Text{
					Style: fontstyle.Bold, Size: 10, Top: 20, Left: 3, Color: colorPrimary,
				}),
			),
		))
	}
	rows = append(rows, row.New(8).Add(col.New(12).Add(
		text.New("This is a computer generated invoice. Keep this document as your tax record.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	)))
	return rows
}

// upiPayload builds the upi://pay deep link encoded in the QR.
func upiPayload(sale *entity.Sale, seller billing.SellerDetails) string {
	q := url.Values{}
	q.Set("pa", seller.UPIID)
	q.Set("pn", seller.Name)
	q.Set("am", sale.TotalAmount.Round(2).StringFixed(2))
	q.Set("tn", "Invoice-"+sale.InvoiceNumber)
	return "upi://pay?" + q.Encode()
}
