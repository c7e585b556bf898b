package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiranaledger/kirana-api/internal/application/analytics"
	"github.com/kiranaledger/kirana-api/internal/application/billing"
	"github.com/kiranaledger/kirana-api/internal/application/dto"
	"github.com/kiranaledger/kirana-api/internal/application/usecase"
	"github.com/kiranaledger/kirana-api/internal/infrastructure/memory"
	infrapdf "github.com/kiranaledger/kirana-api/internal/infrastructure/pdf"
	apphttp "github.com/kiranaledger/kirana-api/internal/interfaces/http"
	"github.com/kiranaledger/kirana-api/pkg/sequence"
)

// buildTestApp wires a Fiber app over a fresh in-memory store with the demo
// catalog loaded.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	store := memory.NewStore()
	require.NoError(t, store.SeedDemo(t.Context()))

	seq := sequence.NewInvoiceCounter("INV")
	productUC := usecase.NewProductUseCase(store, store.Products())
	saleUC := billing.NewSaleUseCase(store, store.Sales(), seq, billing.GSTConfig{
		RatePercent: decimal.NewFromInt(18),
		HomeState:   "Karnataka",
	})
	seller := billing.SellerDetails{
		Name:    "Sri Ganesh Kirana",
		GSTIN:   "29AAAAA0000A1Z5",
		Address: "12 Market Road, Bengaluru",
		UPIID:   "sriganesh@upi",
	}
	pdfUC := billing.NewPDFUseCase(store.Sales(), infrapdf.NewMarotoInvoiceGenerator(), seller)
	dashboardUC := analytics.NewDashboardUseCase(store)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ProductUC:   productUC,
		SaleUC:      saleUC,
		InvoicePDF:  pdfUC,
		DashboardUC: dashboardUC,
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeInto(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestProductEndpoints(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/products", fiber.Map{
		"name":     "Aashirvaad Atta (10kg)",
		"sku":      "AA10KG",
		"hsn_code": "1101",
		"price":    "450",
		"quantity": 40,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created dto.ProductResponse
	decodeInto(t, resp, &created)
	assert.NotEmpty(t, created.ID)

	resp = doJSON(t, app, http.MethodGet, "/api/products", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list dto.ProductListResponse
	decodeInto(t, resp, &list)
	assert.Equal(t, 3, list.Total, "two seeded products plus the new one")

	// Missing required fields fail validation before the use case runs.
	resp = doJSON(t, app, http.MethodPost, "/api/products", fiber.Map{"name": "No SKU"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Duplicate SKU maps to 409.
	resp = doJSON(t, app, http.MethodPost, "/api/products", fiber.Map{
		"name": "Copy", "sku": "AA10KG",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/products/missing", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSaleLifecycleOverHTTP(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/sales", fiber.Map{
		"buyer_name":      "Sharma Stores",
		"place_of_supply": "Karnataka",
		"items": []fiber.Map{
			{"product_id": "1", "quantity": 10},
		},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var sale dto.SaleResponse
	decodeInto(t, resp, &sale)
	assert.True(t, strings.HasPrefix(sale.InvoiceNumber, "INV/"), sale.InvoiceNumber)
	assert.True(t, sale.TotalAmount.Equal(decimal.NewFromInt(944)), sale.TotalAmount.String())
	assert.Equal(t, "pending", sale.PaymentStatus)

	// Overpayment is a 422.
	resp = doJSON(t, app, http.MethodPost, "/api/sales/"+sale.ID+"/payments", fiber.Map{
		"amount": "2000", "method": "cash",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/sales/"+sale.ID+"/payments", fiber.Map{
		"amount": "944", "method": "upi",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var settled dto.SaleResponse
	decodeInto(t, resp, &settled)
	assert.Equal(t, "paid", settled.PaymentStatus)

	// Product deletion is blocked while the sale references it.
	resp = doJSON(t, app, http.MethodDelete, "/api/products/1", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, "/api/sales/"+sale.ID, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestSaleUnknownProductOverHTTP(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/sales", fiber.Map{
		"buyer_name":      "Walk-in",
		"place_of_supply": "Karnataka",
		"items": []fiber.Map{
			{"product_id": "ghost", "quantity": 1},
		},
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestInvoicePDFDownload(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/sales", fiber.Map{
		"buyer_name":      "Sharma Stores",
		"place_of_supply": "Karnataka",
		"items": []fiber.Map{
			{"product_id": "1", "quantity": 2},
		},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var sale dto.SaleResponse
	decodeInto(t, resp, &sale)

	resp = doJSON(t, app, http.MethodGet, "/api/sales/"+sale.ID+"/pdf", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "attachment")

	data, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "response body must be a PDF document")
}

func TestDashboardSummaryOverHTTP(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/sales", fiber.Map{
		"buyer_name":      "Walk-in",
		"place_of_supply": "Karnataka",
		"items": []fiber.Map{
			{"product_id": "2", "quantity": 4},
		},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/dashboard/summary", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var summary dto.DashboardSummaryDTO
	decodeInto(t, resp, &summary)
	assert.Equal(t, int64(1), summary.TotalSales)
	assert.Equal(t, int64(1), summary.MonthlySales)
	// 4 x 25 = 100 subtotal, 18% GST -> 118 total.
	assert.True(t, summary.TotalRevenue.Equal(decimal.NewFromInt(118)), summary.TotalRevenue.String())
	assert.NotEmpty(t, summary.DateLabel)
}
