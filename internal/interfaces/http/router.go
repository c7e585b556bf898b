package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kiranaledger/kirana-api/internal/application/analytics"
	"github.com/kiranaledger/kirana-api/internal/application/billing"
	"github.com/kiranaledger/kirana-api/internal/application/usecase"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	SaleUC      *billing.SaleUseCase
	InvoicePDF  *billing.PDFUseCase
	DashboardUC *analytics.DashboardUseCase
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Post("/:id/adjust", productHandler.Adjust)

	sales := api.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC, deps.InvoicePDF)
	sales.Post("/", saleHandler.Create)
	sales.Get("/", saleHandler.List)
	sales.Get("/:id", saleHandler.GetByID)
	sales.Put("/:id", saleHandler.Update)
	sales.Delete("/:id", saleHandler.Delete)
	sales.Post("/:id/payments", saleHandler.RecordPayment)
	sales.Get("/:id/pdf", saleHandler.DownloadPDF)

	dashboard := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.GetSummary)
}
