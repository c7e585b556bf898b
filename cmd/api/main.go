package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/kiranaledger/kirana-api/internal/application/analytics"
	"github.com/kiranaledger/kirana-api/internal/application/billing"
	"github.com/kiranaledger/kirana-api/internal/application/usecase"
	"github.com/kiranaledger/kirana-api/internal/infrastructure/memory"
	infrapdf "github.com/kiranaledger/kirana-api/internal/infrastructure/pdf"
	httpRouter "github.com/kiranaledger/kirana-api/internal/interfaces/http"
	"github.com/kiranaledger/kirana-api/pkg/config"
	"github.com/kiranaledger/kirana-api/pkg/logger"
	"github.com/kiranaledger/kirana-api/pkg/sequence"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	store := memory.NewStore()
	if cfg.App.SeedDemo {
		if err := store.SeedDemo(context.Background()); err != nil {
			log.Fatal().Err(err).Msg("seed demo catalog")
		}
		log.Info().Msg("demo catalog loaded")
	}

	invoiceSeq := sequence.NewInvoiceCounter(cfg.GST.InvoicePrefix)

	productUC := usecase.NewProductUseCase(store, store.Products())
	saleUC := billing.NewSaleUseCase(store, store.Sales(), invoiceSeq, billing.GSTConfig{
		RatePercent: cfg.GST.Rate(),
		HomeState:   cfg.GST.HomeState,
	})

	seller := billing.SellerDetails{
		Name:    cfg.Company.Name,
		GSTIN:   cfg.Company.GSTIN,
		Address: cfg.Company.Address,
		UPIID:   cfg.Company.UPIID,
	}
	pdfGenerator := infrapdf.NewMarotoInvoiceGenerator()
	invoicePDFUC := billing.NewPDFUseCase(store.Sales(), pdfGenerator, seller)

	dashboardUC := analytics.NewDashboardUseCase(store)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI locally: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Kirana Ledger API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:   productUC,
		SaleUC:      saleUC,
		InvoicePDF:  invoicePDFUC,
		DashboardUC: dashboardUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
