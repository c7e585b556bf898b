package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/kiranaledger/kirana-api/internal/application/billing"
	"github.com/kiranaledger/kirana-api/internal/application/dto"
)

// SaleHandler handles HTTP requests for sales, payments and invoice PDFs.
type SaleHandler struct {
	uc  *billing.SaleUseCase
	pdf *billing.PDFUseCase
}

// NewSaleHandler builds the handler.
func NewSaleHandler(uc *billing.SaleUseCase, pdf *billing.PDFUseCase) *SaleHandler {
	return &SaleHandler{uc: uc, pdf: pdf}
}

// Create godoc
// @Summary      Record a sale
// @Description  Snapshots item prices, computes GST against the configured home state, assigns the next invoice number and decrements stock.
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "Sale data"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Fetch one sale
// @Tags         sales
// @Produce      json
// @Param        id   path  string  true  "Sale id"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [get]
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      List recorded sales
// @Tags         sales
// @Produce      json
// @Success      200  {object}  dto.SaleListResponse
// @Router       /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Update buyer details on a sale
// @Description  Item lines, totals and the invoice number are immutable once recorded.
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Sale id"
// @Param        body  body  dto.UpdateSaleRequest  true  "Fields to update"
// @Success      200   {object}  dto.SaleResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [put]
func (h *SaleHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSaleRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.UpdateDetails(c.Context(), c.Params("id"), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Delete a sale and restore its stock
// @Tags         sales
// @Param        id  path  string  true  "Sale id"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [delete]
func (h *SaleHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return writeDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RecordPayment godoc
// @Summary      Record a payment against a sale
// @Description  Rejects amounts above the outstanding balance with 422. Settlement status moves pending -> partial -> paid.
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Sale id"
// @Param        body  body  dto.RecordPaymentRequest  true  "Payment"
// @Success      200   {object}  dto.SaleResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/payments [post]
func (h *SaleHandler) RecordPayment(c *fiber.Ctx) error {
	var in dto.RecordPaymentRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.RecordPayment(c.Context(), c.Params("id"), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// DownloadPDF godoc
// @Summary      Download the tax invoice as PDF
// @Tags         sales
// @Produce      application/pdf
// @Param        id  path  string  true  "Sale id"
// @Success      200  {file}  file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/pdf [get]
func (h *SaleHandler) DownloadPDF(c *fiber.Ctx) error {
	data, filename, err := h.pdf.DownloadInvoicePDF(c.Context(), c.Params("id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(data)
}
