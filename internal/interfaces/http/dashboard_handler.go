package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kiranaledger/kirana-api/internal/application/analytics"
)

// DashboardHandler serves derived business KPIs.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler builds the handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary godoc
// @Summary      Dashboard summary
// @Description  Totals over all recorded sales plus revenue and count for the current calendar month.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	return c.JSON(h.uc.GetSummary(c.Context()))
}
