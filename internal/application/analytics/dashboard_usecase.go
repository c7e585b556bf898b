// Package analytics exposes the financial KPI summary for the dashboard.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/kiranaledger/kirana-api/internal/application/dto"
	"github.com/kiranaledger/kirana-api/internal/domain/entity"
)

// KPISource provides the current derived aggregate. The ledger store rebuilds
// it after every mutation, so reads here are always consistent.
type KPISource interface {
	KPI() entity.KPI
}

// DashboardUseCase builds the dashboard summary.
type DashboardUseCase struct {
	source KPISource
	now    func() time.Time
}

// NewDashboardUseCase builds the use case.
func NewDashboardUseCase(source KPISource) *DashboardUseCase {
	return &DashboardUseCase{source: source, now: time.Now}
}

// GetSummary returns the lifetime and current-calendar-month KPIs.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) *dto.DashboardSummaryDTO {
	k := uc.source.KPI()
	return &dto.DashboardSummaryDTO{
		TotalSales:     k.TotalSales,
		TotalRevenue:   k.TotalRevenue,
		TotalProfit:    k.TotalProfit,
		MonthlySales:   k.MonthlySales,
		MonthlyRevenue: k.MonthlyRevenue,
		DateLabel:      monthLabel(uc.now()),
	}
}

// monthLabel returns a readable month tag, e.g. "August 2026".
func monthLabel(t time.Time) string {
	return fmt.Sprintf("%s %d", t.Month().String(), t.Year())
}
