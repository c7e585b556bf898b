package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO financial KPIs for the dashboard. All figures are
// rebuilt from the full sale and product collections, never incrementally
// patched.
type DashboardSummaryDTO struct {
	TotalSales     int64           `json:"total_sales"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	TotalProfit    decimal.Decimal `json:"total_profit"`
	MonthlySales   int64           `json:"monthly_sales"`
	MonthlyRevenue decimal.Decimal `json:"monthly_revenue"`
	DateLabel      string          `json:"date_label"`
}
