package entity

import "github.com/shopspring/decimal"

// KPI is the derived financial aggregate. It has no lifecycle of its own: the
// ledger rebuilds it from scratch after every mutation of the product or sale
// collections, so it is always either fully consistent or not yet visible.
type KPI struct {
	TotalSales     int64
	TotalRevenue   decimal.Decimal
	TotalProfit    decimal.Decimal
	MonthlyRevenue decimal.Decimal
	MonthlySales   int64
}

// ZeroKPI returns a KPI with all monetary fields set to decimal zero rather
// than the zero value, so JSON encoding is uniform.
func ZeroKPI() KPI {
	return KPI{
		TotalRevenue:   decimal.Zero,
		TotalProfit:    decimal.Zero,
		MonthlyRevenue: decimal.Zero,
	}
}
