package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardMetrics is the reduced summary shown on the dashboard for a window
type DashboardMetrics struct {
	TotalOrders        int             `json:"total_orders"`
	CompletedOrders    int             `json:"completed_orders"`
	CanceledOrders     int             `json:"canceled_orders"`
	Revenue            decimal.Decimal `json:"revenue"`
	Expenses           decimal.Decimal `json:"expenses"`
	Balance            decimal.Decimal `json:"balance"`
	OccupationRate     float64         `json:"occupation_rate"`
	ReturningCustomers int             `json:"returning_customers"`
	MonthlyGrowth      float64         `json:"monthly_growth"`
}

// ChartPoint is one point of a dashboard time series
type ChartPoint struct {
	Date  string          `json:"date"`
	Value decimal.Decimal `json:"value"`
}

// OccupancyPoint is one day of the occupancy chart
type OccupancyPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// ReportData is the payload handed to the document renderers
type ReportData struct {
	Metrics      DashboardMetrics `json:"metrics"`
	RevenueChart []ChartPoint     `json:"revenue_chart"`
	GeneratedAt  time.Time        `json:"generated_at"`
	PeriodStart  time.Time        `json:"period_start"`
	PeriodEnd    time.Time        `json:"period_end"`
}
