package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/locdecor/locdecor/internal/domain"
)

func TestMonthlyGrowth(t *testing.T) {
	tests := []struct {
		name     string
		current  int
		previous int
		expected float64
	}{
		{"empty previous month reads as zero", 12, 0, 0},
		{"fifty percent growth", 15, 10, 50},
		{"negative growth", 5, 10, -50},
		{"flat", 7, 7, 0},
		{"both empty", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, MonthlyGrowth(tt.current, tt.previous), 0.001)
		})
	}
}

func TestOccupancyRate(t *testing.T) {
	t.Run("empty window yields zero", func(t *testing.T) {
		assert.Zero(t, OccupancyRate(nil))
	})

	t.Run("averages utilization across rows", func(t *testing.T) {
		rows := []domain.ItemAvailability{
			{AvailableQuantity: 5, ReservedQuantity: 5},  // 50%
			{AvailableQuantity: 0, ReservedQuantity: 10}, // 100%
		}
		assert.InDelta(t, 75.0, OccupancyRate(rows), 0.001)
	})

	t.Run("rows with no stock contribute zero", func(t *testing.T) {
		rows := []domain.ItemAvailability{
			{AvailableQuantity: 0, ReservedQuantity: 0},
			{AvailableQuantity: 5, ReservedQuantity: 5},
		}
		assert.InDelta(t, 25.0, OccupancyRate(rows), 0.001)
	})
}

func TestComputeMetrics(t *testing.T) {
	repeatClient := uuid.New()
	oneOffClient := uuid.New()

	orders := []domain.Order{
		{OrderStatus: domain.OrderStatusPending},
		{OrderStatus: domain.OrderStatusCompleted},
		{OrderStatus: domain.OrderStatusCompleted},
		{OrderStatus: domain.OrderStatusCanceled},
	}
	transactions := []domain.Transaction{
		{Type: domain.TransactionIncome, Amount: decimal.NewFromInt(500)},
		{Type: domain.TransactionIncome, Amount: decimal.NewFromInt(250)},
		{Type: domain.TransactionExpense, Amount: decimal.NewFromInt(100)},
	}
	clientIDs := []uuid.UUID{repeatClient, repeatClient, oneOffClient}
	availability := []domain.ItemAvailability{
		{AvailableQuantity: 5, ReservedQuantity: 5},
	}

	metrics := ComputeMetrics(orders, transactions, clientIDs, availability, 2)

	assert.Equal(t, 4, metrics.TotalOrders)
	assert.Equal(t, 2, metrics.CompletedOrders)
	assert.Equal(t, 1, metrics.CanceledOrders)
	assert.True(t, metrics.Revenue.Equal(decimal.NewFromInt(750)))
	assert.True(t, metrics.Expenses.Equal(decimal.NewFromInt(100)))
	assert.True(t, metrics.Balance.Equal(decimal.NewFromInt(650)))
	assert.Equal(t, 1, metrics.ReturningCustomers)
	assert.InDelta(t, 50.0, metrics.OccupationRate, 0.001)
	assert.InDelta(t, 100.0, metrics.MonthlyGrowth, 0.001)
}

func TestMonthlyRevenue(t *testing.T) {
	start := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)

	transactions := []domain.Transaction{
		{Type: domain.TransactionIncome, Amount: decimal.NewFromInt(300), Date: time.Date(2026, time.June, 10, 0, 0, 0, 0, time.UTC)},
		{Type: domain.TransactionIncome, Amount: decimal.NewFromInt(200), Date: time.Date(2026, time.June, 20, 0, 0, 0, 0, time.UTC)},
		{Type: domain.TransactionExpense, Amount: decimal.NewFromInt(999), Date: time.Date(2026, time.July, 5, 0, 0, 0, 0, time.UTC)},
		{Type: domain.TransactionIncome, Amount: decimal.NewFromInt(100), Date: time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)},
	}

	points := MonthlyRevenue(transactions, start, 3)

	assert.Len(t, points, 3)
	assert.Equal(t, "Jun/2026", points[0].Date)
	assert.True(t, points[0].Value.Equal(decimal.NewFromInt(500)))
	// expenses never count as revenue
	assert.Equal(t, "Jul/2026", points[1].Date)
	assert.True(t, points[1].Value.Equal(decimal.Zero))
	assert.Equal(t, "Aug/2026", points[2].Date)
	assert.True(t, points[2].Value.Equal(decimal.NewFromInt(100)))
}

func TestDailyOccupancy(t *testing.T) {
	day1 := time.Date(2026, time.August, 20, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, time.August, 21, 0, 0, 0, 0, time.UTC)

	rows := []domain.ItemAvailability{
		{Date: day1, AvailableQuantity: 5, ReservedQuantity: 5},
		{Date: day1, AvailableQuantity: 0, ReservedQuantity: 10},
		{Date: day2, AvailableQuantity: 2, ReservedQuantity: 1},
	}

	points := DailyOccupancy(rows)

	assert.Len(t, points, 2)
	assert.Equal(t, "20/08", points[0].Date)
	assert.InDelta(t, 150.0, points[0].Value, 0.001)
	assert.Equal(t, "21/08", points[1].Date)
	assert.InDelta(t, 33.33, points[1].Value, 0.001)
}
