package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOrderTotal(t *testing.T) {
	t.Run("sums quantity times unit price", func(t *testing.T) {
		items := []OrderItemInput{
			{Quantity: 2, UnitPrice: decimal.NewFromInt(50)},
			{Quantity: 1, UnitPrice: decimal.NewFromInt(30)},
		}
		assert.True(t, OrderTotal(items).Equal(decimal.NewFromInt(130)))
	})

	t.Run("empty order totals zero", func(t *testing.T) {
		assert.True(t, OrderTotal(nil).Equal(decimal.Zero))
	})

	t.Run("keeps cents exact", func(t *testing.T) {
		items := []OrderItemInput{
			{Quantity: 3, UnitPrice: decimal.RequireFromString("19.90")},
		}
		assert.Equal(t, "59.70", OrderTotal(items).StringFixed(2))
	})
}

func TestOrderStatusTerminal(t *testing.T) {
	assert.False(t, OrderStatusPending.Terminal())
	assert.False(t, OrderStatusActive.Terminal())
	assert.True(t, OrderStatusCompleted.Terminal())
	assert.True(t, OrderStatusCanceled.Terminal())
}

func TestValidPlan(t *testing.T) {
	for _, plan := range Plans {
		assert.True(t, ValidPlan(plan), plan)
	}
	assert.False(t, ValidPlan("PLANO INEXISTENTE"))
	assert.False(t, ValidPlan(""))
}
