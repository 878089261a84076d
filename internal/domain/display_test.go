package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusDisplayIsTotal(t *testing.T) {
	for _, status := range []OrderStatus{
		OrderStatusPending, OrderStatusActive, OrderStatusCompleted, OrderStatusCanceled,
	} {
		desc, ok := OrderStatusDisplay[status]
		assert.True(t, ok, status)
		assert.NotEmpty(t, desc.Label)
		assert.NotEmpty(t, desc.Color)
	}
}

func TestTransactionStatusDisplayIsTotal(t *testing.T) {
	for _, status := range []TransactionStatus{
		TransactionPending, TransactionCompleted, TransactionScheduled,
	} {
		desc, ok := TransactionStatusDisplay[status]
		assert.True(t, ok, status)
		assert.NotEmpty(t, desc.Label)
	}
}

func TestTaskDisplayMapsAreTotal(t *testing.T) {
	for _, priority := range []TaskPriority{PriorityLow, PriorityMedium, PriorityHigh} {
		_, ok := TaskPriorityDisplay[priority]
		assert.True(t, ok, priority)
	}
	for _, status := range []TaskStatus{TaskPending, TaskInProgress, TaskCompleted} {
		_, ok := TaskStatusDisplay[status]
		assert.True(t, ok, status)
	}
}

func TestCategoriesAreValid(t *testing.T) {
	assert.Len(t, Categories, 12)
	for _, category := range Categories {
		assert.True(t, ValidCategory(category), category)
	}
	assert.False(t, ValidCategory("CATEGORIA INEXISTENTE"))
}
