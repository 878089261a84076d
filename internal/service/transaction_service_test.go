package service

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/locdecor/locdecor/internal/domain"
	"github.com/locdecor/locdecor/internal/repository"
)

func newTransactionService(t *testing.T) (*TransactionService, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return NewTransactionService(repository.NewTransactionRepository(mockDB)), mock
}

func TestTransactionServiceCreateValidation(t *testing.T) {
	tests := []struct {
		name  string
		input domain.TransactionInput
	}{
		{"unknown type", domain.TransactionInput{Type: "investimento", Amount: decimal.NewFromInt(10), Category: "Locação", Date: "2026-08-01"}},
		{"zero amount", domain.TransactionInput{Type: domain.TransactionIncome, Category: "Locação", Date: "2026-08-01"}},
		{"negative amount", domain.TransactionInput{Type: domain.TransactionExpense, Amount: decimal.NewFromInt(-5), Category: "Compras", Date: "2026-08-01"}},
		{"missing category", domain.TransactionInput{Type: domain.TransactionIncome, Amount: decimal.NewFromInt(10), Date: "2026-08-01"}},
		{"bad date", domain.TransactionInput{Type: domain.TransactionIncome, Amount: decimal.NewFromInt(10), Category: "Locação", Date: "01/08/2026"}},
		{"unknown status", domain.TransactionInput{Type: domain.TransactionIncome, Amount: decimal.NewFromInt(10), Category: "Locação", Date: "2026-08-01", Status: "paused"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTransactionService(t)

			_, err := svc.Create(context.Background(), &tt.input)

			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestTransactionServiceCreateDefaultsStatus(t *testing.T) {
	svc, mock := newTransactionService(t)

	mock.ExpectExec(`INSERT INTO transactions`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	transaction, err := svc.Create(context.Background(), &domain.TransactionInput{
		Type:     domain.TransactionIncome,
		Amount:   decimal.RequireFromString("350.00"),
		Category: "Locação",
		Date:     "2026-08-15",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.TransactionCompleted, transaction.Status)
	assert.Equal(t, domain.TransactionIncome, transaction.Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}
