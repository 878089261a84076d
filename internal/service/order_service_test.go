package service

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/locdecor/locdecor/internal/domain"
	"github.com/locdecor/locdecor/internal/repository"
)

func newOrderService(t *testing.T) (*OrderService, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	orderRepo := repository.NewOrderRepository(mockDB)
	clientRepo := repository.NewClientRepositoryWithDB(mockDB)
	return NewOrderService(orderRepo, clientRepo), mock
}

func validOrderInput() *domain.OrderInput {
	return &domain.OrderInput{
		ClientID:      uuid.New(),
		Plan:          "BRONZE",
		PaymentStatus: "SINAL 50%",
		PickupDate:    "2026-09-04",
		PickupTime:    "10:00",
		ReturnDate:    "2026-09-07",
		ReturnTime:    "18:00",
		Items: []domain.OrderItemInput{
			{ItemID: uuid.New(), Quantity: 2, UnitPrice: decimal.NewFromInt(60)},
		},
	}
}

func TestOrderServiceCreateValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.OrderInput)
		message string
	}{
		{"missing client", func(in *domain.OrderInput) { in.ClientID = uuid.Nil }, "obrigatórios"},
		{"missing plan", func(in *domain.OrderInput) { in.Plan = "" }, "obrigatórios"},
		{"unknown plan", func(in *domain.OrderInput) { in.Plan = "DIAMANTE" }, "plano desconhecido"},
		{"no items", func(in *domain.OrderInput) { in.Items = nil }, "pelo menos um item"},
		{"zero quantity", func(in *domain.OrderInput) { in.Items[0].Quantity = 0 }, "quantidade"},
		{"negative price", func(in *domain.OrderInput) { in.Items[0].UnitPrice = decimal.NewFromInt(-1) }, "valor unitário"},
		{"bad pickup date", func(in *domain.OrderInput) { in.PickupDate = "04/09/2026" }, "data de retirada"},
		{"return precedes pickup", func(in *domain.OrderInput) { in.ReturnDate = "2026-09-01" }, "devolução"},
		{"bad pickup time", func(in *domain.OrderInput) { in.PickupTime = "25:99" }, "horário de retirada"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newOrderService(t)

			input := validOrderInput()
			tt.mutate(input)

			_, err := svc.Create(context.Background(), input)

			assert.ErrorIs(t, err, ErrValidation)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestOrderServiceCreateRejectsInactiveClient(t *testing.T) {
	svc, mock := newOrderService(t)

	input := validOrderInput()
	now := time.Now()

	rows := sqlmock.NewRows([]string{
		"id", "name", "cpf", "birth_date", "phone", "email", "address",
		"address_number", "neighborhood", "zip_code", "status", "created_at", "updated_at",
	}).AddRow(input.ClientID, "Maria Silva", "33089731894", nil, nil, nil, nil, nil, nil, nil,
		"inactive", now, now)

	mock.ExpectQuery(`SELECT .+ FROM clients WHERE id = \$1`).
		WithArgs(input.ClientID).
		WillReturnRows(rows)

	_, err := svc.Create(context.Background(), input)

	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "cliente não encontrado")
	assert.NoError(t, mock.ExpectationsWereMet())
}
