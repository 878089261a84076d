package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/locdecor/locdecor/internal/domain"
)

func newMockOrderRepository(t *testing.T) (*OrderRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	return NewOrderRepository(mockDB), mock, mockDB
}

func TestOrderRepositoryUpdateStatus(t *testing.T) {
	t.Run("applies guarded transition", func(t *testing.T) {
		repo, mock, mockDB := newMockOrderRepository(t)
		defer mockDB.Close()

		orderID := uuid.New()

		mock.ExpectExec(`UPDATE orders\s+SET order_status = \$2, updated_at = NOW\(\)\s+WHERE id = \$1 AND order_status = ANY\(\$3\)`).
			WithArgs(orderID, domain.OrderStatusActive, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateStatus(context.Background(), orderID,
			[]domain.OrderStatus{domain.OrderStatusPending}, domain.OrderStatusActive)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("refused transition surfaces ErrNoRows", func(t *testing.T) {
		repo, mock, mockDB := newMockOrderRepository(t)
		defer mockDB.Close()

		orderID := uuid.New()

		mock.ExpectExec(`UPDATE orders`).
			WithArgs(orderID, domain.OrderStatusCompleted, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateStatus(context.Background(), orderID,
			[]domain.OrderStatus{domain.OrderStatusActive}, domain.OrderStatusCompleted)

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrderRepositoryCreate(t *testing.T) {
	t.Run("rejects order when stock is short", func(t *testing.T) {
		repo, mock, mockDB := newMockOrderRepository(t)
		defer mockDB.Close()

		itemID := uuid.New()
		order := &domain.Order{
			ID:       uuid.New(),
			ClientID: uuid.New(),
			Items: []domain.OrderItem{
				{ID: uuid.New(), ItemID: itemID, Quantity: 5, UnitPrice: decimal.NewFromInt(50)},
			},
		}

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT current_stock FROM inventory_items WHERE id = \$1 AND status = \$2 FOR UPDATE`).
			WithArgs(itemID, domain.StatusActive).
			WillReturnRows(sqlmock.NewRows([]string{"current_stock"}).AddRow(3))
		mock.ExpectRollback()

		err := repo.Create(context.Background(), order)

		assert.ErrorIs(t, err, ErrInsufficientStock)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("inserts header and lines in one transaction", func(t *testing.T) {
		repo, mock, mockDB := newMockOrderRepository(t)
		defer mockDB.Close()

		itemID := uuid.New()
		now := time.Now()
		order := &domain.Order{
			ID:            uuid.New(),
			ClientID:      uuid.New(),
			Plan:          "BRONZE",
			OrderStatus:   domain.OrderStatusPending,
			PaymentStatus: "SINAL 50%",
			PickupDate:    now,
			PickupTime:    "10:00",
			ReturnDate:    now.AddDate(0, 0, 1),
			ReturnTime:    "18:00",
			TotalAmount:   decimal.NewFromInt(250),
			CreatedAt:     now,
			UpdatedAt:     now,
			Items: []domain.OrderItem{
				{ID: uuid.New(), ItemID: itemID, Quantity: 5, UnitPrice: decimal.NewFromInt(50), CreatedAt: now},
			},
		}

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT current_stock FROM inventory_items`).
			WithArgs(itemID, domain.StatusActive).
			WillReturnRows(sqlmock.NewRows([]string{"current_stock"}).AddRow(10))
		mock.ExpectQuery(`INSERT INTO orders`).
			WillReturnRows(sqlmock.NewRows([]string{"order_number"}).AddRow("PED-000001"))
		mock.ExpectExec(`INSERT INTO order_items`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.Create(context.Background(), order)

		assert.NoError(t, err)
		assert.Equal(t, "PED-000001", order.OrderNumber)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrderRepositoryUpdateReplacesLines(t *testing.T) {
	repo, mock, mockDB := newMockOrderRepository(t)
	defer mockDB.Close()

	order := &domain.Order{
		ID:          uuid.New(),
		ClientID:    uuid.New(),
		Plan:        "PRATA",
		TotalAmount: decimal.NewFromInt(100),
		Items: []domain.OrderItem{
			{ID: uuid.New(), ItemID: uuid.New(), Quantity: 1, UnitPrice: decimal.NewFromInt(100)},
		},
	}

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE orders`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM order_items WHERE order_id = \$1`).
		WithArgs(order.ID).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`INSERT INTO order_items`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Update(context.Background(), order)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
