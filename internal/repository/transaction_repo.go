package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/locdecor/locdecor/internal/domain"
)

// TransactionRepository handles financial ledger persistence
type TransactionRepository struct {
	db *sql.DB
}

// NewTransactionRepository creates a transaction repository over a shared connection
func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

const transactionColumns = `id, type, category, amount, date, description,
	       payment_method, status, order_id, created_at`

func scanTransaction(row interface{ Scan(...interface{}) error }, t *domain.Transaction) error {
	return row.Scan(
		&t.ID,
		&t.Type,
		&t.Category,
		&t.Amount,
		&t.Date,
		&t.Description,
		&t.PaymentMethod,
		&t.Status,
		&t.OrderID,
		&t.CreatedAt,
	)
}

// Create inserts a new ledger entry
func (r *TransactionRepository) Create(ctx context.Context, t *domain.Transaction) error {
	query := `
		INSERT INTO transactions (id, type, category, amount, date, description,
		                          payment_method, status, order_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.Type,
		t.Category,
		t.Amount,
		t.Date,
		t.Description,
		t.PaymentMethod,
		t.Status,
		t.OrderID,
		t.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	return nil
}

// Update rewrites a ledger entry
func (r *TransactionRepository) Update(ctx context.Context, t *domain.Transaction) error {
	query := `
		UPDATE transactions
		SET type = $2, category = $3, amount = $4, date = $5, description = $6,
		    payment_method = $7, status = $8, order_id = $9
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.Type,
		t.Category,
		t.Amount,
		t.Date,
		t.Description,
		t.PaymentMethod,
		t.Status,
		t.OrderID,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// FindByID finds a ledger entry by ID
func (r *TransactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`

	var t domain.Transaction
	err := scanTransaction(r.db.QueryRowContext(ctx, query, id), &t)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	return &t, nil
}

// List returns ledger entries matching the filter, newest date first
func (r *TransactionRepository) List(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE 1=1`
	args := []interface{}{}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		query += fmt.Sprintf(" AND (description ILIKE $%d OR category ILIKE $%d)", n, n)
	}

	if filter.Type != "" {
		args = append(args, filter.Type)
		query += fmt.Sprintf(" AND type = $%d", len(args))
	}

	query += " ORDER BY date DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	return collectTransactions(rows)
}

// ListBetween returns ledger entries dated within [start, end], oldest first
func (r *TransactionRepository) ListBetween(ctx context.Context, start, end time.Time) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE date >= $1 AND date <= $2
		ORDER BY date
	`

	rows, err := r.db.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	return collectTransactions(rows)
}

func collectTransactions(rows *sql.Rows) ([]domain.Transaction, error) {
	var transactions []domain.Transaction
	for rows.Next() {
		var t domain.Transaction
		if err := scanTransaction(rows, &t); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return transactions, nil
}

// Delete removes a ledger entry. Ledger rows are hard-deleted; only registry
// records use soft deletion.
func (r *TransactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}

	return nil
}
