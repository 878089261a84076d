package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/locdecor/locdecor/internal/domain"
)

// InventoryRepository handles inventory item persistence
type InventoryRepository struct {
	db *sql.DB
}

// NewInventoryRepository creates an inventory repository over a shared connection
func NewInventoryRepository(db *sql.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

const inventoryColumns = `id, name, category, description, rental_price, acquisition_price,
	       code, current_stock, min_stock, status, created_at, updated_at`

func scanInventoryItem(row interface{ Scan(...interface{}) error }, item *domain.InventoryItem) error {
	return row.Scan(
		&item.ID,
		&item.Name,
		&item.Category,
		&item.Description,
		&item.RentalPrice,
		&item.AcquisitionPrice,
		&item.Code,
		&item.CurrentStock,
		&item.MinStock,
		&item.Status,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
}

// Create inserts a new inventory item row
func (r *InventoryRepository) Create(ctx context.Context, item *domain.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (id, name, category, description, rental_price,
		                             acquisition_price, code, current_stock, min_stock,
		                             status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.ExecContext(ctx, query,
		item.ID,
		item.Name,
		item.Category,
		item.Description,
		item.RentalPrice,
		item.AcquisitionPrice,
		item.Code,
		item.CurrentStock,
		item.MinStock,
		item.Status,
		item.CreatedAt,
		item.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create inventory item: %w", err)
	}

	return nil
}

// Update rewrites an item's editable fields. The generated code is never updated.
func (r *InventoryRepository) Update(ctx context.Context, item *domain.InventoryItem) error {
	query := `
		UPDATE inventory_items
		SET name = $2, category = $3, description = $4, rental_price = $5,
		    acquisition_price = $6, current_stock = $7, min_stock = $8,
		    updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		item.ID,
		item.Name,
		item.Category,
		item.Description,
		item.RentalPrice,
		item.AcquisitionPrice,
		item.CurrentStock,
		item.MinStock,
	)
	if err != nil {
		return fmt.Errorf("failed to update inventory item: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update inventory item: %w", err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// FindByID finds an inventory item by ID
func (r *InventoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE id = $1`

	var item domain.InventoryItem
	err := scanInventoryItem(r.db.QueryRowContext(ctx, query, id), &item)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find inventory item: %w", err)
	}

	return &item, nil
}

// List returns inventory items matching the filter, ordered by name
func (r *InventoryRepository) List(ctx context.Context, filter domain.InventoryFilter) ([]domain.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE 1=1`
	args := []interface{}{}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		query += fmt.Sprintf(" AND (name ILIKE $%d OR code ILIKE $%d)", n, n)
	}

	if filter.Category != "" {
		args = append(args, filter.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}

	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}

	if filter.InStock {
		query += " AND current_stock > 0"
	}

	if filter.LowStock {
		query += " AND current_stock < min_stock"
	}

	query += " ORDER BY name"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory items: %w", err)
	}
	defer rows.Close()

	var items []domain.InventoryItem
	for rows.Next() {
		var item domain.InventoryItem
		if err := scanInventoryItem(rows, &item); err != nil {
			return nil, fmt.Errorf("failed to scan inventory item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list inventory items: %w", err)
	}

	return items, nil
}

// LastCode returns the highest issued item code, or empty when none exists yet
func (r *InventoryRepository) LastCode(ctx context.Context) (string, error) {
	query := `SELECT code FROM inventory_items ORDER BY code DESC LIMIT 1`

	var code string
	err := r.db.QueryRowContext(ctx, query).Scan(&code)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read last item code: %w", err)
	}

	return code, nil
}

// SoftDelete marks an item inactive without removing the row
func (r *InventoryRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE inventory_items
		SET status = $2, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, id, domain.StatusInactive)
	if err != nil {
		return fmt.Errorf("failed to soft delete inventory item: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to soft delete inventory item: %w", err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}

	return nil
}
