package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/locdecor/locdecor/internal/domain"
)

// AvailabilityRepository reads the externally maintained per-day availability
// counters. This table is derived by the reservation pipeline; nothing in this
// service writes to it.
type AvailabilityRepository struct {
	db *sql.DB
}

// NewAvailabilityRepository creates an availability repository over a shared connection
func NewAvailabilityRepository(db *sql.DB) *AvailabilityRepository {
	return &AvailabilityRepository{db: db}
}

// ListRange returns availability rows dated within [start, end]
func (r *AvailabilityRepository) ListRange(ctx context.Context, start, end time.Time) ([]domain.ItemAvailability, error) {
	query := `
		SELECT id, item_id, date, available_quantity, reserved_quantity
		FROM item_availability
		WHERE date >= $1 AND date <= $2
		ORDER BY date
	`

	rows, err := r.db.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list availability: %w", err)
	}
	defer rows.Close()

	var records []domain.ItemAvailability
	for rows.Next() {
		var rec domain.ItemAvailability
		if err := rows.Scan(
			&rec.ID,
			&rec.ItemID,
			&rec.Date,
			&rec.AvailableQuantity,
			&rec.ReservedQuantity,
		); err != nil {
			return nil, fmt.Errorf("failed to scan availability: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list availability: %w", err)
	}

	return records, nil
}
