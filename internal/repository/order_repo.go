package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/locdecor/locdecor/internal/domain"
)

// OrderRepository handles order and order-item persistence. Multi-step
// operations (creation, line replacement, cancellation) run inside a single
// transaction so a mid-sequence failure never leaves an order without lines.
type OrderRepository struct {
	db *sql.DB
}

// NewOrderRepository creates an order repository over a shared connection
func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

const orderColumns = `id, order_number, client_id, plan, order_status, payment_status,
	       pickup_date, pickup_time, return_date, return_time, total_amount,
	       payment_method, notes, created_at, updated_at`

func scanOrder(row interface{ Scan(...interface{}) error }, o *domain.Order) error {
	return row.Scan(
		&o.ID,
		&o.OrderNumber,
		&o.ClientID,
		&o.Plan,
		&o.OrderStatus,
		&o.PaymentStatus,
		&o.PickupDate,
		&o.PickupTime,
		&o.ReturnDate,
		&o.ReturnTime,
		&o.TotalAmount,
		&o.PaymentMethod,
		&o.Notes,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
}

// Create inserts the order header and its lines in one transaction. Each
// requested item is locked and its stock checked before the lines go in.
func (r *OrderRepository) Create(ctx context.Context, order *domain.Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin order transaction: %w", err)
	}
	defer tx.Rollback()

	for _, line := range order.Items {
		var stock int
		err := tx.QueryRowContext(ctx,
			`SELECT current_stock FROM inventory_items WHERE id = $1 AND status = $2 FOR UPDATE`,
			line.ItemID, domain.StatusActive,
		).Scan(&stock)
		if err == sql.ErrNoRows {
			return fmt.Errorf("inventory item %s: %w", line.ItemID, sql.ErrNoRows)
		}
		if err != nil {
			return fmt.Errorf("failed to check stock: %w", err)
		}
		if stock < line.Quantity {
			return fmt.Errorf("inventory item %s: %w", line.ItemID, ErrInsufficientStock)
		}
	}

	query := `
		INSERT INTO orders (id, client_id, plan, order_status, payment_status,
		                    pickup_date, pickup_time, return_date, return_time,
		                    total_amount, payment_method, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING order_number
	`

	err = tx.QueryRowContext(ctx, query,
		order.ID,
		order.ClientID,
		order.Plan,
		order.OrderStatus,
		order.PaymentStatus,
		order.PickupDate,
		order.PickupTime,
		order.ReturnDate,
		order.ReturnTime,
		order.TotalAmount,
		order.PaymentMethod,
		order.Notes,
		order.CreatedAt,
		order.UpdatedAt,
	).Scan(&order.OrderNumber)
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	if err := insertOrderItems(ctx, tx, order.ID, order.Items); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit order: %w", err)
	}

	return nil
}

// Update rewrites the order header and replaces the full line collection
// atomically. A failure at any step rolls the whole edit back.
func (r *OrderRepository) Update(ctx context.Context, order *domain.Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin order transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE orders
		SET client_id = $2, plan = $3, payment_status = $4, pickup_date = $5,
		    pickup_time = $6, return_date = $7, return_time = $8, total_amount = $9,
		    payment_method = $10, notes = $11, updated_at = NOW()
		WHERE id = $1
	`

	result, err := tx.ExecContext(ctx, query,
		order.ID,
		order.ClientID,
		order.Plan,
		order.PaymentStatus,
		order.PickupDate,
		order.PickupTime,
		order.ReturnDate,
		order.ReturnTime,
		order.TotalAmount,
		order.PaymentMethod,
		order.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM order_items WHERE order_id = $1`, order.ID); err != nil {
		return fmt.Errorf("failed to clear order items: %w", err)
	}

	if err := insertOrderItems(ctx, tx, order.ID, order.Items); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit order update: %w", err)
	}

	return nil
}

func insertOrderItems(ctx context.Context, tx *sql.Tx, orderID uuid.UUID, items []domain.OrderItem) error {
	query := `
		INSERT INTO order_items (id, order_id, item_id, quantity, unit_price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	for i := range items {
		items[i].OrderID = orderID
		if _, err := tx.ExecContext(ctx, query,
			items[i].ID,
			orderID,
			items[i].ItemID,
			items[i].Quantity,
			items[i].UnitPrice,
			items[i].CreatedAt,
		); err != nil {
			return fmt.Errorf("failed to insert order item: %w", err)
		}
	}

	return nil
}

// UpdateStatus performs a guarded status transition. The update only applies
// when the current status is one of from; zero affected rows surface as
// sql.ErrNoRows so the caller can distinguish missing orders from refused
// transitions.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from []domain.OrderStatus, to domain.OrderStatus) error {
	states := make([]string, len(from))
	for i, s := range from {
		states[i] = string(s)
	}

	query := `
		UPDATE orders
		SET order_status = $2, updated_at = NOW()
		WHERE id = $1 AND order_status = ANY($3)
	`

	result, err := r.db.ExecContext(ctx, query, id, to, pq.Array(states))
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// FindByID finds an order with its client and expanded lines
func (r *OrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	var order domain.Order
	err := scanOrder(r.db.QueryRowContext(ctx, query, id), &order)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find order: %w", err)
	}

	orders := []domain.Order{order}
	if err := r.attachClients(ctx, orders); err != nil {
		return nil, err
	}
	if err := r.attachItems(ctx, orders); err != nil {
		return nil, err
	}

	return &orders[0], nil
}

// List returns orders matching the filter, newest first, with clients and
// lines expanded
func (r *OrderRepository) List(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	query := `
		SELECT ` + qualify(orderColumns, "o") + `
		FROM orders o
		JOIN clients c ON c.id = o.client_id
		WHERE 1=1`
	args := []interface{}{}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		query += fmt.Sprintf(" AND (c.name ILIKE $%d OR o.order_number ILIKE $%d)", n, n)
	}

	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND o.order_status = $%d", len(args))
	}

	query += " ORDER BY o.created_at DESC"

	return r.queryOrders(ctx, query, args...)
}

// ListCreatedBetween returns bare order headers created within [start, end]
func (r *OrderRepository) ListCreatedBetween(ctx context.Context, start, end time.Time) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE created_at >= $1 AND created_at <= $2`

	rows, err := r.db.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	return collectOrders(rows)
}

// ListClientIDsSince returns the client reference of every order created
// since the given instant, one entry per order
func (r *OrderRepository) ListClientIDsSince(ctx context.Context, since time.Time) ([]uuid.UUID, error) {
	query := `SELECT client_id FROM orders WHERE created_at >= $1`

	rows, err := r.db.QueryContext(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list order clients: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan client id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list order clients: %w", err)
	}

	return ids, nil
}

// ListReturningOn returns active orders whose return date falls on day,
// ordered by return time, with clients and lines expanded
func (r *OrderRepository) ListReturningOn(ctx context.Context, day time.Time) ([]domain.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE return_date = $1 AND order_status = $2
		ORDER BY return_time
	`

	return r.queryOrders(ctx, query, day, domain.OrderStatusActive)
}

// ListPickupsBetween returns pending orders picking up within [from, to],
// ordered by pickup date and time, with clients and lines expanded
func (r *OrderRepository) ListPickupsBetween(ctx context.Context, from, to time.Time) ([]domain.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE pickup_date >= $1 AND pickup_date <= $2 AND order_status = $3
		ORDER BY pickup_date, pickup_time
	`

	return r.queryOrders(ctx, query, from, to, domain.OrderStatusPending)
}

func (r *OrderRepository) queryOrders(ctx context.Context, query string, args ...interface{}) ([]domain.Order, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	orders, err := collectOrders(rows)
	if err != nil {
		return nil, err
	}

	if err := r.attachClients(ctx, orders); err != nil {
		return nil, err
	}
	if err := r.attachItems(ctx, orders); err != nil {
		return nil, err
	}

	return orders, nil
}

func collectOrders(rows *sql.Rows) ([]domain.Order, error) {
	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		if err := scanOrder(rows, &order); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return orders, nil
}

// attachClients loads the referenced clients for the given orders
func (r *OrderRepository) attachClients(ctx context.Context, orders []domain.Order) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ClientID)
	}

	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = ANY($1)`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("failed to load order clients: %w", err)
	}
	defer rows.Close()

	byID := make(map[uuid.UUID]*domain.Client)
	for rows.Next() {
		var client domain.Client
		if err := rows.Scan(
			&client.ID,
			&client.Name,
			&client.CPF,
			&client.BirthDate,
			&client.Phone,
			&client.Email,
			&client.Address,
			&client.AddressNumber,
			&client.Neighborhood,
			&client.ZipCode,
			&client.Status,
			&client.CreatedAt,
			&client.UpdatedAt,
		); err != nil {
			return fmt.Errorf("failed to scan order client: %w", err)
		}
		byID[client.ID] = &client
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to load order clients: %w", err)
	}

	for i := range orders {
		orders[i].Client = byID[orders[i].ClientID]
	}

	return nil
}

// attachItems loads the expanded line collections for the given orders
func (r *OrderRepository) attachItems(ctx context.Context, orders []domain.Order) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}

	query := `
		SELECT oi.id, oi.order_id, oi.item_id, oi.quantity, oi.unit_price, oi.created_at,
		       ` + qualify(inventoryColumns, "i") + `
		FROM order_items oi
		JOIN inventory_items i ON i.id = oi.item_id
		WHERE oi.order_id = ANY($1)
		ORDER BY oi.created_at
	`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("failed to load order items: %w", err)
	}
	defer rows.Close()

	byOrder := make(map[uuid.UUID][]domain.OrderItem)
	for rows.Next() {
		var line domain.OrderItem
		var item domain.InventoryItem
		if err := rows.Scan(
			&line.ID,
			&line.OrderID,
			&line.ItemID,
			&line.Quantity,
			&line.UnitPrice,
			&line.CreatedAt,
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
		); err != nil {
			return fmt.Errorf("failed to scan order item: %w", err)
		}
		line.Item = &item
		byOrder[line.OrderID] = append(byOrder[line.OrderID], line)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to load order items: %w", err)
	}

	for i := range orders {
		orders[i].Items = byOrder[orders[i].ID]
	}

	return nil
}
