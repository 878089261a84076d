package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/locdecor/locdecor/internal/domain"
)

// ClientRepository handles client registry persistence
type ClientRepository struct {
	db *sql.DB
}

// NewClientRepository creates a new client repository and opens the shared
// database connection
func NewClientRepository(databaseURL string) (*ClientRepository, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	return &ClientRepository{db: db}, nil
}

// NewClientRepositoryWithDB creates a client repository over an existing connection
func NewClientRepositoryWithDB(db *sql.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

// Close closes the database connection
func (r *ClientRepository) Close() error {
	return r.db.Close()
}

// GetDB returns the underlying database connection for sharing
func (r *ClientRepository) GetDB() *sql.DB {
	return r.db
}

const clientColumns = `id, name, cpf, birth_date, phone, email, address,
	       address_number, neighborhood, zip_code, status, created_at, updated_at`

// Create inserts a new client row
func (r *ClientRepository) Create(ctx context.Context, client *domain.Client) error {
	query := `
		INSERT INTO clients (id, name, cpf, birth_date, phone, email, address,
		                     address_number, neighborhood, zip_code, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.db.ExecContext(ctx, query,
		client.ID,
		client.Name,
		client.CPF,
		client.BirthDate,
		client.Phone,
		client.Email,
		client.Address,
		client.AddressNumber,
		client.Neighborhood,
		client.ZipCode,
		client.Status,
		client.CreatedAt,
		client.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	return nil
}

// Update rewrites a client's editable fields
func (r *ClientRepository) Update(ctx context.Context, client *domain.Client) error {
	query := `
		UPDATE clients
		SET name = $2, cpf = $3, birth_date = $4, phone = $5, email = $6,
		    address = $7, address_number = $8, neighborhood = $9, zip_code = $10,
		    updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		client.ID,
		client.Name,
		client.CPF,
		client.BirthDate,
		client.Phone,
		client.Email,
		client.Address,
		client.AddressNumber,
		client.Neighborhood,
		client.ZipCode,
	)
	if err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// FindByID finds a client by ID
func (r *ClientRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`

	var client domain.Client
	err := r.db.QueryRowContext(ctx, query, id).Scan(
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
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find client: %w", err)
	}

	return &client, nil
}

// List returns clients matching the filter, ordered by name
func (r *ClientRepository) List(ctx context.Context, filter domain.ClientFilter) ([]domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE 1=1`
	args := []interface{}{}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		query += fmt.Sprintf(" AND (name ILIKE $%d OR cpf ILIKE $%d OR phone ILIKE $%d)", n, n, n)
	}

	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}

	query += " ORDER BY name"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	var clients []domain.Client
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
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		clients = append(clients, client)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	return clients, nil
}

// SoftDelete marks a client inactive without removing the row
func (r *ClientRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE clients
		SET status = $2, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, id, domain.StatusInactive)
	if err != nil {
		return fmt.Errorf("failed to soft delete client: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to soft delete client: %w", err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}

	return nil
}
