package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/locdecor/locdecor/internal/domain"
)

// TaskRepository handles task tracker persistence
type TaskRepository struct {
	db *sql.DB
}

// NewTaskRepository creates a task repository over a shared connection
func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

const taskColumns = `id, title, description, due_date, priority, status,
	       assigned_to, created_by, created_at, updated_at`

func scanTask(row interface{ Scan(...interface{}) error }, t *domain.Task) error {
	return row.Scan(
		&t.ID,
		&t.Title,
		&t.Description,
		&t.DueDate,
		&t.Priority,
		&t.Status,
		&t.AssignedTo,
		&t.CreatedBy,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
}

// Create inserts a new task
func (r *TaskRepository) Create(ctx context.Context, t *domain.Task) error {
	query := `
		INSERT INTO tasks (id, title, description, due_date, priority, status,
		                   assigned_to, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.Title,
		t.Description,
		t.DueDate,
		t.Priority,
		t.Status,
		t.AssignedTo,
		t.CreatedBy,
		t.CreatedAt,
		t.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	return nil
}

// Update rewrites a task's editable fields
func (r *TaskRepository) Update(ctx context.Context, t *domain.Task) error {
	query := `
		UPDATE tasks
		SET title = $2, description = $3, due_date = $4, priority = $5,
		    status = $6, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.Title,
		t.Description,
		t.DueDate,
		t.Priority,
		t.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// UpdateStatus moves a task to the given status
func (r *TaskRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.TaskStatus) error {
	query := `
		UPDATE tasks
		SET status = $2, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("failed to update task status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update task status: %w", err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// FindByID finds a task by ID
func (r *TaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`

	var t domain.Task
	err := scanTask(r.db.QueryRowContext(ctx, query, id), &t)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	return &t, nil
}

// List returns tasks due within [from, to] ordered by due date. Zero bounds
// disable the window.
func (r *TaskRepository) List(ctx context.Context, from, to time.Time) ([]domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE 1=1`
	args := []interface{}{}

	if !from.IsZero() {
		args = append(args, from)
		query += fmt.Sprintf(" AND due_date >= $%d", len(args))
	}

	if !to.IsZero() {
		args = append(args, to)
		query += fmt.Sprintf(" AND due_date <= $%d", len(args))
	}

	query += " ORDER BY due_date"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	return collectTasks(rows)
}

// ListOpen returns every non-completed task ordered by due date
func (r *TaskRepository) ListOpen(ctx context.Context) ([]domain.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks
		WHERE status <> $1
		ORDER BY due_date
	`

	rows, err := r.db.QueryContext(ctx, query, domain.TaskCompleted)
	if err != nil {
		return nil, fmt.Errorf("failed to list open tasks: %w", err)
	}
	defer rows.Close()

	return collectTasks(rows)
}

func collectTasks(rows *sql.Rows) ([]domain.Task, error) {
	var tasks []domain.Task
	for rows.Next() {
		var t domain.Task
		if err := scanTask(rows, &t); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, nil
}

// Delete removes a task
func (r *TaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}

	return nil
}
