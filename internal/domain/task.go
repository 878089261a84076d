package domain

import (
	"time"

	"github.com/google/uuid"
)

// TaskPriority represents how urgent a task is
type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

// TaskStatus represents the progress state of a task
type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
)

// Task is one entry of the internal task tracker
type Task struct {
	ID          uuid.UUID    `json:"id" db:"id"`
	Title       string       `json:"title" db:"title"`
	Description *string      `json:"description,omitempty" db:"description"`
	DueDate     time.Time    `json:"due_date" db:"due_date"`
	Priority    TaskPriority `json:"priority" db:"priority"`
	Status      TaskStatus   `json:"status" db:"status"`
	AssignedTo  *uuid.UUID   `json:"assigned_to,omitempty" db:"assigned_to"`
	CreatedBy   uuid.UUID    `json:"created_by" db:"created_by"`
	CreatedAt   time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at" db:"updated_at"`
}

// TaskInput carries the fields accepted when creating or updating a task
type TaskInput struct {
	Title       string       `json:"title" validate:"required"`
	Description *string      `json:"description,omitempty"`
	DueDate     string       `json:"due_date" validate:"required"`
	Priority    TaskPriority `json:"priority" validate:"required,oneof=low medium high"`
	Status      TaskStatus   `json:"status" validate:"oneof=pending in_progress completed"`
}

// TaskAlerts partitions open tasks into disjoint due-date buckets. A task more
// than a week out appears in none of them.
type TaskAlerts struct {
	Today   []Task `json:"today"`
	Week    []Task `json:"week"`
	Overdue []Task `json:"overdue"`
}

// Timeframe limits a task listing to an upcoming window
type Timeframe string

const (
	TimeframeToday Timeframe = "today"
	TimeframeWeek  Timeframe = "week"
	TimeframeMonth Timeframe = "month"
)
