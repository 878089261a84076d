package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/locdecor/locdecor/internal/domain"
	"github.com/locdecor/locdecor/internal/repository"
)

// TaskService handles the internal task tracker
type TaskService struct {
	taskRepo *repository.TaskRepository
}

// NewTaskService creates a new task service
func NewTaskService(taskRepo *repository.TaskRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo}
}

// Create validates and records a new task owned by the signed-in operator
func (s *TaskService) Create(ctx context.Context, input *domain.TaskInput, userID uuid.UUID) (*domain.Task, error) {
	dueDate, priority, status, err := validateTaskInput(input)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	task := &domain.Task{
		ID:          uuid.New(),
		Title:       input.Title,
		Description: input.Description,
		DueDate:     dueDate,
		Priority:    priority,
		Status:      status,
		AssignedTo:  &userID,
		CreatedBy:   userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

// Update validates and rewrites a task
func (s *TaskService) Update(ctx context.Context, id uuid.UUID, input *domain.TaskInput) (*domain.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrNotFound
	}

	dueDate, priority, status, err := validateTaskInput(input)
	if err != nil {
		return nil, err
	}

	task.Title = input.Title
	task.Description = input.Description
	task.DueDate = dueDate
	task.Priority = priority
	task.Status = status

	if err := s.taskRepo.Update(ctx, task); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return task, nil
}

// Complete moves a task to completed
func (s *TaskService) Complete(ctx context.Context, id uuid.UUID) error {
	if err := s.taskRepo.UpdateStatus(ctx, id, domain.TaskCompleted); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// Delete removes a task
func (s *TaskService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.taskRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// List returns tasks, optionally limited to an upcoming timeframe
func (s *TaskService) List(ctx context.Context, timeframe domain.Timeframe) ([]domain.Task, error) {
	if timeframe == "" {
		return s.taskRepo.List(ctx, time.Time{}, time.Time{})
	}

	today := startOfDay(time.Now())
	var to time.Time
	switch timeframe {
	case domain.TimeframeToday:
		to = today
	case domain.TimeframeWeek:
		to = today.AddDate(0, 0, 7)
	case domain.TimeframeMonth:
		to = today.AddDate(0, 1, 0)
	default:
		return nil, fmt.Errorf("%w: período desconhecido", ErrValidation)
	}

	return s.taskRepo.List(ctx, today, to)
}

// Alerts partitions open tasks into the today/week/overdue buckets
func (s *TaskService) Alerts(ctx context.Context) (*domain.TaskAlerts, error) {
	tasks, err := s.taskRepo.ListOpen(ctx)
	if err != nil {
		return nil, err
	}
	return BucketTasks(tasks, time.Now()), nil
}

// BucketTasks assigns each open task to at most one due-date bucket relative
// to now: strictly before today is overdue, within [today, today+1) is today,
// within [today, end of week) is week. Tasks due beyond the week land in no
// bucket. A task due exactly today is never overdue.
func BucketTasks(tasks []domain.Task, now time.Time) *domain.TaskAlerts {
	today := startOfDay(now)
	tomorrow := today.AddDate(0, 0, 1)
	weekEnd := endOfWeek(today)

	alerts := &domain.TaskAlerts{
		Today:   []domain.Task{},
		Week:    []domain.Task{},
		Overdue: []domain.Task{},
	}

	for _, task := range tasks {
		due := task.DueDate
		switch {
		case due.Before(today):
			alerts.Overdue = append(alerts.Overdue, task)
		case due.Before(tomorrow):
			alerts.Today = append(alerts.Today, task)
		case due.Before(weekEnd):
			alerts.Week = append(alerts.Week, task)
		}
	}

	return alerts
}

func validateTaskInput(input *domain.TaskInput) (time.Time, domain.TaskPriority, domain.TaskStatus, error) {
	if input.Title == "" || input.DueDate == "" {
		return time.Time{}, "", "", fmt.Errorf("%w: título e data de vencimento são obrigatórios", ErrValidation)
	}

	dueDate, err := time.Parse("2006-01-02", input.DueDate)
	if err != nil {
		return time.Time{}, "", "", fmt.Errorf("%w: data de vencimento inválida", ErrValidation)
	}

	switch input.Priority {
	case domain.PriorityLow, domain.PriorityMedium, domain.PriorityHigh:
	default:
		return time.Time{}, "", "", fmt.Errorf("%w: prioridade desconhecida", ErrValidation)
	}

	status := input.Status
	if status == "" {
		status = domain.TaskPending
	}
	switch status {
	case domain.TaskPending, domain.TaskInProgress, domain.TaskCompleted:
	default:
		return time.Time{}, "", "", fmt.Errorf("%w: status desconhecido", ErrValidation)
	}

	return dueDate, input.Priority, status, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// endOfWeek returns the exclusive end of the week containing day: the
// upcoming Sunday at midnight, with weeks starting on Sunday
func endOfWeek(day time.Time) time.Time {
	return startOfDay(day).AddDate(0, 0, 7-int(day.Weekday()))
}
