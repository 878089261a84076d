package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/locdecor/locdecor/internal/domain"
)

func taskDue(title string, due time.Time) domain.Task {
	return domain.Task{Title: title, DueDate: due}
}

func TestBucketTasks(t *testing.T) {
	// Wednesday
	now := time.Date(2026, time.August, 26, 14, 30, 0, 0, time.UTC)

	yesterday := time.Date(2026, time.August, 25, 0, 0, 0, 0, time.UTC)
	today := time.Date(2026, time.August, 26, 0, 0, 0, 0, time.UTC)
	friday := time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC)
	nextMonday := time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC)

	tasks := []domain.Task{
		taskDue("late invoice", yesterday),
		taskDue("call client", today),
		taskDue("prepare kit", friday),
		taskDue("far away", nextMonday),
	}

	alerts := BucketTasks(tasks, now)

	assert.Len(t, alerts.Overdue, 1)
	assert.Equal(t, "late invoice", alerts.Overdue[0].Title)

	assert.Len(t, alerts.Today, 1)
	assert.Equal(t, "call client", alerts.Today[0].Title)

	assert.Len(t, alerts.Week, 1)
	assert.Equal(t, "prepare kit", alerts.Week[0].Title)
}

func TestBucketTasksTodayIsNotOverdue(t *testing.T) {
	// late in the evening the task due today still counts as today
	now := time.Date(2026, time.August, 26, 23, 59, 0, 0, time.UTC)
	due := time.Date(2026, time.August, 26, 0, 0, 0, 0, time.UTC)

	alerts := BucketTasks([]domain.Task{taskDue("due today", due)}, now)

	assert.Empty(t, alerts.Overdue)
	assert.Len(t, alerts.Today, 1)
}

func TestBucketTasksWeekEndsOnSunday(t *testing.T) {
	// Saturday: the week bucket closes at Sunday midnight, so a task due
	// Sunday belongs to the following week and lands in no bucket
	now := time.Date(2026, time.August, 29, 10, 0, 0, 0, time.UTC)
	sunday := time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC)

	alerts := BucketTasks([]domain.Task{taskDue("next week", sunday)}, now)

	assert.Empty(t, alerts.Overdue)
	assert.Empty(t, alerts.Today)
	assert.Empty(t, alerts.Week)
}

func TestBucketTasksEmptyInput(t *testing.T) {
	alerts := BucketTasks(nil, time.Now())

	assert.NotNil(t, alerts.Today)
	assert.NotNil(t, alerts.Week)
	assert.NotNil(t, alerts.Overdue)
	assert.Empty(t, alerts.Today)
}
