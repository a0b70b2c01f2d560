package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/dayflow/internal/domain"
)

// Task options
type TaskOption func(*domain.Task)

func WithPriority(p domain.Priority) TaskOption {
	return func(t *domain.Task) {
		t.Priority = p
	}
}

func WithCompleted() TaskOption {
	return func(t *domain.Task) {
		t.IsCompleted = true
	}
}

func WithDueDate(d time.Time) TaskOption {
	return func(t *domain.Task) {
		t.DueDate = &d
	}
}

func WithSubtasks(titles ...string) TaskOption {
	return func(t *domain.Task) {
		for _, title := range titles {
			t.Subtasks = append(t.Subtasks, domain.Subtask{ID: uuid.New().String(), Title: title})
		}
	}
}

func NewTestTask(title string, opts ...TaskOption) domain.Task {
	t := domain.Task{
		ID:       uuid.New().String(),
		Title:    title,
		Priority: domain.PriorityDo,
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// NewTestEvent returns an event starting at start and lasting minutes.
func NewTestEvent(title string, start time.Time, minutes int) domain.CalendarEvent {
	return domain.CalendarEvent{
		ID:        uuid.New().String(),
		Title:     title,
		StartTime: start,
		EndTime:   start.Add(time.Duration(minutes) * time.Minute),
	}
}

func NewTestMessage(role domain.Role, content string, at time.Time) domain.Message {
	return domain.Message{
		ID:        uuid.New().String(),
		Role:      role,
		Content:   content,
		Timestamp: at,
	}
}
