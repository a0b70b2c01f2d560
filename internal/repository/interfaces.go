package repository

import (
	"context"

	"github.com/alexanderramin/dayflow/internal/domain"
)

// TaskRepo stores tasks with their subtasks in list order.
type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task, position int) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context) ([]domain.Task, error)
	Delete(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, tasks []domain.Task) error
}

// EventRepo stores calendar events in insertion order.
type EventRepo interface {
	Create(ctx context.Context, e *domain.CalendarEvent, position int) error
	GetByID(ctx context.Context, id string) (*domain.CalendarEvent, error)
	List(ctx context.Context) ([]domain.CalendarEvent, error)
	ReplaceAll(ctx context.Context, events []domain.CalendarEvent) error
}

// MessageRepo is the append-only conversation log.
type MessageRepo interface {
	Append(ctx context.Context, m *domain.Message) error
	List(ctx context.Context) ([]domain.Message, error)
	Count(ctx context.Context) (int, error)
}
