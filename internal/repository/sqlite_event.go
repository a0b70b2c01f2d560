package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/dayflow/internal/db"
	"github.com/alexanderramin/dayflow/internal/domain"
)

// SQLiteEventRepo implements EventRepo. Times are stored as Unix
// nanoseconds so the schema can check end > start.
type SQLiteEventRepo struct {
	db db.DBTX
}

func NewSQLiteEventRepo(conn db.DBTX) *SQLiteEventRepo {
	return &SQLiteEventRepo{db: conn}
}

func (r *SQLiteEventRepo) Create(ctx context.Context, e *domain.CalendarEvent, position int) error {
	query := `INSERT INTO events (id, position, title, start_ns, end_ns, description)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		position,
		e.Title,
		e.StartTime.UnixNano(),
		e.EndTime.UnixNano(),
		e.Description,
	)
	if err != nil {
		return fmt.Errorf("inserting event: %w", err)
	}
	return nil
}

func (r *SQLiteEventRepo) GetByID(ctx context.Context, id string) (*domain.CalendarEvent, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, title, start_ns, end_ns, description FROM events WHERE id = ?`, id)
	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("event: %w", ErrNotFound)
		}
		return nil, err
	}
	return &e, nil
}

func (r *SQLiteEventRepo) List(ctx context.Context) ([]domain.CalendarEvent, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, start_ns, end_ns, description FROM events ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}
	defer rows.Close()

	var events []domain.CalendarEvent
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating events: %w", err)
	}
	return events, nil
}

// ReplaceAll makes the table hold exactly events, in order.
func (r *SQLiteEventRepo) ReplaceAll(ctx context.Context, events []domain.CalendarEvent) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM events`); err != nil {
		return fmt.Errorf("clearing events: %w", err)
	}
	for i := range events {
		if err := r.Create(ctx, &events[i], i); err != nil {
			return err
		}
	}
	return nil
}

func scanEvent(s scanner) (domain.CalendarEvent, error) {
	var e domain.CalendarEvent
	var startNs, endNs int64
	if err := s.Scan(&e.ID, &e.Title, &startNs, &endNs, &e.Description); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return e, err
		}
		return e, fmt.Errorf("scanning event: %w", err)
	}
	e.StartTime = time.Unix(0, startNs)
	e.EndTime = time.Unix(0, endNs)
	return e, nil
}
