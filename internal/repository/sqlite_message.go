package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/dayflow/internal/db"
	"github.com/alexanderramin/dayflow/internal/domain"
)

// SQLiteMessageRepo implements MessageRepo. The schema rejects updates and
// deletes, so there are no such methods here.
type SQLiteMessageRepo struct {
	db db.DBTX
}

func NewSQLiteMessageRepo(conn db.DBTX) *SQLiteMessageRepo {
	return &SQLiteMessageRepo{db: conn}
}

func (r *SQLiteMessageRepo) Append(ctx context.Context, m *domain.Message) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO messages (id, role, content, timestamp) VALUES (?, ?, ?, ?)`,
		m.ID, string(m.Role), m.Content, m.Timestamp.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("appending message: %w", err)
	}
	return nil
}

func (r *SQLiteMessageRepo) List(ctx context.Context) ([]domain.Message, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, role, content, timestamp FROM messages ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("listing messages: %w", err)
	}
	defer rows.Close()

	var msgs []domain.Message
	for rows.Next() {
		var m domain.Message
		var role, ts string
		if err := rows.Scan(&m.ID, &role, &m.Content, &ts); err != nil {
			return nil, fmt.Errorf("scanning message: %w", err)
		}
		m.Role = domain.Role(role)
		if m.Timestamp, err = time.Parse(time.RFC3339Nano, ts); err != nil {
			return nil, fmt.Errorf("parsing message timestamp: %w", err)
		}
		msgs = append(msgs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating messages: %w", err)
	}
	return msgs, nil
}

func (r *SQLiteMessageRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM messages`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting messages: %w", err)
	}
	return n, nil
}
