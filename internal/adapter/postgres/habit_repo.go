package postgres

import (
	"context"
	"database/sql"
	"time"

	"habittracker/internal/domain"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ListByOwner returns all habits owned by a user, oldest first.
func (d *DB) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Habit, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, owner_id, name, completed_dates, created_at FROM habits WHERE owner_id = $1 ORDER BY created_at;",
		ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := make([]domain.Habit, 0)
	for rows.Next() {
		var h domain.Habit
		if err := rows.Scan(&h.ID, &h.OwnerID, &h.Name, pq.Array(&h.CompletedDates), &h.CreatedAt); err != nil {
			return nil, err
		}
		if h.CompletedDates == nil {
			h.CompletedDates = []string{}
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

// GetByID retrieves a habit by ID, nil when absent.
func (d *DB) GetByID(ctx context.Context, id string) (*domain.Habit, error) {
	var h domain.Habit
	err := d.sql.QueryRowContext(ctx,
		"SELECT id, owner_id, name, completed_dates, created_at FROM habits WHERE id = $1",
		id,
	).Scan(&h.ID, &h.OwnerID, &h.Name, pq.Array(&h.CompletedDates), &h.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if h.CompletedDates == nil {
		h.CompletedDates = []string{}
	}
	return &h, nil
}

// Insert persists a new habit with an empty completion set, assigning its ID.
func (d *DB) Insert(ctx context.Context, ownerID int64, name string, createdAt time.Time) (*domain.Habit, error) {
	h := domain.Habit{
		ID:             uuid.NewString(),
		OwnerID:        ownerID,
		Name:           name,
		CompletedDates: []string{},
		CreatedAt:      createdAt.UTC(),
	}
	_, err := d.sql.ExecContext(ctx,
		"INSERT INTO habits (id, owner_id, name, completed_dates, created_at) VALUES ($1, $2, $3, $4, $5);",
		h.ID, h.OwnerID, h.Name, pq.Array(h.CompletedDates), h.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// SetCompletedDates overwrites a habit's completion set. Returns false when
// no habit with the given ID exists.
func (d *DB) SetCompletedDates(ctx context.Context, id string, dates []string) (bool, error) {
	res, err := d.sql.ExecContext(ctx,
		"UPDATE habits SET completed_dates = $2 WHERE id = $1;",
		id, pq.Array(dates),
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Delete removes a habit by ID. Returns false when no habit was deleted.
func (d *DB) Delete(ctx context.Context, id string) (bool, error) {
	res, err := d.sql.ExecContext(ctx, "DELETE FROM habits WHERE id = $1;", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
