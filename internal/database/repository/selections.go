package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// SelectionRepo handles wallet selection history.
type SelectionRepo struct {
	db *sql.DB
}

func NewSelectionRepo(db *sql.DB) *SelectionRepo {
	return &SelectionRepo{db: db}
}

// Record stores one selection and returns its generated id.
func (r *SelectionRepo) Record(ctx context.Context, walletID string, at time.Time) (string, error) {
	id := uuid.NewString()
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO selections(id, wallet_id, selected_at)
	VALUES (?, ?, ?);
	`, id, walletID, at.UTC())
	return id, err
}

// Last returns the most recent selection, or nil when none exists.
func (r *SelectionRepo) Last(ctx context.Context) (*Selection, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT id, wallet_id, selected_at FROM selections
	ORDER BY selected_at DESC, id LIMIT 1`)
	var s Selection
	if err := row.Scan(&s.ID, &s.WalletID, &s.SelectedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

// Recent returns up to limit selections, newest first.
func (r *SelectionRepo) Recent(ctx context.Context, limit int) ([]Selection, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, wallet_id, selected_at FROM selections
	ORDER BY selected_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Selection
	for rows.Next() {
		var s Selection
		if err := rows.Scan(&s.ID, &s.WalletID, &s.SelectedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
