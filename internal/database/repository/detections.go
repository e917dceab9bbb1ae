package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/sdewitt/walletsel/internal/database"
)

// DetectionRepo persists the latest detection snapshot. It is used to seed
// installed flags on startup before the fresh scan completes.
type DetectionRepo struct {
	db *sql.DB
}

func NewDetectionRepo(db *sql.DB) *DetectionRepo {
	return &DetectionRepo{db: db}
}

// ReplaceAll swaps the stored snapshot for the given one in a single
// transaction.
func (r *DetectionRepo) ReplaceAll(ctx context.Context, installed map[string]bool, scannedAt time.Time) error {
	return database.WithTx(r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM detections`); err != nil {
			return err
		}
		for walletID, ok := range installed {
			flag := 0
			if ok {
				flag = 1
			}
			_, err := tx.ExecContext(ctx, `
			INSERT INTO detections(wallet_id, installed, scanned_at)
			VALUES (?, ?, ?);
			`, walletID, flag, scannedAt.UTC())
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// Latest returns the stored wallet_id -> installed map and the scan time.
// An empty database yields an empty map and a zero time.
func (r *DetectionRepo) Latest(ctx context.Context) (map[string]bool, time.Time, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT wallet_id, installed, scanned_at FROM detections`)
	if err != nil {
		return nil, time.Time{}, err
	}
	defer rows.Close()

	out := make(map[string]bool)
	var latest time.Time
	for rows.Next() {
		var d Detection
		var flag int
		if err := rows.Scan(&d.WalletID, &flag, &d.ScannedAt); err != nil {
			return nil, time.Time{}, err
		}
		d.Installed = flag == 1
		out[d.WalletID] = d.Installed
		if d.ScannedAt.After(latest) {
			latest = d.ScannedAt
		}
	}
	return out, latest, rows.Err()
}
