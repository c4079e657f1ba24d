package sqlite

import (
	"context"
	"database/sql"

	"github.com/ahertta/readyday/internal/errors"
)

// EnsureUser returns the internal ID for the user with the given public ID,
// creating the row when it does not exist yet. Safe to call concurrently;
// the unique constraint on public_id makes the insert idempotent.
func (db *Database) EnsureUser(ctx context.Context, publicID string) (int64, error) {
	var id int64
	err := db.ReadOnly.QueryRowContext(ctx,
		`SELECT id FROM users WHERE public_id = ?`, publicID).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, errors.Wrap(err, "query user")
	}

	if _, err = db.ReadWrite.ExecContext(ctx,
		`INSERT INTO users (public_id) VALUES (?) ON CONFLICT (public_id) DO NOTHING`,
		publicID); err != nil {
		return 0, errors.Wrap(err, "insert user")
	}

	// Read through the write connection so the fresh row is visible even
	// before the WAL checkpoint.
	if err = db.ReadWrite.QueryRowContext(ctx,
		`SELECT id FROM users WHERE public_id = ?`, publicID).Scan(&id); err != nil {
		return 0, errors.Wrap(err, "query inserted user")
	}
	return id, nil
}
