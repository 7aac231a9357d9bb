package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// Snapshot slots. Each is an independently serialized piece of game state.
const (
	SlotHabits = "habits"
	SlotUser   = "user"
	SlotPet    = "pet"
	SlotShop   = "shop"
)

// SaveRepo is the persistence port: a per-username key-value store of JSON
// snapshots. Absent keys are reported, not errored, so callers can fall
// back to defaults.
type SaveRepo struct {
	db *sql.DB
}

func NewSaveRepo(db *sql.DB) *SaveRepo {
	return &SaveRepo{db: db}
}

// Load fetches one snapshot. ok is false when no snapshot exists.
func (r *SaveRepo) Load(ctx context.Context, username, slot string) (value []byte, ok bool, err error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT value FROM saves WHERE username = ? AND slot = ?`, username, slot)

	var raw string
	if err := row.Scan(&raw); err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("save load %s/%s: %w", username, slot, err)
	}
	return []byte(raw), true, nil
}

// LoadJSON decodes a snapshot into dst. A missing or corrupt snapshot
// reports ok=false with no error so callers substitute defaults; corrupt
// data is deliberately not surfaced as a failure.
func (r *SaveRepo) LoadJSON(ctx context.Context, username, slot string, dst any) (bool, error) {
	raw, ok, err := r.Load(ctx, username, slot)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, nil
	}
	return true, nil
}

func (r *SaveRepo) Save(ctx context.Context, username, slot string, value []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO saves (username, slot, value, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(username, slot) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, username, slot, string(value))
	if err != nil {
		return fmt.Errorf("save write %s/%s: %w", username, slot, err)
	}
	return nil
}

func (r *SaveRepo) SaveJSON(ctx context.Context, username, slot string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("save marshal %s/%s: %w", username, slot, err)
	}
	return r.Save(ctx, username, slot, data)
}

// SaveAll writes a set of snapshots in one transaction so a crash cannot
// leave the four slots half-updated.
func (r *SaveRepo) SaveAll(ctx context.Context, username string, slots map[string]any) error {
	return r.withTx(ctx, func(tx *sql.Tx) error {
		for slot, v := range slots {
			data, err := json.Marshal(v)
			if err != nil {
				return fmt.Errorf("save marshal %s/%s: %w", username, slot, err)
			}
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO saves (username, slot, value, updated_at)
				VALUES (?, ?, ?, CURRENT_TIMESTAMP)
				ON CONFLICT(username, slot) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
			`, username, slot, string(data)); err != nil {
				return fmt.Errorf("save write %s/%s: %w", username, slot, err)
			}
		}
		return nil
	})
}

// withTx runs fn inside a transaction, rolling back unless fn and the
// commit both succeed.
func (r *SaveRepo) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

const sessionUserKey = "current_user"

// CurrentUser returns the logged-in username, or "" when nobody is.
func (r *SaveRepo) CurrentUser(ctx context.Context) (string, error) {
	row := r.db.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, sessionUserKey)
	var name string
	if err := row.Scan(&name); err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", fmt.Errorf("session read: %w", err)
	}
	return name, nil
}

// SetCurrentUser records the session username. An empty name logs out.
func (r *SaveRepo) SetCurrentUser(ctx context.Context, username string) error {
	if username == "" {
		if _, err := r.db.ExecContext(ctx, `DELETE FROM session WHERE key = ?`, sessionUserKey); err != nil {
			return fmt.Errorf("session clear: %w", err)
		}
		return nil
	}
	if _, err := r.db.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, sessionUserKey, username); err != nil {
		return fmt.Errorf("session write: %w", err)
	}
	return nil
}
