package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dabbulu/dabbulu/internal/model"
)

// GetUser returns the single user record, or nil when none exists yet.
// Multiple rows never occur in practice; the newest wins if they do.
func (s *SQLiteStorage) GetUser(ctx context.Context) (*model.User, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `SELECT id, email FROM users ORDER BY created_at DESC LIMIT 1`

	var u model.User
	err := s.db.QueryRowContext(ctx, query).Scan(&u.ID, &u.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	return &u, nil
}

// SaveUser inserts or replaces the user record.
func (s *SQLiteStorage) SaveUser(ctx context.Context, user *model.User) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateUser(user); err != nil {
		return err
	}

	query := `INSERT OR REPLACE INTO users (id, email) VALUES (?, ?)`
	if _, err := s.db.ExecContext(ctx, query, user.ID, user.Email); err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}

	slog.Info("saved user", "id", user.ID, "email", user.Email)
	return nil
}
