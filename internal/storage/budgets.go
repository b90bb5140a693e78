package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dabbulu/dabbulu/internal/model"
)

// ListBudgets returns all budgets for the user. A user with no budgets
// yields an empty slice.
func (s *SQLiteStorage) ListBudgets(ctx context.Context, userID string) ([]model.Budget, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(userID, "userID"); err != nil {
		return nil, err
	}

	query := `
		SELECT id, user_id, category_id, monthly_limit
		FROM budgets
		WHERE user_id = ?
		ORDER BY category_id`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query budgets: %w", err)
	}
	defer rows.Close()

	budgets := []model.Budget{}
	for rows.Next() {
		var b model.Budget
		if err := rows.Scan(&b.ID, &b.UserID, &b.CategoryID, &b.MonthlyLimit); err != nil {
			return nil, fmt.Errorf("failed to scan budget: %w", err)
		}
		budgets = append(budgets, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating budgets: %w", err)
	}

	return budgets, nil
}

// UpsertBudget sets the monthly limit for (userID, categoryID). When a
// budget already exists the limit is updated in place, keeping the
// original record id; otherwise a new budget is created. This is the
// sole mutation path for budgets.
func (s *SQLiteStorage) UpsertBudget(ctx context.Context, userID, categoryID string, monthlyLimit float64) (*model.Budget, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(userID, "userID"); err != nil {
		return nil, err
	}
	if err := validateString(categoryID, "categoryID"); err != nil {
		return nil, err
	}
	if monthlyLimit < 0 {
		return nil, fmt.Errorf("%w: %.2f", model.ErrNegativeAmount, monthlyLimit)
	}

	existingQuery := `
		SELECT id FROM budgets
		WHERE user_id = ? AND category_id = ?`

	var existingID string
	err := s.db.QueryRowContext(ctx, existingQuery, userID, categoryID).Scan(&existingID)
	switch {
	case err == nil:
		updateQuery := `UPDATE budgets SET monthly_limit = ? WHERE id = ?`
		if _, err := s.db.ExecContext(ctx, updateQuery, monthlyLimit, existingID); err != nil {
			return nil, fmt.Errorf("failed to update budget: %w", err)
		}
		slog.Info("updated budget", "id", existingID, "category", categoryID, "limit", monthlyLimit)
		return &model.Budget{
			ID:           existingID,
			UserID:       userID,
			CategoryID:   categoryID,
			MonthlyLimit: monthlyLimit,
		}, nil

	case errors.Is(err, sql.ErrNoRows):
		budget := &model.Budget{
			ID:           uuid.NewString(),
			UserID:       userID,
			CategoryID:   categoryID,
			MonthlyLimit: monthlyLimit,
		}
		insertQuery := `
			INSERT INTO budgets (id, user_id, category_id, monthly_limit)
			VALUES (?, ?, ?, ?)`
		if _, err := s.db.ExecContext(ctx, insertQuery, budget.ID, budget.UserID, budget.CategoryID, budget.MonthlyLimit); err != nil {
			return nil, fmt.Errorf("failed to insert budget: %w", err)
		}
		slog.Info("created budget", "id", budget.ID, "category", categoryID, "limit", monthlyLimit)
		return budget, nil

	default:
		return nil, fmt.Errorf("failed to check existing budget: %w", err)
	}
}
