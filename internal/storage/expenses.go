package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dabbulu/dabbulu/internal/model"
)

// ListExpenses returns all expenses for the user, newest-first by
// insertion time. A user with no expenses yields an empty slice.
func (s *SQLiteStorage) ListExpenses(ctx context.Context, userID string) ([]model.Expense, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(userID, "userID"); err != nil {
		return nil, err
	}

	query := `
		SELECT id, user_id, date, amount, payment_method, category_id, note, created_at
		FROM expenses
		WHERE user_id = ?
		ORDER BY created_at DESC, rowid DESC`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	expenses := []model.Expense{}
	for rows.Next() {
		var e model.Expense
		var note sql.NullString
		if err := rows.Scan(&e.ID, &e.UserID, &e.Date, &e.Amount, &e.PaymentMethod, &e.CategoryID, &note, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		e.Note = note.String
		expenses = append(expenses, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expenses: %w", err)
	}

	slog.Debug("retrieved expenses", "user_id", userID, "count", len(expenses))
	return expenses, nil
}

// GetExpenseByID returns one expense, or nil when the id is unknown.
func (s *SQLiteStorage) GetExpenseByID(ctx context.Context, id string) (*model.Expense, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	query := `
		SELECT id, user_id, date, amount, payment_method, category_id, note, created_at
		FROM expenses
		WHERE id = ?`

	var e model.Expense
	var note sql.NullString
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&e.ID, &e.UserID, &e.Date, &e.Amount, &e.PaymentMethod, &e.CategoryID, &note, &e.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query expense: %w", err)
	}

	e.Note = note.String
	return &e, nil
}

// AddExpense appends a new expense record.
func (s *SQLiteStorage) AddExpense(ctx context.Context, expense *model.Expense) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateExpense(expense); err != nil {
		return err
	}

	query := `
		INSERT INTO expenses (id, user_id, date, amount, payment_method, category_id, note, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		expense.ID, expense.UserID, expense.Date, expense.Amount,
		string(expense.PaymentMethod), expense.CategoryID, expense.Note, expense.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}

	slog.Info("added expense",
		"id", expense.ID,
		"amount", expense.Amount,
		"category", expense.CategoryID)
	return nil
}

// UpdateExpense replaces the stored record with the given one, matched
// by id. Updating an unknown id is an error; callers load the record
// first to apply partial field updates.
func (s *SQLiteStorage) UpdateExpense(ctx context.Context, expense *model.Expense) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateExpense(expense); err != nil {
		return err
	}

	query := `
		UPDATE expenses
		SET date = ?, amount = ?, payment_method = ?, category_id = ?, note = ?
		WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query,
		expense.Date, expense.Amount, string(expense.PaymentMethod),
		expense.CategoryID, expense.Note, expense.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("expense %q not found", expense.ID)
	}

	slog.Info("updated expense", "id", expense.ID)
	return nil
}

// DeleteExpense removes an expense by id. Deleting a non-existent id is
// a no-op, not an error.
func (s *SQLiteStorage) DeleteExpense(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	affected, _ := result.RowsAffected()
	slog.Info("deleted expense", "id", id, "existed", affected > 0)
	return nil
}
