// Package service defines the interfaces between the CLI and the
// persistence layer.
package service

import (
	"context"

	"github.com/dabbulu/dabbulu/internal/model"
)

// Storage is the contract for the record store. Implementations must
// treat absent data as empty collections, never as a fatal condition.
type Storage interface {
	// User operations. GetUser returns nil when no user exists yet.
	GetUser(ctx context.Context) (*model.User, error)
	SaveUser(ctx context.Context, user *model.User) error

	// Expense operations. ListExpenses returns newest-first
	// (insertion order), which the dashboard's recent list depends on.
	ListExpenses(ctx context.Context, userID string) ([]model.Expense, error)
	GetExpenseByID(ctx context.Context, id string) (*model.Expense, error)
	AddExpense(ctx context.Context, expense *model.Expense) error
	UpdateExpense(ctx context.Context, expense *model.Expense) error
	DeleteExpense(ctx context.Context, id string) error

	// Budget operations. UpsertBudget enforces the one-budget-per
	// (user, category) invariant, preserving record identity on update.
	ListBudgets(ctx context.Context, userID string) ([]model.Budget, error)
	UpsertBudget(ctx context.Context, userID, categoryID string, monthlyLimit float64) (*model.Budget, error)

	// Database management.
	Migrate(ctx context.Context) error
	Close() error
}
