// Package testutil provides test helpers for exercising the record
// store without touching the filesystem.
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dabbulu/dabbulu/internal/model"
	"github.com/dabbulu/dabbulu/internal/service"
	"github.com/dabbulu/dabbulu/internal/storage"
)

// TestUserID is the owner of all fixture records.
const TestUserID = "test-user"

// TestDB bundles a migrated in-memory store with its seeded user.
type TestDB struct {
	Storage service.Storage
	User    model.User
	t       *testing.T
}

// SetupTestDB creates an in-memory store, runs migrations, seeds the
// single user record, and registers cleanup.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	user := model.User{ID: TestUserID, Email: "test@dabbulu"}
	if err := store.SaveUser(ctx, &user); err != nil {
		_ = store.Close()
		t.Fatalf("failed to seed user: %v", err)
	}

	t.Cleanup(func() {
		_ = store.Close()
	})

	return &TestDB{Storage: store, User: user, t: t}
}

// AddExpense inserts a fixture expense and fails the test on error.
func (db *TestDB) AddExpense(id, date, categoryID string, amount float64) model.Expense {
	db.t.Helper()

	e := model.Expense{
		ID:            id,
		UserID:        TestUserID,
		Date:          date,
		Amount:        amount,
		PaymentMethod: model.PaymentUPI,
		CategoryID:    categoryID,
		CreatedAt:     time.Now(),
	}
	if err := db.Storage.AddExpense(context.Background(), &e); err != nil {
		db.t.Fatalf("failed to add fixture expense %s: %v", id, err)
	}
	return e
}

// SetBudget upserts a fixture budget and fails the test on error.
func (db *TestDB) SetBudget(categoryID string, monthlyLimit float64) model.Budget {
	db.t.Helper()

	b, err := db.Storage.UpsertBudget(context.Background(), TestUserID, categoryID, monthlyLimit)
	if err != nil {
		db.t.Fatalf("failed to set fixture budget for category %s: %v", categoryID, err)
	}
	return *b
}
