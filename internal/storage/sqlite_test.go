package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dabbulu/dabbulu/internal/model"
)

// Helper function to create test storage.
func createTestStorage(t *testing.T) (*SQLiteStorage, func()) {
	t.Helper()
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := NewSQLiteStorage(dbPath)
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		t.Fatalf("Failed to migrate: %v", err)
	}

	return store, func() { _ = store.Close() }
}

// Helper function to create test expenses with increasing creation times.
func createTestExpenses(count int) []model.Expense {
	expenses := make([]model.Expense, count)
	base := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	for i := 0; i < count; i++ {
		expenses[i] = model.Expense{
			ID:            fmt.Sprintf("exp-%03d", i+1),
			UserID:        "u1",
			Date:          fmt.Sprintf("2024-06-%02d", (i%28)+1),
			Amount:        float64(i+1) * 10.50,
			PaymentMethod: model.PaymentUPI,
			CategoryID:    fmt.Sprintf("%d", (i%12)+1),
			Note:          fmt.Sprintf("test expense %d", i+1),
			CreatedAt:     base.Add(time.Duration(i) * time.Minute),
		}
	}
	return expenses
}

func TestNewSQLiteStorage(t *testing.T) {
	t.Run("creates database file and directory", func(t *testing.T) {
		tmpDir := t.TempDir()
		dbPath := filepath.Join(tmpDir, "nested", "dir", "test.db")

		store, err := NewSQLiteStorage(dbPath)
		require.NoError(t, err)
		defer store.Close()

		require.NoError(t, store.Migrate(context.Background()))
	})

	t.Run("rejects empty path", func(t *testing.T) {
		_, err := NewSQLiteStorage("")
		assert.ErrorIs(t, err, ErrEmptyString)
	})

	t.Run("supports in-memory database", func(t *testing.T) {
		store, err := NewSQLiteStorage(":memory:")
		require.NoError(t, err)
		defer store.Close()

		require.NoError(t, store.Migrate(context.Background()))
	})
}

func TestMigrateIdempotent(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	ctx := context.Background()
	require.NoError(t, store.Migrate(ctx))
	require.NoError(t, store.Migrate(ctx))
}

func TestUserRoundTrip(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	t.Run("no user yet", func(t *testing.T) {
		user, err := store.GetUser(ctx)
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("save and load", func(t *testing.T) {
		user := &model.User{ID: "u1", Email: "local@dabbulu"}
		require.NoError(t, store.SaveUser(ctx, user))

		got, err := store.GetUser(ctx)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, user.ID, got.ID)
		assert.Equal(t, user.Email, got.Email)
	})

	t.Run("save replaces by id", func(t *testing.T) {
		require.NoError(t, store.SaveUser(ctx, &model.User{ID: "u1", Email: "new@dabbulu"}))

		got, err := store.GetUser(ctx)
		require.NoError(t, err)
		assert.Equal(t, "new@dabbulu", got.Email)
	})

	t.Run("nil user rejected", func(t *testing.T) {
		assert.ErrorIs(t, store.SaveUser(ctx, nil), ErrNilParameter)
	})
}
