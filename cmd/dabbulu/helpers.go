package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/viper"

	"github.com/dabbulu/dabbulu/internal/common"
	"github.com/dabbulu/dabbulu/internal/config"
	"github.com/dabbulu/dabbulu/internal/model"
	"github.com/dabbulu/dabbulu/internal/service"
	"github.com/dabbulu/dabbulu/internal/storage"
)

// initStorage opens the configured database and runs migrations.
func initStorage(ctx context.Context) (service.Storage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDatabasePath()
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, common.NewUserError("could not open the expense database", err)
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, common.NewUserError("could not prepare the expense database", err)
	}

	return store, nil
}

// currentUser loads the single user record, creating it on first run.
func currentUser(ctx context.Context, store service.Storage) (*model.User, error) {
	user, err := store.GetUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user != nil {
		return user, nil
	}

	user = &model.User{
		ID:    uuid.NewString(),
		Email: viper.GetString("user.email"),
	}
	if err := store.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// currencySymbol returns the configured currency symbol.
func currencySymbol() string {
	return viper.GetString("currency.symbol")
}

// recentCount returns the configured dashboard recent-expense bound.
func recentCount() int {
	n := viper.GetInt("dashboard.recent_count")
	if n <= 0 {
		n = 5
	}
	return n
}
