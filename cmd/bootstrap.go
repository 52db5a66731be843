package cmd

import (
	"fmt"

	"uniform-manager/core/config"
	"uniform-manager/core/database"
	"uniform-manager/core/logger"
	"uniform-manager/feature/uniform/store"

	"go.uber.org/zap"
)

// openStore loads configuration, builds the logger and connects the store.
// Shared by the commands that work on the database outside the server.
func openStore() (*config.Config, *zap.Logger, *store.Store, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return cfg, l, store.New(db), nil
}
