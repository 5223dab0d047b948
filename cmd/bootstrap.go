package cmd

import (
	"fmt"

	"ingredient-manager/core/config"
	"ingredient-manager/core/database"
	"ingredient-manager/core/logger"
	"ingredient-manager/feature/containers"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// services bundles what the CLI commands share.
type services struct {
	cfg        *config.Config
	logger     *zap.Logger
	db         *gorm.DB
	containers *containers.Service
}

// bootstrap loads the configuration, builds the logger and opens the container
// store, migrating it if needed.
func bootstrap() (*services, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	repo := containers.NewRepository(db)
	if err := repo.Migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &services{
		cfg:        cfg,
		logger:     l,
		db:         db,
		containers: containers.NewService(repo, cfg.Inventory, l),
	}, nil
}
