package config

import (
	"context"
	"fmt"

	"weather-export/internal/repository/sqlite"
)

// CreateRepository opens the configured store read-only
func CreateRepository(ctx context.Context, config *Config) (sqlite.Repository, error) {
	repo, err := sqlite.New(ctx, config.GetStorePath(), config.Store.Table)
	if err != nil {
		return nil, fmt.Errorf("failed to open weather store: %w", err)
	}

	return repo, nil
}
