// Package seed creates the default data the application needs on first
// start.
package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/unistages/backend/internal/app/models"
	"github.com/unistages/backend/internal/config"
	"github.com/unistages/backend/internal/pkg/auth"
	"github.com/unistages/backend/internal/pkg/logger"
)

// CreateDefaultData provisions the faculty administration account when
// no account with the FACULTY role exists yet.
func CreateDefaultData(ctx context.Context, pool *pgxpool.Pool, cfg *config.SeedConfig) error {
	var count int64
	err := pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM users WHERE role_type = $1`, models.RoleFaculty,
	).Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to count faculty accounts: %w", err)
	}
	if count > 0 {
		return nil
	}

	if cfg.AdminPassword == "" {
		logger.Warn().Msg("No faculty account exists and SEED_ADMIN_PASSWORD is not set, skipping admin creation")
		return nil
	}

	hash, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO users (username, password, role_type, is_active)
		 VALUES ($1, $2, $3, TRUE)
		 ON CONFLICT (username) DO NOTHING`,
		cfg.AdminUsername, hash, models.RoleFaculty,
	)
	if err != nil {
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	logger.Info().Str("username", cfg.AdminUsername).Msg("Default faculty admin account created")
	return nil
}
