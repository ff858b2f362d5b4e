package database

import (
	"context"
	"embed"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const migrationsDir = "migrations"

// Migration commands understood by Migrate.
const (
	MigrateUp      = "up"
	MigrateDown    = "down"
	MigrateStatus  = "status"
	MigrateVersion = "version"
)

// Migrate runs a goose command against the embedded migrations. For
// MigrateVersion an optional target version migrates up or down to it; with no
// target the current version is reported.
func Migrate(ctx context.Context, pool *pgxpool.Pool, command string, logger zerolog.Logger, args ...string) error {
	if pool == nil {
		return fmt.Errorf("pool is required")
	}

	logger = logger.With().Str("component", "migrate").Str("command", command).Logger()

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	goose.SetBaseFS(migrationsFS)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	switch command {
	case MigrateUp, MigrateDown, MigrateStatus:
		if err := goose.RunContext(ctx, command, db, migrationsDir); err != nil {
			return fmt.Errorf("failed to run goose %s: %w", command, err)
		}

	case MigrateVersion:
		current, err := goose.GetDBVersionContext(ctx, db)
		if err != nil {
			return fmt.Errorf("failed to get db version: %w", err)
		}

		if len(args) == 0 || args[0] == "" {
			logger.Info().Int64("version", current).Msg("current schema version")
			return nil
		}

		target, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid version %q: %w", args[0], err)
		}

		switch {
		case current < target:
			err = goose.UpToContext(ctx, db, migrationsDir, target)
		case current > target:
			err = goose.DownToContext(ctx, db, migrationsDir, target)
		}
		if err != nil {
			return fmt.Errorf("failed to migrate to version %d: %w", target, err)
		}

	default:
		return fmt.Errorf("unknown migration command: %s", command)
	}

	logger.Info().Msg("migration command completed")
	return nil
}
