package main

import (
	"context"
	"fmt"
	"os"

	"stylique/internal/config"
	"stylique/internal/database"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cmd := pflag.StringP("cmd", "c", database.MigrateUp, "migration command: up|down|status|version")
	version := pflag.StringP("version", "v", "", "target version (YYYYMMDDHHMMSS) for --cmd=version")
	pflag.Parse()

	var args []string
	switch *cmd {
	case database.MigrateUp, database.MigrateDown, database.MigrateStatus:
	case database.MigrateVersion:
		if *version == "" {
			return fmt.Errorf("--version is required for --cmd=version")
		}
		args = append(args, *version)
	default:
		return fmt.Errorf("unknown migration command %q", *cmd)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger, "stylique-migrate")

	ctx := context.Background()

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool, *cmd, logger, args...); err != nil {
		return err
	}

	logger.Info().Str("cmd", *cmd).Msg("migration command completed")
	return nil
}
