package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/veloracommerce/velora-backend/pkg/config"
	"github.com/veloracommerce/velora-backend/pkg/db"
	"github.com/veloracommerce/velora-backend/pkg/logger"
	"github.com/veloracommerce/velora-backend/pkg/migrate"
)

type migrateFlags struct {
	cmd     string
	dir     string
	name    string
	version string
}

func main() {
	_ = godotenv.Load()

	var flags migrateFlags
	flag.StringVar(&flags.cmd, "cmd", "up", "migration command: up|down|status|version|create|validate")
	flag.StringVar(&flags.dir, "dir", migrate.DefaultDir, "goose migrations directory")
	flag.StringVar(&flags.name, "name", "", "migration name (for create)")
	flag.StringVar(&flags.version, "version", "", "target version (YYYYMMDDHHMMSS) for -cmd=version")
	flag.Parse()

	if err := run(flags); err != nil {
		fmt.Fprintf(os.Stderr, "migrate %s: %v\n", flags.cmd, err)
		os.Exit(1)
	}
}

func run(flags migrateFlags) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logg := logger.New(logger.Options{
		ServiceName: "migrate",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env": cfg.App.Env,
		"cmd": flags.cmd,
		"dir": flags.dir,
	})

	// create and validate work on files alone, no DB connection needed
	switch flags.cmd {
	case "create":
		if flags.name == "" {
			return fmt.Errorf("missing -name for create")
		}
		path, err := migrate.CreateSQLMigration(flags.dir, flags.name)
		if err != nil {
			return err
		}
		fmt.Println("created migration:", path)
		return nil

	case "validate":
		if err := migrate.ValidateDir(flags.dir); err != nil {
			return err
		}
		fmt.Println("migration validation passed")
		return nil
	}

	dbClient, err := db.New(ctx, cfg.DB, cfg.FeatureFlags, logg)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer dbClient.Close()

	sqlDB, err := dbClient.DB().DB()
	if err != nil {
		return fmt.Errorf("unwrap sql db: %w", err)
	}

	logg.Info(ctx, "migrate ready")

	switch flags.cmd {
	case "up", "down", "status":
		return migrate.Run(ctx, sqlDB, flags.dir, flags.cmd)
	case "version":
		if flags.version == "" {
			return fmt.Errorf("missing -version for version command")
		}
		return migrate.MigrateToVersion(ctx, sqlDB, flags.dir, flags.version)
	default:
		return fmt.Errorf("unknown -cmd value: %s", flags.cmd)
	}
}
