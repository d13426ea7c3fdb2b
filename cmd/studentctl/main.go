package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/studentdesk/studentctl/internal/cli"
	"github.com/studentdesk/studentctl/internal/config"
	"github.com/studentdesk/studentctl/internal/core"
	"github.com/studentdesk/studentctl/internal/logging"
	"github.com/studentdesk/studentctl/internal/postgres"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const migrateTimeout = 30 * time.Second

func main() {
	rootCmd := &cobra.Command{
		Use:          "studentctl",
		Short:        "Interactive manager for the students table",
		Long:         "studentctl is an interactive terminal menu for listing, adding, updating and deleting student records in a PostgreSQL database.",
		RunE:         runMenu,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:          "migrate",
		Short:        "Create the students table if it does not exist",
		RunE:         runMigrate,
		SilenceUsage: true,
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("studentctl %s (commit: %s, built: %s)\n", version, commit, date)
		},
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads the environment, configuration and logging shared by every
// subcommand, and returns the configured store.
func setup() (*postgres.Store, error) {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("configuration loaded",
		"db_host", cfg.Database.Host,
		"db_port", cfg.Database.Port,
		"db_name", cfg.Database.Name,
	)

	return postgres.New(cfg.Database), nil
}

func runMenu(cmd *cobra.Command, args []string) error {
	store, err := setup()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// One connectivity check before the menu; the process still exits
	// cleanly when it fails, there is just nothing to do.
	if err := store.Ping(ctx); err != nil {
		slog.Error("could not connect to database with current settings", "error", err)
		fmt.Fprintln(os.Stderr, "[ERROR] "+core.FormatUserError(err))
		return nil
	}

	menu := cli.NewMenu(core.NewService(store), os.Stdin, os.Stdout)
	return menu.Run(ctx)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	store, err := setup()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, migrateTimeout)
	defer cancel()

	if err := store.Migrate(ctx); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	slog.Info("migration complete")
	return nil
}
