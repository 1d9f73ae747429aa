package cli

import (
	"context"
	"fmt"

	"quake-bknd/internal/config"
	"quake-bknd/internal/database"
	"quake-bknd/internal/logger"

	"github.com/spf13/cobra"
	"github.com/uptrace/bun"
)

type ExitCode int

const (
	exitCodeSuccess = 0
	exitCodeError   = 1
)

func Run() ExitCode {
	cfg := config.Load()
	logr := logger.New(cfg, "quake-loader")
	defer logr.Sync()

	if err := NewRootCmd(cfg, logr).Execute(); err != nil {
		return exitCodeError
	}

	return exitCodeSuccess
}

// NewRootCmd builds the loader command tree. Flags default to the values in cfg.
func NewRootCmd(cfg *config.Config, logr *logger.Logger) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "quake-loader",
		Short:         "Batch loader and reports for the earthquake analytics store.",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cmd.Help(); err != nil {
				return fmt.Errorf("failed to show help: %w", err)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().String("database-url", cfg.DatabaseURL, "SQLite path/URI or postgres:// URL of the store")

	rootCmd.AddCommand(
		NewLoadCmd(cfg, logr).Command(),
		NewSeedCmd(cfg, logr).Command(),
		NewReportCmd(cfg, logr).Command(),
	)

	return rootCmd
}

// openStore connects to the store named by --database-url and ensures the schema exists.
func openStore(ctx context.Context, cmd *cobra.Command, cfg *config.Config) (*bun.DB, error) {
	dsn, err := cmd.Root().PersistentFlags().GetString("database-url")
	if err != nil {
		return nil, fmt.Errorf("failed to get database-url flag: %w", err)
	}

	db, err := database.New(dsn, cfg)
	if err != nil {
		return nil, err
	}

	if err := database.InitSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}
