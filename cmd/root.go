package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"cafeteria/internal/adapters/out/postgres"

	"github.com/spf13/cobra"
)

// NewRootCommand returns the cafeteria CLI.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "cafeteria",
		Short:         "Cafeteria ordering service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newServeCommand(),
		newMigrateCommand(),
		newCreateAdminCommand(),
	)

	return root
}

// boot loads the configuration and opens the database pool. The caller
// closes the returned connections.
func boot(ctx context.Context) (Config, *slog.Logger, *postgres.Connections, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return Config{}, nil, nil, fmt.Errorf("load config: %w", err)
	}

	logger := NewLogger(cfg, os.Stdout)
	slog.SetDefault(logger)

	conns, err := postgres.Open(ctx, cfg.DSN(), cfg.DBPool)
	if err != nil {
		return Config{}, nil, nil, err
	}

	return cfg, logger, conns, nil
}
