package cmd

import (
	"fmt"

	"cafeteria/internal/adapters/out/postgres"

	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	migrate := &cobra.Command{
		Use:   "migrate",
		Short: "Apply all pending database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, logger, conns, err := boot(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = conns.Close() }()

			if err = postgres.Migrate(conns.SQL); err != nil {
				return err
			}
			logger.Info("Migrations applied")
			return nil
		},
	}

	migrate.AddCommand(
		&cobra.Command{
			Use:   "down",
			Short: "Roll back every migration",
			RunE: func(cmd *cobra.Command, _ []string) error {
				_, logger, conns, err := boot(cmd.Context())
				if err != nil {
					return err
				}
				defer func() { _ = conns.Close() }()

				if err = postgres.MigrateDown(conns.SQL); err != nil {
					return err
				}
				logger.Info("Migrations rolled back")
				return nil
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Print the applied schema version",
			RunE: func(cmd *cobra.Command, _ []string) error {
				_, _, conns, err := boot(cmd.Context())
				if err != nil {
					return err
				}
				defer func() { _ = conns.Close() }()

				version, dirty, err := postgres.MigrationVersion(conns.SQL)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "version %d (dirty: %t)\n", version, dirty)
				return nil
			},
		},
	)

	return migrate
}
