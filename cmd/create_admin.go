package cmd

import (
	"fmt"

	"cafeteria/internal/core/application/usecases/commands"

	"github.com/spf13/cobra"
)

// newCreateAdminCommand is the only way to create an administrator; public
// registration cannot choose the admin role.
func newCreateAdminCommand() *cobra.Command {
	var name, email, password string

	c := &cobra.Command{
		Use:   "create-admin",
		Short: "Register an administrator account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			registerCmd, err := commands.NewRegisterAdminCommand(name, email, password)
			if err != nil {
				return err
			}

			cfg, logger, conns, err := boot(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = conns.Close() }()

			root, err := NewCompositionRoot(cfg, conns, nil, logger)
			if err != nil {
				return err
			}

			handler := root.CreateRegisterUserCommandHandler()
			u, err := handler.Handle(cmd.Context(), registerCmd)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "created admin %d <%s>\n", u.ID(), u.Email())
			return nil
		},
	}

	c.Flags().StringVar(&name, "name", "", "display name")
	c.Flags().StringVar(&email, "email", "", "login email")
	c.Flags().StringVar(&password, "password", "", "login password")
	_ = c.MarkFlagRequired("email")
	_ = c.MarkFlagRequired("password")
	_ = c.MarkFlagRequired("name")

	return c
}
