package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	domain "github.com/chzzmarket/market-api/pkg/types"
)

func usersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage marketplace users",
	}
	cmd.AddCommand(usersCreateCommand())
	return cmd
}

func usersCreateCommand() *cobra.Command {
	var nickname, email string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if nickname == "" {
				return errors.New("--nickname is required")
			}

			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}

			st, err := openStore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			u := &domain.User{Nickname: nickname, Email: email}
			if err := st.CreateUser(cmd.Context(), u); err != nil {
				return fmt.Errorf("creating user: %w", err)
			}

			log.Info("user created", "user_id", u.ID, "nickname", u.Nickname)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d\n", u.ID)
			return err
		},
	}
	cmd.Flags().StringVar(&nickname, "nickname", "", "unique nickname")
	cmd.Flags().StringVar(&email, "email", "", "contact email")
	return cmd
}
