package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chzzmarket/market-api/internal/auth"
)

func tokenCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue API bearer tokens",
	}
	cmd.AddCommand(tokenIssueCommand())
	return cmd
}

func tokenIssueCommand() *cobra.Command {
	var userID int64

	cmd := &cobra.Command{
		Use:   "issue",
		Short: "Sign a bearer token for a user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if userID <= 0 {
				return errors.New("--user-id must be positive")
			}

			cfg, _, err := loadConfig()
			if err != nil {
				return err
			}

			tokens, err := auth.NewTokens(cfg.Auth.JWTSecret, cfg.Auth.Issuer, auth.WithTTL(cfg.Auth.TokenTTL))
			if err != nil {
				return err
			}

			token, err := tokens.Issue(userID)
			if err != nil {
				return fmt.Errorf("issuing token: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}
	cmd.Flags().Int64Var(&userID, "user-id", 0, "user the token authenticates")
	return cmd
}
