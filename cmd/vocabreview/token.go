package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/vocabreview/internal/auth"
)

func newTokenCommand() *cobra.Command {
	var userID int64
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for a user from the configured secret",
		RunE: func(cmd *cobra.Command, args []string) error {
			if userID <= 0 {
				return fmt.Errorf("--user-id must be a positive integer")
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			issuer, err := auth.NewIssuer(cfg.Auth.Secret, cfg.Auth.TokenTTL())
			if err != nil {
				return fmt.Errorf("create token issuer: %w", err)
			}
			token, err := issuer.Issue(userID)
			if err != nil {
				return fmt.Errorf("issue token: %w", err)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().Int64Var(&userID, "user-id", 0, "User to issue the token for")
	_ = cmd.MarkFlagRequired("user-id")
	return cmd
}
