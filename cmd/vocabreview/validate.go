package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(out, "Configuration is valid.")
			_, _ = fmt.Fprintf(out, "  database: %s\n", cfg.Database.Driver)
			_, _ = fmt.Fprintf(out, "  server:   :%d\n", cfg.Server.Port)
			_, _ = fmt.Fprintf(out, "  client:   %s\n", cfg.Client.ServerURL)
			if cfg.Auth.Secret == "" {
				_, _ = fmt.Fprintln(out, "  warning:  auth.secret is empty, the server cannot verify tokens")
			}
			return nil
		},
	}
}
