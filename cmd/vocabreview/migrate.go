package main

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/vocabreview/internal/database"
)

func newMigrateCommand() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database schema commands",
	}

	migrateCmd.AddCommand(
		newMigrateUpCommand(),
		newMigrateDownCommand(),
		newMigrateVersionCommand(),
	)
	return migrateCmd
}

func newMigrateUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(func(m *migrate.Migrate) error {
				if err := database.MigrateUp(m); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Migrations applied.")
				return nil
			})
		},
	}
}

func newMigrateDownCommand() *cobra.Command {
	var steps int
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(func(m *migrate.Migrate) error {
				if err := database.MigrateDown(m, steps); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Rolled back %d migration(s).\n", steps)
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&steps, "steps", 1, "Number of migrations to roll back")
	return cmd
}

func newMigrateVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the current schema version",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(func(m *migrate.Migrate) error {
				version, dirty, err := m.Version()
				if errors.Is(err, migrate.ErrNilVersion) {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No migrations applied.")
					return nil
				}
				if err != nil {
					return fmt.Errorf("read schema version: %w", err)
				}
				if dirty {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Version %d (dirty)\n", version)
					return nil
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Version %d\n", version)
				return nil
			})
		},
	}
}

func withMigrator(fn func(m *migrate.Migrate) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	db, err := database.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() { _ = db.Close() }()

	m, err := database.NewMigrator(db)
	if err != nil {
		return err
	}
	return fn(m)
}
