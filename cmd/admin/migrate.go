package main

import (
	"github.com/spf13/cobra"

	"github.com/heartmarshall/trainrec-backend/internal/adapter/postgres"
)

func newMigrateCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema.",
	}

	withMigrator := func(cmd *cobra.Command, fn func(*postgres.Migrator) error) error {
		m, err := postgres.NewMigrator(cmd.Context(), e.cfg.Database.DSN)
		if err != nil {
			return err
		}
		defer func() { _ = m.Close() }()
		return fn(m)
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations.",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withMigrator(cmd, func(m *postgres.Migrator) error {
					res, err := m.Up(cmd.Context())
					for _, r := range res {
						printf(cmd, "applied %s (%s)\n", r.Source.Path, r.Duration)
					}
					if err == nil && len(res) == 0 {
						printf(cmd, "schema is up to date\n")
					}
					return err
				})
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration.",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withMigrator(cmd, func(m *postgres.Migrator) error {
					res, err := m.Down(cmd.Context())
					if err != nil {
						return err
					}
					printf(cmd, "rolled back %s\n", res.Source.Path)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "List migrations and whether they are applied.",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withMigrator(cmd, func(m *postgres.Migrator) error {
					st, err := m.Status(cmd.Context())
					if err != nil {
						return err
					}
					for _, s := range st {
						printf(cmd, "%-8s %s\n", s.State, s.Source.Path)
					}
					return nil
				})
			},
		},
	)
	return cmd
}
