package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/trainrec-backend/internal/app"
)

func newTokenCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Manage session tokens.",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "issue <username>",
		Short: "Issue a session token for an active user without a CAS round trip.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.withContainer(cmd.Context(), func(c *app.Container) error {
				res, err := c.Auth.IssueToken(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				printf(cmd, "%s\nexpires %s\n", res.Token, res.ExpiresAt.Format(time.RFC3339))
				return nil
			})
		},
	})
	return cmd
}
