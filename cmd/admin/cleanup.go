package main

import (
	"github.com/spf13/cobra"

	"github.com/heartmarshall/trainrec-backend/internal/app"
)

func newCleanupCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "cleanup",
		Short: "Run the maintenance jobs once and exit.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return e.withContainer(cmd.Context(), func(c *app.Container) error {
				sched, err := app.NewScheduler(c)
				if err != nil {
					return err
				}
				return sched.RunOnce(cmd.Context(), app.PurgeLinksJob, app.PurgeExpiredLinks(c))
			})
		},
	}
}
