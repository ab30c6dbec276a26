package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/trainrec-backend/internal/app"
	"github.com/heartmarshall/trainrec-backend/internal/config"
	"github.com/heartmarshall/trainrec-backend/pkg/ctxutil"
)

// env carries what every subcommand needs after the root has loaded config.
type env struct {
	configPath string
	cfg        *config.Config
	logger     *slog.Logger
}

func newRootCmd() *cobra.Command {
	e := &env{}

	root := &cobra.Command{
		Use:          "admin",
		Short:        "Operator commands for the training records backend.",
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			cfg, err := config.LoadFrom(e.configPath)
			if err != nil {
				return err
			}
			e.cfg = cfg
			e.logger = app.NewLogger(cfg.Log)
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&e.configPath, "config", "c", os.Getenv("CONFIG_PATH"), "path to the YAML config file")

	root.AddCommand(
		newMigrateCmd(e),
		newUserCmd(e),
		newTokenCmd(e),
		newCleanupCmd(e),
	)
	return root
}

// withContainer builds the service graph for the duration of fn.
func (e *env) withContainer(ctx context.Context, fn func(*app.Container) error) error {
	c, err := app.Build(ctx, e.cfg, e.logger)
	if err != nil {
		return err
	}
	defer c.Close()
	return fn(c)
}

// adminCtx marks ctx as an operator acting with the admin role.
func adminCtx(ctx context.Context) context.Context {
	return ctxutil.WithRole(ctx, "ADMIN")
}

func printf(cmd *cobra.Command, format string, args ...any) {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
