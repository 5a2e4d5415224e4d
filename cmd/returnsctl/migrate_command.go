package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/returns-backend/internal/app"
)

func newMigrateCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := app.Migrate(cmd.Context(), cfg.Database.DSN, ctx.logger); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show applied and pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			states, err := app.MigrationStatus(cmd.Context(), cfg.Database.DSN)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderMigrations(states))
			return nil
		},
	})

	return cmd
}

func renderMigrations(states []app.MigrationState) string {
	rows := make([][]string, 0, len(states))
	for _, st := range states {
		state := "pending"
		if st.Applied {
			state = "applied"
		}
		rows = append(rows, []string{strconv.FormatInt(st.Version, 10), st.File, state})
	}
	return renderTable([]string{"Version", "File", "State"}, rows, []columnAlignment{alignRight, alignLeft, alignLeft})
}
