package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/returns-backend/internal/app"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	var out string
	var filters filterFlags

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write matching returns to an XLSX spreadsheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := filters.build()
			if err != nil {
				return err
			}
			path := out
			if path == "" {
				path = defaultExportName(time.Now())
			}

			return ctx.withServices(cmd.Context(), func(svc *app.Services) error {
				data, err := svc.Export.ExportReturnsXLSX(cmd.Context(), filter)
				if err != nil {
					return err
				}
				if err := os.WriteFile(path, data, 0o644); err != nil {
					return fmt.Errorf("write %s: %w", path, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes)\n", path, len(data))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default returns-<timestamp>.xlsx)")
	filters.bind(cmd)

	return cmd
}

func defaultExportName(now time.Time) string {
	return "returns-" + now.UTC().Format("20060102-150405") + ".xlsx"
}
