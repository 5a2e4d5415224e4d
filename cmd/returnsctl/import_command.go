package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/returns-backend/internal/app"
	"github.com/heartmarshall/returns-backend/internal/domain"
	"github.com/heartmarshall/returns-backend/internal/service/importer"
)

func newImportCommand(ctx *commandContext) *cobra.Command {
	var returnType string
	var clientID int64
	var failOnError bool

	cmd := &cobra.Command{
		Use:   "import <dir>",
		Short: "Import every PDF label under a directory as one batch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := importer.Options{ReturnType: domain.ReturnType(returnType)}
			if clientID > 0 {
				opts.ClientID = &clientID
			}

			return ctx.withServices(cmd.Context(), func(svc *app.Services) error {
				report, err := svc.Importer.ImportDirectory(cmd.Context(), args[0], opts)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderImportReport(report))
				if failOnError && report.Failed > 0 {
					return fmt.Errorf("%d of %d files failed", report.Failed, report.Total)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&returnType, "return-type", "", "pre_receipt or post_receipt (default from config)")
	cmd.Flags().Int64Var(&clientID, "client-id", 0, "Client owning every return in the batch")
	cmd.Flags().BoolVar(&failOnError, "fail-on-error", false, "Exit non-zero when any file fails")

	return cmd
}

func renderImportReport(r *importer.Report) string {
	rows := make([][]string, 0, len(r.Results))
	for _, res := range r.Results {
		if !res.Succeeded() {
			rows = append(rows, []string{res.Filename, "-", "failed", "-", "-", "-", res.Error})
			continue
		}
		rows = append(rows, []string{
			res.Filename,
			strconv.FormatInt(res.ReturnID, 10),
			string(res.Status),
			optInt(res.ProductID),
			string(res.MatchType),
			optConfidence(res.Confidence),
			"",
		})
	}
	table := renderTable(
		[]string{"File", "Return", "Status", "Product", "Match", "Confidence", "Error"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignLeft, alignRight, alignLeft, alignRight, alignLeft},
	)
	summary := fmt.Sprintf("batch %s: %d files, %d imported (%d matched, %d unmatched), %d failed",
		r.BatchID, r.Total, r.Successful, r.Matched, r.Unmatched, r.Failed)
	return table + "\n" + summary
}
