package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/returns-backend/internal/app"
	"github.com/heartmarshall/returns-backend/internal/domain"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var filters filterFlags
	var limit, offset int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List returns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := filters.build()
			if err != nil {
				return err
			}
			filter.Limit = limit
			filter.Offset = offset

			return ctx.withServices(cmd.Context(), func(svc *app.Services) error {
				res, err := svc.Returns.ListReturns(cmd.Context(), filter)
				if err != nil {
					return err
				}
				if len(res.Returns) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No returns found")
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderReturns(res.Returns))
				fmt.Fprintf(cmd.OutOrStdout(), "showing %d-%d of %d\n", res.Offset+1, res.Offset+len(res.Returns), res.Total)
				return nil
			})
		},
	}

	filters.bind(cmd)
	cmd.Flags().IntVar(&limit, "limit", domain.DefaultListLimit, "Maximum rows")
	cmd.Flags().IntVar(&offset, "offset", 0, "Rows to skip")

	return cmd
}

func renderReturns(rets []*domain.Return) string {
	rows := make([][]string, 0, len(rets))
	for _, r := range rets {
		rows = append(rows, []string{
			strconv.FormatInt(r.ID, 10),
			string(r.Status),
			string(r.ReturnType),
			optInt(r.ProductID),
			strconv.Itoa(r.Quantity),
			optConfidence(r.MatchConfidence),
			optString(r.Carrier),
			optString(r.SourceIdentifier),
			optDate(r.ReturnByDate),
		})
	}
	return renderTable(
		[]string{"ID", "Status", "Type", "Product", "Qty", "Confidence", "Carrier", "Source", "Return By"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignLeft, alignLeft, alignLeft},
	)
}
