package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/returns-backend/internal/app"
	"github.com/heartmarshall/returns-backend/internal/service/inventory"
)

func newReceiveCommand(ctx *commandContext) *cobra.Command {
	var productID, clientID int64
	var quantity int
	var location string

	cmd := &cobra.Command{
		Use:   "receive",
		Short: "Record a warehouse receipt and link it to the oldest open pre-receipt return",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := inventory.ReceiveInput{ProductID: productID, Quantity: quantity}
			if clientID > 0 {
				in.ClientID = &clientID
			}
			if loc := strings.TrimSpace(location); loc != "" {
				in.Location = &loc
			}

			return ctx.withServices(cmd.Context(), func(svc *app.Services) error {
				res, err := svc.Inventory.Receive(cmd.Context(), in)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "inventory item %d: product %d, quantity %d\n", res.Item.ID, res.Item.ProductID, res.Item.Quantity)
				if res.MatchedReturn == nil {
					fmt.Fprintln(out, "no open pre-receipt return for this product")
					return nil
				}
				fmt.Fprintf(out, "matched return %d (now %s)\n", res.MatchedReturn.ID, res.MatchedReturn.Status)
				return nil
			})
		},
	}

	cmd.Flags().Int64Var(&productID, "product-id", 0, "Received product")
	cmd.Flags().Int64Var(&clientID, "client-id", 0, "Owning client")
	cmd.Flags().IntVar(&quantity, "quantity", 1, "Units received")
	cmd.Flags().StringVar(&location, "location", "", "Warehouse location")
	_ = cmd.MarkFlagRequired("product-id")

	return cmd
}
