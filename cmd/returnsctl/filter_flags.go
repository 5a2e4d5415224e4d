package main

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/returns-backend/internal/domain"
)

// filterFlags are the return list filters shared by list and export.
type filterFlags struct {
	status        string
	returnType    string
	productID     int64
	clientID      int64
	batchID       string
	maxConfidence float64
}

func (f *filterFlags) bind(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&f.status, "status", "", "Only returns in this status")
	fl.StringVar(&f.returnType, "return-type", "", "Only pre_receipt or post_receipt returns")
	fl.Int64Var(&f.productID, "product-id", 0, "Only returns for this product")
	fl.Int64Var(&f.clientID, "client-id", 0, "Only returns for this client")
	fl.StringVar(&f.batchID, "batch", "", "Only returns from this import batch")
	fl.Float64Var(&f.maxConfidence, "max-confidence", -1, "Manual review queue: returns at or below this match confidence")
}

func (f *filterFlags) build() (domain.ReturnFilter, error) {
	var filter domain.ReturnFilter
	if v := strings.TrimSpace(f.status); v != "" {
		s := domain.ReturnStatus(v)
		if !s.IsValid() {
			return filter, fmt.Errorf("invalid --status %q", v)
		}
		filter.Status = &s
	}
	if v := strings.TrimSpace(f.returnType); v != "" {
		t := domain.ReturnType(v)
		if !t.IsValid() {
			return filter, fmt.Errorf("invalid --return-type %q", v)
		}
		filter.ReturnType = &t
	}
	if f.productID > 0 {
		filter.ProductID = &f.productID
	}
	if f.clientID > 0 {
		filter.ClientID = &f.clientID
	}
	if v := strings.TrimSpace(f.batchID); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return filter, fmt.Errorf("invalid --batch %q: %w", v, err)
		}
		filter.ImportBatchID = &id
	}
	if f.maxConfidence >= 0 {
		if f.maxConfidence > 1 {
			return filter, fmt.Errorf("--max-confidence must be between 0 and 1")
		}
		mc := f.maxConfidence
		filter.MaxConfidence = &mc
	}
	return filter, nil
}
