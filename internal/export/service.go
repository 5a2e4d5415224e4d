// Package export renders return listings as XLSX workbooks.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/heartmarshall/returns-backend/internal/domain"
)

// SheetName is the worksheet holding the exported rows.
const SheetName = "Returns"

// maxNoteLength caps note cells, in characters.
const maxNoteLength = 140

type returnLister interface {
	List(ctx context.Context, filter domain.ReturnFilter) ([]*domain.Return, int, error)
}

// Service produces XLSX bytes for return exports.
type Service struct {
	returns returnLister
	log     *slog.Logger
}

// NewService creates a new export service.
func NewService(log *slog.Logger, returns returnLister) *Service {
	return &Service{returns: returns, log: log.With("service", "export")}
}

// Headers are the column titles, in order.
var Headers = []string{
	"ID",
	"Status",
	"Return Type",
	"Product ID",
	"Client ID",
	"Inventory Item ID",
	"Quantity",
	"Carrier",
	"Tracking Number",
	"Return By",
	"Source Identifier",
	"Parsed Product Name",
	"Match Confidence",
	"Client Notes",
	"Warehouse Notes",
	"Original Filename",
	"Created At",
	"Shipped At",
}

var colWidths = map[string]float64{
	"A": 10, "B": 12, "C": 14, "H": 10, "I": 22, "J": 12,
	"K": 18, "L": 36, "N": 40, "O": 40, "P": 36, "Q": 20, "R": 20,
}

// ExportReturnsXLSX writes every return matching filter to one sheet. Limit
// and Offset of the filter are ignored; all pages are read.
func (s *Service) ExportReturnsXLSX(ctx context.Context, filter domain.ReturnFilter) ([]byte, error) {
	start := time.Now()

	rows, err := s.collect(ctx, filter)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("xlsx sheet: %w", err)
	}

	for i, h := range Headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(SheetName, cell, h)
	}

	for i, r := range rows {
		row := i + 2
		for col, v := range rowValues(r) {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			_ = f.SetCellValue(SheetName, cell, v)
		}
	}

	for col, w := range colWidths {
		_ = f.SetColWidth(SheetName, col, col, w)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.log.InfoContext(ctx, "returns exported",
		slog.Int("rows", len(rows)),
		slog.Int64("elapsed_ms", time.Since(start).Milliseconds()),
	)
	return buf.Bytes(), nil
}

func (s *Service) collect(ctx context.Context, filter domain.ReturnFilter) ([]*domain.Return, error) {
	filter.Limit = domain.MaxListLimit
	filter.Offset = 0

	var all []*domain.Return
	for {
		page, total, err := s.returns.List(ctx, filter)
		if err != nil {
			return nil, fmt.Errorf("list returns: %w", err)
		}
		all = append(all, page...)
		if len(page) == 0 || len(all) >= total {
			return all, nil
		}
		filter.Offset += len(page)
	}
}

func rowValues(r *domain.Return) []any {
	return []any{
		r.ID,
		string(r.Status),
		string(r.ReturnType),
		intCell(r.ProductID),
		intCell(r.ClientID),
		intCell(r.InventoryItemID),
		r.Quantity,
		str(r.Carrier),
		str(r.TrackingNumber),
		dateCell(r.ReturnByDate, "2006-01-02"),
		str(r.SourceIdentifier),
		str(r.ParsedProductName),
		confidenceCell(r.MatchConfidence),
		truncate(str(r.ClientNotes), maxNoteLength),
		truncate(str(r.WarehouseNotes), maxNoteLength),
		str(r.OriginalFilename),
		r.CreatedAt.UTC().Format(time.DateTime),
		dateCell(r.ShippedAt, time.DateTime),
	}
}

func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func intCell(p *int64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatInt(*p, 10)
}

func dateCell(p *time.Time, layout string) string {
	if p == nil {
		return ""
	}
	return p.UTC().Format(layout)
}

func confidenceCell(p *float64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatFloat(*p, 'f', 2, 64)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 || len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
