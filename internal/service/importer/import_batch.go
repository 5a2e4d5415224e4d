package importer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/returns-backend/internal/domain"
	"github.com/heartmarshall/returns-backend/internal/labelparse"
	"github.com/heartmarshall/returns-backend/internal/pdftext"
	"github.com/heartmarshall/returns-backend/internal/service/returns"
)

// ImportBatch creates one return per file under a fresh batch id. A failing
// file is recorded in the report and never stops the others. Once started,
// the batch runs to completion even if ctx is cancelled.
func (s *Service) ImportBatch(ctx context.Context, files []File, opts Options) (*Report, error) {
	if len(files) == 0 {
		return nil, domain.NewValidationError("files", "at least one file is required")
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.ReturnType == "" {
		opts.ReturnType = s.cfg.DefaultReturnType
	}

	ctx = context.WithoutCancel(ctx)
	batchID := uuid.New()
	start := time.Now()

	results := make([]FileResult, len(files))
	g := new(errgroup.Group)
	g.SetLimit(s.cfg.Workers)
	for i := range files {
		g.Go(func() error {
			results[i] = s.importFile(ctx, batchID, files[i], opts)
			return nil
		})
	}
	_ = g.Wait()

	report := buildReport(batchID, results)

	s.log.InfoContext(ctx, "batch imported",
		slog.String("batch_id", batchID.String()),
		slog.Int("total", report.Total),
		slog.Int("successful", report.Successful),
		slog.Int("failed", report.Failed),
		slog.Int("matched", report.Matched),
		slog.Int64("elapsed_ms", time.Since(start).Milliseconds()),
	)
	return report, nil
}

func buildReport(batchID uuid.UUID, results []FileResult) *Report {
	report := &Report{
		BatchID: batchID,
		Total:   len(results),
		Errors:  []FileError{},
		Results: results,
	}
	for _, r := range results {
		switch {
		case !r.Succeeded():
			report.Failed++
			report.Errors = append(report.Errors, FileError{Filename: r.Filename, Error: r.Error})
		case r.ProductID != nil:
			report.Successful++
			report.Matched++
		default:
			report.Successful++
			report.Unmatched++
		}
	}
	return report
}

// importFile processes one file. Panics are recovered into a per-file error.
func (s *Service) importFile(ctx context.Context, batchID uuid.UUID, f File, opts Options) (res FileResult) {
	res.Filename = f.Name

	defer func() {
		if r := recover(); r != nil {
			s.log.ErrorContext(ctx, "panic while importing file",
				slog.String("filename", f.Name),
				slog.Any("panic", r),
			)
			res = FileResult{Filename: f.Name, Error: fmt.Sprintf("internal error: %v", r)}
		}
	}()

	created, match, err := s.createFromFile(ctx, batchID, f, opts)
	if err != nil {
		s.log.WarnContext(ctx, "file import failed",
			slog.String("filename", f.Name),
			slog.String("error", err.Error()),
		)
		res.Error = err.Error()
		return res
	}

	res.ReturnID = created.ID
	res.Status = created.Status
	res.ProductID = created.ProductID
	res.Confidence = created.MatchConfidence
	if match != nil {
		res.MatchType = match.MatchType
	}
	return res
}

func (s *Service) createFromFile(ctx context.Context, batchID uuid.UUID, f File, opts Options) (*domain.Return, *domain.ProductMatch, error) {
	if s.cfg.MaxFileSize > 0 && int64(len(f.Data)) > s.cfg.MaxFileSize {
		return nil, nil, fmt.Errorf("%w: file exceeds %d bytes", pdftext.ErrUnreadableFile, s.cfg.MaxFileSize)
	}
	if err := pdftext.Validate(f.Data); err != nil {
		return nil, nil, err
	}

	var labelURL *string
	if s.labels != nil {
		url, err := s.labels.Save(ctx, batchID, f.Name, f.Data)
		if err != nil {
			s.log.WarnContext(ctx, "label not stored",
				slog.String("filename", f.Name),
				slog.String("error", err.Error()),
			)
		} else {
			labelURL = &url
		}
	}

	text := s.extractor.Extract(ctx, f.Data)
	signals := labelparse.Parse(f.Name, text)
	match := s.matcher.Match(ctx, signals)

	input := returns.CreateReturnInput{
		ClientID:          opts.ClientID,
		ReturnType:        opts.ReturnType,
		Quantity:          signals.Quantity,
		LabelURL:          labelURL,
		Carrier:           signals.Carrier,
		ReturnByDate:      signals.ReturnByDate,
		SourceIdentifier:  signals.SourceIdentifier(),
		ParsedProductName: signals.ParsedProductName(),
		ImportBatchID:     &batchID,
		OriginalFilename:  &f.Name,
	}
	if signals.IsDamaged {
		input.WarehouseNotes = ptr("Damaged on arrival")
	}
	if signals.OrderNumber != nil {
		input.ClientNotes = ptr("Order " + *signals.OrderNumber)
	}
	if match != nil {
		input.ProductID = &match.ProductID
		input.MatchConfidence = &match.Confidence
	}

	created, err := s.returns.CreateReturn(ctx, input)
	if err != nil {
		return nil, nil, fmt.Errorf("create return: %w", err)
	}
	return created, match, nil
}

func ptr[T any](v T) *T { return &v }
