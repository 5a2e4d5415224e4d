// Package importer turns batches of return-label files into return records:
// extract text, parse signals, match a product, create the return.
package importer

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/returns-backend/internal/domain"
	"github.com/heartmarshall/returns-backend/internal/labelparse"
	"github.com/heartmarshall/returns-backend/internal/service/returns"
)

type textExtractor interface {
	Extract(ctx context.Context, buf []byte) string
}

type productMatcher interface {
	Match(ctx context.Context, s labelparse.Signals) *domain.ProductMatch
}

type returnCreator interface {
	CreateReturn(ctx context.Context, input returns.CreateReturnInput) (*domain.Return, error)
}

type labelStore interface {
	Save(ctx context.Context, batchID uuid.UUID, filename string, data []byte) (string, error)
}

// Config tunes batch processing.
type Config struct {
	// Workers bounds concurrent file processing. 1 processes files in order.
	Workers int
	// MaxFileSize rejects larger files. 0 disables the check.
	MaxFileSize int64
	// DefaultReturnType applies when Options.ReturnType is empty.
	DefaultReturnType domain.ReturnType
}

// Service runs batch imports.
type Service struct {
	extractor textExtractor
	matcher   productMatcher
	returns   returnCreator
	labels    labelStore
	cfg       Config
	log       *slog.Logger
}

// NewService creates a new import service. labels may be nil, in which case
// uploaded files are not kept and returns carry no label URL.
func NewService(
	log *slog.Logger,
	cfg Config,
	extractor textExtractor,
	matcher productMatcher,
	returns returnCreator,
	labels labelStore,
) *Service {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.DefaultReturnType == "" {
		cfg.DefaultReturnType = domain.ReturnTypePreReceipt
	}
	return &Service{
		extractor: extractor,
		matcher:   matcher,
		returns:   returns,
		labels:    labels,
		cfg:       cfg,
		log:       log.With("service", "importer"),
	}
}
