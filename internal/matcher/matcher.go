// Package matcher resolves parsed label signals to a catalog product.
package matcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/returns-backend/internal/domain"
	"github.com/heartmarshall/returns-backend/internal/labelparse"
)

// Catalog is the read-only catalog capability the matcher needs.
type Catalog interface {
	// FindByExactIdentifier returns the product owning a listing with the
	// given ASIN, compared case-insensitively, or domain.ErrNotFound.
	FindByExactIdentifier(ctx context.Context, asin string) (*domain.Product, error)
	// RankBySimilarity returns up to limit products ordered by title
	// similarity to query, best first.
	RankBySimilarity(ctx context.Context, query string, limit int) ([]domain.ScoredProduct, error)
	// SearchByContains returns products whose title contains query,
	// case-insensitively, shortest title first.
	SearchByContains(ctx context.Context, query string, limit int) ([]domain.Product, error)
}

// Config tunes the title strategies.
type Config struct {
	// SimilarityThreshold is the exclusive lower bound for a fuzzy match.
	SimilarityThreshold float64
	RankLimit           int
	// SubstringConfidence is reported for substring matches.
	SubstringConfidence float64
}

// DefaultConfig returns the standard tuning.
func DefaultConfig() Config {
	return Config{
		SimilarityThreshold: 0.3,
		RankLimit:           5,
		SubstringConfidence: 0.5,
	}
}

// strategy tries to resolve signals. prevErr is the error of the strategy
// that ran before it, if any.
type strategy struct {
	name domain.MatchType
	run  func(ctx context.Context, s labelparse.Signals, prevErr error) (*domain.ProductMatch, error)
}

// Matcher runs the strategies in order and returns the first match.
type Matcher struct {
	catalog    Catalog
	cfg        Config
	log        *slog.Logger
	strategies []strategy
}

// New creates a Matcher over catalog.
func New(catalog Catalog, cfg Config, log *slog.Logger) *Matcher {
	def := DefaultConfig()
	if cfg.SimilarityThreshold <= 0 {
		cfg.SimilarityThreshold = def.SimilarityThreshold
	}
	if cfg.RankLimit <= 0 {
		cfg.RankLimit = def.RankLimit
	}
	if cfg.SubstringConfidence <= 0 {
		cfg.SubstringConfidence = def.SubstringConfidence
	}

	m := &Matcher{
		catalog: catalog,
		cfg:     cfg,
		log:     log.With("component", "matcher"),
	}
	m.strategies = []strategy{
		{name: domain.MatchTypeASIN, run: m.matchASIN},
		{name: domain.MatchTypeFuzzyTitle, run: m.matchFuzzyTitle},
		{name: domain.MatchTypeILikeTitle, run: m.matchSubstring},
	}
	return m
}

// Match returns the best product for s, or nil when nothing matches.
// Strategy failures are logged and never returned.
func (m *Matcher) Match(ctx context.Context, s labelparse.Signals) *domain.ProductMatch {
	var prevErr error
	for _, st := range m.strategies {
		match, err := m.runStrategy(ctx, st, s, prevErr)
		if err != nil {
			m.log.WarnContext(ctx, "match strategy failed",
				slog.String("strategy", st.name.String()),
				slog.String("error", err.Error()),
			)
		}
		if match != nil {
			return match
		}
		prevErr = err
	}
	return nil
}

// runStrategy is the error boundary around one strategy.
func (m *Matcher) runStrategy(ctx context.Context, st strategy, s labelparse.Signals, prevErr error) (match *domain.ProductMatch, err error) {
	defer func() {
		if r := recover(); r != nil {
			match, err = nil, fmt.Errorf("panic: %v", r)
		}
	}()
	return st.run(ctx, s, prevErr)
}

func (m *Matcher) matchASIN(ctx context.Context, s labelparse.Signals, _ error) (*domain.ProductMatch, error) {
	if s.ASIN == nil {
		return nil, nil
	}
	p, err := m.catalog.FindByExactIdentifier(ctx, *s.ASIN)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find by asin: %w", err)
	}
	return &domain.ProductMatch{
		ProductID:  p.ID,
		Confidence: domain.ExactMatchConfidence,
		MatchType:  domain.MatchTypeASIN,
	}, nil
}

func (m *Matcher) matchFuzzyTitle(ctx context.Context, s labelparse.Signals, _ error) (*domain.ProductMatch, error) {
	name, ok := s.CandidateName()
	if !ok {
		return nil, nil
	}
	ranked, err := m.catalog.RankBySimilarity(ctx, name, m.cfg.RankLimit)
	if err != nil {
		return nil, fmt.Errorf("rank by similarity: %w", err)
	}
	if len(ranked) == 0 {
		return nil, nil
	}
	top := ranked[0]
	if top.Similarity <= m.cfg.SimilarityThreshold {
		return nil, nil
	}
	return &domain.ProductMatch{
		ProductID:  top.ID,
		Confidence: top.Similarity,
		MatchType:  domain.MatchTypeFuzzyTitle,
	}, nil
}

// matchSubstring is the degraded title search. It only runs when similarity
// ranking is unavailable.
func (m *Matcher) matchSubstring(ctx context.Context, s labelparse.Signals, prevErr error) (*domain.ProductMatch, error) {
	if prevErr == nil {
		return nil, nil
	}
	name, ok := s.CandidateName()
	if !ok {
		return nil, nil
	}
	found, err := m.catalog.SearchByContains(ctx, name, 1)
	if err != nil {
		return nil, fmt.Errorf("search by contains: %w", err)
	}
	if len(found) == 0 {
		return nil, nil
	}
	return &domain.ProductMatch{
		ProductID:  found[0].ID,
		Confidence: m.cfg.SubstringConfidence,
		MatchType:  domain.MatchTypeILikeTitle,
	}, nil
}
