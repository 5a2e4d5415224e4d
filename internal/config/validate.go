package config

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/returns-backend/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	if err := c.Import.validate(); err != nil {
		return fmt.Errorf("import: %w", err)
	}

	if err := c.Matching.validate(); err != nil {
		return fmt.Errorf("matching: %w", err)
	}

	if c.Cache.Enabled() && c.Cache.TTL <= 0 {
		return fmt.Errorf("cache: ttl must be > 0 (got %s)", c.Cache.TTL)
	}

	return nil
}

func (l *LogConfig) validate() error {
	switch strings.ToLower(l.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("format must be json or text (got %q)", l.Format)
	}
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown level %q", l.Level)
	}
	return nil
}

func (i *ImportConfig) validate() error {
	if i.Workers < 1 {
		return fmt.Errorf("workers must be >= 1 (got %d)", i.Workers)
	}
	if i.ExtractTimeout <= 0 {
		return fmt.Errorf("extract_timeout must be > 0 (got %s)", i.ExtractTimeout)
	}
	if strings.TrimSpace(i.PdftotextPath) == "" {
		return fmt.Errorf("pdftotext_path is required")
	}
	if i.MaxFileSize < 0 {
		return fmt.Errorf("max_file_size must be >= 0 (got %d)", i.MaxFileSize)
	}
	if !domain.ReturnType(i.DefaultReturnType).IsValid() {
		return fmt.Errorf("default_return_type must be pre_receipt or post_receipt (got %q)", i.DefaultReturnType)
	}
	if i.RateLimit < 0 {
		return fmt.Errorf("rate_limit must be >= 0 (got %d)", i.RateLimit)
	}
	return nil
}

func (m *MatchingConfig) validate() error {
	if m.SimilarityThreshold < 0 || m.SimilarityThreshold >= 1 {
		return fmt.Errorf("similarity_threshold must be in [0, 1) (got %v)", m.SimilarityThreshold)
	}
	if m.RankLimit < 1 {
		return fmt.Errorf("rank_limit must be >= 1 (got %d)", m.RankLimit)
	}
	if m.SubstringConfidence <= 0 || m.SubstringConfidence > 1 {
		return fmt.Errorf("substring_confidence must be in (0, 1] (got %v)", m.SubstringConfidence)
	}
	return nil
}
