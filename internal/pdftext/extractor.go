// Package pdftext extracts plain text from label PDFs with poppler's pdftotext.
package pdftext

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"
)

// ErrUnreadableFile is returned for buffers that are not a PDF at all.
var ErrUnreadableFile = errors.New("unreadable file")

var pdfMagic = []byte("%PDF-")

// DefaultTimeout bounds a single extraction when Config.Timeout is zero.
const DefaultTimeout = 30 * time.Second

// Config configures the extractor.
type Config struct {
	// Pdftotext is the path or name of the pdftotext binary.
	Pdftotext string
	Timeout   time.Duration
}

// Extractor turns PDF bytes into text.
type Extractor struct {
	cfg    Config
	runner Runner
	log    *slog.Logger
}

// New creates an Extractor. A nil runner uses ExecRunner.
func New(cfg Config, runner Runner, log *slog.Logger) *Extractor {
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if runner == nil {
		runner = ExecRunner{Log: log}
	}
	return &Extractor{cfg: cfg, runner: runner, log: log.With("component", "pdftext")}
}

// Validate checks that buf looks like a PDF document.
func Validate(buf []byte) error {
	if len(buf) == 0 {
		return fmt.Errorf("%w: empty buffer", ErrUnreadableFile)
	}
	head := buf
	if len(head) > 1024 {
		head = head[:1024]
	}
	if !bytes.Contains(head, pdfMagic) {
		return fmt.Errorf("%w: missing PDF header", ErrUnreadableFile)
	}
	return nil
}

// Extract returns the text of buf. Any failure, including a timeout, is
// logged and yields empty text: callers treat a label without text as one
// that carries only filename signals.
func (e *Extractor) Extract(ctx context.Context, buf []byte) string {
	text, err := e.extract(ctx, buf)
	if err != nil {
		e.log.WarnContext(ctx, "pdf text extraction failed", slog.String("error", err.Error()))
		return ""
	}
	return text
}

func (e *Extractor) extract(ctx context.Context, buf []byte) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, e.cfg.Timeout)
	defer cancel()

	f, err := os.CreateTemp("", "label-*.pdf")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if rmErr := os.Remove(f.Name()); rmErr != nil {
			e.log.Warn("failed to remove temp file", slog.String("path", f.Name()), slog.String("error", rmErr.Error()))
		}
	}()

	if _, err := f.Write(buf); err != nil {
		f.Close()
		return "", fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close temp file: %w", err)
	}

	// pdftotext -layout -enc UTF-8 -eol unix <path> -
	out, _, err := e.runner.Run(ctx, e.cfg.Pdftotext, "-layout", "-enc", "UTF-8", "-eol", "unix", f.Name(), "-")
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", fmt.Errorf("pdftotext: %w", ctxErr)
		}
		return "", fmt.Errorf("pdftotext: %w", err)
	}
	return string(out), nil
}
