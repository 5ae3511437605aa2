package pdftext

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/joseph-ayodele/contract-intel/constants"
)

type Config struct {
	Pdftotext string // binary name or absolute path; if empty -> "pdftotext"

	MaxPages int // 0 = no limit; PDFs with more pages are rejected
}

type ExtractionResult struct {
	Text       string
	Pages      int
	SourceType string // constants.PDF | constants.TXT
	Method     string // "pdf-text" | "plain-text"
	Duration   time.Duration
	Warnings   []string
}

type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	return &Extractor{cfg: cfg, runner: execRunner{}, logger: logger}
}

// Extract picks a strategy based on file extension. An extraction that yields
// no text at all is an error: downstream parsing needs something to match on.
func (e *Extractor) Extract(ctx context.Context, path string) (ExtractionResult, error) {
	start := time.Now()
	ext := constants.NormalizeExt(filepath.Ext(path))
	e.logger.Debug("starting text extraction", "path", path, "ext", ext)

	var (
		res ExtractionResult
		err error
	)
	switch constants.MapExtToFormat(ext) {
	case constants.PDF:
		res, err = e.extractPDF(ctx, path)
	case constants.TXT:
		res, err = e.extractPlainText(path)
	default:
		e.logger.Error("unsupported extension", "extension", ext)
		return ExtractionResult{}, fmt.Errorf("unsupported extension: %q", ext)
	}
	res.Duration = time.Since(start)
	if err != nil {
		return res, err
	}

	if strings.TrimSpace(res.Text) == "" {
		e.logger.Error("extraction produced no text", "path", path, "method", res.Method)
		return res, fmt.Errorf("no text could be extracted from %q", filepath.Base(path))
	}
	return res, nil
}

func (e *Extractor) extractPDF(ctx context.Context, path string) (ExtractionResult, error) {
	res := ExtractionResult{SourceType: constants.PDF, Method: "pdf-text"}

	// Validate the document before shelling out; a corrupt PDF should fail
	// with a parse error rather than garbage text.
	pages, err := api.PageCountFile(path)
	if err != nil {
		return res, fmt.Errorf("invalid pdf: %w", err)
	}
	if e.cfg.MaxPages > 0 && pages > e.cfg.MaxPages {
		return res, fmt.Errorf("pdf has %d pages, limit is %d", pages, e.cfg.MaxPages)
	}

	text, counted, warns, err := e.pdfToText(ctx, path)
	if err != nil {
		return res, fmt.Errorf("pdftotext: %w", err)
	}
	res.Text = text
	res.Pages = pages
	if counted > pages {
		res.Pages = counted
	}
	res.Warnings = warns
	return res, nil
}

func (e *Extractor) pdfToText(ctx context.Context, path string) (text string, pages int, warnings []string, err error) {
	// pdftotext -layout -enc UTF-8 -eol unix <path> -
	out, errb, err := e.runner.Run(ctx, e.cfg.Pdftotext, "-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		return "", 0, []string{string(errb)}, err
	}
	text = string(out)
	// A form-feed \f is used as page separator by default
	pages = 1 + strings.Count(text, "\f")
	return text, pages, nil, nil
}

func (e *Extractor) extractPlainText(path string) (ExtractionResult, error) {
	res := ExtractionResult{SourceType: constants.TXT, Method: "plain-text", Pages: 1}
	b, err := os.ReadFile(path)
	if err != nil {
		return res, fmt.Errorf("read text file: %w", err)
	}
	res.Text = string(b)
	return res, nil
}
