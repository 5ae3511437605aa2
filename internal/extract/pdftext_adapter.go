package extract

import (
	"context"
	"log/slog"

	"github.com/joseph-ayodele/contract-intel/internal/pdftext"
)

type PDFTextAdapter struct {
	e *pdftext.Extractor
}

func NewPDFTextAdapter(e *pdftext.Extractor, _ *slog.Logger) *PDFTextAdapter {
	return &PDFTextAdapter{e: e}
}

func (a *PDFTextAdapter) Extract(ctx context.Context, path string) (TextExtractionResult, error) {
	r, err := a.e.Extract(ctx, path)
	return TextExtractionResult{
		Text:       r.Text,
		Pages:      r.Pages,
		SourceType: r.SourceType,
		Method:     r.Method,
		Duration:   r.Duration,
		Warnings:   r.Warnings,
	}, err
}
