package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"log/slog"

	"github.com/joseph-ayodele/contract-intel/internal/parser"
	"github.com/joseph-ayodele/contract-intel/internal/pdftext"
)

// parsecontract parses a single contract document and prints the extracted
// JSON to stdout. No database is touched; this is the full extraction stack
// (text then fields) on one file.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "parsecontract <path-to-pdf-or-txt>")
		os.Exit(2)
	}
	path := os.Args[1]

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	extractor := pdftext.NewExtractor(pdftext.Config{
		Pdftotext: os.Getenv("PDFTOTEXT_BIN"),
	}, logger)

	start := time.Now()
	res, err := extractor.Extract(ctx, path)
	if err != nil {
		logger.Error("text extraction failed", "path", path, "error", err)
		os.Exit(1)
	}
	logger.Info("text extraction OK",
		"method", res.Method,
		"pages", res.Pages,
		"bytes", len(res.Text),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	data := parser.New(logger).Parse(res.Text)

	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		logger.Error("encode extraction", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(out))

	logger.Info("parse OK",
		"confidence_score", data.ConfidenceScore,
		"missing_fields", len(data.GapAnalysis.MissingFields),
		"duration_ms", time.Since(start).Milliseconds(),
	)
}
