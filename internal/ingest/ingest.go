package ingest

import (
	"context"
	"time"
)

// IngestionResult is the per-file ingest outcome.
type IngestionResult struct {
	SourcePath   string
	FileID       string
	Deduplicated bool
	HashHex      string
	FileExt      string
	FileSize     int
	UploadedAt   time.Time
	Err          string
}

// DirStats summarizes a directory ingest.
type DirStats struct {
	Scanned      uint32
	Matched      uint32
	Succeeded    uint32
	Deduplicated uint32
	Failed       uint32
}

// Ingestor is the behavior the service depends on.
type Ingestor interface {
	// IngestBytes stores an uploaded document and registers it.
	IngestBytes(ctx context.Context, filename string, content []byte) (IngestionResult, error)
	// IngestPath a single path.
	IngestPath(ctx context.Context, path string) (IngestionResult, error)
	// IngestDirectory ingests all matching files under root.
	IngestDirectory(ctx context.Context, root string, skipHidden bool) ([]IngestionResult, DirStats, error)
}
