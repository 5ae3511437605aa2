package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/contract-intel/constants"
	"github.com/joseph-ayodele/contract-intel/internal/repository"
)

const DefaultMaxFileSize = 32 << 20 // 32MB

// FSIngestor reads from the local filesystem and stores uploads under
// UploadDir. Content hash is the dedupe key; re-ingesting known bytes
// returns the existing file row.
type FSIngestor struct {
	FilesRepo   repository.ContractFileRepository
	UploadDir   string // where IngestBytes materializes uploads
	MaxFileSize int    // bytes; 0 -> DefaultMaxFileSize
}

func NewFSIngestor(f repository.ContractFileRepository, uploadDir string) *FSIngestor {
	return &FSIngestor{
		FilesRepo: f,
		UploadDir: uploadDir,
	}
}

func (i *FSIngestor) maxSize() int {
	if i.MaxFileSize > 0 {
		return i.MaxFileSize
	}
	return DefaultMaxFileSize
}

// IngestBytes writes the uploaded content to the upload directory under a
// unique name, then registers it like any on-disk file.
func (i *FSIngestor) IngestBytes(ctx context.Context, filename string, content []byte) (IngestionResult, error) {
	var out IngestionResult

	ext := constants.NormalizeExt(filepath.Ext(filename))
	if ext == "" || !AllowedExt(ext) {
		log.Printf("unsupported or missing extension: %q", ext)
		return out, fmt.Errorf("unsupported or missing extension")
	}
	if len(content) == 0 {
		return out, errors.New("empty file content")
	}
	if len(content) > i.maxSize() {
		return out, fmt.Errorf("file exceeds size limit of %d bytes", i.maxSize())
	}

	if err := os.MkdirAll(i.UploadDir, 0o755); err != nil {
		log.Printf("create upload dir error: %v", err)
		return out, err
	}
	dest := filepath.Join(i.UploadDir, uuid.NewString()+"_"+filepath.Base(filename))
	if err := os.WriteFile(dest, content, 0o644); err != nil {
		log.Printf("write upload error: %v", err)
		return out, err
	}

	return i.IngestPath(ctx, dest)
}

func (i *FSIngestor) IngestPath(ctx context.Context, path string) (IngestionResult, error) {
	var out IngestionResult

	abs, err := filepath.Abs(path)
	if err != nil {
		log.Printf("abs path error: %v", err)
		return out, err
	}

	ext := constants.NormalizeExt(filepath.Ext(abs))
	if ext == "" || !AllowedExt(ext) {
		log.Printf("unsupported or missing extension: %q", ext)
		return out, fmt.Errorf("unsupported or missing extension")
	}

	info, err := os.Stat(abs)
	if err != nil {
		log.Printf("stat error: %v", err)
		return out, err
	}
	if info.Size() == 0 {
		return out, errors.New("empty file")
	}
	if info.Size() > int64(i.maxSize()) {
		return out, fmt.Errorf("file exceeds size limit of %d bytes", i.maxSize())
	}

	content, err := os.ReadFile(abs)
	if err != nil {
		log.Printf("read error: %v", err)
		return out, err
	}
	sum := sha256.Sum256(content)
	now := time.Now().UTC()

	row, dedup, err := i.FilesRepo.UpsertByHash(ctx, abs, filepath.Base(abs), ext, len(content), sum[:], now)
	if err != nil {
		return out, err
	}

	out = IngestionResult{
		SourcePath:   row.SourcePath,
		FileID:       row.ID.String(),
		Deduplicated: dedup,
		HashHex:      hex.EncodeToString(sum[:]),
		FileExt:      row.FileExt,
		FileSize:     row.FileSize,
		UploadedAt:   row.UploadedAt,
	}
	return out, nil
}

// IngestDirectory walks root, skips hidden if requested,
// and calls IngestPath for each file. Returns per-file results + aggregate stats.
func (i *FSIngestor) IngestDirectory(
	ctx context.Context,
	root string,
	skipHidden bool,
) ([]IngestionResult, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, errors.New("root_path is required")
	}

	var results []IngestionResult
	var stats DirStats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		stats.Scanned++
		if walkErr != nil {
			results = append(results, IngestionResult{SourcePath: path, Err: walkErr.Error()})
			stats.Failed++
			return nil
		}
		if skipHidden && IsHidden(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}
		ext := constants.NormalizeExt(filepath.Ext(path))
		if !AllowedExt(ext) {
			return nil
		}
		stats.Matched++

		r, err := i.IngestPath(ctx, path)
		if err != nil {
			results = append(results, IngestionResult{SourcePath: path, Err: err.Error()})
			stats.Failed++
			return nil
		}

		results = append(results, r)
		stats.Succeeded++
		if r.Deduplicated {
			stats.Deduplicated++
		}
		return nil
	})

	if err != nil {
		return results, stats, fmt.Errorf("walk: %w", err)
	}
	return results, stats, nil
}
