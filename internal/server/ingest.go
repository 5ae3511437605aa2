package server

import (
	"context"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"
	v1 "github.com/joseph-ayodele/contract-intel/gen/proto/contracts/v1"
	"github.com/joseph-ayodele/contract-intel/internal/async"
	"github.com/joseph-ayodele/contract-intel/internal/common"
	"github.com/joseph-ayodele/contract-intel/internal/ingest"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type IngestionService struct {
	v1.UnimplementedIngestionServiceServer
	ingestor ingest.Ingestor
	queue    async.Queue
	logger   *slog.Logger
}

func NewIngestionService(ing ingest.Ingestor, q async.Queue, logger *slog.Logger) *IngestionService {
	return &IngestionService{
		ingestor: ing,
		queue:    q,
		logger:   logger,
	}
}

// UploadContract implements v1.IngestionServiceServer
func (s *IngestionService) UploadContract(ctx context.Context, req *v1.UploadContractRequest) (*v1.IngestResponse, error) {
	filename := strings.TrimSpace(req.GetFilename())

	validator := common.NewValidator()
	validator.Field("filename", filename, common.Required, common.MaxLength(255))
	if err := common.ValidateAndReturnError(validator); err != nil {
		s.logger.Error("upload request failed validation", "filename", filename)
		return nil, err
	}
	if len(req.GetContent()) == 0 {
		s.logger.Error("upload request missing content", "filename", filename)
		return nil, status.Error(codes.InvalidArgument, "content is required")
	}

	s.logger.Info("starting contract upload", "filename", filename, "size", len(req.GetContent()))
	r, err := s.ingestor.IngestBytes(ctx, filename, req.GetContent())
	if err != nil {
		return nil, common.InvalidArgumentErrorf("upload: %v", err)
	}
	s.logger.Info("contract upload succeeded", "filename", filename, "file_id", r.FileID, "deduplicated", r.Deduplicated)

	resp := toPBIngestResponse(r)
	s.enqueue(ctx, r, resp)
	return resp, nil
}

// IngestFile implements v1.IngestionServiceServer
func (s *IngestionService) IngestFile(ctx context.Context, req *v1.IngestFileRequest) (*v1.IngestResponse, error) {
	path := strings.TrimSpace(req.GetPath())
	if path == "" {
		s.logger.Error("ingest request missing path")
		return nil, status.Error(codes.InvalidArgument, "path is required")
	}

	s.logger.Info("starting file ingest", "path", path)
	r, err := s.ingestor.IngestPath(ctx, path)
	if err != nil {
		return nil, common.InvalidArgumentErrorf("ingest: %v", err)
	}
	s.logger.Info("file ingest succeeded", "file_id", r.FileID, "deduplicated", r.Deduplicated)

	resp := toPBIngestResponse(r)
	s.enqueue(ctx, r, resp)
	return resp, nil
}

func (s *IngestionService) IngestDirectory(ctx context.Context, req *v1.IngestDirectoryRequest) (*v1.IngestDirectoryResponse, error) {
	root := strings.TrimSpace(req.GetRootPath())
	if root == "" {
		s.logger.Error("ingest directory request missing root_path")
		return nil, status.Error(codes.InvalidArgument, "root_path is required")
	}

	// skip hidden files unless the client set the field explicitly
	skipHidden := true
	if req.SkipHidden != nil {
		skipHidden = req.GetSkipHidden()
	}

	s.logger.Info("starting directory ingest", "root", root, "skip_hidden", skipHidden)
	results, stats, err := s.ingestor.IngestDirectory(ctx, root, skipHidden)
	if err != nil {
		// DB and file errors are already logged in repository/ingest layers
		return nil, common.InvalidArgumentErrorf("ingest directory: %v", err)
	}
	s.logger.Info("directory ingest completed", "scanned", stats.Scanned, "matched", stats.Matched, "succeeded", stats.Succeeded, "deduplicated", stats.Deduplicated, "failed", stats.Failed)

	out := &v1.IngestDirectoryResponse{
		Scanned:      stats.Scanned,
		Matched:      stats.Matched,
		Succeeded:    stats.Succeeded,
		Deduplicated: stats.Deduplicated,
		Failed:       stats.Failed,
		Results:      make([]*v1.IngestResponse, 0, len(results)),
	}

	s.logger.Info("queueing ingested files for processing", "file_count", len(results))
	for _, r := range results {
		item := toPBIngestResponse(r)
		s.enqueue(ctx, r, item)
		out.Results = append(out.Results, item)
	}
	return out, nil
}

// enqueue submits the file for background processing. Deduplicated files
// already have a parsed record and are skipped. Queue errors surface on the
// response rather than failing the ingest.
func (s *IngestionService) enqueue(ctx context.Context, r ingest.IngestionResult, resp *v1.IngestResponse) {
	if r.Err != "" || r.FileID == "" || r.Deduplicated {
		return
	}
	fileUUID, err := uuid.Parse(r.FileID)
	if err != nil {
		return
	}
	job := async.Job{FileID: fileUUID, SubmittedAt: time.Now().UTC(), TraceID: uuid.NewString()}
	if err := s.queue.Enqueue(ctx, job); err != nil {
		s.logger.Error("queue.enqueue.failed", "file_id", r.FileID, "err", err)
		resp.Error = err.Error()
	}
}

func toPBIngestResponse(r ingest.IngestionResult) *v1.IngestResponse {
	return &v1.IngestResponse{
		FileId:         r.FileID,
		Deduplicated:   r.Deduplicated,
		ContentHashHex: r.HashHex,
		FileExt:        r.FileExt,
		UploadedAt:     r.UploadedAt.UTC().Format(time.RFC3339),
		SourcePath:     r.SourcePath,
		Error:          r.Err,
	}
}
