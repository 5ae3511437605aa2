package server

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joseph-ayodele/contract-intel/constants"
	"github.com/joseph-ayodele/contract-intel/gen/ent"
	"github.com/joseph-ayodele/contract-intel/internal/common"
	"github.com/joseph-ayodele/contract-intel/internal/export"
	"github.com/joseph-ayodele/contract-intel/internal/repository"
	"github.com/joseph-ayodele/contract-intel/internal/utils"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	contractspb "github.com/joseph-ayodele/contract-intel/gen/proto/contracts/v1"
)

const defaultListLimit = 50

type ContractsService struct {
	contractspb.UnimplementedContractsServiceServer
	jobsRepo  repository.ExtractJobRepository
	filesRepo repository.ContractFileRepository
	exportSvc *export.Service
	logger    *slog.Logger
}

func NewContractsService(jobsRepo repository.ExtractJobRepository, filesRepo repository.ContractFileRepository, exportSvc *export.Service, logger *slog.Logger) *ContractsService {
	return &ContractsService{
		jobsRepo:  jobsRepo,
		filesRepo: filesRepo,
		exportSvc: exportSvc,
		logger:    logger,
	}
}

func (s *ContractsService) GetContractStatus(ctx context.Context, req *contractspb.GetContractStatusRequest) (*contractspb.GetContractStatusResponse, error) {
	fileID, err := parseFileID(req.GetFileId())
	if err != nil {
		s.logger.Error("invalid file_id for status lookup", "file_id", req.GetFileId(), "error", err)
		return nil, err
	}

	job, err := s.jobsRepo.LatestForFile(ctx, fileID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundError("no processing job found for file")
		}
		s.logger.Error("failed to load job for file", "file_id", fileID, "error", err)
		return nil, common.InternalErrorf("load job: %v", err)
	}

	summary := utils.ToPBJobSummary(job)
	return &contractspb.GetContractStatusResponse{
		JobId:        summary.GetJobId(),
		FileId:       summary.GetFileId(),
		Filename:     summary.GetFilename(),
		Status:       summary.GetStatus(),
		Progress:     summary.GetProgress(),
		ErrorMessage: summary.GetErrorMessage(),
		StartedAt:    summary.GetStartedAt(),
		FinishedAt:   summary.GetFinishedAt(),
	}, nil
}

func (s *ContractsService) GetContractData(ctx context.Context, req *contractspb.GetContractDataRequest) (*contractspb.GetContractDataResponse, error) {
	fileID, err := parseFileID(req.GetFileId())
	if err != nil {
		s.logger.Error("invalid file_id for data lookup", "file_id", req.GetFileId(), "error", err)
		return nil, err
	}

	job, err := s.jobsRepo.LatestForFile(ctx, fileID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundError("no processing job found for file")
		}
		s.logger.Error("failed to load job for file", "file_id", fileID, "error", err)
		return nil, common.InternalErrorf("load job: %v", err)
	}

	if job.Status == nil || *job.Status != string(constants.JobStatusCompleted) {
		st := ""
		if job.Status != nil {
			st = *job.Status
		}
		return nil, status.Errorf(codes.FailedPrecondition, "file has not been parsed yet (status %q)", st)
	}
	if len(job.ExtractedJSON) == 0 {
		return nil, common.NotFoundError("no extracted data recorded for file")
	}

	out := &contractspb.GetContractDataResponse{
		JobId:         job.ID.String(),
		ExtractedJson: string(job.ExtractedJSON),
	}
	if job.ContractID != nil {
		out.ContractId = job.ContractID.String()
	}
	if job.ConfidenceScore != nil {
		out.ConfidenceScore = int32(*job.ConfidenceScore)
	}
	return out, nil
}

func (s *ContractsService) ListContracts(ctx context.Context, req *contractspb.ListContractsRequest) (*contractspb.ListContractsResponse, error) {
	st := strings.TrimSpace(req.GetStatus())
	if st != "" && !constants.IsValidStatus(st) {
		return nil, common.InvalidArgumentErrorf("unknown status %q", st)
	}

	offset := int(req.GetOffset())
	if offset < 0 {
		offset = 0
	}
	limit := int(req.GetLimit())
	if limit <= 0 {
		limit = defaultListLimit
	}

	s.logger.Info("listing contract jobs", "status", st, "offset", offset, "limit", limit)
	jobs, total, err := s.jobsRepo.List(ctx, st, offset, limit)
	if err != nil {
		s.logger.Error("failed to list contract jobs", "status", st, "error", err)
		return nil, common.InternalErrorf("list jobs: %v", err)
	}

	out := make([]*contractspb.JobSummary, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, utils.ToPBJobSummary(j))
	}
	return &contractspb.ListContractsResponse{Jobs: out, Total: int32(total)}, nil
}

func (s *ContractsService) ExportContracts(ctx context.Context, req *contractspb.ExportContractsRequest) (*contractspb.ExportContractsResponse, error) {
	var fromPtr, toPtr *time.Time
	if fd := strings.TrimSpace(req.GetFromDate()); fd != "" {
		from, err := utils.ParseYMD(fd)
		if err != nil {
			s.logger.Error("invalid from_date format", "from_date", fd, "error", err)
			return nil, common.InvalidArgumentErrorf("from_date invalid (YYYY-MM-DD): %v", err)
		}
		fromPtr = &from
	}
	if td := strings.TrimSpace(req.GetToDate()); td != "" {
		to, err := utils.ParseYMD(td)
		if err != nil {
			s.logger.Error("invalid to_date format", "to_date", td, "error", err)
			return nil, common.InvalidArgumentErrorf("to_date invalid (YYYY-MM-DD): %v", err)
		}
		toPtr = &to
	}

	xlsx, err := s.exportSvc.ExportContractsXLSX(ctx, fromPtr, toPtr)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "err", err)
		return nil, common.InternalErrorf("export: %v", err)
	}
	return &contractspb.ExportContractsResponse{Xlsx: xlsx}, nil
}

// DownloadContract streams back the stored document for a file.
func (s *ContractsService) DownloadContract(ctx context.Context, req *contractspb.DownloadContractRequest) (*contractspb.DownloadContractResponse, error) {
	fileID, err := parseFileID(req.GetFileId())
	if err != nil {
		s.logger.Error("invalid file_id for download", "file_id", req.GetFileId(), "error", err)
		return nil, err
	}

	file, err := s.filesRepo.GetByID(ctx, fileID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundError("file not found")
		}
		s.logger.Error("failed to load file for download", "file_id", fileID, "error", err)
		return nil, common.InternalErrorf("load file: %v", err)
	}

	content, err := os.ReadFile(file.SourcePath)
	if err != nil {
		s.logger.Error("failed to read stored document", "file_id", fileID, "source_path", file.SourcePath, "error", err)
		return nil, common.InternalErrorf("read stored document: %v", err)
	}

	return &contractspb.DownloadContractResponse{
		Filename: file.Filename,
		FileExt:  file.FileExt,
		Content:  content,
	}, nil
}

func parseFileID(raw string) (uuid.UUID, error) {
	trimmed := strings.TrimSpace(raw)
	validator := common.NewValidator()
	validator.Field("file_id", trimmed, common.Required, common.UUID)
	if err := common.ValidateAndReturnError(validator); err != nil {
		return uuid.Nil, err
	}
	return uuid.Parse(trimmed)
}
