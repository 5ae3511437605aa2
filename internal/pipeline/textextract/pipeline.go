package textextract

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/contract-intel/constants"
	"github.com/joseph-ayodele/contract-intel/internal/extract"
	"github.com/joseph-ayodele/contract-intel/internal/repository"
)

// Progress checkpoints written while the stage runs.
const (
	progressStarted       = 10
	progressTextExtracted = 30
)

type Pipeline struct {
	FilesRepo     repository.ContractFileRepository
	JobsRepo      repository.ExtractJobRepository
	TextExtractor extract.TextExtractor
	Log           *slog.Logger
}

func NewPipeline(files repository.ContractFileRepository, jobs repository.ExtractJobRepository, tx extract.TextExtractor, log *slog.Logger) *Pipeline {
	if log == nil {
		log = slog.Default()
	}
	return &Pipeline{FilesRepo: files, JobsRepo: jobs, TextExtractor: tx, Log: log}
}

// Run starts an extract_job, pulls the document text, and persists it.
// Returns the job ID and the extraction summary. The parse stage is NOT called.
func (p *Pipeline) Run(ctx context.Context, fileID uuid.UUID) (uuid.UUID, extract.TextExtractionResult, error) {
	// Lookup the file
	row, err := p.FilesRepo.GetByID(ctx, fileID)
	if err != nil {
		return uuid.Nil, extract.TextExtractionResult{}, fmt.Errorf("get file: %w", err)
	}

	format := constants.MapExtToFormat(row.FileExt)
	if format == "" {
		return uuid.Nil, extract.TextExtractionResult{}, fmt.Errorf("unsupported format: %s", row.FileExt)
	}

	job, err := p.JobsRepo.Start(ctx, row.ID, format)
	if err != nil {
		return uuid.Nil, extract.TextExtractionResult{}, err
	}
	if err := p.JobsRepo.SetProgress(ctx, job.ID, constants.JobStatusProcessing, progressStarted); err != nil {
		return job.ID, extract.TextExtractionResult{}, err
	}

	res, err := p.TextExtractor.Extract(ctx, row.SourcePath)
	if err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, err.Error())
		return job.ID, res, err
	}

	if err := p.JobsRepo.FinishTextSuccess(ctx, job.ID, res.Text, progressTextExtracted); err != nil {
		return job.ID, res, err
	}

	return job.ID, res, nil
}
