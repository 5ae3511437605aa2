package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/contract-intel/constants"
	"github.com/joseph-ayodele/contract-intel/gen/ent"
	entjob "github.com/joseph-ayodele/contract-intel/gen/ent/extractjob"
)

type ExtractJobRepository interface {
	Start(ctx context.Context, fileID uuid.UUID, format string) (*ent.ExtractJob, error)
	SetProgress(ctx context.Context, jobID uuid.UUID, status constants.JobStatus, progress int) error
	FinishTextSuccess(ctx context.Context, jobID uuid.UUID, contractText string, progress int) error
	FinishParseSuccess(ctx context.Context, jobID, contractID uuid.UUID, extracted json.RawMessage, score int) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error
	GetByID(ctx context.Context, jobID uuid.UUID) (*ent.ExtractJob, error)
	GetWithFile(ctx context.Context, jobID uuid.UUID) (*ent.ExtractJob, error)
	LatestForFile(ctx context.Context, fileID uuid.UUID) (*ent.ExtractJob, error)
	List(ctx context.Context, status string, offset, limit int) ([]*ent.ExtractJob, int, error)
}

type extractJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewExtractJobRepository(entc *ent.Client, log *slog.Logger) ExtractJobRepository {
	return &extractJobRepo{ent: entc, log: log}
}

func (r *extractJobRepo) Start(ctx context.Context, fileID uuid.UUID, format string) (*ent.ExtractJob, error) {
	job, err := r.ent.ExtractJob.
		Create().
		SetFileID(fileID).
		SetFormat(format).
		SetStatus(string(constants.JobStatusPending)).
		SetProgress(0).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job start failed", "file_id", fileID, "err", err)
		return nil, err
	}
	r.log.Info("extract_job started", "job_id", job.ID, "file_id", fileID, "format", format)
	return job, nil
}

func (r *extractJobRepo) SetProgress(ctx context.Context, jobID uuid.UUID, status constants.JobStatus, progress int) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetStatus(string(status)).
		SetProgress(progress).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job progress update failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Debug("extract_job progress", "job_id", jobID, "status", status, "progress", progress)
	return nil
}

func (r *extractJobRepo) FinishTextSuccess(ctx context.Context, jobID uuid.UUID, contractText string, progress int) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetContractText(contractText).
		SetStatus(string(constants.JobStatusProcessing)).
		SetProgress(progress).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job text stage update failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("extract_job text extracted", "job_id", jobID, "text_bytes", len(contractText))
	return nil
}

func (r *extractJobRepo) FinishParseSuccess(ctx context.Context, jobID, contractID uuid.UUID, extracted json.RawMessage, score int) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetContractID(contractID).
		SetExtractedJSON(extracted).
		SetConfidenceScore(score).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusCompleted)).
		SetProgress(100).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job finish(COMPLETED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("extract_job finished (COMPLETED)", "job_id", jobID, "contract_id", contractID, "confidence", score)
	return nil
}

func (r *extractJobRepo) FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job finish(FAILED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Warn("extract_job finished (FAILED)", "job_id", jobID, "error", message)
	return nil
}

func (r *extractJobRepo) GetByID(ctx context.Context, jobID uuid.UUID) (*ent.ExtractJob, error) {
	return r.ent.ExtractJob.Get(ctx, jobID)
}

func (r *extractJobRepo) GetWithFile(ctx context.Context, jobID uuid.UUID) (*ent.ExtractJob, error) {
	return r.ent.ExtractJob.Query().
		Where(entjob.ID(jobID)).
		WithFile().
		Only(ctx)
}

// LatestForFile returns the most recently started job for a file.
func (r *extractJobRepo) LatestForFile(ctx context.Context, fileID uuid.UUID) (*ent.ExtractJob, error) {
	return r.ent.ExtractJob.Query().
		Where(entjob.FileID(fileID)).
		Order(ent.Desc(entjob.FieldStartedAt)).
		WithFile().
		First(ctx)
}

// List returns a page of jobs, newest first, optionally filtered by status,
// along with the total row count for the filter.
func (r *extractJobRepo) List(ctx context.Context, status string, offset, limit int) ([]*ent.ExtractJob, int, error) {
	q := r.ent.ExtractJob.Query()
	if status != "" {
		q = q.Where(entjob.StatusEQ(status))
	}
	total, err := q.Clone().Count(ctx)
	if err != nil {
		r.log.Error("extract_job count failed", "err", err)
		return nil, 0, err
	}
	rows, err := q.
		Order(ent.Desc(entjob.FieldStartedAt)).
		Offset(offset).
		Limit(limit).
		WithFile().
		All(ctx)
	if err != nil {
		r.log.Error("extract_job list failed", "err", err)
		return nil, 0, err
	}
	return rows, total, nil
}
