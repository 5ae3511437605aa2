package utils

import (
	"time"

	"github.com/joseph-ayodele/contract-intel/gen/ent"
	contractspb "github.com/joseph-ayodele/contract-intel/gen/proto/contracts/v1"
	"github.com/joseph-ayodele/contract-intel/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	// strip time to midnight UTC to match DATE semantics
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func ToContractFile(e *ent.ContractFile) *entity.ContractFile {
	return &entity.ContractFile{
		ID:          e.ID,
		SourcePath:  e.SourcePath,
		ContentHash: e.ContentHash,
		Filename:    e.Filename,
		FileExt:     e.FileExt,
		FileSize:    e.FileSize,
		UploadedAt:  e.UploadedAt,
	}
}

func ToExtractJob(e *ent.ExtractJob) *entity.ExtractJob {
	return &entity.ExtractJob{
		ID:              e.ID,
		FileID:          e.FileID,
		ContractID:      e.ContractID,
		Format:          e.Format,
		StartedAt:       e.StartedAt,
		FinishedAt:      e.FinishedAt,
		Status:          e.Status,
		Progress:        e.Progress,
		ErrorMessage:    e.ErrorMessage,
		ContractText:    e.ContractText,
		ExtractedJSON:   e.ExtractedJSON,
		ConfidenceScore: e.ConfidenceScore,
	}
}

func ToContract(e *ent.Contract) *entity.Contract {
	return &entity.Contract{
		ID:                  e.ID,
		FileID:              e.FileID,
		ServiceProvider:     e.ServiceProvider,
		Customer:            e.Customer,
		AnnualContractValue: e.AnnualContractValue,
		CurrencyCode:        e.CurrencyCode,
		RevenueType:         e.RevenueType,
		ConfidenceScore:     e.ConfidenceScore,
		ProcessedAt:         e.ProcessedAt,
		CreatedAt:           e.CreatedAt,
		UpdatedAt:           e.UpdatedAt,
	}
}

// ToPBJobSummary flattens a job (with its file edge, when loaded) for
// listing responses.
func ToPBJobSummary(e *ent.ExtractJob) *contractspb.JobSummary {
	out := &contractspb.JobSummary{
		JobId:     e.ID.String(),
		FileId:    e.FileID.String(),
		Format:    e.Format,
		Status:    strOrEmpty(e.Status),
		Progress:  int32(e.Progress),
		StartedAt: e.StartedAt.UTC().Format(time.RFC3339),
	}
	if e.ConfidenceScore != nil {
		out.ConfidenceScore = int32(*e.ConfidenceScore)
	}
	if e.FinishedAt != nil {
		out.FinishedAt = e.FinishedAt.UTC().Format(time.RFC3339)
	}
	if e.ErrorMessage != nil {
		out.ErrorMessage = *e.ErrorMessage
	}
	if f, err := e.Edges.FileOrErr(); err == nil && f != nil {
		out.Filename = f.Filename
	}
	return out
}
