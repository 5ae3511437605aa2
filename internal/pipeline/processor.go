package pipeline

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/contract-intel/internal/common"
	"github.com/joseph-ayodele/contract-intel/internal/pipeline/parsecontract"
	"github.com/joseph-ayodele/contract-intel/internal/pipeline/textextract"
)

// Processor coordinates text extraction then rule-based field parsing.
type Processor struct {
	Logger *slog.Logger
	Text   *textextract.Pipeline
	Parse  *parsecontract.Pipeline
}

func NewProcessor(logger *slog.Logger, text *textextract.Pipeline, parse *parsecontract.Pipeline) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{Logger: logger, Text: text, Parse: parse}
}

// ProcessFile runs text extraction for a fileID (creating/advancing
// extract_job), then parses the resulting text and upserts the contract.
// Returns the final jobID (same one started by the text stage).
func (p *Processor) ProcessFile(ctx context.Context, fileID uuid.UUID) (uuid.UUID, error) {
	log := p.Logger
	if rid := common.RequestIDFromContext(ctx); rid != "" {
		log = log.With("request_id", rid)
	}

	jobID, res, err := p.Text.Run(ctx, fileID)
	if err != nil {
		log.Error("processor.text.failed", "file_id", fileID, "err", err)
		return jobID, err
	}
	log.Info("processor.text.ok",
		"file_id", fileID,
		"job_id", jobID,
		"method", res.Method,
		"pages", res.Pages,
	)

	if _, err := p.Parse.Run(ctx, jobID); err != nil {
		log.Error("processor.parse.failed", "job_id", jobID, "err", err)
		return jobID, err
	}
	log.Info("processor.parse.ok", "job_id", jobID)
	return jobID, nil
}
