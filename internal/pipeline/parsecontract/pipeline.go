package parsecontract

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/contract-intel/constants"
	"github.com/joseph-ayodele/contract-intel/internal/parser"
	"github.com/joseph-ayodele/contract-intel/internal/repository"
)

// Progress checkpoint written after field extraction, before persistence.
const progressParsed = 70

type Pipeline struct {
	Logger        *slog.Logger
	JobsRepo      repository.ExtractJobRepository
	ContractsRepo repository.ContractRepository
	Parser        *parser.Parser

	schema map[string]any
}

func NewPipeline(
	logger *slog.Logger,
	jobs repository.ExtractJobRepository,
	contracts repository.ContractRepository,
	p *parser.Parser,
) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		Logger:        logger,
		JobsRepo:      jobs,
		ContractsRepo: contracts,
		Parser:        p,
		schema:        parser.BuildExtractionJSONSchema(),
	}
}

// Run executes the parse stage for an existing job (jobID).
// Preconditions: job holds non-empty contract_text from the text stage.
// Effects: writes extracted_json and confidence_score on the job, and
// upserts the contract summary row.
func (p *Pipeline) Run(ctx context.Context, jobID uuid.UUID) (uuid.UUID, error) {
	job, err := p.JobsRepo.GetWithFile(ctx, jobID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("load job: %w", err)
	}
	if job.ContractText == nil || *job.ContractText == "" {
		return job.ID, fmt.Errorf("job not ready for parse: status=%v contract_text_empty=%t", job.Status, job.ContractText == nil)
	}

	p.Logger.Info("parsecontract.start", "job_id", job.ID, "file_id", job.FileID, "text_bytes", len(*job.ContractText))

	data := p.Parser.Parse(*job.ContractText)

	if err := p.JobsRepo.SetProgress(ctx, job.ID, constants.JobStatusProcessing, progressParsed); err != nil {
		return job.ID, err
	}

	raw, err := json.Marshal(data)
	if err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, err.Error())
		return job.ID, fmt.Errorf("marshal extraction: %w", err)
	}
	if err := parser.ValidateJSONAgainstSchema(p.schema, raw); err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, err.Error())
		return job.ID, fmt.Errorf("validate extraction: %w", err)
	}

	contract, err := p.ContractsRepo.UpsertFromExtraction(ctx, job.FileID, data)
	if err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, err.Error())
		return job.ID, fmt.Errorf("upsert contract: %w", err)
	}

	if err := p.JobsRepo.FinishParseSuccess(ctx, job.ID, contract.ID, raw, data.ConfidenceScore); err != nil {
		return job.ID, err
	}

	p.Logger.Info("parsecontract.ok",
		"job_id", job.ID, "contract_id", contract.ID,
		"revenue_type", data.RevenueClassification.Type,
		"missing_fields", len(data.GapAnalysis.MissingFields),
		"confidence", data.ConfidenceScore,
	)
	return job.ID, nil
}
