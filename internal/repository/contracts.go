package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/contract-intel/gen/ent"
	entcontract "github.com/joseph-ayodele/contract-intel/gen/ent/contract"
	"github.com/joseph-ayodele/contract-intel/internal/entity"
	"github.com/joseph-ayodele/contract-intel/internal/parser"
	"github.com/joseph-ayodele/contract-intel/internal/utils"
)

type ContractRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Contract, error)
	GetByFileID(ctx context.Context, fileID uuid.UUID) (*ent.Contract, error)
	UpsertFromExtraction(ctx context.Context, fileID uuid.UUID, data parser.ExtractedData) (*ent.Contract, error)
	List(ctx context.Context, offset, limit int) ([]*entity.Contract, int, error)
	ListProcessedBetween(ctx context.Context, from, to *time.Time) ([]*entity.Contract, error)
}

type contractRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewContractRepository(entc *ent.Client, log *slog.Logger) ContractRepository {
	return &contractRepo{ent: entc, log: log}
}

func (r *contractRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.Contract, error) {
	return r.ent.Contract.Get(ctx, id)
}

func (r *contractRepo) GetByFileID(ctx context.Context, fileID uuid.UUID) (*ent.Contract, error) {
	return r.ent.Contract.Query().
		Where(entcontract.FileID(fileID)).
		Only(ctx)
}

// UpsertFromExtraction writes the queryable summary for a parsed file. A
// reparse of the same file replaces the previous summary row.
func (r *contractRepo) UpsertFromExtraction(ctx context.Context, fileID uuid.UUID, data parser.ExtractedData) (*ent.Contract, error) {
	existing, err := r.GetByFileID(ctx, fileID)
	if err != nil && !ent.IsNotFound(err) {
		r.log.Error("contract lookup failed", "file_id", fileID, "err", err)
		return nil, err
	}

	if existing != nil {
		upd := existing.Update().
			SetCurrencyCode(data.FinancialDetails.Currency).
			SetRevenueType(data.RevenueClassification.Type).
			SetConfidenceScore(data.ConfidenceScore).
			SetProcessedAt(time.Now()).
			ClearServiceProvider().
			ClearCustomer().
			ClearAnnualContractValue()
		applyParties(upd.Mutation(), data)
		row, err := upd.Save(ctx)
		if err != nil {
			r.log.Error("contract update failed", "file_id", fileID, "err", err)
			return nil, err
		}
		return row, nil
	}

	create := r.ent.Contract.Create().
		SetFileID(fileID).
		SetCurrencyCode(data.FinancialDetails.Currency).
		SetRevenueType(data.RevenueClassification.Type).
		SetConfidenceScore(data.ConfidenceScore).
		SetProcessedAt(time.Now())
	applyParties(create.Mutation(), data)
	row, err := create.Save(ctx)
	if err != nil {
		r.log.Error("contract create failed", "file_id", fileID, "err", err)
		return nil, err
	}
	r.log.Info("contract summary written", "file_id", fileID, "contract_id", row.ID, "confidence", data.ConfidenceScore)
	return row, nil
}

// applyParties sets the optional summary fields present in the extraction.
func applyParties(m *ent.ContractMutation, data parser.ExtractedData) {
	if sp := data.Parties.ServiceProvider; sp != nil && sp.Name != "" {
		m.SetServiceProvider(sp.Name)
	}
	if c := data.Parties.Customer; c != nil && c.Name != "" {
		m.SetCustomer(c.Name)
	}
	if acv := data.FinancialDetails.AnnualContractValue; acv > 0 {
		m.SetAnnualContractValue(acv)
	}
}

// ListProcessedBetween returns contracts processed inside the window, oldest
// first. Nil bounds are open.
func (r *contractRepo) ListProcessedBetween(ctx context.Context, from, to *time.Time) ([]*entity.Contract, error) {
	q := r.ent.Contract.Query()
	if from != nil {
		q = q.Where(entcontract.ProcessedAtGTE(*from))
	}
	if to != nil {
		// inclusive upper bound on a date-only window
		q = q.Where(entcontract.ProcessedAtLT(to.Add(24 * time.Hour)))
	}
	rows, err := q.Order(ent.Asc(entcontract.FieldProcessedAt)).All(ctx)
	if err != nil {
		r.log.Error("contract window list failed", "err", err)
		return nil, err
	}
	out := make([]*entity.Contract, len(rows))
	for i, row := range rows {
		out[i] = utils.ToContract(row)
	}
	return out, nil
}

func (r *contractRepo) List(ctx context.Context, offset, limit int) ([]*entity.Contract, int, error) {
	q := r.ent.Contract.Query()
	total, err := q.Clone().Count(ctx)
	if err != nil {
		r.log.Error("contract count failed", "err", err)
		return nil, 0, err
	}
	rows, err := q.
		Order(ent.Desc(entcontract.FieldProcessedAt)).
		Offset(offset).
		Limit(limit).
		All(ctx)
	if err != nil {
		r.log.Error("contract list failed", "err", err)
		return nil, 0, err
	}
	out := make([]*entity.Contract, len(rows))
	for i, row := range rows {
		out[i] = utils.ToContract(row)
	}
	return out, total, nil
}
