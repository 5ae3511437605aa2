package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/contract-intel/gen/ent"
	entfile "github.com/joseph-ayodele/contract-intel/gen/ent/contractfile"
	"github.com/joseph-ayodele/contract-intel/internal/entity"
	"github.com/joseph-ayodele/contract-intel/internal/utils"
)

type ContractFileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ContractFile, error)
	GetByHash(ctx context.Context, hash []byte) (*ent.ContractFile, error)
	Create(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.ContractFile, error)
	UpsertByHash(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.ContractFile, bool, error)
}

type contractFileRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewContractFileRepository(entc *ent.Client, logger *slog.Logger) ContractFileRepository {
	return &contractFileRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *contractFileRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.ContractFile, error) {
	row, err := r.ent.ContractFile.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return utils.ToContractFile(row), nil
}

func (r *contractFileRepo) GetByHash(ctx context.Context, hash []byte) (*ent.ContractFile, error) {
	row, err := r.ent.ContractFile.Query().
		Where(entfile.ContentHash(hash)).
		Only(ctx)
	if err != nil {
		r.logger.Error("failed to get contract file by hash", "error", err)
		return nil, err
	}
	return row, nil
}

func (r *contractFileRepo) Create(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.ContractFile, error) {
	row, err := r.ent.ContractFile.Create().
		SetSourcePath(sourcePath).
		SetFilename(filename).
		SetFileExt(ext).
		SetFileSize(size).
		SetContentHash(hash).
		SetUploadedAt(uploadedAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create contract file", "source_path", sourcePath, "filename", filename, "error", err)
		return nil, err
	}
	return row, nil
}

// UpsertByHash returns the existing row when the content hash is already
// known; the bool result reports whether the file was a duplicate.
func (r *contractFileRepo) UpsertByHash(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.ContractFile, bool, error) {
	if existing, err := r.GetByHash(ctx, hash); err == nil {
		return existing, true, nil
	}
	row, err := r.Create(ctx, sourcePath, filename, ext, size, hash, uploadedAt)
	if err != nil {
		r.logger.Error("failed to upsert contract file by hash", "source_path", sourcePath, "filename", filename, "error", err)
		return nil, false, err
	}
	return row, false, nil
}
